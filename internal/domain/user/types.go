package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleOwner, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}
