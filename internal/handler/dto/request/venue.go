package request

import (
	"venueserv/internal/usecase/commands"
)

type CreateVenueRequest struct {
	Name         string `json:"name" binding:"required"`
	Type         string `json:"type" binding:"required"`
	Address      string `json:"address" binding:"required"`
	City         string `json:"city" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Mobile       string `json:"mobile" binding:"required"`
	Capacity     int    `json:"capacity" binding:"required,min=1"`
	MorningCents int64  `json:"morning_cents" binding:"min=0"`
	EveningCents int64  `json:"evening_cents" binding:"min=0"`
	FullDayCents int64  `json:"fullday_cents" binding:"min=0"`
}

func (r CreateVenueRequest) ToCommand() commands.CreateVenueRequest {
	return commands.CreateVenueRequest{
		Name:         r.Name,
		Type:         r.Type,
		Address:      r.Address,
		City:         r.City,
		Email:        r.Email,
		Mobile:       r.Mobile,
		Capacity:     r.Capacity,
		MorningCents: r.MorningCents,
		EveningCents: r.EveningCents,
		FullDayCents: r.FullDayCents,
	}
}
