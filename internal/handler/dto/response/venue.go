package response

import (
	"time"

	"venueserv/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type VenueResponse struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"ownerId"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile"`
	Capacity     int32     `json:"capacity"`
	MorningCents int64     `json:"morningCents"`
	EveningCents int64     `json:"eveningCents"`
	FullDayCents int64     `json:"fulldayCents"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromVenueView(view *queries.VenueView) *VenueResponse {
	resp := &VenueResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

func FromVenueViews(views []*queries.VenueView) []*VenueResponse {
	out := make([]*VenueResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromVenueView(v))
	}
	return out
}
