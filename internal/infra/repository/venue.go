package repository

import (
	"context"

	"venueserv/internal/domain/venue"
	"venueserv/internal/infra"
	"venueserv/internal/infra/db"

	"github.com/google/uuid"
)

type VenueRepository struct{}

func NewVenueRepository() *VenueRepository {
	return &VenueRepository{}
}

const createVenueSQL = `
INSERT INTO venues (
    id, owner_id, name, type, address, city, email, mobile,
    capacity, morning_cents, evening_cents, fullday_cents, status
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8,
    $9, $10, $11, $12, $13
)
RETURNING id`

func (r *VenueRepository) Create(ctx context.Context, dbtx db.DBTX, v *venue.Venue) (uuid.UUID, error) {
	rates := v.Rates()

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createVenueSQL,
		v.ID(), v.OwnerID(), v.Name(), v.Type(), v.Address(), v.City(), v.Email(), v.Mobile(),
		v.Capacity(), rates.MorningCents, rates.EveningCents, rates.FullDayCents, v.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create venue", err)
	}

	return id, nil
}
