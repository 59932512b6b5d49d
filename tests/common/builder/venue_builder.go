//go:build unit || e2e

package builder

import (
	"time"

	domvenue "venueserv/internal/domain/venue"
	reqdto "venueserv/internal/handler/dto/request"
	"venueserv/internal/usecase/commands"
	"venueserv/internal/usecase/queries"

	"github.com/google/uuid"
)

type VenueBuilder struct {
	OwnerID      uuid.UUID
	Name         string
	Type         string
	Address      string
	City         string
	Email        string
	Mobile       string
	Capacity     int
	MorningCents int64
	EveningCents int64
	FullDayCents int64
	Status       domvenue.Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewVenueBuilder() *VenueBuilder {
	now := time.Now()
	return &VenueBuilder{
		OwnerID:      uuid.New(),
		Name:         "Grand Palace Hall",
		Type:         "banquet",
		Address:      "12 MG Road",
		City:         "Bengaluru",
		Email:        "owner@grandpalace.example",
		Mobile:       "+919876543210",
		Capacity:     250,
		MorningCents: 500000,
		EveningCents: 700000,
		FullDayCents: 1000000,
		Status:       domvenue.StatusAccepted,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *VenueBuilder) With(mutate func(*VenueBuilder)) *VenueBuilder {
	mutate(b)
	return b
}

func (b *VenueBuilder) BuildDomain() (*domvenue.Venue, error) {
	return domvenue.NewVenue(
		b.OwnerID,
		b.Name, b.Type, b.Address, b.City, b.Email, b.Mobile,
		b.Capacity,
		domvenue.SlotRates{
			MorningCents: b.MorningCents,
			EveningCents: b.EveningCents,
			FullDayCents: b.FullDayCents,
		},
	)
}

func (b *VenueBuilder) BuildCreateRequestDTO() reqdto.CreateVenueRequest {
	return reqdto.CreateVenueRequest{
		Name:         b.Name,
		Type:         b.Type,
		Address:      b.Address,
		City:         b.City,
		Email:        b.Email,
		Mobile:       b.Mobile,
		Capacity:     b.Capacity,
		MorningCents: b.MorningCents,
		EveningCents: b.EveningCents,
		FullDayCents: b.FullDayCents,
	}
}

func (b *VenueBuilder) BuildViewQuery() *queries.VenueView {
	return &queries.VenueView{
		ID:           uuid.New(),
		OwnerID:      b.OwnerID,
		Name:         b.Name,
		Type:         b.Type,
		Address:      b.Address,
		City:         b.City,
		Email:        b.Email,
		Mobile:       b.Mobile,
		Capacity:     int32(b.Capacity),
		MorningCents: b.MorningCents,
		EveningCents: b.EveningCents,
		FullDayCents: b.FullDayCents,
		Status:       b.Status.String(),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (b *VenueBuilder) BuildSnapshot() *commands.VenueSnapshot {
	return &commands.VenueSnapshot{
		ID:           uuid.New(),
		OwnerID:      b.OwnerID,
		Name:         b.Name,
		Email:        b.Email,
		Status:       b.Status,
		MorningCents: b.MorningCents,
		EveningCents: b.EveningCents,
		FullDayCents: b.FullDayCents,
	}
}
