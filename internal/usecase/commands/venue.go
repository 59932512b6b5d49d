package commands

import (
	"context"

	"venueserv/internal/domain/venue"
	"venueserv/internal/infra/db"
	"venueserv/internal/pkg/errs"
	"venueserv/internal/usecase/queries"
	"venueserv/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateVenueRequest struct {
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
}

type VenueCommands interface {
	CreateVenue(ctx context.Context, req CreateVenueRequest, ownerID uuid.UUID) (*queries.VenueView, error)
}

type venueUseCaseImpl struct {
	venueRepo    VenueRepository
	venueQueries queries.VenueQueries
	pool         DB
}

func NewVenueCommands(venueRepo VenueRepository, venueQueries queries.VenueQueries, pool DB) VenueCommands {
	return &venueUseCaseImpl{
		venueRepo:    venueRepo,
		venueQueries: venueQueries,
		pool:         pool,
	}
}

func (uc *venueUseCaseImpl) CreateVenue(ctx context.Context, req CreateVenueRequest, ownerID uuid.UUID) (*queries.VenueView, error) {
	entity, err := venue.NewVenue(
		ownerID,
		req.Name, req.Type, req.Address, req.City, req.Email, req.Mobile,
		req.Capacity,
		venue.SlotRates{
			MorningCents: req.MorningCents,
			EveningCents: req.EveningCents,
			FullDayCents: req.FullDayCents,
		},
	)
	if err != nil {
		return nil, err
	}

	venueID, err := shared.RunInTx(ctx, uc.pool, func(tx db.DBTX) (uuid.UUID, error) {
		return uc.venueRepo.Create(ctx, tx, entity)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return uc.venueQueries.GetByID(ctx, venueID)
}
