package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type VenueView struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile"`
	Capacity     int32     `json:"capacity"`
	MorningCents int64     `json:"morning_cents"`
	EveningCents int64     `json:"evening_cents"`
	FullDayCents int64     `json:"fullday_cents"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type VenueReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VenueView, error)
	ListAccepted(ctx context.Context, city *string) ([]*VenueView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*VenueView, error)
}

type VenueQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*VenueView, error)
	ListAccepted(ctx context.Context, city *string) ([]*VenueView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*VenueView, error)
}

type venueQueriesImpl struct {
	store VenueReadStore
}

func NewVenueQueries(store VenueReadStore) VenueQueries {
	return &venueQueriesImpl{store: store}
}

func (q *venueQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VenueView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *venueQueriesImpl) ListAccepted(ctx context.Context, city *string) ([]*VenueView, error) {
	return q.store.ListAccepted(ctx, city)
}

func (q *venueQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*VenueView, error) {
	return q.store.ListByOwner(ctx, ownerID)
}
