//go:build unit || e2e

package queriesmock

import (
	"context"

	"venueserv/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockVenueQueries struct {
	mock.Mock
}

func (m *MockVenueQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.VenueView, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*queries.VenueView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVenueQueries) ListAccepted(ctx context.Context, city *string) ([]*queries.VenueView, error) {
	args := m.Called(ctx, city)
	if res := args.Get(0); res != nil {
		return res.([]*queries.VenueView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVenueQueries) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.VenueView, error) {
	args := m.Called(ctx, ownerID)
	if res := args.Get(0); res != nil {
		return res.([]*queries.VenueView), args.Error(1)
	}
	return nil, args.Error(1)
}
