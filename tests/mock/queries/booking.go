//go:build unit || e2e

package queriesmock

import (
	"context"

	"venueserv/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockBookingQueries struct {
	mock.Mock
}

func (m *MockBookingQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*queries.BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingQueries) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	args := m.Called(ctx, userID)
	if res := args.Get(0); res != nil {
		return res.([]*queries.BookingListItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingQueries) ListByOwnerVenues(ctx context.Context, ownerID uuid.UUID) ([]*queries.BookingListItem, error) {
	args := m.Called(ctx, ownerID)
	if res := args.Get(0); res != nil {
		return res.([]*queries.BookingListItem), args.Error(1)
	}
	return nil, args.Error(1)
}
