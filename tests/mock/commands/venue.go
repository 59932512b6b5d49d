//go:build unit || e2e

package commandsmock

import (
	"context"

	"venueserv/internal/usecase/commands"
	"venueserv/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockVenueCommands struct {
	mock.Mock
}

func (m *MockVenueCommands) CreateVenue(ctx context.Context, req commands.CreateVenueRequest, ownerID uuid.UUID) (*queries.VenueView, error) {
	args := m.Called(ctx, req, ownerID)
	if res := args.Get(0); res != nil {
		return res.(*queries.VenueView), args.Error(1)
	}
	return nil, args.Error(1)
}
