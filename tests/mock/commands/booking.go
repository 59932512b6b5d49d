//go:build unit || e2e

package commandsmock

import (
	"context"
	"time"

	"venueserv/internal/usecase/commands"
	"venueserv/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockBookingCommands struct {
	mock.Mock
}

func (m *MockBookingCommands) CheckAvailability(ctx context.Context, venueID uuid.UUID, date time.Time, timeslot int) (*commands.AvailabilityResult, error) {
	args := m.Called(ctx, venueID, date, timeslot)
	if res := args.Get(0); res != nil {
		return res.(*commands.AvailabilityResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingCommands) CreateBooking(ctx context.Context, req commands.CreateBookingRequest, userID uuid.UUID) (*commands.CreateBookingResult, error) {
	args := m.Called(ctx, req, userID)
	if res := args.Get(0); res != nil {
		return res.(*commands.CreateBookingResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingCommands) ConfirmBooking(ctx context.Context, paymentIntentID string) (*queries.BookingView, error) {
	args := m.Called(ctx, paymentIntentID)
	if res := args.Get(0); res != nil {
		return res.(*queries.BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingCommands) CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID) (*queries.BookingView, error) {
	args := m.Called(ctx, bookingID, actorID)
	if res := args.Get(0); res != nil {
		return res.(*queries.BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingCommands) CreateOwnerReservation(ctx context.Context, req commands.OwnerReservationRequest, ownerID uuid.UUID) (*queries.BookingView, error) {
	args := m.Called(ctx, req, ownerID)
	if res := args.Get(0); res != nil {
		return res.(*queries.BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}
