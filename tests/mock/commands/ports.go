//go:build unit || e2e

package commandsmock

import (
	"context"
	"time"

	"venueserv/internal/domain/booking"
	"venueserv/internal/infra/db"
	"venueserv/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockVenueReads struct {
	mock.Mock
}

func (m *MockVenueReads) FindSnapshot(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.VenueSnapshot, error) {
	args := m.Called(ctx, dbtx, id)
	if res := args.Get(0); res != nil {
		return res.(*commands.VenueSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	args := m.Called(ctx, dbtx, b)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockBookingRepository) ActiveSlots(ctx context.Context, dbtx db.DBTX, venueID uuid.UUID, date time.Time) ([]booking.BookedSlot, error) {
	args := m.Called(ctx, dbtx, venueID, date)
	if res := args.Get(0); res != nil {
		return res.([]booking.BookedSlot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepository) FindSnapshotByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.BookingSnapshot, error) {
	args := m.Called(ctx, dbtx, id)
	if res := args.Get(0); res != nil {
		return res.(*commands.BookingSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepository) FindByPaymentIntent(ctx context.Context, dbtx db.DBTX, intentID string) (*commands.BookingSnapshot, error) {
	args := m.Called(ctx, dbtx, intentID)
	if res := args.Get(0); res != nil {
		return res.(*commands.BookingSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepository) MarkCancelled(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, dbtx, id)
	return args.Bool(0), args.Error(1)
}

type MockPaymentProvider struct {
	mock.Mock
}

func (m *MockPaymentProvider) CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*commands.PaymentIntent, error) {
	args := m.Called(ctx, amountCents, currency, metadata)
	if res := args.Get(0); res != nil {
		return res.(*commands.PaymentIntent), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPaymentProvider) RetrieveIntent(ctx context.Context, id string) (*commands.RetrievedIntent, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*commands.RetrievedIntent), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, msg commands.Email) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
