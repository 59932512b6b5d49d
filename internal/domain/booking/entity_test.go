//go:build unit

package booking_test

import (
	"testing"
	"time"

	"venueserv/internal/domain/booking"
	"venueserv/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaidBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, b)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.PaymentCompleted, b.PaymentStatus())
		require.NotNil(t, b.PaymentIntentID())
		assert.Equal(t, "pi_test_123", *b.PaymentIntentID())
		assert.False(t, b.IsOwnerReservation())
		assert.False(t, b.IsCancelled())
		assert.True(t, b.IsActive())
	})

	t.Run("date is normalized", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.Date = time.Date(2026, 9, 1, 17, 45, 0, 0, time.UTC)
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), b.Date())
	})

	t.Run("invalid slot", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.Slot = booking.Slot(7)
		}).BuildDomain()
		assert.ErrorIs(t, err, booking.ErrInvalidSlot)
	})

	t.Run("zero guests", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.Guests = 0
		}).BuildDomain()
		assert.ErrorIs(t, err, booking.ErrInvalidGuestCount)
	})
}

func TestNewOwnerReservation(t *testing.T) {
	t.Run("bypasses payment with zero quote", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildOwnerReservation()
		require.NoError(t, err)

		assert.True(t, b.IsOwnerReservation())
		assert.Equal(t, booking.PaymentCompleted, b.PaymentStatus())
		assert.Nil(t, b.PaymentIntentID())
		assert.Equal(t, booking.ZeroQuote(), b.Quote())
	})

	t.Run("guest count defaults to one", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.Guests = 0
		}).BuildOwnerReservation()
		require.NoError(t, err)
		assert.Equal(t, 1, b.Guests())
	})

	t.Run("invalid slot still rejected", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.Slot = booking.Slot(-1)
		}).BuildOwnerReservation()
		assert.ErrorIs(t, err, booking.ErrInvalidSlot)
	})
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("future booking cancels and releases", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.Date = now.AddDate(0, 0, 3)
		}).BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Cancel(now))
		assert.True(t, b.IsCancelled())
		assert.False(t, b.IsActive())
	})

	t.Run("same-day booking can still cancel", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.Date = now
		}).BuildDomain()
		require.NoError(t, err)

		assert.NoError(t, b.Cancel(now))
	})

	t.Run("past booking rejected", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.Date = now.AddDate(0, 0, -1)
		}).BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, b.Cancel(now), booking.ErrPastBooking)
		assert.False(t, b.IsCancelled())
	})

	t.Run("double cancel rejected", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.Date = now.AddDate(0, 0, 3)
		}).BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Cancel(now))
		assert.ErrorIs(t, b.Cancel(now), booking.ErrAlreadyCancelled)
	})
}
