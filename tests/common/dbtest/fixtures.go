//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"venueserv/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func CreateTestVenue(t *testing.T, db DBLike, ownerID uuid.UUID, status string) uuid.UUID {
	t.Helper()

	venueID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO venues (id, owner_id, name, type, address, city, email, mobile,
		                    capacity, morning_cents, evening_cents, fullday_cents, status)
		VALUES ($1, $2, 'Test Hall', 'banquet', '1 Test Street', 'Bengaluru',
		        'venue@test.example', '+910000000000', 100, 500000, 700000, 1000000, $3)`,
		venueID, ownerID, status)
	require.NoError(t, err)

	return venueID
}

// CreateTestBooking inserts a confirmed booking directly, bypassing the
// payment flow, so conflict scenarios can be staged.
func CreateTestBooking(t *testing.T, db DBLike, venueID, userID uuid.UUID, date time.Time, slot booking.Slot) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	lo, hi := slot.Span()
	intentID := "pi_fixture_" + bookingID.String()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO bookings (id, venue_id, user_id, date, slot, slot_span, guests,
		                      base_cents, platform_fee_cents, total_cents, owner_earnings_cents,
		                      payment_status, payment_intent_id, is_owner_reservation, is_cancelled)
		VALUES ($1, $2, $3, $4, $5, int4range($6, $7), 50,
		        500000, 50000, 550000, 450000,
		        'completed', $8, FALSE, FALSE)`,
		bookingID, venueID, userID, booking.NormalizeDate(date), int16(slot), lo, hi, intentID)
	require.NoError(t, err)

	return bookingID
}

func CancelTestBooking(t *testing.T, db DBLike, bookingID uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, "UPDATE bookings SET is_cancelled = TRUE WHERE id = $1", bookingID)
	require.NoError(t, err)
}

// ResetDB truncates all data tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx := context.Background()
	_, err := pool.Exec(ctx, "TRUNCATE bookings, venues CASCADE")
	return err
}
