package repository

import (
	"context"
	"time"

	"venueserv/internal/domain/booking"
	"venueserv/internal/infra"
	"venueserv/internal/infra/db"
	"venueserv/internal/pkg/pgconv"
	"venueserv/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (
    id, venue_id, user_id, date, slot, slot_span, guests,
    base_cents, platform_fee_cents, total_cents, owner_earnings_cents,
    payment_status, payment_intent_id, is_owner_reservation, is_cancelled
) VALUES (
    $1, $2, $3, $4, $5, int4range($6, $7), $8,
    $9, $10, $11, $12,
    $13, $14, $15, FALSE
)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	lo, hi := b.Slot().Span()
	quote := b.Quote()

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createBookingSQL,
		b.ID(), b.VenueID(), b.UserID(),
		pgconv.DateToPgtype(b.Date()), int16(b.Slot()), lo, hi, b.Guests(),
		quote.BaseCents, quote.PlatformFeeCents, quote.TotalCents, quote.OwnerEarningsCents,
		b.PaymentStatus().String(), pgconv.StringPtrToPgtype(b.PaymentIntentID()), b.IsOwnerReservation(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

const activeSlotsSQL = `
SELECT slot, date
FROM bookings
WHERE venue_id = $1 AND date = $2 AND NOT is_cancelled`

func (r *BookingRepository) ActiveSlots(ctx context.Context, dbtx db.DBTX, venueID uuid.UUID, date time.Time) ([]booking.BookedSlot, error) {
	rows, err := dbtx.Query(ctx, activeSlotsSQL, venueID, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query active slots", err)
	}
	defer rows.Close()

	var slots []booking.BookedSlot
	for rows.Next() {
		var (
			slot int16
			day  time.Time
		)
		if err := rows.Scan(&slot, &day); err != nil {
			return nil, infra.WrapRepoErr("failed to scan active slot", err)
		}
		slots = append(slots, booking.BookedSlot{Slot: booking.Slot(slot), Date: day})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate active slots", err)
	}

	return slots, nil
}

const bookingSnapshotSQL = `
SELECT id, venue_id, user_id, date, slot, guests,
       base_cents, platform_fee_cents, total_cents, owner_earnings_cents,
       payment_status, payment_intent_id, is_owner_reservation, is_cancelled
FROM bookings
WHERE `

func (r *BookingRepository) FindSnapshotByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.BookingSnapshot, error) {
	return r.scanSnapshot(dbtx.QueryRow(ctx, bookingSnapshotSQL+"id = $1", id), "booking not found by id")
}

func (r *BookingRepository) FindByPaymentIntent(ctx context.Context, dbtx db.DBTX, intentID string) (*commands.BookingSnapshot, error) {
	return r.scanSnapshot(dbtx.QueryRow(ctx, bookingSnapshotSQL+"payment_intent_id = $1", intentID), "booking not found by payment intent")
}

const markCancelledSQL = `
UPDATE bookings
SET is_cancelled = TRUE, updated_at = now()
WHERE id = $1 AND NOT is_cancelled`

func (r *BookingRepository) MarkCancelled(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	tag, err := dbtx.Exec(ctx, markCancelledSQL, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel booking", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *BookingRepository) scanSnapshot(row interface{ Scan(dest ...any) error }, notFoundMsg string) (*commands.BookingSnapshot, error) {
	var (
		snap          commands.BookingSnapshot
		slot          int16
		guests        int32
		paymentStatus string
		intentID      *string
	)
	err := row.Scan(
		&snap.ID, &snap.VenueID, &snap.UserID, &snap.Date, &slot, &guests,
		&snap.Quote.BaseCents, &snap.Quote.PlatformFeeCents, &snap.Quote.TotalCents, &snap.Quote.OwnerEarningsCents,
		&paymentStatus, &intentID, &snap.IsOwnerReservation, &snap.IsCancelled,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(notFoundMsg, err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan booking", err)
	}

	snap.Slot = booking.Slot(slot)
	snap.Guests = int(guests)
	snap.PaymentStatus = booking.PaymentStatus(paymentStatus)
	snap.PaymentIntentID = intentID
	return &snap, nil
}
