package commands

import (
	"context"
	"time"

	"venueserv/internal/domain/booking"
	"venueserv/internal/domain/venue"
	"venueserv/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DB is the write-side database handle: direct execution for reads plus
// transaction begin for the transactional write paths.
type DB interface {
	db.DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Write-side snapshots prevent dependency on read-side query types
type VenueSnapshot struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	Email        string
	Status       venue.Status
	MorningCents int64
	EveningCents int64
	FullDayCents int64
}

func (s *VenueSnapshot) RateFor(slot booking.Slot) int64 {
	return venue.SlotRates{
		MorningCents: s.MorningCents,
		EveningCents: s.EveningCents,
		FullDayCents: s.FullDayCents,
	}.For(slot)
}

type BookingSnapshot struct {
	ID                 uuid.UUID
	VenueID            uuid.UUID
	UserID             uuid.UUID
	Date               time.Time
	Slot               booking.Slot
	Guests             int
	Quote              booking.Quote
	PaymentStatus      booking.PaymentStatus
	PaymentIntentID    *string
	IsOwnerReservation bool
	IsCancelled        bool
}

func (s *BookingSnapshot) ToDomain() *booking.Booking {
	return booking.Reconstruct(
		s.ID, s.VenueID, s.UserID,
		s.Date, s.Slot, s.Guests, s.Quote,
		s.PaymentStatus, s.PaymentIntentID,
		s.IsOwnerReservation, s.IsCancelled,
		time.Time{}, time.Time{},
	)
}

type VenueReads interface {
	FindSnapshot(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*VenueSnapshot, error)
}

type VenueRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, v *venue.Venue) (uuid.UUID, error)
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	// ActiveSlots returns the non-cancelled bookings for a venue on a
	// normalized date; cancelled rows never count as conflicts.
	ActiveSlots(ctx context.Context, dbtx db.DBTX, venueID uuid.UUID, date time.Time) ([]booking.BookedSlot, error)
	FindSnapshotByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*BookingSnapshot, error)
	FindByPaymentIntent(ctx context.Context, dbtx db.DBTX, intentID string) (*BookingSnapshot, error)
	// MarkCancelled flips is_cancelled on a still-active row and reports
	// whether a row was actually updated.
	MarkCancelled(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error)
}

// PaymentProvider is the narrow port over the payment gateway. Intent
// metadata carries the booking parameters opaque to the provider; no Booking
// row exists until the intent succeeds.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*PaymentIntent, error)
	RetrieveIntent(ctx context.Context, id string) (*RetrievedIntent, error)
}

type PaymentIntent struct {
	ID           string
	ClientSecret string
}

type IntentStatus string

const (
	IntentSucceeded IntentStatus = "succeeded"
	IntentFailed    IntentStatus = "failed"
)

type RetrievedIntent struct {
	ID       string
	Status   IntentStatus
	Metadata map[string]string
}

type Email struct {
	To      string
	Subject string
	HTML    string
}

// Notifier failures are logged and swallowed by callers; sending mail never
// blocks the booking workflow.
type Notifier interface {
	Send(ctx context.Context, msg Email) error
}
