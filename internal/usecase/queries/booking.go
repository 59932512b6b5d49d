package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID                 uuid.UUID  `json:"id"`
	VenueID            uuid.UUID  `json:"venue_id"`
	VenueName          string     `json:"venue_name"`
	VenueCity          string     `json:"venue_city"`
	VenueType          string     `json:"venue_type"`
	VenueEmail         string     `json:"-"`
	UserID             uuid.UUID  `json:"user_id"`
	Date               time.Time  `json:"date"`
	Timeslot           int16      `json:"timeslot"`
	Guests             int32      `json:"guests"`
	AmountCents        int64      `json:"amount_cents"`
	PlatformFeeCents   int64      `json:"platform_fee_cents"`
	OwnerEarningsCents int64      `json:"owner_earnings_cents"`
	PaymentStatus      string     `json:"payment_status"`
	PaymentIntentID    *string    `json:"payment_intent_id,omitempty"`
	IsOwnerReservation bool       `json:"is_owner_reservation"`
	IsCancelled        bool       `json:"is_cancelled"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	VenueID       uuid.UUID `json:"venue_id"`
	VenueName     string    `json:"venue_name"`
	VenueCity     string    `json:"venue_city"`
	Date          time.Time `json:"date"`
	Timeslot      int16     `json:"timeslot"`
	Guests        int32     `json:"guests"`
	AmountCents   int64     `json:"amount_cents"`
	PaymentStatus string    `json:"payment_status"`
	IsCancelled   bool      `json:"is_cancelled"`
	CreatedAt     time.Time `json:"created_at"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	ListByOwnerVenues(ctx context.Context, ownerID uuid.UUID) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error) {
	return q.store.FindByUserID(ctx, userID)
}

func (q *bookingQueriesImpl) ListByOwnerVenues(ctx context.Context, ownerID uuid.UUID) ([]*BookingListItem, error) {
	return q.store.FindByOwnerID(ctx, ownerID)
}
