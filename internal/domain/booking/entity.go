package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a confirmed hold on a venue slot. No Booking exists for requests
// that were rejected or whose payment never succeeded; the aggregate is only
// constructed once the slot is actually held.
type Booking struct {
	id               uuid.UUID
	venueID          uuid.UUID
	userID           uuid.UUID
	date             time.Time
	slot             Slot
	guests           int
	quote            Quote
	paymentStatus    PaymentStatus
	paymentIntentID  *string
	ownerReservation bool
	cancelled        bool
	createdAt        time.Time
	updatedAt        time.Time
}

// NewPaidBooking builds the aggregate inserted upon payment confirmation.
// By that point the provider has reported success, so the booking is born
// with paymentStatus=completed.
func NewPaidBooking(
	venueID, userID uuid.UUID,
	date time.Time,
	slot Slot,
	guests int,
	quote Quote,
	paymentIntentID string,
) (*Booking, error) {
	if !slot.IsValid() {
		return nil, ErrInvalidSlot
	}
	if guests <= 0 {
		return nil, ErrInvalidGuestCount
	}

	return &Booking{
		id:              uuid.New(),
		venueID:         venueID,
		userID:          userID,
		date:            NormalizeDate(date),
		slot:            slot,
		guests:          guests,
		quote:           quote,
		paymentStatus:   PaymentCompleted,
		paymentIntentID: &paymentIntentID,
	}, nil
}

// NewOwnerReservation builds a zero-payment booking made by the venue's own
// owner. It occupies the slot exactly like a paid booking so an owner cannot
// double-book their own venue against a paying guest.
func NewOwnerReservation(
	venueID, ownerID uuid.UUID,
	date time.Time,
	slot Slot,
	guests int,
) (*Booking, error) {
	if !slot.IsValid() {
		return nil, ErrInvalidSlot
	}
	if guests <= 0 {
		guests = 1
	}

	return &Booking{
		id:               uuid.New(),
		venueID:          venueID,
		userID:           ownerID,
		date:             NormalizeDate(date),
		slot:             slot,
		guests:           guests,
		quote:            ZeroQuote(),
		paymentStatus:    PaymentCompleted,
		ownerReservation: true,
	}, nil
}

func Reconstruct(
	id, venueID, userID uuid.UUID,
	date time.Time,
	slot Slot,
	guests int,
	quote Quote,
	paymentStatus PaymentStatus,
	paymentIntentID *string,
	ownerReservation, cancelled bool,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:               id,
		venueID:          venueID,
		userID:           userID,
		date:             date,
		slot:             slot,
		guests:           guests,
		quote:            quote,
		paymentStatus:    paymentStatus,
		paymentIntentID:  paymentIntentID,
		ownerReservation: ownerReservation,
		cancelled:        cancelled,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Cancel transitions Confirmed -> Cancelled. The transition is one-way and
// only valid while the booking date has not passed; a cancelled booking's
// slot is released for new bookings.
func (b *Booking) Cancel(now time.Time) error {
	if b.cancelled {
		return ErrAlreadyCancelled
	}
	if b.date.Before(NormalizeDate(now)) {
		return ErrPastBooking
	}
	b.cancelled = true
	return nil
}

func (b *Booking) IsActive() bool {
	return !b.cancelled
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) VenueID() uuid.UUID           { return b.venueID }
func (b *Booking) UserID() uuid.UUID            { return b.userID }
func (b *Booking) Date() time.Time              { return b.date }
func (b *Booking) Slot() Slot                   { return b.slot }
func (b *Booking) Guests() int                  { return b.guests }
func (b *Booking) Quote() Quote                 { return b.quote }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) PaymentIntentID() *string     { return b.paymentIntentID }
func (b *Booking) IsOwnerReservation() bool     { return b.ownerReservation }
func (b *Booking) IsCancelled() bool            { return b.cancelled }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
