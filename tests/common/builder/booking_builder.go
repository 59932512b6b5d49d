//go:build unit || e2e

package builder

import (
	"time"

	dombooking "venueserv/internal/domain/booking"
	reqdto "venueserv/internal/handler/dto/request"
	"venueserv/internal/usecase/commands"
	"venueserv/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	VenueID         uuid.UUID
	VenueName       string
	VenueCity       string
	VenueType       string
	VenueEmail      string
	UserID          uuid.UUID
	Date            time.Time
	Slot            dombooking.Slot
	Guests          int
	Quote           dombooking.Quote
	PaymentIntentID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	quote, _ := dombooking.NewQuote(500000, 0.10)
	return &BookingBuilder{
		VenueID:         uuid.New(),
		VenueName:       "Grand Palace Hall",
		VenueCity:       "Bengaluru",
		VenueType:       "banquet",
		VenueEmail:      "owner@grandpalace.example",
		UserID:          uuid.New(),
		Date:            dombooking.NormalizeDate(now.AddDate(0, 0, 7)),
		Slot:            dombooking.SlotMorning,
		Guests:          120,
		Quote:           quote,
		PaymentIntentID: "pi_test_123",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewPaidBooking(b.VenueID, b.UserID, b.Date, b.Slot, b.Guests, b.Quote, b.PaymentIntentID)
}

func (b *BookingBuilder) BuildOwnerReservation() (*dombooking.Booking, error) {
	return dombooking.NewOwnerReservation(b.VenueID, b.UserID, b.Date, b.Slot, b.Guests)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		VenueID:  b.VenueID,
		Date:     b.Date.Format("2006-01-02"),
		Timeslot: int(b.Slot),
		Guests:   b.Guests,
	}
}

func (b *BookingBuilder) BuildAvailabilityRequestDTO() reqdto.CheckAvailabilityRequest {
	return reqdto.CheckAvailabilityRequest{
		VenueID:  b.VenueID,
		Date:     b.Date.Format("2006-01-02"),
		Timeslot: int(b.Slot),
	}
}

func (b *BookingBuilder) BuildOwnerReservationRequestDTO() reqdto.OwnerReservationRequest {
	return reqdto.OwnerReservationRequest{
		VenueID:  b.VenueID,
		Date:     b.Date.Format("2006-01-02"),
		Timeslot: int(b.Slot),
		Guests:   b.Guests,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	intentID := b.PaymentIntentID
	return &queries.BookingView{
		ID:                 uuid.New(),
		VenueID:            b.VenueID,
		VenueName:          b.VenueName,
		VenueCity:          b.VenueCity,
		VenueType:          b.VenueType,
		VenueEmail:         b.VenueEmail,
		UserID:             b.UserID,
		Date:               b.Date,
		Timeslot:           int16(b.Slot),
		Guests:             int32(b.Guests),
		AmountCents:        b.Quote.BaseCents,
		PlatformFeeCents:   b.Quote.PlatformFeeCents,
		OwnerEarningsCents: b.Quote.OwnerEarningsCents,
		PaymentStatus:      dombooking.PaymentCompleted.String(),
		PaymentIntentID:    &intentID,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:            uuid.New(),
		VenueID:       b.VenueID,
		VenueName:     b.VenueName,
		VenueCity:     b.VenueCity,
		Date:          b.Date,
		Timeslot:      int16(b.Slot),
		Guests:        int32(b.Guests),
		AmountCents:   b.Quote.BaseCents,
		PaymentStatus: dombooking.PaymentCompleted.String(),
		CreatedAt:     b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildSnapshot() *commands.BookingSnapshot {
	intentID := b.PaymentIntentID
	return &commands.BookingSnapshot{
		ID:              uuid.New(),
		VenueID:         b.VenueID,
		UserID:          b.UserID,
		Date:            b.Date,
		Slot:            b.Slot,
		Guests:          b.Guests,
		Quote:           b.Quote,
		PaymentStatus:   dombooking.PaymentCompleted,
		PaymentIntentID: &intentID,
	}
}
