package request

import (
	"time"

	"venueserv/internal/usecase/commands"

	"github.com/google/uuid"
)

// Dates arrive as "2006-01-02"; the binding tag keeps malformed dates out of
// the usecase layer.
type CheckAvailabilityRequest struct {
	VenueID  uuid.UUID `json:"venue_id" binding:"required"`
	Date     string    `json:"date" binding:"required,datetime=2006-01-02"`
	Timeslot int       `json:"timeslot" binding:"min=0,max=2"`
}

type CreateBookingRequest struct {
	VenueID  uuid.UUID `json:"venue_id" binding:"required"`
	Date     string    `json:"date" binding:"required,datetime=2006-01-02"`
	Timeslot int       `json:"timeslot" binding:"min=0,max=2"`
	Guests   int       `json:"guests" binding:"required,min=1"`
}

type ConfirmBookingRequest struct {
	PaymentIntentID string `json:"payment_intent_id" binding:"required"`
}

type OwnerReservationRequest struct {
	VenueID  uuid.UUID `json:"venue_id" binding:"required"`
	Date     string    `json:"date" binding:"required,datetime=2006-01-02"`
	Timeslot int       `json:"timeslot" binding:"min=0,max=2"`
	Guests   int       `json:"guests,omitempty"`
}

func (r CreateBookingRequest) ToCommand() (commands.CreateBookingRequest, error) {
	day, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}
	return commands.CreateBookingRequest{
		VenueID:  r.VenueID,
		Date:     day,
		Timeslot: r.Timeslot,
		Guests:   r.Guests,
	}, nil
}

func (r OwnerReservationRequest) ToCommand() (commands.OwnerReservationRequest, error) {
	day, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return commands.OwnerReservationRequest{}, err
	}
	return commands.OwnerReservationRequest{
		VenueID:  r.VenueID,
		Date:     day,
		Timeslot: r.Timeslot,
		Guests:   r.Guests,
	}, nil
}

func (r CheckAvailabilityRequest) ParseDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.Date)
}
