package response

import (
	"time"

	"venueserv/internal/domain/booking"
	"venueserv/internal/usecase/commands"
	"venueserv/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const dateLayout = "2006-01-02"

// BookedSlotResponse is an existing booking as exposed by the availability
// check: just enough to explain why a slot is taken.
type BookedSlotResponse struct {
	Timeslot int    `json:"timeslot"`
	Date     string `json:"date"`
}

type AvailabilityResponse struct {
	IsAvailable      bool                 `json:"isAvailable"`
	Message          string               `json:"message"`
	ExistingBookings []BookedSlotResponse `json:"existingBookings"`
}

type CreateBookingResponse struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
	AmountCents     int64  `json:"amountCents"`
}

type BookingResponse struct {
	ID                 uuid.UUID `json:"id"`
	VenueID            uuid.UUID `json:"venueId"`
	VenueName          string    `json:"venueName"`
	VenueCity          string    `json:"venueCity"`
	VenueType          string    `json:"venueType"`
	UserID             uuid.UUID `json:"userId"`
	Date               string    `json:"date"`
	Timeslot           int16     `json:"timeslot"`
	TimeslotName       string    `json:"timeslotName"`
	Guests             int32     `json:"guests"`
	AmountCents        int64     `json:"amountCents"`
	PlatformFeeCents   int64     `json:"platformFeeCents"`
	OwnerEarningsCents int64     `json:"ownerEarningsCents"`
	PaymentStatus      string    `json:"paymentStatus"`
	PaymentIntentID    *string   `json:"paymentIntentId,omitempty"`
	IsOwnerReservation bool      `json:"isOwnerReservation"`
	IsCancelled        bool      `json:"isCancelled"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID            uuid.UUID `json:"id"`
	VenueID       uuid.UUID `json:"venueId"`
	VenueName     string    `json:"venueName"`
	VenueCity     string    `json:"venueCity"`
	Date          string    `json:"date"`
	Timeslot      int16     `json:"timeslot"`
	TimeslotName  string    `json:"timeslotName"`
	Guests        int32     `json:"guests"`
	AmountCents   int64     `json:"amountCents"`
	PaymentStatus string    `json:"paymentStatus"`
	IsCancelled   bool      `json:"isCancelled"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromAvailabilityResult(res *commands.AvailabilityResult) *AvailabilityResponse {
	existing := make([]BookedSlotResponse, 0, len(res.Existing))
	for _, b := range res.Existing {
		existing = append(existing, BookedSlotResponse{
			Timeslot: int(b.Slot),
			Date:     b.Date.Format(dateLayout),
		})
	}
	return &AvailabilityResponse{
		IsAvailable:      res.Available,
		Message:          res.Message,
		ExistingBookings: existing,
	}
}

func FromCreateBookingResult(res *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		PaymentIntentID: res.PaymentIntentID,
		ClientSecret:    res.ClientSecret,
		AmountCents:     res.AmountCents,
	}
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{}
	_ = copier.Copy(resp, view)
	resp.Date = view.Date.Format(dateLayout)
	resp.TimeslotName = booking.Slot(view.Timeslot).String()
	return resp
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListResponse {
	out := make([]*BookingListResponse, 0, len(items))
	for _, item := range items {
		resp := &BookingListResponse{}
		_ = copier.Copy(resp, item)
		resp.Date = item.Date.Format(dateLayout)
		resp.TimeslotName = booking.Slot(item.Timeslot).String()
		out = append(out, resp)
	}
	return out
}
