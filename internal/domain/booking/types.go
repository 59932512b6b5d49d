package booking

import "errors"

var (
	ErrInvalidSlot          = errors.New("invalid timeslot: must be 0 (morning), 1 (evening), or 2 (fullday)")
	ErrInvalidGuestCount    = errors.New("number of guests must be positive")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrAlreadyCancelled     = errors.New("booking is already cancelled")
	ErrPastBooking          = errors.New("cannot cancel a past booking")
	ErrNegativeAmount       = errors.New("amount cannot be negative")
)

// Slot is a bookable portion of a venue's calendar day. FullDay is mutually
// exclusive with every other slot on the same date; Morning and Evening may
// coexist.
type Slot int16

const (
	SlotMorning Slot = 0
	SlotEvening Slot = 1
	SlotFullDay Slot = 2
)

func NewSlot(v int) (Slot, error) {
	s := Slot(v)
	if !s.IsValid() {
		return 0, ErrInvalidSlot
	}
	return s, nil
}

func (s Slot) IsValid() bool {
	switch s {
	case SlotMorning, SlotEvening, SlotFullDay:
		return true
	default:
		return false
	}
}

func (s Slot) String() string {
	switch s {
	case SlotMorning:
		return "morning"
	case SlotEvening:
		return "evening"
	case SlotFullDay:
		return "fullday"
	default:
		return "unknown"
	}
}

// Span returns the half-open day coverage used by the storage exclusion
// constraint: morning [0,1), evening [1,2), fullday [0,2). Overlapping spans
// on the same (venue, date) are exactly the conflicting pairs.
func (s Slot) Span() (int32, int32) {
	switch s {
	case SlotMorning:
		return 0, 1
	case SlotEvening:
		return 1, 2
	default:
		return 0, 2
	}
}

// ConflictsWith reports whether two non-cancelled bookings for the same
// (venue, date) exclude each other.
func (s Slot) ConflictsWith(other Slot) bool {
	return s == SlotFullDay || other == SlotFullDay || s == other
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

func NewPaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return PaymentStatus(s), nil
	default:
		return "", ErrInvalidPaymentStatus
	}
}

func (p PaymentStatus) String() string {
	return string(p)
}
