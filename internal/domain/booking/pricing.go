package booking

import "math"

// Quote fixes the money split for a booking at creation time. It is persisted
// with the booking so later display and accounting never recompute it from a
// possibly-changed venue rate.
type Quote struct {
	BaseCents          int64
	PlatformFeeCents   int64
	TotalCents         int64
	OwnerEarningsCents int64
}

// NewQuote computes the platform fee as round(base * feeFraction); the guest
// is charged base plus fee, the owner earns base minus fee. Rounding goes
// through math.Round in all cases so the split is stable.
func NewQuote(baseCents int64, feeFraction float64) (Quote, error) {
	if baseCents < 0 {
		return Quote{}, ErrNegativeAmount
	}
	fee := int64(math.Round(float64(baseCents) * feeFraction))
	return Quote{
		BaseCents:          baseCents,
		PlatformFeeCents:   fee,
		TotalCents:         baseCents + fee,
		OwnerEarningsCents: baseCents - fee,
	}, nil
}

// ZeroQuote is the split for owner reservations, which bypass payment.
func ZeroQuote() Quote {
	return Quote{}
}
