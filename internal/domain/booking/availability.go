package booking

import "time"

// BookedSlot is the minimal projection of an existing non-cancelled booking
// that availability evaluation needs.
type BookedSlot struct {
	Slot Slot
	Date time.Time
}

// Decision is the outcome of an availability evaluation. Unavailable is an
// expected result, not an error: callers inspect Conflicts to explain it.
type Decision struct {
	Available bool
	Conflicts []BookedSlot
}

// NormalizeDate strips the time-of-day component, pinning a booking date to
// its UTC day boundary. It must be applied identically on write and on read,
// or conflicting bookings silently escape detection.
func NormalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Evaluate decides whether a candidate slot may be booked given the existing
// non-cancelled bookings for the same venue and normalized date. Callers are
// responsible for excluding cancelled bookings from the input; a cancelled
// booking's slot is released. Owner reservations occupy slots exactly like
// paid bookings and must be included.
//
// The candidate conflicts with an existing booking when either side holds the
// full-day slot or both hold the identical slot. This check is advisory: the
// storage layer's exclusion constraint is the correctness guarantee under
// concurrent inserts.
func Evaluate(candidate Slot, existing []BookedSlot) Decision {
	var conflicts []BookedSlot
	for _, b := range existing {
		if candidate.ConflictsWith(b.Slot) {
			conflicts = append(conflicts, b)
		}
	}
	return Decision{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}
}
