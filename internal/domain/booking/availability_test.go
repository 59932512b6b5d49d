//go:build unit

package booking_test

import (
	"testing"
	"time"

	"venueserv/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotConflictsWith(t *testing.T) {
	testCases := []struct {
		name     string
		a        booking.Slot
		b        booking.Slot
		conflict bool
	}{
		{name: "morning vs morning", a: booking.SlotMorning, b: booking.SlotMorning, conflict: true},
		{name: "morning vs evening", a: booking.SlotMorning, b: booking.SlotEvening, conflict: false},
		{name: "evening vs morning", a: booking.SlotEvening, b: booking.SlotMorning, conflict: false},
		{name: "evening vs evening", a: booking.SlotEvening, b: booking.SlotEvening, conflict: true},
		{name: "fullday vs morning", a: booking.SlotFullDay, b: booking.SlotMorning, conflict: true},
		{name: "fullday vs evening", a: booking.SlotFullDay, b: booking.SlotEvening, conflict: true},
		{name: "morning vs fullday", a: booking.SlotMorning, b: booking.SlotFullDay, conflict: true},
		{name: "evening vs fullday", a: booking.SlotEvening, b: booking.SlotFullDay, conflict: true},
		{name: "fullday vs fullday", a: booking.SlotFullDay, b: booking.SlotFullDay, conflict: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.conflict, tc.a.ConflictsWith(tc.b))
		})
	}
}

func TestSlotSpanMatchesConflictMatrix(t *testing.T) {
	// Span overlap must agree with ConflictsWith for every slot pair, since
	// the storage constraint enforces the former and the code checks the
	// latter.
	slots := []booking.Slot{booking.SlotMorning, booking.SlotEvening, booking.SlotFullDay}
	for _, a := range slots {
		for _, b := range slots {
			aLo, aHi := a.Span()
			bLo, bHi := b.Span()
			overlaps := aLo < bHi && bLo < aHi
			assert.Equal(t, a.ConflictsWith(b), overlaps,
				"span overlap disagrees with conflict rule for %s vs %s", a, b)
		}
	}
}

func TestNewSlot(t *testing.T) {
	for _, v := range []int{0, 1, 2} {
		s, err := booking.NewSlot(v)
		require.NoError(t, err)
		assert.True(t, s.IsValid())
	}

	for _, v := range []int{-1, 3, 99} {
		_, err := booking.NewSlot(v)
		assert.ErrorIs(t, err, booking.ErrInvalidSlot)
	}
}

func TestNormalizeDate(t *testing.T) {
	t.Run("strips time of day", func(t *testing.T) {
		in := time.Date(2026, 3, 14, 15, 9, 26, 535, time.UTC)
		got := booking.NormalizeDate(in)
		assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("converts to UTC day first", func(t *testing.T) {
		loc := time.FixedZone("IST", 5*3600+1800)
		in := time.Date(2026, 3, 14, 2, 0, 0, 0, loc) // 2026-03-13 20:30 UTC
		got := booking.NormalizeDate(in)
		assert.Equal(t, time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("idempotent", func(t *testing.T) {
		in := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
		assert.Equal(t, booking.NormalizeDate(in), booking.NormalizeDate(booking.NormalizeDate(in)))
	})
}

func TestEvaluate(t *testing.T) {
	date := booking.NormalizeDate(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	testCases := []struct {
		name          string
		candidate     booking.Slot
		existing      []booking.BookedSlot
		wantAvailable bool
		wantConflicts int
	}{
		{
			name:          "empty day accepts anything",
			candidate:     booking.SlotFullDay,
			existing:      nil,
			wantAvailable: true,
		},
		{
			name:      "morning and evening coexist",
			candidate: booking.SlotEvening,
			existing: []booking.BookedSlot{
				{Slot: booking.SlotMorning, Date: date},
			},
			wantAvailable: true,
		},
		{
			name:      "fullday blocked by morning",
			candidate: booking.SlotFullDay,
			existing: []booking.BookedSlot{
				{Slot: booking.SlotMorning, Date: date},
			},
			wantAvailable: false,
			wantConflicts: 1,
		},
		{
			name:      "morning blocked by fullday",
			candidate: booking.SlotMorning,
			existing: []booking.BookedSlot{
				{Slot: booking.SlotFullDay, Date: date},
			},
			wantAvailable: false,
			wantConflicts: 1,
		},
		{
			name:      "same slot taken",
			candidate: booking.SlotEvening,
			existing: []booking.BookedSlot{
				{Slot: booking.SlotEvening, Date: date},
			},
			wantAvailable: false,
			wantConflicts: 1,
		},
		{
			name:      "fullday blocked by both half slots",
			candidate: booking.SlotFullDay,
			existing: []booking.BookedSlot{
				{Slot: booking.SlotMorning, Date: date},
				{Slot: booking.SlotEvening, Date: date},
			},
			wantAvailable: false,
			wantConflicts: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			decision := booking.Evaluate(tc.candidate, tc.existing)
			assert.Equal(t, tc.wantAvailable, decision.Available)
			assert.Len(t, decision.Conflicts, tc.wantConflicts)
		})
	}
}
