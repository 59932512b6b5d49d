package venue

import (
	"errors"
	"strings"
	"time"

	"venueserv/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("venue name is required")
	ErrEmptyAddress    = errors.New("venue address is required")
	ErrEmptyCity       = errors.New("venue city is required")
	ErrInvalidCapacity = errors.New("venue capacity must be positive")
	ErrInvalidRate     = errors.New("venue rates cannot be negative")
	ErrNotBookable     = errors.New("venue is not accepted for booking")
)

// SlotRates holds the per-slot base prices in the smallest currency unit.
type SlotRates struct {
	MorningCents int64
	EveningCents int64
	FullDayCents int64
}

func (r SlotRates) For(slot booking.Slot) int64 {
	switch slot {
	case booking.SlotMorning:
		return r.MorningCents
	case booking.SlotEvening:
		return r.EveningCents
	default:
		return r.FullDayCents
	}
}

type Venue struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	name      string
	venueType string
	address   string
	city      string
	email     string
	mobile    string
	capacity  int
	rates     SlotRates
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewVenue creates an owner's listing. New listings start as pending and
// become bookable only once accepted by moderation.
func NewVenue(
	ownerID uuid.UUID,
	name, venueType, address, city, email, mobile string,
	capacity int,
	rates SlotRates,
) (*Venue, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(address) == "" {
		return nil, ErrEmptyAddress
	}
	if strings.TrimSpace(city) == "" {
		return nil, ErrEmptyCity
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if rates.MorningCents < 0 || rates.EveningCents < 0 || rates.FullDayCents < 0 {
		return nil, ErrInvalidRate
	}

	return &Venue{
		id:        uuid.New(),
		ownerID:   ownerID,
		name:      name,
		venueType: venueType,
		address:   address,
		city:      city,
		email:     email,
		mobile:    mobile,
		capacity:  capacity,
		rates:     rates,
		status:    StatusPending,
	}, nil
}

func Reconstruct(
	id, ownerID uuid.UUID,
	name, venueType, address, city, email, mobile string,
	capacity int,
	rates SlotRates,
	status Status,
	createdAt, updatedAt time.Time,
) *Venue {
	return &Venue{
		id:        id,
		ownerID:   ownerID,
		name:      name,
		venueType: venueType,
		address:   address,
		city:      city,
		email:     email,
		mobile:    mobile,
		capacity:  capacity,
		rates:     rates,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (v *Venue) IsBookable() bool {
	return v.status == StatusAccepted
}

func (v *Venue) IsOwnedBy(userID uuid.UUID) bool {
	return v.ownerID == userID
}

func (v *Venue) ID() uuid.UUID        { return v.id }
func (v *Venue) OwnerID() uuid.UUID   { return v.ownerID }
func (v *Venue) Name() string         { return v.name }
func (v *Venue) Type() string         { return v.venueType }
func (v *Venue) Address() string      { return v.address }
func (v *Venue) City() string         { return v.city }
func (v *Venue) Email() string        { return v.email }
func (v *Venue) Mobile() string       { return v.mobile }
func (v *Venue) Capacity() int        { return v.capacity }
func (v *Venue) Rates() SlotRates     { return v.rates }
func (v *Venue) Status() Status       { return v.status }
func (v *Venue) CreatedAt() time.Time { return v.createdAt }
func (v *Venue) UpdatedAt() time.Time { return v.updatedAt }
