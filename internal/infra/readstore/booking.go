package readstore

import (
	"context"

	"venueserv/internal/infra"
	"venueserv/internal/infra/db"
	"venueserv/internal/pkg/pgconv"
	"venueserv/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewSQL = `
SELECT b.id, b.venue_id, v.name, v.city, v.type, v.email, b.user_id,
       b.date, b.slot, b.guests,
       b.base_cents, b.platform_fee_cents, b.owner_earnings_cents,
       b.payment_status, b.payment_intent_id,
       b.is_owner_reservation, b.is_cancelled,
       b.created_at, b.updated_at
FROM bookings b
JOIN venues v ON v.id = b.venue_id`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingViewSQL+" WHERE b.id = $1", id)

	var view queries.BookingView
	err := row.Scan(
		&view.ID, &view.VenueID, &view.VenueName, &view.VenueCity, &view.VenueType, &view.VenueEmail, &view.UserID,
		&view.Date, &view.Timeslot, &view.Guests,
		&view.AmountCents, &view.PlatformFeeCents, &view.OwnerEarningsCents,
		&view.PaymentStatus, &view.PaymentIntentID,
		&view.IsOwnerReservation, &view.IsCancelled,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &view, nil
}

const bookingListSQL = `
SELECT b.id, b.venue_id, v.name, v.city,
       b.date, b.slot, b.guests, b.base_cents,
       b.payment_status, b.is_cancelled, b.created_at
FROM bookings b
JOIN venues v ON v.id = b.venue_id`

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, bookingListSQL+" WHERE b.user_id = $1 ORDER BY b.created_at DESC", userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user bookings", err)
	}
	return collectBookingListItems(rows)
}

func (r *BookingReadStore) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, bookingListSQL+" WHERE v.owner_id = $1 ORDER BY b.created_at DESC", ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owner venue bookings", err)
	}
	return collectBookingListItems(rows)
}

func collectBookingListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		err := rows.Scan(
			&item.ID, &item.VenueID, &item.VenueName, &item.VenueCity,
			&item.Date, &item.Timeslot, &item.Guests, &item.AmountCents,
			&item.PaymentStatus, &item.IsCancelled, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return result, nil
}
