package readstore

import (
	"context"

	"venueserv/internal/domain/venue"
	"venueserv/internal/infra"
	"venueserv/internal/infra/db"
	"venueserv/internal/pkg/pgconv"
	"venueserv/internal/usecase/commands"
	"venueserv/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type VenueReadStore struct {
	db db.DBTX
}

func NewVenueReadStore(dbtx db.DBTX) *VenueReadStore {
	return &VenueReadStore{db: dbtx}
}

const venueViewSQL = `
SELECT id, owner_id, name, type, address, city, email, mobile,
       capacity, morning_cents, evening_cents, fullday_cents, status,
       created_at, updated_at
FROM venues`

func (r *VenueReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VenueView, error) {
	row := r.db.QueryRow(ctx, venueViewSQL+" WHERE id = $1", id)

	view, err := scanVenueView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find venue by ID", err)
	}
	return view, nil
}

func (r *VenueReadStore) ListAccepted(ctx context.Context, city *string) ([]*queries.VenueView, error) {
	sql := venueViewSQL + " WHERE status = 'accepted'"
	args := []any{}
	if city != nil {
		sql += " AND city = $1"
		args = append(args, *city)
	}
	sql += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list accepted venues", err)
	}
	return collectVenueViews(rows)
}

func (r *VenueReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.VenueView, error) {
	rows, err := r.db.Query(ctx, venueViewSQL+" WHERE owner_id = $1 ORDER BY created_at DESC", ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owner venues", err)
	}
	return collectVenueViews(rows)
}

// FindSnapshot serves the write side: commands need the owner, status and
// rates of a venue without pulling the full read model.
func (r *VenueReadStore) FindSnapshot(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.VenueSnapshot, error) {
	const sql = `
SELECT id, owner_id, name, email, status, morning_cents, evening_cents, fullday_cents
FROM venues
WHERE id = $1`

	var (
		snap   commands.VenueSnapshot
		status string
	)
	err := dbtx.QueryRow(ctx, sql, id).Scan(
		&snap.ID, &snap.OwnerID, &snap.Name, &snap.Email, &status,
		&snap.MorningCents, &snap.EveningCents, &snap.FullDayCents,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find venue snapshot", err)
	}

	snap.Status = venue.Status(status)
	return &snap, nil
}

func scanVenueView(row pgx.Row) (*queries.VenueView, error) {
	var v queries.VenueView
	err := row.Scan(
		&v.ID, &v.OwnerID, &v.Name, &v.Type, &v.Address, &v.City, &v.Email, &v.Mobile,
		&v.Capacity, &v.MorningCents, &v.EveningCents, &v.FullDayCents, &v.Status,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectVenueViews(rows pgx.Rows) ([]*queries.VenueView, error) {
	defer rows.Close()

	var result []*queries.VenueView
	for rows.Next() {
		view, err := scanVenueView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan venue", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate venues", err)
	}
	return result, nil
}
