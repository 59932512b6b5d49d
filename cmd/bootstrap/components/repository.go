package components

import (
	"venueserv/internal/infra/db"
	"venueserv/internal/infra/readstore"
	"venueserv/internal/infra/repository"
	"venueserv/internal/usecase/commands"
	"venueserv/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		NewCommandDB,
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewVenueRepository,
			fx.As(new(commands.VenueRepository)),
		),
		// The venue read store serves both the public read side and the
		// write-side snapshot port.
		fx.Annotate(
			readstore.NewVenueReadStore,
			fx.As(new(queries.VenueReadStore)),
			fx.As(new(commands.VenueReads)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewCommandDB(pool *pgxpool.Pool) commands.DB {
	return pool
}
