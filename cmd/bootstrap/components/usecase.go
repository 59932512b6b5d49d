package components

import (
	"venueserv/internal/infra/mailer"
	"venueserv/internal/infra/payment"
	"venueserv/internal/pkg/clock"
	"venueserv/internal/pkg/config"
	"venueserv/internal/usecase"
	"venueserv/internal/usecase/commands"
	"venueserv/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *payment.StripeProvider {
		return payment.NewStripeProvider(cfg.Payment)
	},
	fx.Annotate(
		func(p *payment.StripeProvider) *payment.StripeProvider { return p },
		fx.As(new(commands.PaymentProvider)),
	),
	fx.Annotate(
		func(cfg config.Config) *mailer.SMTPNotifier {
			return mailer.NewSMTPNotifier(cfg.Mail)
		},
		fx.As(new(commands.Notifier)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewVenueCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewVenueQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
