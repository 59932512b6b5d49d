//go:build unit

package commands_test

import (
	"context"
	"strconv"
	"testing"

	"venueserv/internal/domain/booking"
	"venueserv/internal/domain/venue"
	"venueserv/internal/infra"
	"venueserv/internal/pkg/clock"
	"venueserv/internal/pkg/config"
	"venueserv/internal/usecase/commands"
	"venueserv/tests/common/builder"
	commandsmock "venueserv/tests/mock/commands"
	queriesmock "venueserv/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubDB satisfies commands.DB without a live connection; the repositories
// behind it are mocked, so no statement ever reaches Exec or Query.
type stubDB struct{}

func (stubDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (stubDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (stubDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (stubDB) Begin(ctx context.Context) (pgx.Tx, error) {
	return stubTx{}, nil
}

type stubTx struct{}

func (stubTx) Begin(ctx context.Context) (pgx.Tx, error) { return stubTx{}, nil }
func (stubTx) Commit(ctx context.Context) error          { return nil }
func (stubTx) Rollback(ctx context.Context) error        { return nil }
func (stubTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (stubTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (stubTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (stubTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (stubTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (stubTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (stubTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (stubTx) Conn() *pgx.Conn                                               { return nil }

type bookingCommandsFixture struct {
	venueReads *commandsmock.MockVenueReads
	repo       *commandsmock.MockBookingRepository
	provider   *commandsmock.MockPaymentProvider
	queries    *queriesmock.MockBookingQueries
	commands   commands.BookingCommands
}

func newBookingCommandsFixture() *bookingCommandsFixture {
	f := &bookingCommandsFixture{
		venueReads: new(commandsmock.MockVenueReads),
		repo:       new(commandsmock.MockBookingRepository),
		provider:   new(commandsmock.MockPaymentProvider),
		queries:    new(queriesmock.MockBookingQueries),
	}
	f.commands = commands.NewBookingCommands(
		f.venueReads, f.repo, f.provider, nil, f.queries,
		stubDB{}, clock.NewRealClock(), config.NewTestConfig(),
	)
	return f
}

func (f *bookingCommandsFixture) assertExpectations(t *testing.T) {
	f.venueReads.AssertExpectations(t)
	f.repo.AssertExpectations(t)
	f.provider.AssertExpectations(t)
	f.queries.AssertExpectations(t)
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows, infra.KindNotFound)
}

func intentMetadata(b *builder.BookingBuilder) map[string]string {
	return map[string]string{
		"venueId":       b.VenueID.String(),
		"userId":        b.UserID.String(),
		"date":          b.Date.Format("2006-01-02"),
		"timeslot":      strconv.Itoa(int(b.Slot)),
		"numberOfGuest": strconv.Itoa(b.Guests),
		"amount":        strconv.FormatInt(b.Quote.BaseCents, 10),
		"platformFee":   strconv.FormatInt(b.Quote.PlatformFeeCents, 10),
		"ownerEarnings": strconv.FormatInt(b.Quote.OwnerEarningsCents, 10),
	}
}

func TestConfirmBooking(t *testing.T) {
	t.Run("second confirm of the same intent does not insert again", func(t *testing.T) {
		f := newBookingCommandsFixture()
		b := builder.NewBookingBuilder()
		bookingID := uuid.New()
		view := b.BuildViewQuery()
		view.ID = bookingID

		f.repo.On("FindByPaymentIntent", mock.Anything, mock.Anything, b.PaymentIntentID).
			Return(nil, notFoundErr("booking not found")).Once()
		f.provider.On("RetrieveIntent", mock.Anything, b.PaymentIntentID).
			Return(&commands.RetrievedIntent{
				ID:       b.PaymentIntentID,
				Status:   commands.IntentSucceeded,
				Metadata: intentMetadata(b),
			}, nil).Once()
		f.repo.On("ActiveSlots", mock.Anything, mock.Anything, b.VenueID, mock.Anything).
			Return(nil, nil).Once()
		f.repo.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(bookingID, nil).Once()
		f.queries.On("GetByID", mock.Anything, bookingID).Return(view, nil)

		got, err := f.commands.ConfirmBooking(context.Background(), b.PaymentIntentID)
		require.NoError(t, err)
		require.Equal(t, bookingID, got.ID)

		// Replay: the existing row is found up front and returned as is.
		snap := b.BuildSnapshot()
		snap.ID = bookingID
		f.repo.On("FindByPaymentIntent", mock.Anything, mock.Anything, b.PaymentIntentID).
			Return(snap, nil).Once()

		got, err = f.commands.ConfirmBooking(context.Background(), b.PaymentIntentID)
		require.NoError(t, err)
		require.Equal(t, bookingID, got.ID)

		f.repo.AssertNumberOfCalls(t, "Create", 1)
		f.provider.AssertNumberOfCalls(t, "RetrieveIntent", 1)
		f.assertExpectations(t)
	})

	t.Run("lost insert race falls back to the winning row", func(t *testing.T) {
		f := newBookingCommandsFixture()
		b := builder.NewBookingBuilder()
		bookingID := uuid.New()
		view := b.BuildViewQuery()
		view.ID = bookingID

		dupErr := infra.WrapRepoErr("insert booking",
			&pgconn.PgError{Code: "23505", ConstraintName: "idx_bookings_payment_intent_id"},
			infra.KindDuplicateKey)

		f.repo.On("FindByPaymentIntent", mock.Anything, mock.Anything, b.PaymentIntentID).
			Return(nil, notFoundErr("booking not found")).Once()
		f.provider.On("RetrieveIntent", mock.Anything, b.PaymentIntentID).
			Return(&commands.RetrievedIntent{
				ID:       b.PaymentIntentID,
				Status:   commands.IntentSucceeded,
				Metadata: intentMetadata(b),
			}, nil).Once()
		f.repo.On("ActiveSlots", mock.Anything, mock.Anything, b.VenueID, mock.Anything).
			Return(nil, nil).Once()
		f.repo.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(uuid.Nil, dupErr).Once()

		snap := b.BuildSnapshot()
		snap.ID = bookingID
		f.repo.On("FindByPaymentIntent", mock.Anything, mock.Anything, b.PaymentIntentID).
			Return(snap, nil).Once()
		f.queries.On("GetByID", mock.Anything, bookingID).Return(view, nil).Once()

		got, err := f.commands.ConfirmBooking(context.Background(), b.PaymentIntentID)
		require.NoError(t, err)
		require.Equal(t, bookingID, got.ID)

		f.repo.AssertNumberOfCalls(t, "Create", 1)
		f.assertExpectations(t)
	})

	t.Run("intent that has not succeeded is rejected", func(t *testing.T) {
		f := newBookingCommandsFixture()
		b := builder.NewBookingBuilder()

		f.repo.On("FindByPaymentIntent", mock.Anything, mock.Anything, b.PaymentIntentID).
			Return(nil, notFoundErr("booking not found")).Once()
		f.provider.On("RetrieveIntent", mock.Anything, b.PaymentIntentID).
			Return(&commands.RetrievedIntent{
				ID:     b.PaymentIntentID,
				Status: commands.IntentStatus("processing"),
			}, nil).Once()

		_, err := f.commands.ConfirmBooking(context.Background(), b.PaymentIntentID)
		require.ErrorIs(t, err, commands.ErrPaymentNotSucceeded)

		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("malformed intent metadata is rejected", func(t *testing.T) {
		f := newBookingCommandsFixture()
		b := builder.NewBookingBuilder()
		md := intentMetadata(b)
		md["timeslot"] = "not-a-slot"

		f.repo.On("FindByPaymentIntent", mock.Anything, mock.Anything, b.PaymentIntentID).
			Return(nil, notFoundErr("booking not found")).Once()
		f.provider.On("RetrieveIntent", mock.Anything, b.PaymentIntentID).
			Return(&commands.RetrievedIntent{
				ID:       b.PaymentIntentID,
				Status:   commands.IntentSucceeded,
				Metadata: md,
			}, nil).Once()

		_, err := f.commands.ConfirmBooking(context.Background(), b.PaymentIntentID)
		require.ErrorIs(t, err, commands.ErrCorruptIntentMetadata)
		f.assertExpectations(t)
	})
}

func TestCreateOwnerReservation(t *testing.T) {
	venueSnapshot := func(ownerID uuid.UUID) *commands.VenueSnapshot {
		return &commands.VenueSnapshot{
			ID:           uuid.New(),
			OwnerID:      ownerID,
			Name:         "Grand Palace Hall",
			Email:        "owner@grandpalace.example",
			Status:       venue.StatusAccepted,
			MorningCents: 500000, EveningCents: 700000, FullDayCents: 1000000,
		}
	}

	t.Run("serialization failure is retried inside the insert transaction", func(t *testing.T) {
		f := newBookingCommandsFixture()
		ownerID := uuid.New()
		b := builder.NewBookingBuilder()
		bookingID := uuid.New()
		view := b.BuildViewQuery()
		view.ID = bookingID

		f.venueReads.On("FindSnapshot", mock.Anything, mock.Anything, b.VenueID).
			Return(venueSnapshot(ownerID), nil).Once()
		f.repo.On("ActiveSlots", mock.Anything, mock.Anything, b.VenueID, mock.Anything).
			Return(nil, nil)

		serializationErr := infra.WrapRepoErr("insert booking", &pgconn.PgError{Code: "40001"})
		f.repo.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(uuid.Nil, serializationErr).Once()
		f.repo.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(bookingID, nil).Once()
		f.queries.On("GetByID", mock.Anything, bookingID).Return(view, nil).Once()

		got, err := f.commands.CreateOwnerReservation(context.Background(), commands.OwnerReservationRequest{
			VenueID:  b.VenueID,
			Date:     b.Date,
			Timeslot: int(b.Slot),
			Guests:   b.Guests,
		}, ownerID)
		require.NoError(t, err)
		require.Equal(t, bookingID, got.ID)

		f.repo.AssertNumberOfCalls(t, "Create", 2)
		f.assertExpectations(t)
	})

	t.Run("someone else's venue is refused", func(t *testing.T) {
		f := newBookingCommandsFixture()
		b := builder.NewBookingBuilder()

		f.venueReads.On("FindSnapshot", mock.Anything, mock.Anything, b.VenueID).
			Return(venueSnapshot(uuid.New()), nil).Once()

		_, err := f.commands.CreateOwnerReservation(context.Background(), commands.OwnerReservationRequest{
			VenueID:  b.VenueID,
			Date:     b.Date,
			Timeslot: int(b.Slot),
			Guests:   b.Guests,
		}, uuid.New())
		require.ErrorIs(t, err, commands.ErrNotVenueOwner)
		f.assertExpectations(t)
	})

	t.Run("occupied slot conflicts", func(t *testing.T) {
		f := newBookingCommandsFixture()
		ownerID := uuid.New()
		b := builder.NewBookingBuilder()

		f.venueReads.On("FindSnapshot", mock.Anything, mock.Anything, b.VenueID).
			Return(venueSnapshot(ownerID), nil).Once()
		f.repo.On("ActiveSlots", mock.Anything, mock.Anything, b.VenueID, mock.Anything).
			Return([]booking.BookedSlot{{Slot: booking.SlotFullDay, Date: b.Date}}, nil).Once()

		_, err := f.commands.CreateOwnerReservation(context.Background(), commands.OwnerReservationRequest{
			VenueID:  b.VenueID,
			Date:     b.Date,
			Timeslot: int(b.Slot),
			Guests:   b.Guests,
		}, ownerID)
		require.ErrorIs(t, err, commands.ErrSlotUnavailable)

		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})
}
