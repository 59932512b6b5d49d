package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"venueserv/internal/domain/booking"
	"venueserv/internal/domain/venue"
	"venueserv/internal/infra"
	"venueserv/internal/infra/db"
	"venueserv/internal/pkg/clock"
	"venueserv/internal/pkg/config"
	"venueserv/internal/pkg/errs"
	"venueserv/internal/usecase/queries"
	"venueserv/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVenueNotFound           = errs.New("venue not found")
	ErrVenueNotBookable        = errs.New("venue is not accepted for booking")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrInvalidDate             = errs.New("invalid booking date")
	ErrSlotUnavailable         = errs.New("venue is not available for the requested time slot")
	ErrPaymentProvider         = errs.New("payment provider request failed")
	ErrPaymentNotSucceeded     = errs.New("payment has not succeeded")
	ErrCorruptIntentMetadata   = errs.New("payment intent metadata is malformed")
	ErrNotBookingOwner         = errs.New("booking does not belong to the acting user")
	ErrNotVenueOwner           = errs.New("venue does not belong to the acting owner")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const (
	availableMessage   = "Venue is available for the requested time slot"
	unavailableMessage = "Venue is not available for the requested time slot"

	metadataDateLayout = "2006-01-02"

	insertTxMaxRetries = 2
)

type AvailabilityResult struct {
	Available bool
	Message   string
	Existing  []booking.BookedSlot
}

type CreateBookingRequest struct {
	VenueID  uuid.UUID
	Date     time.Time
	Timeslot int
	Guests   int
}

type CreateBookingResult struct {
	PaymentIntentID string
	ClientSecret    string
	AmountCents     int64
}

type OwnerReservationRequest struct {
	VenueID  uuid.UUID
	Date     time.Time
	Timeslot int
	Guests   int
}

type BookingCommands interface {
	CheckAvailability(ctx context.Context, venueID uuid.UUID, date time.Time, timeslot int) (*AvailabilityResult, error)
	CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error)
	ConfirmBooking(ctx context.Context, paymentIntentID string) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID) (*queries.BookingView, error)
	CreateOwnerReservation(ctx context.Context, req OwnerReservationRequest, ownerID uuid.UUID) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	venueReads     VenueReads
	bookingRepo    BookingRepository
	provider       PaymentProvider
	notifier       Notifier
	bookingQueries queries.BookingQueries
	pool           DB
	clock          clock.Clock
	payment        config.PaymentConfig
	platform       config.PlatformConfig
}

func NewBookingCommands(
	venueReads VenueReads,
	bookingRepo BookingRepository,
	provider PaymentProvider,
	notifier Notifier,
	bookingQueries queries.BookingQueries,
	pool DB,
	clk clock.Clock,
	cfg config.Config,
) BookingCommands {
	return &bookingUseCaseImpl{
		venueReads:     venueReads,
		bookingRepo:    bookingRepo,
		provider:       provider,
		notifier:       notifier,
		bookingQueries: bookingQueries,
		pool:           pool,
		clock:          clk,
		payment:        cfg.Payment,
		platform:       cfg.Platform,
	}
}

// CheckAvailability is the stand-alone query form of the availability
// decision; booking creation runs the identical evaluation.
func (uc *bookingUseCaseImpl) CheckAvailability(ctx context.Context, venueID uuid.UUID, date time.Time, timeslot int) (*AvailabilityResult, error) {
	slot, err := booking.NewSlot(timeslot)
	if err != nil {
		return nil, err
	}

	if _, err := uc.loadVenue(ctx, venueID); err != nil {
		return nil, err
	}

	day := booking.NormalizeDate(date)
	existing, err := uc.bookingRepo.ActiveSlots(ctx, uc.pool, venueID, day)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	decision := booking.Evaluate(slot, existing)
	result := &AvailabilityResult{
		Available: decision.Available,
		Message:   availableMessage,
		Existing:  existing,
	}
	if !decision.Available {
		result.Message = unavailableMessage
	}
	return result, nil
}

// CreateBooking runs the paid path up to AwaitingPayment: availability
// pre-check, then a payment intent carrying the booking parameters as
// metadata. No Booking row exists until the intent is confirmed.
func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error) {
	slot, err := booking.NewSlot(req.Timeslot)
	if err != nil {
		return nil, err
	}
	if req.Guests <= 0 {
		return nil, booking.ErrInvalidGuestCount
	}

	venueSnap, err := uc.loadVenue(ctx, req.VenueID)
	if err != nil {
		return nil, err
	}

	day := booking.NormalizeDate(req.Date)
	existing, err := uc.bookingRepo.ActiveSlots(ctx, uc.pool, req.VenueID, day)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if decision := booking.Evaluate(slot, existing); !decision.Available {
		return nil, ErrSlotUnavailable
	}

	quote, err := booking.NewQuote(venueSnap.RateFor(slot), uc.platform.FeeFraction)
	if err != nil {
		return nil, err
	}

	metadata := buildIntentMetadata(req.VenueID, userID, day, slot, req.Guests, quote)
	intent, err := uc.provider.CreateIntent(ctx, quote.TotalCents, uc.payment.Currency, metadata)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentProvider)
	}

	return &CreateBookingResult{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		AmountCents:     quote.TotalCents,
	}, nil
}

// ConfirmBooking materializes the Booking row once the provider reports the
// intent succeeded. Confirming the same intent twice is a replay: the unique
// payment_intent_id column guarantees a single row and the existing booking
// is returned.
func (uc *bookingUseCaseImpl) ConfirmBooking(ctx context.Context, paymentIntentID string) (*queries.BookingView, error) {
	if existing, err := uc.bookingRepo.FindByPaymentIntent(ctx, uc.pool, paymentIntentID); err == nil {
		return uc.bookingQueries.GetByID(ctx, existing.ID)
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	intent, err := uc.provider.RetrieveIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentProvider)
	}
	if intent.Status != IntentSucceeded {
		return nil, ErrPaymentNotSucceeded
	}

	params, err := parseIntentMetadata(intent.Metadata)
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptIntentMetadata)
	}

	entity, err := booking.NewPaidBooking(
		params.venueID, params.userID, params.date, params.slot, params.guests, params.quote, paymentIntentID,
	)
	if err != nil {
		return nil, err
	}

	bookingID, err := uc.insertBooking(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Lost the replay race: another confirm inserted the row first.
			if existing, ferr := uc.bookingRepo.FindByPaymentIntent(ctx, uc.pool, paymentIntentID); ferr == nil {
				return uc.bookingQueries.GetByID(ctx, existing.ID)
			}
		}
		return nil, err
	}

	view, err := uc.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	uc.notifyBooking(ctx, view, "Booking confirmed")
	return view, nil
}

// CancelBooking transitions Confirmed -> Cancelled for the booking's owner.
// Cancelling twice reports the already-cancelled state instead of applying a
// second effect.
func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID) (*queries.BookingView, error) {
	snap, err := uc.bookingRepo.FindSnapshotByID(ctx, uc.pool, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.UserID != actorID {
		return nil, ErrNotBookingOwner
	}

	if err := snap.ToDomain().Cancel(uc.clock.Now()); err != nil {
		return nil, err
	}

	updated, err := shared.RunInTx(ctx, uc.pool, func(tx db.DBTX) (bool, error) {
		return uc.bookingRepo.MarkCancelled(ctx, tx, bookingID)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !updated {
		// Raced with another cancel between snapshot and update.
		return nil, booking.ErrAlreadyCancelled
	}

	view, err := uc.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	uc.notifyBooking(ctx, view, "Booking cancelled")
	return view, nil
}

// CreateOwnerReservation is the no-payment path: the venue's own owner holds
// a slot directly, amount zero, confirmed immediately.
func (uc *bookingUseCaseImpl) CreateOwnerReservation(ctx context.Context, req OwnerReservationRequest, ownerID uuid.UUID) (*queries.BookingView, error) {
	slot, err := booking.NewSlot(req.Timeslot)
	if err != nil {
		return nil, err
	}

	venueSnap, err := uc.loadVenueAnyStatus(ctx, req.VenueID)
	if err != nil {
		return nil, err
	}
	if venueSnap.OwnerID != ownerID {
		return nil, ErrNotVenueOwner
	}

	entity, err := booking.NewOwnerReservation(req.VenueID, ownerID, req.Date, slot, req.Guests)
	if err != nil {
		return nil, err
	}

	bookingID, err := uc.insertBooking(ctx, entity)
	if err != nil {
		return nil, err
	}

	view, err := uc.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// insertBooking re-checks availability and inserts inside one transaction,
// retrying on serialization failures. The pre-check shrinks the race window;
// the bookings exclusion constraint closes it, surfacing concurrent
// double-bookings as a conflict.
func (uc *bookingUseCaseImpl) insertBooking(ctx context.Context, entity *booking.Booking) (uuid.UUID, error) {
	return shared.RunInTxWithRetry(ctx, uc.pool, insertTxMaxRetries, func(tx db.DBTX) (uuid.UUID, error) {
		existing, err := uc.bookingRepo.ActiveSlots(ctx, tx, entity.VenueID(), entity.Date())
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if decision := booking.Evaluate(entity.Slot(), existing); !decision.Available {
			return uuid.Nil, ErrSlotUnavailable
		}

		id, err := uc.bookingRepo.Create(ctx, tx, entity)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return uuid.Nil, ErrSlotUnavailable
			}
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return uuid.Nil, err
			}
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return id, nil
	})
}

func (uc *bookingUseCaseImpl) loadVenue(ctx context.Context, venueID uuid.UUID) (*VenueSnapshot, error) {
	snap, err := uc.loadVenueAnyStatus(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if snap.Status != venue.StatusAccepted {
		return nil, ErrVenueNotBookable
	}
	return snap, nil
}

func (uc *bookingUseCaseImpl) loadVenueAnyStatus(ctx context.Context, venueID uuid.UUID) (*VenueSnapshot, error) {
	snap, err := uc.venueReads.FindSnapshot(ctx, uc.pool, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snap, nil
}

func (uc *bookingUseCaseImpl) notifyBooking(ctx context.Context, view *queries.BookingView, subject string) {
	if uc.notifier == nil {
		return
	}

	if view.VenueEmail == "" {
		return
	}

	msg := Email{
		To:      view.VenueEmail,
		Subject: subject,
		HTML: fmt.Sprintf(
			"<p>%s for <b>%s</b> on %s (%s slot, %d guests).</p>",
			subject, view.VenueName, view.Date.Format(metadataDateLayout),
			booking.Slot(view.Timeslot).String(), view.Guests,
		),
	}
	if err := uc.notifier.Send(ctx, msg); err != nil {
		slog.Warn("failed to send booking notification", "booking_id", view.ID, "error", err)
	}
}

type intentParams struct {
	venueID uuid.UUID
	userID  uuid.UUID
	date    time.Time
	slot    booking.Slot
	guests  int
	quote   booking.Quote
}

func buildIntentMetadata(venueID, userID uuid.UUID, day time.Time, slot booking.Slot, guests int, quote booking.Quote) map[string]string {
	return map[string]string{
		"venueId":       venueID.String(),
		"userId":        userID.String(),
		"date":          day.Format(metadataDateLayout),
		"timeslot":      strconv.Itoa(int(slot)),
		"numberOfGuest": strconv.Itoa(guests),
		"amount":        strconv.FormatInt(quote.BaseCents, 10),
		"platformFee":   strconv.FormatInt(quote.PlatformFeeCents, 10),
		"ownerEarnings": strconv.FormatInt(quote.OwnerEarningsCents, 10),
	}
}

func parseIntentMetadata(md map[string]string) (*intentParams, error) {
	venueID, err := uuid.Parse(md["venueId"])
	if err != nil {
		return nil, errs.Wrap(err, "venueId")
	}
	userID, err := uuid.Parse(md["userId"])
	if err != nil {
		return nil, errs.Wrap(err, "userId")
	}
	date, err := time.Parse(metadataDateLayout, md["date"])
	if err != nil {
		return nil, errs.Wrap(err, "date")
	}
	timeslot, err := strconv.Atoi(md["timeslot"])
	if err != nil {
		return nil, errs.Wrap(err, "timeslot")
	}
	slot, err := booking.NewSlot(timeslot)
	if err != nil {
		return nil, err
	}
	guests, err := strconv.Atoi(md["numberOfGuest"])
	if err != nil {
		return nil, errs.Wrap(err, "numberOfGuest")
	}
	base, err := strconv.ParseInt(md["amount"], 10, 64)
	if err != nil {
		return nil, errs.Wrap(err, "amount")
	}
	fee, err := strconv.ParseInt(md["platformFee"], 10, 64)
	if err != nil {
		return nil, errs.Wrap(err, "platformFee")
	}
	earnings, err := strconv.ParseInt(md["ownerEarnings"], 10, 64)
	if err != nil {
		return nil, errs.Wrap(err, "ownerEarnings")
	}

	return &intentParams{
		venueID: venueID,
		userID:  userID,
		date:    date,
		slot:    slot,
		guests:  guests,
		quote: booking.Quote{
			BaseCents:          base,
			PlatformFeeCents:   fee,
			TotalCents:         base + fee,
			OwnerEarningsCents: earnings,
		},
	}, nil
}
