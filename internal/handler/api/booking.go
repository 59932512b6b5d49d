package api

import (
	"errors"
	"net/http"

	"venueserv/internal/domain/booking"
	"venueserv/internal/domain/user"
	reqdto "venueserv/internal/handler/dto/request"
	resdto "venueserv/internal/handler/dto/response"
	"venueserv/internal/handler/httperr"
	"venueserv/internal/handler/middleware"
	"venueserv/internal/pkg/errs"
	"venueserv/internal/usecase/commands"
	"venueserv/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Auth middleware always sets the user id before these handlers run; a miss
// means broken wiring, not a client error.
var errMissingUserContext = errs.New("user id missing from request context")

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Check venue availability
// @Description Check whether a venue is free for a date and time slot
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CheckAvailabilityRequest true "Availability request"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/check-availability [post]
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	result, err := h.bookingCommands.CheckAvailability(c.Request.Context(), req.VenueID, date, req.Timeslot)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityResult(result))
}

// @Summary Create booking
// @Description Reserve a slot by creating a payment intent; the booking is recorded once payment is confirmed
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), cmd, userID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCreateBookingResult(result))
}

// @Summary Confirm booking
// @Description Record the booking for a succeeded payment intent; idempotent per intent
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfirmBookingRequest true "Confirmation request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /bookings/confirm [post]
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var req reqdto.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.bookingCommands.ConfirmBooking(c.Request.Context(), req.PaymentIntentID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel a confirmed booking and release its slot
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	view, err := h.bookingCommands.CancelBooking(c.Request.Context(), bookingID, userID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}

	items, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), bookingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		return
	}

	role, _ := middleware.GetUserRole(c)
	if view.UserID != userID && role != user.RoleAdmin {
		httperr.AbortWithError(c, http.StatusForbidden, commands.ErrNotBookingOwner, "Booking does not belong to you", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrInvalidSlot),
		errors.Is(err, booking.ErrInvalidGuestCount),
		errors.Is(err, commands.ErrInvalidDate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errors.Is(err, commands.ErrVenueNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Venue not found", nil)
	case errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, commands.ErrVenueNotBookable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Venue is not accepting bookings", nil)
	case errors.Is(err, commands.ErrSlotUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Venue is not available for the requested time slot", nil)
	case errors.Is(err, booking.ErrAlreadyCancelled):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking is already cancelled", nil)
	case errors.Is(err, booking.ErrPastBooking):
		httperr.AbortWithError(c, http.StatusConflict, err, "Past bookings cannot be cancelled", nil)
	case errors.Is(err, commands.ErrNotBookingOwner),
		errors.Is(err, commands.ErrNotVenueOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
	case errors.Is(err, commands.ErrPaymentNotSucceeded):
		httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Payment has not succeeded", nil)
	case errors.Is(err, commands.ErrCorruptIntentMetadata):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Payment intent metadata is malformed", nil)
	case errors.Is(err, commands.ErrPaymentProvider):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment provider request failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
