package api

import (
	"errors"
	"net/http"

	"venueserv/internal/domain/venue"
	reqdto "venueserv/internal/handler/dto/request"
	resdto "venueserv/internal/handler/dto/response"
	"venueserv/internal/handler/httperr"
	"venueserv/internal/handler/middleware"
	"venueserv/internal/usecase/commands"
	"venueserv/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// OwnerHandler groups the venue-owner surface: venue registration, the
// owner's booking ledger, and payment-free slot blocking.
type OwnerHandler struct {
	venueCommands   commands.VenueCommands
	bookingCommands commands.BookingCommands
	venueQueries    queries.VenueQueries
	bookingQueries  queries.BookingQueries
}

func NewOwnerHandler(
	venueCommands commands.VenueCommands,
	bookingCommands commands.BookingCommands,
	venueQueries queries.VenueQueries,
	bookingQueries queries.BookingQueries,
) *OwnerHandler {
	return &OwnerHandler{
		venueCommands:   venueCommands,
		bookingCommands: bookingCommands,
		venueQueries:    venueQueries,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Register venue
// @Description Register a new venue; it stays pending until an admin accepts it
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateVenueRequest true "Venue details"
// @Success 201 {object} resdto.VenueResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /owner/venues [post]
func (h *OwnerHandler) CreateVenue(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}

	var req reqdto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.venueCommands.CreateVenue(c.Request.Context(), req.ToCommand(), ownerID)
	if err != nil {
		switch {
		case errors.Is(err, venue.ErrEmptyName),
			errors.Is(err, venue.ErrEmptyAddress),
			errors.Is(err, venue.ErrEmptyCity),
			errors.Is(err, venue.ErrInvalidCapacity),
			errors.Is(err, venue.ErrInvalidRate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromVenueView(view))
}

// @Summary List own venues
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VenueResponse
// @Failure 401 {object} httperr.Response
// @Router /owner/venues [get]
func (h *OwnerHandler) ListVenues(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}

	views, err := h.venueQueries.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVenueViews(views))
}

// @Summary List bookings across own venues
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} httperr.Response
// @Router /owner/bookings [get]
func (h *OwnerHandler) ListBookings(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}

	items, err := h.bookingQueries.ListByOwnerVenues(c.Request.Context(), ownerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}

// @Summary Reserve a slot on own venue
// @Description Block a slot without payment; occupies availability exactly like a paid booking
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OwnerReservationRequest true "Reservation request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /owner/reservations [post]
func (h *OwnerHandler) CreateReservation(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}

	var req reqdto.OwnerReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	view, err := h.bookingCommands.CreateOwnerReservation(c.Request.Context(), cmd, ownerID)
	if err != nil {
		h.respondReservationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

func (h *OwnerHandler) respondReservationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrVenueNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Venue not found", nil)
	case errors.Is(err, commands.ErrNotVenueOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Venue does not belong to you", nil)
	case errors.Is(err, commands.ErrSlotUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Venue is not available for the requested time slot", nil)
	case errors.Is(err, commands.ErrInvalidDate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
