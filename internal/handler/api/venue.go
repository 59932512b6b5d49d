package api

import (
	"net/http"

	resdto "venueserv/internal/handler/dto/response"
	"venueserv/internal/handler/httperr"
	"venueserv/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VenueHandler struct {
	venueQueries queries.VenueQueries
}

func NewVenueHandler(venueQueries queries.VenueQueries) *VenueHandler {
	return &VenueHandler{
		venueQueries: venueQueries,
	}
}

// @Summary List venues
// @Description List accepted venues, optionally filtered by city
// @Tags venues
// @Produce json
// @Param city query string false "City filter"
// @Success 200 {array} resdto.VenueResponse
// @Router /venues [get]
func (h *VenueHandler) ListVenues(c *gin.Context) {
	var city *string
	if q := c.Query("city"); q != "" {
		city = &q
	}

	views, err := h.venueQueries.ListAccepted(c.Request.Context(), city)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVenueViews(views))
}

// @Summary Get venue
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} resdto.VenueResponse
// @Failure 404 {object} httperr.Response
// @Router /venues/{id} [get]
func (h *VenueHandler) GetVenue(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid venue ID", nil)
		return
	}

	view, err := h.venueQueries.GetByID(c.Request.Context(), venueID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Venue not found", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVenueView(view))
}
