//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"venueserv/internal/domain/user"
	"venueserv/internal/handler/api"
	resdto "venueserv/internal/handler/dto/response"
	"venueserv/internal/usecase/commands"
	"venueserv/internal/usecase/queries"
	"venueserv/tests/common/builder"
	commonhttp "venueserv/tests/common/httptest"
	"venueserv/tests/common/testutil"
	commandsmock "venueserv/tests/mock/commands"
	queriesmock "venueserv/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OwnerHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockVenueCommands   *commandsmock.MockVenueCommands
	mockBookingCommands *commandsmock.MockBookingCommands
	mockVenueQueries    *queriesmock.MockVenueQueries
	mockBookingQueries  *queriesmock.MockBookingQueries
	handler             *api.OwnerHandler
	ownerID             uuid.UUID
}

func (s *OwnerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockVenueCommands = new(commandsmock.MockVenueCommands)
	s.mockBookingCommands = new(commandsmock.MockBookingCommands)
	s.mockVenueQueries = new(queriesmock.MockVenueQueries)
	s.mockBookingQueries = new(queriesmock.MockBookingQueries)
	s.handler = api.NewOwnerHandler(s.mockVenueCommands, s.mockBookingCommands, s.mockVenueQueries, s.mockBookingQueries)
	s.ownerID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.ownerID)
		c.Set("user_role", user.RoleOwner)
		c.Next()
	}

	s.router.POST("/owner/venues", authMiddleware, s.handler.CreateVenue)
	s.router.GET("/owner/venues", authMiddleware, s.handler.ListVenues)
	s.router.GET("/owner/bookings", authMiddleware, s.handler.ListBookings)
	s.router.POST("/owner/reservations", authMiddleware, s.handler.CreateReservation)
}

func (s *OwnerHandlerTestSuite) TearDownTest() {
	s.mockVenueCommands.AssertExpectations(s.T())
	s.mockBookingCommands.AssertExpectations(s.T())
	s.mockVenueQueries.AssertExpectations(s.T())
	s.mockBookingQueries.AssertExpectations(s.T())
}

func TestOwnerHandlerSuite(t *testing.T) {
	suite.Run(t, new(OwnerHandlerTestSuite))
}

func (s *OwnerHandlerTestSuite) TestCreateVenue() {
	url := "/owner/venues"
	reqBody := builder.NewVenueBuilder().BuildCreateRequestDTO()

	s.Run("registers a pending venue", func() {
		s.SetupTest()
		view := builder.NewVenueBuilder().BuildViewQuery()
		view.Status = "pending"
		s.mockVenueCommands.On("CreateVenue", mock.Anything, mock.Anything, s.ownerID).
			Return(view, nil).Once()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var resp resdto.VenueResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal("pending", resp.Status)
	})

	s.Run("requires authentication", func() {
		s.SetupTest()
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("validation boundaries", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "zero capacity", mutate: testutil.Field("capacity", 0)},
			{name: "bad email", mutate: testutil.Field("email", "not-an-email")},
			{name: "negative rate", mutate: testutil.Field("morning_cents", -1)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.SetupTest()
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				s.Equal(http.StatusBadRequest, w.Code, "response: %s", w.Body.String())
			})
		}
	})
}

func (s *OwnerHandlerTestSuite) TestListVenues() {
	s.Run("returns owner's venues including pending", func() {
		s.SetupTest()
		views := []*queries.VenueView{
			builder.NewVenueBuilder().BuildViewQuery(),
			builder.NewVenueBuilder().With(func(b *builder.VenueBuilder) { b.Status = "pending" }).BuildViewQuery(),
		}
		s.mockVenueQueries.On("ListByOwner", mock.Anything, s.ownerID).Return(views, nil).Once()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/venues", nil, "token")

		var resp []resdto.VenueResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 2)
	})
}

func (s *OwnerHandlerTestSuite) TestListBookings() {
	s.Run("returns bookings across owner's venues", func() {
		s.SetupTest()
		items := []*queries.BookingListItem{builder.NewBookingBuilder().BuildListItem()}
		s.mockBookingQueries.On("ListByOwnerVenues", mock.Anything, s.ownerID).Return(items, nil).Once()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/bookings", nil, "token")

		var resp []resdto.BookingListResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 1)
	})
}

func (s *OwnerHandlerTestSuite) TestCreateReservation() {
	url := "/owner/reservations"
	reqBody := builder.NewBookingBuilder().BuildOwnerReservationRequestDTO()

	s.Run("blocks slot without payment", func() {
		s.SetupTest()
		view := builder.NewBookingBuilder().BuildViewQuery()
		view.IsOwnerReservation = true
		view.AmountCents = 0
		s.mockBookingCommands.On("CreateOwnerReservation", mock.Anything, mock.Anything, s.ownerID).
			Return(view, nil).Once()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var resp resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.True(resp.IsOwnerReservation)
		s.Zero(resp.AmountCents)
	})

	s.Run("someone else's venue maps to 403", func() {
		s.SetupTest()
		s.mockBookingCommands.On("CreateOwnerReservation", mock.Anything, mock.Anything, s.ownerID).
			Return(nil, commands.ErrNotVenueOwner).Once()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("occupied slot maps to 409", func() {
		s.SetupTest()
		s.mockBookingCommands.On("CreateOwnerReservation", mock.Anything, mock.Anything, s.ownerID).
			Return(nil, commands.ErrSlotUnavailable).Once()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		s.Equal(http.StatusConflict, w.Code)
	})
}
