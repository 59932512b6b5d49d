//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"venueserv/internal/domain/booking"
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

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCommands = new(commandsmock.MockBookingCommands)
	s.mockQueries = new(queriesmock.MockBookingQueries)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleUser)
		c.Next()
	}

	s.router.POST("/bookings/check-availability", s.handler.CheckAvailability)
	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.POST("/bookings/confirm", authMiddleware, s.handler.ConfirmBooking)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.CancelBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCommands.AssertExpectations(s.T())
	s.mockQueries.AssertExpectations(s.T())
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCheckAvailability
// ================================================================================

func (s *BookingHandlerTestSuite) TestCheckAvailability() {
	url := "/bookings/check-availability"
	reqBody := builder.NewBookingBuilder().BuildAvailabilityRequestDTO()

	s.Run("available slot", func() {
		s.SetupTest()
		s.mockCommands.On("CheckAvailability", mock.Anything, reqBody.VenueID, mock.Anything, reqBody.Timeslot).
			Return(&commands.AvailabilityResult{
				Available: true,
				Message:   "Venue is available for the requested time slot",
			}, nil).Once()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var resp resdto.AvailabilityResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.True(resp.IsAvailable)
		s.Equal("Venue is available for the requested time slot", resp.Message)
		s.Empty(resp.ExistingBookings)
	})

	s.Run("occupied slot lists the blocking bookings", func() {
		s.SetupTest()
		day := booking.NormalizeDate(time.Now().AddDate(0, 0, 7))
		s.mockCommands.On("CheckAvailability", mock.Anything, reqBody.VenueID, mock.Anything, reqBody.Timeslot).
			Return(&commands.AvailabilityResult{
				Available: false,
				Message:   "Venue is not available for the requested time slot",
				Existing: []booking.BookedSlot{
					{Slot: booking.SlotFullDay, Date: day},
				},
			}, nil).Once()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var resp resdto.AvailabilityResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.False(resp.IsAvailable)
		s.Require().Len(resp.ExistingBookings, 1)
		s.Equal(int(booking.SlotFullDay), resp.ExistingBookings[0].Timeslot)
		s.Equal(day.Format("2006-01-02"), resp.ExistingBookings[0].Date)
	})

	s.Run("unknown venue", func() {
		s.SetupTest()
		s.mockCommands.On("CheckAvailability", mock.Anything, reqBody.VenueID, mock.Anything, reqBody.Timeslot).
			Return(nil, commands.ErrVenueNotFound).Once()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Venue not found")
	})

	s.Run("validation boundaries", func() {
		cases := []struct {
			name       string
			mutate     func(m map[string]any)
			expectCode int
		}{
			{name: "timeslot above range", mutate: testutil.Field("timeslot", 3), expectCode: http.StatusBadRequest},
			{name: "timeslot below range", mutate: testutil.Field("timeslot", -1), expectCode: http.StatusBadRequest},
			{name: "malformed date", mutate: testutil.Field("date", "01-09-2026"), expectCode: http.StatusBadRequest},
			{name: "missing venue", mutate: testutil.Field("venue_id", nil), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.SetupTest()
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(tc.expectCode, w.Code, "response: %s", w.Body.String())
			})
		}
	})
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()

	s.Run("returns payment intent without recording a booking", func() {
		s.SetupTest()
		s.mockCommands.On("CreateBooking", mock.Anything, mock.Anything, s.userID).
			Return(&commands.CreateBookingResult{
				PaymentIntentID: "pi_test_123",
				ClientSecret:    "pi_test_123_secret",
				AmountCents:     550000,
			}, nil).Once()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var resp resdto.CreateBookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("pi_test_123", resp.PaymentIntentID)
		s.Equal(int64(550000), resp.AmountCents)
	})

	s.Run("requires authentication", func() {
		s.SetupTest()
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("slot conflict maps to 409", func() {
		s.SetupTest()
		s.mockCommands.On("CreateBooking", mock.Anything, mock.Anything, s.userID).
			Return(nil, commands.ErrSlotUnavailable).Once()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "not available")
	})

	s.Run("pending venue maps to 409", func() {
		s.SetupTest()
		s.mockCommands.On("CreateBooking", mock.Anything, mock.Anything, s.userID).
			Return(nil, commands.ErrVenueNotBookable).Once()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "not accepting")
	})

	s.Run("provider outage maps to 502", func() {
		s.SetupTest()
		s.mockCommands.On("CreateBooking", mock.Anything, mock.Anything, s.userID).
			Return(nil, commands.ErrPaymentProvider).Once()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadGateway, "Payment provider")
	})

	s.Run("guest validation", func() {
		s.SetupTest()
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("guests", 0))
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

// ================================================================================
// TestConfirmBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestConfirmBooking() {
	url := "/bookings/confirm"
	reqBody := map[string]any{"payment_intent_id": "pi_test_123"}

	s.Run("records the booking", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder()
		view := b.BuildViewQuery()
		s.mockCommands.On("ConfirmBooking", mock.Anything, "pi_test_123").
			Return(view, nil).Once()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var resp resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal("completed", resp.PaymentStatus)
		// Amount is the venue rate before the platform fee; the fee rides in
		// its own column.
		s.Equal(b.Quote.BaseCents, resp.AmountCents)
		s.Equal(b.Quote.PlatformFeeCents, resp.PlatformFeeCents)
	})

	s.Run("payment not succeeded maps to 402", func() {
		s.SetupTest()
		s.mockCommands.On("ConfirmBooking", mock.Anything, "pi_test_123").
			Return(nil, commands.ErrPaymentNotSucceeded).Once()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		s.Equal(http.StatusPaymentRequired, w.Code)
	})

	s.Run("lost slot race maps to 409", func() {
		s.SetupTest()
		s.mockCommands.On("ConfirmBooking", mock.Anything, "pi_test_123").
			Return(nil, commands.ErrSlotUnavailable).Once()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("missing intent id rejected", func() {
		s.SetupTest()
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "token")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

// ================================================================================
// TestCancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	s.Run("cancels own booking", func() {
		s.SetupTest()
		view := builder.NewBookingBuilder().BuildViewQuery()
		view.IsCancelled = true
		s.mockCommands.On("CancelBooking", mock.Anything, bookingID, s.userID).
			Return(view, nil).Once()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var resp resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.True(resp.IsCancelled)
	})

	s.Run("someone else's booking maps to 403", func() {
		s.SetupTest()
		s.mockCommands.On("CancelBooking", mock.Anything, bookingID, s.userID).
			Return(nil, commands.ErrNotBookingOwner).Once()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("invalid id rejected", func() {
		s.SetupTest()
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/not-a-uuid/cancel", nil, "token")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

// ================================================================================
// TestGetBooking / TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("owner sees own booking", func() {
		s.SetupTest()
		view := builder.NewBookingBuilder().BuildViewQuery()
		view.UserID = s.userID
		s.mockQueries.On("GetByID", mock.Anything, view.ID).Return(view, nil).Once()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "token")

		var resp resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(view.ID, resp.ID)
	})

	s.Run("other user's booking hidden", func() {
		s.SetupTest()
		view := builder.NewBookingBuilder().BuildViewQuery()
		s.mockQueries.On("GetByID", mock.Anything, view.ID).Return(view, nil).Once()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "token")
		s.Equal(http.StatusForbidden, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("returns user's bookings", func() {
		s.SetupTest()
		items := []*queries.BookingListItem{
			builder.NewBookingBuilder().BuildListItem(),
			builder.NewBookingBuilder().BuildListItem(),
		}
		s.mockQueries.On("ListByUser", mock.Anything, s.userID).Return(items, nil).Once()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "token")

		var resp []resdto.BookingListResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 2)
	})
}
