package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"venueserv/internal/handler/httperr"
	"venueserv/internal/infra/payment"
	"venueserv/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// PaymentWebhookHandler receives provider callbacks. Confirmation through the
// webhook and through POST /bookings/confirm are both idempotent per intent,
// so whichever path lands first records the booking.
type PaymentWebhookHandler struct {
	provider        *payment.StripeProvider
	bookingCommands commands.BookingCommands
}

func NewPaymentWebhookHandler(provider *payment.StripeProvider, bookingCommands commands.BookingCommands) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{
		provider:        provider,
		bookingCommands: bookingCommands,
	}
}

// @Summary Payment provider webhook
// @Description Verifies the provider signature and confirms bookings for succeeded payment intents
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Router /payments/webhook [post]
func (h *PaymentWebhookHandler) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, 1<<16))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payload", nil)
		return
	}

	event, err := h.provider.VerifyWebhook(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		slog.Warn("webhook signature verification failed", "error", err.Error())
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid signature", nil)
		return
	}

	switch event.Type {
	case "payment_intent.succeeded":
		if _, err := h.bookingCommands.ConfirmBooking(c.Request.Context(), event.IntentID); err != nil {
			// 200 on conflict keeps the provider from retrying a lost race;
			// the other confirmation path already recorded the booking.
			if errors.Is(err, commands.ErrSlotUnavailable) {
				slog.Warn("webhook confirmation lost slot race", "intent_id", event.IntentID)
				break
			}
			slog.Error("webhook booking confirmation failed", "intent_id", event.IntentID, "error", err.Error())
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Confirmation failed", nil)
			return
		}
	case "payment_intent.payment_failed":
		slog.Info("payment intent failed, no booking recorded", "intent_id", event.IntentID)
	}

	c.JSON(http.StatusOK, gin.H{"received": "true"})
}
