package payment

import (
	"context"
	"encoding/json"

	"venueserv/internal/pkg/errs"
	"venueserv/internal/pkg/config"
	"venueserv/internal/usecase/commands"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

// StripeProvider implements the PaymentProvider port against Stripe payment
// intents. Booking parameters travel as intent metadata; Stripe never learns
// their meaning.
type StripeProvider struct {
	api           *client.API
	webhookSecret string
}

func NewStripeProvider(cfg config.PaymentConfig) *StripeProvider {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	return &StripeProvider{
		api:           api,
		webhookSecret: cfg.WebhookSecret,
	}
}

func (p *StripeProvider) CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*commands.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe create payment intent")
	}

	return &commands.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}

func (p *StripeProvider) RetrieveIntent(ctx context.Context, id string) (*commands.RetrievedIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe retrieve payment intent")
	}

	return &commands.RetrievedIntent{
		ID:       pi.ID,
		Status:   mapIntentStatus(pi.Status),
		Metadata: pi.Metadata,
	}, nil
}

// WebhookEvent is the slice of a provider callback the booking workflow
// cares about.
type WebhookEvent struct {
	Type     string
	IntentID string
}

// VerifyWebhook checks the provider signature over the raw body and extracts
// the payment intent reference from intent lifecycle events.
func (p *StripeProvider) VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, p.webhookSecret)
	if err != nil {
		return nil, errs.Wrap(err, "stripe webhook signature verification")
	}

	out := &WebhookEvent{Type: string(event.Type)}

	switch event.Type {
	case "payment_intent.succeeded", "payment_intent.payment_failed":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, errs.Wrap(err, "stripe webhook payload decode")
		}
		out.IntentID = pi.ID
	}

	return out, nil
}

func mapIntentStatus(s stripe.PaymentIntentStatus) commands.IntentStatus {
	switch s {
	case stripe.PaymentIntentStatusSucceeded:
		return commands.IntentSucceeded
	case stripe.PaymentIntentStatusCanceled:
		return commands.IntentFailed
	default:
		return commands.IntentStatus(s)
	}
}
