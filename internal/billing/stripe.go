package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

// CheckoutRequest carries everything needed to start a subscription checkout.
type CheckoutRequest struct {
	PriceID    string
	UserID     string
	UserEmail  string
	SuccessURL string
	CancelURL  string
}

// CheckoutCreator starts hosted checkout sessions. Handlers depend on this
// interface so tests can swap in a fake instead of hitting Stripe.
type CheckoutCreator interface {
	CreateSession(ctx context.Context, req CheckoutRequest) (sessionID string, err error)
}

// WebhookVerifier authenticates and decodes inbound webhook payloads.
type WebhookVerifier interface {
	VerifyEvent(payload []byte, signature string) (Event, error)
}

// Event is the slice of a provider webhook event the product acts on.
type Event struct {
	ID            string
	Type          string
	SessionID     string
	UserID        string
	CustomerEmail string
}

const (
	EventCheckoutCompleted   = "checkout.session.completed"
	EventSubscriptionDeleted = "customer.subscription.deleted"
)

// StripeGateway implements CheckoutCreator and WebhookVerifier against the
// Stripe API.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

// NewStripeGateway validates the secret key and builds a gateway. Keys that
// do not carry the sk_ prefix are rejected up front so misconfiguration
// fails loudly instead of on the first checkout.
func NewStripeGateway(secretKey, webhookSecret string) (*StripeGateway, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("stripe secret key is not set")
	}
	if !strings.HasPrefix(secretKey, "sk_") {
		return nil, fmt.Errorf("invalid stripe secret key format")
	}
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api, webhookSecret: webhookSecret}, nil
}

// CreateSession opens a subscription-mode checkout session. The success URL
// gets the session id appended so the landing page can poll the matching
// checkout intent.
func (g *StripeGateway) CreateSession(ctx context.Context, req CheckoutRequest) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(req.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		Mode:                     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL:               stripe.String(req.SuccessURL + "?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:                stripe.String(req.CancelURL),
		CustomerEmail:            stripe.String(req.UserEmail),
		AllowPromotionCodes:      stripe.Bool(true),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired)),
	}
	params.AddMetadata("userId", req.UserID)

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return "", err
	}
	return sess.ID, nil
}

// VerifyEvent checks the Stripe-Signature header against the endpoint
// secret and extracts the fields the webhook handler needs.
func (g *StripeGateway) VerifyEvent(payload []byte, signature string) (Event, error) {
	ev, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return Event{}, err
	}

	out := Event{ID: ev.ID, Type: string(ev.Type)}
	switch out.Type {
	case EventCheckoutCompleted:
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(ev.Data.Raw, &sess); err == nil {
			out.SessionID = sess.ID
			out.CustomerEmail = sess.CustomerEmail
			out.UserID = sess.Metadata["userId"]
		}
	case EventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(ev.Data.Raw, &sub); err == nil {
			out.SessionID = sub.ID
			out.UserID = sub.Metadata["userId"]
		}
	}
	return out, nil
}

var (
	_ CheckoutCreator = (*StripeGateway)(nil)
	_ WebhookVerifier = (*StripeGateway)(nil)
)
