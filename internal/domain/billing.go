package domain

import "time"

// CheckoutStatus enumerates the lifecycle of a checkout intent.
type CheckoutStatus string

const (
	CheckoutPending   CheckoutStatus = "pending"
	CheckoutCompleted CheckoutStatus = "completed"
	CheckoutExpired   CheckoutStatus = "expired"
)

// CheckoutIntent correlates a Stripe checkout session with the user and the
// tier they are buying. The success page polls the intent instead of
// trusting its own query parameters; only the webhook completes it.
type CheckoutIntent struct {
	SessionID string
	UserID    string
	PriceID   string
	Tier      Tier
	Status    CheckoutStatus
	Country   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WebhookEvent records an inbound payment-provider event for audit.
type WebhookEvent struct {
	ID         string
	Type       string
	SessionID  string
	ReceivedAt time.Time
}
