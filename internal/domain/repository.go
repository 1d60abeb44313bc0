package domain

import (
	"context"
	"time"
)

// ProfileRepository defines persistence for user profiles, keyed by email.
type ProfileRepository interface {
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	GetByID(ctx context.Context, id string) (*Profile, error)
	Create(ctx context.Context, p *Profile) error
	Update(ctx context.Context, p *Profile) error
	SetTier(ctx context.Context, id string, tier Tier) error
	List(ctx context.Context) ([]Profile, error)
}

// CheckoutRepository persists checkout intents and webhook events.
type CheckoutRepository interface {
	CreateIntent(ctx context.Context, intent *CheckoutIntent) error
	GetIntent(ctx context.Context, sessionID string) (*CheckoutIntent, error)
	MarkIntent(ctx context.Context, sessionID string, status CheckoutStatus) error
	RecordEvent(ctx context.Context, ev *WebhookEvent) error
}

// DraftStore holds transient per-user draft input with a TTL.
type DraftStore interface {
	Get(ctx context.Context, userID string) (string, error)
	Put(ctx context.Context, userID, content string, ttl time.Duration) error
	Delete(ctx context.Context, userID string) error
}

// ExperimentRepository serves the demo experiment dataset.
type ExperimentRepository interface {
	ListByUser(ctx context.Context, userID string) ([]Experiment, error)
}

// InsightRepository serves the demo admin insights.
type InsightRepository interface {
	List(ctx context.Context) ([]AdminInsight, error)
	MarkRead(ctx context.Context, id string) error
}
