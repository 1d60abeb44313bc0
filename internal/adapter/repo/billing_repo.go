package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// CheckoutRepositoryPG implements domain.CheckoutRepository using PostgreSQL.
type CheckoutRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewCheckoutRepository creates a new checkout repo.
func NewCheckoutRepository(sql infra.SQLExecutor) *CheckoutRepositoryPG {
	return &CheckoutRepositoryPG{sql: sql}
}

// CreateIntent records a pending checkout keyed by the Stripe session id.
func (r *CheckoutRepositoryPG) CreateIntent(ctx context.Context, intent *domain.CheckoutIntent) error {
	_, err := r.sql.Exec(ctx, sqlinline.QInsertCheckoutIntent,
		intent.SessionID,
		intent.UserID,
		intent.PriceID,
		string(intent.Tier),
		intent.Country,
	)
	return err
}

// GetIntent fetches an intent by session id.
func (r *CheckoutRepositoryPG) GetIntent(ctx context.Context, sessionID string) (*domain.CheckoutIntent, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectCheckoutIntent, sessionID)

	var intent domain.CheckoutIntent
	if err := row.Scan(
		&intent.SessionID,
		&intent.UserID,
		&intent.PriceID,
		&intent.Tier,
		&intent.Status,
		&intent.Country,
		&intent.CreatedAt,
		&intent.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &intent, nil
}

// MarkIntent transitions an intent to the given status.
func (r *CheckoutRepositoryPG) MarkIntent(ctx context.Context, sessionID string, status domain.CheckoutStatus) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QMarkCheckoutIntent, sessionID, string(status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RecordEvent stores a webhook event id for dedup. Replays are silently
// ignored by the conflict clause.
func (r *CheckoutRepositoryPG) RecordEvent(ctx context.Context, ev *domain.WebhookEvent) error {
	_, err := r.sql.Exec(ctx, sqlinline.QInsertWebhookEvent, ev.ID, ev.Type, ev.SessionID)
	return err
}

var _ domain.CheckoutRepository = (*CheckoutRepositoryPG)(nil)
