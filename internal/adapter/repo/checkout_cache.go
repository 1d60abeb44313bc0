package repo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"server/internal/domain"
)

const (
	checkoutCachePrefix = "checkout:intent:"
	checkoutCacheTTL    = time.Hour
)

// CheckoutRepositoryCached wraps a CheckoutRepository with a Redis read
// cache. The success page polls GetIntent in a tight loop right after
// payment; the cache absorbs those reads so Postgres only sees the writes.
// Cache misses and Redis failures fall through to the inner repository.
type CheckoutRepositoryCached struct {
	inner  domain.CheckoutRepository
	client *redis.Client
	logger zerolog.Logger
}

func NewCheckoutCache(inner domain.CheckoutRepository, client *redis.Client, logger zerolog.Logger) *CheckoutRepositoryCached {
	return &CheckoutRepositoryCached{inner: inner, client: client, logger: logger}
}

func (r *CheckoutRepositoryCached) CreateIntent(ctx context.Context, intent *domain.CheckoutIntent) error {
	if err := r.inner.CreateIntent(ctx, intent); err != nil {
		return err
	}
	r.cache(ctx, intent)
	return nil
}

func (r *CheckoutRepositoryCached) GetIntent(ctx context.Context, sessionID string) (*domain.CheckoutIntent, error) {
	if raw, err := r.client.Get(ctx, checkoutCachePrefix+sessionID).Bytes(); err == nil {
		var intent domain.CheckoutIntent
		if err := json.Unmarshal(raw, &intent); err == nil {
			return &intent, nil
		}
	}
	intent, err := r.inner.GetIntent(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	r.cache(ctx, intent)
	return intent, nil
}

func (r *CheckoutRepositoryCached) MarkIntent(ctx context.Context, sessionID string, status domain.CheckoutStatus) error {
	if err := r.inner.MarkIntent(ctx, sessionID, status); err != nil {
		return err
	}
	// drop the stale entry; the next poll re-fills from Postgres
	if err := r.client.Del(ctx, checkoutCachePrefix+sessionID).Err(); err != nil {
		r.logger.Warn().Err(err).Str("session_id", sessionID).Msg("checkout cache invalidation failed")
	}
	return nil
}

func (r *CheckoutRepositoryCached) RecordEvent(ctx context.Context, ev *domain.WebhookEvent) error {
	return r.inner.RecordEvent(ctx, ev)
}

func (r *CheckoutRepositoryCached) cache(ctx context.Context, intent *domain.CheckoutIntent) {
	raw, err := json.Marshal(intent)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, checkoutCachePrefix+intent.SessionID, raw, checkoutCacheTTL).Err(); err != nil {
		r.logger.Warn().Err(err).Str("session_id", intent.SessionID).Msg("checkout cache write failed")
	}
}

var _ domain.CheckoutRepository = (*CheckoutRepositoryCached)(nil)
