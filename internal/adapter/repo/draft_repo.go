package repo

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"server/internal/domain"
)

const draftKeyPrefix = "coach:draft:"

// DraftStoreRedis keeps per-user chat drafts in Redis with a TTL so
// half-written answers survive a page reload but expire on their own.
type DraftStoreRedis struct {
	client *redis.Client
}

// NewDraftStore creates a new DraftStoreRedis.
func NewDraftStore(client *redis.Client) *DraftStoreRedis {
	return &DraftStoreRedis{client: client}
}

// Get returns the stored draft, or domain.ErrNotFound when none exists.
func (s *DraftStoreRedis) Get(ctx context.Context, userID string) (string, error) {
	val, err := s.client.Get(ctx, draftKeyPrefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return val, nil
}

// Put stores the draft content, resetting the TTL.
func (s *DraftStoreRedis) Put(ctx context.Context, userID, content string, ttl time.Duration) error {
	return s.client.Set(ctx, draftKeyPrefix+userID, content, ttl).Err()
}

// Delete removes the draft. Deleting a missing draft is not an error.
func (s *DraftStoreRedis) Delete(ctx context.Context, userID string) error {
	return s.client.Del(ctx, draftKeyPrefix+userID).Err()
}

var _ domain.DraftStore = (*DraftStoreRedis)(nil)
