package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions as JSON values with a TTL derived from the
// session's ExpiresAt, so Redis evicts them without a sweeper.
type RedisStore struct {
	Client *redis.Client
	Prefix string
	Now    func() time.Time
}

func (r *RedisStore) key(id string) string {
	prefix := r.Prefix
	if prefix == "" {
		prefix = "quote:session:"
	}
	return prefix + id
}

func (r *RedisStore) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Save stores or replaces a session, refreshing its TTL.
func (r *RedisStore) Save(ctx context.Context, s Session) error {
	if r.Client == nil {
		return errors.New("redis store not configured")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	ttl := time.Until(s.ExpiresAt)
	if !s.ExpiresAt.IsZero() && ttl <= 0 {
		return r.Delete(ctx, s.ID)
	}
	if s.ExpiresAt.IsZero() {
		ttl = 0
	}
	return r.Client.Set(ctx, r.key(s.ID), data, ttl).Err()
}

// Get returns a live session by id.
func (r *RedisStore) Get(ctx context.Context, id string) (Session, error) {
	if r.Client == nil {
		return Session{}, errors.New("redis store not configured")
	}
	data, err := r.Client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("unmarshal session: %w", err)
	}
	if !s.ExpiresAt.IsZero() && r.now().After(s.ExpiresAt) {
		return Session{}, ErrNotFound
	}
	return s, nil
}

// Delete removes a session if present.
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if r.Client == nil {
		return errors.New("redis store not configured")
	}
	return r.Client.Del(ctx, r.key(id)).Err()
}
