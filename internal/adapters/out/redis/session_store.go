// Package redis implements the session store on Redis. A session holds at
// most one piece of state, the identifier of its active order, so each
// session maps to a single key with a sliding TTL.
package redis

import (
	"context"
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// RedisSessionStore implements SessionStore using go-redis.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore creates a session store over the given client. The TTL
// bounds how long an idle session keeps its active-order binding.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) (*RedisSessionStore, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("session ttl")
	}
	return &RedisSessionStore{client: client, ttl: ttl}, nil
}

// Get loads the session with the given ID. A session that has never been
// seen, or whose binding expired, comes back empty rather than as an error.
func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*kernel.Session, error) {
	if sessionID == "" {
		return nil, errs.NewValueIsRequiredError("session id")
	}

	raw, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return kernel.NewSession(sessionID), nil
	}
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromString(raw)
	if err != nil {
		// A corrupt binding should not lock the customer out of the shop.
		return kernel.NewSession(sessionID), nil
	}

	return kernel.RestoreSession(sessionID, &orderID), nil
}

// SetActiveOrder binds the order to the session and refreshes the TTL.
func (s *RedisSessionStore) SetActiveOrder(ctx context.Context, sessionID string, orderID kernel.UUID) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("session id")
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	return s.client.Set(ctx, sessionKey(sessionID), orderID.String(), s.ttl).Err()
}

// UnsetActiveOrder removes the session's active order binding.
func (s *RedisSessionStore) UnsetActiveOrder(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("session id")
	}

	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID + ":active_order"
}
