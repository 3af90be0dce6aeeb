package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist records revoked token IDs until their natural expiry.
// Tokens are otherwise stateless, so logout needs somewhere to remember
// which jtis are dead.
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// redisTokenDenylist is the redis implementation of TokenDenylist.
type redisTokenDenylist struct {
	client *redis.Client
}

// NewRedisTokenDenylist creates a TokenDenylist backed by redis.
func NewRedisTokenDenylist(client *redis.Client) TokenDenylist {
	return &redisTokenDenylist{client: client}
}

func (d *redisTokenDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired; nothing to remember.
		return nil
	}
	return d.client.Set(ctx, denylistKey(jti), "1", ttl).Err()
}

func (d *redisTokenDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := d.client.Get(ctx, denylistKey(jti)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func denylistKey(jti string) string {
	return "denylist:jti:" + jti
}
