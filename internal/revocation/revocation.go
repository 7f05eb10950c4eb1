// Package revocation хранит отозванные при выходе токены до их истечения.
package revocation

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/health-tracker/internal/cache"
)

// KeyPrefix пространство имён записей в redis.
const KeyPrefix = "revoked_token:"

// List список отозванных токенов поверх redis.
type List struct {
	cache *cache.Cache
}

// New создаёт список поверх подключения к redis.
func New(c *cache.Cache) *List {
	return &List{cache: c}
}

func key(token string) string {
	return KeyPrefix + token
}

// Revoke помещает токен в список на ttl. При ttl <= 0 запись не создаётся.
// Повторный вызов перезаписывает TTL.
func (l *List) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	const op = "revocation.Revoke"
	if ttl <= 0 {
		return nil
	}
	if err := l.cache.Set(ctx, key(token), true, ttl); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// IsRevoked проверяет наличие токена в списке.
func (l *List) IsRevoked(ctx context.Context, token string) (bool, error) {
	const op = "revocation.IsRevoked"
	ok, err := l.cache.Exists(ctx, key(token))
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return ok, nil
}
