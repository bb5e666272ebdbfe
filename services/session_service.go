package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/redis/go-redis/v9"
)

const revokedTokenPrefix = "session:revoked:"

// SessionService tracks signed-out tokens in Redis. Entries live only until
// the token would have expired on its own. Without Redis it is a no-op and
// tokens stay valid until expiry.
type SessionService struct{}

var sessionService = &SessionService{}

// GetSessionService returns the global session service instance
func GetSessionService() *SessionService {
	return sessionService
}

// RevokeToken marks tokenID as signed out until expiresAt.
func (s *SessionService) RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if config.RedisClient == nil || tokenID == "" {
		return nil
	}

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := config.RedisClient.Set(ctx, revokedTokenPrefix+tokenID, 1, ttl).Err(); err != nil {
		log.Printf("[session] failed to revoke token %s: %v", tokenID, err)
		return err
	}

	log.Printf("[session] revoked token %s", tokenID)
	return nil
}

// IsRevoked reports whether tokenID was signed out.
func (s *SessionService) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if config.RedisClient == nil || tokenID == "" {
		return false, nil
	}

	err := config.RedisClient.Get(ctx, revokedTokenPrefix+tokenID).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	default:
		return false, err
	}
}
