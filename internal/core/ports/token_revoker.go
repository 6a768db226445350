package ports

import (
	"context"
	"time"
)

// TokenRevoker invalidates issued tokens ahead of their expiry. Revocations
// only need to outlive the token, so implementations may expire them.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
