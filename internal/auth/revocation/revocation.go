// Package revocation tracks logged-out token ids until they would have expired.
package revocation

import (
	"context"
	"fmt"
	"time"

	"carenest/pkg/platform/sentinel"
)

// List is the token revocation list consulted on every authenticated request.
type List interface {
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

func validateTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive: %w", sentinel.ErrInvalidState)
	}
	return nil
}
