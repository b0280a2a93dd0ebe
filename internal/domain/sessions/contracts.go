// Package sessions defines how login sessions are issued, verified and revoked.
package sessions

import (
	"time"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/users"
)

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	Issue(state users.UserState) (string, error)
	// Verify returns the state carried by token and the token's expiry.
	Verify(token string) (users.UserState, time.Time, error)
}

// TokenBlacklist holds revoked tokens until they expire.
// Implementations must be safe for concurrent use.
type TokenBlacklist interface {
	Add(token string, expiresAt time.Time)
	Contains(token string) bool
	// Prune drops entries that expired before now and returns how many were dropped.
	Prune(now time.Time) int
}
