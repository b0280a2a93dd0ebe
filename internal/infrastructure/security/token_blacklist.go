package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/sessions"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/logger"
)

// MemoryTokenBlacklist keeps revoked tokens in process memory, keyed by their SHA-256 digest.
type MemoryTokenBlacklist struct {
	mu      sync.RWMutex
	entries map[string]time.Time
}

// NewMemoryTokenBlacklist creates an empty blacklist.
func NewMemoryTokenBlacklist() *MemoryTokenBlacklist {
	return &MemoryTokenBlacklist{entries: make(map[string]time.Time)}
}

var _ sessions.TokenBlacklist = (*MemoryTokenBlacklist)(nil)

func digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Add revokes token until expiresAt.
func (b *MemoryTokenBlacklist) Add(token string, expiresAt time.Time) {
	key := digest(token)

	b.mu.Lock()
	defer b.mu.Unlock()
	if current, ok := b.entries[key]; ok && current.After(expiresAt) {
		return
	}
	b.entries[key] = expiresAt
}

// Contains reports whether token was revoked.
func (b *MemoryTokenBlacklist) Contains(token string) bool {
	key := digest(token)

	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.entries[key]
	return ok
}

// Prune drops entries whose tokens expired before now.
func (b *MemoryTokenBlacklist) Prune(now time.Time) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	removed := 0
	for key, expiresAt := range b.entries {
		if expiresAt.Before(now) {
			delete(b.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of revoked tokens currently held.
func (b *MemoryTokenBlacklist) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// RunPruner prunes blacklist every interval until ctx is done.
func RunPruner(ctx context.Context, blacklist sessions.TokenBlacklist, interval time.Duration, log logger.Logger) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := blacklist.Prune(now); removed > 0 {
				log.Info("Pruned expired tokens from blacklist: ", removed)
			}
		}
	}
}
