// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// ReadCache stores derived read-models with a short time-to-live. Entries are
// opportunistic: a miss always falls through to recomputation, and staleness
// up to the TTL is an accepted trade-off since cached values are read-only
// derived projections, never authoritative state.
type ReadCache interface {
	// Get returns the cached value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key for the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
