// Package locker provides distributed locking for coordinating background
// work across service instances.
package locker

import (
	"context"
	"time"
)

// DistributedLocker coordinates mutual exclusion across instances.
// Implementations must be safe for concurrent use.
//
// The departure status sweep uses it as a cooldown: the winner holds the
// lock for the full sweep interval, so other instances skip the tick.
//
//	acquired, err := locker.Acquire(ctx, "departure:status:lock", interval)
//	if err != nil || !acquired {
//	    return
//	}
//	// do the sweep; release early only on failure so another
//	// instance can retry
type DistributedLocker interface {
	// Acquire attempts to take the lock identified by key. It returns
	// true on success and false, without error, when another instance
	// holds it. The lock expires on its own after ttl.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release drops the lock if this instance owns it. Calling it for a
	// lock owned elsewhere is a no-op, not an error.
	Release(ctx context.Context, key string) error
}
