package admission

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Controller is a bounded counting permit pool. It is safe for use by any
// number of goroutines.
type Controller struct {
	sem      *semaphore.Weighted
	capacity int
	inUse    atomic.Int64
}

// New creates a controller with the given permit capacity.
// Capacity must be positive; anything else is a configuration error.
func New(capacity int) (*Controller, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &Controller{
		sem:      semaphore.NewWeighted(int64(capacity)),
		capacity: capacity,
	}, nil
}

// Acquire blocks until a permit is available or ctx is done, then consumes
// one permit. Waiters are served eventually but not in FIFO order.
func (c *Controller) Acquire(ctx context.Context) error {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	c.inUse.Add(1)
	return nil
}

// Release returns one permit to the pool. It must follow a matching
// successful Acquire and should be deferred immediately after it, so the
// permit is returned on every exit path including a panic in the guarded
// section.
func (c *Controller) Release() {
	c.inUse.Add(-1)
	c.sem.Release(1)
}

// Capacity returns the configured permit capacity.
func (c *Controller) Capacity() int {
	return c.capacity
}

// InUse reports how many permits are currently held. The value may be
// stale by the time the caller reads it; it is meant for diagnostics and
// leak accounting, not for admission decisions.
func (c *Controller) InUse() int {
	return int(c.inUse.Load())
}
