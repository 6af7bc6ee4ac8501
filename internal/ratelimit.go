package internal

import (
	"context"
	"sync"
	"time"
)

// Budget is a fixed-window admission controller. A window of the configured
// duration admits at most limit calls; when the budget is exhausted, Acquire
// blocks until the window rolls over. Windows are client-local wall clock -
// no attempt is made to line them up with the server's accounting.
//
// The remaining count can never go negative: exhaustion blocks or is
// reported, it is never underflowed.
type Budget struct {
	mu          sync.Mutex
	limit       int
	window      time.Duration
	remaining   int
	windowStart time.Time
}

// NewBudget creates a budget admitting limit calls per window. Returns nil
// when limit or window is non-positive; a nil *Budget admits everything.
func NewBudget(limit int, window time.Duration) *Budget {
	if limit <= 0 || window <= 0 {
		return nil
	}
	return &Budget{limit: limit, window: window}
}

// Acquire takes one slot from the current window, blocking until one is
// available or ctx is done. A cancelled Acquire never consumes a slot.
func (b *Budget) Acquire(ctx context.Context) error {
	if b == nil {
		return nil
	}

	for {
		b.mu.Lock()
		now := time.Now()
		b.rollWindow(now)

		if b.remaining > 0 {
			b.remaining--
			b.mu.Unlock()
			return nil
		}

		waitUntil := b.windowStart.Add(b.window)
		b.mu.Unlock()

		timer := time.NewTimer(waitUntil.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// TryAcquire takes a slot without blocking. When the budget is exhausted it
// reports false together with the time until the window resets.
func (b *Budget) TryAcquire() (bool, time.Duration) {
	if b == nil {
		return true, 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.rollWindow(now)

	if b.remaining > 0 {
		b.remaining--
		return true, 0
	}
	return false, b.windowStart.Add(b.window).Sub(now)
}

// Release returns a slot taken by Acquire or TryAcquire. Used when an
// admitted call is abandoned before it reaches the network, so cancellation
// neither leaks nor double-charges the budget. The count is capped at the
// window limit.
func (b *Budget) Release() {
	if b == nil {
		return
	}

	b.mu.Lock()
	if b.remaining < b.limit {
		b.remaining++
	}
	b.mu.Unlock()
}

// Remaining reports the slots left in the current window.
func (b *Budget) Remaining() int {
	if b == nil {
		return 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.rollWindow(time.Now())
	return b.remaining
}

// rollWindow resets the budget when the current window has elapsed.
// Callers must hold b.mu.
func (b *Budget) rollWindow(now time.Time) {
	if b.windowStart.IsZero() || !now.Before(b.windowStart.Add(b.window)) {
		b.windowStart = now
		b.remaining = b.limit
	}
}
