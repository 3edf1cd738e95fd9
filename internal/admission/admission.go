// Package admission implements the fixed-window request admission controller
// that protects mutating endpoints. Counters live in process memory only, so
// horizontally scaled instances each enforce their own budget; this is a
// best-effort safeguard, not a distributed rate limiter.
package admission

import (
	"sync"
	"time"
)

// sweepInterval throttles how often expired windows are swept. The sweep is
// executed inline by whichever Check call crosses the interval; the hot path
// only pays a timestamp comparison.
const sweepInterval = 60 * time.Second

// Result is the outcome of one admission check. ResetInSeconds tells a
// denied caller how long to wait before the window opens again.
type Result struct {
	Allowed        bool `json:"allowed"`
	Remaining      int  `json:"remaining"`
	ResetInSeconds int  `json:"reset_in_seconds"`
}

type window struct {
	count   int
	resetAt time.Time
}

// Controller counts requests per identifier in fixed time windows.
// Construct one with NewController and share it by reference between
// handlers; different identifiers never contend beyond the map lock.
type Controller struct {
	mu        sync.Mutex
	windows   map[string]*window
	lastSweep time.Time

	// now is swappable for tests
	now func() time.Time
}

// NewController creates an empty admission controller.
func NewController() *Controller {
	return &Controller{
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

// Check records one request for identifier and decides whether it may
// proceed. The first request for an identifier, or any request after the
// stored window expired, starts a fresh window with count 1. Within a live
// window the counter is incremented and compared against maxRequests.
func (ctrl *Controller) Check(identifier string, maxRequests int, windowSeconds int) Result {
	now := ctrl.now()

	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()

	ctrl.maybeSweep(now)

	w, ok := ctrl.windows[identifier]
	if !ok || now.After(w.resetAt) {
		ctrl.windows[identifier] = &window{
			count:   1,
			resetAt: now.Add(time.Duration(windowSeconds) * time.Second),
		}
		return Result{
			Allowed:        true,
			Remaining:      maxRequests - 1,
			ResetInSeconds: windowSeconds,
		}
	}

	w.count++
	resetIn := int(w.resetAt.Sub(now).Seconds())
	if resetIn < 0 {
		resetIn = 0
	}

	if w.count > maxRequests {
		return Result{
			Allowed:        false,
			Remaining:      0,
			ResetInSeconds: resetIn,
		}
	}

	return Result{
		Allowed:        true,
		Remaining:      maxRequests - w.count,
		ResetInSeconds: resetIn,
	}
}

// maybeSweep drops expired windows, at most once per sweepInterval.
// Caller must hold the lock.
func (ctrl *Controller) maybeSweep(now time.Time) {
	if now.Sub(ctrl.lastSweep) < sweepInterval {
		return
	}
	ctrl.lastSweep = now

	for id, w := range ctrl.windows {
		if now.After(w.resetAt) {
			delete(ctrl.windows, id)
		}
	}
}

// Size returns the number of tracked windows, expired or not.
func (ctrl *Controller) Size() int {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	return len(ctrl.windows)
}
