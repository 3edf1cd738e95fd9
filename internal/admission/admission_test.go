package admission

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock lets tests move time forward deterministically.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newTestController() (*Controller, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	ctrl := NewController()
	ctrl.now = clock.Now
	return ctrl, clock
}

func TestCheck_AllowsUpToLimit(t *testing.T) {
	ctrl, _ := newTestController()

	for i := 0; i < 5; i++ {
		res := ctrl.Check("apply:10.0.0.1", 5, 60)
		assert.True(t, res.Allowed, "request %d should pass", i+1)
		assert.Equal(t, 4-i, res.Remaining)
	}

	res := ctrl.Check("apply:10.0.0.1", 5, 60)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
	assert.Greater(t, res.ResetInSeconds, 0)
}

func TestCheck_WindowResetsAfterExpiry(t *testing.T) {
	ctrl, clock := newTestController()

	for i := 0; i < 3; i++ {
		ctrl.Check("login:10.0.0.2", 3, 30)
	}
	assert.False(t, ctrl.Check("login:10.0.0.2", 3, 30).Allowed)

	clock.Advance(31 * time.Second)

	res := ctrl.Check("login:10.0.0.2", 3, 30)
	assert.True(t, res.Allowed)
	assert.Equal(t, 2, res.Remaining)
	assert.Equal(t, 30, res.ResetInSeconds)
}

func TestCheck_IdentifiersAreIndependent(t *testing.T) {
	ctrl, _ := newTestController()

	assert.True(t, ctrl.Check("apply:10.0.0.1", 1, 60).Allowed)
	assert.False(t, ctrl.Check("apply:10.0.0.1", 1, 60).Allowed)

	// same action, different caller
	assert.True(t, ctrl.Check("apply:10.0.0.9", 1, 60).Allowed)
	// same caller, different action
	assert.True(t, ctrl.Check("jobpost:10.0.0.1", 1, 60).Allowed)
}

func TestCheck_DeniedIncludesResetHint(t *testing.T) {
	ctrl, clock := newTestController()

	ctrl.Check("quote:1.2.3.4", 1, 120)
	clock.Advance(45 * time.Second)

	res := ctrl.Check("quote:1.2.3.4", 1, 120)
	assert.False(t, res.Allowed)
	assert.Equal(t, 75, res.ResetInSeconds)
}

func TestSweep_DropsExpiredWindows(t *testing.T) {
	ctrl, clock := newTestController()

	for i := 0; i < 10; i++ {
		ctrl.Check(fmt.Sprintf("apply:10.0.0.%d", i), 5, 10)
	}
	assert.Equal(t, 10, ctrl.Size())

	// All ten windows expire, and enough time passes for the throttled
	// sweep to run again on the next check.
	clock.Advance(2 * time.Minute)
	ctrl.Check("apply:fresh", 5, 10)

	assert.Equal(t, 1, ctrl.Size())
}

func TestSweep_IsThrottled(t *testing.T) {
	ctrl, clock := newTestController()

	ctrl.Check("a:1", 5, 1)
	clock.Advance(5 * time.Second)

	// Window for a:1 is expired but the sweep ran recently, so the entry
	// is replaced only when its own key is checked again.
	ctrl.Check("b:1", 5, 1)
	assert.Equal(t, 2, ctrl.Size())
}

func TestCheck_ConcurrentSingleKey(t *testing.T) {
	ctrl, _ := newTestController()

	const callers = 50
	var wg sync.WaitGroup
	allowed := make(chan bool, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed <- ctrl.Check("burst:1.1.1.1", 10, 60).Allowed
		}()
	}
	wg.Wait()
	close(allowed)

	passed := 0
	for ok := range allowed {
		if ok {
			passed++
		}
	}
	assert.Equal(t, 10, passed)
}
