package app

import (
	"sync"
	"time"
)

// ConfettiTimer owns the deferred auto-hide of the confetti flag. The
// pending callback must be cancelled when the owning view is torn down,
// so it cannot mutate state for a view that is no longer active.
type ConfettiTimer struct {
	mu    sync.Mutex
	timer *time.Timer
}

// Arm schedules fn after d, replacing any pending callback.
func (t *ConfettiTimer) Arm(d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(d, fn)
}

// Cancel stops the pending callback, if any.
func (t *ConfettiTimer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
