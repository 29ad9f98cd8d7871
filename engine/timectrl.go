package engine

import (
	"time"

	"go.uber.org/atomic"
)

// timectrl.go tracks a single polled wall-clock search budget, backed by
// go.uber.org/atomic for lock-free reads from the search loop.

// timeControl tracks a single search's wall-clock budget and whether it
// has been exceeded. A zero budget means "no limit": stopped is only
// ever set by an explicit Stop call in that mode.
type timeControl struct {
	budget  time.Duration
	start   time.Time
	stopped atomic.Bool
}

func newTimeControl(budget time.Duration) *timeControl {
	return &timeControl{budget: budget}
}

// Start resets the clock for a new get_move invocation.
func (tc *timeControl) Start() {
	tc.start = time.Now()
	tc.stopped.Store(false)
}

// Stop marks the current search as cancelled, regardless of elapsed time.
func (tc *timeControl) Stop() {
	tc.stopped.Store(true)
}

// Poll reports whether the search should stop now: either Stop was
// called, or (with a nonzero budget) the elapsed time has exceeded it.
// Polling also latches the stopped flag once the budget is exceeded, so
// later callers on the same search see the same answer cheaply.
func (tc *timeControl) Poll() bool {
	if tc.stopped.Load() {
		return true
	}
	if tc.budget <= 0 {
		return false
	}
	if time.Since(tc.start) >= tc.budget {
		tc.stopped.Store(true)
		return true
	}
	return false
}
