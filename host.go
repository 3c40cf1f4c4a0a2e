package stencil

import "time"

// timerScheduler defers work through the runtime timer queue. A zero-delay
// timer is enough of a settle point for hosts that apply edits synchronously
// before returning to their event loop.
type timerScheduler struct{}

// TimerScheduler returns the default Scheduler, backed by time.AfterFunc.
func TimerScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) Defer(fn func()) {
	time.AfterFunc(0, fn)
}

func (timerScheduler) DeferFor(fn func(), delay time.Duration) {
	time.AfterFunc(delay, fn)
}

// syncScheduler runs deferred work immediately. Useful for hosts without an
// event loop and for tests that want deterministic ordering.
type syncScheduler struct{}

// SyncScheduler returns a Scheduler that runs work inline, ignoring delays.
func SyncScheduler() Scheduler {
	return syncScheduler{}
}

func (syncScheduler) Defer(fn func()) {
	fn()
}

func (syncScheduler) DeferFor(fn func(), _ time.Duration) {
	fn()
}
