package stencil

import (
	"testing"
	"time"
)

func TestSyncScheduler(t *testing.T) {
	s := SyncScheduler()

	ran := false
	s.Defer(func() { ran = true })
	if !ran {
		t.Error("Defer() did not run inline")
	}

	ran = false
	s.DeferFor(func() { ran = true }, time.Hour)
	if !ran {
		t.Error("DeferFor() did not run inline")
	}
}

func TestTimerScheduler(t *testing.T) {
	s := TimerScheduler()

	done := make(chan struct{})
	s.Defer(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Defer() never ran")
	}
}

func TestTimerScheduler_Delay(t *testing.T) {
	s := TimerScheduler()

	done := make(chan struct{})
	start := time.Now()
	s.DeferFor(func() { close(done) }, 10*time.Millisecond)

	select {
	case <-done:
		if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
			t.Errorf("DeferFor() ran after %v, want at least 10ms", elapsed)
		}
	case <-time.After(time.Second):
		t.Fatal("DeferFor() never ran")
	}
}
