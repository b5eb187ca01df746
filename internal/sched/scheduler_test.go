package sched

import (
	"testing"
	"time"
)

func TestScheduler_EveryFiresOncePerInterval(t *testing.T) {
	s := New()
	calls := 0
	s.Every(time.Second, func(time.Duration) { calls++ })

	for i := 0; i < 49; i++ {
		s.Advance(20 * time.Millisecond)
	}
	if calls != 0 {
		t.Errorf("calls after 49 frames = %d, want 0", calls)
	}
	s.Advance(20 * time.Millisecond)
	if calls != 1 {
		t.Errorf("calls after 1s = %d, want 1", calls)
	}
}

func TestScheduler_EveryCatchesUp(t *testing.T) {
	s := New()
	var at []time.Duration
	s.Every(time.Second, func(now time.Duration) { at = append(at, now) })

	s.Advance(3500 * time.Millisecond)

	if len(at) != 3 {
		t.Fatalf("calls = %d, want 3", len(at))
	}
	for i, want := range []time.Duration{time.Second, 2 * time.Second, 3 * time.Second} {
		if at[i] != want {
			t.Errorf("call %d at %v, want %v", i, at[i], want)
		}
	}
}

func TestScheduler_CancelStopsInterval(t *testing.T) {
	s := New()
	calls := 0
	h := s.Every(time.Second, func(time.Duration) { calls++ })

	s.Advance(time.Second)
	h.Cancel()
	h.Cancel()
	s.Advance(5 * time.Second)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
}

func TestScheduler_CancelFromInsideCallback(t *testing.T) {
	s := New()
	calls := 0
	var h *Handle
	h = s.Every(time.Second, func(time.Duration) {
		calls++
		h.Cancel()
	})

	s.Advance(10 * time.Second)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestScheduler_RequestFrameRunsOnce(t *testing.T) {
	s := New()
	calls := 0
	s.RequestFrame(func(time.Duration) { calls++ })

	s.Advance(time.Millisecond)
	s.Advance(time.Millisecond)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestScheduler_FrameRescheduledInsideCallbackWaitsForNextAdvance(t *testing.T) {
	s := New()
	calls := 0
	var loop func(time.Duration)
	loop = func(time.Duration) {
		calls++
		if calls < 3 {
			s.RequestFrame(loop)
		}
	}
	s.RequestFrame(loop)

	for i := 0; i < 10; i++ {
		s.Advance(time.Millisecond)
		if i < 3 && calls != i+1 {
			t.Fatalf("after advance %d calls = %d, want %d", i, calls, i+1)
		}
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestScheduler_IntervalsRunBeforeFrames(t *testing.T) {
	s := New()
	var order []string
	s.RequestFrame(func(time.Duration) { order = append(order, "frame") })
	s.Every(time.Second, func(time.Duration) { order = append(order, "tick") })

	s.Advance(time.Second)

	if len(order) != 2 || order[0] != "tick" || order[1] != "frame" {
		t.Errorf("order = %v, want [tick frame]", order)
	}
}

func TestScheduler_CancelledFrameSkipped(t *testing.T) {
	s := New()
	called := false
	h := s.RequestFrame(func(time.Duration) { called = true })
	h.Cancel()

	s.Advance(time.Millisecond)

	if called {
		t.Error("cancelled frame callback ran")
	}
}

func TestScheduler_NowAdvances(t *testing.T) {
	s := New()
	s.Advance(250 * time.Millisecond)
	s.Advance(-time.Second)
	if s.Now() != 250*time.Millisecond {
		t.Errorf("Now() = %v, want 250ms", s.Now())
	}
}

func TestHandle_NilIsCancelled(t *testing.T) {
	var h *Handle
	h.Cancel()
	if !h.Cancelled() {
		t.Error("nil handle should report cancelled")
	}
}
