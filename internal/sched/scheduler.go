// Package sched runs frame callbacks and interval timers on a single logical
// thread. Time only moves when Advance is called, so the game loop and tests
// share the same clock.
package sched

import "time"

// Handle отменяет запланированную задачу.
type Handle struct {
	cancelled bool
}

// Cancel останавливает задачу. Повторный вызов ничего не делает.
func (h *Handle) Cancel() {
	if h != nil {
		h.cancelled = true
	}
}

// Cancelled сообщает, была ли задача отменена.
func (h *Handle) Cancelled() bool {
	return h == nil || h.cancelled
}

type interval struct {
	handle *Handle
	every  time.Duration
	next   time.Duration
	fn     func(now time.Duration)
}

type frame struct {
	handle *Handle
	fn     func(now time.Duration)
}

// Scheduler — аналог requestAnimationFrame + setInterval.
type Scheduler struct {
	now       time.Duration
	intervals []*interval
	frames    []frame
}

func New() *Scheduler {
	return &Scheduler{}
}

// Now возвращает текущее время планировщика.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every вызывает fn каждые d, начиная через d после вызова.
func (s *Scheduler) Every(d time.Duration, fn func(now time.Duration)) *Handle {
	if d <= 0 {
		panic("sched: non-positive interval")
	}
	h := &Handle{}
	s.intervals = append(s.intervals, &interval{handle: h, every: d, next: s.now + d, fn: fn})
	return h
}

// RequestFrame планирует fn на следующий Advance.
func (s *Scheduler) RequestFrame(fn func(now time.Duration)) *Handle {
	h := &Handle{}
	s.frames = append(s.frames, frame{handle: h, fn: fn})
	return h
}

// Pending возвращает число активных задач (интервалы + кадры).
func (s *Scheduler) Pending() int {
	n := 0
	for _, iv := range s.intervals {
		if !iv.handle.Cancelled() {
			n++
		}
	}
	for _, f := range s.frames {
		if !f.handle.Cancelled() {
			n++
		}
	}
	return n
}

// Advance сдвигает часы на dt, срабатывают просроченные интервалы
// (с догоняющими вызовами), затем кадры, запрошенные до этого вызова.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	s.now += dt

	for _, iv := range s.intervals {
		for !iv.handle.Cancelled() && iv.next <= s.now {
			at := iv.next
			iv.next += iv.every
			iv.fn(at)
		}
	}
	s.compact()

	due := s.frames
	s.frames = nil
	for _, f := range due {
		if !f.handle.Cancelled() {
			f.fn(s.now)
		}
	}
}

func (s *Scheduler) compact() {
	live := s.intervals[:0]
	for _, iv := range s.intervals {
		if !iv.handle.Cancelled() {
			live = append(live, iv)
		}
	}
	for i := len(live); i < len(s.intervals); i++ {
		s.intervals[i] = nil
	}
	s.intervals = live
}
