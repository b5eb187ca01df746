package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatcher_DispatchToSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(TargetHit, a)
	d.Subscribe(TargetHit, b)
	d.Subscribe(TargetMissed, b)

	d.Dispatch(Event{Type: TargetHit, Data: Hit{Points: 5}})
	d.Dispatch(Event{Type: TargetMissed, Data: Miss{Misses: 1}})

	if len(a.got) != 1 {
		t.Errorf("a received %d events, want 1", len(a.got))
	}
	if len(b.got) != 2 {
		t.Errorf("b received %d events, want 2", len(b.got))
	}
	if h, ok := a.got[0].Data.(Hit); !ok || h.Points != 5 {
		t.Errorf("a.got[0].Data = %#v, want Hit{Points: 5}", a.got[0].Data)
	}
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(ClockTicked, r)
	d.Unsubscribe(ClockTicked, r)

	d.Dispatch(Event{Type: ClockTicked, Data: 10})

	if len(r.got) != 0 {
		t.Errorf("received %d events after Unsubscribe, want 0", len(r.got))
	}
}

func TestDispatcher_NoSubscribers(t *testing.T) {
	d := NewDispatcher()
	// Should not panic
	d.Dispatch(Event{Type: SessionEnded})
	d.Unsubscribe(SessionEnded, &recorder{})
}

func TestSubscribeAll(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, SessionStarted, SessionEnded)

	d.Dispatch(Event{Type: SessionStarted})
	d.Dispatch(Event{Type: ScopeChanged, Data: true})
	d.Dispatch(Event{Type: SessionEnded})

	if len(r.got) != 2 {
		t.Errorf("received %d events, want 2", len(r.got))
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	var ticks []int
	d.Subscribe(ClockTicked, ListenerFunc(func(e Event) {
		ticks = append(ticks, e.Data.(int))
	}))

	d.Dispatch(Event{Type: ClockTicked, Data: 29})
	d.Dispatch(Event{Type: ClockTicked, Data: 28})

	if len(ticks) != 2 || ticks[0] != 29 || ticks[1] != 28 {
		t.Errorf("ticks = %v, want [29 28]", ticks)
	}
}

func TestDispatcher_UnsubscribeSkipsFuncs(t *testing.T) {
	d := NewDispatcher()
	f := ListenerFunc(func(Event) {})
	r := &recorder{}
	d.Subscribe(TargetHit, f)
	d.Subscribe(TargetHit, r)

	// Should not panic on uncomparable listeners
	d.Unsubscribe(TargetHit, f)
	d.Unsubscribe(TargetHit, r)
	d.Dispatch(Event{Type: TargetHit, Data: Hit{Points: 3}})

	if len(r.got) != 0 {
		t.Errorf("r received %d events after Unsubscribe, want 0", len(r.got))
	}
}

// valueListener — слушатель-значение с несравнимым полем.
type valueListener struct {
	seen []EventType
}

func (v valueListener) OnEvent(Event) {}

func TestDispatcher_UnsubscribeUncomparableValue(t *testing.T) {
	d := NewDispatcher()
	v := valueListener{seen: []EventType{TargetHit}}
	r := &recorder{}
	d.Subscribe(TargetMissed, v)
	d.Subscribe(TargetMissed, r)

	// Should not panic on a struct value holding a slice
	d.Unsubscribe(TargetMissed, v)
	d.Unsubscribe(TargetMissed, r)
	d.Dispatch(Event{Type: TargetMissed, Data: Miss{Misses: 1}})

	if len(r.got) != 0 {
		t.Errorf("r received %d events after Unsubscribe, want 0", len(r.got))
	}
}
