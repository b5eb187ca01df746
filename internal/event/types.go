// internal/event/types.go
package event

const (
	SessionStarted EventType = "SessionStarted" // Data: string (ID сессии)
	SessionEnded   EventType = "SessionEnded"   // Data: component.Report
	TargetHit      EventType = "TargetHit"      // Data: Hit
	TargetMissed   EventType = "TargetMissed"   // Data: Miss
	ClockTicked    EventType = "ClockTicked"    // Data: int (секунд осталось)
	ScopeChanged   EventType = "ScopeChanged"   // Data: bool
)

// Hit — данные события TargetHit
type Hit struct {
	X, Y   float64
	Points int
	Score  int
}

// Miss — данные события TargetMissed
type Miss struct {
	X, Y   float64
	Misses int
}
