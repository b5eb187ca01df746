package component

import "time"

// Phase — фаза сессии
type Phase int

const (
	Idle Phase = iota
	Running
	Ended
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Ended:
		return "ended"
	default:
		return "idle"
	}
}

// Session — счёт, промахи и оставшееся время текущей сессии
type Session struct {
	Phase    Phase
	Score    int
	Misses   int
	TimeLeft int // секунды
}

// Pointer — позиция курсора в координатах поля и режим прицела
type Pointer struct {
	X, Y   float64
	Scoped bool
}

// EndReason — почему сессия закончилась
type EndReason string

const (
	ReasonTimeout   EndReason = "timeout"
	ReasonMissLimit EndReason = "miss_limit"
)

// Report — итог сессии для игрока
type Report struct {
	SessionID string
	Score     int
	Misses    int
	TimeLeft  int
	Reason    EndReason
	Duration  time.Duration
}
