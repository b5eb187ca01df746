// internal/component/visual.go
package component

import "time"

// HitEffect — всплывающие очки на месте попадания.
type HitEffect struct {
	Position
	Points    int
	CreatedAt time.Duration
}

// MissEffect — крестик на месте промаха.
type MissEffect struct {
	Position
	CreatedAt time.Duration
}
