package component

import "time"

// Shape — форма мишени
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
)

func (s Shape) String() string {
	if s == ShapeCircle {
		return "circle"
	}
	return "rect"
}

// Target — мишень. Позиция задаёт центр, Size — сторону/диаметр.
type Target struct {
	ID uint64
	Position
	Velocity
	Size      float64
	Shape     Shape
	CreatedAt time.Duration
	Lifetime  time.Duration
}

// Age возвращает возраст мишени на момент now.
func (t Target) Age(now time.Duration) time.Duration {
	return now - t.CreatedAt
}

// Expired — мишень прожила свой срок
func (t Target) Expired(now time.Duration) bool {
	return t.Age(now) >= t.Lifetime
}
