package system

import (
	"testing"

	"go-scope-range/internal/component"
)

func target(x, y, dx, dy, size float64) component.Target {
	return component.Target{
		Position: component.Position{X: x, Y: y},
		Velocity: component.Velocity{DX: dx, DY: dy},
		Size:     size,
	}
}

func TestStep_Moves(t *testing.T) {
	in := []component.Target{target(100, 100, 2, -1, 20)}

	got := Step(in, 1, FieldBounds)
	if got[0].X != 102 || got[0].Y != 99 {
		t.Errorf("position = (%v, %v), want (102, 99)", got[0].X, got[0].Y)
	}

	got = Step(in, 0.25, FieldBounds)
	if got[0].X != 100.5 || got[0].Y != 99.75 {
		t.Errorf("scoped position = (%v, %v), want (100.5, 99.75)", got[0].X, got[0].Y)
	}
	if in[0].X != 100 {
		t.Error("Step() modified its input")
	}
}

func TestStep_BouncesOffEachEdge(t *testing.T) {
	tests := []struct {
		name           string
		tg             component.Target
		wantDX, wantDY float64
	}{
		{"left", target(11, 300, -3, 0, 20), 3, 0},
		{"right", target(789, 300, 3, 0, 20), -3, 0},
		{"top", target(400, 11, 0, -2, 20), 0, 2},
		{"bottom", target(400, 589, 0, 2, 20), 0, -2},
		{"corner", target(789, 589, 3, 2, 20), -3, -2},
		{"inside", target(400, 300, 3, 2, 20), 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Step([]component.Target{tt.tg}, 1, FieldBounds)[0]
			if got.DX != tt.wantDX || got.DY != tt.wantDY {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", got.DX, got.DY, tt.wantDX, tt.wantDY)
			}
		})
	}
}

func TestStep_OneFlipPerCrossing(t *testing.T) {
	// Мишень заходит за правый край на полной скорости, затем включается прицел.
	targets := []component.Target{target(788, 300, 3, 0, 20)}
	flips := 0
	prev := targets[0].DX

	targets = Step(targets, 1, FieldBounds)
	for i := 0; i < 20; i++ {
		if targets[0].DX != prev {
			flips++
			prev = targets[0].DX
		}
		targets = Step(targets, 0.25, FieldBounds)
	}

	if flips != 1 {
		t.Errorf("flips = %d, want 1", flips)
	}
	if targets[0].DX >= 0 {
		t.Errorf("DX = %v, want negative after bounce", targets[0].DX)
	}
}
