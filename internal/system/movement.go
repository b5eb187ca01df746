// internal/system/movement.go
package system

import "go-scope-range/internal/component"

// Step сдвигает мишени на velocity*factor и отражает скорость от краёв.
// Компонента скорости меняет знак только если мишень выходит за край
// и продолжает двигаться наружу, поэтому на одно пересечение приходится
// ровно одно отражение, даже при замедлении прицелом.
func Step(targets []component.Target, factor float64, b Bounds) []component.Target {
	out := make([]component.Target, len(targets))
	for i, t := range targets {
		t.X += t.DX * factor
		t.Y += t.DY * factor

		half := t.Size / 2
		if (t.X-half < 0 && t.DX < 0) || (t.X+half > b.Width && t.DX > 0) {
			t.DX = -t.DX
		}
		if (t.Y-half < 0 && t.DY < 0) || (t.Y+half > b.Height && t.DY > 0) {
			t.DY = -t.DY
		}
		out[i] = t
	}
	return out
}
