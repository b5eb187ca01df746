package system

import (
	"go-scope-range/internal/component"
	"go-scope-range/internal/config"
)

// SpeedFactor замедляет движение в прицеле в четыре раза.
func SpeedFactor(p component.Pointer) float64 {
	if p.Scoped {
		return config.ScopeSpeedFactor
	}
	return 1
}

// ScreenToWorld переводит координаты клика в координаты поля.
// В прицеле картинка увеличена вдвое вокруг курсора, поэтому
// world = (screen - pointer)/zoom + pointer.
func ScreenToWorld(x, y float64, p component.Pointer) (float64, float64) {
	if !p.Scoped {
		return x, y
	}
	return (x-p.X)/config.ScopeZoom + p.X, (y-p.Y)/config.ScopeZoom + p.Y
}
