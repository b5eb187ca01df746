package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-scope-range/internal/config"
	"go-scope-range/pkg/render"
)

const (
	MissCircleRadius  = 6.0
	MissCircleSpacing = 4.0
)

// MissIndicator отображает промахи рядом кружков, заполненный кружок означает промах.
type MissIndicator struct {
	X, Y float32
}

func NewMissIndicator(x, y float32) *MissIndicator {
	return &MissIndicator{X: x, Y: y}
}

// Draw рисует max кружков, первые misses из них красные.
func (i *MissIndicator) Draw(screen *ebiten.Image, misses, max int) {
	for j := 0; j < max; j++ {
		cx := i.X + MissCircleRadius + float32(j)*(MissCircleRadius*2+MissCircleSpacing)
		cy := i.Y
		c := render.DarkenColor(config.HUDBorderColor)
		if j < misses {
			c = config.MissColor
		}
		vector.DrawFilledCircle(screen, cx, cy, MissCircleRadius, c, true)
		vector.StrokeCircle(screen, cx, cy, MissCircleRadius, 1, config.TextLightColor, true)
	}
}

// Width возвращает ширину ряда из max кружков.
func (i *MissIndicator) Width(max int) float32 {
	return float32(max)*(MissCircleRadius*2+MissCircleSpacing) - MissCircleSpacing
}
