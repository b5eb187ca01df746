package system

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"go-scope-range/internal/config"
	"go-scope-range/internal/utils"
)

const (
	coldHue = 240.0 // дешёвые (крупные) мишени
	hotHue  = 0.0   // дорогие (мелкие)
)

// PointsRange: минимальные и максимальные очки за мишень.
func PointsRange() (lo, hi int) {
	return Points(config.MaxTargetSize), Points(config.MinTargetSize)
}

// PointsHue интерполирует оттенок по диапазону очков, t ограничен [0,1].
func PointsHue(points int) float64 {
	lo, hi := PointsRange()
	t := utils.Clamp01(float64(points-lo) / float64(hi-lo))
	return utils.Lerp(coldHue, hotHue, t)
}

// PointsColor возвращает цвет мишени с заданной прозрачностью.
func PointsColor(points int, opacity float64) color.NRGBA {
	c := colorful.Hsv(PointsHue(points), 0.8, 0.95)
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(utils.Clamp01(opacity) * 255)}
}

// Highlight: светлый центр мишени (градиент к белому).
func Highlight(points int, opacity float64) color.NRGBA {
	c := colorful.Hsv(PointsHue(points), 0.8, 0.95).BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, 0.5)
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(utils.Clamp01(opacity) * 255)}
}
