package render

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-scope-range/internal/component"
	"go-scope-range/internal/config"
	"go-scope-range/internal/system"
)

const missLabel = "MISS"

// Frame: всё, что нужно нарисовать за один кадр
type Frame struct {
	Targets []component.Target
	Hits    []component.HitEffect
	Misses  []component.MissEffect
	Pointer component.Pointer
	Now     time.Duration
}

// FieldRenderer рисует поле в отдельное изображение и переносит его на экран:
// 1:1 или через прицел.
type FieldRenderer struct {
	field    *ebiten.Image
	lens     *ebiten.Image
	mask     *ebiten.Image
	fontFace font.Face
}

func NewFieldRenderer(face font.Face) *FieldRenderer {
	d := int(2 * config.ScopeRadius)
	mask := ebiten.NewImage(d, d)
	vector.DrawFilledCircle(mask, config.ScopeRadius, config.ScopeRadius, config.ScopeRadius, color.White, true)

	return &FieldRenderer{
		field:    ebiten.NewImage(config.FieldWidth, config.FieldHeight),
		lens:     ebiten.NewImage(d, d),
		mask:     mask,
		fontFace: face,
	}
}

// Draw полностью перерисовывает поле; offsetY: высота HUD над полем.
func (r *FieldRenderer) Draw(screen *ebiten.Image, f Frame, offsetY float64) {
	r.field.Fill(config.BackgroundColor)
	for _, t := range f.Targets {
		r.drawTarget(t, f.Now)
	}
	for _, m := range f.Misses {
		r.drawMiss(m, f.Now)
	}
	for _, h := range f.Hits {
		r.drawHit(h, f.Now)
	}

	if f.Pointer.Scoped {
		r.drawScope(screen, f.Pointer, offsetY)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, offsetY)
	screen.DrawImage(r.field, op)
}

func (r *FieldRenderer) drawTarget(t component.Target, now time.Duration) {
	opacity := system.TargetOpacity(t, now)
	points := system.Points(t.Size)
	fill := system.PointsColor(points, opacity)
	inner := system.Highlight(points, opacity)
	stroke := Fade(config.TargetStrokeColor, opacity)

	x, y := float32(t.X), float32(t.Y)
	half := float32(t.Size / 2)

	switch t.Shape {
	case component.ShapeCircle:
		vector.DrawFilledCircle(r.field, x, y, half, fill, true)
		vector.DrawFilledCircle(r.field, x, y, half/2, inner, true)
		vector.StrokeCircle(r.field, x, y, half, 1, stroke, true)
	default:
		vector.DrawFilledRect(r.field, x-half, y-half, 2*half, 2*half, fill, true)
		vector.DrawFilledRect(r.field, x-half/2, y-half/2, half, half, inner, true)
		vector.StrokeRect(r.field, x-half, y-half, 2*half, 2*half, 1, stroke, true)
	}
}

func (r *FieldRenderer) drawHit(h component.HitEffect, now time.Duration) {
	opacity := system.EffectOpacity(now-h.CreatedAt, config.HitEffectLifetime)
	label := fmt.Sprintf("+%d", h.Points)
	bounds := text.BoundString(r.fontFace, label)
	text.Draw(r.field, label, r.fontFace, int(h.X)-bounds.Dx()/2, int(h.Y), Fade(config.HitTextColor, opacity))
}

func (r *FieldRenderer) drawMiss(m component.MissEffect, now time.Duration) {
	age := now - m.CreatedAt
	opacity := system.EffectOpacity(age, config.MissEffectLifetime)
	size := system.MissMarkSize(age)
	c := Fade(config.MissColor, opacity)

	x, y, s := float32(m.X), float32(m.Y), float32(size)
	vector.StrokeLine(r.field, x-s, y-s, x+s, y+s, 4, c, true)
	vector.StrokeLine(r.field, x-s, y+s, x+s, y-s, 4, c, true)

	bounds := text.BoundString(r.fontFace, missLabel)
	text.Draw(r.field, missLabel, r.fontFace, int(m.X)-bounds.Dx()/2, int(m.Y-size)-5, c)
}

// drawScope: увеличенное вдвое поле вокруг курсора в круглой апертуре,
// всё остальное чёрное.
func (r *FieldRenderer) drawScope(screen *ebiten.Image, p component.Pointer, offsetY float64) {
	const radius = config.ScopeRadius

	r.lens.Clear()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-p.X, -p.Y)
	op.GeoM.Scale(config.ScopeZoom, config.ScopeZoom)
	op.GeoM.Translate(radius, radius)
	r.lens.DrawImage(r.field, op)
	r.lens.DrawImage(r.mask, &ebiten.DrawImageOptions{Blend: ebiten.BlendDestinationIn})

	vector.DrawFilledRect(screen, 0, float32(offsetY), config.FieldWidth, config.FieldHeight, color.Black, false)

	lop := &ebiten.DrawImageOptions{}
	lop.GeoM.Translate(p.X-radius, p.Y-radius+offsetY)
	screen.DrawImage(r.lens, lop)

	cx, cy := float32(p.X), float32(p.Y+offsetY)
	vector.StrokeLine(screen, cx-radius, cy, cx+radius, cy, config.CrosshairWidth, config.CrosshairColor, true)
	vector.StrokeLine(screen, cx, cy-radius, cx, cy+radius, config.CrosshairWidth, config.CrosshairColor, true)
	vector.StrokeCircle(screen, cx, cy, radius, 4, config.ScopeRimColor, true)
}
