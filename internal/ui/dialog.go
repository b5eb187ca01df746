package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-scope-range/internal/component"
	"go-scope-range/internal/config"
)

// Dialog: модальное сообщение об итоге сессии. Пока оно открыто,
// остальной ввод игнорируется.
type Dialog struct {
	visible  bool
	message  string
	detail   string
	rect     image.Rectangle
	ok       *Button
	fontFace font.Face
}

func NewDialog(face font.Face) *Dialog {
	x := (config.ScreenWidth - config.DialogWidth) / 2
	y := (config.ScreenHeight - config.DialogHeight) / 2
	rect := image.Rect(x, y, x+config.DialogWidth, y+config.DialogHeight)
	okRect := image.Rect(rect.Max.X-100, rect.Max.Y-44, rect.Max.X-20, rect.Max.Y-16)
	return &Dialog{
		rect:     rect,
		ok:       NewButton(okRect, "OK", face),
		fontFace: face,
	}
}

// Notify реализует app.Notifier.
func (d *Dialog) Notify(r component.Report) {
	d.visible = true
	d.message = fmt.Sprintf("Game over! Final score: %d", r.Score)
	switch r.Reason {
	case component.ReasonMissLimit:
		d.detail = fmt.Sprintf("Out of misses (%d).", r.Misses)
	default:
		d.detail = "Time is up."
	}
}

func (d *Dialog) Visible() bool {
	return d.visible
}

func (d *Dialog) Message() string {
	return d.message
}

// Update закрывает окно по клику на OK, Enter или Space.
func (d *Dialog) Update() {
	if !d.visible {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		d.visible = false
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if d.ok.Clicked(ebiten.CursorPosition()) {
			d.visible = false
		}
	}
}

func (d *Dialog) Draw(screen *ebiten.Image) {
	if !d.visible {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.ShadeColor, false)

	x, y := float32(d.rect.Min.X), float32(d.rect.Min.Y)
	w, h := float32(d.rect.Dx()), float32(d.rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, config.DialogColor, true)
	vector.StrokeRect(screen, x, y, w, h, 2, config.HUDBorderColor, true)

	text.Draw(screen, d.message, d.fontFace, d.rect.Min.X+20, d.rect.Min.Y+40, config.TextLightColor)
	text.Draw(screen, d.detail, d.fontFace, d.rect.Min.X+20, d.rect.Min.Y+64, config.TextDimColor)
	d.ok.Draw(screen)
}
