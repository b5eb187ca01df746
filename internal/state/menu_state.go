// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-scope-range/internal/audio"
	"go-scope-range/internal/config"
)

var menuLines = []string{
	"SCOPE RANGE",
	"",
	"Left click: shoot",
	"Hold right button: scope (x2 zoom, slow motion)",
	"",
	"Click or press Space to enter the range",
}

// MenuState — титульный экран
type MenuState struct {
	sm       *StateMachine
	settings config.Settings
	sound    *audio.SoundManager
	fontFace font.Face
}

func NewMenuState(sm *StateMachine, settings config.Settings, sound *audio.SoundManager, face font.Face) *MenuState {
	return &MenuState{sm: sm, settings: settings, sound: sound, fontFace: face}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.Switch(NewRangeState(m.sm, m.settings, m.sound, m.fontFace))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	y := config.ScreenHeight/2 - len(menuLines)*10
	for i, line := range menuLines {
		c := config.TextLightColor
		if i > 0 {
			c = config.TextDimColor
		}
		w := text.BoundString(m.fontFace, line).Dx()
		text.Draw(screen, line, m.fontFace, (config.ScreenWidth-w)/2, y, c)
		y += 20
	}
}

func (m *MenuState) Exit() {}
