package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-scope-range/internal/config"
	"go-scope-range/internal/event"
)

// Scoreboard: панель HUD со счётом, промахами и таймером.
// Значения обновляются только из событий.
type Scoreboard struct {
	Score     int
	Misses    int
	MaxMisses int
	TimeLeft  int

	seconds   int
	fontFace  font.Face
	indicator *MissIndicator
}

func NewScoreboard(face font.Face, maxMisses, seconds int) *Scoreboard {
	return &Scoreboard{
		MaxMisses: maxMisses,
		TimeLeft:  seconds,
		seconds:   seconds,
		fontFace:  face,
		indicator: NewMissIndicator(250, float32(config.HUDHeight)/2),
	}
}

// Events: события, на которые подписывается панель.
func (s *Scoreboard) Events() []event.EventType {
	return []event.EventType{event.SessionStarted, event.TargetHit, event.TargetMissed, event.ClockTicked}
}

// OnEvent реализует event.Listener.
func (s *Scoreboard) OnEvent(e event.Event) {
	switch e.Type {
	case event.SessionStarted:
		s.Score, s.Misses, s.TimeLeft = 0, 0, s.seconds
	case event.TargetHit:
		if hit, ok := e.Data.(event.Hit); ok {
			s.Score = hit.Score
		}
	case event.TargetMissed:
		if miss, ok := e.Data.(event.Miss); ok {
			s.Misses = miss.Misses
		}
	case event.ClockTicked:
		if left, ok := e.Data.(int); ok {
			s.TimeLeft = left
		}
	}
}

func (s *Scoreboard) ScoreText() string  { return fmt.Sprintf("Score: %d", s.Score) }
func (s *Scoreboard) MissesText() string { return fmt.Sprintf("Misses: %d/%d", s.Misses, s.MaxMisses) }
func (s *Scoreboard) TimeText() string   { return fmt.Sprintf("Time: %ds", s.TimeLeft) }

func (s *Scoreboard) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.HUDHeight, config.HUDColor, false)
	vector.StrokeLine(screen, 0, config.HUDHeight, config.ScreenWidth, config.HUDHeight, 2, config.HUDBorderColor, false)

	baseline := config.HUDHeight/2 + 5
	text.Draw(screen, s.ScoreText(), s.fontFace, 16, baseline, config.TextLightColor)
	text.Draw(screen, s.MissesText(), s.fontFace, 140, baseline, config.TextLightColor)
	s.indicator.Draw(screen, s.Misses, s.MaxMisses)

	timeColor := config.TextLightColor
	if s.TimeLeft <= 5 {
		timeColor = config.MissColor
	}
	text.Draw(screen, s.TimeText(), s.fontFace, 380, baseline, timeColor)
}
