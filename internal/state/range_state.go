package state

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font"

	"go-scope-range/internal/app"
	"go-scope-range/internal/audio"
	"go-scope-range/internal/config"
	"go-scope-range/internal/event"
	"go-scope-range/internal/sched"
	"go-scope-range/internal/ui"
	"go-scope-range/internal/utils"
	"go-scope-range/pkg/render"
)

// RangeState — экран тира: HUD, поле и модальное окно итогов.
type RangeState struct {
	sm       *StateMachine
	settings config.Settings
	sound    *audio.SoundManager
	fontFace font.Face

	scheduler  *sched.Scheduler
	dispatcher *event.Dispatcher
	game       *app.Game
	renderer   *render.FieldRenderer
	scoreboard *ui.Scoreboard
	dialog     *ui.Dialog
	start      *ui.Button
}

func NewRangeState(sm *StateMachine, settings config.Settings, sound *audio.SoundManager, face font.Face) *RangeState {
	scheduler := sched.New()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)
	dialog := ui.NewDialog(face)

	scoreboard := ui.NewScoreboard(face, settings.MaxMisses, settings.SessionSeconds)
	dispatcher.SubscribeAll(scoreboard, scoreboard.Events()...)
	if sound != nil {
		dispatcher.SubscribeAll(sound, event.TargetHit, event.TargetMissed, event.SessionEnded)
	}

	x := config.ScreenWidth - config.StartButtonWidth - 16
	y := (config.HUDHeight - config.StartButtonHeight) / 2
	start := ui.NewButton(image.Rect(x, y, x+config.StartButtonWidth, y+config.StartButtonHeight), "Start Game", face)

	log.Debug().Int64("seed", rng.Seed()).Msg("Range created")

	return &RangeState{
		sm:         sm,
		settings:   settings,
		sound:      sound,
		fontFace:   face,
		scheduler:  scheduler,
		dispatcher: dispatcher,
		game:       app.NewGame(settings, scheduler, rng, dispatcher, dialog),
		renderer:   render.NewFieldRenderer(face),
		scoreboard: scoreboard,
		dialog:     dialog,
		start:      start,
	}
}

func (r *RangeState) Enter() {}

func (r *RangeState) Update(deltaTime float64) {
	// Пока открыт диалог, часы стоят: сессия уже закончена.
	if r.dialog.Visible() {
		r.dialog.Update()
		return
	}

	mx, my := ebiten.CursorPosition()
	r.game.MovePointer(float64(mx), float64(my-config.HUDHeight))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		r.game.SetScope(true)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		r.game.SetScope(false)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case r.start.Clicked(mx, my):
			r.game.Start()
		case my >= config.HUDHeight:
			r.game.Shoot(float64(mx), float64(my-config.HUDHeight))
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !r.game.Running() {
		r.sm.Switch(NewMenuState(r.sm, r.settings, r.sound, r.fontFace))
		return
	}

	r.scheduler.Advance(time.Duration(deltaTime * float64(time.Second)))
	r.start.Enabled = r.game.StartEnabled()
}

func (r *RangeState) Draw(screen *ebiten.Image) {
	r.renderer.Draw(screen, render.Frame{
		Targets: r.game.Targets,
		Hits:    r.game.Hits,
		Misses:  r.game.Misses,
		Pointer: r.game.Pointer,
		Now:     r.game.Now(),
	}, config.HUDHeight)
	r.scoreboard.Draw(screen)
	r.start.Draw(screen)
	r.dialog.Draw(screen)
}

// Exit ничего не делает: выход в меню возможен только вне сессии,
// поэтому таймеров уже нет.
func (r *RangeState) Exit() {}
