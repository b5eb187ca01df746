// cmd/game/main.go
package main

import (
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/basicfont"

	"go-scope-range/internal/audio"
	"go-scope-range/internal/config"
	"go-scope-range/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment")
	}
	settings := config.Load()

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if settings.PprofAddr != "" {
		go func() {
			log.Info().Str("addr", settings.PprofAddr).Msg("pprof listening")
			if err := http.ListenAndServe(settings.PprofAddr, nil); err != nil {
				log.Error().Err(err).Msg("pprof server stopped")
			}
		}()
	}

	var sound *audio.SoundManager
	if settings.AudioEnabled {
		sound = audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Warn().Err(err).Msg("Audio disabled")
			sound = nil
		} else {
			defer sound.Close()
		}
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, settings, sound, basicfont.Face7x13))
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	log.Info().
		Int("session_seconds", settings.SessionSeconds).
		Int("max_misses", settings.MaxMisses).
		Msg("Starting scope range")

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Scope Range")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal().Err(err).Msg("Game loop failed")
	}
}
