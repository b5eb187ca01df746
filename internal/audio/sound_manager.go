// Package audio plays synthesized feedback sounds for hits, misses and the
// end of a session.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"

	"go-scope-range/internal/component"
	"go-scope-range/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager слушает игровые события и проигрывает звуки.
// Без инициализации (или при ошибке устройства) молчит.
type SoundManager struct {
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize открывает аудиоустройство.
func (sm *SoundManager) Initialize() error {
	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled сообщает, открыто ли устройство.
func (sm *SoundManager) Enabled() bool {
	return sm.initialized
}

// Close останавливает все звуки.
func (sm *SoundManager) Close() {
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

func (sm *SoundManager) play(s beep.Streamer) {
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// OnEvent реализует event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.TargetHit:
		if hit, ok := e.Data.(event.Hit); ok {
			sm.play(HitSound(hit.Points, sampleRate))
		}
	case event.TargetMissed:
		sm.play(MissSound(sampleRate))
	case event.SessionEnded:
		if r, ok := e.Data.(component.Report); ok {
			log.Debug().Int("score", r.Score).Msg("end of session sound")
		}
		sm.play(EndSound(sampleRate))
	}
}
