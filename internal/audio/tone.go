package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave: форма волны осциллятора
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// tone: осциллятор с линейным затуханием до нуля к концу длительности
type tone struct {
	freq     float64
	phase    float64
	position int
	total    int
	wave     Wave
	rate     beep.SampleRate
}

// NewTone возвращает затухающий тон заданной частоты и длительности.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, total: rate.N(d), wave: wave, rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}
		var v float64
		switch t.wave {
		case WaveSquare:
			if t.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case WaveSaw:
			v = 2 * (t.phase - 0.5)
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}
		v *= 1 - float64(t.position)/float64(t.total)

		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// withVolume масштабирует громкость; vol <= 0: тишина.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// HitFrequency повышает тон вместе с ценой мишени.
func HitFrequency(points int) float64 {
	if points < 1 {
		points = 1
	}
	return 440 * math.Pow(2, float64(points-2)/12)
}

// HitSound: короткий звонкий сигнал попадания.
func HitSound(points int, rate beep.SampleRate) beep.Streamer {
	return withVolume(NewTone(HitFrequency(points), 120*time.Millisecond, WaveSine, rate), 0.5)
}

// MissSound: глухое жужжание промаха.
func MissSound(rate beep.SampleRate) beep.Streamer {
	return withVolume(NewTone(110, 150*time.Millisecond, WaveSaw, rate), 0.35)
}

// EndSound: два нисходящих тона в конце сессии.
func EndSound(rate beep.SampleRate) beep.Streamer {
	return withVolume(beep.Seq(
		NewTone(660, 180*time.Millisecond, WaveSquare, rate),
		NewTone(440, 260*time.Millisecond, WaveSquare, rate),
	), 0.25)
}
