package system

import (
	"math"
	"time"

	"go-scope-range/internal/component"
	"go-scope-range/internal/config"
	"go-scope-range/internal/utils"
)

// Bounds: размеры игрового поля
type Bounds struct {
	Width, Height float64
}

// FieldBounds: стандартное поле 800x600
var FieldBounds = Bounds{Width: config.FieldWidth, Height: config.FieldHeight}

// Spawner создаёт мишени со случайными параметрами.
type Spawner struct {
	rng    *utils.PRNGService
	bounds Bounds
	nextID uint64
}

func NewSpawner(rng *utils.PRNGService, bounds Bounds) *Spawner {
	return &Spawner{rng: rng, bounds: bounds, nextID: 1}
}

// Spawn создаёт одну мишень целиком внутри поля.
func (s *Spawner) Spawn(now time.Duration) component.Target {
	size := s.rng.Range(config.MinTargetSize, config.MaxTargetSize)
	half := size / 2
	speed := s.rng.Range(config.MinTargetSpeed, config.MaxTargetSpeed)
	angle := s.rng.Range(0, 2*math.Pi)

	shape := component.ShapeRect
	if s.rng.Chance(0.5) {
		shape = component.ShapeCircle
	}

	t := component.Target{
		ID: s.nextID,
		Position: component.Position{
			X: s.rng.Range(half, s.bounds.Width-half),
			Y: s.rng.Range(half, s.bounds.Height-half),
		},
		Velocity: component.Velocity{
			DX: math.Cos(angle) * speed,
			DY: math.Sin(angle) * speed,
		},
		Size:      size,
		Shape:     shape,
		CreatedAt: now,
		Lifetime:  s.rng.Duration(config.MinTargetLifetime, config.MaxTargetLifetime),
	}
	s.nextID++
	return t
}

// Prune возвращает мишени, которые ещё не истекли. Вход не изменяется.
func Prune(targets []component.Target, now time.Duration) []component.Target {
	out := make([]component.Target, 0, len(targets))
	for _, t := range targets {
		if !t.Expired(now) {
			out = append(out, t)
		}
	}
	return out
}

// EnsurePopulation добавляет ровно одну мишень, если их меньше min.
func EnsurePopulation(targets []component.Target, min int, s *Spawner, now time.Duration) []component.Target {
	if len(targets) >= min {
		return targets
	}
	return append(targets, s.Spawn(now))
}

// Points считает очки за мишень. Чем меньше мишень, тем она дороже.
func Points(size float64) int {
	return int(math.Round(config.PointsNumerator / size))
}

// HitTest ищет мишень под точкой, начиная с самой новой.
// Возвращает индекс в срезе.
func HitTest(targets []component.Target, x, y float64) (int, bool) {
	for i := len(targets) - 1; i >= 0; i-- {
		t := targets[i]
		if math.Hypot(x-t.X, y-t.Y) < t.Size/2 {
			return i, true
		}
	}
	return -1, false
}

// Remove возвращает новый срез без элемента i.
func Remove(targets []component.Target, i int) []component.Target {
	out := make([]component.Target, 0, len(targets))
	out = append(out, targets[:i]...)
	return append(out, targets[i+1:]...)
}

// TargetOpacity держит мишень непрозрачной первую половину жизни,
// затем линейно гасит до нуля.
func TargetOpacity(t component.Target, now time.Duration) float64 {
	if t.Lifetime <= 0 {
		return 0
	}
	progress := float64(t.Age(now)) / float64(t.Lifetime)
	if progress <= config.TargetFadeStart {
		return 1
	}
	return utils.Clamp01(1 - (progress-config.TargetFadeStart)/(1-config.TargetFadeStart))
}
