// internal/system/visual_effect.go
package system

import (
	"time"

	"go-scope-range/internal/component"
	"go-scope-range/internal/config"
	"go-scope-range/internal/utils"
)

// AddHit добавляет эффект попадания.
func AddHit(hits []component.HitEffect, x, y float64, points int, now time.Duration) []component.HitEffect {
	return append(hits, component.HitEffect{
		Position:  component.Position{X: x, Y: y},
		Points:    points,
		CreatedAt: now,
	})
}

// AddMiss добавляет эффект промаха.
func AddMiss(misses []component.MissEffect, x, y float64, now time.Duration) []component.MissEffect {
	return append(misses, component.MissEffect{
		Position:  component.Position{X: x, Y: y},
		CreatedAt: now,
	})
}

// PruneHits убирает эффекты попаданий старше HitEffectLifetime.
func PruneHits(hits []component.HitEffect, now time.Duration) []component.HitEffect {
	out := make([]component.HitEffect, 0, len(hits))
	for _, h := range hits {
		if now-h.CreatedAt < config.HitEffectLifetime {
			out = append(out, h)
		}
	}
	return out
}

// PruneMisses убирает эффекты промахов старше MissEffectLifetime.
func PruneMisses(misses []component.MissEffect, now time.Duration) []component.MissEffect {
	out := make([]component.MissEffect, 0, len(misses))
	for _, m := range misses {
		if now-m.CreatedAt < config.MissEffectLifetime {
			out = append(out, m)
		}
	}
	return out
}

// FloatHits поднимает очки вверх на HitFloatSpeed*factor.
func FloatHits(hits []component.HitEffect, factor float64) []component.HitEffect {
	out := make([]component.HitEffect, len(hits))
	for i, h := range hits {
		h.Y -= config.HitFloatSpeed * factor
		out[i] = h
	}
	return out
}

// EffectOpacity: линейное затухание от 1 до 0 за lifetime.
func EffectOpacity(age, lifetime time.Duration) float64 {
	if lifetime <= 0 {
		return 0
	}
	return utils.Clamp01(1 - float64(age)/float64(lifetime))
}

// MissMarkSize растит крестик промаха от минимального до максимального
// размера за время жизни эффекта.
func MissMarkSize(age time.Duration) float64 {
	progress := 1 - EffectOpacity(age, config.MissEffectLifetime)
	return utils.Lerp(config.MissMarkMinSize, config.MissMarkMaxSize, progress)
}
