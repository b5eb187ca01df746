package system

import (
	"testing"
	"time"

	"go-scope-range/internal/component"
)

func TestPruneHits(t *testing.T) {
	var hits []component.HitEffect
	hits = AddHit(hits, 10, 10, 5, 0)
	hits = AddHit(hits, 20, 20, 3, 600*time.Millisecond)

	got := PruneHits(hits, time.Second)
	if len(got) != 1 || got[0].Points != 3 {
		t.Errorf("PruneHits() = %+v, want only the newer effect", got)
	}
}

func TestPruneMisses(t *testing.T) {
	var misses []component.MissEffect
	misses = AddMiss(misses, 10, 10, 0)
	misses = AddMiss(misses, 20, 20, 100*time.Millisecond)

	if got := PruneMisses(misses, 499*time.Millisecond); len(got) != 2 {
		t.Errorf("at 499ms len = %d, want 2", len(got))
	}
	if got := PruneMisses(misses, 500*time.Millisecond); len(got) != 1 {
		t.Errorf("at 500ms len = %d, want 1", len(got))
	}
}

func TestFloatHits(t *testing.T) {
	hits := AddHit(nil, 10, 100, 5, 0)

	if got := FloatHits(hits, 1); got[0].Y != 99 {
		t.Errorf("Y = %v, want 99", got[0].Y)
	}
	if got := FloatHits(hits, 0.25); got[0].Y != 99.75 {
		t.Errorf("scoped Y = %v, want 99.75", got[0].Y)
	}
}

func TestEffectOpacity(t *testing.T) {
	tests := []struct {
		age, life time.Duration
		want      float64
	}{
		{0, time.Second, 1},
		{250 * time.Millisecond, 500 * time.Millisecond, 0.5},
		{time.Second, time.Second, 0},
		{2 * time.Second, time.Second, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := EffectOpacity(tt.age, tt.life); got != tt.want {
			t.Errorf("EffectOpacity(%v, %v) = %v, want %v", tt.age, tt.life, got, tt.want)
		}
	}
}

func TestMissMarkSize(t *testing.T) {
	tests := []struct {
		age  time.Duration
		want float64
	}{
		{0, 5},
		{250 * time.Millisecond, 12.5},
		{500 * time.Millisecond, 20},
		{time.Second, 20},
	}
	for _, tt := range tests {
		if got := MissMarkSize(tt.age); got != tt.want {
			t.Errorf("MissMarkSize(%v) = %v, want %v", tt.age, got, tt.want)
		}
	}
}
