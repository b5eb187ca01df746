package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"SESSION_SECONDS", "MAX_MISSES", "MIN_TARGETS", "SEED", "AUDIO", "LOG_LEVEL", "PPROF_ADDR"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg != Defaults() {
		t.Errorf("Load() = %+v, want %+v", cfg, Defaults())
	}
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("SESSION_SECONDS", "45")
	t.Setenv("MAX_MISSES", "5")
	t.Setenv("MIN_TARGETS", "8")
	t.Setenv("SEED", "42")
	t.Setenv("AUDIO", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PPROF_ADDR", "localhost:6060")

	cfg := Load()

	if cfg.SessionSeconds != 45 {
		t.Errorf("SessionSeconds = %d, want %d", cfg.SessionSeconds, 45)
	}
	if cfg.MaxMisses != 5 {
		t.Errorf("MaxMisses = %d, want %d", cfg.MaxMisses, 5)
	}
	if cfg.MinTargets != 8 {
		t.Errorf("MinTargets = %d, want %d", cfg.MinTargets, 8)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want %d", cfg.Seed, 42)
	}
	if cfg.AudioEnabled {
		t.Error("AudioEnabled = true, want false")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.PprofAddr != "localhost:6060" {
		t.Errorf("PprofAddr = %q, want %q", cfg.PprofAddr, "localhost:6060")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("SESSION_SECONDS", "abc")
	t.Setenv("MAX_MISSES", "-2")
	t.Setenv("AUDIO", "maybe")

	cfg := Load()

	if cfg.SessionSeconds != 30 {
		t.Errorf("SessionSeconds = %d, want %d (fallback)", cfg.SessionSeconds, 30)
	}
	if cfg.MaxMisses != 3 {
		t.Errorf("MaxMisses = %d, want %d (fallback)", cfg.MaxMisses, 3)
	}
	if !cfg.AudioEnabled {
		t.Error("AudioEnabled = false, want true (fallback)")
	}
}
