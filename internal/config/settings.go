package config

import (
	"os"
	"strconv"
	"strings"
)

// Settings — параметры, которые можно переопределить через окружение (.env)
type Settings struct {
	SessionSeconds int
	MaxMisses      int
	MinTargets     int
	Seed           int64
	AudioEnabled   bool
	LogLevel       string
	PprofAddr      string
}

func Load() Settings {
	return Settings{
		SessionSeconds: getEnvInt("SESSION_SECONDS", 30),
		MaxMisses:      getEnvInt("MAX_MISSES", 3),
		MinTargets:     getEnvInt("MIN_TARGETS", 5),
		Seed:           int64(getEnvInt("SEED", 0)),
		AudioEnabled:   getEnvBool("AUDIO", true),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		PprofAddr:      os.Getenv("PPROF_ADDR"),
	}
}

// Defaults возвращает значения без учёта окружения (для тестов и wasm).
func Defaults() Settings {
	return Settings{
		SessionSeconds: 30,
		MaxMisses:      3,
		MinTargets:     5,
		AudioEnabled:   true,
		LogLevel:       "info",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return fallback
}
