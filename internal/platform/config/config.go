package config

import (
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"virtual-pet/internal/domain/needs"
	"virtual-pet/internal/domain/pets"
)

// Config se arma desde env. Valores vacíos o inválidos caen al default.
//   - PORT (8080), DB_DSN (vacío = in-memory)
//   - DECAY_{HUNGER,HAPPINESS,CLEANLINESS,AFFECTION}_PER_DAY
//   - AFFECTION_DAILY_CAP (50)
//   - ODIN_BASE_URL, ODIN_API_KEY, ODIN_TIMEOUT (5s)
type Config struct {
	Port  string
	DBDSN string

	Pets pets.Config

	OdinBaseURL string
	OdinAPIKey  string
	OdinTimeout time.Duration
}

func FromEnv() Config {
	return fromLookup(os.Getenv)
}

func fromLookup(get func(string) string) Config {
	def := pets.DefaultConfig()

	return Config{
		Port:  str(get("PORT"), "8080"),
		DBDSN: strings.TrimSpace(get("DB_DSN")),
		Pets: pets.Config{
			Rates: needs.DecayRates{
				Hunger:      rate(get("DECAY_HUNGER_PER_DAY"), def.Rates.Hunger),
				Happiness:   rate(get("DECAY_HAPPINESS_PER_DAY"), def.Rates.Happiness),
				Cleanliness: rate(get("DECAY_CLEANLINESS_PER_DAY"), def.Rates.Cleanliness),
				Affection:   rate(get("DECAY_AFFECTION_PER_DAY"), def.Rates.Affection),
			},
			AffectionDailyCap: count(get("AFFECTION_DAILY_CAP"), def.AffectionDailyCap),
		},
		OdinBaseURL: strings.TrimSpace(get("ODIN_BASE_URL")),
		OdinAPIKey:  strings.TrimSpace(get("ODIN_API_KEY")),
		OdinTimeout: duration(get("ODIN_TIMEOUT"), 5*time.Second),
	}
}

// Addr es la dirección de escucha del server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func (c Config) OdinEnabled() bool {
	return c.OdinBaseURL != "" && c.OdinAPIKey != ""
}

func str(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}

func rate(v string, fallback float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	return f
}

func count(v string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func duration(v string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
