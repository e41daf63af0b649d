package config

import (
	"testing"
	"time"
)

func lookup(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg := fromLookup(lookup(nil))

	if cfg.Addr() != ":8080" || cfg.DBDSN != "" {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
	if cfg.Pets.Rates.Hunger != 48 || cfg.Pets.Rates.Affection != 24 {
		t.Fatalf("unexpected default rates: %#v", cfg.Pets.Rates)
	}
	if cfg.Pets.AffectionDailyCap != 50 {
		t.Fatalf("expected default cap 50, got %d", cfg.Pets.AffectionDailyCap)
	}
	if cfg.OdinEnabled() || cfg.OdinTimeout != 5*time.Second {
		t.Fatalf("odin should be off by default")
	}
}

func TestFromEnv_OverridesAndInvalidValues(t *testing.T) {
	cfg := fromLookup(lookup(map[string]string{
		"PORT":                      "9090",
		"DECAY_HUNGER_PER_DAY":      "12.5",
		"DECAY_HAPPINESS_PER_DAY":   "-3",
		"DECAY_CLEANLINESS_PER_DAY": "NaN",
		"DECAY_AFFECTION_PER_DAY":   "abc",
		"AFFECTION_DAILY_CAP":       "20",
		"ODIN_BASE_URL":             "https://odin.local",
		"ODIN_API_KEY":              "k",
		"ODIN_TIMEOUT":              "2s",
	}))

	if cfg.Addr() != ":9090" {
		t.Fatalf("expected :9090, got %s", cfg.Addr())
	}
	if cfg.Pets.Rates.Hunger != 12.5 {
		t.Fatalf("expected hunger rate 12.5, got %v", cfg.Pets.Rates.Hunger)
	}
	if cfg.Pets.Rates.Happiness != 36 || cfg.Pets.Rates.Cleanliness != 30 || cfg.Pets.Rates.Affection != 24 {
		t.Fatalf("invalid rates must fall back to defaults: %#v", cfg.Pets.Rates)
	}
	if cfg.Pets.AffectionDailyCap != 20 {
		t.Fatalf("expected cap 20, got %d", cfg.Pets.AffectionDailyCap)
	}
	if !cfg.OdinEnabled() || cfg.OdinTimeout != 2*time.Second {
		t.Fatalf("expected odin enabled with 2s timeout")
	}
}
