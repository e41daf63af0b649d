package needs

import (
	"encoding/json"
	"math"
	"testing"
	"time"
)

func assertValid(t *testing.T, p Pet) {
	t.Helper()

	for _, need := range All() {
		v := p.Needs().Get(need)
		if v < MinNeed || v > MaxNeed {
			t.Fatalf("%s out of range: %d", need, v)
		}
	}
	if p.Spirit != p.Needs().Spirit() {
		t.Fatalf("spirit %d not derived from needs (%d)", p.Spirit, p.Needs().Spirit())
	}
	if p.LastNeedsUpdateTime <= 0 {
		t.Fatalf("expected positive lastNeedsUpdateTime, got %d", p.LastNeedsUpdateTime)
	}
	if p.AffectionGainedToday < 0 {
		t.Fatalf("expected non-negative affectionGainedToday, got %d", p.AffectionGainedToday)
	}
	if p.LastAffectionGainDate == "" {
		t.Fatalf("expected lastAffectionGainDate set")
	}
}

func TestValidate_NilAndEmpty_ReturnDefaults(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

	for name, in := range map[string]any{
		"nil":        nil,
		"empty map":  map[string]any{},
		"nil map":    map[string]any(nil),
		"not a map":  []int{1, 2, 3},
		"plain text": "corrupted",
	} {
		p := Validate(in, now)
		assertValid(t, p)

		if p.Hunger != DefaultNeed || p.Happiness != DefaultNeed || p.Cleanliness != DefaultNeed || p.Affection != DefaultNeed {
			t.Fatalf("%s: expected default needs, got %#v", name, p.Needs())
		}
		if p.LastNeedsUpdateTime != now.UnixMilli() {
			t.Fatalf("%s: expected timestamp = now", name)
		}
		if p.AffectionGainedToday != 0 {
			t.Fatalf("%s: expected affectionGainedToday 0", name)
		}
		if p.LastAffectionGainDate != "2026-10-14" {
			t.Fatalf("%s: expected today's date key, got %q", name, p.LastAffectionGainDate)
		}
	}
}

func TestValidate_IgnoresStoredSpirit(t *testing.T) {
	now := time.Now()
	p := Validate(map[string]any{
		"hunger":      80,
		"happiness":   80,
		"cleanliness": 80,
		"affection":   80,
		"spirit":      999,
	}, now)

	if p.Spirit != 80 {
		t.Fatalf("expected spirit 80, got %d", p.Spirit)
	}
}

func TestRepair_StaleOrMissingSpirit_NotReported(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	base := NewDefaultPet("pet-1", now).Record()

	for _, spirit := range []any{999, "happy", nil} {
		in := map[string]any{}
		for k, v := range base {
			in[k] = v
		}
		if spirit == nil {
			delete(in, "spirit")
		} else {
			in["spirit"] = spirit
		}

		p, repaired := Repair(in, now)
		if len(repaired) != 0 {
			t.Fatalf("spirit=%v: expected nothing repaired, got %v", spirit, repaired)
		}
		if p.Spirit != 100 {
			t.Fatalf("spirit=%v: expected recomputed 100, got %d", spirit, p.Spirit)
		}
	}
}

func TestRepair_WrongTypes_FallBackToDefaults(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	p, repaired := Repair(map[string]any{
		"id":                    "pet-9",
		"name":                  42,
		"hunger":                "80",
		"happiness":             math.NaN(),
		"cleanliness":           math.Inf(1),
		"affection":             true,
		"lastNeedsUpdateTime":   -5,
		"affectionGainedToday":  "lots",
		"lastAffectionGainDate": 20261014,
	}, now)

	assertValid(t, p)
	if p.ID != "pet-9" {
		t.Fatalf("expected id pass-through, got %q", p.ID)
	}
	if p.Name != DefaultName {
		t.Fatalf("expected default name for non-string, got %q", p.Name)
	}
	if p.Needs() != (Needs{DefaultNeed, DefaultNeed, DefaultNeed, DefaultNeed}) {
		t.Fatalf("expected default needs, got %#v", p.Needs())
	}
	if p.LastNeedsUpdateTime != now.UnixMilli() {
		t.Fatalf("expected non-positive timestamp normalized to now")
	}

	want := []string{
		FieldHunger, FieldHappiness, FieldCleanliness, FieldAffection,
		FieldLastNeedsUpdateTime, FieldAffectionGainedToday, FieldLastAffectionGainDate,
	}
	if len(repaired) != len(want) {
		t.Fatalf("expected repaired %v, got %v", want, repaired)
	}
	for i := range want {
		if repaired[i] != want[i] {
			t.Fatalf("expected repaired %v, got %v", want, repaired)
		}
	}
}

func TestRepair_OutOfRange_IsClamped(t *testing.T) {
	now := time.Now()
	p, repaired := Repair(map[string]any{
		"hunger":      500.0,
		"happiness":   -20,
		"cleanliness": 64.5,
		"affection":   int64(33),
	}, now)

	if p.Hunger != 120 || p.Happiness != 0 || p.Cleanliness != 65 || p.Affection != 33 {
		t.Fatalf("unexpected needs: %#v", p.Needs())
	}
	for _, f := range repaired {
		if f == FieldAffection {
			t.Fatalf("in-range affection should not be reported as repaired")
		}
	}
}

func TestRepair_CleanRecord_NothingRepaired(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	in := NewDefaultPet("pet-1", now.Add(-time.Hour)).Record()

	p, repaired := Repair(in, now)
	if len(repaired) != 0 {
		t.Fatalf("expected nothing repaired, got %v", repaired)
	}
	if p.LastNeedsUpdateTime != now.Add(-time.Hour).UnixMilli() {
		t.Fatalf("expected stored timestamp kept")
	}
}

func TestValidate_JSONDecodedRecord(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	blob := []byte(`{"id":"p1","name":"Mochi","type":"dog","image":"/img/dog.png",
		"hunger":70,"happiness":"x","cleanliness":30,"affection":90,"spirit":1,
		"lastNeedsUpdateTime":1760000000000,"affectionGainedToday":12,"lastAffectionGainDate":"2026-10-13"}`)

	var raw map[string]any
	if err := json.Unmarshal(blob, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	p := Validate(raw, now)
	assertValid(t, p)

	if p.Name != "Mochi" || p.Type != "dog" || p.Image != "/img/dog.png" {
		t.Fatalf("identity fields must pass through: %#v", p)
	}
	if p.Happiness != DefaultNeed {
		t.Fatalf("expected default happiness, got %d", p.Happiness)
	}
	if p.Spirit != ComputeSpirit(70, DefaultNeed, 30, 90) {
		t.Fatalf("unexpected spirit %d", p.Spirit)
	}
	if p.LastNeedsUpdateTime != 1760000000000 {
		t.Fatalf("expected stored timestamp, got %d", p.LastNeedsUpdateTime)
	}
	if p.AffectionGainedToday != 12 || p.LastAffectionGainDate != "2026-10-13" {
		t.Fatalf("expected affection counters kept, got %d %q", p.AffectionGainedToday, p.LastAffectionGainDate)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	now := time.Now()
	first := Validate(map[string]any{"hunger": 300, "spirit": 7}, now)
	second := Validate(first.Record(), now)
	if first != second {
		t.Fatalf("expected Validate(Validate(x)) == Validate(x)\nfirst=%#v\nsecond=%#v", first, second)
	}
}
