package needs

import (
	"math"
	"testing"
)

func TestClamp_RangeAndIdempotent(t *testing.T) {
	inputs := []float64{
		-1e18, -500, -0.6, -0.5, -0.4, 0, 0.49, 0.5, 1.5, 59.5, 100,
		119.4, 119.5, 120, 120.4, 121, 1e18,
		math.Inf(1), math.Inf(-1), math.NaN(),
	}
	for _, v := range inputs {
		got := Clamp(v)
		if got < MinNeed || got > MaxNeed {
			t.Fatalf("Clamp(%v)=%d out of range", v, got)
		}
		if again := Clamp(float64(got)); again != got {
			t.Fatalf("Clamp not idempotent for %v: %d then %d", v, got, again)
		}
	}
}

func TestClamp_RoundsHalfUp(t *testing.T) {
	cases := map[float64]int{
		0.5:   1,
		1.49:  1,
		1.5:   2,
		59.5:  60,
		-0.4:  0,
		119.5: 120,
		120.6: 120,
		-3:    0,
	}
	for in, want := range cases {
		if got := Clamp(in); got != want {
			t.Fatalf("Clamp(%v): expected %d, got %d", in, want, got)
		}
	}
}

func TestClamp_NonFinite(t *testing.T) {
	if got := Clamp(math.NaN()); got != MinNeed {
		t.Fatalf("expected NaN => %d, got %d", MinNeed, got)
	}
	if got := Clamp(math.Inf(1)); got != MaxNeed {
		t.Fatalf("expected +Inf => %d, got %d", MaxNeed, got)
	}
	if got := Clamp(math.Inf(-1)); got != MinNeed {
		t.Fatalf("expected -Inf => %d, got %d", MinNeed, got)
	}
}
