package events

import (
	"net/http/httptest"
	"testing"
)

func TestParseListFilter(t *testing.T) {
	r := httptest.NewRequest("GET", "/pets/p1/events?types=feed,%20PET,&limit=10&from=2026-10-01T00:00:00Z", nil)
	f, err := parseListFilter(r)
	if err != nil {
		t.Fatalf("parseListFilter error: %v", err)
	}
	if f.Limit != 10 || len(f.Types) != 2 || f.Types[0] != EventTypeFeed || f.Types[1] != EventTypePet {
		t.Fatalf("unexpected filter: %+v", f)
	}
	if f.From == nil || f.To != nil {
		t.Fatalf("expected only from set, got from=%v to=%v", f.From, f.To)
	}
}

func TestParseListFilter_LimitFallsBackToDefault(t *testing.T) {
	for _, q := range []string{"", "?limit=0", "?limit=9999", "?limit=abc"} {
		f, err := parseListFilter(httptest.NewRequest("GET", "/pets/p1/events"+q, nil))
		if err != nil {
			t.Fatalf("%q: unexpected error %v", q, err)
		}
		if f.Limit != DefaultListLimit {
			t.Fatalf("%q: expected default limit, got %d", q, f.Limit)
		}
	}
}

func TestParseListFilter_Rejects(t *testing.T) {
	cases := []string{
		"?types=NOPE",
		"?from=yesterday",
		"?to=2026-13-01",
		"?from=2026-10-02T00:00:00Z&to=2026-10-01T00:00:00Z",
	}
	for _, q := range cases {
		if _, err := parseListFilter(httptest.NewRequest("GET", "/pets/p1/events"+q, nil)); err == nil {
			t.Fatalf("%q: expected error", q)
		}
	}
}
