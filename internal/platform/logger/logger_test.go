package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogger_TextFormat_SortedKeysAndLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatText, App: "virtual-pet", Output: &buf})

	l.Debug("hidden", nil)
	l.With(map[string]any{"pet_id": "p1"}).Warn("pet record repaired", map[string]any{"fields": 2})

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry should be filtered at info level: %q", out)
	}
	if strings.Count(out, "\n") != 0 {
		t.Fatalf("expected a single line, got %q", out)
	}
	for _, want := range []string{"app=virtual-pet", "fields=2", "level=warn", "msg=pet record repaired", "pet_id=p1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
	if strings.Index(out, "app=") > strings.Index(out, "pet_id=") {
		t.Fatalf("expected keys sorted: %q", out)
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, Output: &buf})

	l.Debug("catch-up", map[string]any{"hours": 1.5})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "catch-up" || entry["level"] != "debug" || entry["hours"] != 1.5 {
		t.Fatalf("unexpected entry: %#v", entry)
	}
}

func TestParseLevel_Defaults(t *testing.T) {
	if ParseLevel("WARNING") != Warn || ParseLevel("") != Info || ParseLevel("nope") != Info {
		t.Fatalf("unexpected ParseLevel results")
	}
}

func TestDiscard_WithReturnsUsableLogger(t *testing.T) {
	l := Discard().With(map[string]any{"pet_id": "p1"})
	l.Error("ignored", nil)
	if _, ok := l.(*StdLogger); ok {
		t.Fatalf("discard logger should not be a StdLogger")
	}
}
