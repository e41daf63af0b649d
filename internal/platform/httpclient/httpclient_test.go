package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDoJSON_RelativePathAndErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"value":42}`))
		default:
			http.Error(w, "boom", http.StatusBadGateway)
		}
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL+"/", time.Second)
	if err != nil {
		t.Fatalf("NewWithBaseURL error: %v", err)
	}

	var out struct {
		Value int `json:"value"`
	}
	if err := c.DoJSON(context.Background(), http.MethodGet, "ok", nil, nil, &out); err != nil {
		t.Fatalf("DoJSON error: %v", err)
	}
	if out.Value != 42 {
		t.Fatalf("expected 42, got %d", out.Value)
	}

	err = c.DoJSON(context.Background(), http.MethodGet, "/fail", nil, nil, nil)
	var he *HTTPError
	if !errors.As(err, &he) || he.StatusCode != http.StatusBadGateway || he.Body != "boom" {
		t.Fatalf("expected HTTPError 502 boom, got %v", err)
	}
}

func TestDoJSON_RelativeWithoutBaseURL(t *testing.T) {
	if err := New(0).DoJSON(context.Background(), http.MethodGet, "/x", nil, nil, nil); err == nil {
		t.Fatalf("expected error for relative path without BaseURL")
	}
}

func TestStatusOf(t *testing.T) {
	wrapped := fmt.Errorf("odin: %w", &HTTPError{StatusCode: http.StatusUnauthorized})
	if got := StatusOf(wrapped); got != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", got)
	}
	if got := StatusOf(errors.New("dial tcp: refused")); got != 0 {
		t.Fatalf("expected 0 for non-http error, got %d", got)
	}
}
