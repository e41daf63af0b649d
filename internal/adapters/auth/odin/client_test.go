package odin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newOdinServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != verifyPath || r.Header.Get("X-Api-Key") != "secret" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		var req verifyRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Token != "good-token" {
			http.Error(w, "nope", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(verifyResponse{UserID: " user-1 ", Email: "a@b.c"})
	}))
}

func TestVerifier_Verify_OK(t *testing.T) {
	ts := newOdinServer(t)
	defer ts.Close()

	c, err := NewClient(Config{BaseURL: ts.URL, APIKey: "secret"})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	claims, err := NewVerifier(c).Verify(context.Background(), "good-token")
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "a@b.c" {
		t.Fatalf("unexpected claims: %#v", claims)
	}
}

func TestVerifier_Verify_Unauthorized(t *testing.T) {
	ts := newOdinServer(t)
	defer ts.Close()

	c, _ := NewClient(Config{BaseURL: ts.URL, APIKey: "secret"})

	_, err := NewVerifier(c).Verify(context.Background(), "bad-token")
	if !errors.Is(err, ErrOdinUnauthorized) {
		t.Fatalf("expected ErrOdinUnauthorized, got %v", err)
	}
}

func TestClient_NotConfigured(t *testing.T) {
	c, err := NewClient(Config{})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	if c.IsConfigured() {
		t.Fatalf("expected not configured without base url / api key")
	}
	if _, err := c.VerifyToken(context.Background(), "x"); !errors.Is(err, ErrOdinNotConfigured) {
		t.Fatalf("expected ErrOdinNotConfigured, got %v", err)
	}
}
