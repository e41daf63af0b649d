package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"virtual-pet/internal/domain/pets"
)

type testRepo struct {
	items []CareEvent
	last  ListFilter
}

func (r *testRepo) Create(ctx context.Context, e CareEvent) error {
	r.items = append(r.items, e)
	return nil
}

func (r *testRepo) ListByPet(ctx context.Context, petID string, filter ListFilter) ([]CareEvent, error) {
	r.last = filter
	out := make([]CareEvent, 0)
	for _, e := range r.items {
		if e.PetID == petID {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestService_RecordCare_CreatesEvent(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	now := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	err := svc.RecordCare(context.Background(), pets.Care{
		PetID:        "pet-1",
		ActorID:      "owner-1",
		Kind:         "FEED",
		SpiritBefore: 80,
		SpiritAfter:  88,
	})
	if err != nil {
		t.Fatalf("RecordCare error: %v", err)
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.items))
	}
	e := repo.items[0]
	if e.ID == "" || e.Type != EventTypeFeed || !e.OccurredAt.Equal(now) || e.SpiritAfter != 88 {
		t.Fatalf("unexpected event: %#v", e)
	}
}

func TestService_Create_RejectsUnknownType(t *testing.T) {
	svc := NewService(&testRepo{})

	_, err := svc.Create(context.Background(), "pet-1", CreateInput{Type: "DANCE", ActorID: "owner-1"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	_, err = svc.Create(context.Background(), "pet-1", CreateInput{Type: EventTypePet})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without actor, got %v", err)
	}
}

func TestService_ListByPet_BoundsLimit(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	_, _ = svc.ListByPet(context.Background(), "pet-1", ListFilter{})
	if repo.last.Limit != DefaultListLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultListLimit, repo.last.Limit)
	}
	_, _ = svc.ListByPet(context.Background(), "pet-1", ListFilter{Limit: 10_000})
	if repo.last.Limit != MaxListLimit {
		t.Fatalf("expected max limit %d, got %d", MaxListLimit, repo.last.Limit)
	}
}
