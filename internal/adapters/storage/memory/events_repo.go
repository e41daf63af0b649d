package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"virtual-pet/internal/domain/events"
)

type eventRepo struct {
	mu   sync.RWMutex
	byID map[string]events.CareEvent
}

func NewEventRepo() events.Repository {
	return &eventRepo{
		byID: make(map[string]events.CareEvent),
	}
}

func (r *eventRepo) Create(ctx context.Context, e events.CareEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("event id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("event already exists")
	}

	r.byID[e.ID] = e
	return nil
}

func (r *eventRepo) ListByPet(ctx context.Context, petID string, filter events.ListFilter) ([]events.CareEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = events.DefaultListLimit
	}

	out := make([]events.CareEvent, 0)

	for _, e := range r.byID {
		if e.PetID != petID {
			continue
		}

		if len(filter.Types) > 0 {
			ok := false
			for _, t := range filter.Types {
				if e.Type == t {
					ok = true
					break
				}
			}
			if !ok {
				continue
			}
		}

		if filter.From != nil {
			if e.OccurredAt.Before((*filter.From).Add(-1 * time.Nanosecond)) {
				continue
			}
		}
		if filter.To != nil {
			if e.OccurredAt.After(*filter.To) {
				continue
			}
		}

		out = append(out, e)
	}

	// Más reciente primero; a igual occurred_at, por id para que sea estable
	sort.Slice(out, func(i, j int) bool {
		if out[i].OccurredAt.Equal(out[j].OccurredAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}
