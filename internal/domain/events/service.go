package events

import (
	"context"
	"errors"
	"strings"
	"time"

	"virtual-pet/internal/domain/pets"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Type         EventType
	ActorID      string
	Notes        string
	SpiritBefore int
	SpiritAfter  int
}

func (s *Service) Create(ctx context.Context, petID string, in CreateInput) (CareEvent, error) {
	if strings.TrimSpace(petID) == "" {
		return CareEvent{}, ErrInvalidInput
	}
	if _, ok := knownTypes[in.Type]; !ok {
		return CareEvent{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.ActorID) == "" {
		return CareEvent{}, ErrInvalidInput
	}

	e := CareEvent{
		ID:           uuid.NewString(),
		PetID:        petID,
		Type:         in.Type,
		OccurredAt:   s.now(),
		ActorID:      strings.TrimSpace(in.ActorID),
		Notes:        strings.TrimSpace(in.Notes),
		SpiritBefore: in.SpiritBefore,
		SpiritAfter:  in.SpiritAfter,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return CareEvent{}, err
	}
	return e, nil
}

// RecordCare implementa pets.CareRecorder.
func (s *Service) RecordCare(ctx context.Context, c pets.Care) error {
	_, err := s.Create(ctx, c.PetID, CreateInput{
		Type:         EventType(c.Kind),
		ActorID:      c.ActorID,
		Notes:        c.Notes,
		SpiritBefore: c.SpiritBefore,
		SpiritAfter:  c.SpiritAfter,
	})
	return err
}

func (s *Service) ListByPet(ctx context.Context, petID string, filter ListFilter) ([]CareEvent, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}
	return s.repo.ListByPet(ctx, petID, filter)
}
