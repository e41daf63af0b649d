package events

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, e CareEvent) error
	ListByPet(ctx context.Context, petID string, filter ListFilter) ([]CareEvent, error)
}

type ListFilter struct {
	Types []EventType
	From  *time.Time
	To    *time.Time
	Limit int
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)
