package events

import "time"

type EventType string

const (
	EventTypeCreated  EventType = "CREATED"
	EventTypeFeed     EventType = "FEED"
	EventTypeGroom    EventType = "GROOM"
	EventTypePlay     EventType = "PLAY"
	EventTypePet      EventType = "PET"
	EventTypeReset    EventType = "RESET"
	EventTypeRepaired EventType = "REPAIRED"
)

var knownTypes = map[EventType]struct{}{
	EventTypeCreated:  {},
	EventTypeFeed:     {},
	EventTypeGroom:    {},
	EventTypePlay:     {},
	EventTypePet:      {},
	EventTypeReset:    {},
	EventTypeRepaired: {},
}

// CareEvent es una entrada del historial de cuidados de la mascota.
// Es solo una bitácora: el estado vive en el registro de la mascota.
type CareEvent struct {
	ID    string
	PetID string

	Type       EventType
	OccurredAt time.Time

	ActorID string
	Notes   string

	SpiritBefore int
	SpiritAfter  int
}
