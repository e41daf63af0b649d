package pets

import "context"

// Repository es el store key-value del registro compartido.
// Put es un upsert: el último que escribe gana.
// Get devuelve ErrNotFound (envuelto o no) si la key no existe.
type Repository interface {
	Get(ctx context.Context, petID string) (StoredRecord, error)
	Put(ctx context.Context, rec StoredRecord) error
	ListByOwner(ctx context.Context, ownerUserID string) ([]StoredRecord, error)
}

// CareRecorder registra lo que le pasa a la mascota (lo implementa events.Service).
type CareRecorder interface {
	RecordCare(ctx context.Context, c Care) error
}

// Care describe una entrada del historial de cuidados.
type Care struct {
	PetID        string
	ActorID      string
	Kind         string
	Notes        string
	SpiritBefore int
	SpiritAfter  int
}
