package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"virtual-pet/internal/domain/pets"
)

// petEntry guarda el registro como JSON, igual que un store key-value real:
// lo que sale de Get es un mapa sin tipar recién decodificado.
type petEntry struct {
	ownerUserID string
	data        []byte
	updatedAt   time.Time
}

type petRepo struct {
	mu   sync.RWMutex
	byID map[string]petEntry
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[string]petEntry),
	}
}

func (r *petRepo) Get(ctx context.Context, petID string) (pets.StoredRecord, error) {
	r.mu.RLock()
	e, ok := r.byID[petID]
	r.mu.RUnlock()

	if !ok {
		return pets.StoredRecord{}, pets.ErrNotFound
	}
	return decodeEntry(petID, e), nil
}

// Put es last-write-wins.
func (r *petRepo) Put(ctx context.Context, rec pets.StoredRecord) error {
	if strings.TrimSpace(rec.PetID) == "" {
		return errors.New("pet id required")
	}

	b, err := json.Marshal(rec.Data)
	if err != nil {
		return fmt.Errorf("marshal pet record: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[rec.PetID] = petEntry{
		ownerUserID: rec.OwnerUserID,
		data:        b,
		updatedAt:   rec.UpdatedAt,
	}
	return nil
}

func (r *petRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.StoredRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.StoredRecord, 0)
	for id, e := range r.byID {
		if e.ownerUserID == ownerUserID {
			out = append(out, decodeEntry(id, e))
		}
	}

	// Orden estable por id (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		return out[i].PetID < out[j].PetID
	})

	return out, nil
}

// decodeEntry tolera blobs corruptos: devuelve Data nil y deja que
// needs.Repair reconstruya el registro.
func decodeEntry(petID string, e petEntry) pets.StoredRecord {
	var data map[string]any
	if err := json.Unmarshal(e.data, &data); err != nil {
		data = nil
	}
	return pets.StoredRecord{
		PetID:       petID,
		OwnerUserID: e.ownerUserID,
		Data:        data,
		UpdatedAt:   e.updatedAt,
	}
}
