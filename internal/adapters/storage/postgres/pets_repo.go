package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"virtual-pet/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

// Put hace upsert: con varios clientes escribiendo, gana el último.
func (r *PetsRepo) Put(ctx context.Context, rec pets.StoredRecord) error {
	b, err := json.Marshal(rec.Data)
	if err != nil {
		return fmt.Errorf("marshal pet record: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pet_records (id, owner_user_id, data, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET
			owner_user_id = EXCLUDED.owner_user_id,
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at
	`,
		rec.PetID,
		rec.OwnerUserID,
		string(b),
		rec.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) Get(ctx context.Context, petID string) (pets.StoredRecord, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return pets.StoredRecord{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_user_id, data, updated_at
		FROM pet_records
		WHERE id = $1
	`, petID)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.StoredRecord{}, pets.ErrNotFound
		}
		return pets.StoredRecord{}, err
	}
	return rec, nil
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.StoredRecord, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_user_id, data, updated_at
		FROM pet_records
		WHERE owner_user_id = $1
		ORDER BY id ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.StoredRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

// scanRecord no falla por JSON corrupto: Data queda nil y needs.Repair
// se encarga del resto.
func scanRecord(s scanner) (pets.StoredRecord, error) {
	var rec pets.StoredRecord
	var raw []byte
	if err := s.Scan(&rec.PetID, &rec.OwnerUserID, &raw, &rec.UpdatedAt); err != nil {
		return pets.StoredRecord{}, err
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err == nil {
		rec.Data = data
	}
	return rec, nil
}
