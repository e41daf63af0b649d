package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables para MVP (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS pet_records (
	id            TEXT PRIMARY KEY,
	owner_user_id TEXT NOT NULL,
	data          JSONB NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS pet_records_owner_idx ON pet_records (owner_user_id);

CREATE TABLE IF NOT EXISTS pet_events (
	id            TEXT PRIMARY KEY,
	pet_id        TEXT NOT NULL,
	type          TEXT NOT NULL,
	occurred_at   TIMESTAMPTZ NOT NULL,
	actor_id      TEXT NOT NULL,
	notes         TEXT NOT NULL DEFAULT '',
	spirit_before INTEGER NOT NULL,
	spirit_after  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS pet_events_pet_idx ON pet_events (pet_id, occurred_at DESC);
`

// Migrate crea las tablas si no existen.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
