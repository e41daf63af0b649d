package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"virtual-pet/internal/domain/events"
)

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

func (r *EventsRepo) Create(ctx context.Context, e events.CareEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pet_events (
			id, pet_id,
			type, occurred_at,
			actor_id, notes,
			spirit_before, spirit_after
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		e.ID,
		e.PetID,
		string(e.Type),
		e.OccurredAt,
		e.ActorID,
		e.Notes,
		e.SpiritBefore,
		e.SpiritAfter,
	)
	return err
}

func (r *EventsRepo) ListByPet(ctx context.Context, petID string, filter events.ListFilter) ([]events.CareEvent, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, nil
	}

	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id, pet_id,
			type, occurred_at,
			actor_id, notes,
			spirit_before, spirit_after
		FROM pet_events
		WHERE pet_id = $1
	`)

	args := []any{petID}
	argN := 2

	if len(filter.Types) > 0 {
		placeholders := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, string(t))
			argN++
		}
		sb.WriteString(" AND type IN (" + strings.Join(placeholders, ",") + ")")
	}

	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND occurred_at >= $%d", argN))
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND occurred_at <= $%d", argN))
		args = append(args, *filter.To)
		argN++
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = events.DefaultListLimit
	}
	if limit > events.MaxListLimit {
		limit = events.MaxListLimit
	}

	sb.WriteString(" ORDER BY occurred_at DESC, id DESC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]events.CareEvent, 0)
	for rows.Next() {
		var e events.CareEvent
		var typ string

		if err := rows.Scan(
			&e.ID,
			&e.PetID,
			&typ,
			&e.OccurredAt,
			&e.ActorID,
			&e.Notes,
			&e.SpiritBefore,
			&e.SpiritAfter,
		); err != nil {
			return nil, err
		}

		e.Type = events.EventType(typ)
		out = append(out, e)
	}

	return out, rows.Err()
}
