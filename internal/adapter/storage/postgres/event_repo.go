package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"custody-ledger/internal/core/domain"
)

// EventRepo implements ports.EventRepository: the durable audit trail of
// emitted notifications.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Append records one notification.
func (r *EventRepo) Append(ctx context.Context, ev domain.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	query := `INSERT INTO events (kind, payload, created_at) VALUES ($1, $2, $3)`

	if _, err := r.pool.Exec(ctx, query, string(ev.Kind), payload, ev.At); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}
