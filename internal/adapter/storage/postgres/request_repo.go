package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"custody-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// RequestRepo implements ports.RequestRepository: the lock-request registry.
// The full tagged union is stored as one jsonb payload per row; the kind
// column exists for observability queries only.
type RequestRepo struct {
	pool Pool
}

// NewRequestRepo creates a new RequestRepo.
func NewRequestRepo(pool Pool) *RequestRepo {
	return &RequestRepo{pool: pool}
}

// Create stores a pending request. The id must have been derived from the
// registry counter inside the same transaction.
func (r *RequestRepo) Create(ctx context.Context, tx pgx.Tx, req *domain.PendingRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal pending request: %w", err)
	}

	query := `INSERT INTO pending_requests (id, kind, payload, requestor, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = tx.Exec(ctx, query,
		req.ID.String(), string(req.Kind), payload, req.Requestor.String(), req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pending request: %w", err)
	}
	return nil
}

// Consume deletes and returns the pending request in one statement.
// A nil result means the id is unknown or was already consumed; the engine
// maps that to UnknownRequest. Deleting before acting is what makes
// confirmation single-shot.
func (r *RequestRepo) Consume(ctx context.Context, tx pgx.Tx, id domain.RequestID) (*domain.PendingRequest, error) {
	query := `DELETE FROM pending_requests WHERE id = $1 RETURNING payload`

	var payload []byte
	err := tx.QueryRow(ctx, query, id.String()).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consume pending request: %w", err)
	}

	req := &domain.PendingRequest{}
	if err := json.Unmarshal(payload, req); err != nil {
		return nil, fmt.Errorf("unmarshal pending request: %w", err)
	}
	return req, nil
}

// List returns all pending requests in creation order.
func (r *RequestRepo) List(ctx context.Context) ([]domain.PendingRequest, error) {
	query := `SELECT payload FROM pending_requests ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}
	defer rows.Close()

	var reqs []domain.PendingRequest
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan pending request: %w", err)
		}
		var req domain.PendingRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, fmt.Errorf("unmarshal pending request: %w", err)
		}
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending requests: %w", err)
	}
	return reqs, nil
}
