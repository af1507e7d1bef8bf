package postgres

import (
	"context"
	"fmt"

	"custody-ledger/internal/core/domain"

	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
)

// LedgerStateRepo implements ports.LedgerStateRepository over the singleton
// supply/ceiling/counter row seeded by the migration.
type LedgerStateRepo struct {
	pool Pool
}

// NewLedgerStateRepo creates a new LedgerStateRepo.
func NewLedgerStateRepo(pool Pool) *LedgerStateRepo {
	return &LedgerStateRepo{pool: pool}
}

func scanLedgerState(row pgx.Row) (*domain.LedgerState, error) {
	var (
		s       domain.LedgerState
		supply  string
		ceiling string
	)
	if err := row.Scan(&supply, &ceiling, &s.RequestCounter); err != nil {
		return nil, err
	}
	var err error
	if s.Supply, err = domain.ParseAmount(supply); err != nil {
		return nil, fmt.Errorf("corrupt supply: %w", err)
	}
	if s.Ceiling, err = domain.ParseAmount(ceiling); err != nil {
		return nil, fmt.Errorf("corrupt ceiling: %w", err)
	}
	return &s, nil
}

// Get reads the ledger state without locking.
func (r *LedgerStateRepo) Get(ctx context.Context) (*domain.LedgerState, error) {
	query := `SELECT supply::text, ceiling::text, request_counter FROM ledger_state WHERE id = 1`

	s, err := scanLedgerState(r.pool.QueryRow(ctx, query))
	if err != nil {
		return nil, fmt.Errorf("get ledger state: %w", err)
	}
	return s, nil
}

// GetForUpdate reads the ledger state with a pessimistic row lock,
// serializing every supply/ceiling mutation. MUST be called within a
// transaction.
func (r *LedgerStateRepo) GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.LedgerState, error) {
	query := `SELECT supply::text, ceiling::text, request_counter FROM ledger_state WHERE id = 1 FOR UPDATE`

	s, err := scanLedgerState(tx.QueryRow(ctx, query))
	if err != nil {
		return nil, fmt.Errorf("get ledger state for update: %w", err)
	}
	return s, nil
}

// SetSupply writes the total supply.
func (r *LedgerStateRepo) SetSupply(ctx context.Context, tx pgx.Tx, supply *uint256.Int) error {
	query := `UPDATE ledger_state SET supply = $1::numeric WHERE id = 1`

	if _, err := tx.Exec(ctx, query, supply.Dec()); err != nil {
		return fmt.Errorf("set supply: %w", err)
	}
	return nil
}

// SetCeiling writes the bounded-minting ceiling.
func (r *LedgerStateRepo) SetCeiling(ctx context.Context, tx pgx.Tx, ceiling *uint256.Int) error {
	query := `UPDATE ledger_state SET ceiling = $1::numeric WHERE id = 1`

	if _, err := tx.Exec(ctx, query, ceiling.Dec()); err != nil {
		return fmt.Errorf("set ceiling: %w", err)
	}
	return nil
}

// NextRequestCounter atomically increments and returns the request counter.
func (r *LedgerStateRepo) NextRequestCounter(ctx context.Context, tx pgx.Tx) (uint64, error) {
	query := `UPDATE ledger_state SET request_counter = request_counter + 1 WHERE id = 1 RETURNING request_counter`

	var counter uint64
	if err := tx.QueryRow(ctx, query).Scan(&counter); err != nil {
		return 0, fmt.Errorf("next request counter: %w", err)
	}
	return counter, nil
}
