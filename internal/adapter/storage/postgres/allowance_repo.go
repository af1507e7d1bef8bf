package postgres

import (
	"context"
	"errors"
	"fmt"

	"custody-ledger/internal/core/domain"

	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
)

// AllowanceRepo implements ports.AllowanceRepository. A missing row reads
// as a zero allowance.
type AllowanceRepo struct {
	pool Pool
}

// NewAllowanceRepo creates a new AllowanceRepo.
func NewAllowanceRepo(pool Pool) *AllowanceRepo {
	return &AllowanceRepo{pool: pool}
}

func scanAllowance(row pgx.Row) (*uint256.Int, error) {
	var amount string
	if err := row.Scan(&amount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uint256.NewInt(0), nil
		}
		return nil, err
	}
	v, err := domain.ParseAmount(amount)
	if err != nil {
		return nil, fmt.Errorf("corrupt allowance: %w", err)
	}
	return v, nil
}

// Get fetches the allowance for (owner, spender) without locking.
func (r *AllowanceRepo) Get(ctx context.Context, owner, spender domain.Address) (*uint256.Int, error) {
	query := `SELECT amount::text FROM allowances WHERE owner = $1 AND spender = $2`

	v, err := scanAllowance(r.pool.QueryRow(ctx, query, owner.String(), spender.String()))
	if err != nil {
		return nil, fmt.Errorf("get allowance: %w", err)
	}
	return v, nil
}

// GetForUpdate fetches the allowance with a pessimistic row lock.
// This MUST be called within a transaction.
func (r *AllowanceRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, owner, spender domain.Address) (*uint256.Int, error) {
	query := `SELECT amount::text FROM allowances WHERE owner = $1 AND spender = $2 FOR UPDATE`

	v, err := scanAllowance(tx.QueryRow(ctx, query, owner.String(), spender.String()))
	if err != nil {
		return nil, fmt.Errorf("get allowance for update: %w", err)
	}
	return v, nil
}

// Set writes the allowance absolutely, creating the row if needed.
func (r *AllowanceRepo) Set(ctx context.Context, tx pgx.Tx, owner, spender domain.Address, amount *uint256.Int) error {
	query := `INSERT INTO allowances (owner, spender, amount) VALUES ($1, $2, $3::numeric)
		ON CONFLICT (owner, spender) DO UPDATE SET amount = EXCLUDED.amount`

	if _, err := tx.Exec(ctx, query, owner.String(), spender.String(), amount.Dec()); err != nil {
		return fmt.Errorf("set allowance: %w", err)
	}
	return nil
}
