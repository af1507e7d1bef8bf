package postgres

import (
	"context"
	"errors"
	"fmt"

	"custody-ledger/internal/core/domain"

	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository. Balances are stored as
// NUMERIC(78,0) and exchanged with the engine as decimal strings.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

const accountColumns = `address, balance::text, blocked, swept, created_at, updated_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		a       domain.Account
		address string
		balance string
	)
	err := row.Scan(&address, &balance, &a.Blocked, &a.Swept, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if a.Address, err = domain.ParseAddress(address); err != nil {
		return nil, fmt.Errorf("corrupt account address: %w", err)
	}
	if a.Balance, err = domain.ParseAmount(balance); err != nil {
		return nil, fmt.Errorf("corrupt account balance: %w", err)
	}
	return &a, nil
}

// Get fetches an account (non-locking read). A nil result means the address
// has never been touched.
func (r *AccountRepo) Get(ctx context.Context, address domain.Address) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE address = $1`

	a, err := scanAccount(r.pool.QueryRow(ctx, query, address.String()))
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

// GetForUpdate fetches an account with a pessimistic row lock.
// This MUST be called within a transaction.
func (r *AccountRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, address domain.Address) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE address = $1 FOR UPDATE`

	a, err := scanAccount(tx.QueryRow(ctx, query, address.String()))
	if err != nil {
		return nil, fmt.Errorf("get account for update: %w", err)
	}
	return a, nil
}

// UpsertBalance writes the account balance, creating the row if needed.
func (r *AccountRepo) UpsertBalance(ctx context.Context, tx pgx.Tx, address domain.Address, balance *uint256.Int) error {
	query := `INSERT INTO accounts (address, balance) VALUES ($1, $2::numeric)
		ON CONFLICT (address) DO UPDATE SET balance = EXCLUDED.balance, updated_at = NOW()`

	if _, err := tx.Exec(ctx, query, address.String(), balance.Dec()); err != nil {
		return fmt.Errorf("upsert balance: %w", err)
	}
	return nil
}

// SetBlocked toggles the blocked flag, creating the row if needed.
func (r *AccountRepo) SetBlocked(ctx context.Context, address domain.Address, blocked bool) error {
	query := `INSERT INTO accounts (address, blocked) VALUES ($1, $2)
		ON CONFLICT (address) DO UPDATE SET blocked = EXCLUDED.blocked, updated_at = NOW()`

	if _, err := r.pool.Exec(ctx, query, address.String(), blocked); err != nil {
		return fmt.Errorf("set blocked: %w", err)
	}
	return nil
}

// SetSwept durably marks the account as delegated to the sweeper. There is
// no reverse operation.
func (r *AccountRepo) SetSwept(ctx context.Context, tx pgx.Tx, address domain.Address) error {
	query := `INSERT INTO accounts (address, swept) VALUES ($1, TRUE)
		ON CONFLICT (address) DO UPDATE SET swept = TRUE, updated_at = NOW()`

	if _, err := tx.Exec(ctx, query, address.String()); err != nil {
		return fmt.Errorf("set swept: %w", err)
	}
	return nil
}
