package postgres

import (
	"context"
	"errors"
	"fmt"

	"custody-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// OperatorRepo implements ports.OperatorRepository.
type OperatorRepo struct {
	pool Pool
}

// NewOperatorRepo creates a new OperatorRepo.
func NewOperatorRepo(pool Pool) *OperatorRepo {
	return &OperatorRepo{pool: pool}
}

const operatorColumns = `id, username, password_hash, address, secret_key_enc, created_at`

func scanOperator(row pgx.Row) (*domain.Operator, error) {
	var (
		op      domain.Operator
		address string
	)
	err := row.Scan(&op.ID, &op.Username, &op.PasswordHash, &address, &op.SecretKeyEnc, &op.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if op.Address, err = domain.ParseAddress(address); err != nil {
		return nil, fmt.Errorf("corrupt operator address: %w", err)
	}
	return &op, nil
}

// Create inserts a new operator.
func (r *OperatorRepo) Create(ctx context.Context, op *domain.Operator) error {
	query := `INSERT INTO operators (` + operatorColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		op.ID, op.Username, op.PasswordHash, op.Address.String(), op.SecretKeyEnc, op.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert operator: %w", err)
	}
	return nil
}

// GetByUsername fetches an operator by username, nil if absent.
func (r *OperatorRepo) GetByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	query := `SELECT ` + operatorColumns + ` FROM operators WHERE username = $1`

	op, err := scanOperator(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		return nil, fmt.Errorf("get operator by username: %w", err)
	}
	return op, nil
}

// GetByAddress fetches an operator by ledger address, nil if absent.
func (r *OperatorRepo) GetByAddress(ctx context.Context, address domain.Address) (*domain.Operator, error) {
	query := `SELECT ` + operatorColumns + ` FROM operators WHERE address = $1`

	op, err := scanOperator(r.pool.QueryRow(ctx, query, address.String()))
	if err != nil {
		return nil, fmt.Errorf("get operator by address: %w", err)
	}
	return op, nil
}
