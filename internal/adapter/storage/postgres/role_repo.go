package postgres

import (
	"context"
	"fmt"

	"custody-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// RoleRepo implements ports.RoleRepository.
type RoleRepo struct {
	pool Pool
}

// NewRoleRepo creates a new RoleRepo.
func NewRoleRepo(pool Pool) *RoleRepo {
	return &RoleRepo{pool: pool}
}

func collectRoles(rows pgx.Rows) (domain.RoleSet, error) {
	var set domain.RoleSet
	defer rows.Close()
	for rows.Next() {
		var name, address string
		if err := rows.Scan(&name, &address); err != nil {
			return set, fmt.Errorf("scan role: %w", err)
		}
		addr, err := domain.ParseAddress(address)
		if err != nil {
			return set, fmt.Errorf("corrupt role address: %w", err)
		}
		switch domain.Role(name) {
		case domain.RoleCustodian:
			set.Custodian = addr
		case domain.RoleController:
			set.Controller = addr
		case domain.RoleSweeper:
			set.Sweeper = addr
		case domain.RoleImplementation:
			set.Implementation = addr
		}
	}
	if err := rows.Err(); err != nil {
		return set, fmt.Errorf("iterate roles: %w", err)
	}
	return set, nil
}

// GetRoles reads all role assignments. Unassigned roles read as the zero
// address.
func (r *RoleRepo) GetRoles(ctx context.Context) (domain.RoleSet, error) {
	rows, err := r.pool.Query(ctx, `SELECT name, address FROM roles`)
	if err != nil {
		return domain.RoleSet{}, fmt.Errorf("get roles: %w", err)
	}
	return collectRoles(rows)
}

// GetRolesForUpdate reads all role assignments with row locks, for hand-off
// confirmation. MUST be called within a transaction.
func (r *RoleRepo) GetRolesForUpdate(ctx context.Context, tx pgx.Tx) (domain.RoleSet, error) {
	rows, err := tx.Query(ctx, `SELECT name, address FROM roles FOR UPDATE`)
	if err != nil {
		return domain.RoleSet{}, fmt.Errorf("get roles for update: %w", err)
	}
	return collectRoles(rows)
}

// SetRole assigns an address to a role.
func (r *RoleRepo) SetRole(ctx context.Context, tx pgx.Tx, role domain.Role, address domain.Address) error {
	query := `INSERT INTO roles (name, address) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET address = EXCLUDED.address`

	if _, err := tx.Exec(ctx, query, string(role), address.String()); err != nil {
		return fmt.Errorf("set role %s: %w", role, err)
	}
	return nil
}

// IsSigner reports signer-set membership.
func (r *RoleRepo) IsSigner(ctx context.Context, address domain.Address) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM signers WHERE address = $1)`, address.String(),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check signer: %w", err)
	}
	return exists, nil
}

// AddSigner adds an address to the signer set. Idempotent.
func (r *RoleRepo) AddSigner(ctx context.Context, address domain.Address) error {
	query := `INSERT INTO signers (address) VALUES ($1) ON CONFLICT (address) DO NOTHING`

	if _, err := r.pool.Exec(ctx, query, address.String()); err != nil {
		return fmt.Errorf("add signer: %w", err)
	}
	return nil
}

// RemoveSigner removes an address from the signer set.
func (r *RoleRepo) RemoveSigner(ctx context.Context, address domain.Address) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM signers WHERE address = $1`, address.String()); err != nil {
		return fmt.Errorf("remove signer: %w", err)
	}
	return nil
}
