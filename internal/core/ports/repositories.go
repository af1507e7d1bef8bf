package ports

import (
	"context"

	"custody-ledger/internal/core/domain"

	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
)

// AccountRepository defines persistence for the balance ledger.
// Methods accepting pgx.Tx run inside transaction blocks with row locks;
// check-then-act sequences must use the ForUpdate variants.
// A nil account means the address has never been touched: zero balance,
// not blocked, not delegated.
type AccountRepository interface {
	Get(ctx context.Context, address domain.Address) (*domain.Account, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, address domain.Address) (*domain.Account, error)
	// UpsertBalance writes the balance, creating the account row if needed.
	UpsertBalance(ctx context.Context, tx pgx.Tx, address domain.Address, balance *uint256.Int) error
	// SetBlocked toggles the blocked flag, creating the row if needed.
	SetBlocked(ctx context.Context, address domain.Address, blocked bool) error
	// SetSwept durably marks the account as delegated to the sweeper.
	// Membership is permanent: there is no clearing counterpart.
	SetSwept(ctx context.Context, tx pgx.Tx, address domain.Address) error
}

// AllowanceRepository defines persistence for (owner, spender) allowances.
// A missing row reads as a zero allowance.
type AllowanceRepository interface {
	Get(ctx context.Context, owner, spender domain.Address) (*uint256.Int, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, owner, spender domain.Address) (*uint256.Int, error)
	Set(ctx context.Context, tx pgx.Tx, owner, spender domain.Address, amount *uint256.Int) error
}

// LedgerStateRepository manages the singleton supply/ceiling/counter row.
type LedgerStateRepository interface {
	Get(ctx context.Context) (*domain.LedgerState, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.LedgerState, error)
	SetSupply(ctx context.Context, tx pgx.Tx, supply *uint256.Int) error
	SetCeiling(ctx context.Context, tx pgx.Tx, ceiling *uint256.Int) error
	// NextRequestCounter atomically increments and returns the request
	// counter. Called inside the same transaction that stores the request.
	NextRequestCounter(ctx context.Context, tx pgx.Tx) (uint64, error)
}

// RequestRepository is the lock-request registry. Consume removes the row
// before returning it: a request id is confirmable at most once by
// construction, with no extra bookkeeping.
type RequestRepository interface {
	Create(ctx context.Context, tx pgx.Tx, req *domain.PendingRequest) error
	// Consume deletes and returns the pending request, or nil if the id is
	// unknown or already consumed.
	Consume(ctx context.Context, tx pgx.Tx, id domain.RequestID) (*domain.PendingRequest, error)
	List(ctx context.Context) ([]domain.PendingRequest, error)
}

// RoleRepository defines persistence for role assignments and the signer set.
type RoleRepository interface {
	GetRoles(ctx context.Context) (domain.RoleSet, error)
	GetRolesForUpdate(ctx context.Context, tx pgx.Tx) (domain.RoleSet, error)
	SetRole(ctx context.Context, tx pgx.Tx, role domain.Role, address domain.Address) error
	IsSigner(ctx context.Context, address domain.Address) (bool, error)
	AddSigner(ctx context.Context, address domain.Address) error
	RemoveSigner(ctx context.Context, address domain.Address) error
}

// OperatorRepository defines persistence for onboarded API callers.
type OperatorRepository interface {
	Create(ctx context.Context, op *domain.Operator) error
	GetByUsername(ctx context.Context, username string) (*domain.Operator, error)
	GetByAddress(ctx context.Context, address domain.Address) (*domain.Operator, error)
}

// EventRepository is the durable audit trail of emitted notifications.
type EventRepository interface {
	Append(ctx context.Context, ev domain.Event) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
