package service

import (
	"context"
	"fmt"

	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/core/ports"
	"custody-ledger/pkg/apperror"

	"github.com/holiman/uint256"
)

// QueryServiceImpl implements ports.QueryService: the read-only surface.
// Reads take no locks; they see the latest committed state.
type QueryServiceImpl struct {
	accounts   ports.AccountRepository
	allowances ports.AllowanceRepository
	state      ports.LedgerStateRepository
	requests   ports.RequestRepository
	roles      ports.RoleRepository
}

// NewQueryService creates a new QueryServiceImpl.
func NewQueryService(
	accounts ports.AccountRepository,
	allowances ports.AllowanceRepository,
	state ports.LedgerStateRepository,
	requests ports.RequestRepository,
	roles ports.RoleRepository,
) *QueryServiceImpl {
	return &QueryServiceImpl{
		accounts:   accounts,
		allowances: allowances,
		state:      state,
		requests:   requests,
		roles:      roles,
	}
}

func (s *QueryServiceImpl) TotalSupply(ctx context.Context) (*uint256.Int, error) {
	ledger, err := s.state.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load ledger state: %w", err))
	}
	return ledger.Supply, nil
}

func (s *QueryServiceImpl) Ceiling(ctx context.Context) (*uint256.Int, error) {
	ledger, err := s.state.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load ledger state: %w", err))
	}
	return ledger.Ceiling, nil
}

// BalanceOf reads an address's balance; untouched addresses hold zero.
func (s *QueryServiceImpl) BalanceOf(ctx context.Context, address domain.Address) (*uint256.Int, error) {
	acct, err := s.accounts.Get(ctx, address)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load account: %w", err))
	}
	if acct == nil {
		return uint256.NewInt(0), nil
	}
	return acct.Balance, nil
}

func (s *QueryServiceImpl) AllowanceOf(ctx context.Context, owner, spender domain.Address) (*uint256.Int, error) {
	allowance, err := s.allowances.Get(ctx, owner, spender)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load allowance: %w", err))
	}
	return allowance, nil
}

func (s *QueryServiceImpl) Roles(ctx context.Context) (domain.RoleSet, error) {
	set, err := s.roles.GetRoles(ctx)
	if err != nil {
		return domain.RoleSet{}, apperror.InternalError(fmt.Errorf("load roles: %w", err))
	}
	return set, nil
}

func (s *QueryServiceImpl) PendingRequests(ctx context.Context) ([]domain.PendingRequest, error) {
	reqs, err := s.requests.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list pending requests: %w", err))
	}
	return reqs, nil
}
