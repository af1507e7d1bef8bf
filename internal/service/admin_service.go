package service

import (
	"context"
	"fmt"

	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/core/ports"
	"custody-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// AdminServiceImpl implements ports.AdminService: wallet blocking and direct
// role assignment. These paths bypass the two-phase machine, so they are
// limited to the controller and sweeper roles and to the blocked flag.
type AdminServiceImpl struct {
	accounts ports.AccountRepository
	roles    ports.RoleRepository
	// role swaps still lock the roles row for consistency with the
	// two-phase hand-off path
	transactor ports.DBTransactor
	events     *emitter
	log        zerolog.Logger
}

// NewAdminService creates a new AdminServiceImpl.
func NewAdminService(
	accounts ports.AccountRepository,
	roles ports.RoleRepository,
	transactor ports.DBTransactor,
	events *emitter,
	log zerolog.Logger,
) *AdminServiceImpl {
	return &AdminServiceImpl{
		accounts:   accounts,
		roles:      roles,
		transactor: transactor,
		events:     events,
		log:        log,
	}
}

// SetBlocked toggles the blocked flag on an account. Callable by the
// custodian or any signer-set member. Blocking is idempotent.
func (s *AdminServiceImpl) SetBlocked(ctx context.Context, caller, account domain.Address, blocked bool) error {
	if account.IsZero() {
		return apperror.ErrInvalidArgument("null account address")
	}
	if err := s.requireCustodianOrSigner(ctx, caller); err != nil {
		return err
	}

	if err := s.accounts.SetBlocked(ctx, account, blocked); err != nil {
		return apperror.InternalError(err)
	}

	kind := domain.EventWalletBlocked
	if !blocked {
		kind = domain.EventWalletUnblocked
	}
	s.events.emit(ctx, domain.Event{Kind: kind, At: nowUTC(), Account: addrPtr(account)})
	s.log.Info().
		Stringer("account", account).
		Bool("blocked", blocked).
		Msg("account block flag set")
	return nil
}

// AssignRole sets the controller or sweeper role directly. The custodian and
// implementation roles change only through the confirmed hand-off flow.
func (s *AdminServiceImpl) AssignRole(ctx context.Context, caller domain.Address, role domain.Role, address domain.Address) error {
	if err := requireRole(ctx, s.roles, domain.RoleCustodian, caller); err != nil {
		return err
	}
	if role != domain.RoleController && role != domain.RoleSweeper {
		return apperror.ErrInvalidArgument(fmt.Sprintf("role %q is not directly assignable", role))
	}
	if address.IsZero() {
		return apperror.ErrInvalidArgument("null role address")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if _, err := s.roles.GetRolesForUpdate(ctx, dbTx); err != nil {
		return apperror.InternalError(fmt.Errorf("lock roles: %w", err))
	}
	if err := s.roles.SetRole(ctx, dbTx, role, address); err != nil {
		return apperror.InternalError(err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.events.emit(ctx, domain.Event{
		Kind:    domain.EventRoleAssigned,
		At:      nowUTC(),
		Account: addrPtr(address),
		Role:    role,
	})
	s.log.Info().
		Str("role", string(role)).
		Stringer("holder", address).
		Msg("role assigned")
	return nil
}

// AddSigner adds an address to the signer set.
func (s *AdminServiceImpl) AddSigner(ctx context.Context, caller, signer domain.Address) error {
	if err := requireRole(ctx, s.roles, domain.RoleCustodian, caller); err != nil {
		return err
	}
	if signer.IsZero() {
		return apperror.ErrInvalidArgument("null signer address")
	}
	if err := s.roles.AddSigner(ctx, signer); err != nil {
		return apperror.InternalError(err)
	}
	s.log.Info().Stringer("signer", signer).Msg("signer added")
	return nil
}

// RemoveSigner removes an address from the signer set.
func (s *AdminServiceImpl) RemoveSigner(ctx context.Context, caller, signer domain.Address) error {
	if err := requireRole(ctx, s.roles, domain.RoleCustodian, caller); err != nil {
		return err
	}
	if err := s.roles.RemoveSigner(ctx, signer); err != nil {
		return apperror.InternalError(err)
	}
	s.log.Info().Stringer("signer", signer).Msg("signer removed")
	return nil
}

func (s *AdminServiceImpl) requireCustodianOrSigner(ctx context.Context, caller domain.Address) error {
	set, err := s.roles.GetRoles(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load roles: %w", err))
	}
	if !set.Custodian.IsZero() && set.Custodian == caller {
		return nil
	}
	isSigner, err := s.roles.IsSigner(ctx, caller)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("check signer: %w", err))
	}
	if !isSigner {
		return apperror.ErrUnauthorized("custodian or signer")
	}
	return nil
}
