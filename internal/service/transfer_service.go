package service

import (
	"context"
	"fmt"

	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/core/ports"
	"custody-ledger/pkg/apperror"

	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// TransferServiceImpl implements ports.TransferService: the direct-path
// engine. Every mutation runs inside a database transaction with pessimistic
// row locks so check-then-act sequences are atomic as a unit.
type TransferServiceImpl struct {
	accounts   ports.AccountRepository
	allowances ports.AllowanceRepository
	state      ports.LedgerStateRepository
	roles      ports.RoleRepository
	transactor ports.DBTransactor
	events     *emitter
	log        zerolog.Logger
}

// NewTransferService creates a new TransferServiceImpl.
func NewTransferService(
	accounts ports.AccountRepository,
	allowances ports.AllowanceRepository,
	state ports.LedgerStateRepository,
	roles ports.RoleRepository,
	transactor ports.DBTransactor,
	events *emitter,
	log zerolog.Logger,
) *TransferServiceImpl {
	return &TransferServiceImpl{
		accounts:   accounts,
		allowances: allowances,
		state:      state,
		roles:      roles,
		transactor: transactor,
		events:     events,
		log:        log,
	}
}

// lockedBalance reads an account's balance under the row lock, treating an
// absent row as zero, and surfaces the blocked flag.
func lockedBalance(ctx context.Context, tx pgx.Tx, accounts ports.AccountRepository, address domain.Address) (*uint256.Int, bool, error) {
	acct, err := accounts.GetForUpdate(ctx, tx, address)
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("lock account %s: %w", address, err))
	}
	if acct == nil {
		return uint256.NewInt(0), false, nil
	}
	return acct.Balance, acct.Blocked, nil
}

// Transfer moves value from sender to a destination. A self-transfer leaves
// balances untouched but still emits the transfer notification.
func (s *TransferServiceImpl) Transfer(ctx context.Context, sender, to domain.Address, value *uint256.Int) error {
	if to.IsZero() {
		return apperror.ErrInvalidArgument("null destination address")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	senderBalance, senderBlocked, err := lockedBalance(ctx, dbTx, s.accounts, sender)
	if err != nil {
		return err
	}
	if senderBlocked {
		return apperror.ErrAccountBlocked()
	}

	if sender != to {
		_, toBlocked, err := lockedBalance(ctx, dbTx, s.accounts, to)
		if err != nil {
			return err
		}
		if toBlocked {
			return apperror.ErrAccountBlocked()
		}
	}

	if senderBalance.Cmp(value) < 0 {
		return apperror.ErrInsufficientBalance()
	}

	if sender != to {
		newSenderBalance, ok := domain.CheckedSub(senderBalance, value)
		if !ok {
			return apperror.ErrInsufficientBalance()
		}
		toBalance, _, err := lockedBalance(ctx, dbTx, s.accounts, to)
		if err != nil {
			return err
		}
		newToBalance, ok := domain.CheckedAdd(toBalance, value)
		if !ok {
			return apperror.InternalError(fmt.Errorf("balance overflow crediting %s", to))
		}
		if err := s.accounts.UpsertBalance(ctx, dbTx, sender, newSenderBalance); err != nil {
			return apperror.InternalError(err)
		}
		if err := s.accounts.UpsertBalance(ctx, dbTx, to, newToBalance); err != nil {
			return apperror.InternalError(err)
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.events.emit(ctx, domain.NewTransferEvent(sender, to, value))
	s.log.Info().
		Stringer("from", sender).
		Stringer("to", to).
		Str("value", value.Dec()).
		Msg("transfer executed")
	return nil
}

// TransferFrom moves value from an owner to a destination on the strength of
// a spend allowance, which is decremented by the transferred amount — on a
// self-transfer too.
func (s *TransferServiceImpl) TransferFrom(ctx context.Context, spender, from, to domain.Address, value *uint256.Int) error {
	if to.IsZero() {
		return apperror.ErrInvalidArgument("null destination address")
	}

	if err := requireUnblocked(ctx, s.accounts, spender); err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	fromBalance, fromBlocked, err := lockedBalance(ctx, dbTx, s.accounts, from)
	if err != nil {
		return err
	}
	if fromBlocked {
		return apperror.ErrAccountBlocked()
	}

	if to != from {
		_, toBlocked, err := lockedBalance(ctx, dbTx, s.accounts, to)
		if err != nil {
			return err
		}
		if toBlocked {
			return apperror.ErrAccountBlocked()
		}
	}

	allowance, err := s.allowances.GetForUpdate(ctx, dbTx, from, spender)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock allowance: %w", err))
	}
	if allowance.Cmp(value) < 0 {
		return apperror.ErrInsufficientAllowance()
	}
	if fromBalance.Cmp(value) < 0 {
		return apperror.ErrInsufficientBalance()
	}

	newAllowance, ok := domain.CheckedSub(allowance, value)
	if !ok {
		return apperror.ErrInsufficientAllowance()
	}
	if err := s.allowances.Set(ctx, dbTx, from, spender, newAllowance); err != nil {
		return apperror.InternalError(err)
	}

	if from != to {
		newFromBalance, _ := domain.CheckedSub(fromBalance, value)
		toBalance, _, err := lockedBalance(ctx, dbTx, s.accounts, to)
		if err != nil {
			return err
		}
		newToBalance, ok := domain.CheckedAdd(toBalance, value)
		if !ok {
			return apperror.InternalError(fmt.Errorf("balance overflow crediting %s", to))
		}
		if err := s.accounts.UpsertBalance(ctx, dbTx, from, newFromBalance); err != nil {
			return apperror.InternalError(err)
		}
		if err := s.accounts.UpsertBalance(ctx, dbTx, to, newToBalance); err != nil {
			return apperror.InternalError(err)
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.events.emit(ctx, domain.NewTransferEvent(from, to, value))
	s.log.Info().
		Stringer("spender", spender).
		Stringer("from", from).
		Stringer("to", to).
		Str("value", value.Dec()).
		Msg("transferFrom executed")
	return nil
}

// Approve sets the allowance for (owner, spender) absolutely.
func (s *TransferServiceImpl) Approve(ctx context.Context, owner, spender domain.Address, value *uint256.Int) error {
	if err := s.checkApprovalParties(ctx, owner, spender); err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.allowances.Set(ctx, dbTx, owner, spender, value); err != nil {
		return apperror.InternalError(err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.events.emit(ctx, domain.NewApprovalEvent(owner, spender, value))
	s.log.Info().
		Stringer("owner", owner).
		Stringer("spender", spender).
		Str("value", value.Dec()).
		Msg("allowance set")
	return nil
}

// IncreaseApproval raises the allowance relatively; the result must not
// overflow.
func (s *TransferServiceImpl) IncreaseApproval(ctx context.Context, owner, spender domain.Address, delta *uint256.Int) error {
	return s.adjustApproval(ctx, owner, spender, delta, true)
}

// DecreaseApproval lowers the allowance relatively; the result must not
// underflow.
func (s *TransferServiceImpl) DecreaseApproval(ctx context.Context, owner, spender domain.Address, delta *uint256.Int) error {
	return s.adjustApproval(ctx, owner, spender, delta, false)
}

func (s *TransferServiceImpl) adjustApproval(ctx context.Context, owner, spender domain.Address, delta *uint256.Int, increase bool) error {
	if err := s.checkApprovalParties(ctx, owner, spender); err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	current, err := s.allowances.GetForUpdate(ctx, dbTx, owner, spender)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock allowance: %w", err))
	}

	var updated *uint256.Int
	if increase {
		v, ok := domain.CheckedAdd(current, delta)
		if !ok {
			return apperror.ErrAllowanceOverflow()
		}
		updated = v
	} else {
		v, ok := domain.CheckedSub(current, delta)
		if !ok {
			return apperror.ErrAllowanceUnderflow()
		}
		updated = v
	}

	if err := s.allowances.Set(ctx, dbTx, owner, spender, updated); err != nil {
		return apperror.InternalError(err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.events.emit(ctx, domain.NewApprovalEvent(owner, spender, updated))
	s.log.Info().
		Stringer("owner", owner).
		Stringer("spender", spender).
		Str("allowance", updated.Dec()).
		Msg("allowance adjusted")
	return nil
}

func (s *TransferServiceImpl) checkApprovalParties(ctx context.Context, owner, spender domain.Address) error {
	if spender.IsZero() {
		return apperror.ErrInvalidArgument("null spender address")
	}
	if err := requireUnblocked(ctx, s.accounts, owner); err != nil {
		return err
	}
	return requireUnblocked(ctx, s.accounts, spender)
}

// BatchTransfer moves value to each destination in sequence. The whole batch
// is atomic: the first invalid destination or shortfall rolls everything
// back. Self-transfers inside the batch skip bookkeeping but still notify.
// The sender balance is written once, after the loop.
func (s *TransferServiceImpl) BatchTransfer(ctx context.Context, sender domain.Address, destinations []domain.Address, values []*uint256.Int) error {
	if len(destinations) != len(values) {
		return apperror.ErrInvalidArgument("destinations and values length mismatch")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	senderBalance, senderBlocked, err := lockedBalance(ctx, dbTx, s.accounts, sender)
	if err != nil {
		return err
	}
	if senderBlocked {
		return apperror.ErrAccountBlocked()
	}

	running := new(uint256.Int).Set(senderBalance)
	events := make([]domain.Event, 0, len(destinations))

	for i, to := range destinations {
		value := values[i]
		if to.IsZero() {
			return apperror.ErrInvalidArgument("null destination address")
		}
		if running.Cmp(value) < 0 {
			return apperror.ErrInsufficientBalance()
		}

		if to != sender {
			toBalance, toBlocked, err := lockedBalance(ctx, dbTx, s.accounts, to)
			if err != nil {
				return err
			}
			if toBlocked {
				return apperror.ErrAccountBlocked()
			}
			running.Sub(running, value)
			newToBalance, ok := domain.CheckedAdd(toBalance, value)
			if !ok {
				return apperror.InternalError(fmt.Errorf("balance overflow crediting %s", to))
			}
			if err := s.accounts.UpsertBalance(ctx, dbTx, to, newToBalance); err != nil {
				return apperror.InternalError(err)
			}
		}

		events = append(events, domain.NewTransferEvent(sender, to, value))
	}

	if err := s.accounts.UpsertBalance(ctx, dbTx, sender, running); err != nil {
		return apperror.InternalError(err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.events.emit(ctx, events...)
	s.log.Info().
		Stringer("sender", sender).
		Int("destinations", len(destinations)).
		Msg("batch transfer executed")
	return nil
}

// Burn destroys value from the sender's own balance, reducing total supply
// in lockstep.
func (s *TransferServiceImpl) Burn(ctx context.Context, sender domain.Address, value *uint256.Int) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	balance, blocked, err := lockedBalance(ctx, dbTx, s.accounts, sender)
	if err != nil {
		return err
	}
	if blocked {
		return apperror.ErrAccountBlocked()
	}
	if balance.Cmp(value) < 0 {
		return apperror.ErrInsufficientBalance()
	}

	if err := s.applyBurn(ctx, dbTx, sender, balance, value); err != nil {
		return err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.events.emit(ctx,
		domain.Event{Kind: domain.EventBurn, At: nowUTC(), Account: addrPtr(sender), Value: new(uint256.Int).Set(value)},
		domain.NewTransferEvent(sender, domain.ZeroAddress, value),
	)
	s.log.Info().
		Stringer("account", sender).
		Str("value", value.Dec()).
		Msg("burn executed")
	return nil
}

// BurnFrom is the custodian-driven clamped burn: at most the account's
// current balance is destroyed, never an error for a shortfall. It acts on
// blocked accounts by design. Returns the amount actually burned.
func (s *TransferServiceImpl) BurnFrom(ctx context.Context, caller, from domain.Address, value *uint256.Int) (*uint256.Int, error) {
	if err := requireRole(ctx, s.roles, domain.RoleCustodian, caller); err != nil {
		return nil, err
	}
	if from.IsZero() {
		return nil, apperror.ErrInvalidArgument("null account address")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	balance, _, err := lockedBalance(ctx, dbTx, s.accounts, from)
	if err != nil {
		return nil, err
	}

	burned := domain.MinAmount(value, balance)
	if err := s.applyBurn(ctx, dbTx, from, balance, burned); err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.events.emit(ctx,
		domain.Event{Kind: domain.EventBurn, At: nowUTC(), Account: addrPtr(from), Value: new(uint256.Int).Set(burned), Requested: new(uint256.Int).Set(value)},
		domain.NewTransferEvent(from, domain.ZeroAddress, burned),
	)
	s.log.Info().
		Stringer("account", from).
		Str("requested", value.Dec()).
		Str("burned", burned.Dec()).
		Msg("clamped burn executed")
	return burned, nil
}

// applyBurn writes the reduced balance and the reduced supply. The caller
// guarantees value <= balance.
func (s *TransferServiceImpl) applyBurn(ctx context.Context, dbTx pgx.Tx, account domain.Address, balance, value *uint256.Int) error {
	newBalance, ok := domain.CheckedSub(balance, value)
	if !ok {
		return apperror.ErrInsufficientBalance()
	}
	ledger, err := s.state.GetForUpdate(ctx, dbTx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock ledger state: %w", err))
	}
	newSupply, ok := domain.CheckedSub(ledger.Supply, value)
	if !ok {
		// Balances never exceed supply, so this indicates corruption.
		return apperror.InternalError(fmt.Errorf("supply underflow burning %s", value.Dec()))
	}
	if err := s.accounts.UpsertBalance(ctx, dbTx, account, newBalance); err != nil {
		return apperror.InternalError(err)
	}
	if err := s.state.SetSupply(ctx, dbTx, newSupply); err != nil {
		return apperror.InternalError(err)
	}
	return nil
}
