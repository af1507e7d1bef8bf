package service

import (
	"context"
	"fmt"
	"time"

	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/core/ports"
	"custody-ledger/pkg/apperror"

	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
)

// MintingServiceImpl implements ports.MintingService: the controller's
// bounded mint path. Unlike the custodian's two-phase print, a limited mint
// is immediate, but every unit minted must fit under the ceiling, and a
// breach is a hard failure rather than a silent drop.
type MintingServiceImpl struct {
	accounts   ports.AccountRepository
	state      ports.LedgerStateRepository
	requests   ports.RequestRepository
	roles      ports.RoleRepository
	transactor ports.DBTransactor
	events     *emitter
	log        zerolog.Logger
	instanceID string
}

// NewMintingService creates a new MintingServiceImpl.
func NewMintingService(
	accounts ports.AccountRepository,
	state ports.LedgerStateRepository,
	requests ports.RequestRepository,
	roles ports.RoleRepository,
	transactor ports.DBTransactor,
	events *emitter,
	log zerolog.Logger,
	instanceID string,
) *MintingServiceImpl {
	return &MintingServiceImpl{
		accounts:   accounts,
		state:      state,
		requests:   requests,
		roles:      roles,
		transactor: transactor,
		events:     events,
		log:        log,
		instanceID: instanceID,
	}
}

// LimitedMint credits value to receiver within the minting ceiling. The
// print request is synthesized and consumed inside one transaction, so the
// audit trail shows the same locked/confirmed pair as a custodian print.
func (s *MintingServiceImpl) LimitedMint(ctx context.Context, caller, receiver domain.Address, value *uint256.Int) error {
	if err := requireRole(ctx, s.roles, domain.RoleController, caller); err != nil {
		return err
	}
	if receiver.IsZero() {
		return apperror.ErrInvalidArgument("null receiver address")
	}
	if err := requireUnblocked(ctx, s.accounts, receiver); err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	ledger, err := s.state.GetForUpdate(ctx, dbTx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock ledger state: %w", err))
	}
	newSupply, ok := domain.CheckedAdd(ledger.Supply, value)
	if !ok || newSupply.Cmp(ledger.Ceiling) > 0 {
		return apperror.ErrCeilingExceeded()
	}

	counter, err := s.state.NextRequestCounter(ctx, dbTx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("next request counter: %w", err))
	}
	req := &domain.PendingRequest{
		ID:        domain.NewRequestID(counter, caller, s.instanceID),
		Kind:      domain.RequestKindPrint,
		Requestor: caller,
		CreatedAt: time.Now().UTC(),
		Receiver:  receiver,
		Value:     new(uint256.Int).Set(value),
	}
	if err := s.requests.Create(ctx, dbTx, req); err != nil {
		return apperror.InternalError(fmt.Errorf("store request: %w", err))
	}
	if _, err := s.requests.Consume(ctx, dbTx, req.ID); err != nil {
		return apperror.InternalError(fmt.Errorf("consume request: %w", err))
	}

	balance, _, err := lockedBalance(ctx, dbTx, s.accounts, receiver)
	if err != nil {
		return err
	}
	newBalance, _ := domain.CheckedAdd(balance, value)
	if err := s.state.SetSupply(ctx, dbTx, newSupply); err != nil {
		return apperror.InternalError(err)
	}
	if err := s.accounts.UpsertBalance(ctx, dbTx, receiver, newBalance); err != nil {
		return apperror.InternalError(err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.events.emit(ctx,
		domain.NewRequestEvent(domain.EventPrintLocked, req.ID, caller),
		domain.NewRequestEvent(domain.EventPrintConfirmed, req.ID, caller),
		domain.NewTransferEvent(domain.ZeroAddress, receiver, value),
	)
	s.log.Info().
		Stringer("request_id", req.ID).
		Stringer("receiver", receiver).
		Str("value", value.Dec()).
		Str("supply", newSupply.Dec()).
		Msg("limited mint executed")
	return nil
}

// LowerCeiling reduces the minting ceiling. The ceiling never goes below
// zero: an underflowing reduction is rejected outright.
func (s *MintingServiceImpl) LowerCeiling(ctx context.Context, caller domain.Address, amount *uint256.Int) error {
	if err := requireRole(ctx, s.roles, domain.RoleController, caller); err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	ledger, err := s.state.GetForUpdate(ctx, dbTx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock ledger state: %w", err))
	}
	newCeiling, ok := domain.CheckedSub(ledger.Ceiling, amount)
	if !ok {
		return apperror.ErrInvalidArgument("ceiling reduction exceeds current ceiling")
	}
	if err := s.state.SetCeiling(ctx, dbTx, newCeiling); err != nil {
		return apperror.InternalError(err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.events.emit(ctx, domain.Event{
		Kind:    domain.EventCeilingLowered,
		At:      nowUTC(),
		Account: addrPtr(caller),
		Value:   new(uint256.Int).Set(amount),
	})
	s.log.Info().
		Str("amount", amount.Dec()).
		Str("ceiling", newCeiling.Dec()).
		Msg("ceiling lowered")
	return nil
}
