package service

import (
	"context"
	"fmt"
	"time"

	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/core/ports"
	"custody-ledger/pkg/apperror"

	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// AuthorizationServiceImpl implements ports.AuthorizationService: the
// two-phase request/confirm state machine. Requests are recorded in the
// lock-request registry and become effective only when the custodian
// confirms them. Confirmation consumes the request row, so an id is
// confirmable at most once.
type AuthorizationServiceImpl struct {
	accounts   ports.AccountRepository
	state      ports.LedgerStateRepository
	requests   ports.RequestRepository
	roles      ports.RoleRepository
	transactor ports.DBTransactor
	events     *emitter
	log        zerolog.Logger
	instanceID string
}

// NewAuthorizationService creates a new AuthorizationServiceImpl.
func NewAuthorizationService(
	accounts ports.AccountRepository,
	state ports.LedgerStateRepository,
	requests ports.RequestRepository,
	roles ports.RoleRepository,
	transactor ports.DBTransactor,
	events *emitter,
	log zerolog.Logger,
	instanceID string,
) *AuthorizationServiceImpl {
	return &AuthorizationServiceImpl{
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

// store persists a new pending request inside its own transaction, deriving
// the id from the monotonic counter in the same transaction that writes the
// row.
func (s *AuthorizationServiceImpl) store(ctx context.Context, req *domain.PendingRequest) (domain.RequestID, error) {
	var zero domain.RequestID

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return zero, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	counter, err := s.state.NextRequestCounter(ctx, dbTx)
	if err != nil {
		return zero, apperror.InternalError(fmt.Errorf("next request counter: %w", err))
	}
	req.ID = domain.NewRequestID(counter, req.Requestor, s.instanceID)
	req.CreatedAt = time.Now().UTC()

	if err := s.requests.Create(ctx, dbTx, req); err != nil {
		return zero, apperror.InternalError(fmt.Errorf("store request: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return zero, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return req.ID, nil
}

// consume removes the pending request, verifying the kind. A missing row or
// a kind mismatch both read as an unknown request; the mismatch error rolls
// the transaction back, so the row stays confirmable under its true kind.
func (s *AuthorizationServiceImpl) consume(ctx context.Context, dbTx pgx.Tx, id domain.RequestID, kind domain.RequestKind) (*domain.PendingRequest, error) {
	req, err := s.requests.Consume(ctx, dbTx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("consume request: %w", err))
	}
	if req == nil || req.Kind != kind {
		return nil, apperror.ErrUnknownRequest()
	}
	return req, nil
}

// --- Print ---

// RequestPrint records a pending supply increase to receiver. Any unblocked
// caller may request; only the custodian can make it effective.
func (s *AuthorizationServiceImpl) RequestPrint(ctx context.Context, caller, receiver domain.Address, value *uint256.Int) (domain.RequestID, error) {
	var zero domain.RequestID
	if receiver.IsZero() {
		return zero, apperror.ErrInvalidArgument("null receiver address")
	}
	if err := requireUnblocked(ctx, s.accounts, caller); err != nil {
		return zero, err
	}
	if err := requireUnblocked(ctx, s.accounts, receiver); err != nil {
		return zero, err
	}

	id, err := s.store(ctx, &domain.PendingRequest{
		Kind:      domain.RequestKindPrint,
		Requestor: caller,
		Receiver:  receiver,
		Value:     new(uint256.Int).Set(value),
	})
	if err != nil {
		return zero, err
	}

	s.events.emit(ctx, domain.NewRequestEvent(domain.EventPrintLocked, id, caller))
	s.log.Info().
		Stringer("request_id", id).
		Stringer("requestor", caller).
		Stringer("receiver", receiver).
		Str("value", value.Dec()).
		Msg("print requested")
	return id, nil
}

// ConfirmPrint makes a pending print effective. If the resulting supply
// would overflow, the request is consumed but no state changes and no error
// is returned.
func (s *AuthorizationServiceImpl) ConfirmPrint(ctx context.Context, caller domain.Address, id domain.RequestID) error {
	if err := requireRole(ctx, s.roles, domain.RoleCustodian, caller); err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	req, err := s.consume(ctx, dbTx, id, domain.RequestKindPrint)
	if err != nil {
		return err
	}

	ledger, err := s.state.GetForUpdate(ctx, dbTx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock ledger state: %w", err))
	}
	newSupply, ok := domain.CheckedAdd(ledger.Supply, req.Value)
	if !ok {
		// Overflow burns the request without touching state.
		if err := dbTx.Commit(ctx); err != nil {
			return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
		}
		s.log.Info().
			Stringer("request_id", id).
			Str("value", req.Value.Dec()).
			Msg("print confirmation dropped: supply overflow")
		return nil
	}

	balance, _, err := lockedBalance(ctx, dbTx, s.accounts, req.Receiver)
	if err != nil {
		return err
	}
	newBalance, _ := domain.CheckedAdd(balance, req.Value)
	if err := s.state.SetSupply(ctx, dbTx, newSupply); err != nil {
		return apperror.InternalError(err)
	}
	if err := s.accounts.UpsertBalance(ctx, dbTx, req.Receiver, newBalance); err != nil {
		return apperror.InternalError(err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.events.emit(ctx,
		domain.NewRequestEvent(domain.EventPrintConfirmed, id, caller),
		domain.NewTransferEvent(domain.ZeroAddress, req.Receiver, req.Value),
	)
	s.log.Info().
		Stringer("request_id", id).
		Stringer("receiver", req.Receiver).
		Str("value", req.Value.Dec()).
		Str("supply", newSupply.Dec()).
		Msg("print confirmed")
	return nil
}

// --- Ceiling raise ---

// RequestCeilingRaise records a pending minting-ceiling increase. Only the
// controller requests a raise of its own bound.
func (s *AuthorizationServiceImpl) RequestCeilingRaise(ctx context.Context, caller domain.Address, value *uint256.Int) (domain.RequestID, error) {
	var zero domain.RequestID
	if err := requireRole(ctx, s.roles, domain.RoleController, caller); err != nil {
		return zero, err
	}

	id, err := s.store(ctx, &domain.PendingRequest{
		Kind:      domain.RequestKindCeilingRaise,
		Requestor: caller,
		Value:     new(uint256.Int).Set(value),
	})
	if err != nil {
		return zero, err
	}

	s.events.emit(ctx, domain.NewRequestEvent(domain.EventCeilingRaiseLocked, id, caller))
	s.log.Info().
		Stringer("request_id", id).
		Str("value", value.Dec()).
		Msg("ceiling raise requested")
	return id, nil
}

// ConfirmCeilingRaise applies a pending ceiling raise, with the same
// silent-drop behavior as ConfirmPrint when the new ceiling would overflow.
func (s *AuthorizationServiceImpl) ConfirmCeilingRaise(ctx context.Context, caller domain.Address, id domain.RequestID) error {
	if err := requireRole(ctx, s.roles, domain.RoleCustodian, caller); err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	req, err := s.consume(ctx, dbTx, id, domain.RequestKindCeilingRaise)
	if err != nil {
		return err
	}

	ledger, err := s.state.GetForUpdate(ctx, dbTx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock ledger state: %w", err))
	}
	newCeiling, ok := domain.CheckedAdd(ledger.Ceiling, req.Value)
	if !ok {
		if err := dbTx.Commit(ctx); err != nil {
			return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
		}
		s.log.Info().
			Stringer("request_id", id).
			Str("value", req.Value.Dec()).
			Msg("ceiling raise dropped: overflow")
		return nil
	}
	if err := s.state.SetCeiling(ctx, dbTx, newCeiling); err != nil {
		return apperror.InternalError(err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.events.emit(ctx, domain.NewRequestEvent(domain.EventCeilingRaiseConfirmed, id, caller))
	s.log.Info().
		Stringer("request_id", id).
		Str("ceiling", newCeiling.Dec()).
		Msg("ceiling raise confirmed")
	return nil
}

// --- Wipe ---

// RequestWipe records a pending multi-account clamped burn. Requestable by
// the custodian or the controller.
func (s *AuthorizationServiceImpl) RequestWipe(ctx context.Context, caller domain.Address, entries []domain.WipeEntry) (domain.RequestID, error) {
	var zero domain.RequestID
	if err := requireAnyRole(ctx, s.roles, caller, domain.RoleCustodian, domain.RoleController); err != nil {
		return zero, err
	}
	if len(entries) == 0 {
		return zero, apperror.ErrInvalidArgument("empty wipe list")
	}
	for _, e := range entries {
		if e.Account.IsZero() {
			return zero, apperror.ErrInvalidArgument("null account in wipe list")
		}
		if e.Amount == nil {
			return zero, apperror.ErrInvalidArgument("missing amount in wipe list")
		}
	}

	copied := make([]domain.WipeEntry, len(entries))
	for i, e := range entries {
		copied[i] = domain.WipeEntry{Account: e.Account, Amount: new(uint256.Int).Set(e.Amount)}
	}
	id, err := s.store(ctx, &domain.PendingRequest{
		Kind:      domain.RequestKindWipe,
		Requestor: caller,
		Wipes:     copied,
	})
	if err != nil {
		return zero, err
	}

	s.events.emit(ctx, domain.NewRequestEvent(domain.EventWipeLocked, id, caller))
	s.log.Info().
		Stringer("request_id", id).
		Int("accounts", len(entries)).
		Msg("wipe requested")
	return id, nil
}

// ConfirmWipe burns from each listed account, clamped to the balance held at
// confirm time. The per-account event reports requested, burned and
// resulting balance separately, so partial burns are visible.
func (s *AuthorizationServiceImpl) ConfirmWipe(ctx context.Context, caller domain.Address, id domain.RequestID) error {
	if err := requireRole(ctx, s.roles, domain.RoleCustodian, caller); err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	req, err := s.consume(ctx, dbTx, id, domain.RequestKindWipe)
	if err != nil {
		return err
	}

	ledger, err := s.state.GetForUpdate(ctx, dbTx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock ledger state: %w", err))
	}
	supply := new(uint256.Int).Set(ledger.Supply)
	events := make([]domain.Event, 0, len(req.Wipes)+1)

	for _, entry := range req.Wipes {
		balance, _, err := lockedBalance(ctx, dbTx, s.accounts, entry.Account)
		if err != nil {
			return err
		}
		burned := domain.MinAmount(entry.Amount, balance)
		resulting, _ := domain.CheckedSub(balance, burned)
		if _, ok := domain.CheckedSub(supply, burned); !ok {
			return apperror.InternalError(fmt.Errorf("supply underflow wiping %s", entry.Account))
		}
		supply.Sub(supply, burned)
		if err := s.accounts.UpsertBalance(ctx, dbTx, entry.Account, resulting); err != nil {
			return apperror.InternalError(err)
		}
		events = append(events, domain.NewWipeCompletedEvent(entry.Account, entry.Amount, burned, resulting))
	}

	if err := s.state.SetSupply(ctx, dbTx, supply); err != nil {
		return apperror.InternalError(err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.events.emit(ctx, events...)
	s.log.Info().
		Stringer("request_id", id).
		Int("accounts", len(req.Wipes)).
		Str("supply", supply.Dec()).
		Msg("wipe confirmed")
	return nil
}

// --- Forced transfer ---

// RequestForceTransfer records a pending custodial drain of up to value from
// one account to another. Requestable by the custodian or the controller.
func (s *AuthorizationServiceImpl) RequestForceTransfer(ctx context.Context, caller, from, to domain.Address, value *uint256.Int) (domain.RequestID, error) {
	var zero domain.RequestID
	if err := requireAnyRole(ctx, s.roles, caller, domain.RoleCustodian, domain.RoleController); err != nil {
		return zero, err
	}
	if from.IsZero() || to.IsZero() {
		return zero, apperror.ErrInvalidArgument("null address in forced transfer")
	}

	id, err := s.store(ctx, &domain.PendingRequest{
		Kind:      domain.RequestKindForceTransfer,
		Requestor: caller,
		From:      from,
		To:        to,
		Value:     new(uint256.Int).Set(value),
	})
	if err != nil {
		return zero, err
	}

	s.events.emit(ctx, domain.NewRequestEvent(domain.EventForceTransferRequested, id, caller))
	s.log.Info().
		Stringer("request_id", id).
		Stringer("from", from).
		Stringer("to", to).
		Str("value", value.Dec()).
		Msg("forced transfer requested")
	return id, nil
}

// ConfirmForceTransfer moves min(value, balance) from the source to the
// destination. The clamp is computed against the balance at confirm time,
// not at request time. Blocked flags are deliberately not consulted:
// forced transfers exist precisely to act on frozen accounts.
func (s *AuthorizationServiceImpl) ConfirmForceTransfer(ctx context.Context, caller domain.Address, id domain.RequestID) error {
	if err := requireRole(ctx, s.roles, domain.RoleCustodian, caller); err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	req, err := s.consume(ctx, dbTx, id, domain.RequestKindForceTransfer)
	if err != nil {
		return err
	}

	fromBalance, _, err := lockedBalance(ctx, dbTx, s.accounts, req.From)
	if err != nil {
		return err
	}
	moved := domain.MinAmount(req.Value, fromBalance)

	if req.From != req.To {
		newFrom, _ := domain.CheckedSub(fromBalance, moved)
		toBalance, _, err := lockedBalance(ctx, dbTx, s.accounts, req.To)
		if err != nil {
			return err
		}
		newTo, ok := domain.CheckedAdd(toBalance, moved)
		if !ok {
			return apperror.InternalError(fmt.Errorf("balance overflow crediting %s", req.To))
		}
		if err := s.accounts.UpsertBalance(ctx, dbTx, req.From, newFrom); err != nil {
			return apperror.InternalError(err)
		}
		if err := s.accounts.UpsertBalance(ctx, dbTx, req.To, newTo); err != nil {
			return apperror.InternalError(err)
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.events.emit(ctx, domain.Event{
		Kind:      domain.EventForceTransferCompleted,
		At:        nowUTC(),
		From:      addrPtr(req.From),
		To:        addrPtr(req.To),
		Value:     new(uint256.Int).Set(moved),
		Requested: new(uint256.Int).Set(req.Value),
		RequestID: &id,
	})
	s.log.Info().
		Stringer("request_id", id).
		Stringer("from", req.From).
		Stringer("to", req.To).
		Str("requested", req.Value.Dec()).
		Str("moved", moved.Dec()).
		Msg("forced transfer confirmed")
	return nil
}

// --- Hand-off ---

// RequestCustodianChange records a proposed custodian hand-off. Only the
// sitting custodian proposes a successor, and a zero proposal is rejected.
func (s *AuthorizationServiceImpl) RequestCustodianChange(ctx context.Context, caller, proposed domain.Address) (domain.RequestID, error) {
	return s.requestHandOff(ctx, caller, proposed, domain.RequestKindCustodianChange, domain.EventCustodianChangeRequested)
}

// ConfirmCustodianChange swaps the custodian role to the proposed address.
func (s *AuthorizationServiceImpl) ConfirmCustodianChange(ctx context.Context, caller domain.Address, id domain.RequestID) error {
	return s.confirmHandOff(ctx, caller, id, domain.RequestKindCustodianChange, domain.RoleCustodian, domain.EventCustodianChangeConfirmed)
}

// RequestImplementationChange records a proposed routing-layer swap.
func (s *AuthorizationServiceImpl) RequestImplementationChange(ctx context.Context, caller, proposed domain.Address) (domain.RequestID, error) {
	return s.requestHandOff(ctx, caller, proposed, domain.RequestKindImplementationChange, domain.EventImplChangeRequested)
}

// ConfirmImplementationChange swaps the implementation role.
func (s *AuthorizationServiceImpl) ConfirmImplementationChange(ctx context.Context, caller domain.Address, id domain.RequestID) error {
	return s.confirmHandOff(ctx, caller, id, domain.RequestKindImplementationChange, domain.RoleImplementation, domain.EventImplChangeConfirmed)
}

func (s *AuthorizationServiceImpl) requestHandOff(ctx context.Context, caller, proposed domain.Address, kind domain.RequestKind, eventKind domain.EventKind) (domain.RequestID, error) {
	var zero domain.RequestID
	if err := requireRole(ctx, s.roles, domain.RoleCustodian, caller); err != nil {
		return zero, err
	}
	if proposed.IsZero() {
		return zero, apperror.ErrInvalidArgument("null proposed address")
	}

	id, err := s.store(ctx, &domain.PendingRequest{
		Kind:      kind,
		Requestor: caller,
		Proposed:  proposed,
	})
	if err != nil {
		return zero, err
	}

	s.events.emit(ctx, domain.NewRequestEvent(eventKind, id, caller))
	s.log.Info().
		Stringer("request_id", id).
		Stringer("proposed", proposed).
		Str("kind", string(kind)).
		Msg("hand-off requested")
	return id, nil
}

func (s *AuthorizationServiceImpl) confirmHandOff(ctx context.Context, caller domain.Address, id domain.RequestID, kind domain.RequestKind, role domain.Role, eventKind domain.EventKind) error {
	if err := requireRole(ctx, s.roles, domain.RoleCustodian, caller); err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	req, err := s.consume(ctx, dbTx, id, kind)
	if err != nil {
		return err
	}
	// A zero proposal is the no-proposal sentinel and never confirmable.
	if req.Proposed.IsZero() {
		return apperror.ErrUnknownRequest()
	}

	if _, err := s.roles.GetRolesForUpdate(ctx, dbTx); err != nil {
		return apperror.InternalError(fmt.Errorf("lock roles: %w", err))
	}
	if err := s.roles.SetRole(ctx, dbTx, role, req.Proposed); err != nil {
		return apperror.InternalError(err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.events.emit(ctx, domain.Event{
		Kind:      eventKind,
		At:        nowUTC(),
		Account:   addrPtr(req.Proposed),
		RequestID: &id,
		Role:      role,
	})
	s.log.Info().
		Stringer("request_id", id).
		Stringer("holder", req.Proposed).
		Str("role", string(role)).
		Msg("hand-off confirmed")
	return nil
}
