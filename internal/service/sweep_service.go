package service

import (
	"context"
	"crypto/sha256"
	"fmt"

	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/core/ports"
	"custody-ledger/pkg/apperror"

	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// sweepDelegationPrefix versions the delegation message. Changing it
// invalidates every outstanding signature, so bump only with a migration.
const sweepDelegationPrefix = "custody-ledger/sweep-delegation/v1|"

// SweepServiceImpl implements ports.SweepService: delegated drains of
// accounts whose holders signed the fixed delegation digest. Delegation is
// durable and one-way; once an account is marked swept the sweeper can drain
// it again at any time without a fresh signature.
type SweepServiceImpl struct {
	accounts   ports.AccountRepository
	roles      ports.RoleRepository
	transactor ports.DBTransactor
	recoverer  ports.SignatureRecoverer
	events     *emitter
	log        zerolog.Logger
	digest     [32]byte
}

// NewSweepService creates a new SweepServiceImpl. The delegation digest is
// derived once from the ledger instance id so signatures cannot be replayed
// across instances.
func NewSweepService(
	accounts ports.AccountRepository,
	roles ports.RoleRepository,
	transactor ports.DBTransactor,
	recoverer ports.SignatureRecoverer,
	events *emitter,
	log zerolog.Logger,
	instanceID string,
) *SweepServiceImpl {
	return &SweepServiceImpl{
		accounts:   accounts,
		roles:      roles,
		transactor: transactor,
		recoverer:  recoverer,
		events:     events,
		log:        log,
		digest:     sha256.Sum256([]byte(sweepDelegationPrefix + instanceID)),
	}
}

// DelegationDigest returns the fixed message account holders sign to
// delegate transfer control to the sweeper.
func (s *SweepServiceImpl) DelegationDigest() [32]byte {
	return s.digest
}

// EnableSweep recovers a signer from each signature, marks the signer as
// delegated and drains its balance to the destination. Malformed signatures
// and blocked or zero signers are skipped without failing the call; the
// swept mark is idempotent. All drained value lands on the destination in a
// single aggregate credit.
func (s *SweepServiceImpl) EnableSweep(ctx context.Context, caller domain.Address, signatures [][]byte, destination domain.Address) (*ports.SweepResult, error) {
	if err := requireRole(ctx, s.roles, domain.RoleSweeper, caller); err != nil {
		return nil, err
	}
	if destination.IsZero() {
		return nil, apperror.ErrInvalidArgument("null destination address")
	}
	if err := requireUnblocked(ctx, s.accounts, destination); err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	result := &ports.SweepResult{Total: uint256.NewInt(0)}
	events := make([]domain.Event, 0, len(signatures))

	for _, sig := range signatures {
		signer, ok := s.recoverer.Recover(s.digest, sig)
		if !ok || signer.IsZero() {
			result.Skipped++
			continue
		}

		balance, blocked, err := lockedBalance(ctx, dbTx, s.accounts, signer)
		if err != nil {
			return nil, err
		}
		if blocked {
			result.Skipped++
			continue
		}

		if err := s.accounts.SetSwept(ctx, dbTx, signer); err != nil {
			return nil, apperror.InternalError(err)
		}
		events = append(events, domain.Event{
			Kind:    domain.EventSweepDelegated,
			At:      nowUTC(),
			Account: addrPtr(signer),
		})
		result.Delegated = append(result.Delegated, signer)

		if signer == destination || balance.IsZero() {
			continue
		}
		if err := s.accounts.UpsertBalance(ctx, dbTx, signer, uint256.NewInt(0)); err != nil {
			return nil, apperror.InternalError(err)
		}
		result.Total.Add(result.Total, balance)
		events = append(events, domain.NewTransferEvent(signer, destination, balance))
	}

	if err := s.creditDestination(ctx, dbTx, destination, result.Total); err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.events.emit(ctx, events...)
	s.log.Info().
		Stringer("destination", destination).
		Int("delegated", len(result.Delegated)).
		Int("skipped", result.Skipped).
		Str("total", result.Total.Dec()).
		Msg("sweep enabled")
	return result, nil
}

// ReplaySweep drains previously delegated accounts again. A blocked account
// anywhere in the list fails the whole call; an account that never
// delegated is skipped silently.
func (s *SweepServiceImpl) ReplaySweep(ctx context.Context, caller domain.Address, accounts []domain.Address, destination domain.Address) (*ports.SweepResult, error) {
	if err := requireRole(ctx, s.roles, domain.RoleSweeper, caller); err != nil {
		return nil, err
	}
	if destination.IsZero() {
		return nil, apperror.ErrInvalidArgument("null destination address")
	}
	if err := requireUnblocked(ctx, s.accounts, destination); err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	result := &ports.SweepResult{Total: uint256.NewInt(0)}
	events := make([]domain.Event, 0, len(accounts))

	for _, account := range accounts {
		acct, err := s.accounts.GetForUpdate(ctx, dbTx, account)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lock account %s: %w", account, err))
		}
		if acct != nil && acct.Blocked {
			return nil, apperror.ErrAccountBlocked()
		}
		if acct == nil || !acct.Swept {
			result.Skipped++
			continue
		}

		result.Delegated = append(result.Delegated, account)
		if account == destination || acct.Balance.IsZero() {
			continue
		}
		if err := s.accounts.UpsertBalance(ctx, dbTx, account, uint256.NewInt(0)); err != nil {
			return nil, apperror.InternalError(err)
		}
		result.Total.Add(result.Total, acct.Balance)
		events = append(events, domain.NewTransferEvent(account, destination, acct.Balance))
	}

	if err := s.creditDestination(ctx, dbTx, destination, result.Total); err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.events.emit(ctx, events...)
	s.log.Info().
		Stringer("destination", destination).
		Int("replayed", len(result.Delegated)).
		Int("skipped", result.Skipped).
		Str("total", result.Total.Dec()).
		Msg("sweep replayed")
	return result, nil
}

// creditDestination applies the aggregate credit once, after all drains.
// Re-reading the destination here keeps a destination that was itself
// drained from losing the sweep total.
func (s *SweepServiceImpl) creditDestination(ctx context.Context, dbTx pgx.Tx, destination domain.Address, total *uint256.Int) error {
	if total.IsZero() {
		return nil
	}
	balance, _, err := lockedBalance(ctx, dbTx, s.accounts, destination)
	if err != nil {
		return err
	}
	credited, ok := domain.CheckedAdd(balance, total)
	if !ok {
		return apperror.InternalError(fmt.Errorf("balance overflow crediting %s", destination))
	}
	if err := s.accounts.UpsertBalance(ctx, dbTx, destination, credited); err != nil {
		return apperror.InternalError(err)
	}
	return nil
}
