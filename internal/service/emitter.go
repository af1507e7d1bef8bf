package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/core/ports"
	"custody-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// emitter fans a notification out to the live sink and the durable audit
// trail. Delivery is best-effort on both legs: the mutation has already
// committed, so a sink failure is logged and swallowed, never surfaced.
type emitter struct {
	sink  ports.EventSink
	audit ports.EventRepository
	log   zerolog.Logger
}

func newEmitter(sink ports.EventSink, audit ports.EventRepository, log zerolog.Logger) *emitter {
	return &emitter{sink: sink, audit: audit, log: log}
}

// NewEmitter builds the shared event emitter passed to every engine
// constructor.
func NewEmitter(sink ports.EventSink, audit ports.EventRepository, log zerolog.Logger) *emitter {
	return newEmitter(sink, audit, log)
}

func (e *emitter) emit(ctx context.Context, events ...domain.Event) {
	for _, ev := range events {
		if e.audit != nil {
			if err := e.audit.Append(ctx, ev); err != nil {
				e.log.Warn().Err(err).Str("kind", string(ev.Kind)).Msg("failed to append event to audit trail")
			}
		}
		if err := e.sink.Publish(ctx, ev); err != nil {
			e.log.Warn().Err(err).Str("kind", string(ev.Kind)).Msg("failed to publish event")
		}
	}
}

func nowUTC() time.Time { return time.Now().UTC() }

func addrPtr(a domain.Address) *domain.Address {
	c := a
	return &c
}

// requireRole fails with Unauthorized unless caller holds the role.
func requireRole(ctx context.Context, roles ports.RoleRepository, role domain.Role, caller domain.Address) error {
	set, err := roles.GetRoles(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load roles: %w", err))
	}
	holder := set.Holder(role)
	if holder.IsZero() || holder != caller {
		return apperror.ErrUnauthorized(string(role))
	}
	return nil
}

// requireAnyRole fails with Unauthorized unless caller holds one of the roles.
func requireAnyRole(ctx context.Context, roles ports.RoleRepository, caller domain.Address, wanted ...domain.Role) error {
	set, err := roles.GetRoles(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load roles: %w", err))
	}
	names := make([]string, 0, len(wanted))
	for _, role := range wanted {
		holder := set.Holder(role)
		if !holder.IsZero() && holder == caller {
			return nil
		}
		names = append(names, string(role))
	}
	return apperror.ErrUnauthorized(strings.Join(names, " or "))
}

// requireUnblocked fails with AccountBlocked if the address has a blocked
// account row. An address with no row has never been touched and is not
// blocked.
func requireUnblocked(ctx context.Context, accounts ports.AccountRepository, address domain.Address) error {
	acct, err := accounts.Get(ctx, address)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load account %s: %w", address, err))
	}
	if acct != nil && acct.Blocked {
		return apperror.ErrAccountBlocked()
	}
	return nil
}
