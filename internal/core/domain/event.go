package domain

import (
	"time"

	"github.com/holiman/uint256"
)

// EventKind names a ledger notification.
type EventKind string

const (
	EventTransfer                 EventKind = "TRANSFER"
	EventApproval                 EventKind = "APPROVAL"
	EventPrintLocked              EventKind = "PRINT_LOCKED"
	EventPrintConfirmed           EventKind = "PRINT_CONFIRMED"
	EventWipeLocked               EventKind = "WIPE_LOCKED"
	EventWipeCompleted            EventKind = "WIPE_COMPLETED"
	EventCeilingRaiseLocked       EventKind = "CEILING_RAISE_LOCKED"
	EventCeilingRaiseConfirmed    EventKind = "CEILING_RAISE_CONFIRMED"
	EventCeilingLowered           EventKind = "CEILING_LOWERED"
	EventBurn                     EventKind = "BURN"
	EventWalletBlocked            EventKind = "WALLET_BLOCKED"
	EventWalletUnblocked          EventKind = "WALLET_UNBLOCKED"
	EventForceTransferRequested   EventKind = "FORCE_TRANSFER_REQUESTED"
	EventForceTransferCompleted   EventKind = "FORCE_TRANSFER_COMPLETED"
	EventCustodianChangeRequested EventKind = "CUSTODIAN_CHANGE_REQUESTED"
	EventCustodianChangeConfirmed EventKind = "CUSTODIAN_CHANGE_CONFIRMED"
	EventImplChangeRequested      EventKind = "IMPLEMENTATION_CHANGE_REQUESTED"
	EventImplChangeConfirmed      EventKind = "IMPLEMENTATION_CHANGE_CONFIRMED"
	EventSweepDelegated           EventKind = "SWEEP_DELEGATED"
	EventRoleAssigned             EventKind = "ROLE_ASSIGNED"
)

// Event is the structured notification emitted after every successful
// mutation. Only the fields relevant to Kind are populated.
type Event struct {
	Kind EventKind `json:"kind"`
	At   time.Time `json:"at"`

	From    *Address `json:"from,omitempty"`
	To      *Address `json:"to,omitempty"`
	Owner   *Address `json:"owner,omitempty"`
	Spender *Address `json:"spender,omitempty"`
	Account *Address `json:"account,omitempty"`

	Value *uint256.Int `json:"value,omitempty"`

	// Wipe reporting: the requested amount, the amount actually burned and
	// the balance left behind are reported distinctly.
	Requested        *uint256.Int `json:"requested,omitempty"`
	Burned           *uint256.Int `json:"burned,omitempty"`
	ResultingBalance *uint256.Int `json:"resulting_balance,omitempty"`

	RequestID *RequestID `json:"request_id,omitempty"`
	Role      Role       `json:"role,omitempty"`
}

// addr returns a pointer copy for event fields.
func addr(a Address) *Address {
	c := a
	return &c
}

// NewTransferEvent builds the notification for a balance movement. Mint
// notifications use the zero address as from.
func NewTransferEvent(from, to Address, value *uint256.Int) Event {
	return Event{
		Kind:  EventTransfer,
		At:    time.Now().UTC(),
		From:  addr(from),
		To:    addr(to),
		Value: new(uint256.Int).Set(value),
	}
}

// NewApprovalEvent builds the notification for an allowance change.
func NewApprovalEvent(owner, spender Address, value *uint256.Int) Event {
	return Event{
		Kind:    EventApproval,
		At:      time.Now().UTC(),
		Owner:   addr(owner),
		Spender: addr(spender),
		Value:   new(uint256.Int).Set(value),
	}
}

// NewWipeCompletedEvent reports a clamped burn.
func NewWipeCompletedEvent(account Address, requested, burned, resulting *uint256.Int) Event {
	return Event{
		Kind:             EventWipeCompleted,
		At:               time.Now().UTC(),
		Account:          addr(account),
		Requested:        new(uint256.Int).Set(requested),
		Burned:           new(uint256.Int).Set(burned),
		ResultingBalance: new(uint256.Int).Set(resulting),
	}
}

// NewRequestEvent builds a locked/requested notification carrying the id.
func NewRequestEvent(kind EventKind, id RequestID, requestor Address) Event {
	idCopy := id
	return Event{
		Kind:      kind,
		At:        time.Now().UTC(),
		Account:   addr(requestor),
		RequestID: &idCopy,
	}
}
