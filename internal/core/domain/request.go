package domain

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/holiman/uint256"
)

// RequestKind discriminates the pending-request union.
type RequestKind string

const (
	RequestKindPrint                RequestKind = "PRINT"
	RequestKindCeilingRaise         RequestKind = "CEILING_RAISE"
	RequestKindWipe                 RequestKind = "WIPE"
	RequestKindForceTransfer        RequestKind = "FORCE_TRANSFER"
	RequestKindCustodianChange      RequestKind = "CUSTODIAN_CHANGE"
	RequestKindImplementationChange RequestKind = "IMPLEMENTATION_CHANGE"
)

// RequestID is the unique handle correlating a request call with its confirm.
type RequestID [sha256.Size]byte

// NewRequestID derives a request id from the registry's monotonic counter,
// the requestor and the ledger instance id. The counter guarantees lifetime
// uniqueness; hashing it with contextual entropy keeps ids unpredictable.
func NewRequestID(counter uint64, requestor Address, instanceID string) RequestID {
	h := sha256.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], counter)
	h.Write(buf[:])
	h.Write(requestor[:])
	h.Write([]byte(instanceID))
	var id RequestID
	copy(id[:], h.Sum(nil))
	return id
}

// ParseRequestID decodes a 0x-prefixed or bare hex string into a RequestID.
func ParseRequestID(s string) (RequestID, error) {
	var id RequestID
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("decoding request id %q: %w", s, err)
	}
	if len(raw) != len(id) {
		return id, fmt.Errorf("request id must be %d bytes, got %d", len(id), len(raw))
	}
	copy(id[:], raw)
	return id, nil
}

// String returns the 0x-prefixed lowercase hex form.
func (id RequestID) String() string {
	return "0x" + hex.EncodeToString(id[:])
}

// MarshalText implements encoding.TextMarshaler.
func (id RequestID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *RequestID) UnmarshalText(text []byte) error {
	parsed, err := ParseRequestID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// WipeEntry is one (account, amount) pair inside a wipe request.
type WipeEntry struct {
	Account Address      `json:"account"`
	Amount  *uint256.Int `json:"amount"`
}

// PendingRequest is the tagged union stored by the lock-request registry.
// Exactly one payload group is populated, determined by Kind. A pending
// request has no expiry: it stays confirmable until consumed.
type PendingRequest struct {
	ID        RequestID   `json:"id"`
	Kind      RequestKind `json:"kind"`
	Requestor Address     `json:"requestor"`
	CreatedAt time.Time   `json:"created_at"`

	// Print / CeilingRaise
	Receiver Address      `json:"receiver,omitempty"`
	Value    *uint256.Int `json:"value,omitempty"`

	// Wipe
	Wipes []WipeEntry `json:"wipes,omitempty"`

	// ForceTransfer
	From Address `json:"from,omitempty"`
	To   Address `json:"to,omitempty"`

	// CustodianChange / ImplementationChange
	Proposed Address `json:"proposed,omitempty"`
}
