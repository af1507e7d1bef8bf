package domain

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// AddressLength is the byte length of a ledger address.
const AddressLength = 20

// Address identifies an account on the ledger. The zero value is the null
// address sentinel: it is never a valid party to any operation and doubles as
// the "from" of mint notifications.
type Address [AddressLength]byte

// ZeroAddress is the null address sentinel.
var ZeroAddress Address

// ParseAddress decodes a 0x-prefixed or bare hex string into an Address.
func ParseAddress(s string) (Address, error) {
	var a Address
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return a, fmt.Errorf("decoding address %q: %w", s, err)
	}
	if len(raw) != AddressLength {
		return a, fmt.Errorf("address must be %d bytes, got %d", AddressLength, len(raw))
	}
	copy(a[:], raw)
	return a, nil
}

// AddressFromPublicKey derives an address from a serialized public key:
// the trailing 20 bytes of its SHA-256 digest.
func AddressFromPublicKey(pub []byte) Address {
	var a Address
	sum := sha256.Sum256(pub)
	copy(a[:], sum[sha256.Size-AddressLength:])
	return a
}

// NewRandomAddress generates a fresh random address for operator onboarding.
func NewRandomAddress() (Address, error) {
	var a Address
	if _, err := rand.Read(a[:]); err != nil {
		return a, fmt.Errorf("generating address: %w", err)
	}
	return a, nil
}

// IsZero reports whether a is the null address sentinel.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// String returns the 0x-prefixed lowercase hex form.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
