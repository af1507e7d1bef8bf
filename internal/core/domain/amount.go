package domain

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Ledger amounts are 256-bit unsigned integers. Every mutation goes through
// the checked helpers below; nothing in the ledger is allowed to wrap.

// NewAmount returns an amount from a uint64, convenient in tests.
func NewAmount(v uint64) *uint256.Int {
	return uint256.NewInt(v)
}

// ParseAmount parses a decimal string into an amount.
func ParseAmount(s string) (*uint256.Int, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return v, nil
}

// CheckedAdd returns a+b and reports whether the sum is representable.
func CheckedAdd(a, b *uint256.Int) (*uint256.Int, bool) {
	sum, overflow := new(uint256.Int).AddOverflow(a, b)
	return sum, !overflow
}

// CheckedSub returns a-b and reports whether the difference is representable.
func CheckedSub(a, b *uint256.Int) (*uint256.Int, bool) {
	diff, underflow := new(uint256.Int).SubOverflow(a, b)
	return diff, !underflow
}

// MinAmount returns the smaller of a and b. Clamped burns and drains use it to
// compute the effective amount at confirm time.
func MinAmount(a, b *uint256.Int) *uint256.Int {
	if a.Cmp(b) <= 0 {
		return new(uint256.Int).Set(a)
	}
	return new(uint256.Int).Set(b)
}
