package service

import (
	"custody-ledger/internal/core/domain"

	"github.com/btcsuite/btcd/btcec"
)

// CompactRecoverer implements ports.SignatureRecoverer over 65-byte compact
// ECDSA signatures on the secp256k1 curve. The recovered identity is the
// address derived from the uncompressed public key. Anything that fails to
// recover reports ok=false; callers decide whether that is a skip or a
// failure.
type CompactRecoverer struct{}

// NewCompactRecoverer creates a new CompactRecoverer.
func NewCompactRecoverer() *CompactRecoverer {
	return &CompactRecoverer{}
}

// Recover returns the address that signed digest, or ok=false if the
// signature is malformed or does not recover to a valid public key.
func (r *CompactRecoverer) Recover(digest [32]byte, signature []byte) (domain.Address, bool) {
	pub, _, err := btcec.RecoverCompact(btcec.S256(), signature, digest[:])
	if err != nil {
		return domain.ZeroAddress, false
	}
	return domain.AddressFromPublicKey(pub.SerializeUncompressed()), true
}
