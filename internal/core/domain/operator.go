package domain

import (
	"time"

	"github.com/google/uuid"
)

// Operator is an onboarded API caller: an account holder (or role holder)
// with credentials for the routing layer. The ledger itself only ever sees
// the operator's Address.
type Operator struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Argon2id
	Address      Address   `json:"address"`
	SecretKeyEnc string    `json:"-"` // AES-256-GCM encrypted HMAC secret
	CreatedAt    time.Time `json:"created_at"`
}
