package domain

import (
	"time"

	"github.com/holiman/uint256"
)

// Account is one row of the balance ledger.
type Account struct {
	Address   Address      `json:"address"`
	Balance   *uint256.Int `json:"balance"`
	Blocked   bool         `json:"blocked"`
	Swept     bool         `json:"swept"` // irrevocably delegated to the sweeper
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Allowance is the remaining spend authorization for a (owner, spender) pair.
type Allowance struct {
	Owner   Address      `json:"owner"`
	Spender Address      `json:"spender"`
	Amount  *uint256.Int `json:"amount"`
}

// LedgerState is the singleton supply/ceiling row. RequestCounter feeds
// request-id derivation and only ever increases.
type LedgerState struct {
	Supply         *uint256.Int `json:"supply"`
	Ceiling        *uint256.Int `json:"ceiling"`
	RequestCounter uint64       `json:"request_counter"`
}
