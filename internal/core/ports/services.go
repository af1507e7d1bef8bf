package ports

import (
	"context"
	"time"

	"custody-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// --- Engine Ports (Business Logic) ---

// TransferService is the direct-path engine: operations that need no
// custodian confirmation. Every method takes the initiating identity
// explicitly; the routing layer resolves it, the engine never infers it.
type TransferService interface {
	Transfer(ctx context.Context, sender, to domain.Address, value *uint256.Int) error
	TransferFrom(ctx context.Context, spender, from, to domain.Address, value *uint256.Int) error
	Approve(ctx context.Context, owner, spender domain.Address, value *uint256.Int) error
	IncreaseApproval(ctx context.Context, owner, spender domain.Address, delta *uint256.Int) error
	DecreaseApproval(ctx context.Context, owner, spender domain.Address, delta *uint256.Int) error
	// BatchTransfer moves value to each destination in sequence, atomically:
	// the first shortfall fails the whole batch.
	BatchTransfer(ctx context.Context, sender domain.Address, destinations []domain.Address, values []*uint256.Int) error
	Burn(ctx context.Context, sender domain.Address, value *uint256.Int) error
	// BurnFrom is the custodian-driven clamped burn: it burns at most the
	// account's balance and returns the amount actually burned.
	BurnFrom(ctx context.Context, caller, from domain.Address, value *uint256.Int) (*uint256.Int, error)
}

// AuthorizationService is the two-phase request/confirm state machine.
// Confirm methods re-read current state: balances may have moved between
// request and confirm, so clamps are computed at confirm time.
type AuthorizationService interface {
	RequestPrint(ctx context.Context, caller, receiver domain.Address, value *uint256.Int) (domain.RequestID, error)
	ConfirmPrint(ctx context.Context, caller domain.Address, id domain.RequestID) error

	RequestCeilingRaise(ctx context.Context, caller domain.Address, value *uint256.Int) (domain.RequestID, error)
	ConfirmCeilingRaise(ctx context.Context, caller domain.Address, id domain.RequestID) error

	RequestWipe(ctx context.Context, caller domain.Address, entries []domain.WipeEntry) (domain.RequestID, error)
	ConfirmWipe(ctx context.Context, caller domain.Address, id domain.RequestID) error

	RequestForceTransfer(ctx context.Context, caller, from, to domain.Address, value *uint256.Int) (domain.RequestID, error)
	ConfirmForceTransfer(ctx context.Context, caller domain.Address, id domain.RequestID) error

	RequestCustodianChange(ctx context.Context, caller, proposed domain.Address) (domain.RequestID, error)
	ConfirmCustodianChange(ctx context.Context, caller domain.Address, id domain.RequestID) error

	RequestImplementationChange(ctx context.Context, caller, proposed domain.Address) (domain.RequestID, error)
	ConfirmImplementationChange(ctx context.Context, caller domain.Address, id domain.RequestID) error
}

// SweepResult reports what a sweep call actually moved.
type SweepResult struct {
	// Delegated lists signers newly or already marked as delegated
	// (EnableSweep) or replayed accounts (ReplaySweep) that were drained
	// or confirmed empty.
	Delegated []domain.Address
	// Skipped counts malformed signatures / non-delegated accounts.
	Skipped int
	// Total is the aggregate amount credited to the destination.
	Total *uint256.Int
}

// SweepService is the delegated-sweep engine.
type SweepService interface {
	// DelegationDigest is the fixed message accounts sign to delegate
	// transfer control, derived once from the instance identity.
	DelegationDigest() [32]byte
	EnableSweep(ctx context.Context, caller domain.Address, signatures [][]byte, destination domain.Address) (*SweepResult, error)
	ReplaySweep(ctx context.Context, caller domain.Address, accounts []domain.Address, destination domain.Address) (*SweepResult, error)
}

// MintingService is the bounded minting controller.
type MintingService interface {
	LimitedMint(ctx context.Context, caller, receiver domain.Address, value *uint256.Int) error
	LowerCeiling(ctx context.Context, caller domain.Address, amount *uint256.Int) error
}

// AdminService covers the administrative surface: wallet blocking and
// direct role assignment.
type AdminService interface {
	SetBlocked(ctx context.Context, caller, account domain.Address, blocked bool) error
	// AssignRole sets controller or sweeper directly (custodian only).
	// Custodian and implementation change only through the two-phase flow.
	AssignRole(ctx context.Context, caller domain.Address, role domain.Role, address domain.Address) error
	AddSigner(ctx context.Context, caller, signer domain.Address) error
	RemoveSigner(ctx context.Context, caller, signer domain.Address) error
}

// QueryService is the read-only surface.
type QueryService interface {
	TotalSupply(ctx context.Context) (*uint256.Int, error)
	Ceiling(ctx context.Context) (*uint256.Int, error)
	BalanceOf(ctx context.Context, address domain.Address) (*uint256.Int, error)
	AllowanceOf(ctx context.Context, owner, spender domain.Address) (*uint256.Int, error)
	Roles(ctx context.Context) (domain.RoleSet, error)
	PendingRequests(ctx context.Context) ([]domain.PendingRequest, error)
}

// --- External Collaborators ---

// SignatureRecoverer is the opaque signature-recovery primitive: given the
// delegation digest and a signature, it returns the signing identity, or
// ok=false for anything malformed. The sweep engine treats ok=false as a
// silent skip, never a failure.
type SignatureRecoverer interface {
	Recover(digest [32]byte, signature []byte) (domain.Address, bool)
}

// EventSink receives a structured notification after every successful
// mutation. Delivery is best-effort: a sink error never unwinds a committed
// mutation.
type EventSink interface {
	Publish(ctx context.Context, ev domain.Event) error
}

// --- API Plumbing ---

// EncryptionService handles AES-256-GCM encryption of operator secrets.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing of API requests.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations for the query surface.
type TokenService interface {
	Generate(operatorID uuid.UUID, address domain.Address) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	OperatorID uuid.UUID
	Address    domain.Address
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, scope string, nonce string, ttl time.Duration) (bool, error)
}

// AuthService defines operator onboarding and login.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}

// RegisterRequest holds input for operator registration.
type RegisterRequest struct {
	Username string
	Password string
}

// RegisterResponse holds the registration result shown once.
type RegisterResponse struct {
	OperatorID uuid.UUID
	Address    domain.Address
	SecretKey  string // Plaintext, shown only at registration
}
