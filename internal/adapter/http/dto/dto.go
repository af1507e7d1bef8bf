package dto

// RegisterRequest is the request body for operator registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the request body for operator login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
// The secret key is shown here and never again.
type RegisterResponse struct {
	OperatorID string `json:"operator_id"`
	Address    string `json:"address"`
	SecretKey  string `json:"secret_key"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// TransferRequest is the request body for a direct transfer.
type TransferRequest struct {
	To    string `json:"to" binding:"required,ledger_address"`
	Value string `json:"value" binding:"required,ledger_amount"`
}

// TransferFromRequest is the request body for an allowance-backed transfer.
type TransferFromRequest struct {
	From  string `json:"from" binding:"required,ledger_address"`
	To    string `json:"to" binding:"required,ledger_address"`
	Value string `json:"value" binding:"required,ledger_amount"`
}

// ApproveRequest sets an allowance absolutely.
type ApproveRequest struct {
	Spender string `json:"spender" binding:"required,ledger_address"`
	Value   string `json:"value" binding:"required,ledger_amount"`
}

// AdjustApprovalRequest raises or lowers an allowance relatively.
type AdjustApprovalRequest struct {
	Spender string `json:"spender" binding:"required,ledger_address"`
	Delta   string `json:"delta" binding:"required,ledger_amount"`
}

// BatchTransferRequest is the request body for a multi-destination transfer.
type BatchTransferRequest struct {
	Destinations []string `json:"destinations" binding:"required,min=1,max=100,dive,ledger_address"`
	Values       []string `json:"values" binding:"required,min=1,max=100,dive,ledger_amount"`
}

// BurnRequest destroys value from the caller's own balance.
type BurnRequest struct {
	Value string `json:"value" binding:"required,ledger_amount"`
}

// BurnFromRequest is the custodian's clamped burn of another account.
type BurnFromRequest struct {
	From  string `json:"from" binding:"required,ledger_address"`
	Value string `json:"value" binding:"required,ledger_amount"`
}

// PrintRequest asks for a pending supply increase.
type PrintRequest struct {
	Receiver string `json:"receiver" binding:"required,ledger_address"`
	Value    string `json:"value" binding:"required,ledger_amount"`
}

// CeilingRaiseRequest asks for a pending minting-ceiling increase.
type CeilingRaiseRequest struct {
	Value string `json:"value" binding:"required,ledger_amount"`
}

// WipeEntryDTO is one account/amount pair in a wipe request.
type WipeEntryDTO struct {
	Account string `json:"account" binding:"required,ledger_address"`
	Amount  string `json:"amount" binding:"required,ledger_amount"`
}

// WipeRequest asks for a pending multi-account clamped burn.
type WipeRequest struct {
	Entries []WipeEntryDTO `json:"entries" binding:"required,min=1,max=100,dive"`
}

// ForceTransferRequest asks for a pending custodial drain.
type ForceTransferRequest struct {
	From  string `json:"from" binding:"required,ledger_address"`
	To    string `json:"to" binding:"required,ledger_address"`
	Value string `json:"value" binding:"required,ledger_amount"`
}

// HandOffRequest proposes a custodian or implementation successor.
type HandOffRequest struct {
	Proposed string `json:"proposed" binding:"required,ledger_address"`
}

// ConfirmRequest confirms a pending request by id.
type ConfirmRequest struct {
	RequestID string `json:"request_id" binding:"required"`
}

// RequestIDResponse returns the id of a newly stored pending request.
type RequestIDResponse struct {
	RequestID string `json:"request_id"`
}

// EnableSweepRequest submits delegation signatures and a destination.
// Signatures are base64-encoded 65-byte compact signatures.
type EnableSweepRequest struct {
	Signatures  []string `json:"signatures" binding:"required,min=1,max=100,dive,base64"`
	Destination string   `json:"destination" binding:"required,ledger_address"`
}

// ReplaySweepRequest drains previously delegated accounts again.
type ReplaySweepRequest struct {
	Accounts    []string `json:"accounts" binding:"required,min=1,max=100,dive,ledger_address"`
	Destination string   `json:"destination" binding:"required,ledger_address"`
}

// SweepResponse reports the outcome of a sweep call.
type SweepResponse struct {
	Delegated []string `json:"delegated"`
	Skipped   int      `json:"skipped"`
	Total     string   `json:"total"`
}

// MintRequest is the controller's bounded mint.
type MintRequest struct {
	Receiver string `json:"receiver" binding:"required,ledger_address"`
	Value    string `json:"value" binding:"required,ledger_amount"`
}

// LowerCeilingRequest reduces the minting ceiling.
type LowerCeilingRequest struct {
	Amount string `json:"amount" binding:"required,ledger_amount"`
}

// SetBlockedRequest toggles an account's blocked flag.
type SetBlockedRequest struct {
	Account string `json:"account" binding:"required,ledger_address"`
	Blocked bool   `json:"blocked"`
}

// AssignRoleRequest sets the controller or sweeper role.
type AssignRoleRequest struct {
	Role    string `json:"role" binding:"required,oneof=controller sweeper"`
	Address string `json:"address" binding:"required,ledger_address"`
}

// SignerRequest adds or removes a signer-set member.
type SignerRequest struct {
	Signer string `json:"signer" binding:"required,ledger_address"`
}

// AmountResponse wraps a single decimal amount.
type AmountResponse struct {
	Value string `json:"value"`
}

// BalanceResponse reports an address's balance.
type BalanceResponse struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
}

// AllowanceResponse reports a (owner, spender) allowance.
type AllowanceResponse struct {
	Owner     string `json:"owner"`
	Spender   string `json:"spender"`
	Allowance string `json:"allowance"`
}

// BurnedResponse reports the amount actually destroyed by a clamped burn.
type BurnedResponse struct {
	Burned string `json:"burned"`
}

// RolesResponse reports the current role assignments.
type RolesResponse struct {
	Custodian      string `json:"custodian"`
	Controller     string `json:"controller"`
	Sweeper        string `json:"sweeper"`
	Implementation string `json:"implementation"`
}

// PendingRequestResponse describes one stored pending request.
type PendingRequestResponse struct {
	RequestID string `json:"request_id"`
	Kind      string `json:"kind"`
	Requestor string `json:"requestor"`
	CreatedAt string `json:"created_at"`
}

// DelegationDigestResponse returns the message accounts sign to delegate.
type DelegationDigestResponse struct {
	Digest string `json:"digest"`
}
