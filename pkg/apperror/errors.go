package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Ledger Business Logic (LEDGER) ----

func ErrInvalidArgument(message string) *AppError {
	return New("LEDGER_001", message, http.StatusBadRequest)
}

func ErrInsufficientBalance() *AppError {
	return New("LEDGER_002", "Insufficient account balance", http.StatusUnprocessableEntity)
}

func ErrInsufficientAllowance() *AppError {
	return New("LEDGER_003", "Insufficient spend allowance", http.StatusUnprocessableEntity)
}

func ErrAllowanceOverflow() *AppError {
	return New("LEDGER_004", "Allowance increase would overflow", http.StatusUnprocessableEntity)
}

func ErrAllowanceUnderflow() *AppError {
	return New("LEDGER_005", "Allowance decrease would underflow", http.StatusUnprocessableEntity)
}

func ErrCeilingExceeded() *AppError {
	return New("LEDGER_006", "Mint would exceed the supply ceiling", http.StatusUnprocessableEntity)
}

func ErrNotFound(entity string) *AppError {
	return New("LEDGER_007", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Authorization (AUTHZ) ----

func ErrUnauthorized(role string) *AppError {
	return New("AUTHZ_001", fmt.Sprintf("Caller does not hold the %s role", role), http.StatusForbidden)
}

func ErrAccountBlocked() *AppError {
	return New("AUTHZ_002", "Account is blocked", http.StatusForbidden)
}

func ErrUnknownRequest() *AppError {
	return New("AUTHZ_003", "Unknown or already-consumed request id", http.StatusNotFound)
}

// ---- API Security & Authentication (SEC) ----

func ErrInvalidAccessAddress() *AppError {
	return New("SEC_001", "Invalid access address", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New("SEC_002", "Invalid signature", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New("SEC_003", "Request timestamp expired", http.StatusForbidden)
}

func ErrNonceUsed() *AppError {
	return New("SEC_004", "Nonce has already been used", http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New("SEC_005", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrInvalidCredentials() *AppError {
	return New("SEC_006", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("SEC_007", "Username already exists", http.StatusConflict)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a LEDGER_001-style validation error.
func Validation(message string) *AppError {
	return New("LEDGER_001", message, http.StatusBadRequest)
}
