package handler

import (
	"context"

	"custody-ledger/internal/adapter/http/dto"
	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/core/ports"
	"custody-ledger/pkg/apperror"
	"custody-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthorizationHandler handles the two-phase authorized mutation endpoints.
// Each flow is a request route that stores a pending authorization and a
// confirm route that executes it.
type AuthorizationHandler struct {
	authzSvc ports.AuthorizationService
}

// NewAuthorizationHandler creates a new AuthorizationHandler.
func NewAuthorizationHandler(authzSvc ports.AuthorizationService) *AuthorizationHandler {
	return &AuthorizationHandler{authzSvc: authzSvc}
}

// RequestPrint handles POST /api/v1/authorizations/print.
func (h *AuthorizationHandler) RequestPrint(c *gin.Context) {
	var req dto.PrintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	callerAddr, ok := caller(c)
	if !ok {
		return
	}
	receiver, ok := parseAddress(c, "receiver", req.Receiver)
	if !ok {
		return
	}
	value, ok := parseAmount(c, "value", req.Value)
	if !ok {
		return
	}

	id, err := h.authzSvc.RequestPrint(c.Request.Context(), callerAddr, receiver, value)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.RequestIDResponse{RequestID: id.String()})
}

// ConfirmPrint handles POST /api/v1/authorizations/print/confirm.
func (h *AuthorizationHandler) ConfirmPrint(c *gin.Context) {
	h.confirm(c, h.authzSvc.ConfirmPrint)
}

// RequestCeilingRaise handles POST /api/v1/authorizations/ceiling-raise.
func (h *AuthorizationHandler) RequestCeilingRaise(c *gin.Context) {
	var req dto.CeilingRaiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	callerAddr, ok := caller(c)
	if !ok {
		return
	}
	value, ok := parseAmount(c, "value", req.Value)
	if !ok {
		return
	}

	id, err := h.authzSvc.RequestCeilingRaise(c.Request.Context(), callerAddr, value)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.RequestIDResponse{RequestID: id.String()})
}

// ConfirmCeilingRaise handles POST /api/v1/authorizations/ceiling-raise/confirm.
func (h *AuthorizationHandler) ConfirmCeilingRaise(c *gin.Context) {
	h.confirm(c, h.authzSvc.ConfirmCeilingRaise)
}

// RequestWipe handles POST /api/v1/authorizations/wipe.
func (h *AuthorizationHandler) RequestWipe(c *gin.Context) {
	var req dto.WipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	callerAddr, ok := caller(c)
	if !ok {
		return
	}
	entries := make([]domain.WipeEntry, len(req.Entries))
	for i, e := range req.Entries {
		account, ok := parseAddress(c, "entries.account", e.Account)
		if !ok {
			return
		}
		amount, ok := parseAmount(c, "entries.amount", e.Amount)
		if !ok {
			return
		}
		entries[i] = domain.WipeEntry{Account: account, Amount: amount}
	}

	id, err := h.authzSvc.RequestWipe(c.Request.Context(), callerAddr, entries)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.RequestIDResponse{RequestID: id.String()})
}

// ConfirmWipe handles POST /api/v1/authorizations/wipe/confirm.
func (h *AuthorizationHandler) ConfirmWipe(c *gin.Context) {
	h.confirm(c, h.authzSvc.ConfirmWipe)
}

// RequestForceTransfer handles POST /api/v1/authorizations/force-transfer.
func (h *AuthorizationHandler) RequestForceTransfer(c *gin.Context) {
	var req dto.ForceTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	callerAddr, ok := caller(c)
	if !ok {
		return
	}
	from, ok := parseAddress(c, "from", req.From)
	if !ok {
		return
	}
	to, ok := parseAddress(c, "to", req.To)
	if !ok {
		return
	}
	value, ok := parseAmount(c, "value", req.Value)
	if !ok {
		return
	}

	id, err := h.authzSvc.RequestForceTransfer(c.Request.Context(), callerAddr, from, to, value)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.RequestIDResponse{RequestID: id.String()})
}

// ConfirmForceTransfer handles POST /api/v1/authorizations/force-transfer/confirm.
func (h *AuthorizationHandler) ConfirmForceTransfer(c *gin.Context) {
	h.confirm(c, h.authzSvc.ConfirmForceTransfer)
}

// RequestCustodianChange handles POST /api/v1/authorizations/custodian.
func (h *AuthorizationHandler) RequestCustodianChange(c *gin.Context) {
	h.requestHandOff(c, h.authzSvc.RequestCustodianChange)
}

// ConfirmCustodianChange handles POST /api/v1/authorizations/custodian/confirm.
func (h *AuthorizationHandler) ConfirmCustodianChange(c *gin.Context) {
	h.confirm(c, h.authzSvc.ConfirmCustodianChange)
}

// RequestImplementationChange handles POST /api/v1/authorizations/implementation.
func (h *AuthorizationHandler) RequestImplementationChange(c *gin.Context) {
	h.requestHandOff(c, h.authzSvc.RequestImplementationChange)
}

// ConfirmImplementationChange handles POST /api/v1/authorizations/implementation/confirm.
func (h *AuthorizationHandler) ConfirmImplementationChange(c *gin.Context) {
	h.confirm(c, h.authzSvc.ConfirmImplementationChange)
}

func (h *AuthorizationHandler) requestHandOff(c *gin.Context, request func(ctx context.Context, caller, proposed domain.Address) (domain.RequestID, error)) {
	var req dto.HandOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	callerAddr, ok := caller(c)
	if !ok {
		return
	}
	proposed, ok := parseAddress(c, "proposed", req.Proposed)
	if !ok {
		return
	}

	id, err := request(c.Request.Context(), callerAddr, proposed)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.RequestIDResponse{RequestID: id.String()})
}

func (h *AuthorizationHandler) confirm(c *gin.Context, confirm func(ctx context.Context, caller domain.Address, id domain.RequestID) error) {
	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	callerAddr, ok := caller(c)
	if !ok {
		return
	}
	id, ok := parseRequestID(c, req.RequestID)
	if !ok {
		return
	}

	if err := confirm(c.Request.Context(), callerAddr, id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": "confirmed"})
}
