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

// AdminHandler handles wallet blocking, role assignment and the signer set.
type AdminHandler struct {
	adminSvc ports.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminSvc ports.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// SetBlocked handles POST /api/v1/admin/blocked.
func (h *AdminHandler) SetBlocked(c *gin.Context) {
	var req dto.SetBlockedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	callerAddr, ok := caller(c)
	if !ok {
		return
	}
	account, ok := parseAddress(c, "account", req.Account)
	if !ok {
		return
	}

	if err := h.adminSvc.SetBlocked(c.Request.Context(), callerAddr, account, req.Blocked); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": "completed"})
}

// AssignRole handles POST /api/v1/admin/roles.
func (h *AdminHandler) AssignRole(c *gin.Context) {
	var req dto.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	callerAddr, ok := caller(c)
	if !ok {
		return
	}
	address, ok := parseAddress(c, "address", req.Address)
	if !ok {
		return
	}

	if err := h.adminSvc.AssignRole(c.Request.Context(), callerAddr, domain.Role(req.Role), address); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": "completed"})
}

// AddSigner handles POST /api/v1/admin/signers.
func (h *AdminHandler) AddSigner(c *gin.Context) {
	h.signer(c, h.adminSvc.AddSigner)
}

// RemoveSigner handles POST /api/v1/admin/signers/remove.
func (h *AdminHandler) RemoveSigner(c *gin.Context) {
	h.signer(c, h.adminSvc.RemoveSigner)
}

func (h *AdminHandler) signer(c *gin.Context, apply func(ctx context.Context, caller, signer domain.Address) error) {
	var req dto.SignerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	callerAddr, ok := caller(c)
	if !ok {
		return
	}
	signer, ok := parseAddress(c, "signer", req.Signer)
	if !ok {
		return
	}

	if err := apply(c.Request.Context(), callerAddr, signer); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": "completed"})
}
