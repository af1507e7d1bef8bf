package handler

import (
	"custody-ledger/internal/adapter/http/dto"
	"custody-ledger/internal/core/ports"
	"custody-ledger/pkg/apperror"
	"custody-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// MintingHandler handles the bounded minting endpoints.
type MintingHandler struct {
	mintingSvc ports.MintingService
}

// NewMintingHandler creates a new MintingHandler.
func NewMintingHandler(mintingSvc ports.MintingService) *MintingHandler {
	return &MintingHandler{mintingSvc: mintingSvc}
}

// LimitedMint handles POST /api/v1/minting/mint.
func (h *MintingHandler) LimitedMint(c *gin.Context) {
	var req dto.MintRequest
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

	if err := h.mintingSvc.LimitedMint(c.Request.Context(), callerAddr, receiver, value); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": "completed"})
}

// LowerCeiling handles POST /api/v1/minting/lower-ceiling.
func (h *MintingHandler) LowerCeiling(c *gin.Context) {
	var req dto.LowerCeilingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	callerAddr, ok := caller(c)
	if !ok {
		return
	}
	amount, ok := parseAmount(c, "amount", req.Amount)
	if !ok {
		return
	}

	if err := h.mintingSvc.LowerCeiling(c.Request.Context(), callerAddr, amount); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": "completed"})
}
