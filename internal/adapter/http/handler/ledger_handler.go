package handler

import (
	"context"

	"custody-ledger/internal/adapter/http/dto"
	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/core/ports"
	"custody-ledger/pkg/apperror"
	"custody-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/holiman/uint256"
)

// LedgerHandler handles the transfer and approval endpoints.
type LedgerHandler struct {
	transferSvc ports.TransferService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(transferSvc ports.TransferService) *LedgerHandler {
	return &LedgerHandler{transferSvc: transferSvc}
}

// Transfer handles POST /api/v1/transfers.
func (h *LedgerHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	sender, ok := caller(c)
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

	if err := h.transferSvc.Transfer(c.Request.Context(), sender, to, value); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": "completed"})
}

// TransferFrom handles POST /api/v1/transfers/from.
func (h *LedgerHandler) TransferFrom(c *gin.Context) {
	var req dto.TransferFromRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	spender, ok := caller(c)
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

	if err := h.transferSvc.TransferFrom(c.Request.Context(), spender, from, to, value); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": "completed"})
}

// Approve handles POST /api/v1/approvals.
func (h *LedgerHandler) Approve(c *gin.Context) {
	var req dto.ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	owner, ok := caller(c)
	if !ok {
		return
	}
	spender, ok := parseAddress(c, "spender", req.Spender)
	if !ok {
		return
	}
	value, ok := parseAmount(c, "value", req.Value)
	if !ok {
		return
	}

	if err := h.transferSvc.Approve(c.Request.Context(), owner, spender, value); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": "completed"})
}

// IncreaseApproval handles POST /api/v1/approvals/increase.
func (h *LedgerHandler) IncreaseApproval(c *gin.Context) {
	h.adjustApproval(c, h.transferSvc.IncreaseApproval)
}

// DecreaseApproval handles POST /api/v1/approvals/decrease.
func (h *LedgerHandler) DecreaseApproval(c *gin.Context) {
	h.adjustApproval(c, h.transferSvc.DecreaseApproval)
}

func (h *LedgerHandler) adjustApproval(c *gin.Context, adjust func(ctx context.Context, owner, spender domain.Address, delta *uint256.Int) error) {
	var req dto.AdjustApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	owner, ok := caller(c)
	if !ok {
		return
	}
	spender, ok := parseAddress(c, "spender", req.Spender)
	if !ok {
		return
	}
	delta, ok := parseAmount(c, "delta", req.Delta)
	if !ok {
		return
	}

	if err := adjust(c.Request.Context(), owner, spender, delta); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": "completed"})
}

// BatchTransfer handles POST /api/v1/transfers/batch.
func (h *LedgerHandler) BatchTransfer(c *gin.Context) {
	var req dto.BatchTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	sender, ok := caller(c)
	if !ok {
		return
	}
	destinations := make([]domain.Address, len(req.Destinations))
	for i, s := range req.Destinations {
		d, ok := parseAddress(c, "destinations", s)
		if !ok {
			return
		}
		destinations[i] = d
	}
	values := make([]*uint256.Int, len(req.Values))
	for i, s := range req.Values {
		v, ok := parseAmount(c, "values", s)
		if !ok {
			return
		}
		values[i] = v
	}

	if err := h.transferSvc.BatchTransfer(c.Request.Context(), sender, destinations, values); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": "completed", "count": len(destinations)})
}

// Burn handles POST /api/v1/burns.
func (h *LedgerHandler) Burn(c *gin.Context) {
	var req dto.BurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	sender, ok := caller(c)
	if !ok {
		return
	}
	value, ok := parseAmount(c, "value", req.Value)
	if !ok {
		return
	}

	if err := h.transferSvc.Burn(c.Request.Context(), sender, value); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": "completed"})
}

// BurnFrom handles POST /api/v1/burns/from.
func (h *LedgerHandler) BurnFrom(c *gin.Context) {
	var req dto.BurnFromRequest
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
	value, ok := parseAmount(c, "value", req.Value)
	if !ok {
		return
	}

	burned, err := h.transferSvc.BurnFrom(c.Request.Context(), callerAddr, from, value)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BurnedResponse{Burned: burned.Dec()})
}
