package handler

import (
	"time"

	"custody-ledger/internal/adapter/http/dto"
	"custody-ledger/internal/core/ports"
	"custody-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// QueryHandler serves the read-only ledger views.
type QueryHandler struct {
	querySvc ports.QueryService
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(querySvc ports.QueryService) *QueryHandler {
	return &QueryHandler{querySvc: querySvc}
}

// TotalSupply handles GET /api/v1/ledger/supply.
func (h *QueryHandler) TotalSupply(c *gin.Context) {
	supply, err := h.querySvc.TotalSupply(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.AmountResponse{Value: supply.Dec()})
}

// Ceiling handles GET /api/v1/ledger/ceiling.
func (h *QueryHandler) Ceiling(c *gin.Context) {
	ceiling, err := h.querySvc.Ceiling(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.AmountResponse{Value: ceiling.Dec()})
}

// BalanceOf handles GET /api/v1/ledger/balances/:address.
func (h *QueryHandler) BalanceOf(c *gin.Context) {
	address, ok := parseAddress(c, "address", c.Param("address"))
	if !ok {
		return
	}
	balance, err := h.querySvc.BalanceOf(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{Address: address.String(), Balance: balance.Dec()})
}

// AllowanceOf handles GET /api/v1/ledger/allowances/:owner/:spender.
func (h *QueryHandler) AllowanceOf(c *gin.Context) {
	owner, ok := parseAddress(c, "owner", c.Param("owner"))
	if !ok {
		return
	}
	spender, ok := parseAddress(c, "spender", c.Param("spender"))
	if !ok {
		return
	}
	allowance, err := h.querySvc.AllowanceOf(c.Request.Context(), owner, spender)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.AllowanceResponse{
		Owner:     owner.String(),
		Spender:   spender.String(),
		Allowance: allowance.Dec(),
	})
}

// Roles handles GET /api/v1/ledger/roles.
func (h *QueryHandler) Roles(c *gin.Context) {
	roles, err := h.querySvc.Roles(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.RolesResponse{
		Custodian:      roles.Custodian.String(),
		Controller:     roles.Controller.String(),
		Sweeper:        roles.Sweeper.String(),
		Implementation: roles.Implementation.String(),
	})
}

// PendingRequests handles GET /api/v1/ledger/requests.
func (h *QueryHandler) PendingRequests(c *gin.Context) {
	requests, err := h.querySvc.PendingRequests(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	out := make([]dto.PendingRequestResponse, len(requests))
	for i, r := range requests {
		out[i] = dto.PendingRequestResponse{
			RequestID: r.ID.String(),
			Kind:      string(r.Kind),
			Requestor: r.Requestor.String(),
			CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	response.OK(c, out)
}
