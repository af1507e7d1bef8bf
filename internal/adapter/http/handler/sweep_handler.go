package handler

import (
	"encoding/base64"
	"encoding/hex"

	"custody-ledger/internal/adapter/http/dto"
	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/core/ports"
	"custody-ledger/pkg/apperror"
	"custody-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// SweepHandler handles the delegated-sweep endpoints.
type SweepHandler struct {
	sweepSvc ports.SweepService
}

// NewSweepHandler creates a new SweepHandler.
func NewSweepHandler(sweepSvc ports.SweepService) *SweepHandler {
	return &SweepHandler{sweepSvc: sweepSvc}
}

// DelegationDigest handles GET /api/v1/sweeps/digest. The digest is public:
// account holders need it to produce delegation signatures offline.
func (h *SweepHandler) DelegationDigest(c *gin.Context) {
	digest := h.sweepSvc.DelegationDigest()
	response.OK(c, dto.DelegationDigestResponse{Digest: hex.EncodeToString(digest[:])})
}

// EnableSweep handles POST /api/v1/sweeps/enable.
func (h *SweepHandler) EnableSweep(c *gin.Context) {
	var req dto.EnableSweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	callerAddr, ok := caller(c)
	if !ok {
		return
	}
	destination, ok := parseAddress(c, "destination", req.Destination)
	if !ok {
		return
	}
	signatures := make([][]byte, len(req.Signatures))
	for i, s := range req.Signatures {
		sig, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			response.Error(c, apperror.Validation("signatures: invalid base64"))
			return
		}
		signatures[i] = sig
	}

	result, err := h.sweepSvc.EnableSweep(c.Request.Context(), callerAddr, signatures, destination)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sweepResponse(result))
}

// ReplaySweep handles POST /api/v1/sweeps/replay.
func (h *SweepHandler) ReplaySweep(c *gin.Context) {
	var req dto.ReplaySweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	callerAddr, ok := caller(c)
	if !ok {
		return
	}
	destination, ok := parseAddress(c, "destination", req.Destination)
	if !ok {
		return
	}
	accounts := make([]domain.Address, len(req.Accounts))
	for i, s := range req.Accounts {
		a, ok := parseAddress(c, "accounts", s)
		if !ok {
			return
		}
		accounts[i] = a
	}

	result, err := h.sweepSvc.ReplaySweep(c.Request.Context(), callerAddr, accounts, destination)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sweepResponse(result))
}

func sweepResponse(result *ports.SweepResult) dto.SweepResponse {
	delegated := make([]string, len(result.Delegated))
	for i, a := range result.Delegated {
		delegated[i] = a.String()
	}
	return dto.SweepResponse{
		Delegated: delegated,
		Skipped:   result.Skipped,
		Total:     result.Total.Dec(),
	}
}
