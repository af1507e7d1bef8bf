package handler

import (
	"custody-ledger/internal/adapter/http/middleware"
	"custody-ledger/internal/core/domain"
	"custody-ledger/pkg/apperror"
	"custody-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/holiman/uint256"
)

// caller resolves the authenticated initiator address from the request
// context. The HMAC middleware always sets it; a missing address means the
// route was wired without authentication.
func caller(c *gin.Context) (domain.Address, bool) {
	address, ok := middleware.CallerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidAccessAddress())
	}
	return address, ok
}

func parseAddress(c *gin.Context, field, s string) (domain.Address, bool) {
	address, err := domain.ParseAddress(s)
	if err != nil {
		response.Error(c, apperror.Validation(field+": "+err.Error()))
		return domain.ZeroAddress, false
	}
	return address, true
}

func parseAmount(c *gin.Context, field, s string) (*uint256.Int, bool) {
	amount, err := domain.ParseAmount(s)
	if err != nil {
		response.Error(c, apperror.Validation(field+": "+err.Error()))
		return nil, false
	}
	return amount, true
}

func parseRequestID(c *gin.Context, s string) (domain.RequestID, bool) {
	id, err := domain.ParseRequestID(s)
	if err != nil {
		response.Error(c, apperror.Validation("request_id: "+err.Error()))
		return domain.RequestID{}, false
	}
	return id, true
}
