package handler

import (
	"custody-ledger/internal/adapter/http/middleware"
	redisStore "custody-ledger/internal/adapter/storage/redis"
	"custody-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	TransferSvc    ports.TransferService
	AuthzSvc       ports.AuthorizationService
	SweepSvc       ports.SweepService
	MintingSvc     ports.MintingService
	AdminSvc       ports.AdminService
	QuerySvc       ports.QueryService
	OperatorRepo   ports.OperatorRepository
	EncSvc         ports.EncryptionService
	SigSvc         ports.SignatureService
	NonceStore     ports.NonceStore
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- HMAC-authenticated routes (every mutation) ---
	hmacAuth := middleware.HMACAuth(deps.OperatorRepo, deps.EncSvc, deps.SigSvc, deps.NonceStore, deps.Logger)

	ledgerHandler := NewLedgerHandler(deps.TransferSvc)
	transfers := v1.Group("/transfers", hmacAuth)
	{
		transfers.POST("", rl("transfers"), ledgerHandler.Transfer)
		transfers.POST("/from", rl("transfers"), ledgerHandler.TransferFrom)
		transfers.POST("/batch", rl("transfers"), ledgerHandler.BatchTransfer)
	}
	approvals := v1.Group("/approvals", hmacAuth)
	{
		approvals.POST("", rl("transfers"), ledgerHandler.Approve)
		approvals.POST("/increase", rl("transfers"), ledgerHandler.IncreaseApproval)
		approvals.POST("/decrease", rl("transfers"), ledgerHandler.DecreaseApproval)
	}
	burns := v1.Group("/burns", hmacAuth)
	{
		burns.POST("", rl("transfers"), ledgerHandler.Burn)
		burns.POST("/from", rl("transfers"), ledgerHandler.BurnFrom)
	}

	authzHandler := NewAuthorizationHandler(deps.AuthzSvc)
	authz := v1.Group("/authorizations", hmacAuth)
	{
		authz.POST("/print", rl("authorizations"), authzHandler.RequestPrint)
		authz.POST("/print/confirm", rl("authorizations"), authzHandler.ConfirmPrint)
		authz.POST("/ceiling-raise", rl("authorizations"), authzHandler.RequestCeilingRaise)
		authz.POST("/ceiling-raise/confirm", rl("authorizations"), authzHandler.ConfirmCeilingRaise)
		authz.POST("/wipe", rl("authorizations"), authzHandler.RequestWipe)
		authz.POST("/wipe/confirm", rl("authorizations"), authzHandler.ConfirmWipe)
		authz.POST("/force-transfer", rl("authorizations"), authzHandler.RequestForceTransfer)
		authz.POST("/force-transfer/confirm", rl("authorizations"), authzHandler.ConfirmForceTransfer)
		authz.POST("/custodian", rl("authorizations"), authzHandler.RequestCustodianChange)
		authz.POST("/custodian/confirm", rl("authorizations"), authzHandler.ConfirmCustodianChange)
		authz.POST("/implementation", rl("authorizations"), authzHandler.RequestImplementationChange)
		authz.POST("/implementation/confirm", rl("authorizations"), authzHandler.ConfirmImplementationChange)
	}

	sweepHandler := NewSweepHandler(deps.SweepSvc)
	sweeps := v1.Group("/sweeps")
	{
		sweeps.GET("/digest", rl("query"), sweepHandler.DelegationDigest)
		sweeps.POST("/enable", hmacAuth, rl("sweeps"), sweepHandler.EnableSweep)
		sweeps.POST("/replay", hmacAuth, rl("sweeps"), sweepHandler.ReplaySweep)
	}

	mintingHandler := NewMintingHandler(deps.MintingSvc)
	minting := v1.Group("/minting", hmacAuth)
	{
		minting.POST("/mint", rl("minting"), mintingHandler.LimitedMint)
		minting.POST("/lower-ceiling", rl("minting"), mintingHandler.LowerCeiling)
	}

	adminHandler := NewAdminHandler(deps.AdminSvc)
	admin := v1.Group("/admin", hmacAuth)
	{
		admin.POST("/blocked", rl("admin"), adminHandler.SetBlocked)
		admin.POST("/roles", rl("admin"), adminHandler.AssignRole)
		admin.POST("/signers", rl("admin"), adminHandler.AddSigner)
		admin.POST("/signers/remove", rl("admin"), adminHandler.RemoveSigner)
	}

	// --- JWT-authenticated routes (read-only queries) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	queryHandler := NewQueryHandler(deps.QuerySvc)
	ledger := v1.Group("/ledger", jwtAuth)
	{
		ledger.GET("/supply", rl("query"), queryHandler.TotalSupply)
		ledger.GET("/ceiling", rl("query"), queryHandler.Ceiling)
		ledger.GET("/balances/:address", rl("query"), queryHandler.BalanceOf)
		ledger.GET("/allowances/:owner/:spender", rl("query"), queryHandler.AllowanceOf)
		ledger.GET("/roles", rl("query"), queryHandler.Roles)
		ledger.GET("/requests", rl("query"), queryHandler.PendingRequests)
	}

	return r
}
