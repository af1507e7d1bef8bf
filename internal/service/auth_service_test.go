package service

import (
	"context"
	"testing"
	"time"

	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/core/ports"
	"custody-ledger/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupAuthService(t *testing.T) (
	*AuthServiceImpl,
	*mocks.MockOperatorRepository,
	*mocks.MockHashService,
	*mocks.MockEncryptionService,
	*mocks.MockTokenService,
	*gomock.Controller,
) {
	ctrl := gomock.NewController(t)
	operators := mocks.NewMockOperatorRepository(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	encSvc := mocks.NewMockEncryptionService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	svc := NewAuthService(operators, hashSvc, encSvc, tokenSvc)
	return svc, operators, hashSvc, encSvc, tokenSvc, ctrl
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, operators, hashSvc, encSvc, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	req := ports.RegisterRequest{
		Username: "treasury_ops",
		Password: "StrongP@ss123",
	}

	operators.EXPECT().GetByUsername(ctx, req.Username).Return(nil, nil)
	hashSvc.EXPECT().Hash(req.Password).Return("$argon2id$hashed", nil)
	encSvc.EXPECT().Encrypt(gomock.Any()).Return("encrypted_secret", nil)
	operators.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	resp, err := svc.Register(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEqual(t, uuid.Nil, resp.OperatorID)
	assert.False(t, resp.Address.IsZero())
	assert.Len(t, resp.SecretKey, 64) // 32 bytes = 64 hex chars
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc, operators, _, _, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	operators.EXPECT().GetByUsername(ctx, "existing_user").Return(&domain.Operator{
		ID:       uuid.New(),
		Username: "existing_user",
	}, nil)

	_, err := svc.Register(ctx, ports.RegisterRequest{Username: "existing_user", Password: "pw"})
	assertAppError(t, err, "SEC_007")
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, operators, hashSvc, _, tokenSvc, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	address, err := domain.NewRandomAddress()
	require.NoError(t, err)
	op := &domain.Operator{
		ID:           uuid.New(),
		Username:     "treasury_ops",
		PasswordHash: "$argon2id$hashed",
		Address:      address,
	}
	expiry := time.Now().Add(24 * time.Hour)

	operators.EXPECT().GetByUsername(ctx, op.Username).Return(op, nil)
	hashSvc.EXPECT().Verify("correct-pw", op.PasswordHash).Return(true, nil)
	tokenSvc.EXPECT().Generate(op.ID, op.Address).Return("jwt-token", expiry, nil)

	token, gotExpiry, err := svc.Login(ctx, op.Username, "correct-pw")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, expiry, gotExpiry)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, operators, _, _, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	operators.EXPECT().GetByUsername(ctx, "ghost").Return(nil, nil)

	_, _, err := svc.Login(ctx, "ghost", "pw")
	assertAppError(t, err, "SEC_006")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, operators, hashSvc, _, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	op := &domain.Operator{ID: uuid.New(), Username: "treasury_ops", PasswordHash: "$argon2id$hashed"}

	operators.EXPECT().GetByUsername(ctx, op.Username).Return(op, nil)
	hashSvc.EXPECT().Verify("wrong-pw", op.PasswordHash).Return(false, nil)

	_, _, err := svc.Login(ctx, op.Username, "wrong-pw")
	assertAppError(t, err, "SEC_006")
}
