package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/core/ports"
	"custody-ledger/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testOperatorAddress(t *testing.T) domain.Address {
	t.Helper()
	address, err := domain.ParseAddress("0x00112233445566778899aabbccddeeff00112233")
	require.NoError(t, err)
	return address
}

func hmacTestRouter(operators ports.OperatorRepository, encSvc ports.EncryptionService, sigSvc ports.SignatureService, nonceStore ports.NonceStore) *gin.Engine {
	router := gin.New()
	router.POST("/test", HMACAuth(operators, encSvc, sigSvc, nonceStore, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	return router
}

func TestHMACAuth_MissingHeaders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := hmacTestRouter(
		mocks.NewMockOperatorRepository(ctrl),
		mocks.NewMockEncryptionService(ctrl),
		mocks.NewMockSignatureService(ctrl),
		mocks.NewMockNonceStore(ctrl),
	)

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHMACAuth_ExpiredTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := hmacTestRouter(
		mocks.NewMockOperatorRepository(ctrl),
		mocks.NewMockEncryptionService(ctrl),
		mocks.NewMockSignatureService(ctrl),
		mocks.NewMockNonceStore(ctrl),
	)

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set(HeaderAddress, testOperatorAddress(t).String())
	req.Header.Set(HeaderSignature, "sig")
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(time.Now().Add(-120*time.Second).Unix(), 10))
	req.Header.Set(HeaderNonce, "nonce123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHMACAuth_UnknownAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	operators := mocks.NewMockOperatorRepository(ctrl)
	address := testOperatorAddress(t)
	operators.EXPECT().GetByAddress(gomock.Any(), address).Return(nil, nil)

	router := hmacTestRouter(
		operators,
		mocks.NewMockEncryptionService(ctrl),
		mocks.NewMockSignatureService(ctrl),
		mocks.NewMockNonceStore(ctrl),
	)

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set(HeaderAddress, address.String())
	req.Header.Set(HeaderSignature, "sig")
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(time.Now().Unix(), 10))
	req.Header.Set(HeaderNonce, "nonce123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHMACAuth_MalformedAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := hmacTestRouter(
		mocks.NewMockOperatorRepository(ctrl),
		mocks.NewMockEncryptionService(ctrl),
		mocks.NewMockSignatureService(ctrl),
		mocks.NewMockNonceStore(ctrl),
	)

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set(HeaderAddress, "not-an-address")
	req.Header.Set(HeaderSignature, "sig")
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(time.Now().Unix(), 10))
	req.Header.Set(HeaderNonce, "nonce123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHMACAuth_ReusedNonce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	address := testOperatorAddress(t)
	operator := &domain.Operator{
		ID:           uuid.New(),
		Address:      address,
		SecretKeyEnc: "enc_secret",
	}

	operators := mocks.NewMockOperatorRepository(ctrl)
	operators.EXPECT().GetByAddress(gomock.Any(), address).Return(operator, nil)
	nonceStore := mocks.NewMockNonceStore(ctrl)
	nonceStore.EXPECT().CheckAndSet(gomock.Any(), operator.ID.String(), "nonce123", gomock.Any()).Return(false, nil)

	router := hmacTestRouter(
		operators,
		mocks.NewMockEncryptionService(ctrl),
		mocks.NewMockSignatureService(ctrl),
		nonceStore,
	)

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set(HeaderAddress, address.String())
	req.Header.Set(HeaderSignature, "sig")
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(time.Now().Unix(), 10))
	req.Header.Set(HeaderNonce, "nonce123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHMACAuth_InvalidSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	address := testOperatorAddress(t)
	operator := &domain.Operator{
		ID:           uuid.New(),
		Address:      address,
		SecretKeyEnc: "enc_secret",
	}

	operators := mocks.NewMockOperatorRepository(ctrl)
	operators.EXPECT().GetByAddress(gomock.Any(), address).Return(operator, nil)
	nonceStore := mocks.NewMockNonceStore(ctrl)
	nonceStore.EXPECT().CheckAndSet(gomock.Any(), operator.ID.String(), "nonce123", gomock.Any()).Return(true, nil)
	encSvc := mocks.NewMockEncryptionService(ctrl)
	encSvc.EXPECT().Decrypt("enc_secret").Return("secret", nil)
	sigSvc := mocks.NewMockSignatureService(ctrl)
	sigSvc.EXPECT().BuildCanonicalString("POST", "/test", gomock.Any(), "nonce123", gomock.Any()).Return("canonical")
	sigSvc.EXPECT().Verify("secret", "canonical", "bad_sig").Return(false)

	router := hmacTestRouter(operators, encSvc, sigSvc, nonceStore)

	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(`{"x":1}`))
	req.Header.Set(HeaderAddress, address.String())
	req.Header.Set(HeaderSignature, "bad_sig")
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(time.Now().Unix(), 10))
	req.Header.Set(HeaderNonce, "nonce123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHMACAuth_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	address := testOperatorAddress(t)
	operator := &domain.Operator{
		ID:           uuid.New(),
		Address:      address,
		SecretKeyEnc: "enc_secret",
	}

	operators := mocks.NewMockOperatorRepository(ctrl)
	operators.EXPECT().GetByAddress(gomock.Any(), address).Return(operator, nil)
	nonceStore := mocks.NewMockNonceStore(ctrl)
	nonceStore.EXPECT().CheckAndSet(gomock.Any(), operator.ID.String(), "nonce123", gomock.Any()).Return(true, nil)
	encSvc := mocks.NewMockEncryptionService(ctrl)
	encSvc.EXPECT().Decrypt("enc_secret").Return("secret", nil)
	sigSvc := mocks.NewMockSignatureService(ctrl)
	sigSvc.EXPECT().BuildCanonicalString("POST", "/test", gomock.Any(), "nonce123", gomock.Any()).Return("canonical")
	sigSvc.EXPECT().Verify("secret", "canonical", "good_sig").Return(true)

	var gotAddress domain.Address
	router := gin.New()
	router.POST("/test", HMACAuth(operators, encSvc, sigSvc, nonceStore, zerolog.Nop()), func(c *gin.Context) {
		gotAddress, _ = CallerAddress(c)
		c.JSON(200, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(`{"x":1}`))
	req.Header.Set(HeaderAddress, address.String())
	req.Header.Set(HeaderSignature, "good_sig")
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(time.Now().Unix(), 10))
	req.Header.Set(HeaderNonce, "nonce123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, address, gotAddress)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenSvc := mocks.NewMockTokenService(ctrl)
	router := gin.New()
	router.GET("/test", JWTAuth(tokenSvc, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Validate("bad").Return(nil, assert.AnError)

	router := gin.New()
	router.GET("/test", JWTAuth(tokenSvc, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer bad")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	address := testOperatorAddress(t)
	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Validate("good").Return(&ports.TokenClaims{
		OperatorID: uuid.New(),
		Address:    address,
	}, nil)

	var gotAddress domain.Address
	router := gin.New()
	router.GET("/test", JWTAuth(tokenSvc, zerolog.Nop()), func(c *gin.Context) {
		gotAddress, _ = CallerAddress(c)
		c.JSON(200, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, address, gotAddress)
}

func TestMaxBodySize_RejectsOversizedBody(t *testing.T) {
	router := gin.New()
	router.Use(MaxBodySize(16))
	router.POST("/test", func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "too large"})
			return
		}
		c.JSON(200, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(`{"data":"`+string(make([]byte, 64))+`"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestRecovery_CatchesPanic(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(zerolog.Nop()))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
