package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	httpHandler "custody-ledger/internal/adapter/http/handler"
	redisStorage "custody-ledger/internal/adapter/storage/redis"
	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp runs the full application stack: real HTTP layer, middleware,
// handlers and engines over the in-memory store, with miniredis backing the
// nonce and rate-limit stores.
type testApp struct {
	server *httptest.Server
	store  *ledgerStore
	sigSvc *service.HMACSignatureService
	redis  *miniredis.Miniredis
}

const testInstanceID = "custody-ledger-integration"

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	store := newLedgerStore()
	log := zerolog.Nop()

	nonceStore := redisStorage.NewNonceStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	encSvc, err := service.NewAESEncryptionService("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")
	require.NoError(t, err)
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService("integration-test-secret", time.Hour, "custody-ledger")
	recoverer := service.NewCompactRecoverer()
	emitter := service.NewEmitter(nullSink{}, store, log)

	operators := operatorView{store}
	allowances := allowanceView{store}
	state := stateView{store}
	requests := requestView{store}

	authSvc := service.NewAuthService(operators, hashSvc, encSvc, tokenSvc)
	transferSvc := service.NewTransferService(store, allowances, state, store, store, emitter, log)
	authzSvc := service.NewAuthorizationService(store, state, requests, store, store, emitter, log, testInstanceID)
	sweepSvc := service.NewSweepService(store, store, store, recoverer, emitter, log, testInstanceID)
	mintingSvc := service.NewMintingService(store, state, requests, store, store, emitter, log, testInstanceID)
	adminSvc := service.NewAdminService(store, store, store, emitter, log)
	querySvc := service.NewQueryService(store, allowances, state, requests, store)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		TransferSvc:    transferSvc,
		AuthzSvc:       authzSvc,
		SweepSvc:       sweepSvc,
		MintingSvc:     mintingSvc,
		AdminSvc:       adminSvc,
		QuerySvc:       querySvc,
		OperatorRepo:   operators,
		EncSvc:         encSvc,
		SigSvc:         sigSvc,
		NonceStore:     nonceStore,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		Logger:         log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testApp{server: server, store: store, sigSvc: sigSvc, redis: mr}
}

// nullSink drops published events; the store's audit trail still records them.
type nullSink struct{}

func (nullSink) Publish(ctx context.Context, ev domain.Event) error { return nil }

type testOperator struct {
	username  string
	address   domain.Address
	secretKey string
}

func registerOperator(t *testing.T, app *testApp, username string) testOperator {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"username": username,
		"password": "password123",
	})
	resp, err := http.Post(app.server.URL+"/api/v1/auth/register", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := decodeData(t, resp)
	address, err := domain.ParseAddress(data["address"].(string))
	require.NoError(t, err)

	return testOperator{
		username:  username,
		address:   address,
		secretKey: data["secret_key"].(string),
	}
}

func decodeData(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &envelope), "body: %s", raw)
	data, _ := envelope["data"].(map[string]interface{})
	return data
}

func (app *testApp) signedRequest(t *testing.T, op testOperator, method, path string, payload any) *http.Response {
	return app.signedRequestWithNonce(t, op, method, path, payload, uuid.NewString())
}

func (app *testApp) signedRequestWithNonce(t *testing.T, op testOperator, method, path string, payload any, nonce string) *http.Response {
	t.Helper()

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		require.NoError(t, err)
	}

	timestamp := time.Now().Unix()
	canonical := app.sigSvc.BuildCanonicalString(method, path, timestamp, nonce, string(body))
	signature := app.sigSvc.Sign(op.secretKey, canonical)

	req, err := http.NewRequest(method, app.server.URL+path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Operator-Address", op.address.String())
	req.Header.Set("X-Signature", signature)
	req.Header.Set("X-Timestamp", strconv.FormatInt(timestamp, 10))
	req.Header.Set("X-Nonce", nonce)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func loginToken(t *testing.T, app *testApp, op testOperator) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": op.username, "password": "password123"})
	resp, err := http.Post(app.server.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeData(t, resp)["token"].(string)
}

func (app *testApp) queryJSON(t *testing.T, token, path string) map[string]interface{} {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, app.server.URL+path, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeData(t, resp)
}

// seedCustodian promotes an operator to custodian directly in the store,
// standing in for deployment-time bootstrap.
func seedCustodian(t *testing.T, app *testApp, op testOperator) {
	t.Helper()
	require.NoError(t, app.store.SetRole(context.Background(), nil, domain.RoleCustodian, op.address))
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegisterLoginAndQuery(t *testing.T) {
	app := newTestApp(t)

	op := registerOperator(t, app, "querier")
	token := loginToken(t, app, op)

	data := app.queryJSON(t, token, "/api/v1/ledger/supply")
	assert.Equal(t, "0", data["value"])

	balance := app.queryJSON(t, token, "/api/v1/ledger/balances/"+op.address.String())
	assert.Equal(t, "0", balance["balance"])
}

func TestQueryRequiresToken(t *testing.T) {
	app := newTestApp(t)

	resp, err := http.Get(app.server.URL + "/api/v1/ledger/supply")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPrintLifecycle(t *testing.T) {
	app := newTestApp(t)

	custodian := registerOperator(t, app, "custodian")
	receiver := registerOperator(t, app, "receiver")
	seedCustodian(t, app, custodian)

	// Receiver requests a supply raise to itself.
	resp := app.signedRequest(t, receiver, http.MethodPost, "/api/v1/authorizations/print", map[string]string{
		"receiver": receiver.address.String(),
		"value":    "1000",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	requestID := decodeData(t, resp)["request_id"].(string)
	resp.Body.Close()

	// Nothing moves until the custodian confirms.
	token := loginToken(t, app, receiver)
	assert.Equal(t, "0", app.queryJSON(t, token, "/api/v1/ledger/supply")["value"])

	// Non-custodian confirmation is rejected and leaves the request alive.
	resp = app.signedRequest(t, receiver, http.MethodPost, "/api/v1/authorizations/print/confirm", map[string]string{
		"request_id": requestID,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = app.signedRequest(t, custodian, http.MethodPost, "/api/v1/authorizations/print/confirm", map[string]string{
		"request_id": requestID,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	assert.Equal(t, "1000", app.queryJSON(t, token, "/api/v1/ledger/supply")["value"])
	assert.Equal(t, "1000", app.queryJSON(t, token, "/api/v1/ledger/balances/"+receiver.address.String())["balance"])

	// A consumed request cannot be replayed.
	resp = app.signedRequest(t, custodian, http.MethodPost, "/api/v1/authorizations/print/confirm", map[string]string{
		"request_id": requestID,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestTransferEndToEnd(t *testing.T) {
	app := newTestApp(t)

	custodian := registerOperator(t, app, "custodian")
	alice := registerOperator(t, app, "alice")
	bob := registerOperator(t, app, "bob")
	seedCustodian(t, app, custodian)

	// Fund alice through the print flow.
	resp := app.signedRequest(t, alice, http.MethodPost, "/api/v1/authorizations/print", map[string]string{
		"receiver": alice.address.String(),
		"value":    "500",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	requestID := decodeData(t, resp)["request_id"].(string)
	resp.Body.Close()
	resp = app.signedRequest(t, custodian, http.MethodPost, "/api/v1/authorizations/print/confirm", map[string]string{
		"request_id": requestID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Transfer part of it to bob.
	resp = app.signedRequest(t, alice, http.MethodPost, "/api/v1/transfers", map[string]string{
		"to":    bob.address.String(),
		"value": "200",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	token := loginToken(t, app, alice)
	assert.Equal(t, "300", app.queryJSON(t, token, "/api/v1/ledger/balances/"+alice.address.String())["balance"])
	assert.Equal(t, "200", app.queryJSON(t, token, "/api/v1/ledger/balances/"+bob.address.String())["balance"])

	// Overdraft fails and moves nothing.
	resp = app.signedRequest(t, alice, http.MethodPost, "/api/v1/transfers", map[string]string{
		"to":    bob.address.String(),
		"value": "10000",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, "300", app.queryJSON(t, token, "/api/v1/ledger/balances/"+alice.address.String())["balance"])
}

func TestMutationRequiresSignature(t *testing.T) {
	app := newTestApp(t)

	body, _ := json.Marshal(map[string]string{
		"to":    "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		"value": "100",
	})
	resp, err := http.Post(app.server.URL+"/api/v1/transfers", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestNonceReplayRejected(t *testing.T) {
	app := newTestApp(t)

	custodian := registerOperator(t, app, "custodian")
	seedCustodian(t, app, custodian)

	nonce := uuid.NewString()

	resp := app.signedRequestWithNonce(t, custodian, http.MethodPost, "/api/v1/admin/signers", map[string]string{
		"signer": custodian.address.String(),
	}, nonce)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = app.signedRequestWithNonce(t, custodian, http.MethodPost, "/api/v1/admin/signers", map[string]string{
		"signer": custodian.address.String(),
	}, nonce)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestAdminRequiresAuthority(t *testing.T) {
	app := newTestApp(t)

	custodian := registerOperator(t, app, "custodian")
	stranger := registerOperator(t, app, "stranger")
	seedCustodian(t, app, custodian)

	resp := app.signedRequest(t, stranger, http.MethodPost, "/api/v1/admin/blocked", map[string]any{
		"account": custodian.address.String(),
		"blocked": true,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestBlockedAccountCannotTransfer(t *testing.T) {
	app := newTestApp(t)

	custodian := registerOperator(t, app, "custodian")
	alice := registerOperator(t, app, "alice")
	seedCustodian(t, app, custodian)

	resp := app.signedRequest(t, custodian, http.MethodPost, "/api/v1/admin/blocked", map[string]any{
		"account": alice.address.String(),
		"blocked": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = app.signedRequest(t, alice, http.MethodPost, "/api/v1/transfers", map[string]string{
		"to":    custodian.address.String(),
		"value": "1",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestSweepDigestIsPublic(t *testing.T) {
	app := newTestApp(t)

	resp, err := http.Get(app.server.URL + "/api/v1/sweeps/digest")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decodeData(t, resp)
	assert.Len(t, data["digest"], 64)
}

func TestRegisterRateLimited(t *testing.T) {
	app := newTestApp(t)

	// auth_register allows 5 per hour per client.
	for i := 0; i < 5; i++ {
		op := registerOperator(t, app, fmt.Sprintf("operator%d", i))
		require.NotEmpty(t, op.secretKey)
	}

	body, _ := json.Marshal(map[string]string{"username": "operator6", "password": "password123"})
	resp, err := http.Post(app.server.URL+"/api/v1/auth/register", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}
