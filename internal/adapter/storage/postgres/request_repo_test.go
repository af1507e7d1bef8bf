package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"custody-ledger/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPrintRequest(t *testing.T) *domain.PendingRequest {
	t.Helper()
	requestor := testAddr(t)
	return &domain.PendingRequest{
		ID:        domain.NewRequestID(1, requestor, "instance-test"),
		Kind:      domain.RequestKindPrint,
		Requestor: requestor,
		Receiver:  testAddr(t),
		Value:     domain.NewAmount(50),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestRequestRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRequestRepo(mock)
	req := testPrintRequest(t)
	payload, err := json.Marshal(req)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO pending_requests").
		WithArgs(req.ID.String(), string(req.Kind), payload, req.Requestor.String(), req.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, req)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepo_Consume(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRequestRepo(mock)
	req := testPrintRequest(t)
	payload, err := json.Marshal(req)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery("DELETE FROM pending_requests WHERE id .+ RETURNING payload").
		WithArgs(req.ID.String()).
		WillReturnRows(pgxmock.NewRows([]string{"payload"}).AddRow(payload))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	got, err := repo.Consume(context.Background(), tx, req.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, req.ID, got.ID)
	assert.Equal(t, domain.RequestKindPrint, got.Kind)
	assert.Equal(t, req.Receiver, got.Receiver)
	assert.Equal(t, domain.NewAmount(50), got.Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepo_Consume_Unknown(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRequestRepo(mock)
	req := testPrintRequest(t)

	mock.ExpectBegin()
	mock.ExpectQuery("DELETE FROM pending_requests WHERE id .+ RETURNING payload").
		WithArgs(req.ID.String()).
		WillReturnRows(pgxmock.NewRows([]string{"payload"}))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	got, err := repo.Consume(context.Background(), tx, req.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "unknown id reads as nil; the engine maps it to UnknownRequest")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRequestRepo(mock)
	a := testPrintRequest(t)
	b := testPrintRequest(t)
	payloadA, err := json.Marshal(a)
	require.NoError(t, err)
	payloadB, err := json.Marshal(b)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT payload FROM pending_requests ORDER BY created_at").
		WillReturnRows(pgxmock.NewRows([]string{"payload"}).AddRow(payloadA).AddRow(payloadB))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, b.ID, got[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
