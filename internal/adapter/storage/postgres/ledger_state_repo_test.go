package postgres

import (
	"context"
	"testing"

	"custody-ledger/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerStateRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerStateRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM ledger_state WHERE id = 1").
		WillReturnRows(pgxmock.NewRows([]string{"supply", "ceiling", "request_counter"}).
			AddRow("1000", "5000", int64(7)))

	s, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.NewAmount(1000), s.Supply)
	assert.Equal(t, domain.NewAmount(5000), s.Ceiling)
	assert.Equal(t, uint64(7), s.RequestCounter)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerStateRepo_SetSupply(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerStateRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE ledger_state SET supply").
		WithArgs("1050").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.SetSupply(context.Background(), tx, domain.NewAmount(1050))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerStateRepo_NextRequestCounter(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerStateRepo(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE ledger_state SET request_counter = request_counter \\+ 1 WHERE id = 1 RETURNING request_counter").
		WillReturnRows(pgxmock.NewRows([]string{"request_counter"}).AddRow(uint64(8)))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	counter, err := repo.NextRequestCounter(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), counter)
	assert.NoError(t, mock.ExpectationsWereMet())
}
