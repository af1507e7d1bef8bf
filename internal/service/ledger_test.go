package service

import (
	"context"
	"testing"

	"custody-ledger/internal/core/domain"

	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testInstanceID = "custody-ledger-test"

// testLedger wires every engine over one shared in-memory store.
type testLedger struct {
	store    *memStore
	sink     *recordingSink
	transfer *TransferServiceImpl
	authz    *AuthorizationServiceImpl
	sweep    *SweepServiceImpl
	minting  *MintingServiceImpl
	admin    *AdminServiceImpl
	query    *QueryServiceImpl

	custodian  domain.Address
	controller domain.Address
	sweeper    domain.Address
}

func newTestLedger(t *testing.T) *testLedger {
	t.Helper()

	store := newMemStore()
	sink := &recordingSink{}
	em := testEmitter(sink)
	log := zerolog.Nop()

	l := &testLedger{
		store:      store,
		sink:       sink,
		custodian:  testAddr(t, 0xC1),
		controller: testAddr(t, 0xC2),
		sweeper:    testAddr(t, 0xC3),
	}
	l.transfer = NewTransferService(store, memAllowances{store}, memState{store}, store, store, em, log)
	l.authz = NewAuthorizationService(store, memState{store}, memRequests{store}, store, store, em, log, testInstanceID)
	l.sweep = NewSweepService(store, store, store, NewCompactRecoverer(), em, log, testInstanceID)
	l.minting = NewMintingService(store, memState{store}, memRequests{store}, store, store, em, log, testInstanceID)
	l.admin = NewAdminService(store, store, store, em, log)
	l.query = NewQueryService(store, memAllowances{store}, memState{store}, memRequests{store}, store)

	store.roles = domain.RoleSet{
		Custodian:  l.custodian,
		Controller: l.controller,
		Sweeper:    l.sweeper,
	}
	return l
}

// testAddr builds a deterministic address from a tag byte.
func testAddr(t *testing.T, tag byte) domain.Address {
	t.Helper()
	var a domain.Address
	for i := range a {
		a[i] = tag
	}
	return a
}

// fund credits an address directly, bumping supply to match so the
// balances-sum-to-supply invariant holds from the start.
func (l *testLedger) fund(t *testing.T, address domain.Address, amount uint64) {
	t.Helper()
	ctx := context.Background()
	tx, err := l.store.Begin(ctx)
	require.NoError(t, err)
	balance, _, err := lockedBalance(ctx, tx, l.store, address)
	require.NoError(t, err)
	newBalance, ok := domain.CheckedAdd(balance, uint256.NewInt(amount))
	require.True(t, ok)
	require.NoError(t, l.store.UpsertBalance(ctx, tx, address, newBalance))
	state, err := l.store.GetStateForUpdate(ctx, tx)
	require.NoError(t, err)
	newSupply, ok := domain.CheckedAdd(state.Supply, uint256.NewInt(amount))
	require.True(t, ok)
	require.NoError(t, l.store.SetSupply(ctx, tx, newSupply))
	require.NoError(t, tx.Commit(ctx))
}

func (l *testLedger) balance(t *testing.T, address domain.Address) uint64 {
	t.Helper()
	v, err := l.query.BalanceOf(context.Background(), address)
	require.NoError(t, err)
	return v.Uint64()
}

func (l *testLedger) supply(t *testing.T) uint64 {
	t.Helper()
	v, err := l.query.TotalSupply(context.Background())
	require.NoError(t, err)
	return v.Uint64()
}

// checkSupplyInvariant asserts the sum of all balances equals total supply.
func (l *testLedger) checkSupplyInvariant(t *testing.T) {
	t.Helper()
	l.store.mu.Lock()
	sum := uint256.NewInt(0)
	for _, a := range l.store.accounts {
		sum.Add(sum, a.Balance)
	}
	supply := new(uint256.Int).Set(l.store.state.Supply)
	l.store.mu.Unlock()
	require.Zero(t, sum.Cmp(supply), "sum of balances %s != supply %s", sum.Dec(), supply.Dec())
}

func maxAmount() *uint256.Int {
	return new(uint256.Int).SetAllOne()
}
