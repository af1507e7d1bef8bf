package service

import (
	"context"
	"sync"
	"time"

	"custody-ledger/internal/core/domain"

	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// memStore is an in-memory implementation of every repository port, shared
// by the engine tests. Begin snapshots the whole store; Rollback restores
// the snapshot, so transactional atomicity is observable in tests.
type memStore struct {
	mu         sync.Mutex
	accounts   map[domain.Address]*domain.Account
	allowances map[allowanceKey]*uint256.Int
	state      domain.LedgerState
	requests   map[domain.RequestID]*domain.PendingRequest
	roles      domain.RoleSet
	signers    map[domain.Address]bool
	snap       *memSnapshot
}

type allowanceKey struct {
	owner   domain.Address
	spender domain.Address
}

type memSnapshot struct {
	accounts   map[domain.Address]*domain.Account
	allowances map[allowanceKey]*uint256.Int
	state      domain.LedgerState
	requests   map[domain.RequestID]*domain.PendingRequest
	roles      domain.RoleSet
	signers    map[domain.Address]bool
}

func newMemStore() *memStore {
	return &memStore{
		accounts:   make(map[domain.Address]*domain.Account),
		allowances: make(map[allowanceKey]*uint256.Int),
		state: domain.LedgerState{
			Supply:  uint256.NewInt(0),
			Ceiling: uint256.NewInt(0),
		},
		requests: make(map[domain.RequestID]*domain.PendingRequest),
		signers:  make(map[domain.Address]bool),
	}
}

func copyAccount(a *domain.Account) *domain.Account {
	c := *a
	c.Balance = new(uint256.Int).Set(a.Balance)
	return &c
}

func (s *memStore) takeSnapshot() {
	snap := &memSnapshot{
		accounts:   make(map[domain.Address]*domain.Account, len(s.accounts)),
		allowances: make(map[allowanceKey]*uint256.Int, len(s.allowances)),
		requests:   make(map[domain.RequestID]*domain.PendingRequest, len(s.requests)),
		signers:    make(map[domain.Address]bool, len(s.signers)),
		roles:      s.roles,
	}
	for k, v := range s.accounts {
		snap.accounts[k] = copyAccount(v)
	}
	for k, v := range s.allowances {
		snap.allowances[k] = new(uint256.Int).Set(v)
	}
	for k, v := range s.requests {
		c := *v
		snap.requests[k] = &c
	}
	for k, v := range s.signers {
		snap.signers[k] = v
	}
	snap.state = domain.LedgerState{
		Supply:         new(uint256.Int).Set(s.state.Supply),
		Ceiling:        new(uint256.Int).Set(s.state.Ceiling),
		RequestCounter: s.state.RequestCounter,
	}
	s.snap = snap
}

func (s *memStore) restoreSnapshot() {
	if s.snap == nil {
		return
	}
	s.accounts = s.snap.accounts
	s.allowances = s.snap.allowances
	s.state = s.snap.state
	s.requests = s.snap.requests
	s.roles = s.snap.roles
	s.signers = s.snap.signers
	s.snap = nil
}

// --- DBTransactor ---

func (s *memStore) Begin(ctx context.Context) (pgx.Tx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.takeSnapshot()
	return &memTx{store: s}, nil
}

// memTx is a fake pgx.Tx over the store. Commit drops the snapshot;
// Rollback restores it. Rollback after Commit is a no-op, matching the
// defer-rollback idiom in the services.
type memTx struct {
	store *memStore
	done  bool
}

func (t *memTx) Commit(ctx context.Context) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.done = true
	t.store.snap = nil
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if t.done {
		return nil
	}
	t.done = true
	t.store.restoreSnapshot()
	return nil
}

func (t *memTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *memTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *memTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *memTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *memTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *memTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *memTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *memTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *memTx) Conn() *pgx.Conn                                              { return nil }

// --- AccountRepository ---

func (s *memStore) Get(ctx context.Context, address domain.Address) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[address]
	if !ok {
		return nil, nil
	}
	return copyAccount(a), nil
}

func (s *memStore) GetForUpdate(ctx context.Context, tx pgx.Tx, address domain.Address) (*domain.Account, error) {
	return s.Get(ctx, address)
}

func (s *memStore) UpsertBalance(ctx context.Context, tx pgx.Tx, address domain.Address, balance *uint256.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[address]
	if !ok {
		a = &domain.Account{Address: address, Balance: uint256.NewInt(0), CreatedAt: time.Now()}
		s.accounts[address] = a
	}
	a.Balance = new(uint256.Int).Set(balance)
	a.UpdatedAt = time.Now()
	return nil
}

func (s *memStore) SetBlocked(ctx context.Context, address domain.Address, blocked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[address]
	if !ok {
		a = &domain.Account{Address: address, Balance: uint256.NewInt(0), CreatedAt: time.Now()}
		s.accounts[address] = a
	}
	a.Blocked = blocked
	a.UpdatedAt = time.Now()
	return nil
}

func (s *memStore) SetSwept(ctx context.Context, tx pgx.Tx, address domain.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[address]
	if !ok {
		a = &domain.Account{Address: address, Balance: uint256.NewInt(0), CreatedAt: time.Now()}
		s.accounts[address] = a
	}
	a.Swept = true
	a.UpdatedAt = time.Now()
	return nil
}

// --- AllowanceRepository ---

func (s *memStore) GetAllowance(ctx context.Context, owner, spender domain.Address) (*uint256.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.allowances[allowanceKey{owner, spender}]
	if !ok {
		return uint256.NewInt(0), nil
	}
	return new(uint256.Int).Set(v), nil
}

func (s *memStore) GetAllowanceForUpdate(ctx context.Context, tx pgx.Tx, owner, spender domain.Address) (*uint256.Int, error) {
	return s.GetAllowance(ctx, owner, spender)
}

func (s *memStore) SetAllowance(ctx context.Context, tx pgx.Tx, owner, spender domain.Address, amount *uint256.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allowances[allowanceKey{owner, spender}] = new(uint256.Int).Set(amount)
	return nil
}

// --- LedgerStateRepository ---

func (s *memStore) GetState(ctx context.Context) (*domain.LedgerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &domain.LedgerState{
		Supply:         new(uint256.Int).Set(s.state.Supply),
		Ceiling:        new(uint256.Int).Set(s.state.Ceiling),
		RequestCounter: s.state.RequestCounter,
	}, nil
}

func (s *memStore) GetStateForUpdate(ctx context.Context, tx pgx.Tx) (*domain.LedgerState, error) {
	return s.GetState(ctx)
}

func (s *memStore) SetSupply(ctx context.Context, tx pgx.Tx, supply *uint256.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Supply = new(uint256.Int).Set(supply)
	return nil
}

func (s *memStore) SetCeiling(ctx context.Context, tx pgx.Tx, ceiling *uint256.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Ceiling = new(uint256.Int).Set(ceiling)
	return nil
}

func (s *memStore) NextRequestCounter(ctx context.Context, tx pgx.Tx) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.RequestCounter++
	return s.state.RequestCounter, nil
}

// --- RequestRepository ---

func (s *memStore) CreateRequest(ctx context.Context, tx pgx.Tx, req *domain.PendingRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *req
	s.requests[req.ID] = &c
	return nil
}

func (s *memStore) Consume(ctx context.Context, tx pgx.Tx, id domain.RequestID) (*domain.PendingRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[id]
	if !ok {
		return nil, nil
	}
	delete(s.requests, id)
	return req, nil
}

func (s *memStore) List(ctx context.Context) ([]domain.PendingRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.PendingRequest, 0, len(s.requests))
	for _, r := range s.requests {
		out = append(out, *r)
	}
	return out, nil
}

// --- RoleRepository ---

func (s *memStore) GetRoles(ctx context.Context) (domain.RoleSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roles, nil
}

func (s *memStore) GetRolesForUpdate(ctx context.Context, tx pgx.Tx) (domain.RoleSet, error) {
	return s.GetRoles(ctx)
}

func (s *memStore) SetRole(ctx context.Context, tx pgx.Tx, role domain.Role, address domain.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch role {
	case domain.RoleCustodian:
		s.roles.Custodian = address
	case domain.RoleController:
		s.roles.Controller = address
	case domain.RoleSweeper:
		s.roles.Sweeper = address
	case domain.RoleImplementation:
		s.roles.Implementation = address
	}
	return nil
}

func (s *memStore) IsSigner(ctx context.Context, address domain.Address) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signers[address], nil
}

func (s *memStore) AddSigner(ctx context.Context, address domain.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signers[address] = true
	return nil
}

func (s *memStore) RemoveSigner(ctx context.Context, address domain.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.signers, address)
	return nil
}

// Port-view adapters: the store carries all repositories; these narrow
// method-name collisions (Get/GetForUpdate) per port.

type memAllowances struct{ s *memStore }

func (a memAllowances) Get(ctx context.Context, owner, spender domain.Address) (*uint256.Int, error) {
	return a.s.GetAllowance(ctx, owner, spender)
}
func (a memAllowances) GetForUpdate(ctx context.Context, tx pgx.Tx, owner, spender domain.Address) (*uint256.Int, error) {
	return a.s.GetAllowanceForUpdate(ctx, tx, owner, spender)
}
func (a memAllowances) Set(ctx context.Context, tx pgx.Tx, owner, spender domain.Address, amount *uint256.Int) error {
	return a.s.SetAllowance(ctx, tx, owner, spender, amount)
}

type memState struct{ s *memStore }

func (m memState) Get(ctx context.Context) (*domain.LedgerState, error) { return m.s.GetState(ctx) }
func (m memState) GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.LedgerState, error) {
	return m.s.GetStateForUpdate(ctx, tx)
}
func (m memState) SetSupply(ctx context.Context, tx pgx.Tx, supply *uint256.Int) error {
	return m.s.SetSupply(ctx, tx, supply)
}
func (m memState) SetCeiling(ctx context.Context, tx pgx.Tx, ceiling *uint256.Int) error {
	return m.s.SetCeiling(ctx, tx, ceiling)
}
func (m memState) NextRequestCounter(ctx context.Context, tx pgx.Tx) (uint64, error) {
	return m.s.NextRequestCounter(ctx, tx)
}

type memRequests struct{ s *memStore }

func (m memRequests) Create(ctx context.Context, tx pgx.Tx, req *domain.PendingRequest) error {
	return m.s.CreateRequest(ctx, tx, req)
}
func (m memRequests) Consume(ctx context.Context, tx pgx.Tx, id domain.RequestID) (*domain.PendingRequest, error) {
	return m.s.Consume(ctx, tx, id)
}
func (m memRequests) List(ctx context.Context) ([]domain.PendingRequest, error) {
	return m.s.List(ctx)
}

// --- Event recording sink ---

// recordingSink records every published event; it doubles as the audit
// repository in tests.
type recordingSink struct {
	mu     sync.Mutex
	events []domain.Event
}

func (r *recordingSink) Publish(ctx context.Context, ev domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recordingSink) Append(ctx context.Context, ev domain.Event) error { return nil }

func (r *recordingSink) kinds() []domain.EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.EventKind, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Kind
	}
	return out
}

func (r *recordingSink) byKind(kind domain.EventKind) []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Event
	for _, ev := range r.events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

// testEmitter wires the recording sink into an emitter with a silent logger.
func testEmitter(sink *recordingSink) *emitter {
	return newEmitter(sink, sink, zerolog.Nop())
}
