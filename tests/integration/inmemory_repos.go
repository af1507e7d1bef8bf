package integration

import (
	"context"
	"sync"
	"time"

	"custody-ledger/internal/core/domain"

	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ledgerStore is an in-memory implementation of every persistence port,
// backing the full HTTP stack in these tests. Begin snapshots the whole
// store and Rollback restores it, so service-level atomicity carries over.
type ledgerStore struct {
	mu         sync.Mutex
	accounts   map[domain.Address]*domain.Account
	allowances map[allowanceKey]*uint256.Int
	state      domain.LedgerState
	requests   map[domain.RequestID]*domain.PendingRequest
	roles      domain.RoleSet
	signers    map[domain.Address]bool
	operators  map[domain.Address]*domain.Operator
	byUsername map[string]*domain.Operator
	events     []domain.Event
	snap       *storeSnapshot
}

type allowanceKey struct {
	owner   domain.Address
	spender domain.Address
}

type storeSnapshot struct {
	accounts   map[domain.Address]*domain.Account
	allowances map[allowanceKey]*uint256.Int
	state      domain.LedgerState
	requests   map[domain.RequestID]*domain.PendingRequest
	roles      domain.RoleSet
	signers    map[domain.Address]bool
}

func newLedgerStore() *ledgerStore {
	return &ledgerStore{
		accounts:   make(map[domain.Address]*domain.Account),
		allowances: make(map[allowanceKey]*uint256.Int),
		state: domain.LedgerState{
			Supply:  uint256.NewInt(0),
			Ceiling: uint256.NewInt(0),
		},
		requests:   make(map[domain.RequestID]*domain.PendingRequest),
		signers:    make(map[domain.Address]bool),
		operators:  make(map[domain.Address]*domain.Operator),
		byUsername: make(map[string]*domain.Operator),
	}
}

func copyAccount(a *domain.Account) *domain.Account {
	c := *a
	c.Balance = new(uint256.Int).Set(a.Balance)
	return &c
}

func (s *ledgerStore) takeSnapshot() {
	snap := &storeSnapshot{
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

func (s *ledgerStore) restoreSnapshot() {
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

func (s *ledgerStore) Begin(ctx context.Context) (pgx.Tx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.takeSnapshot()
	return &ledgerTx{store: s}, nil
}

type ledgerTx struct {
	store *ledgerStore
	done  bool
}

func (t *ledgerTx) Commit(ctx context.Context) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.done = true
	t.store.snap = nil
	return nil
}

func (t *ledgerTx) Rollback(ctx context.Context) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if t.done {
		return nil
	}
	t.done = true
	t.store.restoreSnapshot()
	return nil
}

func (t *ledgerTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *ledgerTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *ledgerTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *ledgerTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *ledgerTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *ledgerTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *ledgerTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *ledgerTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *ledgerTx) Conn() *pgx.Conn                                              { return nil }

// --- AccountRepository ---

func (s *ledgerStore) Get(ctx context.Context, address domain.Address) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[address]
	if !ok {
		return nil, nil
	}
	return copyAccount(a), nil
}

func (s *ledgerStore) GetForUpdate(ctx context.Context, tx pgx.Tx, address domain.Address) (*domain.Account, error) {
	return s.Get(ctx, address)
}

func (s *ledgerStore) UpsertBalance(ctx context.Context, tx pgx.Tx, address domain.Address, balance *uint256.Int) error {
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

func (s *ledgerStore) SetBlocked(ctx context.Context, address domain.Address, blocked bool) error {
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

func (s *ledgerStore) SetSwept(ctx context.Context, tx pgx.Tx, address domain.Address) error {
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

// --- AllowanceRepository (port view) ---

type allowanceView struct{ s *ledgerStore }

func (v allowanceView) Get(ctx context.Context, owner, spender domain.Address) (*uint256.Int, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	a, ok := v.s.allowances[allowanceKey{owner, spender}]
	if !ok {
		return uint256.NewInt(0), nil
	}
	return new(uint256.Int).Set(a), nil
}

func (v allowanceView) GetForUpdate(ctx context.Context, tx pgx.Tx, owner, spender domain.Address) (*uint256.Int, error) {
	return v.Get(ctx, owner, spender)
}

func (v allowanceView) Set(ctx context.Context, tx pgx.Tx, owner, spender domain.Address, amount *uint256.Int) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.allowances[allowanceKey{owner, spender}] = new(uint256.Int).Set(amount)
	return nil
}

// --- LedgerStateRepository (port view) ---

type stateView struct{ s *ledgerStore }

func (v stateView) Get(ctx context.Context) (*domain.LedgerState, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return &domain.LedgerState{
		Supply:         new(uint256.Int).Set(v.s.state.Supply),
		Ceiling:        new(uint256.Int).Set(v.s.state.Ceiling),
		RequestCounter: v.s.state.RequestCounter,
	}, nil
}

func (v stateView) GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.LedgerState, error) {
	return v.Get(ctx)
}

func (v stateView) SetSupply(ctx context.Context, tx pgx.Tx, supply *uint256.Int) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.state.Supply = new(uint256.Int).Set(supply)
	return nil
}

func (v stateView) SetCeiling(ctx context.Context, tx pgx.Tx, ceiling *uint256.Int) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.state.Ceiling = new(uint256.Int).Set(ceiling)
	return nil
}

func (v stateView) NextRequestCounter(ctx context.Context, tx pgx.Tx) (uint64, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.state.RequestCounter++
	return v.s.state.RequestCounter, nil
}

// --- RequestRepository (port view) ---

type requestView struct{ s *ledgerStore }

func (v requestView) Create(ctx context.Context, tx pgx.Tx, req *domain.PendingRequest) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	c := *req
	v.s.requests[req.ID] = &c
	return nil
}

func (v requestView) Consume(ctx context.Context, tx pgx.Tx, id domain.RequestID) (*domain.PendingRequest, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	req, ok := v.s.requests[id]
	if !ok {
		return nil, nil
	}
	delete(v.s.requests, id)
	return req, nil
}

func (v requestView) List(ctx context.Context) ([]domain.PendingRequest, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	out := make([]domain.PendingRequest, 0, len(v.s.requests))
	for _, r := range v.s.requests {
		out = append(out, *r)
	}
	return out, nil
}

// --- RoleRepository ---

func (s *ledgerStore) GetRoles(ctx context.Context) (domain.RoleSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roles, nil
}

func (s *ledgerStore) GetRolesForUpdate(ctx context.Context, tx pgx.Tx) (domain.RoleSet, error) {
	return s.GetRoles(ctx)
}

func (s *ledgerStore) SetRole(ctx context.Context, tx pgx.Tx, role domain.Role, address domain.Address) error {
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

func (s *ledgerStore) IsSigner(ctx context.Context, address domain.Address) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signers[address], nil
}

func (s *ledgerStore) AddSigner(ctx context.Context, address domain.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signers[address] = true
	return nil
}

func (s *ledgerStore) RemoveSigner(ctx context.Context, address domain.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.signers, address)
	return nil
}

// --- OperatorRepository (port view) ---

type operatorView struct{ s *ledgerStore }

func (v operatorView) Create(ctx context.Context, op *domain.Operator) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	c := *op
	v.s.operators[op.Address] = &c
	v.s.byUsername[op.Username] = &c
	return nil
}

func (v operatorView) GetByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	op, ok := v.s.byUsername[username]
	if !ok {
		return nil, nil
	}
	c := *op
	return &c, nil
}

func (v operatorView) GetByAddress(ctx context.Context, address domain.Address) (*domain.Operator, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	op, ok := v.s.operators[address]
	if !ok {
		return nil, nil
	}
	c := *op
	return &c, nil
}

// --- EventRepository ---

func (s *ledgerStore) Append(ctx context.Context, ev domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *ledgerStore) eventKinds() []domain.EventKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.EventKind, len(s.events))
	for i, ev := range s.events {
		out[i] = ev.Kind
	}
	return out
}
