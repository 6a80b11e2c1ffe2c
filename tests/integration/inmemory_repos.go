package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tipbot/internal/core/domain"
	"tipbot/internal/core/ports"
	"tipbot/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// fakeTx satisfies pgx.Tx for repos that take a transaction handle; the
// in-memory repos apply writes immediately, so commit and rollback are
// no-ops.
type fakeTx struct {
	pgx.Tx
}

func (fakeTx) Commit(context.Context) error   { return nil }
func (fakeTx) Rollback(context.Context) error { return nil }

type inMemoryTransactor struct{}

func (inMemoryTransactor) Begin(context.Context) (pgx.Tx, error) { return fakeTx{}, nil }

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[string]*domain.User)}
}

func (r *inMemoryUserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *inMemoryUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *inMemoryUserRepo) GetByExternalID(_ context.Context, externalID int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ExternalID != nil && *u.ExternalID == externalID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryUserRepo) SetPrimaryAccount(_ context.Context, _ pgx.Tx, userID, accountID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("user not found: %s", userID)
	}
	u.PrimaryAccountID = &accountID
	return nil
}

func (r *inMemoryUserRepo) SetDisclaimerAccepted(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("user not found: %s", userID)
	}
	u.DisclaimerAccepted = true
	return nil
}

// --- In-Memory Account Repo ---

type inMemoryAccountRepo struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

func newInMemoryAccountRepo() *inMemoryAccountRepo {
	return &inMemoryAccountRepo{accounts: make(map[string]*domain.Account)}
}

func (r *inMemoryAccountRepo) Upsert(_ context.Context, a *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.accounts[a.ID] = &cp
	return nil
}

func (r *inMemoryAccountRepo) CreateTx(_ context.Context, _ pgx.Tx, a *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.accounts[a.ID] = &cp
	return nil
}

func (r *inMemoryAccountRepo) GetByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

// --- In-Memory Linked Account Repo ---

type inMemoryLinkedAccountRepo struct {
	mu    sync.RWMutex
	edges []*domain.LinkedAccount
}

func newInMemoryLinkedAccountRepo() *inMemoryLinkedAccountRepo {
	return &inMemoryLinkedAccountRepo{}
}

func (r *inMemoryLinkedAccountRepo) Create(_ context.Context, _ pgx.Tx, edge *domain.LinkedAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.edges {
		if e.AccountID == edge.AccountID {
			return fmt.Errorf("account already linked: %s", edge.AccountID)
		}
	}
	cp := *edge
	r.edges = append(r.edges, &cp)
	return nil
}

func (r *inMemoryLinkedAccountRepo) Get(_ context.Context, userID, accountID string) (*domain.LinkedAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.edges {
		if e.UserID == userID && e.AccountID == accountID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryLinkedAccountRepo) GetPrimary(_ context.Context, userID string) (*domain.LinkedAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.edges {
		if e.UserID == userID && e.Primary {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryLinkedAccountRepo) GetByAccountID(_ context.Context, accountID string) (*domain.LinkedAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.edges {
		if e.AccountID == accountID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryLinkedAccountRepo) HasPrimary(_ context.Context, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.edges {
		if e.UserID == userID && e.Primary {
			return true, nil
		}
	}
	return false, nil
}

func (r *inMemoryLinkedAccountRepo) UpdateBalance(_ context.Context, userID, accountID string, balanceUnlocked int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.edges {
		if e.UserID == userID && e.AccountID == accountID {
			e.BalanceUnlocked = balanceUnlocked
			return nil
		}
	}
	return fmt.Errorf("linked account not found: %s/%s", userID, accountID)
}

func (r *inMemoryLinkedAccountRepo) ListConsolidatable(_ context.Context) ([]domain.LinkedAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.LinkedAccount
	for _, e := range r.edges {
		if e.Consolidatable() {
			out = append(out, *e)
		}
	}
	return out, nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu   sync.RWMutex
	txns []domain.Transaction
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{}
}

func (r *inMemoryTransactionRepo) Create(_ context.Context, txn *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txns = append(r.txns, *txn)
	return nil
}

func (r *inMemoryTransactionRepo) ListByAccount(_ context.Context, accountID string, limit int) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Transaction
	for i := len(r.txns) - 1; i >= 0 && len(out) < limit; i-- {
		if r.txns[i].AccountID == accountID {
			out = append(out, r.txns[i])
		}
	}
	return out, nil
}

func (r *inMemoryTransactionRepo) all() []domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Transaction, len(r.txns))
	copy(out, r.txns)
	return out
}

// --- In-Memory Unclaimed Tip Repo ---

type inMemoryUnclaimedTipRepo struct {
	mu   sync.Mutex
	tips map[uuid.UUID]*domain.UnclaimedTip
}

func newInMemoryUnclaimedTipRepo() *inMemoryUnclaimedTipRepo {
	return &inMemoryUnclaimedTipRepo{tips: make(map[uuid.UUID]*domain.UnclaimedTip)}
}

func (r *inMemoryUnclaimedTipRepo) Create(_ context.Context, tip *domain.UnclaimedTip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *tip
	r.tips[tip.ID] = &cp
	return nil
}

func (r *inMemoryUnclaimedTipRepo) ListPendingByRecipient(_ context.Context, recipientExternalID int64) ([]domain.UnclaimedTip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.UnclaimedTip
	for _, tip := range r.tips {
		if tip.RecipientExternalID == recipientExternalID && tip.Status == domain.UnclaimedTipStatusPending {
			out = append(out, *tip)
		}
	}
	return out, nil
}

func (r *inMemoryUnclaimedTipRepo) ListExpired(_ context.Context, now time.Time) ([]domain.UnclaimedTip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.UnclaimedTip
	for _, tip := range r.tips {
		if tip.Status == domain.UnclaimedTipStatusPending && tip.Expired(now) {
			out = append(out, *tip)
		}
	}
	return out, nil
}

// transition only moves records still pending, mirroring the conditional
// UPDATE the real store runs.
func (r *inMemoryUnclaimedTipRepo) transition(id uuid.UUID, to domain.UnclaimedTipStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tip, ok := r.tips[id]
	if !ok || tip.Status != domain.UnclaimedTipStatusPending {
		return false, nil
	}
	tip.Status = to
	return true, nil
}

func (r *inMemoryUnclaimedTipRepo) MarkClaimed(_ context.Context, id uuid.UUID) (bool, error) {
	return r.transition(id, domain.UnclaimedTipStatusClaimed)
}

func (r *inMemoryUnclaimedTipRepo) MarkRefunded(_ context.Context, id uuid.UUID) (bool, error) {
	return r.transition(id, domain.UnclaimedTipStatusRefunded)
}

func (r *inMemoryUnclaimedTipRepo) get(id uuid.UUID) *domain.UnclaimedTip {
	r.mu.Lock()
	defer r.mu.Unlock()
	tip, ok := r.tips[id]
	if !ok {
		return nil
	}
	cp := *tip
	return &cp
}

// --- In-Memory Platform Identity Repo ---

type inMemoryPlatformIdentityRepo struct {
	mu         sync.RWMutex
	identities map[int64]*domain.PlatformIdentity
}

func newInMemoryPlatformIdentityRepo() *inMemoryPlatformIdentityRepo {
	return &inMemoryPlatformIdentityRepo{identities: make(map[int64]*domain.PlatformIdentity)}
}

func (r *inMemoryPlatformIdentityRepo) GetByExternalID(_ context.Context, externalID int64) (*domain.PlatformIdentity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.identities[externalID]
	if !ok {
		return nil, nil
	}
	cp := *id
	return &cp, nil
}

func (r *inMemoryPlatformIdentityRepo) CreateTx(_ context.Context, _ pgx.Tx, identity *domain.PlatformIdentity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *identity
	r.identities[identity.ExternalID] = &cp
	return nil
}

// --- In-Memory Bot Config Repo ---

type inMemoryBotConfigRepo struct {
	mu  sync.RWMutex
	cfg *domain.BotConfig
}

func newInMemoryBotConfigRepo(cfg *domain.BotConfig) *inMemoryBotConfigRepo {
	return &inMemoryBotConfigRepo{cfg: cfg}
}

func (r *inMemoryBotConfigRepo) Get(context.Context) (*domain.BotConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.cfg == nil {
		return nil, nil
	}
	cp := *r.cfg
	return &cp, nil
}

// --- In-Memory Prepared Withdrawal Repo ---

type inMemoryPreparedWithdrawalRepo struct {
	mu       sync.RWMutex
	prepared map[string]*domain.PreparedWithdrawal
}

func newInMemoryPreparedWithdrawalRepo() *inMemoryPreparedWithdrawalRepo {
	return &inMemoryPreparedWithdrawalRepo{prepared: make(map[string]*domain.PreparedWithdrawal)}
}

func (r *inMemoryPreparedWithdrawalRepo) Create(_ context.Context, w *domain.PreparedWithdrawal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *w
	r.prepared[w.ID] = &cp
	return nil
}

func (r *inMemoryPreparedWithdrawalRepo) Get(_ context.Context, accountID, id string) (*domain.PreparedWithdrawal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.prepared[id]
	if !ok || w.AccountID != accountID {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

// --- Fake Ledger ---

// fakeLedger is an in-memory double of the external wallet service. It
// enforces balances, so a tip larger than the sender holds is rejected
// the way the real ledger rejects it.
type fakeLedger struct {
	mu       sync.Mutex
	balances map[string]int64
	nextID   int

	// failTransfersTo rejects transfers into the named account,
	// simulating a ledger-side outage for one destination.
	failTransfersTo string
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{balances: make(map[string]int64)}
}

func (l *fakeLedger) seed(accountID string, balance int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[accountID] = balance
}

func (l *fakeLedger) balance(accountID string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[accountID]
}

func (l *fakeLedger) CreateAccount(context.Context) (*domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	id := fmt.Sprintf("acct-%d", l.nextID)
	l.balances[id] = 0
	return &domain.Account{ID: id, CreatedAt: time.Now().UTC()}, nil
}

func (l *fakeLedger) GetAccount(_ context.Context, accountID string) (*domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	balance, ok := l.balances[accountID]
	if !ok {
		return nil, apperror.ServiceFailure("Account not found.", fmt.Errorf("no account %s", accountID))
	}
	return &domain.Account{ID: accountID, BalanceUnlocked: balance}, nil
}

func (l *fakeLedger) Transfer(_ context.Context, fromAccountID, toAccountID string, amount int64) (*ports.Transfer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if toAccountID == l.failTransfersTo {
		return nil, apperror.ServiceFailure("Transfer temporarily unavailable.", fmt.Errorf("destination %s unavailable", toAccountID))
	}
	if l.balances[fromAccountID] < amount {
		return nil, apperror.ServiceFailure("Insufficient balance to send tip.", fmt.Errorf("balance %d < %d", l.balances[fromAccountID], amount))
	}
	l.balances[fromAccountID] -= amount
	l.balances[toAccountID] += amount
	l.nextID++
	return &ports.Transfer{
		ID:            fmt.Sprintf("tr-%d", l.nextID),
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Amount:        amount,
		Timestamp:     time.Now().UTC(),
	}, nil
}

func (l *fakeLedger) PrepareWithdrawal(_ context.Context, accountID string, amount int64, address string) (*domain.PreparedWithdrawal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fee := int64(10)
	if l.balances[accountID] < amount+fee {
		return nil, apperror.ServiceFailure("Insufficient balance for withdrawal.", fmt.Errorf("balance %d < %d", l.balances[accountID], amount+fee))
	}
	l.nextID++
	return &domain.PreparedWithdrawal{
		ID:        fmt.Sprintf("prep-%d", l.nextID),
		AccountID: accountID,
		Amount:    amount,
		Fee:       fee,
		Address:   address,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (l *fakeLedger) SendWithdrawal(_ context.Context, accountID, preparedID string) (*ports.Withdrawal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	return &ports.Withdrawal{
		ID:        fmt.Sprintf("wd-%d", l.nextID),
		AccountID: accountID,
		Status:    "sent",
		Timestamp: time.Now().UTC(),
	}, nil
}

// --- Fake Platform ---

type fakePlatform struct {
	mu      sync.Mutex
	users   map[string]int64 // handle -> external id
	replies []string
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{users: make(map[string]int64)}
}

func (p *fakePlatform) addUser(handle string, externalID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.users[handle] = externalID
}

func (p *fakePlatform) LookupUser(_ context.Context, username string) (*ports.PlatformUser, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id, ok := p.users[username]
	if !ok {
		return nil, nil
	}
	return &ports.PlatformUser{ID: id, Username: username}, nil
}

func (p *fakePlatform) PostReply(_ context.Context, _ string, body string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.replies = append(p.replies, body)
	return nil
}

func (p *fakePlatform) lastReply() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.replies) == 0 {
		return ""
	}
	return p.replies[len(p.replies)-1]
}

func (p *fakePlatform) replyCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.replies)
}
