package postgres

import (
	"context"
	"errors"
	"fmt"

	"tipbot/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository. It holds the local
// mirror of ledger account balances.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Upsert writes the latest known ledger balances for an account.
func (r *AccountRepo) Upsert(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (id, balance_unlocked, balance_locked, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET balance_unlocked = EXCLUDED.balance_unlocked,
		    balance_locked = EXCLUDED.balance_locked`

	_, err := r.pool.Exec(ctx, query, a.ID, a.BalanceUnlocked, a.BalanceLocked, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert account: %w", err)
	}
	return nil
}

// CreateTx inserts a new account mirror row within a transaction.
func (r *AccountRepo) CreateTx(ctx context.Context, tx pgx.Tx, a *domain.Account) error {
	query := `INSERT INTO accounts (id, balance_unlocked, balance_locked, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, query, a.ID, a.BalanceUnlocked, a.BalanceLocked, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID fetches an account mirror by ledger address.
func (r *AccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT id, balance_unlocked, balance_locked, created_at
		FROM accounts WHERE id = $1`

	a := &domain.Account{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.BalanceUnlocked, &a.BalanceLocked, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}
