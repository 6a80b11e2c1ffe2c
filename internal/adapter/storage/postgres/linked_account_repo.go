package postgres

import (
	"context"
	"errors"
	"fmt"

	"tipbot/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// LinkedAccountRepo implements ports.LinkedAccountRepository.
type LinkedAccountRepo struct {
	pool Pool
}

// NewLinkedAccountRepo creates a new LinkedAccountRepo.
func NewLinkedAccountRepo(pool Pool) *LinkedAccountRepo {
	return &LinkedAccountRepo{pool: pool}
}

const linkedColumns = `user_id, account_id, is_primary, balance_unlocked, created_at`

// Create inserts a user↔account edge within a transaction. The unique
// index on account_id enforces single ownership across all users.
func (r *LinkedAccountRepo) Create(ctx context.Context, tx pgx.Tx, edge *domain.LinkedAccount) error {
	query := `INSERT INTO linked_accounts (user_id, account_id, is_primary, balance_unlocked, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, query,
		edge.UserID, edge.AccountID, edge.Primary, edge.BalanceUnlocked, edge.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert linked account: %w", err)
	}
	return nil
}

// Get fetches the edge between a user and an account.
func (r *LinkedAccountRepo) Get(ctx context.Context, userID, accountID string) (*domain.LinkedAccount, error) {
	query := `SELECT ` + linkedColumns + ` FROM linked_accounts
		WHERE user_id = $1 AND account_id = $2`
	return r.scanEdge(r.pool.QueryRow(ctx, query, userID, accountID), "get linked account")
}

// GetPrimary fetches the user's primary edge.
func (r *LinkedAccountRepo) GetPrimary(ctx context.Context, userID string) (*domain.LinkedAccount, error) {
	query := `SELECT ` + linkedColumns + ` FROM linked_accounts
		WHERE user_id = $1 AND is_primary`
	return r.scanEdge(r.pool.QueryRow(ctx, query, userID), "get primary linked account")
}

// GetByAccountID fetches the edge owning an account, across all users.
func (r *LinkedAccountRepo) GetByAccountID(ctx context.Context, accountID string) (*domain.LinkedAccount, error) {
	query := `SELECT ` + linkedColumns + ` FROM linked_accounts
		WHERE account_id = $1`
	return r.scanEdge(r.pool.QueryRow(ctx, query, accountID), "get linked account by account id")
}

// HasPrimary reports whether the user already has a primary edge.
func (r *LinkedAccountRepo) HasPrimary(ctx context.Context, userID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM linked_accounts WHERE user_id = $1 AND is_primary)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check primary linked account: %w", err)
	}
	return exists, nil
}

// UpdateBalance writes the mirrored unlocked balance onto the edge.
func (r *LinkedAccountRepo) UpdateBalance(ctx context.Context, userID, accountID string, balanceUnlocked int64) error {
	query := `UPDATE linked_accounts SET balance_unlocked = $1
		WHERE user_id = $2 AND account_id = $3`

	tag, err := r.pool.Exec(ctx, query, balanceUnlocked, userID, accountID)
	if err != nil {
		return fmt.Errorf("update linked account balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("linked account not found: %s/%s", userID, accountID)
	}
	return nil
}

// ListConsolidatable returns all non-primary edges with funds to move,
// across every user.
func (r *LinkedAccountRepo) ListConsolidatable(ctx context.Context) ([]domain.LinkedAccount, error) {
	query := `SELECT ` + linkedColumns + ` FROM linked_accounts
		WHERE NOT is_primary AND balance_unlocked > 0
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list consolidatable edges: %w", err)
	}
	defer rows.Close()

	var edges []domain.LinkedAccount
	for rows.Next() {
		var e domain.LinkedAccount
		if err := rows.Scan(&e.UserID, &e.AccountID, &e.Primary, &e.BalanceUnlocked, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan linked account: %w", err)
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate linked accounts: %w", err)
	}
	return edges, nil
}

func (r *LinkedAccountRepo) scanEdge(row pgx.Row, op string) (*domain.LinkedAccount, error) {
	e := &domain.LinkedAccount{}
	err := row.Scan(&e.UserID, &e.AccountID, &e.Primary, &e.BalanceUnlocked, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return e, nil
}
