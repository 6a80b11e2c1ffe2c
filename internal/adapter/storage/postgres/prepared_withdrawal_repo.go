package postgres

import (
	"context"
	"errors"
	"fmt"

	"tipbot/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// PreparedWithdrawalRepo implements ports.PreparedWithdrawalRepository.
type PreparedWithdrawalRepo struct {
	pool Pool
}

// NewPreparedWithdrawalRepo creates a new PreparedWithdrawalRepo.
func NewPreparedWithdrawalRepo(pool Pool) *PreparedWithdrawalRepo {
	return &PreparedWithdrawalRepo{pool: pool}
}

// Create stores a withdrawal preview.
func (r *PreparedWithdrawalRepo) Create(ctx context.Context, w *domain.PreparedWithdrawal) error {
	query := `INSERT INTO prepared_withdrawals (id, account_id, amount, fee, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query, w.ID, w.AccountID, w.Amount, w.Fee, w.Address, w.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert prepared withdrawal: %w", err)
	}
	return nil
}

// Get fetches a preview scoped to the account that prepared it.
func (r *PreparedWithdrawalRepo) Get(ctx context.Context, accountID, id string) (*domain.PreparedWithdrawal, error) {
	query := `SELECT id, account_id, amount, fee, address, created_at
		FROM prepared_withdrawals WHERE account_id = $1 AND id = $2`

	w := &domain.PreparedWithdrawal{}
	err := r.pool.QueryRow(ctx, query, accountID, id).Scan(&w.ID, &w.AccountID, &w.Amount, &w.Fee, &w.Address, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get prepared withdrawal: %w", err)
	}
	return w, nil
}
