package postgres

import (
	"context"
	"errors"
	"fmt"

	"tipbot/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// UserRepo implements ports.UserRepository.
type UserRepo struct {
	pool Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(pool Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, username, external_id, primary_account_id, disclaimer_accepted, created_at`

// Create inserts a new user.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, username, external_id, primary_account_id, disclaimer_accepted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		u.ID, u.Username, u.ExternalID, u.PrimaryAccountID, u.DisclaimerAccepted, u.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a user by internal id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.pool.QueryRow(ctx, query, id), "get user by id")
}

// GetByExternalID fetches a user by their messaging-platform id.
func (r *UserRepo) GetByExternalID(ctx context.Context, externalID int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE external_id = $1`
	return r.scanUser(r.pool.QueryRow(ctx, query, externalID), "get user by external id")
}

// SetPrimaryAccount sets the user's primary account pointer within a
// database transaction.
func (r *UserRepo) SetPrimaryAccount(ctx context.Context, tx pgx.Tx, userID, accountID string) error {
	query := `UPDATE users SET primary_account_id = $1 WHERE id = $2`

	tag, err := tx.Exec(ctx, query, accountID, userID)
	if err != nil {
		return fmt.Errorf("set primary account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", userID)
	}
	return nil
}

// SetDisclaimerAccepted records the user's consent.
func (r *UserRepo) SetDisclaimerAccepted(ctx context.Context, userID string) error {
	query := `UPDATE users SET disclaimer_accepted = TRUE WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("set disclaimer accepted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", userID)
	}
	return nil
}

func (r *UserRepo) scanUser(row pgx.Row, op string) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Username, &u.ExternalID, &u.PrimaryAccountID, &u.DisclaimerAccepted, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}
