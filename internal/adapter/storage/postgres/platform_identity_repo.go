package postgres

import (
	"context"
	"errors"
	"fmt"

	"tipbot/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// PlatformIdentityRepo implements ports.PlatformIdentityRepository.
type PlatformIdentityRepo struct {
	pool Pool
}

// NewPlatformIdentityRepo creates a new PlatformIdentityRepo.
func NewPlatformIdentityRepo(pool Pool) *PlatformIdentityRepo {
	return &PlatformIdentityRepo{pool: pool}
}

// GetByExternalID fetches an identity by messaging-platform id.
func (r *PlatformIdentityRepo) GetByExternalID(ctx context.Context, externalID int64) (*domain.PlatformIdentity, error) {
	query := `SELECT external_id, username, account_id, created_at
		FROM platform_identities WHERE external_id = $1`

	p := &domain.PlatformIdentity{}
	err := r.pool.QueryRow(ctx, query, externalID).Scan(&p.ExternalID, &p.Username, &p.AccountID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get platform identity: %w", err)
	}
	return p, nil
}

// CreateTx inserts an identity within a transaction, alongside its
// account mirror row.
func (r *PlatformIdentityRepo) CreateTx(ctx context.Context, tx pgx.Tx, identity *domain.PlatformIdentity) error {
	query := `INSERT INTO platform_identities (external_id, username, account_id, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, query, identity.ExternalID, identity.Username, identity.AccountID, identity.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert platform identity: %w", err)
	}
	return nil
}
