package postgres

import (
	"context"
	"fmt"
	"time"

	"tipbot/internal/core/domain"

	"github.com/google/uuid"
)

// UnclaimedTipRepo implements ports.UnclaimedTipRepository.
type UnclaimedTipRepo struct {
	pool Pool
}

// NewUnclaimedTipRepo creates a new UnclaimedTipRepo.
func NewUnclaimedTipRepo(pool Pool) *UnclaimedTipRepo {
	return &UnclaimedTipRepo{pool: pool}
}

const unclaimedColumns = `id, transfer_id, sender_account_id, recipient_account_id, amount,
	timeout_days, sender_username, recipient_username, recipient_external_id, status, created_at`

// Create inserts a pending unclaimed tip record.
func (r *UnclaimedTipRepo) Create(ctx context.Context, tip *domain.UnclaimedTip) error {
	query := `INSERT INTO unclaimed_tips
		(id, transfer_id, sender_account_id, recipient_account_id, amount,
		 timeout_days, sender_username, recipient_username, recipient_external_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		tip.ID, tip.TransferID, tip.SenderAccountID, tip.RecipientAccountID, tip.Amount,
		tip.TimeoutDays, tip.SenderUsername, tip.RecipientUsername, tip.RecipientExternalID,
		tip.Status, tip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert unclaimed tip: %w", err)
	}
	return nil
}

// ListPendingByRecipient returns all pending tips addressed to a
// platform identity.
func (r *UnclaimedTipRepo) ListPendingByRecipient(ctx context.Context, recipientExternalID int64) ([]domain.UnclaimedTip, error) {
	query := `SELECT ` + unclaimedColumns + ` FROM unclaimed_tips
		WHERE recipient_external_id = $1 AND status = 'pending'
		ORDER BY created_at`

	return r.list(ctx, query, recipientExternalID)
}

// ListExpired returns pending tips whose claim window has elapsed.
func (r *UnclaimedTipRepo) ListExpired(ctx context.Context, now time.Time) ([]domain.UnclaimedTip, error) {
	query := `SELECT ` + unclaimedColumns + ` FROM unclaimed_tips
		WHERE status = 'pending'
		  AND created_at + make_interval(days => timeout_days) <= $1
		ORDER BY created_at`

	return r.list(ctx, query, now)
}

// MarkClaimed transitions a pending tip to claimed. Returns false when
// the record was no longer pending.
func (r *UnclaimedTipRepo) MarkClaimed(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.transition(ctx, id, domain.UnclaimedTipStatusClaimed)
}

// MarkRefunded transitions a pending tip to refunded. Returns false when
// the record was no longer pending.
func (r *UnclaimedTipRepo) MarkRefunded(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.transition(ctx, id, domain.UnclaimedTipStatusRefunded)
}

func (r *UnclaimedTipRepo) transition(ctx context.Context, id uuid.UUID, to domain.UnclaimedTipStatus) (bool, error) {
	query := `UPDATE unclaimed_tips SET status = $1
		WHERE id = $2 AND status = 'pending'`

	tag, err := r.pool.Exec(ctx, query, to, id)
	if err != nil {
		return false, fmt.Errorf("transition unclaimed tip: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *UnclaimedTipRepo) list(ctx context.Context, query string, args ...any) ([]domain.UnclaimedTip, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list unclaimed tips: %w", err)
	}
	defer rows.Close()

	var tips []domain.UnclaimedTip
	for rows.Next() {
		var t domain.UnclaimedTip
		err := rows.Scan(&t.ID, &t.TransferID, &t.SenderAccountID, &t.RecipientAccountID, &t.Amount,
			&t.TimeoutDays, &t.SenderUsername, &t.RecipientUsername, &t.RecipientExternalID,
			&t.Status, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan unclaimed tip: %w", err)
		}
		tips = append(tips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unclaimed tips: %w", err)
	}
	return tips, nil
}
