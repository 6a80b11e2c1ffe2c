package postgres

import (
	"context"
	"fmt"

	"tipbot/internal/core/domain"
)

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create appends a transaction record.
func (r *TransactionRepo) Create(ctx context.Context, txn *domain.Transaction) error {
	query := `INSERT INTO transactions
		(id, user_id, account_id, platform, external_id, ts, transfer_type,
		 amount, fee, status, transfer_id, sender_username, recipient_username)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, query,
		txn.ID, txn.UserID, txn.AccountID, txn.Platform, txn.ExternalID,
		txn.Timestamp, txn.TransferType, txn.Amount, txn.Fee, txn.Status,
		txn.TransferID, txn.SenderUsername, txn.RecipientUsername,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListByAccount returns the most recent transactions for an account.
func (r *TransactionRepo) ListByAccount(ctx context.Context, accountID string, limit int) ([]domain.Transaction, error) {
	query := `SELECT id, user_id, account_id, platform, external_id, ts, transfer_type,
		       amount, fee, status, transfer_id, sender_username, recipient_username
		FROM transactions
		WHERE account_id = $1
		ORDER BY ts DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.UserID, &t.AccountID, &t.Platform, &t.ExternalID,
			&t.Timestamp, &t.TransferType, &t.Amount, &t.Fee, &t.Status,
			&t.TransferID, &t.SenderUsername, &t.RecipientUsername)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txns, nil
}
