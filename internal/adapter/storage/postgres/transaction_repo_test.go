package postgres

import (
	"context"
	"testing"
	"time"

	"tipbot/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransaction(amount int64) *domain.Transaction {
	return &domain.Transaction{
		ID:                uuid.New(),
		UserID:            "user-1",
		AccountID:         "acct-1",
		Platform:          "github",
		ExternalID:        1001,
		Timestamp:         time.Now().UTC().Truncate(time.Microsecond),
		TransferType:      domain.TransferTypeTip,
		Amount:            amount,
		Fee:               0,
		Status:            domain.TransactionStatusCompleted,
		TransferID:        "tr-1",
		SenderUsername:    "alice",
		RecipientUsername: "bob",
	}
}

func transactionColumns() []string {
	return []string{"id", "user_id", "account_id", "platform", "external_id", "ts", "transfer_type",
		"amount", "fee", "status", "transfer_id", "sender_username", "recipient_username"}
}

func transactionRow(txn *domain.Transaction) *pgxmock.Rows {
	return pgxmock.NewRows(transactionColumns()).AddRow(
		txn.ID, txn.UserID, txn.AccountID, txn.Platform, txn.ExternalID,
		txn.Timestamp, txn.TransferType, txn.Amount, txn.Fee, txn.Status,
		txn.TransferID, txn.SenderUsername, txn.RecipientUsername,
	)
}

func TestTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(-500)

	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(txn.ID, txn.UserID, txn.AccountID, txn.Platform, txn.ExternalID,
			txn.Timestamp, txn.TransferType, txn.Amount, txn.Fee, txn.Status,
			txn.TransferID, txn.SenderUsername, txn.RecipientUsername).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), txn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListByAccount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(500)

	mock.ExpectQuery("SELECT .+ FROM transactions").
		WithArgs("acct-1", 20).
		WillReturnRows(transactionRow(txn))

	txns, err := repo.ListByAccount(context.Background(), "acct-1", 20)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, txn.TransferID, txns[0].TransferID)
	assert.Equal(t, int64(500), txns[0].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListByAccount_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM transactions").
		WithArgs("acct-9", 20).
		WillReturnRows(pgxmock.NewRows(transactionColumns()))

	txns, err := repo.ListByAccount(context.Background(), "acct-9", 20)
	require.NoError(t, err)
	assert.Empty(t, txns)
	assert.NoError(t, mock.ExpectationsWereMet())
}
