package postgres

import (
	"context"
	"testing"
	"time"

	"tipbot/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEdge(primary bool) *domain.LinkedAccount {
	return &domain.LinkedAccount{
		UserID:          "user-1",
		AccountID:       "acct-1",
		Primary:         primary,
		BalanceUnlocked: 500,
		CreatedAt:       time.Now().UTC().Truncate(time.Microsecond),
	}
}

func edgeColumns() []string {
	return []string{"user_id", "account_id", "is_primary", "balance_unlocked", "created_at"}
}

func edgeRow(e *domain.LinkedAccount) *pgxmock.Rows {
	return pgxmock.NewRows(edgeColumns()).
		AddRow(e.UserID, e.AccountID, e.Primary, e.BalanceUnlocked, e.CreatedAt)
}

func TestLinkedAccountRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLinkedAccountRepo(mock)
	e := newTestEdge(true)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO linked_accounts").
		WithArgs(e.UserID, e.AccountID, e.Primary, e.BalanceUnlocked, e.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, e)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkedAccountRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLinkedAccountRepo(mock)
	e := newTestEdge(false)

	mock.ExpectQuery("SELECT .+ FROM linked_accounts").
		WithArgs(e.UserID, e.AccountID).
		WillReturnRows(edgeRow(e))

	result, err := repo.Get(context.Background(), e.UserID, e.AccountID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, e.BalanceUnlocked, result.BalanceUnlocked)
	assert.False(t, result.Primary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkedAccountRepo_GetPrimary_None(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLinkedAccountRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM linked_accounts").
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows(edgeColumns()))

	result, err := repo.GetPrimary(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkedAccountRepo_GetByAccountID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLinkedAccountRepo(mock)
	e := newTestEdge(true)

	mock.ExpectQuery("SELECT .+ FROM linked_accounts").
		WithArgs(e.AccountID).
		WillReturnRows(edgeRow(e))

	result, err := repo.GetByAccountID(context.Background(), e.AccountID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, e.UserID, result.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkedAccountRepo_HasPrimary(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLinkedAccountRepo(mock)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	has, err := repo.HasPrimary(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, has)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkedAccountRepo_UpdateBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLinkedAccountRepo(mock)

	mock.ExpectExec("UPDATE linked_accounts SET balance_unlocked").
		WithArgs(int64(750), "user-1", "acct-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdateBalance(context.Background(), "user-1", "acct-1", 750)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkedAccountRepo_UpdateBalance_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLinkedAccountRepo(mock)

	mock.ExpectExec("UPDATE linked_accounts SET balance_unlocked").
		WithArgs(int64(750), "user-1", "ghost").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.UpdateBalance(context.Background(), "user-1", "ghost", 750)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "linked account not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkedAccountRepo_ListConsolidatable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLinkedAccountRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT .+ FROM linked_accounts").
		WillReturnRows(pgxmock.NewRows(edgeColumns()).
			AddRow("user-1", "acct-2", false, int64(300), now).
			AddRow("user-2", "acct-5", false, int64(120), now))

	edges, err := repo.ListConsolidatable(context.Background())
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, "acct-2", edges[0].AccountID)
	assert.Equal(t, int64(120), edges[1].BalanceUnlocked)
	assert.NoError(t, mock.ExpectationsWereMet())
}
