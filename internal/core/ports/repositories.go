package ports

import (
	"context"
	"time"

	"tipbot/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines persistence operations for app users.
// Getters return (nil, nil) when the document does not exist.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByExternalID(ctx context.Context, externalID int64) (*domain.User, error)
	// SetPrimaryAccount runs inside the same transaction as the edge
	// creation so the primary assignment is atomic with the link.
	SetPrimaryAccount(ctx context.Context, tx pgx.Tx, userID, accountID string) error
	SetDisclaimerAccepted(ctx context.Context, userID string) error
}

// AccountRepository maintains the local mirror of ledger accounts.
type AccountRepository interface {
	Upsert(ctx context.Context, account *domain.Account) error
	CreateTx(ctx context.Context, tx pgx.Tx, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
}

// LinkedAccountRepository defines persistence for user↔account edges.
// GetByAccountID and ListConsolidatable query across all users.
type LinkedAccountRepository interface {
	Create(ctx context.Context, tx pgx.Tx, edge *domain.LinkedAccount) error
	Get(ctx context.Context, userID, accountID string) (*domain.LinkedAccount, error)
	GetPrimary(ctx context.Context, userID string) (*domain.LinkedAccount, error)
	GetByAccountID(ctx context.Context, accountID string) (*domain.LinkedAccount, error)
	HasPrimary(ctx context.Context, userID string) (bool, error)
	UpdateBalance(ctx context.Context, userID, accountID string, balanceUnlocked int64) error
	ListConsolidatable(ctx context.Context) ([]domain.LinkedAccount, error)
}

// TransactionRepository stores append-only transaction records.
type TransactionRepository interface {
	Create(ctx context.Context, txn *domain.Transaction) error
	ListByAccount(ctx context.Context, accountID string, limit int) ([]domain.Transaction, error)
}

// UnclaimedTipRepository defines persistence for tips pending claim.
// MarkClaimed and MarkRefunded only transition records still pending and
// report whether the transition happened, which keeps the two terminal
// states mutually exclusive.
type UnclaimedTipRepository interface {
	Create(ctx context.Context, tip *domain.UnclaimedTip) error
	ListPendingByRecipient(ctx context.Context, recipientExternalID int64) ([]domain.UnclaimedTip, error)
	ListExpired(ctx context.Context, now time.Time) ([]domain.UnclaimedTip, error)
	MarkClaimed(ctx context.Context, id uuid.UUID) (bool, error)
	MarkRefunded(ctx context.Context, id uuid.UUID) (bool, error)
}

// PlatformIdentityRepository stores messaging-platform identities and
// their ledger account assignment.
type PlatformIdentityRepository interface {
	GetByExternalID(ctx context.Context, externalID int64) (*domain.PlatformIdentity, error)
	CreateTx(ctx context.Context, tx pgx.Tx, identity *domain.PlatformIdentity) error
}

// BotConfigRepository reads the operational configuration document.
type BotConfigRepository interface {
	Get(ctx context.Context) (*domain.BotConfig, error)
}

// PreparedWithdrawalRepository stores withdrawal previews.
type PreparedWithdrawalRepository interface {
	Create(ctx context.Context, w *domain.PreparedWithdrawal) error
	Get(ctx context.Context, accountID, id string) (*domain.PreparedWithdrawal, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
