package ports

import (
	"context"
	"time"

	"tipbot/internal/core/domain"
)

// --- External collaborators ---

// Transfer is the ledger's record of an executed account transfer.
type Transfer struct {
	ID            string    `json:"id"`
	FromAccountID string    `json:"from_account_id"`
	ToAccountID   string    `json:"to_account_id"`
	Amount        int64     `json:"amount"` // atomic units
	Fee           int64     `json:"fee"`
	Timestamp     time.Time `json:"timestamp"`
}

// Withdrawal is the ledger's record of an executed withdrawal.
type Withdrawal struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Amount    int64     `json:"amount"`
	Fee       int64     `json:"fee"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// LedgerClient is the contract required from the external ledger
// service. Amounts are integers in atomic units. Transfer is not
// idempotency-aware: callers must avoid duplicate submission.
// Rejections come back as apperror.ServiceFailure whose message is the
// ledger's own human-readable error.
type LedgerClient interface {
	CreateAccount(ctx context.Context) (*domain.Account, error)
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	Transfer(ctx context.Context, fromAccountID, toAccountID string, amount int64) (*Transfer, error)
	PrepareWithdrawal(ctx context.Context, accountID string, amount int64, address string) (*domain.PreparedWithdrawal, error)
	SendWithdrawal(ctx context.Context, accountID, preparedID string) (*Withdrawal, error)
}

// PlatformUser is a messaging-platform profile.
type PlatformUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// PlatformClient talks to the messaging platform: handle resolution and
// reply posting. LookupUser returns (nil, nil) for unknown handles.
type PlatformClient interface {
	LookupUser(ctx context.Context, username string) (*PlatformUser, error)
	PostReply(ctx context.Context, threadRef, body string) error
}

// --- Supporting services ---

// ConfigProvider hands out operational config snapshots. The tip
// pipeline takes one snapshot per invocation instead of reading ambient
// state mid-flight.
type ConfigProvider interface {
	Snapshot(ctx context.Context) (*domain.BotConfig, error)
}

// ConfigCache is the fast-path cache in front of the operational
// config document. Get returns (nil, nil) on a miss.
type ConfigCache interface {
	Get(ctx context.Context) (*domain.BotConfig, error)
	Set(ctx context.Context, cfg *domain.BotConfig, ttl time.Duration) error
}

// SignatureService handles HMAC-SHA256 signing and verification of
// webhook payloads.
type SignatureService interface {
	Sign(secret string, payload []byte) string
	Verify(secret string, payload []byte, signature string) bool
}

// TokenClaims holds the parsed JWT claims of a callable-entry-point caller.
type TokenClaims struct {
	UserID   string
	Username string
}

// TokenService validates bearer tokens issued by the identity provider.
type TokenService interface {
	Validate(tokenString string) (*TokenClaims, error)
}

// DeliveryDeduper suppresses duplicate webhook deliveries. CheckAndSet
// returns true when the delivery id is new.
type DeliveryDeduper interface {
	CheckAndSet(ctx context.Context, deliveryID string, ttl time.Duration) (bool, error)
}

// --- Business services ---

// Registry owns the set of accounts linked to users and the
// exactly-one-primary invariant.
type Registry interface {
	// LinkAccount links the account to the user. It returns false
	// without mutating anything when the account id is already linked
	// to any user. The first link becomes the user's primary account.
	LinkAccount(ctx context.Context, user *domain.User, account *domain.Account) (bool, error)
	// GetLinkedAccount returns the user's edge for accountID, or the
	// primary edge when accountID is empty.
	GetLinkedAccount(ctx context.Context, userID, accountID string) (*domain.LinkedAccount, error)
	// GetOwningUser resolves the app user an account is linked to.
	GetOwningUser(ctx context.Context, accountID string) (*domain.User, error)
}

// Consolidator moves unlocked balance from secondary linked accounts
// into the owner's primary account.
type Consolidator interface {
	HandleAccountChange(ctx context.Context, account *domain.Account) error
	HandleLinkedAccountChange(ctx context.Context, edge *domain.LinkedAccount) error
	Sweep(ctx context.Context) error
	// RefreshAccount re-reads the account from the ledger and updates
	// the local mirror.
	RefreshAccount(ctx context.Context, accountID string) error
}

// IdentityResolver resolves and provisions ledger accounts for
// messaging-platform identities.
type IdentityResolver interface {
	// AccountByExternalID returns (nil, nil) when no identity exists yet.
	AccountByExternalID(ctx context.Context, externalID int64) (*domain.Account, error)
	// ProvisionAccount creates a ledger account plus the platform
	// identity and account mirror documents for a first-contact user.
	ProvisionAccount(ctx context.Context, externalID int64, username string) (*domain.Account, error)
}

// CommentEvent is an inbound comment from the messaging surface.
type CommentEvent struct {
	DeliveryID   string
	ThreadRef    string
	Body         string
	SenderID     int64
	SenderHandle string
}

// TipProcessor turns comment events into settled tips. HandleComment
// returns handled=false for comments that are not tip commands; when
// handled it always returns exactly one reply describing the outcome,
// never an error.
type TipProcessor interface {
	HandleComment(ctx context.Context, ev CommentEvent) (reply string, handled bool)
}

// UnclaimedTipManager records tips held for unlinked recipients and
// drives their claim / expiry transitions.
type UnclaimedTipManager interface {
	Create(ctx context.Context, transfer *Transfer, timeoutDays int, senderHandle, recipientHandle string, recipientExternalID int64) (*domain.UnclaimedTip, error)
	// ClaimFor marks all pending tips for the recipient claimed and
	// returns how many were claimed.
	ClaimFor(ctx context.Context, recipientExternalID int64) (int, error)
	// ExpireSweep refunds every pending tip whose window has passed.
	ExpireSweep(ctx context.Context) error
}

// WithdrawalService backs the prepare/execute withdrawal entry points.
type WithdrawalService interface {
	Prepare(ctx context.Context, userID string, amount int64, address string) (*domain.PreparedWithdrawal, error)
	Execute(ctx context.Context, userID, preparedID string) (*Withdrawal, error)
}

// OnboardingService backs the account-link and consent entry points.
type OnboardingService interface {
	// LinkPlatformAccount links the caller's platform ledger account to
	// their app identity, provisioning one if needed, and claims any
	// tips held for them.
	LinkPlatformAccount(ctx context.Context, userID string) (*domain.LinkedAccount, error)
	AgreeDisclaimer(ctx context.Context, userID string) error
}
