package domain

import (
	"time"

	"github.com/google/uuid"
)

// TipCommand is a parsed tip instruction extracted from a comment.
type TipCommand struct {
	SenderUsername    string `json:"sender_username"`
	SenderExternalID  int64  `json:"sender_external_id"`
	RecipientUsername string `json:"recipient_username"`
	Amount            int64  `json:"amount"` // atomic units
}

// UnclaimedTipStatus is the claim state of a tip held for an unlinked recipient.
type UnclaimedTipStatus string

const (
	UnclaimedTipStatusPending  UnclaimedTipStatus = "pending"
	UnclaimedTipStatusClaimed  UnclaimedTipStatus = "claimed"
	UnclaimedTipStatusRefunded UnclaimedTipStatus = "refunded"
)

// UnclaimedTip records a tip sent to a recipient with no linked app
// account. It is claimed when the recipient links an account, or
// refunded to the sender once the timeout window passes. The two
// terminal states are mutually exclusive.
type UnclaimedTip struct {
	ID                  uuid.UUID          `json:"id"`
	TransferID          string             `json:"transfer_id"`
	SenderAccountID     string             `json:"sender_account_id"`
	RecipientAccountID  string             `json:"recipient_account_id"`
	Amount              int64              `json:"amount"` // atomic units
	TimeoutDays         int                `json:"timeout_days"`
	SenderUsername      string             `json:"sender_username"`
	RecipientUsername   string             `json:"recipient_username"`
	RecipientExternalID int64              `json:"recipient_external_id"`
	Status              UnclaimedTipStatus `json:"status"`
	CreatedAt           time.Time          `json:"created_at"`
}

// ExpiresAt returns the moment the claim window closes.
func (t *UnclaimedTip) ExpiresAt() time.Time {
	return t.CreatedAt.AddDate(0, 0, t.TimeoutDays)
}

// Expired reports whether the claim window has passed at the given time.
func (t *UnclaimedTip) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt())
}

// BotConfig holds operational parameters read by the engine and mutated
// out of band.
type BotConfig struct {
	TipTimeoutDays int  `json:"tip_timeout_days"`
	TipsEnabled    bool `json:"tips_enabled"`
}

// PreparedWithdrawal is a withdrawal preview held until the user
// confirms or abandons it.
type PreparedWithdrawal struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Amount    int64     `json:"amount"` // atomic units
	Fee       int64     `json:"fee"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}
