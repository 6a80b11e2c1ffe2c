package domain

import "time"

// Account mirrors an external ledger account. The ledger owns the
// balance; the values here are a local mirror, never authoritative.
type Account struct {
	ID              string    `json:"id"`
	BalanceUnlocked int64     `json:"balance_unlocked"` // atomic units
	BalanceLocked   int64     `json:"balance_locked"`   // pending confirmation
	CreatedAt       time.Time `json:"created_at"`
}

// LinkedAccount is the edge between an app User and a ledger Account.
// For a given user exactly one edge has Primary set, and an account id
// is linked to at most one user across the whole system.
type LinkedAccount struct {
	UserID          string    `json:"user_id"`
	AccountID       string    `json:"account_id"`
	Primary         bool      `json:"primary"`
	BalanceUnlocked int64     `json:"balance_unlocked"` // mirrored from the account
	CreatedAt       time.Time `json:"created_at"`
}

// Consolidatable reports whether the edge holds balance that should be
// moved to the owner's primary account.
func (l *LinkedAccount) Consolidatable() bool {
	return !l.Primary && l.BalanceUnlocked > 0
}
