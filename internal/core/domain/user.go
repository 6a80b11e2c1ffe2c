package domain

import "time"

// User is an app identity provisioned by the identity provider.
// PrimaryAccountID stays nil until the user's first account link.
type User struct {
	ID                 string    `json:"id"`
	Username           string    `json:"username"`
	ExternalID         *int64    `json:"external_id,omitempty"` // messaging-platform numeric id
	PrimaryAccountID   *string   `json:"primary_account_id,omitempty"`
	DisclaimerAccepted bool      `json:"disclaimer_accepted"`
	CreatedAt          time.Time `json:"created_at"`
}

// HasPrimaryAccount reports whether the user has a primary linked account assigned.
func (u *User) HasPrimaryAccount() bool {
	return u.PrimaryAccountID != nil && *u.PrimaryAccountID != ""
}

// PlatformIdentity maps a messaging-platform user to their ledger account.
// It exists independently of any app User: an identity is provisioned on
// first contact (e.g. receiving a tip) before the person ever signs up.
type PlatformIdentity struct {
	ExternalID int64     `json:"external_id"`
	Username   string    `json:"username"`
	AccountID  string    `json:"account_id"`
	CreatedAt  time.Time `json:"created_at"`
}
