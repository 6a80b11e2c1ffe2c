package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUser_HasPrimaryAccount(t *testing.T) {
	empty := ""
	acct := "acct-1"

	tests := []struct {
		name    string
		primary *string
		want    bool
	}{
		{"nil pointer", nil, false},
		{"empty string", &empty, false},
		{"assigned", &acct, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{PrimaryAccountID: tt.primary}
			assert.Equal(t, tt.want, u.HasPrimaryAccount())
		})
	}
}

func TestLinkedAccount_Consolidatable(t *testing.T) {
	tests := []struct {
		name    string
		primary bool
		balance int64
		want    bool
	}{
		{"primary with balance", true, 500, false},
		{"secondary with balance", false, 500, true},
		{"secondary zero balance", false, 0, false},
		{"secondary negative balance", false, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &LinkedAccount{Primary: tt.primary, BalanceUnlocked: tt.balance}
			assert.Equal(t, tt.want, l.Consolidatable())
		})
	}
}

func TestNewTipLegPair(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	spec := TipLegSpec{
		Platform:          "github",
		TransferID:        "xfer-1",
		Timestamp:         ts,
		Amount:            250,
		SenderUsername:    "alice",
		RecipientUsername: "bob",
	}

	sender, recipient := NewTipLegPair(spec, "user-a", "acct-a", 11, "user-b", "acct-b", 22)

	assert.Equal(t, int64(-250), sender.Amount)
	assert.Equal(t, int64(250), recipient.Amount)
	assert.Zero(t, sender.Amount+recipient.Amount, "legs must sum to zero")

	assert.Equal(t, sender.TransferID, recipient.TransferID)
	assert.Equal(t, sender.Timestamp, recipient.Timestamp)
	assert.NotEqual(t, sender.ID, recipient.ID)

	assert.Equal(t, "acct-a", sender.AccountID)
	assert.Equal(t, "acct-b", recipient.AccountID)
	assert.Equal(t, "user-b", recipient.UserID)
	assert.Equal(t, TransactionStatusCompleted, sender.Status)
	assert.Equal(t, TransferTypeTip, recipient.TransferType)
}

func TestUnclaimedTip_Expiry(t *testing.T) {
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	tip := &UnclaimedTip{TimeoutDays: 3, CreatedAt: created}

	assert.Equal(t, created.AddDate(0, 0, 3), tip.ExpiresAt())
	assert.False(t, tip.Expired(created.AddDate(0, 0, 2)))
	assert.True(t, tip.Expired(created.AddDate(0, 0, 3)), "window closes exactly at expiry")
	assert.True(t, tip.Expired(created.AddDate(0, 0, 4)))
}
