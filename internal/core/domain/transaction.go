package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransferType classifies a transaction record.
type TransferType string

const (
	TransferTypeTip        TransferType = "tip"
	TransferTypeWithdrawal TransferType = "withdrawal"
)

// TransactionStatus is the settlement state of a transaction record.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction is a ledger-visible record of one leg of a transfer.
// Two-party transfers produce a pair of records, one per party, sharing
// the same TransferID and Timestamp. The sender leg carries a negative
// amount, the recipient leg a positive one.
type Transaction struct {
	ID                uuid.UUID         `json:"id"`
	UserID            string            `json:"user_id"`
	AccountID         string            `json:"account_id"`
	Platform          string            `json:"platform"`
	ExternalID        int64             `json:"external_id"`
	Timestamp         time.Time         `json:"timestamp"`
	TransferType      TransferType      `json:"transfer_type"`
	Amount            int64             `json:"amount"` // signed, atomic units
	Fee               int64             `json:"fee"`
	Status            TransactionStatus `json:"status"`
	TransferID        string            `json:"transfer_id"` // correlates the two legs
	SenderUsername    string            `json:"sender_username"`
	RecipientUsername string            `json:"recipient_username"`
}

// TipLegSpec carries the shared fields of a settled tip transfer.
type TipLegSpec struct {
	Platform          string
	TransferID        string
	Timestamp         time.Time
	Amount            int64 // positive, atomic units
	SenderUsername    string
	RecipientUsername string
}

// NewTipLegPair builds the sender and recipient transaction records for
// a settled tip. Both legs share the transfer id and timestamp; the
// amounts sum to zero.
func NewTipLegPair(spec TipLegSpec, senderUserID, senderAccountID string, senderExternalID int64,
	recipientUserID, recipientAccountID string, recipientExternalID int64) (Transaction, Transaction) {

	sender := Transaction{
		ID:                uuid.New(),
		UserID:            senderUserID,
		AccountID:         senderAccountID,
		Platform:          spec.Platform,
		ExternalID:        senderExternalID,
		Timestamp:         spec.Timestamp,
		TransferType:      TransferTypeTip,
		Amount:            -spec.Amount,
		Fee:               0,
		Status:            TransactionStatusCompleted,
		TransferID:        spec.TransferID,
		SenderUsername:    spec.SenderUsername,
		RecipientUsername: spec.RecipientUsername,
	}

	recipient := Transaction{
		ID:                uuid.New(),
		UserID:            recipientUserID,
		AccountID:         recipientAccountID,
		Platform:          spec.Platform,
		ExternalID:        recipientExternalID,
		Timestamp:         spec.Timestamp,
		TransferType:      TransferTypeTip,
		Amount:            spec.Amount,
		Fee:               0,
		Status:            TransactionStatusCompleted,
		TransferID:        spec.TransferID,
		SenderUsername:    spec.SenderUsername,
		RecipientUsername: spec.RecipientUsername,
	}

	return sender, recipient
}
