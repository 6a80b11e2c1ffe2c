package service

import (
	"context"
	"fmt"
	"time"

	"tipbot/internal/core/domain"
	"tipbot/internal/core/ports"
	"tipbot/pkg/apperror"
	"tipbot/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// UnclaimedTipService implements ports.UnclaimedTipManager. A tip is
// claimable exactly once: both claim and expiry transition the record
// with a pending-status guard, so the terminal states cannot both fire.
type UnclaimedTipService struct {
	repo      ports.UnclaimedTipRepository
	ledger    ports.LedgerClient
	collector *metrics.Collector
	log       zerolog.Logger

	now func() time.Time
}

// NewUnclaimedTipService creates a new UnclaimedTipService.
func NewUnclaimedTipService(
	repo ports.UnclaimedTipRepository,
	ledger ports.LedgerClient,
	collector *metrics.Collector,
	log zerolog.Logger,
) *UnclaimedTipService {
	return &UnclaimedTipService{
		repo:      repo,
		ledger:    ledger,
		collector: collector,
		log:       log,
		now:       time.Now,
	}
}

// Create records a tip held for an unlinked recipient. It performs no
// transfer: the funds already sit in the recipient's provisioned
// account, this record only arms the claim window.
func (s *UnclaimedTipService) Create(ctx context.Context, transfer *ports.Transfer, timeoutDays int,
	senderHandle, recipientHandle string, recipientExternalID int64) (*domain.UnclaimedTip, error) {

	tip := &domain.UnclaimedTip{
		ID:                  uuid.New(),
		TransferID:          transfer.ID,
		SenderAccountID:     transfer.FromAccountID,
		RecipientAccountID:  transfer.ToAccountID,
		Amount:              transfer.Amount,
		TimeoutDays:         timeoutDays,
		SenderUsername:      senderHandle,
		RecipientUsername:   recipientHandle,
		RecipientExternalID: recipientExternalID,
		Status:              domain.UnclaimedTipStatusPending,
		CreatedAt:           transfer.Timestamp,
	}

	if err := s.repo.Create(ctx, tip); err != nil {
		return nil, apperror.Internal(fmt.Errorf("create unclaimed tip: %w", err))
	}

	s.log.Info().
		Str("transfer_id", tip.TransferID).
		Str("recipient", tip.RecipientUsername).
		Int("timeout_days", tip.TimeoutDays).
		Msg("recorded unclaimed tip")

	return tip, nil
}

// ClaimFor marks every pending tip held for the recipient claimed.
// Called when the recipient links an account; returns the number of
// tips actually claimed.
func (s *UnclaimedTipService) ClaimFor(ctx context.Context, recipientExternalID int64) (int, error) {
	tips, err := s.repo.ListPendingByRecipient(ctx, recipientExternalID)
	if err != nil {
		return 0, apperror.Internal(fmt.Errorf("list pending tips: %w", err))
	}

	claimed := 0
	for i := range tips {
		ok, err := s.repo.MarkClaimed(ctx, tips[i].ID)
		if err != nil {
			s.log.Error().Err(err).Str("tip_id", tips[i].ID.String()).Msg("failed to claim tip")
			continue
		}
		if ok {
			claimed++
		}
	}

	if claimed > 0 {
		s.log.Info().Int64("recipient_external_id", recipientExternalID).Int("claimed", claimed).Msg("claimed pending tips")
	}
	return claimed, nil
}

// ExpireSweep refunds every pending tip whose claim window has passed.
// The record is transitioned before the refund transfer so a concurrent
// claim can never land after the refund; a refund transfer that then
// fails is logged for operator follow-up rather than retried blindly.
func (s *UnclaimedTipService) ExpireSweep(ctx context.Context) error {
	expired, err := s.repo.ListExpired(ctx, s.now().UTC())
	if err != nil {
		return apperror.Internal(fmt.Errorf("list expired tips: %w", err))
	}

	for i := range expired {
		tip := &expired[i]

		ok, err := s.repo.MarkRefunded(ctx, tip.ID)
		if err != nil {
			s.log.Error().Err(err).Str("tip_id", tip.ID.String()).Msg("failed to mark tip refunded")
			continue
		}
		if !ok {
			// Claimed in the meantime; nothing to refund.
			continue
		}

		if _, err := s.ledger.Transfer(ctx, tip.RecipientAccountID, tip.SenderAccountID, tip.Amount); err != nil {
			s.log.Error().Err(err).
				Str("tip_id", tip.ID.String()).
				Str("transfer_id", tip.TransferID).
				Int64("amount", tip.Amount).
				Msg("refund transfer rejected by ledger")
			continue
		}

		s.collector.UnclaimedTipsRefunded.Inc()
		s.log.Info().
			Str("tip_id", tip.ID.String()).
			Str("sender", tip.SenderUsername).
			Str("recipient", tip.RecipientUsername).
			Int64("amount", tip.Amount).
			Msg("refunded expired unclaimed tip")
	}

	return nil
}
