package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tipbot/internal/core/domain"
	"tipbot/internal/core/ports"
	"tipbot/internal/events"
	"tipbot/pkg/apperror"
	"tipbot/pkg/metrics"

	"github.com/rs/zerolog"
)

// ConsolidatorService implements ports.Consolidator. It keeps the
// mirrored balances of linked accounts current and moves unlocked
// balance from secondary accounts into the owner's primary account.
//
// Transfer failures are logged, never retried inline: the periodic
// sweep re-evaluates every secondary edge with a positive mirror, so a
// failed transfer is naturally retried on the next period. A transfer
// success does not zero the local mirror either; the next ledger-driven
// account refresh corrects it. Both properties make the handlers safe
// under at-least-once event delivery.
type ConsolidatorService struct {
	linkedRepo  ports.LinkedAccountRepository
	accountRepo ports.AccountRepository
	ledger      ports.LedgerClient
	bus         events.Publisher
	collector   *metrics.Collector
	log         zerolog.Logger
}

// NewConsolidatorService creates a new ConsolidatorService.
func NewConsolidatorService(
	linkedRepo ports.LinkedAccountRepository,
	accountRepo ports.AccountRepository,
	ledger ports.LedgerClient,
	bus events.Publisher,
	collector *metrics.Collector,
	log zerolog.Logger,
) *ConsolidatorService {
	return &ConsolidatorService{
		linkedRepo:  linkedRepo,
		accountRepo: accountRepo,
		ledger:      ledger,
		bus:         bus,
		collector:   collector,
		log:         log,
	}
}

// HandleAccountChange pushes a changed account balance into the owning
// linked-account edge. Unlinked accounts are a no-op.
func (s *ConsolidatorService) HandleAccountChange(ctx context.Context, account *domain.Account) error {
	edge, err := s.linkedRepo.GetByAccountID(ctx, account.ID)
	if err != nil {
		return apperror.Internal(fmt.Errorf("lookup edge for account %s: %w", account.ID, err))
	}
	if edge == nil {
		return nil
	}

	if err := s.linkedRepo.UpdateBalance(ctx, edge.UserID, edge.AccountID, account.BalanceUnlocked); err != nil {
		return apperror.Internal(fmt.Errorf("update mirrored balance: %w", err))
	}

	updated := *edge
	updated.BalanceUnlocked = account.BalanceUnlocked
	s.bus.Publish(events.Event{Kind: events.KindLinkedAccountUpdated, LinkedAccount: &updated})

	return nil
}

// HandleLinkedAccountChange consolidates a changed edge. Primary edges
// and edges without positive balance are no-ops.
func (s *ConsolidatorService) HandleLinkedAccountChange(ctx context.Context, edge *domain.LinkedAccount) error {
	if !edge.Consolidatable() {
		return nil
	}
	return s.transferToPrimary(ctx, edge)
}

// Sweep runs one correction pass over every consolidatable edge across
// all users. Each transfer runs in its own goroutine; one failure never
// blocks or cancels the siblings.
func (s *ConsolidatorService) Sweep(ctx context.Context) error {
	start := time.Now()

	edges, err := s.linkedRepo.ListConsolidatable(ctx)
	if err != nil {
		return apperror.Internal(fmt.Errorf("list consolidatable edges: %w", err))
	}

	s.collector.SweepRuns.Inc()
	defer func() {
		s.collector.SweepDuration.Observe(time.Since(start).Seconds())
	}()

	if len(edges) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	for i := range edges {
		edge := edges[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.transferToPrimary(ctx, &edge); err != nil {
				s.log.Warn().Err(err).
					Str("user_id", edge.UserID).
					Str("account_id", edge.AccountID).
					Msg("sweep transfer failed, will retry next period")
			}
		}()
	}
	wg.Wait()

	s.log.Info().Int("edges", len(edges)).Msg("consolidation sweep completed")
	return nil
}

// RefreshAccount re-reads an account from the ledger and updates the
// local mirror, notifying subscribers of the change.
func (s *ConsolidatorService) RefreshAccount(ctx context.Context, accountID string) error {
	account, err := s.ledger.GetAccount(ctx, accountID)
	if err != nil {
		return err
	}
	if err := s.accountRepo.Upsert(ctx, account); err != nil {
		return apperror.Internal(fmt.Errorf("upsert account mirror: %w", err))
	}

	s.bus.Publish(events.Event{Kind: events.KindAccountUpdated, Account: account})
	return nil
}

// transferToPrimary moves the edge's full mirrored unlocked balance to
// the owner's primary account via the external ledger.
func (s *ConsolidatorService) transferToPrimary(ctx context.Context, edge *domain.LinkedAccount) error {
	primary, err := s.linkedRepo.GetPrimary(ctx, edge.UserID)
	if err != nil {
		return apperror.Internal(fmt.Errorf("lookup primary edge: %w", err))
	}
	if primary == nil {
		s.log.Warn().Str("user_id", edge.UserID).Msg("user has no primary linked account, nothing to consolidate into")
		return nil
	}

	s.collector.ConsolidationTransfers.Inc()

	transfer, err := s.ledger.Transfer(ctx, edge.AccountID, primary.AccountID, edge.BalanceUnlocked)
	if err != nil {
		s.collector.ConsolidationFailures.Inc()
		s.log.Warn().Err(err).
			Str("from_account", edge.AccountID).
			Str("to_account", primary.AccountID).
			Int64("amount", edge.BalanceUnlocked).
			Msg("consolidation transfer rejected by ledger")
		return err
	}

	s.log.Info().
		Str("transfer_id", transfer.ID).
		Str("user_id", edge.UserID).
		Str("from_account", edge.AccountID).
		Str("to_account", primary.AccountID).
		Int64("amount", edge.BalanceUnlocked).
		Msg("transferred secondary balance to primary account")

	return nil
}
