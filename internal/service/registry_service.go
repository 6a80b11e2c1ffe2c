package service

import (
	"context"
	"fmt"
	"time"

	"tipbot/internal/core/domain"
	"tipbot/internal/core/ports"
	"tipbot/internal/events"
	"tipbot/pkg/apperror"

	"github.com/rs/zerolog"
)

// RegistryService implements ports.Registry. It owns the
// exactly-one-primary invariant: primary designation is decided and
// committed in the same database transaction as the edge itself.
type RegistryService struct {
	userRepo   ports.UserRepository
	linkedRepo ports.LinkedAccountRepository
	transactor ports.DBTransactor
	bus        events.Publisher
	log        zerolog.Logger
}

// NewRegistryService creates a new RegistryService.
func NewRegistryService(
	userRepo ports.UserRepository,
	linkedRepo ports.LinkedAccountRepository,
	transactor ports.DBTransactor,
	bus events.Publisher,
	log zerolog.Logger,
) *RegistryService {
	return &RegistryService{
		userRepo:   userRepo,
		linkedRepo: linkedRepo,
		transactor: transactor,
		bus:        bus,
		log:        log,
	}
}

// LinkAccount links a ledger account to a user. The link is refused,
// without mutation, when the account id is already linked to any user.
// The user's first edge becomes primary and the user's primary pointer
// is set in the same commit.
func (s *RegistryService) LinkAccount(ctx context.Context, user *domain.User, account *domain.Account) (bool, error) {
	existing, err := s.linkedRepo.GetByAccountID(ctx, account.ID)
	if err != nil {
		return false, apperror.Internal(fmt.Errorf("check existing link: %w", err))
	}
	if existing != nil {
		s.log.Warn().
			Str("account_id", account.ID).
			Str("owner_user_id", existing.UserID).
			Str("requesting_user_id", user.ID).
			Msg("account already linked, refusing link")
		return false, nil
	}

	hasPrimary, err := s.linkedRepo.HasPrimary(ctx, user.ID)
	if err != nil {
		return false, apperror.Internal(fmt.Errorf("check primary edge: %w", err))
	}

	edge := &domain.LinkedAccount{
		UserID:          user.ID,
		AccountID:       account.ID,
		Primary:         !hasPrimary,
		BalanceUnlocked: account.BalanceUnlocked,
		CreatedAt:       time.Now().UTC(),
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return false, apperror.Internal(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.linkedRepo.Create(ctx, dbTx, edge); err != nil {
		return false, apperror.Internal(fmt.Errorf("create linked account: %w", err))
	}
	if edge.Primary {
		if err := s.userRepo.SetPrimaryAccount(ctx, dbTx, user.ID, account.ID); err != nil {
			return false, apperror.Internal(fmt.Errorf("set primary account: %w", err))
		}
	}
	if err := dbTx.Commit(ctx); err != nil {
		return false, apperror.Internal(fmt.Errorf("commit tx: %w", err))
	}

	if edge.Primary {
		user.PrimaryAccountID = &edge.AccountID
	}
	s.bus.Publish(events.Event{Kind: events.KindLinkedAccountUpdated, LinkedAccount: edge})

	s.log.Info().
		Str("account_id", account.ID).
		Str("user_id", user.ID).
		Bool("primary", edge.Primary).
		Msg("linked ledger account to user")

	return true, nil
}

// GetLinkedAccount returns the user's edge for the given account id, or
// the primary edge when accountID is empty.
func (s *RegistryService) GetLinkedAccount(ctx context.Context, userID, accountID string) (*domain.LinkedAccount, error) {
	if accountID == "" {
		return s.linkedRepo.GetPrimary(ctx, userID)
	}
	return s.linkedRepo.Get(ctx, userID, accountID)
}

// GetOwningUser resolves the app user an account id is linked to via
// the cross-user edge set. Returns (nil, nil) when unlinked.
func (s *RegistryService) GetOwningUser(ctx context.Context, accountID string) (*domain.User, error) {
	edge, err := s.linkedRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("lookup edge by account: %w", err))
	}
	if edge == nil {
		return nil, nil
	}
	return s.userRepo.GetByID(ctx, edge.UserID)
}
