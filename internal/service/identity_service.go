package service

import (
	"context"
	"fmt"
	"time"

	"tipbot/internal/core/domain"
	"tipbot/internal/core/ports"
	"tipbot/pkg/apperror"

	"github.com/rs/zerolog"
)

// IdentityService implements ports.IdentityResolver: it maps
// messaging-platform identities to ledger accounts and provisions
// accounts for first-contact users.
type IdentityService struct {
	platformRepo ports.PlatformIdentityRepository
	accountRepo  ports.AccountRepository
	ledger       ports.LedgerClient
	transactor   ports.DBTransactor
	log          zerolog.Logger
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(
	platformRepo ports.PlatformIdentityRepository,
	accountRepo ports.AccountRepository,
	ledger ports.LedgerClient,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *IdentityService {
	return &IdentityService{
		platformRepo: platformRepo,
		accountRepo:  accountRepo,
		ledger:       ledger,
		transactor:   transactor,
		log:          log,
	}
}

// AccountByExternalID resolves the ledger account assigned to a
// platform identity. Returns (nil, nil) when no identity exists yet.
func (s *IdentityService) AccountByExternalID(ctx context.Context, externalID int64) (*domain.Account, error) {
	identity, err := s.platformRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("lookup platform identity: %w", err))
	}
	if identity == nil {
		return nil, nil
	}

	account, err := s.accountRepo.GetByID(ctx, identity.AccountID)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("lookup account mirror: %w", err))
	}
	if account != nil {
		return account, nil
	}

	// Identity exists but the mirror is missing; rebuild it from the ledger.
	account, err = s.ledger.GetAccount(ctx, identity.AccountID)
	if err != nil {
		return nil, err
	}
	if err := s.accountRepo.Upsert(ctx, account); err != nil {
		return nil, apperror.Internal(fmt.Errorf("rebuild account mirror: %w", err))
	}
	return account, nil
}

// ProvisionAccount creates a ledger account for a first-contact
// platform user and commits the identity and account mirror documents
// in one batch. On failure no new local state is left behind.
func (s *IdentityService) ProvisionAccount(ctx context.Context, externalID int64, username string) (*domain.Account, error) {
	account, err := s.ledger.CreateAccount(ctx)
	if err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.accountRepo.CreateTx(ctx, dbTx, account); err != nil {
		return nil, apperror.Internal(fmt.Errorf("create account mirror: %w", err))
	}

	identity := &domain.PlatformIdentity{
		ExternalID: externalID,
		Username:   username,
		AccountID:  account.ID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.platformRepo.CreateTx(ctx, dbTx, identity); err != nil {
		return nil, apperror.Internal(fmt.Errorf("create platform identity: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.Internal(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Int64("external_id", externalID).
		Str("username", username).
		Str("account_id", account.ID).
		Msg("provisioned ledger account for first-contact user")

	return account, nil
}
