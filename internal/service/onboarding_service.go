package service

import (
	"context"
	"fmt"
	"net/http"

	"tipbot/internal/core/domain"
	"tipbot/internal/core/ports"
	"tipbot/pkg/apperror"

	"github.com/rs/zerolog"
)

// OnboardingServiceImpl implements ports.OnboardingService: the
// account-link and consent callable entry points.
type OnboardingServiceImpl struct {
	userRepo  ports.UserRepository
	identity  ports.IdentityResolver
	registry  ports.Registry
	unclaimed ports.UnclaimedTipManager
	log       zerolog.Logger
}

// NewOnboardingService creates a new OnboardingServiceImpl.
func NewOnboardingService(
	userRepo ports.UserRepository,
	identity ports.IdentityResolver,
	registry ports.Registry,
	unclaimed ports.UnclaimedTipManager,
	log zerolog.Logger,
) *OnboardingServiceImpl {
	return &OnboardingServiceImpl{
		userRepo:  userRepo,
		identity:  identity,
		registry:  registry,
		unclaimed: unclaimed,
		log:       log,
	}
}

// LinkPlatformAccount links the caller's platform ledger account to
// their app identity, provisioning the account if they were never
// tipped before, then claims any tips held for them.
func (s *OnboardingServiceImpl) LinkPlatformAccount(ctx context.Context, userID string) (*domain.LinkedAccount, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("lookup user: %w", err))
	}
	if user == nil {
		return nil, apperror.NotFound("user")
	}
	if user.ExternalID == nil {
		return nil, apperror.New(apperror.KindPreconditionFailed,
			"user has no platform identity to link", http.StatusPreconditionFailed)
	}

	account, err := s.identity.AccountByExternalID(ctx, *user.ExternalID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		account, err = s.identity.ProvisionAccount(ctx, *user.ExternalID, user.Username)
		if err != nil {
			return nil, err
		}
	}

	linked, err := s.registry.LinkAccount(ctx, user, account)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, apperror.AlreadyLinked(account.ID)
	}

	if claimed, err := s.unclaimed.ClaimFor(ctx, *user.ExternalID); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to claim pending tips after link")
	} else if claimed > 0 {
		s.log.Info().Str("user_id", userID).Int("claimed", claimed).Msg("pending tips claimed on link")
	}

	return s.registry.GetLinkedAccount(ctx, userID, account.ID)
}

// AgreeDisclaimer records the caller's consent.
func (s *OnboardingServiceImpl) AgreeDisclaimer(ctx context.Context, userID string) error {
	if err := s.userRepo.SetDisclaimerAccepted(ctx, userID); err != nil {
		return apperror.Internal(fmt.Errorf("set disclaimer accepted: %w", err))
	}
	return nil
}
