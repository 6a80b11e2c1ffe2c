package service

import (
	"context"
	"fmt"

	"tipbot/internal/core/domain"
	"tipbot/internal/core/ports"
	"tipbot/pkg/apperror"

	"github.com/rs/zerolog"
)

// WithdrawalServiceImpl implements ports.WithdrawalService. Withdrawals
// always draw from the caller's primary linked account; execution
// itself belongs to the external ledger.
type WithdrawalServiceImpl struct {
	userRepo     ports.UserRepository
	preparedRepo ports.PreparedWithdrawalRepository
	ledger       ports.LedgerClient
	log          zerolog.Logger
}

// NewWithdrawalService creates a new WithdrawalServiceImpl.
func NewWithdrawalService(
	userRepo ports.UserRepository,
	preparedRepo ports.PreparedWithdrawalRepository,
	ledger ports.LedgerClient,
	log zerolog.Logger,
) *WithdrawalServiceImpl {
	return &WithdrawalServiceImpl{
		userRepo:     userRepo,
		preparedRepo: preparedRepo,
		ledger:       ledger,
		log:          log,
	}
}

// Prepare builds a withdrawal preview against the user's primary account.
func (s *WithdrawalServiceImpl) Prepare(ctx context.Context, userID string, amount int64, address string) (*domain.PreparedWithdrawal, error) {
	if amount <= 0 {
		return nil, apperror.InvalidArgument("amount must be positive")
	}
	if address == "" {
		return nil, apperror.InvalidArgument("address is required")
	}

	accountID, err := s.primaryAccountID(ctx, userID)
	if err != nil {
		return nil, err
	}

	prepared, err := s.ledger.PrepareWithdrawal(ctx, accountID, amount, address)
	if err != nil {
		return nil, err
	}

	if err := s.preparedRepo.Create(ctx, prepared); err != nil {
		return nil, apperror.Internal(fmt.Errorf("store prepared withdrawal: %w", err))
	}

	s.log.Info().
		Str("user_id", userID).
		Str("prepared_id", prepared.ID).
		Int64("amount", amount).
		Msg("prepared withdrawal")

	return prepared, nil
}

// Execute sends a previously prepared withdrawal. The preview must
// belong to the caller's primary account.
func (s *WithdrawalServiceImpl) Execute(ctx context.Context, userID, preparedID string) (*ports.Withdrawal, error) {
	if preparedID == "" {
		return nil, apperror.InvalidArgument("prepared withdrawal id is required")
	}

	accountID, err := s.primaryAccountID(ctx, userID)
	if err != nil {
		return nil, err
	}

	prepared, err := s.preparedRepo.Get(ctx, accountID, preparedID)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("lookup prepared withdrawal: %w", err))
	}
	if prepared == nil {
		return nil, apperror.NotFound("prepared withdrawal")
	}

	withdrawal, err := s.ledger.SendWithdrawal(ctx, accountID, prepared.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", userID).
		Str("withdrawal_id", withdrawal.ID).
		Int64("amount", withdrawal.Amount).
		Msg("withdrawal sent")

	return withdrawal, nil
}

func (s *WithdrawalServiceImpl) primaryAccountID(ctx context.Context, userID string) (string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", apperror.Internal(fmt.Errorf("lookup user: %w", err))
	}
	if user == nil {
		return "", apperror.NotFound("user")
	}
	if !user.HasPrimaryAccount() {
		return "", apperror.NoPrimaryAccount()
	}
	return *user.PrimaryAccountID, nil
}
