package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"tipbot/internal/core/domain"
	"tipbot/internal/core/ports"
	"tipbot/pkg/apperror"
	"tipbot/pkg/metrics"

	"github.com/rs/zerolog"
)

// TipServiceOpts carries the static wiring of the tip pipeline.
type TipServiceOpts struct {
	CommandToken   string // e.g. ".tip "
	LoginURL       string
	CurrencySymbol string
	PlatformName   string // platform tag written on transaction records
}

// TipService implements ports.TipProcessor: the tip-command resolution
// and settlement pipeline. Its contract with the messaging layer is
// that every handled command yields exactly one reply string; parse and
// resolution failures become plain-language replies, never errors.
type TipService struct {
	userRepo     ports.UserRepository
	platform     ports.PlatformClient
	identity     ports.IdentityResolver
	registry     ports.Registry
	ledger       ports.LedgerClient
	txRepo       ports.TransactionRepository
	unclaimed    ports.UnclaimedTipManager
	cfgProvider  ports.ConfigProvider
	consolidator ports.Consolidator
	collector    *metrics.Collector
	opts         TipServiceOpts
	log          zerolog.Logger
}

// NewTipService creates a new TipService.
func NewTipService(
	userRepo ports.UserRepository,
	platform ports.PlatformClient,
	identity ports.IdentityResolver,
	registry ports.Registry,
	ledger ports.LedgerClient,
	txRepo ports.TransactionRepository,
	unclaimed ports.UnclaimedTipManager,
	cfgProvider ports.ConfigProvider,
	consolidator ports.Consolidator,
	collector *metrics.Collector,
	opts TipServiceOpts,
	log zerolog.Logger,
) *TipService {
	return &TipService{
		userRepo:     userRepo,
		platform:     platform,
		identity:     identity,
		registry:     registry,
		ledger:       ledger,
		txRepo:       txRepo,
		unclaimed:    unclaimed,
		cfgProvider:  cfgProvider,
		consolidator: consolidator,
		collector:    collector,
		opts:         opts,
		log:          log,
	}
}

const msgTryAgainLater = "An error occurred, please try again later."

// HandleComment inspects a comment event and, when it is a tip command,
// runs the full pipeline. Comments that do not start with the command
// token are ignored (handled=false): most comments are not commands.
func (s *TipService) HandleComment(ctx context.Context, ev ports.CommentEvent) (string, bool) {
	if !strings.HasPrefix(ev.Body, s.opts.CommandToken) {
		return "", false
	}

	cmd, err := parseTipCommand(s.opts.CommandToken, ev.Body, ev.SenderID, ev.SenderHandle)
	if err != nil {
		s.collector.TipsFailed.WithLabelValues("parse").Inc()
		s.log.Info().Err(err).Str("sender", ev.SenderHandle).Msg("invalid tip command")
		return userMessage(err), true
	}

	s.log.Info().
		Str("sender", cmd.SenderUsername).
		Str("recipient", cmd.RecipientUsername).
		Int64("amount", cmd.Amount).
		Msg("processing tip command")

	return s.process(ctx, cmd), true
}

// process resolves both parties, settles the transfer and composes the
// reply. Every step short-circuits with a user-facing message.
func (s *TipService) process(ctx context.Context, cmd *domain.TipCommand) string {
	onboardingPrompt := fmt.Sprintf(
		"@%s you don't have a tips account set up yet! Visit %s to get started.",
		cmd.SenderUsername, s.opts.LoginURL,
	)

	// 1. The sender must already be an app user.
	sendingUser, err := s.userRepo.GetByExternalID(ctx, cmd.SenderExternalID)
	if err != nil {
		s.fail("sender_lookup", err)
		return msgTryAgainLater
	}
	if sendingUser == nil || sendingUser.ExternalID == nil {
		s.collector.TipsFailed.WithLabelValues("sender_unknown").Inc()
		return onboardingPrompt
	}

	// 2. Resolve the recipient handle to a platform id.
	recipient, err := s.platform.LookupUser(ctx, cmd.RecipientUsername)
	if err != nil {
		s.fail("recipient_lookup", err)
		return msgTryAgainLater
	}
	if recipient == nil {
		s.collector.TipsFailed.WithLabelValues("recipient_unknown").Inc()
		return fmt.Sprintf("Unable to find user: %s", cmd.RecipientUsername)
	}

	// 3. The sender needs a provisioned ledger account.
	senderAccount, err := s.identity.AccountByExternalID(ctx, cmd.SenderExternalID)
	if err != nil {
		s.fail("sender_account", err)
		return msgTryAgainLater
	}
	if senderAccount == nil {
		s.collector.TipsFailed.WithLabelValues("sender_unknown").Inc()
		return onboardingPrompt
	}

	// 4. Operational config snapshot for this invocation.
	cfg, err := s.cfgProvider.Snapshot(ctx)
	if err != nil {
		s.fail("config", err)
		return msgTryAgainLater
	}
	if !cfg.TipsEnabled {
		s.collector.TipsFailed.WithLabelValues("disabled").Inc()
		return "Tips are currently disabled, please try again later."
	}

	// 5. Resolve the recipient's account, provisioning on first contact.
	recipientAccount, err := s.identity.AccountByExternalID(ctx, recipient.ID)
	if err != nil {
		s.fail("recipient_account", err)
		return msgTryAgainLater
	}
	if recipientAccount == nil {
		recipientAccount, err = s.identity.ProvisionAccount(ctx, recipient.ID, cmd.RecipientUsername)
		if err != nil {
			s.fail("provision", err)
			return fmt.Sprintf("Failed to get tips account for user %s.", cmd.RecipientUsername)
		}
	}

	// 6. Execute the transfer. Ledger rejections carry a human-readable
	// message and are surfaced to the sender as-is.
	transfer, err := s.ledger.Transfer(ctx, senderAccount.ID, recipientAccount.ID, cmd.Amount)
	if err != nil {
		s.fail("transfer", err)
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Kind == apperror.KindServiceFailure {
			return appErr.Message
		}
		return msgTryAgainLater
	}

	// The recipient may not be an app user yet; their leg is filed
	// without an owning user until they link.
	recipientUser, err := s.registry.GetOwningUser(ctx, recipientAccount.ID)
	if err != nil {
		s.log.Warn().Err(err).Str("account_id", recipientAccount.ID).Msg("owner lookup failed, treating recipient as unlinked")
		recipientUser = nil
	}
	recipientUserID := ""
	if recipientUser != nil {
		recipientUserID = recipientUser.ID
	}

	// 7. Record both legs and refresh both mirrors. The four writes are
	// independent and run concurrently.
	senderLeg, recipientLeg := domain.NewTipLegPair(
		domain.TipLegSpec{
			Platform:          s.opts.PlatformName,
			TransferID:        transfer.ID,
			Timestamp:         transfer.Timestamp,
			Amount:            cmd.Amount,
			SenderUsername:    cmd.SenderUsername,
			RecipientUsername: cmd.RecipientUsername,
		},
		sendingUser.ID, senderAccount.ID, cmd.SenderExternalID,
		recipientUserID, recipientAccount.ID, recipient.ID,
	)

	var wg sync.WaitGroup
	for _, write := range []func(context.Context) error{
		func(ctx context.Context) error { return s.txRepo.Create(ctx, &senderLeg) },
		func(ctx context.Context) error { return s.txRepo.Create(ctx, &recipientLeg) },
		func(ctx context.Context) error { return s.consolidator.RefreshAccount(ctx, senderAccount.ID) },
		func(ctx context.Context) error { return s.consolidator.RefreshAccount(ctx, recipientAccount.ID) },
	} {
		wg.Add(1)
		go func(write func(context.Context) error) {
			defer wg.Done()
			if err := write(ctx); err != nil {
				s.log.Error().Err(err).Str("transfer_id", transfer.ID).Msg("post-transfer write failed")
			}
		}(write)
	}
	wg.Wait()

	s.collector.TipsProcessed.Inc()

	// 8. Compose the reply.
	reply := fmt.Sprintf(
		"`%.2f %s` tip successfully sent to @%s! Visit %s to manage your tips.",
		float64(cmd.Amount)/atomicUnitsPerCoin, s.opts.CurrencySymbol,
		cmd.RecipientUsername, s.opts.LoginURL,
	)

	if recipientUser == nil {
		reply += fmt.Sprintf(
			"\n\n@%s you have not linked a tips account yet, visit %s to activate your account.",
			cmd.RecipientUsername, s.opts.LoginURL,
		)

		if cfg.TipTimeoutDays > 0 {
			tip, err := s.unclaimed.Create(ctx, transfer, cfg.TipTimeoutDays,
				cmd.SenderUsername, cmd.RecipientUsername, recipient.ID)
			if err != nil {
				s.log.Error().Err(err).Str("transfer_id", transfer.ID).Msg("failed to record unclaimed tip")
			} else {
				reply += fmt.Sprintf(
					" You have %d days to claim your tip before @%s is refunded!",
					tip.TimeoutDays, cmd.SenderUsername,
				)
			}
		}
	}

	return reply
}

func (s *TipService) fail(stage string, err error) {
	s.collector.TipsFailed.WithLabelValues(stage).Inc()
	s.log.Warn().Err(err).Str("stage", stage).Msg("tip pipeline short-circuited")
}

// userMessage extracts the user-facing text of a pipeline error.
func userMessage(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return msgTryAgainLater
}
