package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"tipbot/internal/core/domain"
	"tipbot/internal/core/ports"
	"tipbot/internal/core/ports/mocks"
	"tipbot/pkg/apperror"
	"tipbot/pkg/metrics"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type tipTestDeps struct {
	svc          *TipService
	userRepo     *mocks.MockUserRepository
	platform     *mocks.MockPlatformClient
	identity     *mocks.MockIdentityResolver
	registry     *mocks.MockRegistry
	ledger       *mocks.MockLedgerClient
	txRepo       *mocks.MockTransactionRepository
	unclaimed    *mocks.MockUnclaimedTipManager
	cfgProvider  *mocks.MockConfigProvider
	consolidator *mocks.MockConsolidator
	ctrl         *gomock.Controller
}

func setupTipService(t *testing.T) *tipTestDeps {
	ctrl := gomock.NewController(t)
	d := &tipTestDeps{
		userRepo:     mocks.NewMockUserRepository(ctrl),
		platform:     mocks.NewMockPlatformClient(ctrl),
		identity:     mocks.NewMockIdentityResolver(ctrl),
		registry:     mocks.NewMockRegistry(ctrl),
		ledger:       mocks.NewMockLedgerClient(ctrl),
		txRepo:       mocks.NewMockTransactionRepository(ctrl),
		unclaimed:    mocks.NewMockUnclaimedTipManager(ctrl),
		cfgProvider:  mocks.NewMockConfigProvider(ctrl),
		consolidator: mocks.NewMockConsolidator(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewTipService(
		d.userRepo, d.platform, d.identity, d.registry, d.ledger,
		d.txRepo, d.unclaimed, d.cfgProvider, d.consolidator,
		metrics.NewCollector(),
		TipServiceOpts{
			CommandToken:   ".tip ",
			LoginURL:       "https://tips.example.com",
			CurrencySymbol: "TRTL",
			PlatformName:   "github",
		},
		zerolog.Nop(),
	)
	return d
}

func tipEvent(body string) ports.CommentEvent {
	return ports.CommentEvent{
		DeliveryID:   "d-1",
		ThreadRef:    "issue-42",
		Body:         body,
		SenderID:     1001,
		SenderHandle: "alice",
	}
}

func TestTipService_HandleComment_NonCommandIgnored(t *testing.T) {
	d := setupTipService(t)
	defer d.ctrl.Finish()

	reply, handled := d.svc.HandleComment(context.Background(), tipEvent("great work, thanks!"))
	assert.False(t, handled)
	assert.Empty(t, reply)
}

func TestTipService_HandleComment_MissingRecipient(t *testing.T) {
	d := setupTipService(t)
	defer d.ctrl.Finish()

	reply, handled := d.svc.HandleComment(context.Background(), tipEvent(".tip 5"))
	assert.True(t, handled)
	assert.Equal(t, "No tip recipient defined.", reply)
}

func TestTipService_HandleComment_InvalidAmount(t *testing.T) {
	d := setupTipService(t)
	defer d.ctrl.Finish()

	reply, handled := d.svc.HandleComment(context.Background(), tipEvent(".tip @bob abc"))
	assert.True(t, handled)
	assert.Equal(t, "Invalid tip amount.", reply)
}

func TestTipService_HandleComment_SenderNotOnboarded(t *testing.T) {
	d := setupTipService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.userRepo.EXPECT().GetByExternalID(ctx, int64(1001)).Return(nil, nil)

	reply, handled := d.svc.HandleComment(ctx, tipEvent(".tip @bob 5"))
	assert.True(t, handled)
	assert.Equal(t, "@alice you don't have a tips account set up yet! Visit https://tips.example.com to get started.", reply)
}

func TestTipService_HandleComment_UnknownRecipientHandle(t *testing.T) {
	d := setupTipService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	extID := int64(1001)
	d.userRepo.EXPECT().GetByExternalID(ctx, extID).Return(&domain.User{ID: "user-1", Username: "alice", ExternalID: &extID}, nil)
	d.platform.EXPECT().LookupUser(ctx, "bob").Return(nil, nil)

	reply, handled := d.svc.HandleComment(ctx, tipEvent(".tip @bob 5"))
	assert.True(t, handled)
	assert.Equal(t, "Unable to find user: bob", reply)
}

func TestTipService_HandleComment_TipsDisabled(t *testing.T) {
	d := setupTipService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	extID := int64(1001)
	d.userRepo.EXPECT().GetByExternalID(ctx, extID).Return(&domain.User{ID: "user-1", Username: "alice", ExternalID: &extID}, nil)
	d.platform.EXPECT().LookupUser(ctx, "bob").Return(&ports.PlatformUser{ID: 2002, Username: "bob"}, nil)
	d.identity.EXPECT().AccountByExternalID(ctx, extID).Return(&domain.Account{ID: "acct-a"}, nil)
	d.cfgProvider.EXPECT().Snapshot(ctx).Return(&domain.BotConfig{TipsEnabled: false}, nil)

	reply, handled := d.svc.HandleComment(ctx, tipEvent(".tip @bob 5"))
	assert.True(t, handled)
	assert.Equal(t, "Tips are currently disabled, please try again later.", reply)
}

func TestTipService_HandleComment_LedgerRejectionSurfacedVerbatim(t *testing.T) {
	d := setupTipService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	extID := int64(1001)
	d.userRepo.EXPECT().GetByExternalID(ctx, extID).Return(&domain.User{ID: "user-1", Username: "alice", ExternalID: &extID}, nil)
	d.platform.EXPECT().LookupUser(ctx, "bob").Return(&ports.PlatformUser{ID: 2002, Username: "bob"}, nil)
	d.identity.EXPECT().AccountByExternalID(ctx, extID).Return(&domain.Account{ID: "acct-a"}, nil)
	d.cfgProvider.EXPECT().Snapshot(ctx).Return(&domain.BotConfig{TipsEnabled: true, TipTimeoutDays: 3}, nil)
	d.identity.EXPECT().AccountByExternalID(ctx, int64(2002)).Return(&domain.Account{ID: "acct-b"}, nil)
	d.ledger.EXPECT().Transfer(ctx, "acct-a", "acct-b", int64(500)).
		Return(nil, apperror.ServiceFailure("Insufficient balance to send tip.", errors.New("ledger returned 400")))

	reply, handled := d.svc.HandleComment(ctx, tipEvent(".tip @bob 5"))
	assert.True(t, handled)
	assert.Equal(t, "Insufficient balance to send tip.", reply)
}

func TestTipService_HandleComment_SuccessLinkedRecipient(t *testing.T) {
	d := setupTipService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	extID := int64(1001)
	transfer := &ports.Transfer{
		ID:            "tr-1",
		FromAccountID: "acct-a",
		ToAccountID:   "acct-b",
		Amount:        500,
		Timestamp:     time.Now().UTC(),
	}

	d.userRepo.EXPECT().GetByExternalID(ctx, extID).Return(&domain.User{ID: "user-1", Username: "alice", ExternalID: &extID}, nil)
	d.platform.EXPECT().LookupUser(ctx, "bob").Return(&ports.PlatformUser{ID: 2002, Username: "bob"}, nil)
	d.identity.EXPECT().AccountByExternalID(ctx, extID).Return(&domain.Account{ID: "acct-a"}, nil)
	d.cfgProvider.EXPECT().Snapshot(ctx).Return(&domain.BotConfig{TipsEnabled: true, TipTimeoutDays: 3}, nil)
	d.identity.EXPECT().AccountByExternalID(ctx, int64(2002)).Return(&domain.Account{ID: "acct-b"}, nil)
	d.ledger.EXPECT().Transfer(ctx, "acct-a", "acct-b", int64(500)).Return(transfer, nil)
	d.registry.EXPECT().GetOwningUser(ctx, "acct-b").Return(&domain.User{ID: "user-2", Username: "bob"}, nil)

	var senderLeg, recipientLeg *domain.Transaction
	d.txRepo.EXPECT().Create(ctx, gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, txn *domain.Transaction) error {
			if txn.Amount < 0 {
				senderLeg = txn
			} else {
				recipientLeg = txn
			}
			return nil
		})
	d.consolidator.EXPECT().RefreshAccount(ctx, "acct-a").Return(nil)
	d.consolidator.EXPECT().RefreshAccount(ctx, "acct-b").Return(nil)

	reply, handled := d.svc.HandleComment(ctx, tipEvent(".tip @bob 5"))
	assert.True(t, handled)
	assert.Equal(t, "`5.00 TRTL` tip successfully sent to @bob! Visit https://tips.example.com to manage your tips.", reply)

	// Both legs recorded as a correlated pair.
	if assert.NotNil(t, senderLeg) && assert.NotNil(t, recipientLeg) {
		assert.Equal(t, int64(-500), senderLeg.Amount)
		assert.Equal(t, int64(500), recipientLeg.Amount)
		assert.Equal(t, senderLeg.TransferID, recipientLeg.TransferID)
		assert.Equal(t, senderLeg.Timestamp, recipientLeg.Timestamp)
		assert.Equal(t, "user-2", recipientLeg.UserID)
	}
}

func TestTipService_HandleComment_SuccessUnlinkedRecipientArmsClaimWindow(t *testing.T) {
	d := setupTipService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	extID := int64(1001)
	transfer := &ports.Transfer{ID: "tr-1", FromAccountID: "acct-a", ToAccountID: "acct-b", Amount: 500, Timestamp: time.Now().UTC()}

	d.userRepo.EXPECT().GetByExternalID(ctx, extID).Return(&domain.User{ID: "user-1", Username: "alice", ExternalID: &extID}, nil)
	d.platform.EXPECT().LookupUser(ctx, "bob").Return(&ports.PlatformUser{ID: 2002, Username: "bob"}, nil)
	d.identity.EXPECT().AccountByExternalID(ctx, extID).Return(&domain.Account{ID: "acct-a"}, nil)
	d.cfgProvider.EXPECT().Snapshot(ctx).Return(&domain.BotConfig{TipsEnabled: true, TipTimeoutDays: 3}, nil)
	// First contact: the recipient account is provisioned on the fly.
	d.identity.EXPECT().AccountByExternalID(ctx, int64(2002)).Return(nil, nil)
	d.identity.EXPECT().ProvisionAccount(ctx, int64(2002), "bob").Return(&domain.Account{ID: "acct-b"}, nil)
	d.ledger.EXPECT().Transfer(ctx, "acct-a", "acct-b", int64(500)).Return(transfer, nil)
	d.registry.EXPECT().GetOwningUser(ctx, "acct-b").Return(nil, nil)
	d.txRepo.EXPECT().Create(ctx, gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, txn *domain.Transaction) error {
			if txn.Amount > 0 {
				// Unlinked recipient leg still files under the account.
				assert.Empty(t, txn.UserID)
				assert.Equal(t, "acct-b", txn.AccountID)
			}
			return nil
		})
	d.consolidator.EXPECT().RefreshAccount(ctx, "acct-a").Return(nil)
	d.consolidator.EXPECT().RefreshAccount(ctx, "acct-b").Return(nil)
	d.unclaimed.EXPECT().Create(ctx, transfer, 3, "alice", "bob", int64(2002)).
		Return(&domain.UnclaimedTip{TimeoutDays: 3}, nil)

	reply, handled := d.svc.HandleComment(ctx, tipEvent(".tip @bob 5"))
	assert.True(t, handled)
	assert.Contains(t, reply, "`5.00 TRTL` tip successfully sent to @bob!")
	assert.Contains(t, reply, "@bob you have not linked a tips account yet")
	assert.Contains(t, reply, "You have 3 days to claim your tip before @alice is refunded!")
}

func TestTipService_HandleComment_UnlinkedRecipientNoTimeoutNoClaimRecord(t *testing.T) {
	d := setupTipService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	extID := int64(1001)
	transfer := &ports.Transfer{ID: "tr-1", FromAccountID: "acct-a", ToAccountID: "acct-b", Amount: 500, Timestamp: time.Now().UTC()}

	d.userRepo.EXPECT().GetByExternalID(ctx, extID).Return(&domain.User{ID: "user-1", Username: "alice", ExternalID: &extID}, nil)
	d.platform.EXPECT().LookupUser(ctx, "bob").Return(&ports.PlatformUser{ID: 2002, Username: "bob"}, nil)
	d.identity.EXPECT().AccountByExternalID(ctx, extID).Return(&domain.Account{ID: "acct-a"}, nil)
	// TipTimeoutDays = 0 disables claim windows entirely.
	d.cfgProvider.EXPECT().Snapshot(ctx).Return(&domain.BotConfig{TipsEnabled: true, TipTimeoutDays: 0}, nil)
	d.identity.EXPECT().AccountByExternalID(ctx, int64(2002)).Return(&domain.Account{ID: "acct-b"}, nil)
	d.ledger.EXPECT().Transfer(ctx, "acct-a", "acct-b", int64(500)).Return(transfer, nil)
	d.registry.EXPECT().GetOwningUser(ctx, "acct-b").Return(nil, nil)
	d.txRepo.EXPECT().Create(ctx, gomock.Any()).Times(2).Return(nil)
	d.consolidator.EXPECT().RefreshAccount(ctx, "acct-a").Return(nil)
	d.consolidator.EXPECT().RefreshAccount(ctx, "acct-b").Return(nil)

	reply, handled := d.svc.HandleComment(ctx, tipEvent(".tip @bob 5"))
	assert.True(t, handled)
	assert.Contains(t, reply, "@bob you have not linked a tips account yet")
	assert.NotContains(t, reply, "days to claim")
}

func TestTipService_HandleComment_ProvisionFailure(t *testing.T) {
	d := setupTipService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	extID := int64(1001)

	d.userRepo.EXPECT().GetByExternalID(ctx, extID).Return(&domain.User{ID: "user-1", Username: "alice", ExternalID: &extID}, nil)
	d.platform.EXPECT().LookupUser(ctx, "bob").Return(&ports.PlatformUser{ID: 2002, Username: "bob"}, nil)
	d.identity.EXPECT().AccountByExternalID(ctx, extID).Return(&domain.Account{ID: "acct-a"}, nil)
	d.cfgProvider.EXPECT().Snapshot(ctx).Return(&domain.BotConfig{TipsEnabled: true}, nil)
	d.identity.EXPECT().AccountByExternalID(ctx, int64(2002)).Return(nil, nil)
	d.identity.EXPECT().ProvisionAccount(ctx, int64(2002), "bob").Return(nil, errors.New("ledger down"))

	reply, handled := d.svc.HandleComment(ctx, tipEvent(".tip @bob 5"))
	assert.True(t, handled)
	assert.Equal(t, "Failed to get tips account for user bob.", reply)
}

func TestTipService_HandleComment_FractionalAmountRoundsUp(t *testing.T) {
	d := setupTipService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	extID := int64(1001)
	transfer := &ports.Transfer{ID: "tr-1", FromAccountID: "acct-a", ToAccountID: "acct-b", Amount: 101, Timestamp: time.Now().UTC()}

	d.userRepo.EXPECT().GetByExternalID(ctx, extID).Return(&domain.User{ID: "user-1", Username: "alice", ExternalID: &extID}, nil)
	d.platform.EXPECT().LookupUser(ctx, "bob").Return(&ports.PlatformUser{ID: 2002, Username: "bob"}, nil)
	d.identity.EXPECT().AccountByExternalID(ctx, extID).Return(&domain.Account{ID: "acct-a"}, nil)
	d.cfgProvider.EXPECT().Snapshot(ctx).Return(&domain.BotConfig{TipsEnabled: true}, nil)
	d.identity.EXPECT().AccountByExternalID(ctx, int64(2002)).Return(&domain.Account{ID: "acct-b"}, nil)
	// 1.005 coins rounds up to 101 atomic units.
	d.ledger.EXPECT().Transfer(ctx, "acct-a", "acct-b", int64(101)).Return(transfer, nil)
	d.registry.EXPECT().GetOwningUser(ctx, "acct-b").Return(&domain.User{ID: "user-2", Username: "bob"}, nil)
	d.txRepo.EXPECT().Create(ctx, gomock.Any()).Times(2).Return(nil)
	d.consolidator.EXPECT().RefreshAccount(ctx, "acct-a").Return(nil)
	d.consolidator.EXPECT().RefreshAccount(ctx, "acct-b").Return(nil)

	reply, handled := d.svc.HandleComment(ctx, tipEvent(".tip @bob 1.005"))
	assert.True(t, handled)
	assert.Contains(t, reply, "`1.01 TRTL` tip successfully sent to @bob!")
}
