package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"tipbot/internal/core/domain"
	"tipbot/internal/core/ports/mocks"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type identityTestDeps struct {
	svc          *IdentityService
	platformRepo *mocks.MockPlatformIdentityRepository
	accountRepo  *mocks.MockAccountRepository
	ledger       *mocks.MockLedgerClient
	transactor   *mocks.MockDBTransactor
	ctrl         *gomock.Controller
}

func setupIdentityService(t *testing.T) *identityTestDeps {
	ctrl := gomock.NewController(t)
	d := &identityTestDeps{
		platformRepo: mocks.NewMockPlatformIdentityRepository(ctrl),
		accountRepo:  mocks.NewMockAccountRepository(ctrl),
		ledger:       mocks.NewMockLedgerClient(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewIdentityService(d.platformRepo, d.accountRepo, d.ledger, d.transactor, zerolog.Nop())
	return d
}

func TestIdentityService_AccountByExternalID_NoIdentity(t *testing.T) {
	d := setupIdentityService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.platformRepo.EXPECT().GetByExternalID(ctx, int64(2002)).Return(nil, nil)

	account, err := d.svc.AccountByExternalID(ctx, 2002)
	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestIdentityService_AccountByExternalID_MirrorHit(t *testing.T) {
	d := setupIdentityService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.platformRepo.EXPECT().GetByExternalID(ctx, int64(2002)).Return(&domain.PlatformIdentity{
		ExternalID: 2002, Username: "bob", AccountID: "acct-b", CreatedAt: time.Now(),
	}, nil)
	d.accountRepo.EXPECT().GetByID(ctx, "acct-b").Return(&domain.Account{ID: "acct-b", BalanceUnlocked: 300}, nil)

	account, err := d.svc.AccountByExternalID(ctx, 2002)
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, int64(300), account.BalanceUnlocked)
}

func TestIdentityService_AccountByExternalID_RebuildsMissingMirror(t *testing.T) {
	d := setupIdentityService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	fresh := &domain.Account{ID: "acct-b", BalanceUnlocked: 800}

	d.platformRepo.EXPECT().GetByExternalID(ctx, int64(2002)).Return(&domain.PlatformIdentity{
		ExternalID: 2002, Username: "bob", AccountID: "acct-b",
	}, nil)
	d.accountRepo.EXPECT().GetByID(ctx, "acct-b").Return(nil, nil)
	d.ledger.EXPECT().GetAccount(ctx, "acct-b").Return(fresh, nil)
	d.accountRepo.EXPECT().Upsert(ctx, fresh).Return(nil)

	account, err := d.svc.AccountByExternalID(ctx, 2002)
	require.NoError(t, err)
	assert.Equal(t, fresh, account)
}

func TestIdentityService_ProvisionAccount_Success(t *testing.T) {
	d := setupIdentityService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	account := &domain.Account{ID: "acct-new"}
	tx := &mockTx{}

	d.ledger.EXPECT().CreateAccount(ctx).Return(account, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().CreateTx(ctx, tx, account).Return(nil)
	d.platformRepo.EXPECT().CreateTx(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, identity *domain.PlatformIdentity) error {
			assert.Equal(t, int64(2002), identity.ExternalID)
			assert.Equal(t, "bob", identity.Username)
			assert.Equal(t, "acct-new", identity.AccountID)
			return nil
		})

	got, err := d.svc.ProvisionAccount(ctx, 2002, "bob")
	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestIdentityService_ProvisionAccount_LedgerFailureLeavesNoState(t *testing.T) {
	d := setupIdentityService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.ledger.EXPECT().CreateAccount(ctx).Return(nil, errors.New("ledger down"))

	_, err := d.svc.ProvisionAccount(ctx, 2002, "bob")
	require.Error(t, err)
}

func TestIdentityService_ProvisionAccount_IdentityWriteFailureRollsBack(t *testing.T) {
	d := setupIdentityService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	account := &domain.Account{ID: "acct-new"}
	tx := &mockTx{}

	d.ledger.EXPECT().CreateAccount(ctx).Return(account, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().CreateTx(ctx, tx, account).Return(nil)
	d.platformRepo.EXPECT().CreateTx(ctx, tx, gomock.Any()).Return(errors.New("duplicate key"))

	_, err := d.svc.ProvisionAccount(ctx, 2002, "bob")
	require.Error(t, err)
}
