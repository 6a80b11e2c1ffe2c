package service

import (
	"context"
	"errors"
	"testing"

	"tipbot/internal/core/domain"
	"tipbot/internal/core/ports/mocks"
	"tipbot/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type onboardingTestDeps struct {
	svc       *OnboardingServiceImpl
	userRepo  *mocks.MockUserRepository
	identity  *mocks.MockIdentityResolver
	registry  *mocks.MockRegistry
	unclaimed *mocks.MockUnclaimedTipManager
	ctrl      *gomock.Controller
}

func setupOnboardingService(t *testing.T) *onboardingTestDeps {
	ctrl := gomock.NewController(t)
	d := &onboardingTestDeps{
		userRepo:  mocks.NewMockUserRepository(ctrl),
		identity:  mocks.NewMockIdentityResolver(ctrl),
		registry:  mocks.NewMockRegistry(ctrl),
		unclaimed: mocks.NewMockUnclaimedTipManager(ctrl),
		ctrl:      ctrl,
	}
	d.svc = NewOnboardingService(d.userRepo, d.identity, d.registry, d.unclaimed, zerolog.Nop())
	return d
}

func TestOnboardingService_LinkPlatformAccount_ClaimsPendingTips(t *testing.T) {
	d := setupOnboardingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	extID := int64(2002)
	user := &domain.User{ID: "user-2", Username: "bob", ExternalID: &extID}
	account := &domain.Account{ID: "acct-b", BalanceUnlocked: 500}
	edge := &domain.LinkedAccount{UserID: "user-2", AccountID: "acct-b", Primary: true, BalanceUnlocked: 500}

	d.userRepo.EXPECT().GetByID(ctx, "user-2").Return(user, nil)
	d.identity.EXPECT().AccountByExternalID(ctx, extID).Return(account, nil)
	d.registry.EXPECT().LinkAccount(ctx, user, account).Return(true, nil)
	d.unclaimed.EXPECT().ClaimFor(ctx, extID).Return(2, nil)
	d.registry.EXPECT().GetLinkedAccount(ctx, "user-2", "acct-b").Return(edge, nil)

	got, err := d.svc.LinkPlatformAccount(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, edge, got)
}

func TestOnboardingService_LinkPlatformAccount_ProvisionsOnFirstContact(t *testing.T) {
	d := setupOnboardingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	extID := int64(2002)
	user := &domain.User{ID: "user-2", Username: "bob", ExternalID: &extID}
	account := &domain.Account{ID: "acct-b"}

	d.userRepo.EXPECT().GetByID(ctx, "user-2").Return(user, nil)
	d.identity.EXPECT().AccountByExternalID(ctx, extID).Return(nil, nil)
	d.identity.EXPECT().ProvisionAccount(ctx, extID, "bob").Return(account, nil)
	d.registry.EXPECT().LinkAccount(ctx, user, account).Return(true, nil)
	d.unclaimed.EXPECT().ClaimFor(ctx, extID).Return(0, nil)
	d.registry.EXPECT().GetLinkedAccount(ctx, "user-2", "acct-b").Return(&domain.LinkedAccount{}, nil)

	_, err := d.svc.LinkPlatformAccount(ctx, "user-2")
	require.NoError(t, err)
}

func TestOnboardingService_LinkPlatformAccount_AlreadyLinked(t *testing.T) {
	d := setupOnboardingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	extID := int64(2002)
	user := &domain.User{ID: "user-2", Username: "bob", ExternalID: &extID}
	account := &domain.Account{ID: "acct-b"}

	d.userRepo.EXPECT().GetByID(ctx, "user-2").Return(user, nil)
	d.identity.EXPECT().AccountByExternalID(ctx, extID).Return(account, nil)
	d.registry.EXPECT().LinkAccount(ctx, user, account).Return(false, nil)

	_, err := d.svc.LinkPlatformAccount(ctx, "user-2")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindConflict, appErr.Kind)
}

func TestOnboardingService_LinkPlatformAccount_NoPlatformIdentity(t *testing.T) {
	d := setupOnboardingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.userRepo.EXPECT().GetByID(ctx, "user-2").Return(&domain.User{ID: "user-2", Username: "bob"}, nil)

	_, err := d.svc.LinkPlatformAccount(ctx, "user-2")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindPreconditionFailed, appErr.Kind)
}

func TestOnboardingService_LinkPlatformAccount_UnknownUser(t *testing.T) {
	d := setupOnboardingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.userRepo.EXPECT().GetByID(ctx, "nobody").Return(nil, nil)

	_, err := d.svc.LinkPlatformAccount(ctx, "nobody")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
}

func TestOnboardingService_LinkPlatformAccount_ClaimFailureIsNonFatal(t *testing.T) {
	d := setupOnboardingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	extID := int64(2002)
	user := &domain.User{ID: "user-2", Username: "bob", ExternalID: &extID}
	account := &domain.Account{ID: "acct-b"}
	edge := &domain.LinkedAccount{UserID: "user-2", AccountID: "acct-b", Primary: true}

	d.userRepo.EXPECT().GetByID(ctx, "user-2").Return(user, nil)
	d.identity.EXPECT().AccountByExternalID(ctx, extID).Return(account, nil)
	d.registry.EXPECT().LinkAccount(ctx, user, account).Return(true, nil)
	d.unclaimed.EXPECT().ClaimFor(ctx, extID).Return(0, errors.New("db down"))
	d.registry.EXPECT().GetLinkedAccount(ctx, "user-2", "acct-b").Return(edge, nil)

	got, err := d.svc.LinkPlatformAccount(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, edge, got)
}

func TestOnboardingService_AgreeDisclaimer(t *testing.T) {
	d := setupOnboardingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.userRepo.EXPECT().SetDisclaimerAccepted(ctx, "user-2").Return(nil)

	require.NoError(t, d.svc.AgreeDisclaimer(ctx, "user-2"))
}
