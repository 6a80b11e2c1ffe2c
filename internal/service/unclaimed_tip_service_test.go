package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"tipbot/internal/core/domain"
	"tipbot/internal/core/ports"
	"tipbot/internal/core/ports/mocks"
	"tipbot/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type unclaimedTestDeps struct {
	svc    *UnclaimedTipService
	repo   *mocks.MockUnclaimedTipRepository
	ledger *mocks.MockLedgerClient
	ctrl   *gomock.Controller
}

func setupUnclaimedTipService(t *testing.T) *unclaimedTestDeps {
	ctrl := gomock.NewController(t)
	d := &unclaimedTestDeps{
		repo:   mocks.NewMockUnclaimedTipRepository(ctrl),
		ledger: mocks.NewMockLedgerClient(ctrl),
		ctrl:   ctrl,
	}
	d.svc = NewUnclaimedTipService(d.repo, d.ledger, metrics.NewCollector(), zerolog.Nop())
	return d
}

func TestUnclaimedTipService_Create_RecordOnlyNoTransfer(t *testing.T) {
	d := setupUnclaimedTipService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ts := time.Now().UTC()
	transfer := &ports.Transfer{
		ID:            "tr-1",
		FromAccountID: "acct-a",
		ToAccountID:   "acct-b",
		Amount:        500,
		Timestamp:     ts,
	}

	d.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, tip *domain.UnclaimedTip) error {
			assert.Equal(t, "tr-1", tip.TransferID)
			assert.Equal(t, domain.UnclaimedTipStatusPending, tip.Status)
			assert.Equal(t, ts, tip.CreatedAt)
			return nil
		})

	tip, err := d.svc.Create(ctx, transfer, 3, "alice", "bob", 2002)
	require.NoError(t, err)
	assert.Equal(t, 3, tip.TimeoutDays)
	assert.Equal(t, int64(2002), tip.RecipientExternalID)
	assert.Equal(t, ts.AddDate(0, 0, 3), tip.ExpiresAt())
}

func TestUnclaimedTipService_ClaimFor_CountsOnlyActualTransitions(t *testing.T) {
	d := setupUnclaimedTipService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id1, id2 := uuid.New(), uuid.New()

	d.repo.EXPECT().ListPendingByRecipient(ctx, int64(2002)).Return([]domain.UnclaimedTip{
		{ID: id1, Status: domain.UnclaimedTipStatusPending},
		{ID: id2, Status: domain.UnclaimedTipStatusPending},
	}, nil)
	d.repo.EXPECT().MarkClaimed(ctx, id1).Return(true, nil)
	// Refunded by a concurrent sweep between list and claim.
	d.repo.EXPECT().MarkClaimed(ctx, id2).Return(false, nil)

	claimed, err := d.svc.ClaimFor(ctx, 2002)
	require.NoError(t, err)
	assert.Equal(t, 1, claimed)
}

func TestUnclaimedTipService_ClaimFor_NothingPending(t *testing.T) {
	d := setupUnclaimedTipService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.repo.EXPECT().ListPendingByRecipient(ctx, int64(2002)).Return(nil, nil)

	claimed, err := d.svc.ClaimFor(ctx, 2002)
	require.NoError(t, err)
	assert.Zero(t, claimed)
}

func TestUnclaimedTipService_ExpireSweep_RefundsExpiredTips(t *testing.T) {
	d := setupUnclaimedTipService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()

	d.repo.EXPECT().ListExpired(ctx, gomock.Any()).Return([]domain.UnclaimedTip{{
		ID:                 id,
		TransferID:         "tr-1",
		SenderAccountID:    "acct-a",
		RecipientAccountID: "acct-b",
		Amount:             500,
		Status:             domain.UnclaimedTipStatusPending,
	}}, nil)
	// The record transitions first, then funds move back.
	gomock.InOrder(
		d.repo.EXPECT().MarkRefunded(ctx, id).Return(true, nil),
		d.ledger.EXPECT().Transfer(ctx, "acct-b", "acct-a", int64(500)).Return(&ports.Transfer{ID: "tr-2"}, nil),
	)

	require.NoError(t, d.svc.ExpireSweep(ctx))
}

func TestUnclaimedTipService_ExpireSweep_SkipsConcurrentlyClaimed(t *testing.T) {
	d := setupUnclaimedTipService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()

	d.repo.EXPECT().ListExpired(ctx, gomock.Any()).Return([]domain.UnclaimedTip{{
		ID:                 id,
		RecipientAccountID: "acct-b",
		SenderAccountID:    "acct-a",
		Amount:             500,
	}}, nil)
	// Claimed between list and transition: no refund transfer.
	d.repo.EXPECT().MarkRefunded(ctx, id).Return(false, nil)

	require.NoError(t, d.svc.ExpireSweep(ctx))
}

func TestUnclaimedTipService_ExpireSweep_RefundFailureDoesNotAbortPass(t *testing.T) {
	d := setupUnclaimedTipService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id1, id2 := uuid.New(), uuid.New()

	d.repo.EXPECT().ListExpired(ctx, gomock.Any()).Return([]domain.UnclaimedTip{
		{ID: id1, SenderAccountID: "acct-a", RecipientAccountID: "acct-b", Amount: 100},
		{ID: id2, SenderAccountID: "acct-c", RecipientAccountID: "acct-d", Amount: 200},
	}, nil)
	d.repo.EXPECT().MarkRefunded(ctx, id1).Return(true, nil)
	d.ledger.EXPECT().Transfer(ctx, "acct-b", "acct-a", int64(100)).Return(nil, errors.New("ledger down"))
	d.repo.EXPECT().MarkRefunded(ctx, id2).Return(true, nil)
	d.ledger.EXPECT().Transfer(ctx, "acct-d", "acct-c", int64(200)).Return(&ports.Transfer{ID: "tr-9"}, nil)

	require.NoError(t, d.svc.ExpireSweep(ctx))
}

func TestUnclaimedTipService_ExpireSweep_UsesInjectedClock(t *testing.T) {
	d := setupUnclaimedTipService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	d.svc.now = func() time.Time { return fixed }

	d.repo.EXPECT().ListExpired(ctx, fixed).Return(nil, nil)

	require.NoError(t, d.svc.ExpireSweep(ctx))
}
