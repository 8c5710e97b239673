package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RackSavant/sistachat-sub000/internal/domain"
	"github.com/RackSavant/sistachat-sub000/internal/ledger"
	"github.com/RackSavant/sistachat-sub000/internal/mocks"
	"github.com/RackSavant/sistachat-sub000/internal/store"
	"github.com/RackSavant/sistachat-sub000/internal/store/schema"
)

const (
	authority domain.Address = "Af2Y56WUFQuTTTYHMCjMozYsDxvTvSM6YQnyv8E6EK3v"
	treasury  domain.Address = "7vzEoA6qPLqGXe5rxmMK7iha63znnLfwGppBrUfELajg"
	designerA domain.Address = "6HCmRbdv88G4zYEXSnCwXX8M6hDv5dvEpvajeh1LvLLD"
	buyerA    domain.Address = "BPFPbKymeQs376ZYGMb8CGwhxfMKaPT8fDJtEhsNRpVg"
	holderC   domain.Address = "6pCnqX9td98SY79Vib9NspPYMpQ2ZKE8sT1UH1EGVeGy"

	// stand-ins for derived accounts; any valid key works with a mocked store
	designAddr  domain.Address = "UhVSvCWkoBe3Gftuw16diggQb8DAsTkRnqJsKSxeVfo"
	profileAddr domain.Address = "7zv5e4docsDiNmb5ia4nXQ4nFzEVFR2sr6SNRwNohZbf"
	mintAddr    domain.Address = "5KTz5iaLEUFEKSWqAHZhmZoB7rtYoxSN72HxvXraXwyo"
)

type testLedger struct {
	ctrl   *gomock.Controller
	store  *mocks.MockStore
	ledger ledger.Ledger
}

func setupTestLedger(t *testing.T) *testLedger {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	return &testLedger{
		ctrl:   ctrl,
		store:  st,
		ledger: ledger.New(st),
	}
}

func TestLedger_InitializePlatform(t *testing.T) {
	tests := []struct {
		name    string
		input   store.InitializePlatformInput
		setup   func(tl *testLedger)
		wantErr error
	}{
		{
			name:    "invalid authority",
			input:   store.InitializePlatformInput{Authority: "not-base58!", Treasury: treasury, FeeBps: 500},
			wantErr: domain.ErrInvalidAddress,
		},
		{
			name:    "fee above 100%",
			input:   store.InitializePlatformInput{Authority: authority, Treasury: treasury, FeeBps: 10_001},
			wantErr: domain.ErrFeeBpsOutOfRange,
		},
		{
			name:  "already initialized",
			input: store.InitializePlatformInput{Authority: authority, Treasury: treasury, FeeBps: 500},
			setup: func(tl *testLedger) {
				tl.store.EXPECT().
					InitializePlatform(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrPlatformAlreadyInitialized)
			},
			wantErr: domain.ErrPreconditionViolation,
		},
		{
			name:  "success",
			input: store.InitializePlatformInput{Authority: authority, Treasury: treasury, FeeBps: 10_000},
			setup: func(tl *testLedger) {
				tl.store.EXPECT().
					InitializePlatform(gomock.Any(), store.InitializePlatformInput{Authority: authority, Treasury: treasury, FeeBps: 10_000}).
					Return(&schema.PlatformLedger{Authority: authority, Treasury: treasury, FeeBps: 10_000}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := setupTestLedger(t)
			if tt.setup != nil {
				tt.setup(tl)
			}

			platform, err := tl.ledger.InitializePlatform(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint16(10_000), platform.FeeBps)
		})
	}
}

func TestLedger_UpdatePlatform_InvalidTreasury(t *testing.T) {
	tl := setupTestLedger(t)

	bad := domain.Address("0xdeadbeef")
	_, err := tl.ledger.UpdatePlatform(context.Background(), store.UpdatePlatformInput{Authority: authority, Treasury: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}

func TestLedger_FundAndWithdraw_RejectZeroAmount(t *testing.T) {
	tl := setupTestLedger(t)
	ctx := context.Background()

	_, err := tl.ledger.FundAccount(ctx, store.FundAccountInput{Authority: authority, Account: buyerA})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = tl.ledger.WithdrawFee(ctx, store.WithdrawFeeInput{Authority: authority, Destination: buyerA})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestLedger_WithdrawFee_PassesThroughStoreErrors(t *testing.T) {
	tl := setupTestLedger(t)

	tl.store.EXPECT().
		WithdrawFee(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrNotPlatformAuthority)

	_, err := tl.ledger.WithdrawFee(context.Background(), store.WithdrawFeeInput{Authority: buyerA, Destination: buyerA, Amount: 1})
	assert.ErrorIs(t, err, domain.ErrAuthorizationFailure)
}

func TestLedger_TransferShares(t *testing.T) {
	tests := []struct {
		name    string
		input   store.TransferSharesInput
		setup   func(tl *testLedger)
		wantErr error
	}{
		{
			name:    "self transfer",
			input:   store.TransferSharesInput{Mint: mintAddr, From: designerA, To: designerA, Amount: 1},
			wantErr: domain.ErrSelfTransfer,
		},
		{
			name:    "zero amount",
			input:   store.TransferSharesInput{Mint: mintAddr, From: designerA, To: holderC},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "invalid recipient",
			input:   store.TransferSharesInput{Mint: mintAddr, From: designerA, To: "", Amount: 1},
			wantErr: domain.ErrInvalidAddress,
		},
		{
			name:  "success",
			input: store.TransferSharesInput{Mint: mintAddr, From: designerA, To: holderC, Amount: 100_000_000_000},
			setup: func(tl *testLedger) {
				tl.store.EXPECT().
					TransferShares(gomock.Any(), gomock.Any()).
					Return(&store.TransferSharesResult{
						From:      &schema.TokenHolding{HolderAddress: designerA, Balance: 800_000_000_000},
						To:        &schema.TokenHolding{HolderAddress: holderC, Balance: 100_000_000_000},
						DebtMoved: 190_000_000,
					}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := setupTestLedger(t)
			if tt.setup != nil {
				tt.setup(tl)
			}

			result, err := tl.ledger.TransferShares(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.Amount(190_000_000), result.DebtMoved)
		})
	}
}

func TestLedger_Buy(t *testing.T) {
	t.Run("zero quantity never reaches the store", func(t *testing.T) {
		tl := setupTestLedger(t)
		_, err := tl.ledger.Buy(context.Background(), store.BuyInput{Buyer: buyerA, Design: designAddr})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})

	t.Run("insufficient inventory", func(t *testing.T) {
		tl := setupTestLedger(t)
		tl.store.EXPECT().
			Buy(gomock.Any(), store.BuyInput{Buyer: buyerA, Design: designAddr, Quantity: 11}).
			Return(nil, domain.ErrInsufficientInventory)

		result, err := tl.ledger.Buy(context.Background(), store.BuyInput{Buyer: buyerA, Design: designAddr, Quantity: 11})
		assert.ErrorIs(t, err, domain.ErrInsufficientInventory)
		assert.Nil(t, result)
	})

	t.Run("success", func(t *testing.T) {
		tl := setupTestLedger(t)
		tl.store.EXPECT().
			Buy(gomock.Any(), gomock.Any()).
			Return(&store.BuyResult{
				Settlement: domain.Settlement{Total: 2_000_000_000, Fee: 100_000_000, Net: 1_900_000_000},
			}, nil)

		result, err := tl.ledger.Buy(context.Background(), store.BuyInput{Buyer: buyerA, Design: designAddr, Quantity: 2})
		require.NoError(t, err)
		assert.Equal(t, domain.Amount(100_000_000), result.Settlement.Fee)
	})
}

func TestLedger_DistributeToHolder(t *testing.T) {
	tl := setupTestLedger(t)
	ctx := context.Background()

	_, err := tl.ledger.DistributeToHolder(ctx, store.DistributeInput{Design: designAddr, Holder: "bad"})
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)

	tl.store.EXPECT().
		DistributeToHolder(gomock.Any(), gomock.Any()).
		Return(&store.DistributionResult{Design: designAddr, Holder: holderC}, nil)

	result, err := tl.ledger.DistributeToHolder(ctx, store.DistributeInput{Design: designAddr, Holder: holderC})
	require.NoError(t, err)
	assert.Zero(t, result.Payout)
}

func TestLedger_DistributeAll(t *testing.T) {
	design := &schema.DesignCatalogEntry{Address: designAddr, DesignerAddress: profileAddr}
	designer := &schema.DesignerRegistry{Address: profileAddr, Owner: designerA, MintAddress: mintAddr}

	t.Run("unknown design", func(t *testing.T) {
		tl := setupTestLedger(t)
		tl.store.EXPECT().GetDesign(gomock.Any(), designAddr).Return(nil, nil)

		_, err := tl.ledger.DistributeAll(context.Background(), designAddr, nil)
		assert.ErrorIs(t, err, domain.ErrDesignNotFound)
	})

	t.Run("empty escrow lists no holders", func(t *testing.T) {
		tl := setupTestLedger(t)
		tl.store.EXPECT().GetDesign(gomock.Any(), designAddr).Return(design, nil)
		tl.store.EXPECT().GetDesignerByAddress(gomock.Any(), profileAddr).Return(designer, nil)
		tl.store.EXPECT().GetEscrowByDesign(gomock.Any(), designAddr).Return(&schema.EscrowAccount{DesignAddress: designAddr}, nil)

		summary, err := tl.ledger.DistributeAll(context.Background(), designAddr, nil)
		require.NoError(t, err)
		assert.Zero(t, summary.HoldersSeen)
		assert.Zero(t, summary.TotalPaid)
	})

	t.Run("pays holders until the escrow is empty", func(t *testing.T) {
		tl := setupTestLedger(t)
		tl.store.EXPECT().GetDesign(gomock.Any(), designAddr).Return(design, nil)
		tl.store.EXPECT().GetDesignerByAddress(gomock.Any(), profileAddr).Return(designer, nil)
		tl.store.EXPECT().GetEscrowByDesign(gomock.Any(), designAddr).Return(&schema.EscrowAccount{
			DesignAddress:  designAddr,
			Balance:        1_900_000_000,
			TotalDeposited: 1_900_000_000,
		}, nil)
		tl.store.EXPECT().
			ListHoldings(gomock.Any(), mintAddr, gomock.Any(), uint64(0)).
			Return([]schema.TokenHolding{
				{MintAddress: mintAddr, HolderAddress: holderC, Balance: 100_000_000_000},
				{MintAddress: mintAddr, HolderAddress: designerA, Balance: 900_000_000_000},
				{MintAddress: mintAddr, HolderAddress: buyerA, Balance: 0},
			}, uint64(3), nil)

		gomock.InOrder(
			tl.store.EXPECT().
				DistributeToHolder(gomock.Any(), store.DistributeInput{Design: designAddr, Holder: holderC}).
				Return(&store.DistributionResult{
					Payout: 190_000_000,
					Escrow: &schema.EscrowAccount{Balance: 1_710_000_000},
				}, nil),
			tl.store.EXPECT().
				DistributeToHolder(gomock.Any(), store.DistributeInput{Design: designAddr, Holder: designerA}).
				Return(&store.DistributionResult{
					Payout: 1_710_000_000,
					Escrow: &schema.EscrowAccount{Balance: 0},
				}, nil),
		)

		summary, err := tl.ledger.DistributeAll(context.Background(), designAddr, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, summary.HoldersSeen)
		assert.Equal(t, 2, summary.HoldersPaid)
		assert.Equal(t, domain.Amount(1_900_000_000), summary.TotalPaid)
		assert.Equal(t, domain.Amount(1_900_000_000), summary.EscrowBefore)
		assert.Zero(t, summary.EscrowAfter)
	})

	t.Run("stops on the first failure", func(t *testing.T) {
		tl := setupTestLedger(t)
		boom := errors.New("connection reset")
		tl.store.EXPECT().GetDesign(gomock.Any(), designAddr).Return(design, nil)
		tl.store.EXPECT().GetDesignerByAddress(gomock.Any(), profileAddr).Return(designer, nil)
		tl.store.EXPECT().GetEscrowByDesign(gomock.Any(), designAddr).Return(&schema.EscrowAccount{Balance: 10}, nil)
		tl.store.EXPECT().
			ListHoldings(gomock.Any(), mintAddr, gomock.Any(), uint64(0)).
			Return([]schema.TokenHolding{{HolderAddress: holderC}, {HolderAddress: designerA}}, uint64(2), nil)
		tl.store.EXPECT().DistributeToHolder(gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := tl.ledger.DistributeAll(context.Background(), designAddr, nil)
		assert.ErrorIs(t, err, boom)
	})
}
