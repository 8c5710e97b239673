package executor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RackSavant/sistachat-sub000/internal/api/shared/dto"
	apierrors "github.com/RackSavant/sistachat-sub000/internal/api/shared/errors"
	"github.com/RackSavant/sistachat-sub000/internal/api/shared/executor"
	"github.com/RackSavant/sistachat-sub000/internal/domain"
	"github.com/RackSavant/sistachat-sub000/internal/mocks"
	"github.com/RackSavant/sistachat-sub000/internal/store"
	"github.com/RackSavant/sistachat-sub000/internal/store/schema"
)

const (
	owner  = domain.Address("6HCmRbdv88G4zYEXSnCwXX8M6hDv5dvEpvajeh1LvLLD")
	buyer  = domain.Address("BPFPbKymeQs376ZYGMb8CGwhxfMKaPT8fDJtEhsNRpVg")
	design = domain.Address("UhVSvCWkoBe3Gftuw16diggQb8DAsTkRnqJsKSxeVfo")
	escrow = domain.Address("6pCnqX9td98SY79Vib9NspPYMpQ2ZKE8sT1UH1EGVeGy")
)

type testExecutor struct {
	store  *mocks.MockStore
	ledger *mocks.MockLedger
	exec   executor.Executor
}

func setupTestExecutor(t *testing.T) *testExecutor {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	l := mocks.NewMockLedger(ctrl)
	return &testExecutor{store: st, ledger: l, exec: executor.NewExecutor(st, l)}
}

func apiCode(t *testing.T, err error) apierrors.ErrorCode {
	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	return apiErr.Code
}

func TestBuy_MapsSettlement(t *testing.T) {
	te := setupTestExecutor(t)
	ctx := context.Background()

	te.ledger.EXPECT().
		Buy(ctx, store.BuyInput{Buyer: buyer, Design: design, Quantity: 2}).
		Return(&store.BuyResult{
			Design: &schema.DesignCatalogEntry{
				Address:          design,
				OwnerDesigner:    owner,
				PricePerUnit:     domain.SettlementUnit,
				Inventory:        8,
				InitialInventory: 10,
				TotalSales:       2,
			},
			Escrow: &schema.EscrowAccount{
				Address:        escrow,
				DesignAddress:  design,
				Balance:        1_900_000_000,
				TotalDeposited: 1_900_000_000,
			},
			Settlement:   domain.Settlement{Total: 2_000_000_000, Fee: 100_000_000, Net: 1_900_000_000},
			BuyerBalance: 3_000_000_000,
		}, nil)

	resp, err := te.exec.Buy(ctx, buyer, design.String(), &dto.BuyRequest{Quantity: 2})
	require.NoError(t, err)

	assert.Equal(t, uint64(2), resp.Quantity)
	assert.Equal(t, "1", resp.UnitPrice.Display)
	assert.Equal(t, "0.1", resp.Fee.Display)
	assert.Equal(t, domain.Amount(1_900_000_000), resp.Net.Raw)
	assert.Equal(t, domain.DesignStatePartiallySold, resp.Design.State)
	require.NotNil(t, resp.Design.Escrow)
	assert.Equal(t, "1.9", resp.Design.Escrow.Balance.Display)
}

func TestBuy_ClassifiesLedgerError(t *testing.T) {
	te := setupTestExecutor(t)
	ctx := context.Background()

	te.ledger.EXPECT().Buy(ctx, gomock.Any()).Return(nil, domain.ErrInsufficientFunds)

	_, err := te.exec.Buy(ctx, buyer, design.String(), &dto.BuyRequest{Quantity: 1})
	assert.Equal(t, apierrors.ErrCodeInsufficientFunds, apiCode(t, err))
}

func TestBuy_InvalidDesignAddress(t *testing.T) {
	te := setupTestExecutor(t)

	_, err := te.exec.Buy(context.Background(), buyer, "not-base58!", &dto.BuyRequest{Quantity: 1})
	assert.Equal(t, apierrors.ErrCodeValidationFailed, apiCode(t, err))
}

func TestGetDesign(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		te := setupTestExecutor(t)
		te.store.EXPECT().GetDesign(ctx, design).Return(nil, nil)

		resp, err := te.exec.GetDesign(ctx, design.String())
		require.NoError(t, err)
		assert.Nil(t, resp)
	})

	t.Run("with escrow", func(t *testing.T) {
		te := setupTestExecutor(t)
		te.store.EXPECT().GetDesign(ctx, design).Return(&schema.DesignCatalogEntry{Address: design, Inventory: 0, InitialInventory: 5}, nil)
		te.store.EXPECT().GetEscrowByDesign(ctx, design).Return(&schema.EscrowAccount{Address: escrow, DesignAddress: design}, nil)

		resp, err := te.exec.GetDesign(ctx, design.String())
		require.NoError(t, err)
		assert.Equal(t, domain.DesignStateSoldOut, resp.State)
		assert.Equal(t, escrow, resp.Escrow.Address)
	})

	t.Run("store failure", func(t *testing.T) {
		te := setupTestExecutor(t)
		te.store.EXPECT().GetDesign(ctx, design).Return(nil, errors.New("connection refused"))

		_, err := te.exec.GetDesign(ctx, design.String())
		assert.Equal(t, apierrors.ErrCodeDatabaseError, apiCode(t, err))
	})
}

func TestGetAccount_NeverCredited(t *testing.T) {
	te := setupTestExecutor(t)
	ctx := context.Background()

	te.store.EXPECT().GetAccount(ctx, buyer).Return(nil, nil)

	resp, err := te.exec.GetAccount(ctx, buyer.String())
	require.NoError(t, err)
	assert.Equal(t, buyer, resp.Address)
	assert.Equal(t, domain.Amount(0), resp.Balance.Raw)
	assert.Equal(t, "0", resp.Balance.Display)
}

func TestListHoldings_NextOffset(t *testing.T) {
	te := setupTestExecutor(t)
	ctx := context.Background()
	limit := 2
	offset := uint64(0)

	te.store.EXPECT().ListHoldings(ctx, owner, 2, uint64(0)).Return([]schema.TokenHolding{
		{MintAddress: owner, HolderAddress: buyer, Balance: 100_000_000_000},
		{MintAddress: owner, HolderAddress: escrow, Balance: 900_000_000_000},
	}, uint64(3), nil)

	resp, err := te.exec.ListHoldings(ctx, owner.String(), &limit, &offset)
	require.NoError(t, err)
	require.Len(t, resp.Holdings, 2)
	assert.Equal(t, "100000", resp.Holdings[0].Balance.Display)
	require.NotNil(t, resp.Offset)
	assert.Equal(t, uint64(2), *resp.Offset)
}

func TestGetJournal(t *testing.T) {
	ctx := context.Background()
	limit := 2

	t.Run("next anchor when more entries remain", func(t *testing.T) {
		te := setupTestExecutor(t)
		te.store.EXPECT().
			GetJournal(ctx, store.JournalQueryFilter{
				Subjects:     []domain.Address{design},
				Instructions: []domain.Instruction{domain.InstructionBuy},
				Limit:        2,
			}).
			Return([]*schema.LedgerJournal{
				{Cursor: 3, EventID: "a", Instruction: domain.InstructionBuy, SubjectAddress: design},
				{Cursor: 7, EventID: "b", Instruction: domain.InstructionBuy, SubjectAddress: design},
			}, uint64(5), nil)

		resp, err := te.exec.GetJournal(ctx, []string{design.String()}, []string{"buy"}, nil, &limit)
		require.NoError(t, err)
		require.NotNil(t, resp.NextAnchor)
		assert.Equal(t, uint64(7), *resp.NextAnchor)
	})

	t.Run("last page", func(t *testing.T) {
		te := setupTestExecutor(t)
		te.store.EXPECT().GetJournal(ctx, gomock.Any()).Return([]*schema.LedgerJournal{{Cursor: 9}}, uint64(1), nil)

		resp, err := te.exec.GetJournal(ctx, nil, nil, nil, &limit)
		require.NoError(t, err)
		assert.Nil(t, resp.NextAnchor)
	})

	t.Run("unknown instruction", func(t *testing.T) {
		te := setupTestExecutor(t)

		_, err := te.exec.GetJournal(ctx, nil, []string{"mint_more"}, nil, &limit)
		assert.Equal(t, apierrors.ErrCodeValidationFailed, apiCode(t, err))
	})
}

func TestDistributeToHolder_PassesClaims(t *testing.T) {
	te := setupTestExecutor(t)
	ctx := context.Background()

	te.ledger.EXPECT().
		DistributeToHolder(ctx, store.DistributeInput{
			Design:              design,
			Holder:              buyer,
			ClaimedTotalRevenue: 1_900_000_000,
		}).
		Return(&store.DistributionResult{
			Design:  design,
			Holder:  buyer,
			Payout:  190_000_000,
			Revenue: 1_900_000_000,
			Escrow:  &schema.EscrowAccount{Address: escrow, DesignAddress: design, Balance: 1_710_000_000},
		}, nil)

	resp, err := te.exec.DistributeToHolder(ctx, nil, design.String(), &dto.DistributeRequest{
		Holder:              buyer.String(),
		ClaimedTotalRevenue: 1_900_000_000,
	})
	require.NoError(t, err)
	assert.Equal(t, "0.19", resp.Payout.Display)
	assert.Equal(t, "1.71", resp.Escrow.Balance.Display)
}
