package store

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RackSavant/sistachat-sub000/internal/domain"
	"github.com/RackSavant/sistachat-sub000/internal/store/schema"
)

// StoreTestSuite provides the interface for running store tests against different implementations
type StoreTestSuite struct {
	Store Store
	// InitDB should be called before each test to initialize the database
	InitDB func(t *testing.T) Store
	// CleanupDB should be called after each test to clean up the database
	CleanupDB func(t *testing.T)
}

// Deterministic wallets used across the suite
const (
	authority domain.Address = "Af2Y56WUFQuTTTYHMCjMozYsDxvTvSM6YQnyv8E6EK3v"
	treasury  domain.Address = "7vzEoA6qPLqGXe5rxmMK7iha63znnLfwGppBrUfELajg"
	designerA domain.Address = "6HCmRbdv88G4zYEXSnCwXX8M6hDv5dvEpvajeh1LvLLD"
	designerB domain.Address = "7zv5e4docsDiNmb5ia4nXQ4nFzEVFR2sr6SNRwNohZbf"
	buyerA    domain.Address = "BPFPbKymeQs376ZYGMb8CGwhxfMKaPT8fDJtEhsNRpVg"
	buyerB    domain.Address = "UhVSvCWkoBe3Gftuw16diggQb8DAsTkRnqJsKSxeVfo"
	holderC   domain.Address = "6pCnqX9td98SY79Vib9NspPYMpQ2ZKE8sT1UH1EGVeGy"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func testContentHash(b byte) domain.ContentHash {
	var h domain.ContentHash
	h[0] = b
	h[31] = b
	return h
}

// setupPlatform initializes the platform with the given fee
func setupPlatform(t *testing.T, store Store, feeBps uint16) *schema.PlatformLedger {
	t.Helper()
	platform, err := store.InitializePlatform(context.Background(), InitializePlatformInput{
		Authority: authority,
		Treasury:  treasury,
		FeeBps:    feeBps,
	})
	require.NoError(t, err)
	return platform
}

// setupDesigner registers owner and returns the registration result
func setupDesigner(t *testing.T, store Store, owner domain.Address) *RegisterDesignerResult {
	t.Helper()
	result, err := store.RegisterDesigner(context.Background(), RegisterDesignerInput{
		Owner:       owner,
		DisplayName: "Designer " + owner.String()[:4],
		BioURI:      "https://example.com/" + owner.String(),
	})
	require.NoError(t, err)
	return result
}

// setupDesign uploads a design for owner
func setupDesign(t *testing.T, store Store, owner domain.Address, price domain.Amount, inventory uint64) *schema.DesignCatalogEntry {
	t.Helper()
	result, err := store.UploadDesign(context.Background(), UploadDesignInput{
		Owner:        owner,
		ContentHash:  testContentHash(0xaa),
		PricePerUnit: price,
		Inventory:    inventory,
	})
	require.NoError(t, err)
	return result.Design
}

// fund credits a settlement account through the platform authority
func fund(t *testing.T, store Store, account domain.Address, amount domain.Amount) {
	t.Helper()
	_, err := store.FundAccount(context.Background(), FundAccountInput{
		Authority: authority,
		Account:   account,
		Amount:    amount,
	})
	require.NoError(t, err)
}

func balanceOf(t *testing.T, store Store, address domain.Address) domain.Amount {
	t.Helper()
	account, err := store.GetAccount(context.Background(), address)
	require.NoError(t, err)
	if account == nil {
		return 0
	}
	return account.Balance
}

func holdingOf(t *testing.T, store Store, mint, holder domain.Address) domain.Amount {
	t.Helper()
	holding, err := store.GetHolding(context.Background(), mint, holder)
	require.NoError(t, err)
	if holding == nil {
		return 0
	}
	return holding.Balance
}

func sumHoldings(t *testing.T, store Store, mint domain.Address) domain.Amount {
	t.Helper()
	holdings, _, err := store.ListHoldings(context.Background(), mint, 0, 0)
	require.NoError(t, err)
	var total domain.Amount
	for _, h := range holdings {
		total += h.Balance
	}
	return total
}

func assertEscrowConsistent(t *testing.T, escrow *schema.EscrowAccount) {
	t.Helper()
	require.NotNil(t, escrow)
	assert.Equal(t, escrow.TotalDeposited-escrow.TotalDistributed, escrow.Balance)
}

// =============================================================================
// Test: Platform
// =============================================================================

func testInitializePlatform(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("rejects fee above 100%", func(t *testing.T) {
		_, err := store.InitializePlatform(ctx, InitializePlatformInput{
			Authority: authority,
			Treasury:  treasury,
			FeeBps:    10_001,
		})
		assert.ErrorIs(t, err, domain.ErrPreconditionViolation)

		platform, err := store.GetPlatform(ctx)
		require.NoError(t, err)
		assert.Nil(t, platform)
	})

	t.Run("creates the singleton with zeroed counters", func(t *testing.T) {
		platform := setupPlatform(t, store, 500)

		expected, err := testDeriver.Platform()
		require.NoError(t, err)
		assert.Equal(t, expected, platform.Address)

		stored, err := store.GetPlatform(ctx)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, authority, stored.Authority)
		assert.Equal(t, treasury, stored.Treasury)
		assert.Equal(t, uint16(500), stored.FeeBps)
		assert.Zero(t, stored.TotalDesigners)
		assert.Zero(t, stored.TotalDesigns)
	})

	t.Run("second initialization fails", func(t *testing.T) {
		_, err := store.InitializePlatform(ctx, InitializePlatformInput{
			Authority: buyerA,
			Treasury:  buyerA,
			FeeBps:    0,
		})
		assert.ErrorIs(t, err, domain.ErrPlatformAlreadyInitialized)

		stored, err := store.GetPlatform(ctx)
		require.NoError(t, err)
		assert.Equal(t, authority, stored.Authority)
	})
}

func testUpdatePlatform(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("requires an initialized platform", func(t *testing.T) {
		fee := uint16(100)
		_, err := store.UpdatePlatform(ctx, UpdatePlatformInput{Authority: authority, FeeBps: &fee})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	setupPlatform(t, store, 500)

	t.Run("only the authority can update", func(t *testing.T) {
		fee := uint16(100)
		_, err := store.UpdatePlatform(ctx, UpdatePlatformInput{Authority: buyerA, FeeBps: &fee})
		assert.ErrorIs(t, err, domain.ErrAuthorizationFailure)
	})

	t.Run("rejects an empty update", func(t *testing.T) {
		_, err := store.UpdatePlatform(ctx, UpdatePlatformInput{Authority: authority})
		assert.ErrorIs(t, err, domain.ErrEmptyUpdate)
	})

	t.Run("rejects fee above 100%", func(t *testing.T) {
		fee := uint16(20_000)
		_, err := store.UpdatePlatform(ctx, UpdatePlatformInput{Authority: authority, FeeBps: &fee})
		assert.ErrorIs(t, err, domain.ErrFeeBpsOutOfRange)
	})

	t.Run("updates fee and treasury", func(t *testing.T) {
		fee := uint16(250)
		newTreasury := holderC
		platform, err := store.UpdatePlatform(ctx, UpdatePlatformInput{
			Authority: authority,
			FeeBps:    &fee,
			Treasury:  &newTreasury,
		})
		require.NoError(t, err)
		assert.Equal(t, uint16(250), platform.FeeBps)
		assert.Equal(t, holderC, platform.Treasury)
		assert.Equal(t, authority, platform.Authority)
	})
}

// =============================================================================
// Test: Accounts and fees
// =============================================================================

func testFundAccount(t *testing.T, store Store) {
	ctx := context.Background()
	setupPlatform(t, store, 0)

	t.Run("only the authority can fund", func(t *testing.T) {
		_, err := store.FundAccount(ctx, FundAccountInput{Authority: buyerA, Account: buyerA, Amount: 10})
		assert.ErrorIs(t, err, domain.ErrAuthorizationFailure)
		assert.Zero(t, balanceOf(t, store, buyerA))
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		_, err := store.FundAccount(ctx, FundAccountInput{Authority: authority, Account: buyerA, Amount: 0})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("credits the account", func(t *testing.T) {
		account, err := store.FundAccount(ctx, FundAccountInput{Authority: authority, Account: buyerA, Amount: 700})
		require.NoError(t, err)
		assert.Equal(t, domain.Amount(700), account.Balance)

		fund(t, store, buyerA, 300)
		assert.Equal(t, domain.Amount(1_000), balanceOf(t, store, buyerA))
	})

	t.Run("overflow leaves the balance unchanged", func(t *testing.T) {
		_, err := store.FundAccount(ctx, FundAccountInput{Authority: authority, Account: buyerA, Amount: domain.Amount(^uint64(0))})
		assert.ErrorIs(t, err, domain.ErrArithmeticOverflow)
		assert.Equal(t, domain.Amount(1_000), balanceOf(t, store, buyerA))
	})
}

func testWithdrawFee(t *testing.T, store Store) {
	ctx := context.Background()
	setupPlatform(t, store, 500)
	setupDesigner(t, store, designerA)
	design := setupDesign(t, store, designerA, 1_000_000_000, 10)
	fund(t, store, buyerA, 5_000_000_000)

	_, err := store.Buy(ctx, BuyInput{Buyer: buyerA, Design: design.Address, Quantity: 2})
	require.NoError(t, err)
	require.Equal(t, domain.Amount(100_000_000), balanceOf(t, store, treasury))

	t.Run("only the authority can withdraw", func(t *testing.T) {
		_, err := store.WithdrawFee(ctx, WithdrawFeeInput{Authority: designerA, Destination: designerA, Amount: 1})
		assert.ErrorIs(t, err, domain.ErrAuthorizationFailure)
	})

	t.Run("cannot withdraw more than the treasury holds", func(t *testing.T) {
		_, err := store.WithdrawFee(ctx, WithdrawFeeInput{Authority: authority, Destination: holderC, Amount: 100_000_001})
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Equal(t, domain.Amount(100_000_000), balanceOf(t, store, treasury))
		assert.Zero(t, balanceOf(t, store, holderC))
	})

	t.Run("moves fees without touching escrow", func(t *testing.T) {
		escrowBefore, err := store.GetEscrowByDesign(ctx, design.Address)
		require.NoError(t, err)

		remaining, err := store.WithdrawFee(ctx, WithdrawFeeInput{Authority: authority, Destination: holderC, Amount: 60_000_000})
		require.NoError(t, err)
		assert.Equal(t, domain.Amount(40_000_000), remaining.Balance)
		assert.Equal(t, domain.Amount(60_000_000), balanceOf(t, store, holderC))

		escrowAfter, err := store.GetEscrowByDesign(ctx, design.Address)
		require.NoError(t, err)
		assert.Equal(t, escrowBefore.Balance, escrowAfter.Balance)
		assert.Equal(t, escrowBefore.TotalDeposited, escrowAfter.TotalDeposited)
	})
}

// =============================================================================
// Test: Designers
// =============================================================================

func testRegisterDesigner(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("requires an initialized platform", func(t *testing.T) {
		_, err := store.RegisterDesigner(ctx, RegisterDesignerInput{Owner: designerA, DisplayName: "A"})
		assert.ErrorIs(t, err, domain.ErrPlatformNotInitialized)
	})

	setupPlatform(t, store, 500)

	t.Run("validates the profile", func(t *testing.T) {
		_, err := store.RegisterDesigner(ctx, RegisterDesignerInput{Owner: designerA, DisplayName: ""})
		assert.ErrorIs(t, err, domain.ErrPreconditionViolation)

		_, err = store.RegisterDesigner(ctx, RegisterDesignerInput{
			Owner:       designerA,
			DisplayName: "A",
			BioURI:      strings.Repeat("x", domain.MaxBioURILength+1),
		})
		assert.ErrorIs(t, err, domain.ErrPreconditionViolation)
	})

	t.Run("mints the fixed supply split 90/10", func(t *testing.T) {
		result := setupDesigner(t, store, designerA)

		profile, err := testDeriver.DesignerProfile(designerA)
		require.NoError(t, err)
		mintAddress, err := testDeriver.DesignerMint(designerA)
		require.NoError(t, err)
		pool, err := testDeriver.PlatformPool(mintAddress)
		require.NoError(t, err)

		assert.Equal(t, profile, result.Designer.Address)
		assert.Equal(t, mintAddress, result.Mint.Address)
		assert.Equal(t, domain.TokenTotalSupply, result.Mint.Supply)
		assert.Equal(t, domain.TokenDecimals, result.Mint.Decimals)

		assert.Equal(t, domain.Amount(900_000_000_000), holdingOf(t, store, mintAddress, designerA))
		assert.Equal(t, domain.Amount(100_000_000_000), holdingOf(t, store, mintAddress, pool))
		assert.Equal(t, domain.TokenTotalSupply, sumHoldings(t, store, mintAddress))

		platform, err := store.GetPlatform(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), platform.TotalDesigners)
	})

	t.Run("an owner registers once", func(t *testing.T) {
		_, err := store.RegisterDesigner(ctx, RegisterDesignerInput{Owner: designerA, DisplayName: "Again"})
		assert.ErrorIs(t, err, domain.ErrDesignerAlreadyRegistered)

		platform, err := store.GetPlatform(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), platform.TotalDesigners)
	})

	t.Run("designers are looked up by owner and address", func(t *testing.T) {
		byOwner, err := store.GetDesignerByOwner(ctx, designerA)
		require.NoError(t, err)
		require.NotNil(t, byOwner)

		byAddress, err := store.GetDesignerByAddress(ctx, byOwner.Address)
		require.NoError(t, err)
		require.NotNil(t, byAddress)
		assert.Equal(t, byOwner.Owner, byAddress.Owner)

		missing, err := store.GetDesignerByOwner(ctx, designerB)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

// =============================================================================
// Test: Designs
// =============================================================================

func testUploadDesign(t *testing.T, store Store) {
	ctx := context.Background()
	setupPlatform(t, store, 500)

	t.Run("unregistered owners cannot upload", func(t *testing.T) {
		_, err := store.UploadDesign(ctx, UploadDesignInput{
			Owner:        designerB,
			ContentHash:  testContentHash(1),
			PricePerUnit: 10,
			Inventory:    1,
		})
		assert.ErrorIs(t, err, domain.ErrAuthorizationFailure)
	})

	setupDesigner(t, store, designerA)

	t.Run("inventory must fit the unit counter", func(t *testing.T) {
		_, err := store.UploadDesign(ctx, UploadDesignInput{
			Owner:        designerA,
			ContentHash:  testContentHash(2),
			PricePerUnit: 10,
			Inventory:    domain.MaxUnitCount + 1,
		})
		assert.ErrorIs(t, err, domain.ErrPreconditionViolation)
		assert.ErrorIs(t, err, domain.ErrInventoryTooLarge)

		designer, err := store.GetDesignerByOwner(ctx, designerA)
		require.NoError(t, err)
		assert.Zero(t, designer.TotalDesigns)
	})

	t.Run("sequence index follows the designer counter", func(t *testing.T) {
		first := setupDesign(t, store, designerA, 1_000, 5)
		second := setupDesign(t, store, designerA, 2_000, 7)

		assert.Equal(t, uint64(0), first.SequenceIndex)
		assert.Equal(t, uint64(1), second.SequenceIndex)

		expected, err := testDeriver.Design(designerA, 1)
		require.NoError(t, err)
		assert.Equal(t, expected, second.Address)

		assert.Equal(t, uint64(7), second.Inventory)
		assert.Equal(t, uint64(7), second.InitialInventory)
		assert.Zero(t, second.TotalSales)
		assert.Equal(t, domain.DesignStateListed, second.State())

		stored, err := store.GetDesign(ctx, second.Address)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, testContentHash(0xaa), stored.ContentHash)
		assert.Equal(t, domain.Amount(2_000), stored.PricePerUnit)

		escrow, err := store.GetEscrowByDesign(ctx, second.Address)
		require.NoError(t, err)
		require.NotNil(t, escrow)
		assert.Zero(t, escrow.Balance)
		expectedEscrow, err := testDeriver.Escrow(second.Address)
		require.NoError(t, err)
		assert.Equal(t, expectedEscrow, escrow.Address)

		designer, err := store.GetDesignerByOwner(ctx, designerA)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), designer.TotalDesigns)

		platform, err := store.GetPlatform(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), platform.TotalDesigns)

		designs, total, err := store.ListDesignsByOwner(ctx, designerA, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, designs, 2)
		assert.Equal(t, first.Address, designs[0].Address)
	})
}

func testUpdatePrice(t *testing.T, store Store) {
	ctx := context.Background()
	setupPlatform(t, store, 500)
	setupDesigner(t, store, designerA)
	setupDesigner(t, store, designerB)
	design := setupDesign(t, store, designerA, 1_000, 5)

	t.Run("other designers cannot reprice", func(t *testing.T) {
		_, err := store.UpdatePrice(ctx, UpdatePriceInput{Owner: designerB, Design: design.Address, NewPrice: 1})
		assert.ErrorIs(t, err, domain.ErrNotDesignOwner)

		stored, err := store.GetDesign(ctx, design.Address)
		require.NoError(t, err)
		assert.Equal(t, domain.Amount(1_000), stored.PricePerUnit)
	})

	t.Run("unknown design", func(t *testing.T) {
		_, err := store.UpdatePrice(ctx, UpdatePriceInput{Owner: designerA, Design: holderC, NewPrice: 1})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("owner replaces only the price", func(t *testing.T) {
		updated, err := store.UpdatePrice(ctx, UpdatePriceInput{Owner: designerA, Design: design.Address, NewPrice: 4_242})
		require.NoError(t, err)
		assert.Equal(t, domain.Amount(4_242), updated.PricePerUnit)
		assert.Equal(t, design.Inventory, updated.Inventory)
		assert.Equal(t, design.OwnerDesigner, updated.OwnerDesigner)
		assert.Equal(t, design.ContentHash, updated.ContentHash)
	})
}

// =============================================================================
// Test: Buy
// =============================================================================

func testBuy(t *testing.T, store Store) {
	ctx := context.Background()
	setupPlatform(t, store, 500)
	setupDesigner(t, store, designerA)
	design := setupDesign(t, store, designerA, 1_000_000_000, 10)
	fund(t, store, buyerA, 5_000_000_000)

	t.Run("quantity must be positive", func(t *testing.T) {
		_, err := store.Buy(ctx, BuyInput{Buyer: buyerA, Design: design.Address, Quantity: 0})
		assert.ErrorIs(t, err, domain.ErrPreconditionViolation)
	})

	t.Run("unknown design", func(t *testing.T) {
		_, err := store.Buy(ctx, BuyInput{Buyer: buyerA, Design: holderC, Quantity: 1})
		assert.ErrorIs(t, err, domain.ErrDesignNotFound)
	})

	t.Run("settles fee and net", func(t *testing.T) {
		result, err := store.Buy(ctx, BuyInput{Buyer: buyerA, Design: design.Address, Quantity: 2})
		require.NoError(t, err)

		assert.Equal(t, domain.Settlement{Total: 2_000_000_000, Fee: 100_000_000, Net: 1_900_000_000}, result.Settlement)
		assert.Equal(t, domain.Amount(3_000_000_000), result.BuyerBalance)
		assert.Equal(t, domain.Amount(3_000_000_000), balanceOf(t, store, buyerA))
		assert.Equal(t, domain.Amount(100_000_000), balanceOf(t, store, treasury))

		escrow, err := store.GetEscrowByDesign(ctx, design.Address)
		require.NoError(t, err)
		assert.Equal(t, domain.Amount(1_900_000_000), escrow.Balance)
		assert.Equal(t, domain.Amount(1_900_000_000), escrow.TotalDeposited)
		assertEscrowConsistent(t, escrow)

		stored, err := store.GetDesign(ctx, design.Address)
		require.NoError(t, err)
		assert.Equal(t, uint64(8), stored.Inventory)
		assert.Equal(t, uint64(2), stored.TotalSales)
		assert.Equal(t, stored.InitialInventory, stored.Inventory+stored.TotalSales)
		assert.Equal(t, domain.DesignStatePartiallySold, stored.State())

		designer, err := store.GetDesignerByOwner(ctx, designerA)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), designer.TotalSales)
	})

	t.Run("insufficient inventory changes nothing", func(t *testing.T) {
		_, err := store.Buy(ctx, BuyInput{Buyer: buyerA, Design: design.Address, Quantity: 9})
		assert.ErrorIs(t, err, domain.ErrInsufficientInventory)

		stored, err := store.GetDesign(ctx, design.Address)
		require.NoError(t, err)
		assert.Equal(t, uint64(8), stored.Inventory)
		assert.Equal(t, domain.Amount(3_000_000_000), balanceOf(t, store, buyerA))
	})

	t.Run("insufficient funds changes nothing", func(t *testing.T) {
		_, err := store.Buy(ctx, BuyInput{Buyer: buyerB, Design: design.Address, Quantity: 1})
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		stored, err := store.GetDesign(ctx, design.Address)
		require.NoError(t, err)
		assert.Equal(t, uint64(8), stored.Inventory)

		escrow, err := store.GetEscrowByDesign(ctx, design.Address)
		require.NoError(t, err)
		assert.Equal(t, domain.Amount(1_900_000_000), escrow.Balance)
		assert.Equal(t, domain.Amount(100_000_000), balanceOf(t, store, treasury))
	})

	t.Run("buy uses the current price", func(t *testing.T) {
		_, err := store.UpdatePrice(ctx, UpdatePriceInput{Owner: designerA, Design: design.Address, NewPrice: 100_000_000})
		require.NoError(t, err)

		result, err := store.Buy(ctx, BuyInput{Buyer: buyerA, Design: design.Address, Quantity: 8})
		require.NoError(t, err)
		assert.Equal(t, domain.Amount(800_000_000), result.Settlement.Total)
		assert.Equal(t, domain.Amount(40_000_000), result.Settlement.Fee)
		assert.Equal(t, domain.DesignStateSoldOut, result.Design.State())

		_, err = store.Buy(ctx, BuyInput{Buyer: buyerA, Design: design.Address, Quantity: 1})
		assert.ErrorIs(t, err, domain.ErrInsufficientInventory)
	})

	t.Run("overflowing total changes nothing", func(t *testing.T) {
		big := setupDesign(t, store, designerA, domain.Amount(^uint64(0)), 2)
		_, err := store.Buy(ctx, BuyInput{Buyer: buyerA, Design: big.Address, Quantity: 2})
		assert.ErrorIs(t, err, domain.ErrArithmeticOverflow)

		stored, err := store.GetDesign(ctx, big.Address)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), stored.Inventory)
	})

	t.Run("every purchase is journaled", func(t *testing.T) {
		entries, total, err := store.GetJournal(ctx, JournalQueryFilter{
			Subjects:     []domain.Address{design.Address},
			Instructions: []domain.Instruction{domain.InstructionBuy},
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, entries, 2)

		var purchase domain.PurchaseEvent
		require.NoError(t, json.Unmarshal(entries[0].Meta, &purchase))
		assert.Equal(t, buyerA, purchase.Buyer)
		assert.Equal(t, uint64(2), purchase.Quantity)
		assert.Equal(t, purchase.FeeAmount+purchase.NetAmount, domain.Amount(purchase.Quantity)*purchase.UnitPrice)
		require.NotNil(t, entries[0].Actor)
		assert.Equal(t, buyerA, *entries[0].Actor)
	})

	t.Run("designer sales past the unit counter change nothing", func(t *testing.T) {
		bulk := setupDesign(t, store, designerA, 1, domain.MaxUnitCount)
		next := setupDesign(t, store, designerA, 1, 5)
		fund(t, store, buyerB, domain.Amount(domain.MaxUnitCount))

		// ten units were sold above
		_, err := store.Buy(ctx, BuyInput{Buyer: buyerB, Design: bulk.Address, Quantity: domain.MaxUnitCount - 10})
		require.NoError(t, err)

		_, err = store.Buy(ctx, BuyInput{Buyer: buyerB, Design: next.Address, Quantity: 1})
		assert.ErrorIs(t, err, domain.ErrArithmeticOverflow)

		stored, err := store.GetDesign(ctx, next.Address)
		require.NoError(t, err)
		assert.Equal(t, uint64(5), stored.Inventory)
		assert.Zero(t, stored.TotalSales)
		assert.Equal(t, domain.Amount(10), balanceOf(t, store, buyerB))

		designer, err := store.GetDesignerByOwner(ctx, designerA)
		require.NoError(t, err)
		assert.Equal(t, domain.MaxUnitCount, designer.TotalSales)
	})
}

// =============================================================================
// Test: Distribution
// =============================================================================

func testDistributeToHolder(t *testing.T, store Store) {
	ctx := context.Background()
	setupPlatform(t, store, 500)
	registration := setupDesigner(t, store, designerA)
	design := setupDesign(t, store, designerA, 1_000_000_000, 10)
	fund(t, store, buyerA, 5_000_000_000)

	pool := registration.PoolHolding.HolderAddress

	t.Run("nothing to distribute before sales", func(t *testing.T) {
		result, err := store.DistributeToHolder(ctx, DistributeInput{Design: design.Address, Holder: pool})
		require.NoError(t, err)
		assert.Zero(t, result.Payout)

		claim, err := store.GetClaim(ctx, design.Address, pool)
		require.NoError(t, err)
		assert.Nil(t, claim)
	})

	_, err := store.Buy(ctx, BuyInput{Buyer: buyerA, Design: design.Address, Quantity: 2})
	require.NoError(t, err)

	t.Run("rejects a stale holder balance", func(t *testing.T) {
		_, err := store.DistributeToHolder(ctx, DistributeInput{
			Design:        design.Address,
			Holder:        pool,
			HolderBalance: 500_000_000_000,
		})
		assert.ErrorIs(t, err, domain.ErrStaleHolding)
	})

	t.Run("rejects a stale supply", func(t *testing.T) {
		_, err := store.DistributeToHolder(ctx, DistributeInput{
			Design:      design.Address,
			Holder:      pool,
			TotalSupply: 1,
		})
		assert.ErrorIs(t, err, domain.ErrStaleHolding)
	})

	t.Run("rejects revenue above deposits", func(t *testing.T) {
		_, err := store.DistributeToHolder(ctx, DistributeInput{
			Design:              design.Address,
			Holder:              pool,
			ClaimedTotalRevenue: 1_900_000_001,
		})
		assert.ErrorIs(t, err, domain.ErrRevenueClaimTooHigh)
	})

	t.Run("pays the pool its ten percent", func(t *testing.T) {
		result, err := store.DistributeToHolder(ctx, DistributeInput{
			Design:              design.Address,
			Holder:              pool,
			ClaimedTotalRevenue: 1_900_000_000,
			HolderBalance:       100_000_000_000,
			TotalSupply:         domain.TokenTotalSupply,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.Amount(190_000_000), result.Entitlement)
		assert.Equal(t, domain.Amount(190_000_000), result.Payout)
		assert.Equal(t, domain.Amount(1_710_000_000), result.Escrow.Balance)
		assertEscrowConsistent(t, result.Escrow)
		assert.Equal(t, domain.Amount(190_000_000), balanceOf(t, store, pool))
	})

	t.Run("repeating a claim pays nothing", func(t *testing.T) {
		result, err := store.DistributeToHolder(ctx, DistributeInput{Design: design.Address, Holder: pool})
		require.NoError(t, err)
		assert.Zero(t, result.Payout)
		assert.Equal(t, domain.Amount(190_000_000), result.AlreadyPaid)
		assert.Equal(t, domain.Amount(190_000_000), balanceOf(t, store, pool))
	})

	t.Run("holders without units receive nothing", func(t *testing.T) {
		result, err := store.DistributeToHolder(ctx, DistributeInput{Design: design.Address, Holder: holderC})
		require.NoError(t, err)
		assert.Zero(t, result.Payout)
		assert.Zero(t, result.HolderBalance)
	})

	t.Run("total payouts never exceed deposits", func(t *testing.T) {
		result, err := store.DistributeToHolder(ctx, DistributeInput{Design: design.Address, Holder: designerA})
		require.NoError(t, err)
		assert.Equal(t, domain.Amount(1_710_000_000), result.Payout)

		escrow, err := store.GetEscrowByDesign(ctx, design.Address)
		require.NoError(t, err)
		assert.Zero(t, escrow.Balance)
		assert.Equal(t, escrow.TotalDeposited, escrow.TotalDistributed)
		assertEscrowConsistent(t, escrow)
	})

	t.Run("new revenue pays only the difference", func(t *testing.T) {
		_, err := store.Buy(ctx, BuyInput{Buyer: buyerA, Design: design.Address, Quantity: 1})
		require.NoError(t, err)

		result, err := store.DistributeToHolder(ctx, DistributeInput{Design: design.Address, Holder: pool})
		require.NoError(t, err)
		assert.Equal(t, domain.Amount(285_000_000), result.Entitlement)
		assert.Equal(t, domain.Amount(95_000_000), result.Payout)
	})

	t.Run("unknown design", func(t *testing.T) {
		_, err := store.DistributeToHolder(ctx, DistributeInput{Design: holderC, Holder: pool})
		assert.ErrorIs(t, err, domain.ErrDesignNotFound)
	})
}

// =============================================================================
// Test: Share transfers
// =============================================================================

func testTransferShares(t *testing.T, store Store) {
	ctx := context.Background()
	setupPlatform(t, store, 500)
	registration := setupDesigner(t, store, designerA)
	mint := registration.Mint.Address
	design := setupDesign(t, store, designerA, 1_000_000_000, 10)
	fund(t, store, buyerA, 5_000_000_000)

	_, err := store.Buy(ctx, BuyInput{Buyer: buyerA, Design: design.Address, Quantity: 2})
	require.NoError(t, err)
	_, err = store.DistributeToHolder(ctx, DistributeInput{Design: design.Address, Holder: designerA})
	require.NoError(t, err)

	t.Run("rejects self transfer", func(t *testing.T) {
		_, err := store.TransferShares(ctx, TransferSharesInput{Mint: mint, From: designerA, To: designerA, Amount: 1})
		assert.ErrorIs(t, err, domain.ErrSelfTransfer)
	})

	t.Run("rejects transfers above the balance", func(t *testing.T) {
		_, err := store.TransferShares(ctx, TransferSharesInput{Mint: mint, From: holderC, To: designerA, Amount: 1})
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})

	t.Run("rejects unknown mint", func(t *testing.T) {
		_, err := store.TransferShares(ctx, TransferSharesInput{Mint: holderC, From: designerA, To: holderC, Amount: 1})
		assert.ErrorIs(t, err, domain.ErrMintNotFound)
	})

	t.Run("moves units and claim debt", func(t *testing.T) {
		result, err := store.TransferShares(ctx, TransferSharesInput{
			Mint:   mint,
			From:   designerA,
			To:     holderC,
			Amount: 100_000_000_000,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.Amount(800_000_000_000), result.From.Balance)
		assert.Equal(t, domain.Amount(100_000_000_000), result.To.Balance)
		assert.Equal(t, domain.Amount(190_000_000), result.DebtMoved)
		assert.Equal(t, domain.TokenTotalSupply, sumHoldings(t, store, mint))

		claim, err := store.GetClaim(ctx, design.Address, holderC)
		require.NoError(t, err)
		require.NotNil(t, claim)
		assert.Equal(t, domain.Amount(190_000_000), claim.Paid)
	})

	t.Run("receiver cannot re-claim revenue already paid on the units", func(t *testing.T) {
		result, err := store.DistributeToHolder(ctx, DistributeInput{Design: design.Address, Holder: holderC})
		require.NoError(t, err)
		assert.Zero(t, result.Payout)

		result, err = store.DistributeToHolder(ctx, DistributeInput{Design: design.Address, Holder: designerA})
		require.NoError(t, err)
		assert.Zero(t, result.Payout)
	})

	t.Run("claims still sum to total distributed", func(t *testing.T) {
		escrow, err := store.GetEscrowByDesign(ctx, design.Address)
		require.NoError(t, err)

		var paid domain.Amount
		for _, holder := range []domain.Address{designerA, holderC, registration.PoolHolding.HolderAddress} {
			claim, err := store.GetClaim(ctx, design.Address, holder)
			require.NoError(t, err)
			if claim != nil {
				paid += claim.Paid
			}
		}
		assert.Equal(t, escrow.TotalDistributed, paid)
	})
}

// =============================================================================
// Test: Reads
// =============================================================================

func testListEscrowsWithBalance(t *testing.T, store Store) {
	ctx := context.Background()
	setupPlatform(t, store, 0)
	setupDesigner(t, store, designerA)
	sold := setupDesign(t, store, designerA, 100, 5)
	setupDesign(t, store, designerA, 100, 5)
	fund(t, store, buyerA, 1_000)

	_, err := store.Buy(ctx, BuyInput{Buyer: buyerA, Design: sold.Address, Quantity: 1})
	require.NoError(t, err)

	escrows, err := store.ListEscrowsWithBalance(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, escrows, 1)
	assert.Equal(t, sold.Address, escrows[0].DesignAddress)

	escrows, err = store.ListEscrowsWithBalance(ctx, escrows[0].Address, 10)
	require.NoError(t, err)
	assert.Empty(t, escrows)

	t.Run("swept escrows holding only dust are skipped until new revenue", func(t *testing.T) {
		escrow, err := store.GetEscrowByDesign(ctx, sold.Address)
		require.NoError(t, err)
		require.NoError(t, store.MarkEscrowSwept(ctx, escrow.Address, escrow.TotalDeposited))

		escrows, err := store.ListEscrowsWithBalance(ctx, "", 10)
		require.NoError(t, err)
		assert.Empty(t, escrows)

		// the marker never moves back
		require.NoError(t, store.MarkEscrowSwept(ctx, escrow.Address, 0))
		marked, err := store.GetEscrowByDesign(ctx, sold.Address)
		require.NoError(t, err)
		assert.Equal(t, escrow.TotalDeposited, marked.SweptDeposited)
		assert.Equal(t, escrow.Balance, marked.Balance)

		_, err = store.Buy(ctx, BuyInput{Buyer: buyerA, Design: sold.Address, Quantity: 1})
		require.NoError(t, err)

		escrows, err = store.ListEscrowsWithBalance(ctx, "", 10)
		require.NoError(t, err)
		require.Len(t, escrows, 1)
		assert.Equal(t, sold.Address, escrows[0].DesignAddress)
	})
}

func testGetJournal(t *testing.T, store Store) {
	ctx := context.Background()
	platform := setupPlatform(t, store, 100)
	setupDesigner(t, store, designerA)
	setupDesigner(t, store, designerB)

	all, total, err := store.GetJournal(ctx, JournalQueryFilter{})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total)
	require.Len(t, all, 3)
	assert.Equal(t, domain.InstructionInitializePlatform, all[0].Instruction)
	assert.Equal(t, platform.Address, all[0].SubjectAddress)
	assert.Less(t, all[0].Cursor, all[1].Cursor)
	assert.NotEqual(t, all[0].EventID, all[1].EventID)

	anchor := uint64(all[0].Cursor) //nolint:gosec,G115
	page, total, err := store.GetJournal(ctx, JournalQueryFilter{Anchor: &anchor, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	require.Len(t, page, 1)
	assert.Equal(t, all[1].EventID, page[0].EventID)

	event := page[0].ToEvent()
	assert.Equal(t, domain.InstructionRegisterDesigner, event.Instruction)
	assert.Equal(t, uint64(all[1].Cursor), event.Cursor) //nolint:gosec,G115
}

func testKeyValueStore(t *testing.T, store Store) {
	ctx := context.Background()

	value, err := store.GetKeyValue(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, store.SetKeyValue(ctx, "journal_relay_cursor:default", "10"))
	require.NoError(t, store.SetKeyValue(ctx, "journal_relay_cursor:default", "11"))

	value, err = store.GetKeyValue(ctx, "journal_relay_cursor:default")
	require.NoError(t, err)
	assert.Equal(t, "11", value)
}

// RunStoreTests runs all store tests
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"InitializePlatform", testInitializePlatform},
		{"UpdatePlatform", testUpdatePlatform},
		{"FundAccount", testFundAccount},
		{"WithdrawFee", testWithdrawFee},
		{"RegisterDesigner", testRegisterDesigner},
		{"UploadDesign", testUploadDesign},
		{"UpdatePrice", testUpdatePrice},
		{"Buy", testBuy},
		{"DistributeToHolder", testDistributeToHolder},
		{"TransferShares", testTransferShares},
		{"ListEscrowsWithBalance", testListEscrowsWithBalance},
		{"GetJournal", testGetJournal},
		{"KeyValueStore", testKeyValueStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
