package store

import (
	"context"

	"github.com/RackSavant/sistachat-sub000/internal/domain"
	"github.com/RackSavant/sistachat-sub000/internal/store/schema"
)

// InitializePlatformInput represents the input for creating the platform ledger
type InitializePlatformInput struct {
	Authority domain.Address
	Treasury  domain.Address
	FeeBps    uint16
}

// UpdatePlatformInput represents the input for changing the platform fee or treasury.
// Nil fields are left unchanged.
type UpdatePlatformInput struct {
	Authority domain.Address
	FeeBps    *uint16
	Treasury  *domain.Address
}

// FundAccountInput represents the input for crediting a settlement account
type FundAccountInput struct {
	Authority domain.Address
	Account   domain.Address
	Amount    domain.Amount
}

// WithdrawFeeInput represents the input for moving fees out of the treasury
type WithdrawFeeInput struct {
	Authority   domain.Address
	Destination domain.Address
	Amount      domain.Amount
}

// RegisterDesignerInput represents the input for registering a designer and minting their token
type RegisterDesignerInput struct {
	Owner       domain.Address
	DisplayName string
	BioURI      string
}

// TransferSharesInput represents the input for moving designer token units between holders
type TransferSharesInput struct {
	Mint   domain.Address
	From   domain.Address
	To     domain.Address
	Amount domain.Amount
}

// UploadDesignInput represents the input for listing a new design
type UploadDesignInput struct {
	Owner        domain.Address
	ContentHash  domain.ContentHash
	PricePerUnit domain.Amount
	Inventory    uint64
}

// UpdatePriceInput represents the input for repricing a design
type UpdatePriceInput struct {
	Owner    domain.Address
	Design   domain.Address
	NewPrice domain.Amount
}

// BuyInput represents the input for purchasing design units
type BuyInput struct {
	Buyer    domain.Address
	Design   domain.Address
	Quantity uint64
}

// DistributeInput represents the input for paying a holder their share of a design's escrow.
// Zero ClaimedTotalRevenue, HolderBalance or TotalSupply mean "read from the ledger".
type DistributeInput struct {
	Caller              *domain.Address
	Design              domain.Address
	Holder              domain.Address
	ClaimedTotalRevenue domain.Amount
	HolderBalance       domain.Amount
	TotalSupply         domain.Amount
}

// RegisterDesignerResult is returned by RegisterDesigner
type RegisterDesignerResult struct {
	Designer        *schema.DesignerRegistry
	Mint            *schema.TokenMint
	DesignerHolding *schema.TokenHolding
	PoolHolding     *schema.TokenHolding
}

// UploadDesignResult is returned by UploadDesign
type UploadDesignResult struct {
	Design *schema.DesignCatalogEntry
	Escrow *schema.EscrowAccount
}

// BuyResult is returned by Buy
type BuyResult struct {
	Design       *schema.DesignCatalogEntry
	Escrow       *schema.EscrowAccount
	Settlement   domain.Settlement
	BuyerBalance domain.Amount
}

// DistributionResult is returned by DistributeToHolder
type DistributionResult struct {
	Design        domain.Address
	Holder        domain.Address
	Revenue       domain.Amount
	HolderBalance domain.Amount
	TotalSupply   domain.Amount
	Entitlement   domain.Amount
	AlreadyPaid   domain.Amount
	Payout        domain.Amount
	Escrow        *schema.EscrowAccount
}

// TransferSharesResult is returned by TransferShares
type TransferSharesResult struct {
	From      *schema.TokenHolding
	To        *schema.TokenHolding
	DebtMoved domain.Amount
}

// JournalQueryFilter represents filters for paging through the ledger journal
type JournalQueryFilter struct {
	Subjects     []domain.Address
	Instructions []domain.Instruction
	Anchor       *uint64 // return entries with a cursor strictly greater than this
	Limit        int
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// InitializePlatform creates the singleton platform ledger
	InitializePlatform(ctx context.Context, input InitializePlatformInput) (*schema.PlatformLedger, error)
	// UpdatePlatform changes the fee rate or treasury destination
	UpdatePlatform(ctx context.Context, input UpdatePlatformInput) (*schema.PlatformLedger, error)
	// GetPlatform retrieves the platform ledger, nil when not initialized
	GetPlatform(ctx context.Context) (*schema.PlatformLedger, error)

	// FundAccount credits a settlement account on behalf of the platform authority
	FundAccount(ctx context.Context, input FundAccountInput) (*schema.Account, error)
	// WithdrawFee moves fees from the treasury account to a destination account
	WithdrawFee(ctx context.Context, input WithdrawFeeInput) (*schema.Account, error)
	// GetAccount retrieves a settlement account, nil when it was never credited
	GetAccount(ctx context.Context, address domain.Address) (*schema.Account, error)

	// RegisterDesigner creates a designer profile and mints the designer's fixed-supply token
	RegisterDesigner(ctx context.Context, input RegisterDesignerInput) (*RegisterDesignerResult, error)
	// GetDesignerByOwner retrieves a designer profile by wallet
	GetDesignerByOwner(ctx context.Context, owner domain.Address) (*schema.DesignerRegistry, error)
	// GetDesignerByAddress retrieves a designer profile by its derived address
	GetDesignerByAddress(ctx context.Context, address domain.Address) (*schema.DesignerRegistry, error)
	// GetMint retrieves a token mint
	GetMint(ctx context.Context, address domain.Address) (*schema.TokenMint, error)

	// TransferShares moves designer token units between holders along with their claim debt
	TransferShares(ctx context.Context, input TransferSharesInput) (*TransferSharesResult, error)
	// GetHolding retrieves the holding of a holder in a mint, nil when the holder never held units
	GetHolding(ctx context.Context, mint, holder domain.Address) (*schema.TokenHolding, error)
	// ListHoldings retrieves the holders of a mint ordered by holder address
	ListHoldings(ctx context.Context, mint domain.Address, limit int, offset uint64) ([]schema.TokenHolding, uint64, error)

	// UploadDesign lists a new design and opens its escrow
	UploadDesign(ctx context.Context, input UploadDesignInput) (*UploadDesignResult, error)
	// UpdatePrice replaces the price of a design
	UpdatePrice(ctx context.Context, input UpdatePriceInput) (*schema.DesignCatalogEntry, error)
	// GetDesign retrieves a design by address
	GetDesign(ctx context.Context, address domain.Address) (*schema.DesignCatalogEntry, error)
	// ListDesignsByOwner retrieves a designer's designs ordered by sequence index
	ListDesignsByOwner(ctx context.Context, owner domain.Address, limit int, offset uint64) ([]schema.DesignCatalogEntry, uint64, error)

	// Buy settles a purchase of design units
	Buy(ctx context.Context, input BuyInput) (*BuyResult, error)
	// GetEscrowByDesign retrieves the escrow account of a design
	GetEscrowByDesign(ctx context.Context, design domain.Address) (*schema.EscrowAccount, error)
	// ListEscrowsWithBalance retrieves escrows holding revenue deposited since their last sweep, ordered by address
	ListEscrowsWithBalance(ctx context.Context, afterAddress domain.Address, limit int) ([]schema.EscrowAccount, error)
	// MarkEscrowSwept records that every holder was paid against deposits up to deposited
	MarkEscrowSwept(ctx context.Context, escrow domain.Address, deposited domain.Amount) error

	// DistributeToHolder pays a holder the unpaid part of their proportional share of a design's revenue
	DistributeToHolder(ctx context.Context, input DistributeInput) (*DistributionResult, error)
	// GetClaim retrieves what a design's escrow has already paid a holder
	GetClaim(ctx context.Context, design, holder domain.Address) (*schema.DistributionClaim, error)

	// GetJournal retrieves journal entries in cursor order
	GetJournal(ctx context.Context, filter JournalQueryFilter) ([]*schema.LedgerJournal, uint64, error)

	// SetKeyValue sets a key-value pair in the key-value store
	SetKeyValue(ctx context.Context, key string, value string) error
	// GetKeyValue retrieves a value by key, empty when absent
	GetKeyValue(ctx context.Context, key string) (string, error)
}
