package dto

import (
	"time"

	"github.com/RackSavant/sistachat-sub000/internal/domain"
	"github.com/RackSavant/sistachat-sub000/internal/store"
	"github.com/RackSavant/sistachat-sub000/internal/store/schema"
)

// PlatformResponse represents the platform ledger
type PlatformResponse struct {
	Address        domain.Address `json:"address"`
	Authority      domain.Address `json:"authority"`
	Treasury       domain.Address `json:"treasury"`
	FeeBps         uint16         `json:"fee_bps"`
	TotalDesigners uint64         `json:"total_designers"`
	TotalDesigns   uint64         `json:"total_designs"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// MapPlatformToDTO maps a schema.PlatformLedger to PlatformResponse
func MapPlatformToDTO(platform *schema.PlatformLedger) *PlatformResponse {
	return &PlatformResponse{
		Address:        platform.Address,
		Authority:      platform.Authority,
		Treasury:       platform.Treasury,
		FeeBps:         platform.FeeBps,
		TotalDesigners: platform.TotalDesigners,
		TotalDesigns:   platform.TotalDesigns,
		CreatedAt:      platform.CreatedAt,
		UpdatedAt:      platform.UpdatedAt,
	}
}

// AccountResponse represents a settlement account balance
type AccountResponse struct {
	Address   domain.Address `json:"address"`
	Balance   AmountResponse `json:"balance"`
	UpdatedAt *time.Time     `json:"updated_at,omitempty"`
}

// MapAccountToDTO maps a schema.Account to AccountResponse.
// A nil account is an address that was never credited.
func MapAccountToDTO(address domain.Address, account *schema.Account) *AccountResponse {
	if account == nil {
		return &AccountResponse{Address: address, Balance: SettlementAmount(0)}
	}
	return &AccountResponse{
		Address:   account.Address,
		Balance:   SettlementAmount(account.Balance),
		UpdatedAt: &account.UpdatedAt,
	}
}

// DesignerResponse represents a designer profile
type DesignerResponse struct {
	Address      domain.Address `json:"address"`
	Owner        domain.Address `json:"owner"`
	DisplayName  string         `json:"display_name"`
	BioURI       string         `json:"bio_uri"`
	Mint         domain.Address `json:"mint"`
	TotalDesigns uint64         `json:"total_designs"`
	TotalSales   uint64         `json:"total_sales"`
	CreatedAt    time.Time      `json:"created_at"`
}

// MapDesignerToDTO maps a schema.DesignerRegistry to DesignerResponse
func MapDesignerToDTO(designer *schema.DesignerRegistry) *DesignerResponse {
	return &DesignerResponse{
		Address:      designer.Address,
		Owner:        designer.Owner,
		DisplayName:  designer.DisplayName,
		BioURI:       designer.BioURI,
		Mint:         designer.MintAddress,
		TotalDesigns: designer.TotalDesigns,
		TotalSales:   designer.TotalSales,
		CreatedAt:    designer.CreatedAt,
	}
}

// DesignerRegistrationResponse represents a newly registered designer and the initial token split
type DesignerRegistrationResponse struct {
	Designer        DesignerResponse `json:"designer"`
	Supply          AmountResponse   `json:"supply"`
	DesignerHolding HoldingResponse  `json:"designer_holding"`
	PoolHolding     HoldingResponse  `json:"pool_holding"`
}

// MapRegistrationToDTO maps a store.RegisterDesignerResult to DesignerRegistrationResponse
func MapRegistrationToDTO(result *store.RegisterDesignerResult) *DesignerRegistrationResponse {
	return &DesignerRegistrationResponse{
		Designer:        *MapDesignerToDTO(result.Designer),
		Supply:          TokenAmount(result.Mint.Supply),
		DesignerHolding: *MapHoldingToDTO(result.DesignerHolding),
		PoolHolding:     *MapHoldingToDTO(result.PoolHolding),
	}
}

// EscrowResponse represents a design's escrow account
type EscrowResponse struct {
	Address          domain.Address `json:"address"`
	Design           domain.Address `json:"design"`
	Balance          AmountResponse `json:"balance"`
	TotalDeposited   AmountResponse `json:"total_deposited"`
	TotalDistributed AmountResponse `json:"total_distributed"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// MapEscrowToDTO maps a schema.EscrowAccount to EscrowResponse
func MapEscrowToDTO(escrow *schema.EscrowAccount) *EscrowResponse {
	return &EscrowResponse{
		Address:          escrow.Address,
		Design:           escrow.DesignAddress,
		Balance:          SettlementAmount(escrow.Balance),
		TotalDeposited:   SettlementAmount(escrow.TotalDeposited),
		TotalDistributed: SettlementAmount(escrow.TotalDistributed),
		UpdatedAt:        escrow.UpdatedAt,
	}
}

// DesignResponse represents a design listing
type DesignResponse struct {
	Address          domain.Address     `json:"address"`
	Owner            domain.Address     `json:"owner"`
	Designer         domain.Address     `json:"designer"`
	SequenceIndex    uint64             `json:"sequence_index"`
	ContentHash      domain.ContentHash `json:"content_hash"`
	PricePerUnit     AmountResponse     `json:"price_per_unit"`
	Inventory        uint64             `json:"inventory"`
	InitialInventory uint64             `json:"initial_inventory"`
	TotalSales       uint64             `json:"total_sales"`
	State            domain.DesignState `json:"state"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`

	// Expansions
	Escrow *EscrowResponse `json:"escrow,omitempty"`
}

// MapDesignToDTO maps a schema.DesignCatalogEntry to DesignResponse
func MapDesignToDTO(design *schema.DesignCatalogEntry) *DesignResponse {
	return &DesignResponse{
		Address:          design.Address,
		Owner:            design.OwnerDesigner,
		Designer:         design.DesignerAddress,
		SequenceIndex:    design.SequenceIndex,
		ContentHash:      design.ContentHash,
		PricePerUnit:     SettlementAmount(design.PricePerUnit),
		Inventory:        design.Inventory,
		InitialInventory: design.InitialInventory,
		TotalSales:       design.TotalSales,
		State:            design.State(),
		CreatedAt:        design.CreatedAt,
		UpdatedAt:        design.UpdatedAt,
	}
}

// DesignListResponse represents a page of designs
type DesignListResponse struct {
	Designs []DesignResponse `json:"designs"`
	Offset  *uint64          `json:"offset,omitempty"`
	Total   uint64           `json:"total"`
}

// PurchaseResponse represents a settled purchase
type PurchaseResponse struct {
	Design       DesignResponse `json:"design"`
	Quantity     uint64         `json:"quantity"`
	UnitPrice    AmountResponse `json:"unit_price"`
	Total        AmountResponse `json:"total"`
	Fee          AmountResponse `json:"fee"`
	Net          AmountResponse `json:"net"`
	BuyerBalance AmountResponse `json:"buyer_balance"`
}

// MapPurchaseToDTO maps a store.BuyResult to PurchaseResponse
func MapPurchaseToDTO(result *store.BuyResult, quantity uint64) *PurchaseResponse {
	design := MapDesignToDTO(result.Design)
	design.Escrow = MapEscrowToDTO(result.Escrow)

	return &PurchaseResponse{
		Design:       *design,
		Quantity:     quantity,
		UnitPrice:    SettlementAmount(result.Design.PricePerUnit),
		Total:        SettlementAmount(result.Settlement.Total),
		Fee:          SettlementAmount(result.Settlement.Fee),
		Net:          SettlementAmount(result.Settlement.Net),
		BuyerBalance: SettlementAmount(result.BuyerBalance),
	}
}

// DistributionResponse represents a payout to a holder
type DistributionResponse struct {
	Design        domain.Address `json:"design"`
	Holder        domain.Address `json:"holder"`
	Revenue       AmountResponse `json:"revenue"`
	HolderBalance AmountResponse `json:"holder_balance"`
	TotalSupply   AmountResponse `json:"total_supply"`
	Entitlement   AmountResponse `json:"entitlement"`
	AlreadyPaid   AmountResponse `json:"already_paid"`
	Payout        AmountResponse `json:"payout"`
	Escrow        EscrowResponse `json:"escrow"`
}

// MapDistributionToDTO maps a store.DistributionResult to DistributionResponse
func MapDistributionToDTO(result *store.DistributionResult) *DistributionResponse {
	return &DistributionResponse{
		Design:        result.Design,
		Holder:        result.Holder,
		Revenue:       SettlementAmount(result.Revenue),
		HolderBalance: TokenAmount(result.HolderBalance),
		TotalSupply:   TokenAmount(result.TotalSupply),
		Entitlement:   SettlementAmount(result.Entitlement),
		AlreadyPaid:   SettlementAmount(result.AlreadyPaid),
		Payout:        SettlementAmount(result.Payout),
		Escrow:        *MapEscrowToDTO(result.Escrow),
	}
}

// HoldingResponse represents the balance of one holder in a designer token
type HoldingResponse struct {
	Mint    domain.Address `json:"mint"`
	Holder  domain.Address `json:"holder"`
	Balance AmountResponse `json:"balance"`
}

// MapHoldingToDTO maps a schema.TokenHolding to HoldingResponse
func MapHoldingToDTO(holding *schema.TokenHolding) *HoldingResponse {
	return &HoldingResponse{
		Mint:    holding.MintAddress,
		Holder:  holding.HolderAddress,
		Balance: TokenAmount(holding.Balance),
	}
}

// HoldingListResponse represents a page of holders of a designer token
type HoldingListResponse struct {
	Holdings []HoldingResponse `json:"holdings"`
	Offset   *uint64           `json:"offset,omitempty"`
	Total    uint64            `json:"total"`
}

// TransferResponse represents a share transfer and the claim debt that moved with it
type TransferResponse struct {
	From      HoldingResponse `json:"from"`
	To        HoldingResponse `json:"to"`
	DebtMoved AmountResponse  `json:"debt_moved"`
}

// MapTransferToDTO maps a store.TransferSharesResult to TransferResponse
func MapTransferToDTO(result *store.TransferSharesResult) *TransferResponse {
	return &TransferResponse{
		From:      *MapHoldingToDTO(result.From),
		To:        *MapHoldingToDTO(result.To),
		DebtMoved: SettlementAmount(result.DebtMoved),
	}
}
