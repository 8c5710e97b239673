package executor

import (
	"context"
	"fmt"

	"github.com/RackSavant/sistachat-sub000/internal/api/shared/constants"
	"github.com/RackSavant/sistachat-sub000/internal/api/shared/dto"
	apierrors "github.com/RackSavant/sistachat-sub000/internal/api/shared/errors"
	"github.com/RackSavant/sistachat-sub000/internal/domain"
	"github.com/RackSavant/sistachat-sub000/internal/ledger"
	"github.com/RackSavant/sistachat-sub000/internal/store"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// InitializePlatform creates the platform ledger with the caller as authority
	InitializePlatform(ctx context.Context, caller domain.Address, req *dto.InitializePlatformRequest) (*dto.PlatformResponse, error)
	// GetPlatform retrieves the platform ledger, nil when not initialized
	GetPlatform(ctx context.Context) (*dto.PlatformResponse, error)
	// UpdatePlatform changes the fee rate or the treasury
	UpdatePlatform(ctx context.Context, caller domain.Address, req *dto.UpdatePlatformRequest) (*dto.PlatformResponse, error)
	// WithdrawFee moves fees from the treasury to a destination account
	WithdrawFee(ctx context.Context, caller domain.Address, req *dto.WithdrawFeeRequest) (*dto.AccountResponse, error)

	// FundAccount credits a settlement account
	FundAccount(ctx context.Context, caller domain.Address, account string, req *dto.FundAccountRequest) (*dto.AccountResponse, error)
	// GetAccount retrieves a settlement account balance
	GetAccount(ctx context.Context, address string) (*dto.AccountResponse, error)

	// RegisterDesigner registers the caller as a designer and mints their token
	RegisterDesigner(ctx context.Context, caller domain.Address, req *dto.RegisterDesignerRequest) (*dto.DesignerRegistrationResponse, error)
	// GetDesigner retrieves a designer profile by wallet, nil when not registered
	GetDesigner(ctx context.Context, owner string) (*dto.DesignerResponse, error)
	// ListDesigns retrieves a designer's designs by upload order
	ListDesigns(ctx context.Context, owner string, limit *int, offset *uint64) (*dto.DesignListResponse, error)

	// UploadDesign lists a new design owned by the caller
	UploadDesign(ctx context.Context, caller domain.Address, req *dto.UploadDesignRequest) (*dto.DesignResponse, error)
	// GetDesign retrieves a design with its escrow, nil when not found
	GetDesign(ctx context.Context, address string) (*dto.DesignResponse, error)
	// UpdatePrice reprices a design owned by the caller
	UpdatePrice(ctx context.Context, caller domain.Address, design string, req *dto.UpdatePriceRequest) (*dto.DesignResponse, error)
	// Buy purchases design units for the caller
	Buy(ctx context.Context, caller domain.Address, design string, req *dto.BuyRequest) (*dto.PurchaseResponse, error)
	// GetEscrow retrieves a design's escrow, nil when not found
	GetEscrow(ctx context.Context, design string) (*dto.EscrowResponse, error)
	// DistributeToHolder pays a holder from a design's escrow
	DistributeToHolder(ctx context.Context, caller *domain.Address, design string, req *dto.DistributeRequest) (*dto.DistributionResponse, error)

	// TransferShares moves designer token units from the caller
	TransferShares(ctx context.Context, caller domain.Address, mint string, req *dto.TransferSharesRequest) (*dto.TransferResponse, error)
	// ListHoldings retrieves the holders of a designer token
	ListHoldings(ctx context.Context, mint string, limit *int, offset *uint64) (*dto.HoldingListResponse, error)
	// GetHolding retrieves one holder's balance, zero when the holder never held units
	GetHolding(ctx context.Context, mint string, holder string) (*dto.HoldingResponse, error)

	// GetJournal retrieves journal entries after the anchor in cursor order
	GetJournal(ctx context.Context, subjects []string, instructions []string, anchor *uint64, limit *int) (*dto.JournalListResponse, error)
}

type executor struct {
	store  store.Store
	ledger ledger.Ledger
}

func NewExecutor(store store.Store, ledger ledger.Ledger) Executor {
	return &executor{store: store, ledger: ledger}
}

// parseAddress parses a path or body address into a validation error
func parseAddress(field, s string) (domain.Address, error) {
	addr, err := domain.ParseAddress(s)
	if err != nil {
		return "", apierrors.NewValidationError(fmt.Sprintf("invalid %s: %s", field, s))
	}
	return addr, nil
}

func (e *executor) InitializePlatform(ctx context.Context, caller domain.Address, req *dto.InitializePlatformRequest) (*dto.PlatformResponse, error) {
	treasury, err := parseAddress("treasury", req.Treasury)
	if err != nil {
		return nil, err
	}
	if req.FeeBps == nil {
		return nil, apierrors.NewValidationError("fee_bps is required")
	}

	platform, err := e.ledger.InitializePlatform(ctx, store.InitializePlatformInput{
		Authority: caller,
		Treasury:  treasury,
		FeeBps:    *req.FeeBps,
	})
	if err != nil {
		return nil, apierrors.FromDomainError(err)
	}

	return dto.MapPlatformToDTO(platform), nil
}

func (e *executor) GetPlatform(ctx context.Context) (*dto.PlatformResponse, error) {
	platform, err := e.store.GetPlatform(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get platform: %v", err))
	}
	if platform == nil {
		return nil, nil
	}
	return dto.MapPlatformToDTO(platform), nil
}

func (e *executor) UpdatePlatform(ctx context.Context, caller domain.Address, req *dto.UpdatePlatformRequest) (*dto.PlatformResponse, error) {
	input := store.UpdatePlatformInput{
		Authority: caller,
		FeeBps:    req.FeeBps,
	}
	if req.Treasury != nil {
		treasury, err := parseAddress("treasury", *req.Treasury)
		if err != nil {
			return nil, err
		}
		input.Treasury = &treasury
	}

	platform, err := e.ledger.UpdatePlatform(ctx, input)
	if err != nil {
		return nil, apierrors.FromDomainError(err)
	}

	return dto.MapPlatformToDTO(platform), nil
}

func (e *executor) WithdrawFee(ctx context.Context, caller domain.Address, req *dto.WithdrawFeeRequest) (*dto.AccountResponse, error) {
	destination, err := parseAddress("destination", req.Destination)
	if err != nil {
		return nil, err
	}

	account, err := e.ledger.WithdrawFee(ctx, store.WithdrawFeeInput{
		Authority:   caller,
		Destination: destination,
		Amount:      req.Amount,
	})
	if err != nil {
		return nil, apierrors.FromDomainError(err)
	}

	return dto.MapAccountToDTO(account.Address, account), nil
}

func (e *executor) FundAccount(ctx context.Context, caller domain.Address, account string, req *dto.FundAccountRequest) (*dto.AccountResponse, error) {
	address, err := parseAddress("account", account)
	if err != nil {
		return nil, err
	}

	funded, err := e.ledger.FundAccount(ctx, store.FundAccountInput{
		Authority: caller,
		Account:   address,
		Amount:    req.Amount,
	})
	if err != nil {
		return nil, apierrors.FromDomainError(err)
	}

	return dto.MapAccountToDTO(address, funded), nil
}

func (e *executor) GetAccount(ctx context.Context, address string) (*dto.AccountResponse, error) {
	addr, err := parseAddress("account", address)
	if err != nil {
		return nil, err
	}

	account, err := e.store.GetAccount(ctx, addr)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get account: %v", err))
	}

	return dto.MapAccountToDTO(addr, account), nil
}

func (e *executor) RegisterDesigner(ctx context.Context, caller domain.Address, req *dto.RegisterDesignerRequest) (*dto.DesignerRegistrationResponse, error) {
	result, err := e.ledger.RegisterDesigner(ctx, store.RegisterDesignerInput{
		Owner:       caller,
		DisplayName: req.DisplayName,
		BioURI:      req.BioURI,
	})
	if err != nil {
		return nil, apierrors.FromDomainError(err)
	}

	return dto.MapRegistrationToDTO(result), nil
}

func (e *executor) GetDesigner(ctx context.Context, owner string) (*dto.DesignerResponse, error) {
	addr, err := parseAddress("owner", owner)
	if err != nil {
		return nil, err
	}

	designer, err := e.store.GetDesignerByOwner(ctx, addr)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get designer: %v", err))
	}
	if designer == nil {
		return nil, nil
	}

	return dto.MapDesignerToDTO(designer), nil
}

func (e *executor) ListDesigns(ctx context.Context, owner string, limit *int, offset *uint64) (*dto.DesignListResponse, error) {
	addr, err := parseAddress("owner", owner)
	if err != nil {
		return nil, err
	}

	// Use defaults if not provided
	if limit == nil {
		defaultLimit := constants.DEFAULT_DESIGNS_LIMIT
		limit = &defaultLimit
	}
	if offset == nil {
		defaultOffset := constants.DEFAULT_OFFSET
		offset = &defaultOffset
	}

	designs, total, err := e.store.ListDesignsByOwner(ctx, addr, *limit, *offset)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list designs: %v", err))
	}

	designDTOs := make([]dto.DesignResponse, len(designs))
	for i := range designs {
		designDTOs[i] = *dto.MapDesignToDTO(&designs[i])
	}

	return &dto.DesignListResponse{
		Designs: designDTOs,
		Offset:  nextOffset(*offset, len(designs), total),
		Total:   total,
	}, nil
}

func (e *executor) UploadDesign(ctx context.Context, caller domain.Address, req *dto.UploadDesignRequest) (*dto.DesignResponse, error) {
	hash, err := domain.ParseContentHash(req.ContentHash)
	if err != nil {
		return nil, apierrors.NewValidationError("content_hash must be a 0x-prefixed 32-byte hex string")
	}

	result, err := e.ledger.UploadDesign(ctx, store.UploadDesignInput{
		Owner:        caller,
		ContentHash:  hash,
		PricePerUnit: req.PricePerUnit,
		Inventory:    req.Inventory,
	})
	if err != nil {
		return nil, apierrors.FromDomainError(err)
	}

	design := dto.MapDesignToDTO(result.Design)
	design.Escrow = dto.MapEscrowToDTO(result.Escrow)
	return design, nil
}

func (e *executor) GetDesign(ctx context.Context, address string) (*dto.DesignResponse, error) {
	addr, err := parseAddress("design", address)
	if err != nil {
		return nil, err
	}

	design, err := e.store.GetDesign(ctx, addr)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get design: %v", err))
	}
	if design == nil {
		return nil, nil
	}

	designDTO := dto.MapDesignToDTO(design)

	escrow, err := e.store.GetEscrowByDesign(ctx, addr)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get escrow: %v", err))
	}
	if escrow != nil {
		designDTO.Escrow = dto.MapEscrowToDTO(escrow)
	}

	return designDTO, nil
}

func (e *executor) UpdatePrice(ctx context.Context, caller domain.Address, design string, req *dto.UpdatePriceRequest) (*dto.DesignResponse, error) {
	addr, err := parseAddress("design", design)
	if err != nil {
		return nil, err
	}

	updated, err := e.ledger.UpdatePrice(ctx, store.UpdatePriceInput{
		Owner:    caller,
		Design:   addr,
		NewPrice: req.PricePerUnit,
	})
	if err != nil {
		return nil, apierrors.FromDomainError(err)
	}

	return dto.MapDesignToDTO(updated), nil
}

func (e *executor) Buy(ctx context.Context, caller domain.Address, design string, req *dto.BuyRequest) (*dto.PurchaseResponse, error) {
	addr, err := parseAddress("design", design)
	if err != nil {
		return nil, err
	}

	result, err := e.ledger.Buy(ctx, store.BuyInput{
		Buyer:    caller,
		Design:   addr,
		Quantity: req.Quantity,
	})
	if err != nil {
		return nil, apierrors.FromDomainError(err)
	}

	return dto.MapPurchaseToDTO(result, req.Quantity), nil
}

func (e *executor) GetEscrow(ctx context.Context, design string) (*dto.EscrowResponse, error) {
	addr, err := parseAddress("design", design)
	if err != nil {
		return nil, err
	}

	escrow, err := e.store.GetEscrowByDesign(ctx, addr)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get escrow: %v", err))
	}
	if escrow == nil {
		return nil, nil
	}

	return dto.MapEscrowToDTO(escrow), nil
}

func (e *executor) DistributeToHolder(ctx context.Context, caller *domain.Address, design string, req *dto.DistributeRequest) (*dto.DistributionResponse, error) {
	addr, err := parseAddress("design", design)
	if err != nil {
		return nil, err
	}
	holder, err := parseAddress("holder", req.Holder)
	if err != nil {
		return nil, err
	}

	result, err := e.ledger.DistributeToHolder(ctx, store.DistributeInput{
		Caller:              caller,
		Design:              addr,
		Holder:              holder,
		ClaimedTotalRevenue: req.ClaimedTotalRevenue,
		HolderBalance:       req.HolderBalance,
		TotalSupply:         req.TotalSupply,
	})
	if err != nil {
		return nil, apierrors.FromDomainError(err)
	}

	return dto.MapDistributionToDTO(result), nil
}

func (e *executor) TransferShares(ctx context.Context, caller domain.Address, mint string, req *dto.TransferSharesRequest) (*dto.TransferResponse, error) {
	mintAddr, err := parseAddress("mint", mint)
	if err != nil {
		return nil, err
	}
	to, err := parseAddress("recipient", req.To)
	if err != nil {
		return nil, err
	}

	result, err := e.ledger.TransferShares(ctx, store.TransferSharesInput{
		Mint:   mintAddr,
		From:   caller,
		To:     to,
		Amount: req.Amount,
	})
	if err != nil {
		return nil, apierrors.FromDomainError(err)
	}

	return dto.MapTransferToDTO(result), nil
}

func (e *executor) ListHoldings(ctx context.Context, mint string, limit *int, offset *uint64) (*dto.HoldingListResponse, error) {
	mintAddr, err := parseAddress("mint", mint)
	if err != nil {
		return nil, err
	}

	// Use defaults if not provided
	if limit == nil {
		defaultLimit := constants.DEFAULT_HOLDINGS_LIMIT
		limit = &defaultLimit
	}
	if offset == nil {
		defaultOffset := constants.DEFAULT_OFFSET
		offset = &defaultOffset
	}

	holdings, total, err := e.store.ListHoldings(ctx, mintAddr, *limit, *offset)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list holdings: %v", err))
	}

	holdingDTOs := make([]dto.HoldingResponse, len(holdings))
	for i := range holdings {
		holdingDTOs[i] = *dto.MapHoldingToDTO(&holdings[i])
	}

	return &dto.HoldingListResponse{
		Holdings: holdingDTOs,
		Offset:   nextOffset(*offset, len(holdings), total),
		Total:    total,
	}, nil
}

func (e *executor) GetHolding(ctx context.Context, mint string, holder string) (*dto.HoldingResponse, error) {
	mintAddr, err := parseAddress("mint", mint)
	if err != nil {
		return nil, err
	}
	holderAddr, err := parseAddress("holder", holder)
	if err != nil {
		return nil, err
	}

	holding, err := e.store.GetHolding(ctx, mintAddr, holderAddr)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get holding: %v", err))
	}
	if holding == nil {
		return &dto.HoldingResponse{Mint: mintAddr, Holder: holderAddr, Balance: dto.TokenAmount(0)}, nil
	}

	return dto.MapHoldingToDTO(holding), nil
}

func (e *executor) GetJournal(ctx context.Context, subjects []string, instructions []string, anchor *uint64, limit *int) (*dto.JournalListResponse, error) {
	if limit == nil {
		defaultLimit := constants.DEFAULT_JOURNAL_LIMIT
		limit = &defaultLimit
	}

	filter := store.JournalQueryFilter{
		Anchor: anchor,
		Limit:  *limit,
	}
	for _, s := range subjects {
		addr, err := parseAddress("subject", s)
		if err != nil {
			return nil, err
		}
		filter.Subjects = append(filter.Subjects, addr)
	}
	for _, i := range instructions {
		instruction := domain.Instruction(i)
		if !domain.IsValidInstruction(instruction) {
			return nil, apierrors.NewValidationError(fmt.Sprintf("invalid instruction: %s", i))
		}
		filter.Instructions = append(filter.Instructions, instruction)
	}

	entries, total, err := e.store.GetJournal(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get journal: %v", err))
	}

	entryDTOs := make([]dto.JournalEntryResponse, len(entries))
	for i, entry := range entries {
		entryDTOs[i] = *dto.MapJournalEntryToDTO(entry)
	}

	// total counts every entry after the anchor, so a larger total means another page
	var nextAnchor *uint64
	if len(entries) > 0 && total > uint64(len(entries)) {
		last := entryDTOs[len(entryDTOs)-1].Cursor
		nextAnchor = &last
	}

	return &dto.JournalListResponse{
		Entries:    entryDTOs,
		NextAnchor: nextAnchor,
		Total:      total,
	}, nil
}

// nextOffset returns the offset of the next page, nil on the last page
func nextOffset(offset uint64, n int, total uint64) *uint64 {
	if offset+uint64(n) < total { //nolint:gosec,G115
		next := offset + uint64(n) //nolint:gosec,G115
		return &next
	}
	return nil
}
