package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RackSavant/sistachat-sub000/internal/derive"
	"github.com/RackSavant/sistachat-sub000/internal/domain"
	"github.com/RackSavant/sistachat-sub000/internal/store/schema"
)

const (
	lockUpdate = "UPDATE"
	lockShare  = "SHARE"
)

// errNothingToPay rolls back a distribution whose payout is zero
var errNothingToPay = errors.New("nothing to pay")

type pgStore struct {
	db      *gorm.DB
	deriver *derive.Deriver
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB, deriver *derive.Deriver) Store {
	return &pgStore{db: db, deriver: deriver}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// =============================================================================
// Platform
// =============================================================================

// InitializePlatform creates the singleton platform ledger
func (s *pgStore) InitializePlatform(ctx context.Context, input InitializePlatformInput) (*schema.PlatformLedger, error) {
	if input.FeeBps > domain.MaxFeeBps {
		return nil, domain.ErrFeeBpsOutOfRange
	}

	address, err := s.deriver.Platform()
	if err != nil {
		return nil, err
	}

	platform := schema.PlatformLedger{
		Address:   address,
		Authority: input.Authority,
		Treasury:  input.Treasury,
		FeeBps:    input.FeeBps,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&platform)
		if result.Error != nil {
			return fmt.Errorf("failed to create platform ledger: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrPlatformAlreadyInitialized
		}

		return s.appendJournal(tx, domain.InstructionInitializePlatform, address, &input.Authority, domain.PlatformInitialized{
			Authority: input.Authority,
			Treasury:  input.Treasury,
			FeeBps:    input.FeeBps,
		})
	})
	if err != nil {
		return nil, err
	}

	return &platform, nil
}

// UpdatePlatform changes the fee rate or treasury destination
func (s *pgStore) UpdatePlatform(ctx context.Context, input UpdatePlatformInput) (*schema.PlatformLedger, error) {
	if input.FeeBps == nil && input.Treasury == nil {
		return nil, domain.ErrEmptyUpdate
	}
	if input.FeeBps != nil && *input.FeeBps > domain.MaxFeeBps {
		return nil, domain.ErrFeeBpsOutOfRange
	}

	var platform *schema.PlatformLedger
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		platform, err = s.lockPlatform(tx, lockUpdate)
		if err != nil {
			return err
		}
		if platform.Authority != input.Authority {
			return domain.ErrNotPlatformAuthority
		}

		if input.FeeBps != nil {
			platform.FeeBps = *input.FeeBps
		}
		if input.Treasury != nil {
			platform.Treasury = *input.Treasury
		}

		if err := tx.Save(platform).Error; err != nil {
			return fmt.Errorf("failed to update platform ledger: %w", err)
		}

		return s.appendJournal(tx, domain.InstructionUpdatePlatform, platform.Address, &input.Authority, domain.PlatformUpdated{
			FeeBps:   platform.FeeBps,
			Treasury: platform.Treasury,
		})
	})
	if err != nil {
		return nil, err
	}

	return platform, nil
}

// GetPlatform retrieves the platform ledger
func (s *pgStore) GetPlatform(ctx context.Context) (*schema.PlatformLedger, error) {
	address, err := s.deriver.Platform()
	if err != nil {
		return nil, err
	}

	var platform schema.PlatformLedger
	err = s.db.WithContext(ctx).Where("address = ?", address).First(&platform).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get platform ledger: %w", err)
	}

	return &platform, nil
}

// =============================================================================
// Settlement accounts
// =============================================================================

// FundAccount credits a settlement account on behalf of the platform authority
func (s *pgStore) FundAccount(ctx context.Context, input FundAccountInput) (*schema.Account, error) {
	if input.Amount.IsZero() {
		return nil, domain.ErrInvalidAmount
	}

	var account *schema.Account
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		platform, err := s.lockPlatform(tx, lockShare)
		if err != nil {
			return err
		}
		if platform.Authority != input.Authority {
			return domain.ErrNotPlatformAuthority
		}

		accounts, err := s.lockAccounts(tx, input.Account)
		if err != nil {
			return err
		}
		account = accounts[input.Account]
		if account.Balance, err = account.Balance.CheckedAdd(input.Amount); err != nil {
			return err
		}
		if err := s.saveAccounts(tx, accounts); err != nil {
			return err
		}

		return s.appendJournal(tx, domain.InstructionFundAccount, input.Account, &input.Authority, domain.AccountFunded{
			Account: input.Account,
			Amount:  input.Amount,
			Balance: account.Balance,
		})
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// WithdrawFee moves fees from the treasury account to a destination account.
// Escrow accounts are never touched.
func (s *pgStore) WithdrawFee(ctx context.Context, input WithdrawFeeInput) (*schema.Account, error) {
	if input.Amount.IsZero() {
		return nil, domain.ErrInvalidAmount
	}

	var treasury *schema.Account
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		platform, err := s.lockPlatform(tx, lockShare)
		if err != nil {
			return err
		}
		if platform.Authority != input.Authority {
			return domain.ErrNotPlatformAuthority
		}

		accounts, err := s.lockAccounts(tx, platform.Treasury, input.Destination)
		if err != nil {
			return err
		}
		treasury = accounts[platform.Treasury]
		if err := debit(treasury, input.Amount); err != nil {
			return err
		}
		if err := credit(accounts[input.Destination], input.Amount); err != nil {
			return err
		}
		if err := s.saveAccounts(tx, accounts); err != nil {
			return err
		}

		return s.appendJournal(tx, domain.InstructionWithdrawFee, platform.Treasury, &input.Authority, domain.FeeWithdrawn{
			Treasury:    platform.Treasury,
			Destination: input.Destination,
			Amount:      input.Amount,
		})
	})
	if err != nil {
		return nil, err
	}

	return treasury, nil
}

// GetAccount retrieves a settlement account
func (s *pgStore) GetAccount(ctx context.Context, address domain.Address) (*schema.Account, error) {
	var account schema.Account
	err := s.db.WithContext(ctx).Where("address = ?", address).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}

// =============================================================================
// Designers and tokens
// =============================================================================

// RegisterDesigner creates a designer profile, mints the designer's fixed supply and splits it
// between the designer and the platform pool
func (s *pgStore) RegisterDesigner(ctx context.Context, input RegisterDesignerInput) (*RegisterDesignerResult, error) {
	if n := utf8.RuneCountInString(input.DisplayName); n == 0 || n > domain.MaxDisplayNameLength {
		return nil, domain.ErrInvalidDisplayName
	}
	if utf8.RuneCountInString(input.BioURI) > domain.MaxBioURILength {
		return nil, domain.ErrBioURITooLong
	}

	profileAddress, err := s.deriver.DesignerProfile(input.Owner)
	if err != nil {
		return nil, err
	}
	mintAddress, err := s.deriver.DesignerMint(input.Owner)
	if err != nil {
		return nil, err
	}
	poolAddress, err := s.deriver.PlatformPool(mintAddress)
	if err != nil {
		return nil, err
	}

	var result RegisterDesignerResult
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		platform, err := s.lockPlatform(tx, lockUpdate)
		if err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&schema.DesignerRegistry{}).Where("owner = ?", input.Owner).Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to check designer registry: %w", err)
		}
		if existing > 0 {
			return domain.ErrDesignerAlreadyRegistered
		}

		designer := schema.DesignerRegistry{
			Address:     profileAddress,
			Owner:       input.Owner,
			DisplayName: input.DisplayName,
			BioURI:      input.BioURI,
			MintAddress: mintAddress,
		}
		if err := tx.Create(&designer).Error; err != nil {
			return fmt.Errorf("failed to create designer registry: %w", err)
		}

		mint := schema.TokenMint{
			Address:         mintAddress,
			DesignerAddress: profileAddress,
			Supply:          domain.TokenTotalSupply,
			Decimals:        domain.TokenDecimals,
		}
		if err := tx.Create(&mint).Error; err != nil {
			return fmt.Errorf("failed to create token mint: %w", err)
		}

		designerAmount, poolAmount := domain.SplitSupply(mint.Supply)
		holdings := []schema.TokenHolding{
			{MintAddress: mintAddress, HolderAddress: input.Owner, Balance: designerAmount},
			{MintAddress: mintAddress, HolderAddress: poolAddress, Balance: poolAmount},
		}
		if err := tx.Create(&holdings).Error; err != nil {
			return fmt.Errorf("failed to create token holdings: %w", err)
		}

		if platform.TotalDesigners, err = domain.AddUnits(platform.TotalDesigners, 1); err != nil {
			return err
		}
		if err := tx.Save(platform).Error; err != nil {
			return fmt.Errorf("failed to update platform ledger: %w", err)
		}

		result = RegisterDesignerResult{
			Designer:        &designer,
			Mint:            &mint,
			DesignerHolding: &holdings[0],
			PoolHolding:     &holdings[1],
		}

		return s.appendJournal(tx, domain.InstructionRegisterDesigner, profileAddress, &input.Owner, domain.DesignerRegistered{
			Owner:          input.Owner,
			Mint:           mintAddress,
			Pool:           poolAddress,
			DesignerAmount: designerAmount,
			PoolAmount:     poolAmount,
		})
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// GetDesignerByOwner retrieves a designer profile by wallet
func (s *pgStore) GetDesignerByOwner(ctx context.Context, owner domain.Address) (*schema.DesignerRegistry, error) {
	var designer schema.DesignerRegistry
	err := s.db.WithContext(ctx).Where("owner = ?", owner).First(&designer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get designer: %w", err)
	}

	return &designer, nil
}

// GetDesignerByAddress retrieves a designer profile by its derived address
func (s *pgStore) GetDesignerByAddress(ctx context.Context, address domain.Address) (*schema.DesignerRegistry, error) {
	var designer schema.DesignerRegistry
	err := s.db.WithContext(ctx).Where("address = ?", address).First(&designer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get designer: %w", err)
	}

	return &designer, nil
}

// GetMint retrieves a token mint
func (s *pgStore) GetMint(ctx context.Context, address domain.Address) (*schema.TokenMint, error) {
	var mint schema.TokenMint
	err := s.db.WithContext(ctx).Where("address = ?", address).First(&mint).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token mint: %w", err)
	}

	return &mint, nil
}

// TransferShares moves designer token units between holders. For every design of the designer the
// sender's already-paid revenue moves to the receiver in proportion to the units moved, so that
// neither side can claim revenue twice.
func (s *pgStore) TransferShares(ctx context.Context, input TransferSharesInput) (*TransferSharesResult, error) {
	if input.Amount.IsZero() {
		return nil, domain.ErrInvalidAmount
	}
	if input.From == input.To {
		return nil, domain.ErrSelfTransfer
	}

	var result TransferSharesResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var mint schema.TokenMint
		if err := tx.Where("address = ?", input.Mint).First(&mint).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrMintNotFound
			}
			return fmt.Errorf("failed to get token mint: %w", err)
		}

		// the receiver may not hold any units yet
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&schema.TokenHolding{
			MintAddress:   input.Mint,
			HolderAddress: input.To,
		}).Error; err != nil {
			return fmt.Errorf("failed to create receiver holding: %w", err)
		}

		holdings, err := s.lockHoldings(tx, input.Mint, input.From, input.To)
		if err != nil {
			return err
		}
		from, to := holdings[input.From], holdings[input.To]
		if from == nil || from.Balance < input.Amount {
			return fmt.Errorf("%w: sender holds fewer than %s units", domain.ErrInsufficientFunds, input.Amount)
		}
		senderBalance := from.Balance

		from.Balance -= input.Amount
		if to.Balance, err = to.Balance.CheckedAdd(input.Amount); err != nil {
			return err
		}
		if err := tx.Save(from).Error; err != nil {
			return fmt.Errorf("failed to update sender holding: %w", err)
		}
		if err := tx.Save(to).Error; err != nil {
			return fmt.Errorf("failed to update receiver holding: %w", err)
		}

		debtMoved, err := s.moveClaimDebt(tx, mint, input, senderBalance)
		if err != nil {
			return err
		}

		result = TransferSharesResult{From: from, To: to, DebtMoved: debtMoved}

		return s.appendJournal(tx, domain.InstructionTransferShares, input.Mint, &input.From, domain.SharesTransferred{
			Mint:      input.Mint,
			From:      input.From,
			To:        input.To,
			Amount:    input.Amount,
			DebtMoved: debtMoved,
		})
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// moveClaimDebt moves floor(paid * amount / senderBalance) of the sender's claim on each of the
// designer's designs to the receiver
func (s *pgStore) moveClaimDebt(tx *gorm.DB, mint schema.TokenMint, input TransferSharesInput, senderBalance domain.Amount) (domain.Amount, error) {
	var designs []domain.Address
	if err := tx.Model(&schema.DesignCatalogEntry{}).
		Where("designer_address = ?", mint.DesignerAddress).
		Order("address ASC").
		Pluck("address", &designs).Error; err != nil {
		return 0, fmt.Errorf("failed to list designs: %w", err)
	}

	var total domain.Amount
	for _, design := range designs {
		var claims []schema.DistributionClaim
		if err := tx.Clauses(clause.Locking{Strength: lockUpdate}).
			Where("design_address = ? AND holder_address IN ?", design, []domain.Address{input.From, input.To}).
			Order("holder_address ASC").
			Find(&claims).Error; err != nil {
			return 0, fmt.Errorf("failed to lock distribution claims: %w", err)
		}

		var fromClaim, toClaim *schema.DistributionClaim
		for i := range claims {
			switch claims[i].HolderAddress {
			case input.From:
				fromClaim = &claims[i]
			case input.To:
				toClaim = &claims[i]
			}
		}
		if fromClaim == nil {
			continue
		}

		moved := domain.ClaimDebtShare(fromClaim.Paid, input.Amount, senderBalance)
		if moved == 0 {
			continue
		}

		fromClaim.Paid -= moved
		if err := tx.Save(fromClaim).Error; err != nil {
			return 0, fmt.Errorf("failed to update sender claim: %w", err)
		}

		if toClaim == nil {
			toClaim = &schema.DistributionClaim{
				DesignAddress: design,
				HolderAddress: input.To,
				MintAddress:   input.Mint,
				Paid:          moved,
			}
			if err := tx.Create(toClaim).Error; err != nil {
				return 0, fmt.Errorf("failed to create receiver claim: %w", err)
			}
		} else {
			toClaim.Paid += moved
			if err := tx.Save(toClaim).Error; err != nil {
				return 0, fmt.Errorf("failed to update receiver claim: %w", err)
			}
		}

		total += moved
	}

	return total, nil
}

// GetHolding retrieves the holding of a holder in a mint
func (s *pgStore) GetHolding(ctx context.Context, mint, holder domain.Address) (*schema.TokenHolding, error) {
	var holding schema.TokenHolding
	err := s.db.WithContext(ctx).
		Where("mint_address = ? AND holder_address = ?", mint, holder).
		First(&holding).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token holding: %w", err)
	}

	return &holding, nil
}

// ListHoldings retrieves the holders of a mint with a positive balance
func (s *pgStore) ListHoldings(ctx context.Context, mint domain.Address, limit int, offset uint64) ([]schema.TokenHolding, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.TokenHolding{}).
		Where("mint_address = ? AND balance > 0", mint)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count token holdings: %w", err)
	}

	query = query.Order("holder_address ASC")
	if offset > 0 {
		query = query.Offset(int(offset)) //nolint:gosec,G115
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var holdings []schema.TokenHolding
	if err := query.Find(&holdings).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list token holdings: %w", err)
	}

	return holdings, uint64(total), nil //nolint:gosec,G115
}

// =============================================================================
// Designs
// =============================================================================

// UploadDesign lists a new design at the designer's next sequence index and opens its escrow
func (s *pgStore) UploadDesign(ctx context.Context, input UploadDesignInput) (*UploadDesignResult, error) {
	if input.Inventory > domain.MaxUnitCount {
		return nil, domain.ErrInventoryTooLarge
	}

	var result UploadDesignResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		platform, err := s.lockPlatform(tx, lockUpdate)
		if err != nil {
			return err
		}

		var designer schema.DesignerRegistry
		if err := tx.Clauses(clause.Locking{Strength: lockUpdate}).
			Where("owner = ?", input.Owner).
			First(&designer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotRegisteredDesign
			}
			return fmt.Errorf("failed to lock designer registry: %w", err)
		}

		sequenceIndex := designer.TotalDesigns
		designAddress, err := s.deriver.Design(input.Owner, sequenceIndex)
		if err != nil {
			return err
		}
		escrowAddress, err := s.deriver.Escrow(designAddress)
		if err != nil {
			return err
		}

		design := schema.DesignCatalogEntry{
			Address:          designAddress,
			OwnerDesigner:    input.Owner,
			DesignerAddress:  designer.Address,
			SequenceIndex:    sequenceIndex,
			ContentHash:      input.ContentHash,
			PricePerUnit:     input.PricePerUnit,
			Inventory:        input.Inventory,
			InitialInventory: input.Inventory,
		}
		if err := tx.Create(&design).Error; err != nil {
			return fmt.Errorf("failed to create design: %w", err)
		}

		escrow := schema.EscrowAccount{
			Address:       escrowAddress,
			DesignAddress: designAddress,
		}
		if err := tx.Create(&escrow).Error; err != nil {
			return fmt.Errorf("failed to create escrow account: %w", err)
		}

		if designer.TotalDesigns, err = domain.AddUnits(designer.TotalDesigns, 1); err != nil {
			return err
		}
		if err := tx.Save(&designer).Error; err != nil {
			return fmt.Errorf("failed to update designer registry: %w", err)
		}
		if platform.TotalDesigns, err = domain.AddUnits(platform.TotalDesigns, 1); err != nil {
			return err
		}
		if err := tx.Save(platform).Error; err != nil {
			return fmt.Errorf("failed to update platform ledger: %w", err)
		}

		result = UploadDesignResult{Design: &design, Escrow: &escrow}

		return s.appendJournal(tx, domain.InstructionUploadDesign, designAddress, &input.Owner, domain.DesignUploaded{
			Owner:         input.Owner,
			SequenceIndex: sequenceIndex,
			ContentHash:   input.ContentHash,
			PricePerUnit:  input.PricePerUnit,
			Inventory:     input.Inventory,
			Escrow:        escrowAddress,
		})
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// UpdatePrice replaces the price of a design. Only the design owner may reprice.
func (s *pgStore) UpdatePrice(ctx context.Context, input UpdatePriceInput) (*schema.DesignCatalogEntry, error) {
	var design *schema.DesignCatalogEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		design, err = s.lockDesign(tx, input.Design)
		if err != nil {
			return err
		}
		if design.OwnerDesigner != input.Owner {
			return domain.ErrNotDesignOwner
		}

		oldPrice := design.PricePerUnit
		design.PricePerUnit = input.NewPrice
		if err := tx.Save(design).Error; err != nil {
			return fmt.Errorf("failed to update design price: %w", err)
		}

		return s.appendJournal(tx, domain.InstructionUpdatePrice, design.Address, &input.Owner, domain.PriceUpdated{
			OldPrice: oldPrice,
			NewPrice: input.NewPrice,
		})
	})
	if err != nil {
		return nil, err
	}

	return design, nil
}

// GetDesign retrieves a design by address
func (s *pgStore) GetDesign(ctx context.Context, address domain.Address) (*schema.DesignCatalogEntry, error) {
	var design schema.DesignCatalogEntry
	err := s.db.WithContext(ctx).Where("address = ?", address).First(&design).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get design: %w", err)
	}

	return &design, nil
}

// ListDesignsByOwner retrieves a designer's designs ordered by sequence index
func (s *pgStore) ListDesignsByOwner(ctx context.Context, owner domain.Address, limit int, offset uint64) ([]schema.DesignCatalogEntry, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.DesignCatalogEntry{}).Where("owner_designer = ?", owner)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count designs: %w", err)
	}

	query = query.Order("sequence_index ASC")
	if offset > 0 {
		query = query.Offset(int(offset)) //nolint:gosec,G115
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var designs []schema.DesignCatalogEntry
	if err := query.Find(&designs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list designs: %w", err)
	}

	return designs, uint64(total), nil //nolint:gosec,G115
}

// =============================================================================
// Purchases
// =============================================================================

// Buy settles a purchase: the buyer pays quantity * price, the fee goes to the treasury and the rest
// to the design escrow, inventory drops and sales counters rise. Price and fee are read under lock.
func (s *pgStore) Buy(ctx context.Context, input BuyInput) (*BuyResult, error) {
	if input.Quantity == 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var result BuyResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		platform, err := s.lockPlatform(tx, lockShare)
		if err != nil {
			return err
		}

		// designer_address never changes, so it is safe to read before locking the designer
		var designerAddresses []domain.Address
		if err := tx.Model(&schema.DesignCatalogEntry{}).
			Where("address = ?", input.Design).
			Pluck("designer_address", &designerAddresses).Error; err != nil {
			return fmt.Errorf("failed to get design: %w", err)
		}
		if len(designerAddresses) == 0 {
			return domain.ErrDesignNotFound
		}

		var designer schema.DesignerRegistry
		if err := tx.Clauses(clause.Locking{Strength: lockUpdate}).
			Where("address = ?", designerAddresses[0]).
			First(&designer).Error; err != nil {
			return fmt.Errorf("failed to lock designer registry: %w", err)
		}

		design, err := s.lockDesign(tx, input.Design)
		if err != nil {
			return err
		}
		escrow, err := s.lockEscrow(tx, input.Design)
		if err != nil {
			return err
		}

		if input.Quantity > design.Inventory {
			return fmt.Errorf("%w: requested %d, %d remaining", domain.ErrInsufficientInventory, input.Quantity, design.Inventory)
		}

		settlement, err := domain.ComputeSettlement(input.Quantity, design.PricePerUnit, platform.FeeBps)
		if err != nil {
			return err
		}

		accounts, err := s.lockAccounts(tx, input.Buyer, platform.Treasury)
		if err != nil {
			return err
		}
		buyer := accounts[input.Buyer]
		if err := debit(buyer, settlement.Total); err != nil {
			return err
		}
		if err := credit(accounts[platform.Treasury], settlement.Fee); err != nil {
			return err
		}

		if escrow.Balance, err = escrow.Balance.CheckedAdd(settlement.Net); err != nil {
			return err
		}
		if escrow.TotalDeposited, err = escrow.TotalDeposited.CheckedAdd(settlement.Net); err != nil {
			return err
		}

		if designer.TotalSales, err = domain.AddUnits(designer.TotalSales, input.Quantity); err != nil {
			return err
		}
		if design.TotalSales, err = domain.AddUnits(design.TotalSales, input.Quantity); err != nil {
			return err
		}
		design.Inventory -= input.Quantity

		if err := s.saveAccounts(tx, accounts); err != nil {
			return err
		}
		if err := tx.Save(escrow).Error; err != nil {
			return fmt.Errorf("failed to update escrow account: %w", err)
		}
		if err := tx.Save(design).Error; err != nil {
			return fmt.Errorf("failed to update design: %w", err)
		}
		if err := tx.Save(&designer).Error; err != nil {
			return fmt.Errorf("failed to update designer registry: %w", err)
		}

		result = BuyResult{
			Design:       design,
			Escrow:       escrow,
			Settlement:   settlement,
			BuyerBalance: buyer.Balance,
		}

		return s.appendJournal(tx, domain.InstructionBuy, design.Address, &input.Buyer, domain.PurchaseEvent{
			Buyer:     input.Buyer,
			Quantity:  input.Quantity,
			UnitPrice: design.PricePerUnit,
			FeeAmount: settlement.Fee,
			NetAmount: settlement.Net,
		})
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// GetEscrowByDesign retrieves the escrow account of a design
func (s *pgStore) GetEscrowByDesign(ctx context.Context, design domain.Address) (*schema.EscrowAccount, error) {
	var escrow schema.EscrowAccount
	err := s.db.WithContext(ctx).Where("design_address = ?", design).First(&escrow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get escrow account: %w", err)
	}

	return &escrow, nil
}

// ListEscrowsWithBalance retrieves escrows holding revenue deposited since their last sweep, after the given address
func (s *pgStore) ListEscrowsWithBalance(ctx context.Context, afterAddress domain.Address, limit int) ([]schema.EscrowAccount, error) {
	query := s.db.WithContext(ctx).Where("balance > 0 AND total_deposited > swept_deposited")
	if afterAddress != "" {
		query = query.Where("address > ?", afterAddress)
	}
	query = query.Order("address ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var escrows []schema.EscrowAccount
	if err := query.Find(&escrows).Error; err != nil {
		return nil, fmt.Errorf("failed to list escrow accounts: %w", err)
	}

	return escrows, nil
}

// MarkEscrowSwept moves the escrow's sweep marker forward to deposited; it never moves back
func (s *pgStore) MarkEscrowSwept(ctx context.Context, escrow domain.Address, deposited domain.Amount) error {
	err := s.db.WithContext(ctx).Model(&schema.EscrowAccount{}).
		Where("address = ? AND swept_deposited < ?", escrow, deposited).
		UpdateColumn("swept_deposited", deposited).Error
	if err != nil {
		return fmt.Errorf("failed to mark escrow swept: %w", err)
	}

	return nil
}

// =============================================================================
// Distributions
// =============================================================================

// DistributeToHolder pays a holder what is still due from a design's escrow:
// entitlement = floor(revenue * balance / supply), payout = min(entitlement - paid, escrow balance).
// The holder balance and supply are always read from the token ledger. A zero payout commits nothing.
func (s *pgStore) DistributeToHolder(ctx context.Context, input DistributeInput) (*DistributionResult, error) {
	result := DistributionResult{Design: input.Design, Holder: input.Holder}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var design schema.DesignCatalogEntry
		if err := tx.Where("address = ?", input.Design).First(&design).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrDesignNotFound
			}
			return fmt.Errorf("failed to get design: %w", err)
		}

		var mint schema.TokenMint
		if err := tx.Where("designer_address = ?", design.DesignerAddress).First(&mint).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrMintNotFound
			}
			return fmt.Errorf("failed to get token mint: %w", err)
		}

		escrow, err := s.lockEscrow(tx, input.Design)
		if err != nil {
			return err
		}

		var holderBalance domain.Amount
		var holding schema.TokenHolding
		err = tx.Clauses(clause.Locking{Strength: lockShare}).
			Where("mint_address = ? AND holder_address = ?", mint.Address, input.Holder).
			First(&holding).Error
		switch {
		case err == nil:
			holderBalance = holding.Balance
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return fmt.Errorf("failed to lock token holding: %w", err)
		}

		if input.HolderBalance != 0 && input.HolderBalance != holderBalance {
			return fmt.Errorf("%w: holder balance %s, ledger %s", domain.ErrStaleHolding, input.HolderBalance, holderBalance)
		}
		if input.TotalSupply != 0 && input.TotalSupply != mint.Supply {
			return fmt.Errorf("%w: total supply %s, ledger %s", domain.ErrStaleHolding, input.TotalSupply, mint.Supply)
		}

		revenue := escrow.TotalDeposited
		if input.ClaimedTotalRevenue != 0 {
			if input.ClaimedTotalRevenue > escrow.TotalDeposited {
				return fmt.Errorf("%w: claimed %s, deposited %s", domain.ErrRevenueClaimTooHigh, input.ClaimedTotalRevenue, escrow.TotalDeposited)
			}
			revenue = input.ClaimedTotalRevenue
		}

		entitlement, err := domain.ComputeEntitlement(revenue, holderBalance, mint.Supply)
		if err != nil {
			return err
		}

		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&schema.DistributionClaim{
			DesignAddress: input.Design,
			HolderAddress: input.Holder,
			MintAddress:   mint.Address,
		}).Error; err != nil {
			return fmt.Errorf("failed to create distribution claim: %w", err)
		}
		var claim schema.DistributionClaim
		if err := tx.Clauses(clause.Locking{Strength: lockUpdate}).
			Where("design_address = ? AND holder_address = ?", input.Design, input.Holder).
			First(&claim).Error; err != nil {
			return fmt.Errorf("failed to lock distribution claim: %w", err)
		}

		payout := domain.ComputePayout(entitlement, claim.Paid, escrow.Balance)

		result.Revenue = revenue
		result.HolderBalance = holderBalance
		result.TotalSupply = mint.Supply
		result.Entitlement = entitlement
		result.AlreadyPaid = claim.Paid
		result.Payout = payout
		result.Escrow = escrow

		if payout == 0 {
			return errNothingToPay
		}

		escrow.Balance -= payout
		escrow.TotalDistributed += payout
		claim.Paid += payout

		accounts, err := s.lockAccounts(tx, input.Holder)
		if err != nil {
			return err
		}
		if err := credit(accounts[input.Holder], payout); err != nil {
			return err
		}

		if err := tx.Save(escrow).Error; err != nil {
			return fmt.Errorf("failed to update escrow account: %w", err)
		}
		if err := tx.Save(&claim).Error; err != nil {
			return fmt.Errorf("failed to update distribution claim: %w", err)
		}
		if err := s.saveAccounts(tx, accounts); err != nil {
			return err
		}

		return s.appendJournal(tx, domain.InstructionDistributeToHolder, input.Design, input.Caller, domain.DistributionPaid{
			Holder:        input.Holder,
			Revenue:       revenue,
			HolderBalance: holderBalance,
			TotalSupply:   mint.Supply,
			Entitlement:   entitlement,
			Payout:        payout,
		})
	})
	if err != nil && !errors.Is(err, errNothingToPay) {
		return nil, err
	}

	return &result, nil
}

// GetClaim retrieves what a design's escrow has already paid a holder
func (s *pgStore) GetClaim(ctx context.Context, design, holder domain.Address) (*schema.DistributionClaim, error) {
	var claim schema.DistributionClaim
	err := s.db.WithContext(ctx).
		Where("design_address = ? AND holder_address = ?", design, holder).
		First(&claim).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get distribution claim: %w", err)
	}

	return &claim, nil
}

// =============================================================================
// Journal and key-value state
// =============================================================================

// GetJournal retrieves journal entries in cursor order
func (s *pgStore) GetJournal(ctx context.Context, filter JournalQueryFilter) ([]*schema.LedgerJournal, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.LedgerJournal{})

	if filter.Anchor != nil {
		query = query.Where("\"cursor\" > ?", *filter.Anchor)
	}
	if len(filter.Subjects) > 0 {
		query = query.Where("subject_address IN ?", filter.Subjects)
	}
	if len(filter.Instructions) > 0 {
		query = query.Where("instruction IN ?", filter.Instructions)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count journal entries: %w", err)
	}

	query = query.Order("\"cursor\" ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var entries []schema.LedgerJournal
	if err := query.Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to query journal entries: %w", err)
	}

	results := make([]*schema.LedgerJournal, 0, len(entries))
	for i := range entries {
		results = append(results, &entries[i])
	}

	return results, uint64(total), nil //nolint:gosec,G115
}

// SetKeyValue sets a key-value pair in the key-value store
func (s *pgStore) SetKeyValue(ctx context.Context, key string, value string) error {
	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}

	err := s.db.WithContext(ctx).Save(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set key-value: %w", err)
	}

	return nil
}

// GetKeyValue retrieves a value by key from the key-value store
func (s *pgStore) GetKeyValue(ctx context.Context, key string) (string, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get key-value: %w", err)
	}

	return kv.Value, nil
}

// =============================================================================
// Locking helpers
//
// Rows are always locked in this order: platform, designer, design, escrow,
// holdings (by holder), claims (by design, holder), accounts (by address).
// =============================================================================

func (s *pgStore) lockPlatform(tx *gorm.DB, strength string) (*schema.PlatformLedger, error) {
	address, err := s.deriver.Platform()
	if err != nil {
		return nil, err
	}

	var platform schema.PlatformLedger
	err = tx.Clauses(clause.Locking{Strength: strength}).Where("address = ?", address).First(&platform).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlatformNotInitialized
		}
		return nil, fmt.Errorf("failed to lock platform ledger: %w", err)
	}

	return &platform, nil
}

func (s *pgStore) lockDesign(tx *gorm.DB, address domain.Address) (*schema.DesignCatalogEntry, error) {
	var design schema.DesignCatalogEntry
	err := tx.Clauses(clause.Locking{Strength: lockUpdate}).Where("address = ?", address).First(&design).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDesignNotFound
		}
		return nil, fmt.Errorf("failed to lock design: %w", err)
	}

	return &design, nil
}

func (s *pgStore) lockEscrow(tx *gorm.DB, design domain.Address) (*schema.EscrowAccount, error) {
	var escrow schema.EscrowAccount
	err := tx.Clauses(clause.Locking{Strength: lockUpdate}).Where("design_address = ?", design).First(&escrow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEscrowNotFound
		}
		return nil, fmt.Errorf("failed to lock escrow account: %w", err)
	}

	return &escrow, nil
}

// lockHoldings locks the existing holdings of the given holders, ordered by holder address
func (s *pgStore) lockHoldings(tx *gorm.DB, mint domain.Address, holders ...domain.Address) (map[domain.Address]*schema.TokenHolding, error) {
	var rows []schema.TokenHolding
	err := tx.Clauses(clause.Locking{Strength: lockUpdate}).
		Where("mint_address = ? AND holder_address IN ?", mint, holders).
		Order("holder_address ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to lock token holdings: %w", err)
	}

	holdings := make(map[domain.Address]*schema.TokenHolding, len(rows))
	for i := range rows {
		holdings[rows[i].HolderAddress] = &rows[i]
	}

	return holdings, nil
}

// lockAccounts creates any missing settlement accounts and locks all of them ordered by address.
// The same address may be passed more than once and maps to a single row.
func (s *pgStore) lockAccounts(tx *gorm.DB, addresses ...domain.Address) (map[domain.Address]*schema.Account, error) {
	unique := make([]domain.Address, 0, len(addresses))
	seen := make(map[domain.Address]struct{}, len(addresses))
	for _, a := range addresses {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		unique = append(unique, a)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })

	missing := make([]schema.Account, len(unique))
	for i, a := range unique {
		missing[i] = schema.Account{Address: a}
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&missing).Error; err != nil {
		return nil, fmt.Errorf("failed to create accounts: %w", err)
	}

	var rows []schema.Account
	err := tx.Clauses(clause.Locking{Strength: lockUpdate}).
		Where("address IN ?", unique).
		Order("address ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts: %w", err)
	}
	if len(rows) != len(unique) {
		return nil, fmt.Errorf("failed to lock accounts: expected %d rows, got %d", len(unique), len(rows))
	}

	accounts := make(map[domain.Address]*schema.Account, len(rows))
	for i := range rows {
		accounts[rows[i].Address] = &rows[i]
	}

	return accounts, nil
}

func (s *pgStore) saveAccounts(tx *gorm.DB, accounts map[domain.Address]*schema.Account) error {
	for _, account := range accounts {
		if err := tx.Save(account).Error; err != nil {
			return fmt.Errorf("failed to update account %s: %w", account.Address, err)
		}
	}
	return nil
}

func debit(account *schema.Account, amount domain.Amount) error {
	balance, ok := account.Balance.CheckedSub(amount)
	if !ok {
		return fmt.Errorf("%w: account %s holds %s, needs %s", domain.ErrInsufficientFunds, account.Address, account.Balance, amount)
	}
	account.Balance = balance
	return nil
}

func credit(account *schema.Account, amount domain.Amount) error {
	balance, err := account.Balance.CheckedAdd(amount)
	if err != nil {
		return err
	}
	account.Balance = balance
	return nil
}

// appendJournal writes the journal entry of an instruction inside its transaction
func (s *pgStore) appendJournal(tx *gorm.DB, instruction domain.Instruction, subject domain.Address, actor *domain.Address, meta interface{}) error {
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to marshal journal meta: %w", err)
	}

	entry := schema.LedgerJournal{
		EventID:        ulid.Make().String(),
		Instruction:    instruction,
		SubjectAddress: subject,
		Actor:          actor,
		Meta:           metaJSON,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to create journal entry: %w", err)
	}

	return nil
}
