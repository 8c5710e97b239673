package schema

import (
	"time"

	"github.com/RackSavant/sistachat-sub000/internal/domain"
)

// TokenMint represents the token_mints table - a designer's fixed-supply ownership token
type TokenMint struct {
	// Address is the derived mint address (namespace "designer-mint")
	Address domain.Address `gorm:"column:address;primaryKey;type:text"`
	// DesignerAddress references the designer registry that owns the mint
	DesignerAddress domain.Address `gorm:"column:designer_address;not null;uniqueIndex;type:text"`
	// Supply is the raw total supply, fixed at creation
	Supply domain.Amount `gorm:"column:supply;not null;type:numeric(20,0)"`
	// Decimals is the number of fractional decimal places of the token
	Decimals int32 `gorm:"column:decimals;not null;type:smallint"`
	// CreatedAt is the timestamp when the supply was minted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the TokenMint model
func (TokenMint) TableName() string {
	return "token_mints"
}

// TokenHolding represents the token_holdings table - the balance of one holder in one mint
type TokenHolding struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// MintAddress references the token mint
	MintAddress domain.Address `gorm:"column:mint_address;not null;type:text;uniqueIndex:idx_token_holdings_mint_holder,priority:1"`
	// HolderAddress is the wallet (or derived pool) holding the units
	HolderAddress domain.Address `gorm:"column:holder_address;not null;type:text;uniqueIndex:idx_token_holdings_mint_holder,priority:2"`
	// Balance is the raw number of units held
	Balance domain.Amount `gorm:"column:balance;not null;type:numeric(20,0)"`
	// CreatedAt is the timestamp when the holder first received units
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when the balance last changed
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the TokenHolding model
func (TokenHolding) TableName() string {
	return "token_holdings"
}
