package schema

import (
	"time"

	"github.com/RackSavant/sistachat-sub000/internal/domain"
)

// PlatformLedger represents the platform_ledgers table - the singleton holding the platform authority,
// the treasury destination and the fee rate
type PlatformLedger struct {
	// Address is the derived platform address (namespace "platform")
	Address domain.Address `gorm:"column:address;primaryKey;type:text"`
	// Authority is the wallet allowed to change the platform and withdraw fees
	Authority domain.Address `gorm:"column:authority;not null;type:text"`
	// Treasury is the settlement account credited with purchase fees
	Treasury domain.Address `gorm:"column:treasury;not null;type:text"`
	// FeeBps is the platform fee in basis points (0-10000)
	FeeBps uint16 `gorm:"column:fee_bps;not null;type:integer"`
	// TotalDesigners counts registered designers
	TotalDesigners uint64 `gorm:"column:total_designers;not null;default:0"`
	// TotalDesigns counts uploaded designs across all designers
	TotalDesigns uint64 `gorm:"column:total_designs;not null;default:0"`
	// CreatedAt is the timestamp when the platform was initialized
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when the platform was last changed
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the PlatformLedger model
func (PlatformLedger) TableName() string {
	return "platform_ledgers"
}
