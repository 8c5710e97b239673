package schema

import (
	"time"

	"github.com/RackSavant/sistachat-sub000/internal/domain"
)

// DesignerRegistry represents the designer_registries table - one profile per designer wallet
type DesignerRegistry struct {
	// Address is the derived profile address (namespace "designer-profile")
	Address domain.Address `gorm:"column:address;primaryKey;type:text"`
	// Owner is the designer's wallet
	Owner domain.Address `gorm:"column:owner;not null;uniqueIndex;type:text"`
	// DisplayName is the public name of the designer
	DisplayName string `gorm:"column:display_name;not null;type:text"`
	// BioURI points to the designer's off-ledger profile
	BioURI string `gorm:"column:bio_uri;not null;type:text"`
	// MintAddress is the designer's fixed-supply token mint
	MintAddress domain.Address `gorm:"column:mint_address;not null;uniqueIndex;type:text"`
	// TotalDesigns is the number of designs uploaded, also the next sequence index
	TotalDesigns uint64 `gorm:"column:total_designs;not null;default:0"`
	// TotalSales is the number of units sold across all designs
	TotalSales uint64 `gorm:"column:total_sales;not null;default:0"`
	// CreatedAt is the timestamp when the designer registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when the profile counters last changed
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the DesignerRegistry model
func (DesignerRegistry) TableName() string {
	return "designer_registries"
}
