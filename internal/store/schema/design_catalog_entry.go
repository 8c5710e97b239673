package schema

import (
	"time"

	"github.com/RackSavant/sistachat-sub000/internal/domain"
)

// DesignCatalogEntry represents the design_catalog_entries table - a priced, inventoried design listing
type DesignCatalogEntry struct {
	// Address is the derived design address (namespace "design-meta" with owner and sequence index)
	Address domain.Address `gorm:"column:address;primaryKey;type:text"`
	// OwnerDesigner is the designer wallet that uploaded the design; never changes
	OwnerDesigner domain.Address `gorm:"column:owner_designer;not null;type:text;index"`
	// DesignerAddress references the designer registry
	DesignerAddress domain.Address `gorm:"column:designer_address;not null;type:text;uniqueIndex:idx_design_catalog_designer_seq,priority:1"`
	// SequenceIndex is the designer's design counter at upload time
	SequenceIndex uint64 `gorm:"column:sequence_index;not null;uniqueIndex:idx_design_catalog_designer_seq,priority:2"`
	// ContentHash is the 32-byte digest of the artwork
	ContentHash domain.ContentHash `gorm:"column:content_hash;not null;type:bytea"`
	// PricePerUnit is the price of one unit in settlement smallest units
	PricePerUnit domain.Amount `gorm:"column:price_per_unit;not null;type:numeric(20,0)"`
	// Inventory is the number of units still for sale
	Inventory uint64 `gorm:"column:inventory;not null"`
	// InitialInventory is the number of units listed at upload
	InitialInventory uint64 `gorm:"column:initial_inventory;not null"`
	// TotalSales is the number of units sold
	TotalSales uint64 `gorm:"column:total_sales;not null;default:0"`
	// CreatedAt is the timestamp when the design was uploaded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when price or inventory last changed
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the DesignCatalogEntry model
func (DesignCatalogEntry) TableName() string {
	return "design_catalog_entries"
}

// State returns the sale state derived from inventory
func (d DesignCatalogEntry) State() domain.DesignState {
	return domain.DesignStateOf(d.Inventory, d.InitialInventory)
}
