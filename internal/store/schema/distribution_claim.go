package schema

import (
	"time"

	"github.com/RackSavant/sistachat-sub000/internal/domain"
)

// DistributionClaim represents the distribution_claims table - how much of a design's escrow revenue
// has already been paid to a holder
type DistributionClaim struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// DesignAddress references the design whose escrow paid out
	DesignAddress domain.Address `gorm:"column:design_address;not null;type:text;uniqueIndex:idx_distribution_claims_design_holder,priority:1"`
	// HolderAddress is the token holder
	HolderAddress domain.Address `gorm:"column:holder_address;not null;type:text;uniqueIndex:idx_distribution_claims_design_holder,priority:2"`
	// MintAddress is the designer token the claim is computed against
	MintAddress domain.Address `gorm:"column:mint_address;not null;type:text;index"`
	// Paid is the revenue already attributed to the holder
	Paid domain.Amount `gorm:"column:paid;not null;default:0;type:numeric(20,0)"`
	// CreatedAt is the timestamp of the first payout
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when Paid last changed
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the DistributionClaim model
func (DistributionClaim) TableName() string {
	return "distribution_claims"
}
