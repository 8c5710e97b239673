package schema

import (
	"time"

	"github.com/RackSavant/sistachat-sub000/internal/domain"
)

// EscrowAccount represents the escrow_accounts table - the per-design pool holding net sale revenue
// until it is distributed to token holders. Balance always equals TotalDeposited - TotalDistributed.
type EscrowAccount struct {
	// Address is the derived escrow address (namespace "escrow")
	Address domain.Address `gorm:"column:address;primaryKey;type:text"`
	// DesignAddress references the design the escrow belongs to
	DesignAddress domain.Address `gorm:"column:design_address;not null;uniqueIndex;type:text"`
	// Balance is the undistributed revenue
	Balance domain.Amount `gorm:"column:balance;not null;default:0;type:numeric(20,0)"`
	// TotalDeposited is the net revenue ever credited by purchases
	TotalDeposited domain.Amount `gorm:"column:total_deposited;not null;default:0;type:numeric(20,0)"`
	// TotalDistributed is the revenue ever paid out to holders
	TotalDistributed domain.Amount `gorm:"column:total_distributed;not null;default:0;type:numeric(20,0)"`
	// SweptDeposited is TotalDeposited as of the last sweep that paid every holder.
	// What remains in Balance below it is rounding dust no holder is due.
	SweptDeposited domain.Amount `gorm:"column:swept_deposited;not null;default:0;type:numeric(20,0)"`
	// CreatedAt is the timestamp when the escrow was opened
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when the escrow last moved funds
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the EscrowAccount model
func (EscrowAccount) TableName() string {
	return "escrow_accounts"
}
