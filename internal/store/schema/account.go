package schema

import (
	"time"

	"github.com/RackSavant/sistachat-sub000/internal/domain"
)

// Account represents the accounts table - a settlement currency balance
type Account struct {
	// Address is the wallet or treasury address
	Address domain.Address `gorm:"column:address;primaryKey;type:text"`
	// Balance is the balance in settlement smallest units
	Balance domain.Amount `gorm:"column:balance;not null;default:0;type:numeric(20,0)"`
	// CreatedAt is the timestamp when the account was first credited
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when the balance last changed
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}
