package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/RackSavant/sistachat-sub000/internal/domain"
)

// LedgerJournal represents the ledger_journal table - append-only log of every committed instruction.
// Rows are written in the same transaction as the state change they describe.
type LedgerJournal struct {
	// Cursor is an auto-incrementing sequence number for pagination and relay progress
	Cursor int64 `gorm:"column:cursor;primaryKey;autoIncrement"`
	// EventID is a ULID identifying the entry, also used as the broker deduplication id
	EventID string `gorm:"column:event_id;not null;uniqueIndex;type:text"`
	// Instruction is the operation that produced the entry
	Instruction domain.Instruction `gorm:"column:instruction;not null;type:text;index"`
	// SubjectAddress is the primary account the instruction changed
	SubjectAddress domain.Address `gorm:"column:subject_address;not null;type:text;index"`
	// Actor is the caller, nil for instructions that do not authenticate the caller
	Actor *domain.Address `gorm:"column:actor;type:text"`
	// Meta holds the instruction payload as JSON
	Meta datatypes.JSON `gorm:"column:meta;type:jsonb"`
	// CreatedAt is the insert time; entries can commit out of cursor order
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the LedgerJournal model
func (LedgerJournal) TableName() string {
	return "ledger_journal"
}

// ToEvent converts the row into the form published to the message broker
func (j LedgerJournal) ToEvent() *domain.LedgerEvent {
	return &domain.LedgerEvent{
		EventID:     j.EventID,
		Cursor:      uint64(j.Cursor), //nolint:gosec,G115
		Instruction: j.Instruction,
		Subject:     j.SubjectAddress,
		Actor:       j.Actor,
		Meta:        []byte(j.Meta),
		CreatedAt:   j.CreatedAt,
	}
}
