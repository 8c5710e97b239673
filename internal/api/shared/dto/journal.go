package dto

import (
	"encoding/json"
	"time"

	"github.com/RackSavant/sistachat-sub000/internal/domain"
	"github.com/RackSavant/sistachat-sub000/internal/store/schema"
)

// JournalEntryResponse represents a ledger journal entry
type JournalEntryResponse struct {
	Cursor      uint64             `json:"cursor"`
	EventID     string             `json:"event_id"`
	Instruction domain.Instruction `json:"instruction"`
	Subject     domain.Address     `json:"subject"`
	Actor       *domain.Address    `json:"actor,omitempty"`
	Meta        json.RawMessage    `json:"meta,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// JournalListResponse represents a page of journal entries
type JournalListResponse struct {
	Entries    []JournalEntryResponse `json:"items"`
	NextAnchor *uint64                `json:"next_anchor,omitempty"` // cursor to pass as anchor for the next page
	Total      uint64                 `json:"total"`
}

// MapJournalEntryToDTO maps a schema.LedgerJournal to JournalEntryResponse
func MapJournalEntryToDTO(entry *schema.LedgerJournal) *JournalEntryResponse {
	dto := &JournalEntryResponse{
		Cursor:      uint64(entry.Cursor), //nolint:gosec,G115
		EventID:     entry.EventID,
		Instruction: entry.Instruction,
		Subject:     entry.SubjectAddress,
		Actor:       entry.Actor,
		CreatedAt:   entry.CreatedAt,
	}

	if entry.Meta != nil {
		dto.Meta = json.RawMessage(entry.Meta)
	}

	return dto
}
