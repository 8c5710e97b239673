package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/RackSavant/sistachat-sub000/internal/store/schema"
)

// CursorStore defines the interface for storing and retrieving journal relay cursors
//
//go:generate mockgen -source=cursor_store.go -destination=../mocks/cursor_store.go -package=mocks -mock_names=CursorStore=MockCursorStore
type CursorStore interface {
	// GetJournalCursor retrieves the last journal cursor published by a relay
	GetJournalCursor(ctx context.Context, relay string) (uint64, error)
	// SetJournalCursor stores the last journal cursor published by a relay
	SetJournalCursor(ctx context.Context, relay string, cursor uint64) error
}

type cursorStore struct {
	db *gorm.DB
}

// NewCursorStore creates a new cursor store
func NewCursorStore(db *gorm.DB) CursorStore {
	return &cursorStore{db: db}
}

func journalCursorKey(relay string) string {
	return fmt.Sprintf("journal_relay_cursor:%s", relay)
}

// GetJournalCursor retrieves the last journal cursor published by a relay, 0 when it never ran
func (s *cursorStore) GetJournalCursor(ctx context.Context, relay string) (uint64, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", journalCursorKey(relay)).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get journal cursor: %w", err)
	}

	cursor, err := strconv.ParseUint(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse journal cursor: %w", err)
	}

	return cursor, nil
}

// SetJournalCursor stores the last journal cursor published by a relay
func (s *cursorStore) SetJournalCursor(ctx context.Context, relay string, cursor uint64) error {
	kv := schema.KeyValueStore{
		Key:   journalCursorKey(relay),
		Value: strconv.FormatUint(cursor, 10),
	}

	if err := s.db.WithContext(ctx).Save(&kv).Error; err != nil {
		return fmt.Errorf("failed to set journal cursor: %w", err)
	}

	return nil
}
