package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorStore(t *testing.T) {
	if testDB == nil {
		t.Fatal("Test database not initialized")
	}

	tx := testDB.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() {
		tx.Rollback()
	})

	ctx := context.Background()
	cursors := NewCursorStore(tx)

	cursor, err := cursors.GetJournalCursor(ctx, "primary")
	require.NoError(t, err)
	assert.Zero(t, cursor)

	require.NoError(t, cursors.SetJournalCursor(ctx, "primary", 41))
	require.NoError(t, cursors.SetJournalCursor(ctx, "primary", 42))
	require.NoError(t, cursors.SetJournalCursor(ctx, "secondary", 7))

	cursor, err = cursors.GetJournalCursor(ctx, "primary")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cursor)

	cursor, err = cursors.GetJournalCursor(ctx, "secondary")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cursor)

	// the relay cursor shares the key-value table with the store
	value, err := NewPGStore(tx, testDeriver).GetKeyValue(ctx, "journal_relay_cursor:primary")
	require.NoError(t, err)
	assert.Equal(t, "42", value)
}
