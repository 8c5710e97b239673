package relay_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RackSavant/sistachat-sub000/internal/domain"
	"github.com/RackSavant/sistachat-sub000/internal/logger"
	"github.com/RackSavant/sistachat-sub000/internal/mocks"
	"github.com/RackSavant/sistachat-sub000/internal/relay"
	"github.com/RackSavant/sistachat-sub000/internal/store"
	"github.com/RackSavant/sistachat-sub000/internal/store/schema"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

// testRelayMocks contains all the mocks needed for testing the relay
type testRelayMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	cursors   *mocks.MockCursorStore
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
	relay     relay.Relay
}

func setupTestRelay(t *testing.T, cfg relay.Config) *testRelayMocks {
	ctrl := gomock.NewController(t)

	tm := &testRelayMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		cursors:   mocks.NewMockCursorStore(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}
	tm.relay = relay.NewRelay(tm.store, tm.cursors, tm.publisher, cfg, tm.clock)

	tm.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Millisecond).AnyTimes()

	return tm
}

func journalEntries(cursors ...int64) []*schema.LedgerJournal {
	entries := make([]*schema.LedgerJournal, len(cursors))
	for i, c := range cursors {
		entries[i] = &schema.LedgerJournal{
			Cursor:         c,
			EventID:        "evt-" + string(rune('a'+i)),
			Instruction:    domain.InstructionBuy,
			SubjectAddress: "UhVSvCWkoBe3Gftuw16diggQb8DAsTkRnqJsKSxeVfo",
			CreatedAt:      time.Now(),
		}
	}
	return entries
}

// anchorMatcher matches a journal filter by its anchor
type anchorMatcher struct {
	anchor uint64
}

func anchorIs(anchor uint64) gomock.Matcher {
	return anchorMatcher{anchor: anchor}
}

func (m anchorMatcher) Matches(x interface{}) bool {
	f, ok := x.(store.JournalQueryFilter)
	return ok && f.Anchor != nil && *f.Anchor == m.anchor
}

func (m anchorMatcher) String() string {
	return fmt.Sprintf("journal filter anchored at %d", m.anchor)
}

func TestRelay_RunOnce_PublishesInCursorOrder(t *testing.T) {
	tm := setupTestRelay(t, relay.Config{Name: "primary", BatchSize: 10})
	ctx := context.Background()

	tm.cursors.EXPECT().GetJournalCursor(ctx, "primary").Return(uint64(4), nil)
	tm.store.EXPECT().GetJournal(ctx, anchorIs(4)).Return(journalEntries(5, 6, 7), uint64(3), nil)

	var published []uint64
	tm.publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.LedgerEvent) error {
			published = append(published, event.Cursor)
			return nil
		}).
		Times(3)
	tm.cursors.EXPECT().SetJournalCursor(ctx, "primary", uint64(7)).Return(nil)

	n, err := tm.relay.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []uint64{5, 6, 7}, published)
}

func TestRelay_RunOnce_StopsAtCursorGap(t *testing.T) {
	tm := setupTestRelay(t, relay.Config{Name: "primary", BatchSize: 10, GapTimeout: time.Minute})
	ctx := context.Background()

	// 11 belongs to a transaction that has not committed yet
	tm.cursors.EXPECT().GetJournalCursor(ctx, "primary").Return(uint64(9), nil)
	tm.store.EXPECT().GetJournal(ctx, anchorIs(9)).Return(journalEntries(10, 12, 13), uint64(3), nil)

	var published []uint64
	tm.publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.LedgerEvent) error {
			published = append(published, event.Cursor)
			return nil
		})
	tm.cursors.EXPECT().SetJournalCursor(ctx, "primary", uint64(10)).Return(nil)

	n, err := tm.relay.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []uint64{10}, published)
}

func TestRelay_RunOnce_GapBeforeFirstEntry(t *testing.T) {
	tm := setupTestRelay(t, relay.Config{Name: "primary", GapTimeout: time.Minute})
	ctx := context.Background()

	tm.cursors.EXPECT().GetJournalCursor(ctx, "primary").Return(uint64(9), nil)
	tm.store.EXPECT().GetJournal(ctx, anchorIs(9)).Return(journalEntries(11), uint64(1), nil)

	n, err := tm.relay.RunOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRelay_RunOnce_SkipsGapAfterTimeout(t *testing.T) {
	tm := setupTestRelay(t, relay.Config{Name: "primary", GapTimeout: time.Minute})
	ctx := context.Background()

	// 10 was rolled back long ago and will never appear
	entries := journalEntries(11, 12)
	for _, entry := range entries {
		entry.CreatedAt = time.Now().Add(-2 * time.Minute)
	}
	tm.cursors.EXPECT().GetJournalCursor(ctx, "primary").Return(uint64(9), nil)
	tm.store.EXPECT().GetJournal(ctx, anchorIs(9)).Return(entries, uint64(2), nil)
	tm.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	tm.cursors.EXPECT().SetJournalCursor(ctx, "primary", uint64(12)).Return(nil)

	n, err := tm.relay.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRelay_RunOnce_NothingNew(t *testing.T) {
	tm := setupTestRelay(t, relay.Config{Name: "primary"})
	ctx := context.Background()

	tm.cursors.EXPECT().GetJournalCursor(ctx, "primary").Return(uint64(12), nil)
	tm.store.EXPECT().GetJournal(ctx, anchorIs(12)).Return(nil, uint64(0), nil)

	n, err := tm.relay.RunOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRelay_RunOnce_StartCursorOverridesSavedCursor(t *testing.T) {
	tm := setupTestRelay(t, relay.Config{Name: "primary", StartCursor: 100})
	ctx := context.Background()

	tm.cursors.EXPECT().GetJournalCursor(ctx, "primary").Return(uint64(3), nil)
	tm.store.EXPECT().GetJournal(ctx, anchorIs(100)).Return(nil, uint64(0), nil)

	_, err := tm.relay.RunOnce(ctx)
	require.NoError(t, err)
}

func TestRelay_RunOnce_SavesProgressBeforeFailure(t *testing.T) {
	tm := setupTestRelay(t, relay.Config{Name: "primary", PublishTimeout: 50 * time.Millisecond})
	ctx := context.Background()

	tm.cursors.EXPECT().GetJournalCursor(ctx, "primary").Return(uint64(0), nil)
	tm.store.EXPECT().GetJournal(ctx, anchorIs(0)).Return(journalEntries(1, 2, 3), uint64(3), nil)

	gomock.InOrder(
		tm.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil),
		tm.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(errors.New("nats: timeout")).MinTimes(1),
	)
	tm.cursors.EXPECT().SetJournalCursor(ctx, "primary", uint64(1)).Return(nil)

	n, err := tm.relay.RunOnce(ctx)
	assert.ErrorContains(t, err, "journal entry 2")
	assert.Equal(t, 1, n)
}

func TestRelay_RunOnce_CursorReadError(t *testing.T) {
	tm := setupTestRelay(t, relay.Config{Name: "primary"})
	ctx := context.Background()

	tm.cursors.EXPECT().GetJournalCursor(ctx, "primary").Return(uint64(0), errors.New("connection refused"))

	_, err := tm.relay.RunOnce(ctx)
	assert.ErrorContains(t, err, "failed to get journal cursor")
}

func TestRelay_Run_StopsOnCancel(t *testing.T) {
	tm := setupTestRelay(t, relay.Config{Name: "primary", PollInterval: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())

	tm.cursors.EXPECT().GetJournalCursor(gomock.Any(), "primary").Return(uint64(0), nil)
	tm.store.EXPECT().GetJournal(gomock.Any(), gomock.Any()).Return(nil, uint64(0), nil)
	tm.clock.EXPECT().After(time.Hour).DoAndReturn(func(time.Duration) <-chan time.Time {
		cancel()
		return make(chan time.Time)
	})

	err := tm.relay.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRelay_Close(t *testing.T) {
	tm := setupTestRelay(t, relay.Config{Name: "primary"})
	tm.publisher.EXPECT().Close()
	tm.relay.Close()
}
