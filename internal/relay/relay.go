package relay

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/RackSavant/sistachat-sub000/internal/adapter"
	"github.com/RackSavant/sistachat-sub000/internal/logger"
	"github.com/RackSavant/sistachat-sub000/internal/messaging"
	"github.com/RackSavant/sistachat-sub000/internal/store"
)

// Config holds the configuration for the journal relay
type Config struct {
	// Name identifies the relay's cursor, so several relays can feed different brokers
	Name string
	// StartCursor skips every journal entry up to and including this cursor when it is ahead of the saved one
	StartCursor uint64
	// BatchSize is the number of journal entries read per round
	BatchSize int
	// PollInterval is the wait between rounds once the relay has caught up
	PollInterval time.Duration
	// PublishTimeout bounds the retries of a single event
	PublishTimeout time.Duration
	// GapTimeout is how long a missing cursor holds the relay back before it is treated as a rolled-back insert
	GapTimeout time.Duration
}

// Relay defines the interface for the journal relay
//
//go:generate mockgen -source=relay.go -destination=../mocks/relay.go -package=mocks -mock_names=Relay=MockRelay
type Relay interface {
	// Run publishes journal entries until ctx is cancelled
	Run(ctx context.Context) error
	// RunOnce publishes the next batch of journal entries and returns how many were published
	RunOnce(ctx context.Context) (int, error)
	// Close closes the publisher
	Close()
}

// relay forwards committed journal entries to the message broker in cursor order.
// Delivery is at-least-once; the broker drops duplicates by event id.
//
// Cursors are taken from a sequence at insert time, so a later cursor can commit before an
// earlier one. The relay never moves past a missing cursor until the entry after it is older
// than GapTimeout.
type relay struct {
	store     store.Store
	cursors   store.CursorStore
	publisher messaging.Publisher
	config    Config
	clock     adapter.Clock
}

// NewRelay creates a new journal relay
func NewRelay(
	st store.Store,
	cursors store.CursorStore,
	pub messaging.Publisher,
	cfg Config,
	clock adapter.Clock,
) Relay {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = 30 * time.Second
	}
	if cfg.GapTimeout <= 0 {
		cfg.GapTimeout = time.Minute
	}

	return &relay{
		store:     st,
		cursors:   cursors,
		publisher: pub,
		config:    cfg,
		clock:     clock,
	}
}

// Run publishes journal entries until ctx is cancelled
func (r *relay) Run(ctx context.Context) error {
	logger.InfoCtx(ctx, "Starting journal relay", zap.String("relay", r.config.Name), zap.Int("batch_size", r.config.BatchSize))

	for {
		published, err := r.RunOnce(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.ErrorCtx(ctx, err, zap.String("relay", r.config.Name))
		}

		// keep draining while full batches come back
		if err == nil && published == r.config.BatchSize {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.clock.After(r.config.PollInterval):
		}
	}
}

// RunOnce publishes the next batch of journal entries and saves the cursor of the last one published
func (r *relay) RunOnce(ctx context.Context) (int, error) {
	cursor, err := r.cursors.GetJournalCursor(ctx, r.config.Name)
	if err != nil {
		return 0, fmt.Errorf("failed to get journal cursor: %w", err)
	}
	if r.config.StartCursor > cursor {
		logger.InfoCtx(ctx, "Skipping to configured cursor",
			zap.String("relay", r.config.Name),
			zap.Uint64("saved", cursor),
			zap.Uint64("start", r.config.StartCursor))
		cursor = r.config.StartCursor
	}

	entries, _, err := r.store.GetJournal(ctx, store.JournalQueryFilter{
		Anchor: &cursor,
		Limit:  r.config.BatchSize,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to read journal: %w", err)
	}
	if len(entries) == 0 {
		return 0, nil
	}

	start := r.clock.Now()
	published := 0
	last := cursor
	var publishErr error
	for _, entry := range entries {
		event := entry.ToEvent()
		if event.Cursor != last+1 {
			if start.Sub(event.CreatedAt) < r.config.GapTimeout {
				logger.DebugCtx(ctx, "Waiting for uncommitted journal entries",
					zap.String("relay", r.config.Name),
					zap.Uint64("missing_from", last+1),
					zap.Uint64("next", event.Cursor))
				break
			}
			logger.WarnCtx(ctx, "Skipping journal gap",
				zap.String("relay", r.config.Name),
				zap.Uint64("missing_from", last+1),
				zap.Uint64("missing_to", event.Cursor-1))
		}

		if publishErr = r.publish(ctx, func(ctx context.Context) error {
			return r.publisher.PublishEvent(ctx, event)
		}); publishErr != nil {
			publishErr = fmt.Errorf("failed to publish journal entry %d: %w", event.Cursor, publishErr)
			break
		}
		published++
		last = event.Cursor
	}

	if last > cursor {
		if err := r.cursors.SetJournalCursor(ctx, r.config.Name, last); err != nil {
			// the next round republishes the batch and the broker drops the duplicates
			logger.WarnCtx(ctx, "Failed to save journal cursor", zap.Error(err), zap.Uint64("cursor", last))
		}
	}

	logger.DebugCtx(ctx, "Published journal batch",
		zap.String("relay", r.config.Name),
		zap.Int("published", published),
		zap.Uint64("cursor", last),
		zap.Duration("duration", r.clock.Since(start)))

	return published, publishErr
}

// publish retries fn with exponential backoff until it succeeds, ctx ends or PublishTimeout elapses
func (r *relay) publish(ctx context.Context, fn func(ctx context.Context) error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = r.config.PublishTimeout

	return backoff.RetryNotify(func() error {
		return fn(ctx)
	}, backoff.WithContext(b, ctx), func(err error, wait time.Duration) {
		logger.WarnCtx(ctx, "Publish failed, retrying", zap.Error(err), zap.Duration("wait", wait))
	})
}

// Close closes the publisher
func (r *relay) Close() {
	r.publisher.Close()
}
