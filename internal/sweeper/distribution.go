package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/RackSavant/sistachat-sub000/internal/adapter"
	"github.com/RackSavant/sistachat-sub000/internal/domain"
	"github.com/RackSavant/sistachat-sub000/internal/ledger"
	"github.com/RackSavant/sistachat-sub000/internal/logger"
	"github.com/RackSavant/sistachat-sub000/internal/store"
)

const (
	DEFAULT_SWEEP_INTERVAL = 15 * time.Minute
	DEFAULT_BATCH_SIZE     = 100
	DEFAULT_WORKERS        = 4
)

// DistributionSweeperConfig holds configuration for the distribution sweeper
type DistributionSweeperConfig struct {
	BatchSize      int           // Escrows read per page
	WorkerPoolSize int           // Designs distributed concurrently
	Interval       time.Duration // Sleep between sweep cycles
}

// CycleSummary is the outcome of one sweep cycle
type CycleSummary struct {
	Escrows     int
	Failed      int
	HoldersPaid int
	TotalPaid   domain.Amount
	Duration    time.Duration
}

// distributionSweeper pays out every escrow that holds undistributed revenue
type distributionSweeper struct {
	config    DistributionSweeperConfig
	store     store.Store
	ledger    ledger.Ledger
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewDistributionSweeper creates a new distribution sweeper
func NewDistributionSweeper(
	config DistributionSweeperConfig,
	st store.Store,
	l ledger.Ledger,
	clock adapter.Clock,
) Sweeper {
	if config.BatchSize <= 0 {
		config.BatchSize = DEFAULT_BATCH_SIZE
	}
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = DEFAULT_WORKERS
	}
	if config.Interval <= 0 {
		config.Interval = DEFAULT_SWEEP_INTERVAL
	}

	return &distributionSweeper{
		config:    config,
		store:     st,
		ledger:    l,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *distributionSweeper) Name() string {
	return "distribution-sweeper"
}

// Start runs sweep cycles separated by the configured interval
func (s *distributionSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting distribution sweeper",
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
		zap.Duration("interval", s.config.Interval),
	)

	for {
		if _, err := s.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err)
		}

		if !s.sleep(ctx, s.config.Interval) {
			logger.InfoCtx(ctx, "Distribution sweeper stopping")
			return nil
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *distributionSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping distribution sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Distribution sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Distribution sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// RunOnce pages through every escrow with a positive balance and distributes each design to all holders.
// A failing design is logged and counted; it does not stop the cycle.
func (s *distributionSweeper) RunOnce(ctx context.Context) (*CycleSummary, error) {
	startTime := s.clock.Now()
	logger.InfoCtx(ctx, "Starting sweep cycle")

	var (
		escrows     atomic.Int32
		failed      atomic.Int32
		holdersPaid atomic.Int32
		totalPaid   atomic.Uint64
	)

	pool := pond.NewPool(s.config.WorkerPoolSize, pond.WithContext(ctx))
	defer pool.StopAndWait()

	var after domain.Address
	for {
		page, err := s.store.ListEscrowsWithBalance(ctx, after, s.config.BatchSize)
		if err != nil {
			return nil, fmt.Errorf("failed to list escrows with balance: %w", err)
		}
		if len(page) == 0 {
			break
		}

		group := pool.NewGroup()
		for _, escrow := range page {
			design := escrow.DesignAddress
			address := escrow.Address
			deposited := escrow.TotalDeposited
			escrows.Add(1)
			group.Submit(func() {
				summary, err := s.ledger.DistributeAll(ctx, design, nil)
				if err != nil {
					failed.Add(1)
					logger.ErrorCtx(ctx, fmt.Errorf("failed to distribute design: %w", err),
						zap.String("design", design.String()))
					return
				}
				holdersPaid.Add(int32(summary.HoldersPaid))
				totalPaid.Add(uint64(summary.TotalPaid))

				// the escrow is listed again once new revenue arrives
				if err := s.store.MarkEscrowSwept(ctx, address, deposited); err != nil {
					logger.WarnCtx(ctx, "Failed to mark escrow swept",
						zap.Error(err),
						zap.String("escrow", address.String()))
				}
			})
		}
		if err := group.Wait(); err != nil {
			return nil, err
		}

		if len(page) < s.config.BatchSize {
			break
		}
		after = page[len(page)-1].Address

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	summary := &CycleSummary{
		Escrows:     int(escrows.Load()),
		Failed:      int(failed.Load()),
		HoldersPaid: int(holdersPaid.Load()),
		TotalPaid:   domain.Amount(totalPaid.Load()),
		Duration:    s.clock.Since(startTime),
	}

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", summary.Duration),
		zap.Int("escrows", summary.Escrows),
		zap.Int("failed", summary.Failed),
		zap.Int("holders_paid", summary.HoldersPaid),
		zap.String("total_paid", summary.TotalPaid.String()),
	)

	return summary, nil
}

// sleep sleeps for the given duration but can be interrupted by context cancellation
// Returns true if sleep completed normally, false if interrupted
func (s *distributionSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
