package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/RackSavant/sistachat-sub000/internal/adapter"
	"github.com/RackSavant/sistachat-sub000/internal/config"
	"github.com/RackSavant/sistachat-sub000/internal/derive"
	"github.com/RackSavant/sistachat-sub000/internal/ledger"
	"github.com/RackSavant/sistachat-sub000/internal/logger"
	"github.com/RackSavant/sistachat-sub000/internal/store"
	"github.com/RackSavant/sistachat-sub000/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	once       = flag.Bool("once", false, "Run a single sweep cycle and exit")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		Service:         "sweeper",
		Environment:     cfg.Environment,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Sweeper", zap.Bool("once", *once))

	deriver, err := derive.New(cfg.Ledger.ProgramID)
	if err != nil {
		logger.FatalCtx(ctx, "Invalid program id", zap.Error(err))
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db, deriver)
	distributionSweeper := sweeper.NewDistributionSweeper(
		sweeper.DistributionSweeperConfig{
			BatchSize:      cfg.DistributionSweeper.BatchSize,
			WorkerPoolSize: cfg.DistributionSweeper.Worker.WorkerPoolSize,
			Interval:       cfg.DistributionSweeper.Interval,
		},
		dataStore,
		ledger.New(dataStore),
		adapter.NewClock(),
	)

	// Stop on the first signal in both modes
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	if *once {
		go func() {
			select {
			case sig := <-sigCh:
				logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
				cancel()
			case <-ctx.Done():
			}
		}()

		if _, err := distributionSweeper.RunOnce(ctx); err != nil {
			logger.FatalCtx(ctx, "Sweep cycle failed", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Sweeper stopped")
		return
	}

	// Start the sweeper in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := distributionSweeper.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Give the sweeper time to finish the current cycle
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := distributionSweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}
	cancel()

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
