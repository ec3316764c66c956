package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/frontdesk/clinic/internal/config"
	"github.com/frontdesk/clinic/internal/domain/examination"
	"github.com/frontdesk/clinic/internal/domain/patient"
	"github.com/frontdesk/clinic/internal/domain/session"
	"github.com/frontdesk/clinic/internal/platform/db"
	"github.com/frontdesk/clinic/internal/platform/kvstore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "clinic",
		Short:         "Front office patient registry and intake",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(patientsCmd())
	rootCmd.AddCommand(intakeCmd())
	rootCmd.AddCommand(sessionCmd())
	rootCmd.AddCommand(storeCmd())
	return rootCmd
}

// app bundles the core components wired to the configured store.
type app struct {
	cfg      *config.Config
	logger   zerolog.Logger
	store    kvstore.Store
	pool     *pgxpool.Pool
	registry *patient.Registry
	intake   *examination.Engine
	session  *session.Session
	closers  []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func newLogger(cfg *config.Config, w io.Writer) zerolog.Logger {
	logger := zerolog.New(w).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}
	return logger.Level(level)
}

// openApp loads config, connects the store backend and builds the registry,
// intake engine and session on top of it.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, logger: newLogger(cfg, os.Stderr)}

	if err := a.openStore(ctx); err != nil {
		a.Close()
		return nil, err
	}

	a.registry = patient.NewRegistry(a.store, a.logger)
	if cfg.IDStrategy == config.IDStrategyUUID {
		a.registry.SetIDGenerator(patient.UUIDGenerator{})
	}

	a.intake = examination.NewEngine(a.store, a.logger)
	if cfg.RequirePatientOnCommit {
		a.intake.SetPatientLookup(a.registry)
	}

	a.session = session.New(a.store, a.logger)
	return a, nil
}

func (a *app) openStore(ctx context.Context) error {
	switch a.cfg.StoreBackend {
	case config.BackendMemory:
		a.store = kvstore.NewMemoryStore()
	case config.BackendFile:
		s, err := kvstore.NewFileStore(a.cfg.DataDir)
		if err != nil {
			return err
		}
		a.store = s
	case config.BackendRedis:
		client, err := kvstore.NewRedisClient(a.cfg.RedisURL)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, func() { client.Close() })
		s := kvstore.NewRedisStore(client, a.cfg.RedisPrefix)
		if err := s.Ping(ctx); err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		a.store = s
	case config.BackendPostgres:
		pool, err := db.NewPool(ctx, a.cfg.DatabaseURL, a.cfg.DBMaxConns, a.cfg.DBMinConns)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, pool.Close)
		if err := db.EnsureSchema(ctx, pool); err != nil {
			return err
		}
		a.pool = pool
		a.store = kvstore.NewPostgresStore(pool)
	default:
		return fmt.Errorf("unknown store backend %q", a.cfg.StoreBackend)
	}
	a.logger.Debug().Str("backend", a.cfg.StoreBackend).Msg("store opened")
	return nil
}

// withApp adapts a RunE body that needs the wired core.
func withApp(fn func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(cmd, args, a)
	}
}
