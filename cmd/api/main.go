package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bryanwahyu/legal-triage/internal/application"
	"github.com/bryanwahyu/legal-triage/internal/application/assistant"
	"github.com/bryanwahyu/legal-triage/internal/application/triage"
	"github.com/bryanwahyu/legal-triage/internal/config"
	domainai "github.com/bryanwahyu/legal-triage/internal/domain/ai"
	"github.com/bryanwahyu/legal-triage/internal/domain/archive"
	"github.com/bryanwahyu/legal-triage/internal/domain/feedback"
	"github.com/bryanwahyu/legal-triage/internal/domain/jurisdiction"
	"github.com/bryanwahyu/legal-triage/internal/domain/legal"
	"github.com/bryanwahyu/legal-triage/internal/infra/ai/demo"
	"github.com/bryanwahyu/legal-triage/internal/infra/ai/openai"
	mysqlp "github.com/bryanwahyu/legal-triage/internal/infra/db/mysql"
	"github.com/bryanwahyu/legal-triage/internal/infra/db/postgres"
	"github.com/bryanwahyu/legal-triage/internal/infra/httpserver"
	minioStore "github.com/bryanwahyu/legal-triage/internal/infra/storage"
	"github.com/bryanwahyu/legal-triage/internal/logger"
	"github.com/bryanwahyu/legal-triage/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}
	log := logger.Setup(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// static tables, validated on construction
	kb := legal.Default()
	idx := jurisdiction.Default()

	clock := application.SystemClock{}
	checkers := map[string]middleware.HealthChecker{}

	repo, closeArchive, err := openArchive(ctx, cfg, checkers)
	if err != nil {
		return fmt.Errorf("archive init: %w", err)
	}
	defer closeArchive()

	triageSvc := &triage.Service{
		Knowledge: kb,
		Index:     idx,
		Ledger:    feedback.NewLedger(cfg.Feedback.Capacity, clock),
		Clock:     clock,
		Archive:   repo,
		Log:       log.With().Str("component", "triage").Logger(),
	}

	var client domainai.Client
	if cfg.AIEnabled() {
		if cfg.AI.BaseURL != "" {
			client = openai.NewClientWithBaseURL(cfg.AI.APIKey, cfg.AI.Model, cfg.AI.BaseURL)
		} else {
			client = openai.NewClient(cfg.AI.APIKey, cfg.AI.Model)
		}
	}
	assistantSvc := assistant.NewService(client, demo.NewClient(), clock, log.With().Str("component", "assistant").Logger())
	assistantSvc.Timeout = cfg.AI.Timeout

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	handler := httpserver.NewRouter(triageSvc, assistantSvc, httpserver.Options{
		CORSOrigins:    cfg.CORS.AllowedOrigins,
		AdminKeys:      cfg.Admin.APIKeys,
		RateLimiter:    limiter,
		HealthCheckers: checkers,
		Log:            log,
		Debug:          cfg.App.Env == "development",
	})

	writeTimeout := cfg.Server.WriteTimeout
	if cfg.AIEnabled() && cfg.AI.Timeout+5*time.Second > writeTimeout {
		writeTimeout = cfg.AI.Timeout + 5*time.Second
	}
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().
			Str("addr", srv.Addr).
			Str("env", cfg.App.Env).
			Bool("ai_enabled", cfg.AIEnabled()).
			Str("archive", cfg.Archive.Driver).
			Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	if limiter != nil {
		g.Go(func() error {
			limiter.Run(gctx)
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// openArchive wires the configured archive backend; nil repository means disabled.
func openArchive(ctx context.Context, cfg *config.Config, checkers map[string]middleware.HealthChecker) (archive.Repository, func(), error) {
	noop := func() {}
	switch cfg.Archive.Driver {
	case config.ArchiveMySQL:
		db, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			return nil, noop, err
		}
		repo := mysqlp.NewArchiveRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		checkers["archive"] = &middleware.DatabaseHealthChecker{DB: db}
		return repo, func() { _ = db.Close() }, nil

	case config.ArchivePostgres:
		db, err := postgres.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			return nil, noop, err
		}
		repo := postgres.NewArchiveRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		checkers["archive"] = &middleware.DatabaseHealthChecker{DB: db}
		return repo, func() { _ = db.Close() }, nil

	case config.ArchiveMinio:
		m := cfg.Archive.Minio
		store, err := minioStore.New(ctx, m.Endpoint, m.Region, m.BucketName, m.AccessKey, m.SecretKey, m.UseSSL)
		if err != nil {
			return nil, noop, err
		}
		checkers["archive"] = store
		return store, noop, nil
	}
	return nil, noop, nil
}
