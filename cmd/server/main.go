package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"abgs/internal/checkin"
	checkinhandler "abgs/internal/checkin/handler"
	checkinmetrics "abgs/internal/checkin/metrics"
	checkinstore "abgs/internal/checkin/store/checkin"
	"abgs/internal/platform/config"
	"abgs/internal/platform/database"
	"abgs/internal/platform/httpserver"
	"abgs/internal/platform/logger"
	httptransport "abgs/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal/checkin.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	store, ready, cleanup, err := buildStore(cfg)
	if err != nil {
		log.Error("failed to initialize storage", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	service := checkin.NewService(store)
	metrics := checkinmetrics.New(prometheus.DefaultRegisterer)
	handler := checkinhandler.New(service, log, metrics)
	router := httptransport.NewRouter(handler, log, ready)

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting abgs", "addr", cfg.Addr, "store_backend", cfg.StoreBackend)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("abgs stopped")
}

// buildStore constructs the configured storage backend and its readiness
// check. The store instance is created once here and injected; nothing
// reaches it through package-level state.
func buildStore(cfg config.Server) (checkin.Store, httptransport.ReadyCheck, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return checkinstore.NewInMemoryCheckInStore(), nil, func() {}, nil

	case config.BackendPostgres:
		db, err := database.Init("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.RunMigrations(db.DB, "postgres"); err != nil {
			_ = database.Close(db)
			return nil, nil, nil, err
		}
		cleanup := func() { _ = database.Close(db) }
		return checkinstore.NewPostgres(db.DB), db.PingContext, cleanup, nil

	case config.BackendSQLite:
		db, err := database.Init("sqlite", cfg.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.RunMigrations(db.DB, "sqlite"); err != nil {
			_ = database.Close(db)
			return nil, nil, nil, err
		}
		cleanup := func() { _ = database.Close(db) }
		return checkinstore.NewSQLite(db), db.PingContext, cleanup, nil

	default:
		return nil, nil, nil, errors.New("unknown store backend: " + cfg.StoreBackend)
	}
}
