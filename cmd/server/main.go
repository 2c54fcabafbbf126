package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addresshandler "cadastro/internal/address/handler"
	addressmetrics "cadastro/internal/address/metrics"
	addressservice "cadastro/internal/address/service"
	addressstore "cadastro/internal/address/store"
	personhandler "cadastro/internal/person/handler"
	personmetrics "cadastro/internal/person/metrics"
	personservice "cadastro/internal/person/service"
	personstore "cadastro/internal/person/store"
	"cadastro/internal/platform/config"
	"cadastro/internal/platform/database"
	"cadastro/internal/platform/health"
	"cadastro/internal/platform/logger"
	"cadastro/internal/platform/middleware"
	"cadastro/internal/platform/tracing"
)

// main wires config, logger, stores, services, and the HTTP router, then
// runs the server until SIGINT/SIGTERM. Business logic lives in the
// internal service packages.
func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	if err := run(cfg, log); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	pool, err := database.New(database.Config{
		URL:             cfg.Database.URL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer pool.Close() //nolint:errcheck // process is exiting

	var (
		addresses addressservice.AddressStore
		persons   personservice.PersonStore
		resolver  personservice.AddressResolver
	)
	if pool != nil {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.RequestTimeout)
		defer cancel()
		if err := database.EnsureSchema(ctx, pool.DB()); err != nil {
			return err
		}
		pgAddresses := addressstore.NewPostgres(pool.DB())
		addresses = pgAddresses
		resolver = pgAddresses
		persons = personstore.NewPostgres(pool.DB())
		log.Info("using postgres stores")
	} else {
		memAddresses := addressstore.NewMemory()
		addresses = memAddresses
		resolver = memAddresses
		// The memory person store borrows the address lookup so creates and
		// updates fail on dangling references the way the database FK would.
		persons = personstore.NewMemory(memAddresses.Exists)
		log.Info("no DATABASE_URL set, using in-memory stores")
	}

	tracer := tracing.NewOTel()
	addressSvc := addressservice.New(addresses,
		addressservice.WithLogger(log),
		addressservice.WithMetrics(addressmetrics.New()),
		addressservice.WithTracer(tracer),
	)
	personSvc := personservice.New(persons, resolver,
		personservice.WithLogger(log),
		personservice.WithMetrics(personmetrics.New()),
		personservice.WithTracer(tracer),
	)

	healthHandler := health.New(cfg.Env)
	if pool != nil {
		healthHandler.RegisterCheck("database", pool.Health)
	}

	router := newRouter(cfg, log,
		addresshandler.New(addressSvc, log),
		personhandler.New(personSvc, log),
		healthHandler,
	)

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting http server", "addr", cfg.HTTP.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down server gracefully", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	log.Info("server stopped")
	return nil
}

func newRouter(cfg *config.Config, log *slog.Logger, handlers ...interface{ Register(chi.Router) }) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.NewMetrics().Handler)
	r.Use(middleware.Timeout(cfg.HTTP.RequestTimeout))
	r.Use(middleware.ContentTypeJSON)

	for _, h := range handlers {
		h.Register(r)
	}
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
