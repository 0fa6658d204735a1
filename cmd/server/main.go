package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/avant-dev/usersvc/internal/config"
	"github.com/avant-dev/usersvc/internal/data/repos"
	"github.com/avant-dev/usersvc/internal/db"
	"github.com/avant-dev/usersvc/internal/handlers"
	"github.com/avant-dev/usersvc/internal/invoicing"
	"github.com/avant-dev/usersvc/internal/observability"
	"github.com/avant-dev/usersvc/internal/pkg/env"
	"github.com/avant-dev/usersvc/internal/pkg/logger"
	"github.com/avant-dev/usersvc/internal/presentation"
	"github.com/avant-dev/usersvc/internal/server"
	"github.com/avant-dev/usersvc/internal/services"
	"github.com/avant-dev/usersvc/internal/validation"
)

func main() {
	cfg, err := config.Load(env.Get("CONFIG_PATH", "usersvc.yaml"))
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if shutdown := observability.InitTracing(ctx, cfg.Tracing, log); shutdown != nil {
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(flushCtx); err != nil {
				log.Warn("Trace flush failed", "error", err)
			}
		}()
	}

	// Persistence backend per config; the service only ever sees the
	// UserRepo interface.
	userRepo, err := buildUserRepo(cfg, log)
	if err != nil {
		log.Error("Could not init storage backend", "backend", cfg.Storage, "error", err)
		os.Exit(1)
	}

	log.Info("Setting up services...", "storage", cfg.Storage)
	validator := validation.NewUserValidator(log)
	presenter := presentation.NewUserPresenter(log)
	userService := services.NewUserService(userRepo, validator, presenter, log)

	invoiceManager := invoicing.NewManager(
		invoicing.NewTaxCalculator(),
		invoicing.NewInvoiceRenderer(),
		invoicing.NewLogSender(log),
		log,
	)

	router := server.NewRouter(server.RouterConfig{
		UserHandler:    handlers.NewUserHandler(userService),
		InvoiceHandler: handlers.NewInvoiceHandler(invoiceManager),
		CORSOrigins:    cfg.HTTP.CORSOrigins,
		TracingEnabled: cfg.Tracing.Enabled,
	})

	srv := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("HTTP server listening", "addr", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("Server stopped")
}

func buildUserRepo(cfg config.Config, log *logger.Logger) (repos.UserRepo, error) {
	switch strings.ToLower(cfg.Storage) {
	case config.StoragePostgres:
		gdb, err := db.OpenPostgres(cfg.Postgres, log)
		if err != nil {
			return nil, err
		}
		return repos.NewGormUserRepo(gdb, log), nil
	case config.StorageSQLite:
		gdb, err := db.OpenSQLite(cfg.SQLite, log)
		if err != nil {
			return nil, err
		}
		return repos.NewGormUserRepo(gdb, log), nil
	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		return repos.NewRedisUserRepo(client, log), nil
	default:
		return repos.NewMemoryUserRepo(log), nil
	}
}
