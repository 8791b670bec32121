package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/mousa-mostafa/capitone-Furniture/internal/availability"
	"github.com/mousa-mostafa/capitone-Furniture/internal/config"
	"github.com/mousa-mostafa/capitone-Furniture/internal/db"
	"github.com/mousa-mostafa/capitone-Furniture/internal/httpserver"
	catalogrepo "github.com/mousa-mostafa/capitone-Furniture/internal/repository/catalog"
	sessionrepo "github.com/mousa-mostafa/capitone-Furniture/internal/repository/session"
	"github.com/mousa-mostafa/capitone-Furniture/internal/seed"
	cartsvc "github.com/mousa-mostafa/capitone-Furniture/internal/service/cart"
	catalogsvc "github.com/mousa-mostafa/capitone-Furniture/internal/service/catalog"
	customersvc "github.com/mousa-mostafa/capitone-Furniture/internal/service/customer"
	logx "github.com/mousa-mostafa/capitone-Furniture/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("load config")
	}
	logx.Init(cfg.Environment)

	ctx := context.Background()

	// The catalog ships with the binary; Postgres is an opt-in backend for
	// deployments that manage products outside the code.
	var dbpool *pgxpool.Pool
	var catalog catalogrepo.Repository
	if cfg.CatalogDSN != "" {
		dbpool, err = db.Connect(ctx, cfg.CatalogDSN)
		if err != nil {
			logx.Fatal().Err(err).Msg("connect to catalog db")
		}
		defer dbpool.Close()
		catalog = catalogrepo.NewPostgres(dbpool)
		logx.Info().Msg("catalog: using postgres backend")
	} else {
		catalog = catalogrepo.NewMemory(seed.Catalog())
		logx.Info().Msg("catalog: using built-in seed")
	}

	var sessions sessionrepo.Repository
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logx.Fatal().Err(err).Msg("parse redis url")
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			logx.Fatal().Err(err).Msg("connect to redis")
		}
		defer client.Close()
		sessions = sessionrepo.NewRedis(client)
		logx.Info().Msg("sessions: using redis backend")
	} else {
		sessions = sessionrepo.NewMemory()
		logx.Info().Msg("sessions: using in-memory store")
	}

	checker, err := availability.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logx.Fatal().Err(err).Msg("init availability client")
	}

	catalogService := catalogsvc.New(catalog)
	cartService := cartsvc.New(catalog)
	customerService := customersvc.New(sessions, cfg.SessionTTL)

	srv, err := httpserver.New(cfg.HTTPAddr, dbpool, httpserver.Deps{
		CatalogSvc:   catalogService,
		CartSvc:      cartService,
		CustomerSvc:  customerService,
		Availability: checker,
	}, cfg.CORSOrigins)
	if err != nil {
		logx.Fatal().Err(err).Msg("init server")
	}

	serverErr := make(chan error, 1)
	go func() {
		logx.Info().Str("addr", cfg.HTTPAddr).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logx.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		logx.Error().Err(err).Msg("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logx.Error().Err(err).Msg("graceful shutdown failed")
	} else {
		logx.Info().Msg("server stopped")
	}
}
