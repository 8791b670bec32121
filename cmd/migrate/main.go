package main

import (
	"context"

	"github.com/mousa-mostafa/capitone-Furniture/internal/config"
	"github.com/mousa-mostafa/capitone-Furniture/internal/db"
	"github.com/mousa-mostafa/capitone-Furniture/internal/migrate"
	logx "github.com/mousa-mostafa/capitone-Furniture/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("load config")
	}
	logx.Init(cfg.Environment)

	if cfg.CatalogDSN == "" {
		logx.Fatal().Msg("CATALOG_DSN required to run migrations")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.CatalogDSN)
	if err != nil {
		logx.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		logx.Fatal().Err(err).Msg("apply migrations")
	}

	logx.Info().Msg("migrations applied")
}
