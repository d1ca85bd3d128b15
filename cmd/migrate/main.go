package main

import (
	"context"
	"fmt"
	"os"

	"yoga-marketplace/internal/config"
	"yoga-marketplace/internal/logging"
	"yoga-marketplace/internal/migrate"
	"yoga-marketplace/internal/store"

	"go.uber.org/zap"
)

func main() {
	cfg, _ := config.Load()
	logger, err := logging.New("migrate", cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()
	st, err := store.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}
	defer st.Close(ctx) //nolint:errcheck

	switch {
	case st.Pool != nil:
		version, err := migrate.Apply(ctx, st.Pool)
		if err != nil {
			logger.Fatal("apply migrations", zap.Error(err))
		}
		logger.Info("migrations applied", zap.Uint("version", version))
	case st.Mongo != nil:
		if err := migrate.ApplyMongo(ctx, st.Mongo, cfg.CartUniqueEntries); err != nil {
			logger.Fatal("create indexes", zap.Error(err))
		}
		logger.Info("indexes created", zap.Bool("unique_cart", cfg.CartUniqueEntries))
	default:
		logger.Info("nothing to migrate", zap.String("store", st.Driver))
	}
}
