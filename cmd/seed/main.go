package main

import (
	"context"
	"fmt"
	"os"

	"yoga-marketplace/internal/config"
	"yoga-marketplace/internal/logging"
	"yoga-marketplace/internal/seed"
	classsvc "yoga-marketplace/internal/service/class"
	"yoga-marketplace/internal/store"

	"go.uber.org/zap"
)

func main() {
	cfg, _ := config.Load()
	logger, err := logging.New("seed", cfg.LogLevel, cfg.LogFormat)
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

	created, err := seed.Apply(ctx, classsvc.New(st.Classes, false))
	if err != nil {
		logger.Fatal("seed apply", zap.Error(err))
	}

	logger.Info("seed applied", zap.Int("created", created))
}
