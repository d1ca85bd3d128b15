package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"yoga-marketplace/internal/config"
	"yoga-marketplace/internal/httpserver"
	"yoga-marketplace/internal/logging"
	cartsvc "yoga-marketplace/internal/service/cart"
	classsvc "yoga-marketplace/internal/service/class"
	"yoga-marketplace/internal/store"

	"go.uber.org/zap"
)

func main() {
	cfg, envLoaded := config.Load()
	logger, err := logging.New("api", cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}
	logger.Info("config loaded",
		zap.Bool("dotenv", envLoaded),
		zap.String("store", cfg.StoreDriver),
		zap.Bool("class_update_upsert", cfg.ClassUpdateUpsert),
		zap.Bool("cart_unique_entries", cfg.CartUniqueEntries),
		zap.String("cart_resolve_policy", cfg.CartResolvePolicy),
	)

	ctx := context.Background()
	st, err := store.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}

	classService := classsvc.New(st.Classes, cfg.ClassUpdateUpsert)
	cartService := cartsvc.New(st.Cart, st.Classes, cartsvc.Options{
		UniqueEntries: cfg.CartUniqueEntries,
		Policy:        cartsvc.ResolvePolicy(cfg.CartResolvePolicy),
	}, logger.Named("cart"))

	srv, err := httpserver.New(cfg.HTTPAddr, logger.Named("http"), st, httpserver.Deps{
		ClassSvc:       classService,
		CartSvc:        cartService,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})
	if err != nil {
		logger.Fatal("init server", zap.Error(err))
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped")
	}
	if err := st.Close(ctx); err != nil {
		logger.Error("close store", zap.Error(err))
	}
}
