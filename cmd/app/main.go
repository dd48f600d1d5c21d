package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/CashPoolRPG_Go/internal/bootstrap"
	"github.com/osse101/CashPoolRPG_Go/internal/config"
	"github.com/osse101/CashPoolRPG_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

//go:generate swag init -g main.go -d ./,../../internal/handler -o ../../docs

// @title CashPool RPG API
// @version 1.0
// @description Chest, marketplace and tournament economy behind the chat bots.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open economy store", "error", err)
		os.Exit(1)
	}

	svcs, err := bootstrap.InitializeServices(cfg, store.Economy)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		_ = store.Close()
		os.Exit(1)
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, server.Dependencies{
		Store:      store.Economy,
		Players:    svcs.Player,
		Inventory:  svcs.Inventory,
		Market:     svcs.Market,
		Tournament: svcs.Tournament,
		IsAdmin:    cfg.IsAdmin,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, srv, store)
}
