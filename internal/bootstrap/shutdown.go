package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CashPoolRPG_Go/internal/server"
)

// GracefulShutdown stops the HTTP server first so no new commands arrive,
// then releases the economy store. Errors are logged and do not stop the
// sequence.
func GracefulShutdown(ctx context.Context, srv *server.Server, store *Store) {
	slog.Info(LogMsgShuttingDownServer)

	if err := srv.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if err := store.Close(); err != nil {
		slog.Error(LogMsgStoreCloseFailed, "error", err)
	}

	slog.Info(LogMsgServerStopped)
}
