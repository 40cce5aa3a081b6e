package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Xordas/ScreenX/logging"
	"github.com/Xordas/ScreenX/web/routes"
)

var logCtx = logging.PackageCtx("web")

const shutdownTimeout = 5 * time.Second

func disableCacheInDevMode(dev bool, next http.Handler) http.Handler {
	if !dev {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func BuildServer(handler *routes.ServerHandler, dev bool) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /preview.png", http.HandlerFunc(handler.PreviewHandle))
	mux.Handle("GET /api/widgets", http.HandlerFunc(handler.WidgetsHandle))
	mux.Handle("/api/layout", http.HandlerFunc(handler.LayoutHandle))
	mux.Handle("GET /api/layout/current", http.HandlerFunc(handler.CurrentLayoutHandle))
	mux.Handle("GET /api/layout/presets", http.HandlerFunc(handler.PresetsHandle))
	mux.Handle("POST /api/layout/presets/save", http.HandlerFunc(handler.SavePresetHandle))
	mux.Handle("POST /api/layout/presets/delete", http.HandlerFunc(handler.DeletePresetHandle))
	mux.Handle("/api/telemetry", http.HandlerFunc(handler.TelemetryHandle))
	mux.Handle("GET /{$}", disableCacheInDevMode(dev, http.HandlerFunc(handler.IndexHandle)))

	return mux
}

// StartServer serves mux on addr until ctx is cancelled.
func StartServer(ctx context.Context, addr string, mux http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)

	go func() {
		slog.InfoContext(logCtx, "Running interface", "addr", addr)
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return fmt.Errorf("could not run server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("could not stop server: %w", err)
	}

	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not run server: %w", err)
	}

	slog.InfoContext(logCtx, "Server stopped")

	return nil
}
