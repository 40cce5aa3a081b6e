package screenx

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Xordas/ScreenX/surface"
	"github.com/Xordas/ScreenX/telemetry"
	"github.com/Xordas/ScreenX/web"
	"github.com/Xordas/ScreenX/web/routes"
	"github.com/spf13/cobra"
)

var (
	port         int
	dev          bool
	backendURL   string
	pollInterval time.Duration
	minWidth     float64
	maxWidth     float64
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the preview and the layout API over HTTP",
	Long: `Run a web server with live and demo previews, the layout and preset API and a
telemetry endpoint. With --backend, telemetry is polled from the companion app.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		storage, err := openStorage()
		if err != nil {
			return err
		}
		defer storage.Close()

		l, err := startupLayout(storage)
		if err != nil {
			return err
		}

		live := telemetry.NewLiveSource()
		startPoller(ctx, live)

		handler := routes.NewServerHandler(routes.Config{
			Storage:       storage,
			Live:          live,
			Layout:        l,
			Bounds:        surface.Bounds{MinWidth: minWidth, MaxWidth: maxWidth},
			SimulatorName: simulatorName,
		})

		return web.StartServer(ctx, fmt.Sprintf(":%d", port), web.BuildServer(handler, dev))
	},
}

// startPoller feeds sink from the companion backend until ctx is done. It does nothing
// when no backend is configured.
func startPoller(ctx context.Context, sink telemetry.Updater) {
	if backendURL == "" {
		return
	}

	poller := telemetry.NewPoller(backendURL, sink, pollInterval)

	go func() {
		if err := poller.Run(ctx); err != nil {
			slog.ErrorContext(logCtx, "Telemetry poller stopped", "error", err)
		}
	}()
}

func addBackendFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&backendURL,
		"backend",
		"",
		"Base URL of the companion app to poll telemetry from, e.g. http://127.0.0.1:8765")

	cmd.Flags().DurationVar(&pollInterval,
		"poll-interval",
		telemetry.DefaultPollInterval,
		"Time between telemetry polls")
}

func addSizeFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&minWidth, "min-width", surface.DefaultMinWidth, "Smallest preview width in pixels")
	cmd.Flags().Float64Var(&maxWidth, "max-width", surface.DefaultMaxWidth, "Largest preview width in pixels")
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&port, "port", "p", 8080,
		"Port on which server should be watching")

	serveCmd.Flags().BoolVar(&dev,
		"dev",
		false,
		"Enable developer mode")

	addBackendFlags(serveCmd)
	addSizeFlags(serveCmd)
}
