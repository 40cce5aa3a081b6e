package screenx

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Xordas/ScreenX/preview"
	"github.com/Xordas/ScreenX/render"
	"github.com/Xordas/ScreenX/surface"
	"github.com/Xordas/ScreenX/telemetry"
	"github.com/Xordas/ScreenX/window"
	"github.com/spf13/cobra"
)

var windowTitle string

// windowCmd represents the window command.
var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Open the preview in a desktop window",
	Long: `Open a resizable window that redraws the preview on every display refresh. Shows
the demo values with --demo, otherwise live telemetry polled from --backend.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		storage := existingStorage()
		if storage != nil {
			defer storage.Close()
		}

		l, err := startupLayout(layoutState(storage))
		if err != nil {
			return err
		}

		var source render.DataSource = telemetry.NewDemoSource()

		if !demo {
			live := telemetry.NewLiveSource()
			startPoller(ctx, live)
			source = live
		}

		game := window.NewGame(preview.Config{
			Source:        source,
			Layout:        &l,
			SimulatorName: simulatorName,
			Bounds:        surface.Bounds{MinWidth: minWidth, MaxWidth: maxWidth},
		})

		return window.Run(ctx, game, windowTitle)
	},
}

func init() {
	rootCmd.AddCommand(windowCmd)

	windowCmd.Flags().BoolVar(&demo, "demo", false, "Show the demo values instead of live telemetry")
	windowCmd.Flags().StringVar(&windowTitle, "title", "ScreenX preview", "Window title")

	addBackendFlags(windowCmd)
	addSizeFlags(windowCmd)
}
