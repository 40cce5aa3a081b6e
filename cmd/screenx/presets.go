package screenx

import (
	"fmt"
	"log/slog"

	"github.com/Xordas/ScreenX/layout"
	"github.com/Xordas/ScreenX/model"
	"github.com/spf13/cobra"
)

var presetSource string

// presetsCmd groups the preset subcommands.
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage saved layouts",
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets in save order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		storage, err := openStorage()
		if err != nil {
			return err
		}
		defer storage.Close()

		presets, err := storage.Presets()
		if err != nil {
			return err
		}

		for _, p := range presets {
			fmt.Fprintln(cmd.OutOrStdout(), layout.Describe(p))
		}

		return nil
	},
}

var presetsSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Save a layout file, or the current layout, as a preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		storage, err := openStorage()
		if err != nil {
			return err
		}
		defer storage.Close()

		var l model.Layout
		if presetSource != "" {
			l, err = layout.LoadFile(presetSource)
		} else {
			l, err = startupLayout(storage)
		}

		if err != nil {
			return err
		}

		l.Name = args[0]

		if err := storage.SavePreset(l); err != nil {
			return err
		}

		slog.InfoContext(logCtx, "Saved preset", "layout", layout.Describe(l))

		return nil
	},
}

var presetsDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		storage, err := openStorage()
		if err != nil {
			return err
		}
		defer storage.Close()

		if err := storage.DeletePreset(args[0]); err != nil {
			return err
		}

		slog.InfoContext(logCtx, "Deleted preset", "name", args[0])

		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
	presetsCmd.AddCommand(presetsListCmd, presetsSaveCmd, presetsDeleteCmd)

	presetsSaveCmd.Flags().StringVarP(&presetSource, "from", "f", "",
		"Layout file to save instead of the current layout")
}
