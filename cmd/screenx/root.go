package screenx

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Xordas/ScreenX/db"
	"github.com/Xordas/ScreenX/layout"
	"github.com/Xordas/ScreenX/logging"
	"github.com/Xordas/ScreenX/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var logCtx = logging.PackageCtx("cmd")

var (
	cfgFile       string
	logLevel      string
	storagePath   string
	layoutFile    string
	simulatorName string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "screenx",
	Short: "Preview the dashboard display of a sim racing wheel",
	Long: `ScreenX renders a faithful preview of the 256x64 OLED dashboard driven by the
companion telemetry app. It can serve the preview over HTTP, open it in a desktop window,
render it to PNG files and manage saved layouts.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.screenx.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVarP(
		&storagePath,
		"storage",
		"s",
		"./screenx.sqlite",
		"Path to the sqlite file holding presets and the current layout")
	rootCmd.PersistentFlags().StringVarP(
		&layoutFile,
		"layout",
		"l",
		"",
		"Layout file (.json, .yaml or .yml) to show instead of the saved current layout")
	rootCmd.PersistentFlags().StringVar(
		&simulatorName,
		"simulator-name",
		"",
		"Simulator name shown when the game is not running")
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".screenx" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".screenx")
	}
	// Set environment variable prefix
	viper.SetEnvPrefix("screenx")
	viper.AutomaticEnv()

	// Read config
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// Config file not found, create an example config
			createExampleConfig()
		} else {
			// Other errors
			slog.ErrorContext(logCtx, "Error reading config file", "error", err)
			os.Exit(1)
		}
	}
}

func createExampleConfig() {
	exampleConfig := `
port = 8080
storage = "./screenx.sqlite"
loglevel = "info"
`
	configPath := "./.screenx.toml"

	err := os.WriteFile(configPath, []byte(exampleConfig), 0o644)
	if err != nil {
		slog.ErrorContext(logCtx, "Error creating example config file", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(logCtx, "Example config file created", "path", configPath)
}

func setup(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd, args); err != nil {
		return err
	}

	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(logging.NewHandler(os.Stderr, level)))
	slog.DebugContext(logCtx, "Configuration loaded", "file", viper.ConfigFileUsed(), "settings", viper.AllSettings())

	return nil
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) error {
	var bindErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// If using camelCase in the config file, replace hyphens with a camelCased string.
		// Since viper does case-insensitive comparisons, we don't need to bother fixing the case, and only need to remove the hyphens.
		configName := strings.ReplaceAll(f.Name, "-", "")

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && viper.IsSet(configName) {
			val := viper.Get(configName)

			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				bindErr = errors.Join(bindErr, fmt.Errorf("could not set flag %s from config: %w", f.Name, err))

				return
			}

			slog.DebugContext(logCtx, "Flag set from config", "flag", f.Name, "value", val)
		}
	})

	return bindErr
}

func openStorage() (*db.SQLiteStorage, error) {
	storage, err := db.ConnectDB(storagePath)
	if err != nil {
		return nil, fmt.Errorf("could not open %s as sqlite file: %w", storagePath, err)
	}

	return storage, nil
}

// startupLayout picks the layout file when given, then the saved current layout, then
// the default one.
func startupLayout(state db.LayoutState) (model.Layout, error) {
	if layoutFile != "" {
		l, err := layout.LoadFile(layoutFile)
		if err != nil {
			return model.Layout{}, err
		}

		slog.InfoContext(logCtx, "Loaded layout file", "path", layoutFile, "layout", layout.Describe(l))

		return l, nil
	}

	if state != nil {
		l, err := state.CurrentLayout()
		if err == nil {
			slog.InfoContext(logCtx, "Restored current layout", "layout", layout.Describe(l))

			return l, nil
		}

		if !errors.Is(err, db.ErrNotFound) {
			return model.Layout{}, err
		}
	}

	return layout.Default(), nil
}

// existingStorage opens the storage file only if it already exists, so read-only
// commands do not create it.
func existingStorage() *db.SQLiteStorage {
	if _, err := os.Stat(storagePath); err != nil {
		return nil
	}

	storage, err := openStorage()
	if err != nil {
		slog.WarnContext(logCtx, "Ignoring storage", "path", storagePath, "error", err)

		return nil
	}

	return storage
}

func layoutState(storage *db.SQLiteStorage) db.LayoutState {
	if storage == nil {
		return nil
	}

	return storage
}
