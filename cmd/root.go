package cmd

import (
	"fmt"
	"os"

	"theater-reservation/internal/data/entity"
	"theater-reservation/internal/data/repository"
	"theater-reservation/internal/wire"
	"theater-reservation/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
)

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:           "theater-reservation",
	Short:         "Reserve seats at the theater from the terminal",
	Long:          `Keeps a seating chart, reserves blocks of seats closest to the center row and shows the seat map.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConsole(cmd)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "theater-reservation %s", version)
		if commit != "none" && commit != "" {
			fmt.Fprintf(cmd.OutOrStdout(), " (%s)", commit)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	},
}

func Execute() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".env", "path to the .env config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(consoleCmd, serveCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads config, builds the logger and the theater, and wires the
// application. A bad theater configuration aborts start-up.
func bootstrap(cmd *cobra.Command, stdoutLogs bool) (*wire.App, *utils.Config, *zap.Logger, error) {
	config, err := utils.LoadConfig(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("debug") {
		config.App.Debug = debug
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug, stdoutLogs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v. Using no-op logger.\n", err)
		logger = zap.NewNop()
	}

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("version", version),
		zap.Bool("debug", config.App.Debug),
	)

	theater, err := entity.NewTheater(
		config.Theater.Name,
		config.Theater.Rows,
		config.Theater.SeatsPerRow,
		config.Theater.AccessibleRows,
	)
	if err != nil {
		logger.Error("Invalid theater configuration", zap.Error(err))
		logger.Sync()
		return nil, nil, nil, fmt.Errorf("build theater: %w", err)
	}

	logger.Info("Theater ready",
		zap.String("theater", theater.Name()),
		zap.Int("rows", theater.TotalRows()),
		zap.Int("seats_per_row", theater.SeatsPerRow()),
		zap.Ints("accessible_rows", theater.AccessibleRows()),
	)

	repos := repository.NewRepository(theater, logger)

	return wire.Wiring(repos, config, logger), config, logger, nil
}
