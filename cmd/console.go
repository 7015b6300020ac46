package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start the interactive reservation console (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConsole(cmd)
	},
}

func runConsole(cmd *cobra.Command) error {
	app, _, logger, err := bootstrap(cmd, false)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Console.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
}
