package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/membot/pkg/log"
	"github.com/sandevgo/membot/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the MemBot chat loop",
	Long:  `Connects to PostgreSQL, runs pending migrations and starts the interactive chat session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting membot")

		// Define services using the setup.go logic
		services := NewServices(ctx, stop)

		// Start services
		srv.StartServices(ctx, services)

		// Wait for shutdown signal (or 'exit' from the chat loop)
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("membot has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
