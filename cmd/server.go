package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var port string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the reservation API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, config, logger, err := bootstrap(cmd, true)
		if err != nil {
			return err
		}
		defer logger.Sync()

		if cmd.Flags().Changed("port") {
			config.App.Port = port
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("Starting HTTP server", zap.String("port", config.App.Port))
		return APIServer(ctx, app.Router, config.App.Port, logger)
	},
}

func init() {
	serveCmd.Flags().StringVar(&port, "port", "8080", "HTTP port")
}

// APIServer serves route until ctx is cancelled, then shuts down gracefully.
func APIServer(ctx context.Context, route *chi.Mux, port string, logger *zap.Logger) error {
	addr := fmt.Sprintf(":%s", port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           route,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Printf("Server running on http://localhost%s\n", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
