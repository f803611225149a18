package cli

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/slateboard/slateboard/pkg/httpapi"
)

// newServeCmd creates the serve command, exposing the geometry engine over
// HTTP for editor frontends that keep document state on their side.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the geometry engine as an HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8473", "listen address")

	return cmd
}

func runServe(cmd *cobra.Command, addr string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	api := httpapi.New(
		httpapi.WithLogger(logger),
		httpapi.WithSizeDefaults(cfg.SizeDefaults()),
		httpapi.WithSnapSettings(cfg.Snap.Threshold, cfg.Snap.Tolerance),
	)
	server := &http.Server{
		Addr:              addr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()
	logger.Info("listening", "addr", addr)

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
