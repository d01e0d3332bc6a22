// serve.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httphandlers "github.com/ViniZap4/nurse-notes/http"
	mcpserver "github.com/ViniZap4/nurse-notes/mcp"
	"github.com/ViniZap4/nurse-notes/store"
)

func newServeCmd(a *app) *cobra.Command {
	var host, port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the sample notes over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("host") {
				a.cfg.Host = host
			}
			if cmd.Flags().Changed("port") {
				a.cfg.Port = port
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "listen host (default from NOTES_HOST)")
	cmd.Flags().StringVar(&port, "port", "", "listen port (default from NOTES_PORT)")
	return cmd
}

// serve runs until ctx is done, then shuts the server down gracefully.
func (a *app) serve(ctx context.Context) error {
	st := store.NewSample()

	srv := httphandlers.NewServer(st, a.log)
	srv.Mount("/mcp", mcpserver.NewHTTPHandler(mcpserver.NewServer(st, version)))

	addr := a.cfg.Addr()
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(addr)
	}()

	a.log.Info().
		Str("addr", addr).
		Int("notes", st.Len()).
		Str("version", version).
		Msg("server starting")

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	a.log.Info().Msg("server stopped")
	return nil
}
