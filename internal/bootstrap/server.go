package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/fastflight/config"
	"github.com/sirupsen/logrus"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails. Cancellation triggers a graceful shutdown with a five
// second deadline.
func Run(ctx context.Context, cfg *config.Config, handler http.Handler) error {
	httpServer := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("address", cfg.HTTP.Address).Info("http server listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
