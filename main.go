package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// runServer serves the report builder until ctx is cancelled.
func runServer(ctx context.Context, cfg Config) error {
	logger, err := newLogger(cfg, os.Stdout)
	if err != nil {
		return err
	}
	if cfg.SessionKey == "" {
		logger.Warn("no session key configured; sessions will not survive a restart")
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newServer(cfg, logger).routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", cfg.Addr).WithField("access_gated", cfg.AccessGated()).Info("server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
