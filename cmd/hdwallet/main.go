// Local HD wallet server.
// Usage: HD_FILE_PATH=wallet.cwt go run ./cmd/hdwallet
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/AlexZinkM/hd-wallet/docs"
	"github.com/AlexZinkM/hd-wallet/internal/api"
	"github.com/AlexZinkM/hd-wallet/internal/config"
	"github.com/AlexZinkM/hd-wallet/internal/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Init(); err != nil {
		return err
	}
	cfg := config.Get()

	if !log.ValidLogLevel(cfg.LogLevel) {
		return fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	if cfg.LogFile != "" {
		if err := log.InitLogRotator(cfg.LogFile); err != nil {
			return err
		}
		defer log.LogRotator.Close()
	}
	log.SetLogLevels(cfg.LogLevel)

	if err := config.LoadPassword(); err != nil {
		return err
	}

	router, err := api.SetupRouter(log.HTTPLog)
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.MainLog.Infof("Listening on %s (network %s)", srv.Addr, cfg.Network)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.MainLog.Infof("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
