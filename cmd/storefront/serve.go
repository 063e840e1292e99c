package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/castleclothing/storefront/internal/events"
	"github.com/castleclothing/storefront/internal/httpserver"
	pkgdb "github.com/castleclothing/storefront/pkg/db"
	"github.com/castleclothing/storefront/pkg/logging"
)

func runServe(parent context.Context, envFile string) error {
	cfg, logger := setup(envFile)
	ctx := logging.IntoContext(parent, logger)

	db, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}

	publisher := events.New(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	a := newApp(cfg, db, newImageHost(cfg.Cloudinary, logger), newMailer(cfg.Mail), publisher)
	a.auth.Bootstrap(ctx)

	e := httpserver.New(logger)
	httpserver.Register(e, a.deps)

	srv := &http.Server{
		Addr:              net.JoinHostPort("0.0.0.0", cfg.Port),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server_listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	var serveErr error
	select {
	case sig := <-stop:
		logger.Info("shutting_down", "signal", sig.String())
	case serveErr = <-errCh:
		logger.Error("server_failed", "error", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server_shutdown_failed", "error", err)
	}
	if err := pkgdb.Close(db); err != nil {
		logger.Error("db_close_failed", "error", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Error("events_close_failed", "error", err)
	}

	logger.Info("shutdown_complete")
	return serveErr
}
