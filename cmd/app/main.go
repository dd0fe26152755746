package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobmarket/cmd"
	httpin "jobmarket/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("application stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	configs, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	infra, err := cmd.OpenInfrastructure(ctx, configs, logger)
	if err != nil {
		return err
	}
	defer func() {
		for _, closeErr := range infra.Close() {
			logger.Warn("failed to close connection", "error", closeErr)
		}
	}()

	app := cmd.NewCompositionRoot(configs, infra.DB, infra.Cache, infra.Bus, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	consumerDone := make(chan error, 1)
	go func() {
		consumerDone <- app.CreateNotificationConsumer().Run(ctx)
	}()

	serverDone := make(chan error, 1)
	e := httpin.NewRouter(app.CreateHTTPServer(), echoLevel(configs.LogLevel))
	go func() {
		logger.Info("http server listening", "port", configs.HTTPPort)
		serverDone <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err = <-serverDone:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
		}
	case err = <-consumerDone:
		consumerDone = nil
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("notification consumer failed", "error", err)
		}
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http server shutdown incomplete", "error", err)
	}

	if consumerDone != nil {
		select {
		case <-consumerDone:
		case <-shutdownCtx.Done():
			logger.Warn("notification consumer did not stop in time")
		}
	}

	if err = app.DrainNotifications(shutdownCtx); err != nil {
		logger.Warn("pending event publishes abandoned", "error", err)
	}

	return nil
}

func echoLevel(level slog.Level) log.Lvl {
	switch {
	case level <= slog.LevelDebug:
		return log.DEBUG
	case level <= slog.LevelInfo:
		return log.INFO
	case level <= slog.LevelWarn:
		return log.WARN
	default:
		return log.ERROR
	}
}
