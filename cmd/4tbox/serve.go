package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/4tbox/toolbox/internal/api"
	"github.com/4tbox/toolbox/internal/bus"
	"github.com/4tbox/toolbox/internal/catalog"
	"github.com/4tbox/toolbox/internal/config"
	"github.com/4tbox/toolbox/internal/intake"
	"github.com/4tbox/toolbox/internal/metrics"
	"github.com/4tbox/toolbox/internal/slack"
	"github.com/4tbox/toolbox/internal/store"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if envFile != "" {
				if err := config.LoadFile(envFile); err != nil {
					return err
				}
			}
			return serve(config.Load())
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", "", "load environment variables from a dotenv file")
	return cmd
}

func serve(cfg config.Config) error {
	setupLogging(cfg.LogLevel)
	logger := slog.Default()

	slog.Info("4tbox starting", "port", cfg.Port, "version", version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	m := metrics.New()

	// NATS (optional, submissions are still stored without it)
	var (
		busClient *bus.Client
		publisher intake.Publisher
	)
	if cfg.NatsURL != "" {
		busClient, err = bus.NewClient(ctx, cfg.NatsURL, cfg.NatsToken, logger)
		if err != nil {
			return fmt.Errorf("connect to NATS: %w", err)
		}
		defer busClient.Close()
		publisher = busClient
		slog.Info("NATS connected", "url", cfg.NatsURL)
	} else {
		slog.Warn("NATS_URL not set, intake events will not be published")
	}

	// Slack poster (optional)
	var notifier intake.Notifier
	if cfg.SlackToken != "" && cfg.SlackChannel != "" {
		notifier = slack.NewPoster(cfg.SlackToken, cfg.SlackChannel, logger)
		slog.Info("slack poster ready", "channel", cfg.SlackChannel)
	} else {
		slog.Warn("slack not configured, running without intake notifications")
	}

	// Database (optional, intake endpoints answer 503 without it)
	var intakeSvc *intake.Service
	if cfg.IntakeEnabled() {
		db, err := store.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.EnsureSchema(ctx); err != nil {
			return err
		}
		slog.Info("database connected")
		intakeSvc = intake.New(db, publisher, notifier, m, logger)
	} else {
		slog.Warn("DATABASE_URL not set, intake disabled")
	}

	if busClient != nil && intakeSvc != nil {
		for _, subject := range []string{bus.SubjectToolRequest, bus.SubjectContact} {
			if err := busClient.QueueSubscribe(subject, bus.QueueIntakeNotify, intakeSvc.HandleSubmitted); err != nil {
				return fmt.Errorf("subscribe to %s: %w", subject, err)
			}
		}
	}

	srv := api.NewServer(api.Options{
		Port:         cfg.Port,
		Version:      version,
		APIToken:     cfg.APIToken,
		MaxBodyBytes: cfg.MaxBodyBytes,
		Catalog:      cat,
		Intake:       intakeSvc,
		Metrics:      m,
		Logger:       logger,
	})
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	if busClient != nil {
		if err := busClient.Publish(bus.SubjectRegistered, bus.RegistrationEvent{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Port:      cfg.Port,
			Version:   version,
		}); err != nil {
			slog.Warn("failed to publish registration", "error", err)
		}
	}

	slog.Info("4tbox ready", "port", cfg.Port, "tools", len(cat.All()))

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server: %w", err)
		}
	}

	slog.Info("shutting down")
	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP shutdown incomplete", "error", err)
	}
	if busClient != nil {
		if err := busClient.Drain(); err != nil {
			slog.Warn("NATS drain failed", "error", err)
		}
	}
	cancel()
	slog.Info("4tbox stopped")
	return nil
}
