package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/nanomoomug/spotify-notify-playlist-update/internal/config"
	"github.com/nanomoomug/spotify-notify-playlist-update/internal/domain"
	"github.com/nanomoomug/spotify-notify-playlist-update/internal/notify"
	"github.com/nanomoomug/spotify-notify-playlist-update/internal/publisher"
	"github.com/nanomoomug/spotify-notify-playlist-update/internal/scheduler"
	"github.com/nanomoomug/spotify-notify-playlist-update/internal/service"
	"github.com/nanomoomug/spotify-notify-playlist-update/internal/source/spotify"
	"github.com/nanomoomug/spotify-notify-playlist-update/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// The update-event publisher is optional; without a broker URL the
	// watcher only sends mail.
	var pub service.Publisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	connectionStore := postgres.NewConnectionStore(db)
	playlistStore := postgres.NewPlaylistStore(db)
	subscriberStore := postgres.NewSubscriberStore(db)
	configStore := postgres.NewConfigStore(db)

	sources := spotify.NewFactory(spotify.Config{
		Timeout: cfg.Spotify.Timeout,
	}, logger)

	mailer := notify.NewMailer(logger)

	watchService := service.NewWatchService(
		connectionStore,
		playlistStore,
		subscriberStore,
		configStore,
		sourceFactory{sources},
		mailer,
		pub,
		logger,
	)

	sched := scheduler.NewScheduler(watchService, scheduler.Delays{
		Interval:     cfg.Watch.Interval,
		ShortBackoff: cfg.Watch.ShortBackoff,
		LongBackoff:  cfg.Watch.LongBackoff,
	}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting playlist update watcher",
		"interval", cfg.Watch.Interval,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

// sourceFactory adapts the concrete Spotify factory to the service's
// SourceFactory interface.
type sourceFactory struct {
	factory *spotify.Factory
}

func (f sourceFactory) Open(creds domain.Credentials) service.PlaylistSource {
	return f.factory.Open(creds)
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
