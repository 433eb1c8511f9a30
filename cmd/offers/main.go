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

	"pricewatch/internal/adapter"
	"pricewatch/internal/adapter/ah"
	"pricewatch/internal/adapter/jumbo"
	"pricewatch/internal/config"
	"pricewatch/internal/events"
	"pricewatch/internal/service"
	"pricewatch/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	supermarkets := flag.String("supermarkets", "all", "supermarkets to scrape: all, a code, or a comma separated list")
	limit := flag.Int("limit", 0, "max products per supermarket, 0 for unbounded")
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

	clientCfg := adapter.ClientConfig{
		Timeout:        cfg.Scrape.RequestTimeout,
		MaxAttempts:    cfg.Scrape.Retry.MaxAttempts,
		InitialBackoff: cfg.Scrape.Retry.InitialBackoff,
		MaxBackoff:     cfg.Scrape.Retry.MaxBackoff,
		RequestDelay:   cfg.Scrape.RequestDelay,
	}
	available := []adapter.Adapter{
		ah.NewOffers(ah.Config{PageSize: cfg.Scrape.PageSize, Client: clientCfg}, logger),
		jumbo.NewOffers(jumbo.Config{PageSize: cfg.Scrape.PageSize, Client: clientCfg}, logger),
	}

	selected, err := adapter.Select(available, *supermarkets)
	if err != nil {
		logger.Error("failed to resolve supermarket selection", "error", err)
		os.Exit(1)
	}

	var publisher service.OfferPublisher
	if cfg.Events.URL != "" {
		rabbitMQ, err := events.NewRabbitMQ(events.Config{
			URL:        cfg.Events.URL,
			Exchange:   cfg.Events.Exchange,
			RoutingKey: cfg.Events.RoutingKey,
			QueueName:  cfg.Events.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		publisher = rabbitMQ
	}

	runner := service.NewRunner(
		selected,
		postgres.NewSupermarketStore(db),
		postgres.NewProductStore(db),
		postgres.NewPriceHistoryStore(db),
		postgres.NewSessionStore(db),
		postgres.NewTransactionManager(db),
		publisher,
		logger,
		cfg.Scrape.Concurrency,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting offers scrape",
		"supermarkets", len(selected),
		"limit", *limit,
		"concurrency", cfg.Scrape.Concurrency,
	)

	summary := runner.Run(ctx, *limit)
	if summary.Failed() {
		os.Exit(1)
	}
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
