package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/fastflight/api"
	"github.com/Domenick1991/fastflight/config"
	"github.com/Domenick1991/fastflight/internal/ai"
	"github.com/Domenick1991/fastflight/internal/bootstrap"
	"github.com/Domenick1991/fastflight/internal/cache"
	"github.com/Domenick1991/fastflight/internal/kafka"
	"github.com/Domenick1991/fastflight/internal/service/alerts"
	"github.com/Domenick1991/fastflight/internal/service/booking"
	"github.com/Domenick1991/fastflight/internal/service/search"
	"github.com/Domenick1991/fastflight/internal/store"
	sdk "github.com/github/copilot-sdk/go"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bookingStore, err := store.NewBookingStore(cfg.Store.DataDir)
	if err != nil {
		log.Fatalf("open booking store: %v", err)
	}
	alertStore, err := store.NewAlertStore(cfg.Store.DataDir)
	if err != nil {
		log.Fatalf("open alert store: %v", err)
	}

	var searchCache cache.SearchCache = cache.NewNoOpCache()
	if cfg.Search.CacheEnabled {
		searchCache = cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, time.Duration(cfg.Search.CacheTTLSeconds)*time.Second)
	}
	defer searchCache.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	copilotClient := sdk.NewClient(&sdk.ClientOptions{
		LogLevel: "error",
	})
	if err := copilotClient.Start(); err != nil {
		log.Fatalf("start copilot client: %v", err)
	}
	defer copilotClient.Stop()

	provider := ai.NewCopilotProvider(copilotClient, ai.CopilotConfig{
		Model:             cfg.AI.Model,
		Timeout:           time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
		RequestsPerSecond: cfg.AI.RequestsPerSecond,
		Burst:             cfg.AI.Burst,
	})

	alertService := alerts.NewAlertService(alertStore, producer, cfg.Kafka.NotificationsTopic)
	bookingService := booking.NewBookingService(
		bookingStore,
		producer,
		cfg.Kafka.BookingTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	searchService := search.NewSearchService(provider, provider, searchCache, alertService)

	router := api.NewRouter(
		api.NewSearchHandler(searchService),
		api.NewBookingHandler(bookingService),
		api.NewAlertHandler(alertService),
	)

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
