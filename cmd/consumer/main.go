package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"forge-events/config"
	"forge-events/config/kafka"
	"forge-events/config/postgre"
	eventRepoPostgre "forge-events/internal/event/repository/postgre"
	hookKafka "forge-events/internal/hook/delivery/kafka"
	hookRepoPostgre "forge-events/internal/hook/repository/postgre"
	hookUseCase "forge-events/internal/hook/usecase"
	pusheventKafka "forge-events/internal/pushevent/delivery/kafka"
	pusheventUseCase "forge-events/internal/pushevent/usecase"
	registryPostgre "forge-events/internal/registry/postgre"
	"forge-events/pkg/gitlog"
	"forge-events/pkg/log"
)

// main is the entry point for the pipeline consumer service. It consumes
// push notifications from Kafka, turns them into events, and fans hook
// payloads back out through Kafka to the dispatcher consumer.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting consumer service...")

	// Infrastructure
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)

	producer, err := kafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Error(ctx, "Failed to connect Kafka producer: ", err)
		return
	}
	defer producer.Close()

	pushReader, err := kafka.NewReader(cfg.Kafka, kafka.TopicPushEvents)
	if err != nil {
		logger.Error(ctx, "Failed to create push-event reader: ", err)
		return
	}
	hookReader, err := kafka.NewReader(cfg.Kafka, kafka.TopicWebHookNotifications)
	if err != nil {
		logger.Error(ctx, "Failed to create hook-notification reader: ", err)
		return
	}

	// Repositories
	directory := registryPostgre.New(postgresDB, logger)
	eventsRepo := eventRepoPostgre.New(postgresDB, logger)
	hooksRepo := hookRepoPostgre.New(postgresDB, logger)

	// Push pipeline
	git := gitlog.NewClient(cfg.Git.Binary)
	pushUC := pusheventUseCase.New(logger, directory, eventsRepo, git, producer, hooksRepo, cfg.Site, cfg.Git)
	pushConsumer := pusheventKafka.New(pushReader, pushUC, logger)

	// Hook dispatcher
	hookUC := hookUseCase.New(hooksRepo, time.Duration(cfg.Webhook.TimeoutSeconds)*time.Second, logger)
	hookConsumer := hookKafka.New(hookReader, hookUC, logger)

	errCh := make(chan error, 2)
	go func() { errCh <- pushConsumer.Start(ctx) }()
	go func() { errCh <- hookConsumer.Start(ctx) }()

	logger.Info(ctx, "Consumer service running. Waiting for shutdown signal...")

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error(ctx, "Consumer stopped with error: ", err)
		}
		stop()
	case <-ctx.Done():
	}

	logger.Info(ctx, "Consumer service stopped gracefully")
}
