package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	kafkalib "github.com/s21platform/kafka-lib"
	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/chat-delivery-service/internal/client/centrifugo"
	"github.com/s21platform/chat-delivery-service/internal/config"
	"github.com/s21platform/chat-delivery-service/internal/databus/notification"
	"github.com/s21platform/chat-delivery-service/internal/fanout"
	"github.com/s21platform/chat-delivery-service/internal/repository/postgres"
	"github.com/s21platform/chat-delivery-service/internal/service"
)

const notificationConsumerGroupID = "chat-notification-delivery"

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := postgres.New(cfg)
	defer dbRepo.Close()

	var publisher service.Publisher = fanout.Discard{}
	if cfg.Fanout.Backend == config.FanoutBackendCentrifugo {
		centrifugeClient := centrifugo.New(cfg)
		defer centrifugeClient.Close()
		publisher = centrifugeClient
	} else {
		logger.Info("live publishing disabled for the worker, notifications reach clients through polling")
	}

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = context.WithValue(ctx, config.KeyMetrics, metrics)
	ctx = context.WithValue(ctx, config.KeyLogger, logger)

	consumerConfig := kafkalib.DefaultConsumerConfig(
		cfg.Kafka.Host,
		cfg.Kafka.Port,
		cfg.Kafka.NotificationTopic,
		notificationConsumerGroupID,
	)
	consumer, err := kafkalib.NewConsumer(consumerConfig, metrics)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create consumer: %v", err))
		return
	}

	chatService := service.New(dbRepo, publisher, logger, service.WithPollOverlap(cfg.Poll.Overlap))
	notificationHandler := notification.New(chatService)
	consumer.RegisterHandler(ctx, notificationHandler.Handler)

	<-ctx.Done()
}
