package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"coaltools/internal/dashboard"
	"coaltools/internal/events"
	"coaltools/internal/messaging/kafka/consumer"
	"coaltools/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer mendengarkan event lifecycle payroll dan membuang cache
// ringkasan dashboard setiap kali ada perubahan status.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	defer rdb.Close()

	summaryCache := dashboard.NewCache(rdb)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.PayrollLifecycleTopic,
		GroupID:        "coaltools-dashboard-summary",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePayrollLifecycle(ctx, reader, summaryCache, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
