package consumer

import (
	"context"
	"encoding/json"

	"coaltools/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// SummaryCache adalah potongan kecil dari dashboard cache yang dibutuhkan
// consumer. Didefinisikan lokal agar package messaging tidak bergantung ke
// package dashboard.
type SummaryCache interface {
	Invalidate(ctx context.Context) error
}

// ConsumePayrollLifecycle membuang cache ringkasan dashboard setiap kali
// status payroll run berubah, supaya angka dashboard tidak basi.
func ConsumePayrollLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	cache SummaryCache,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_lifecycle")
	log.Info("payroll lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll lifecycle consumer stopped")
				return
			}
			log.Error("fetch payroll lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.PayrollStatusChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll_status_changed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := cache.Invalidate(ctx); err != nil {
			log.Error("invalidate dashboard summary cache failed",
				zap.String("payroll_run_id", event.PayrollRunID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("dashboard summary cache invalidated",
			zap.String("payroll_run_id", event.PayrollRunID),
			zap.String("from_status", event.FromStatus),
			zap.String("to_status", event.ToStatus),
		)
	}
}
