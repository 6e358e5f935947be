package georeference

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/planning-docs-service/internal/domain"
	"github.com/planning-docs-service/internal/domain/repository"
	"github.com/planning-docs-service/internal/pkg/metrics"
	"github.com/planning-docs-service/internal/usecase"
	"github.com/planning-docs-service/internal/worker"
	"go.uber.org/zap"
)

// CacheWorker прогревает кеш геопривязок и статистику по событиям изменения координат
type CacheWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	coordUC    *usecase.CoordinateUseCase
	statsUC    *usecase.StatsUseCase
}

func NewCacheWorker(
	streamRepo repository.StreamRepository,
	coordUC *usecase.CoordinateUseCase,
	statsUC *usecase.StatsUseCase,
	consumerGroup string,
	logger *zap.Logger,
) *CacheWorker {
	return &CacheWorker{
		BaseWorker: worker.NewBaseWorker("georeference-cache", domain.StreamGeoreferenceChanged, consumerGroup, logger),
		streamRepo: streamRepo,
		coordUC:    coordUC,
		statsUC:    statsUC,
	}
}

// Start читает стрим до Stop или отмены ctx
func (w *CacheWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting georeference cache worker",
		zap.String("stream", w.Stream()),
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()))

	if err := w.streamRepo.CreateConsumerGroup(ctx, w.Stream(), w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	// канал стрима закрывается только по отмене контекста
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	messages, err := w.streamRepo.ConsumeStream(ctx, w.Stream(), w.ConsumerGroup(), w.ConsumerName())
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			w.handle(ctx, msg)
		}
	}
}

// handle обрабатывает одно событие. Сообщение без ack остаётся в pending list
// группы, stream repository отдаст его повторно через XAUTOCLAIM после claimIdle.
func (w *CacheWorker) handle(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger().With(zap.String("message_id", msg.ID))

	var event domain.GeoreferenceChangedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Dropping malformed georeference event", zap.Error(err))
		metrics.EventsProcessed.WithLabelValues("invalid").Inc()
		w.ack(ctx, msg.ID)
		return
	}

	logger = logger.With(
		zap.Int64("document_id", event.DocumentID),
		zap.String("operation", event.Operation))

	if err := w.coordUC.RefreshGeoreferenceCache(ctx); err != nil {
		logger.Error("Failed to refresh georeference cache", zap.Error(err))
		metrics.EventsProcessed.WithLabelValues("error").Inc()
		return
	}
	if _, err := w.statsUC.RefreshGeoreferenceStats(ctx); err != nil {
		logger.Error("Failed to refresh georeference stats", zap.Error(err))
		metrics.EventsProcessed.WithLabelValues("error").Inc()
		return
	}

	w.ack(ctx, msg.ID)
	metrics.EventsProcessed.WithLabelValues("ok").Inc()
	logger.Debug("Georeference event processed")
}

func (w *CacheWorker) ack(ctx context.Context, id string) {
	if err := w.streamRepo.AckMessage(ctx, w.Stream(), w.ConsumerGroup(), id); err != nil {
		w.Logger().Warn("Failed to ack message", zap.String("message_id", id), zap.Error(err))
	}
}
