package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/planning-docs-service/internal/domain"
	"github.com/planning-docs-service/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	defaultBlock     = time.Second
	defaultBatchSize = 10
	defaultClaimIdle = 30 * time.Second
)

type streamRepository struct {
	client    *redis.Client
	logger    *zap.Logger
	block     time.Duration
	batchSize int64
	claimIdle time.Duration
}

// Option настраивает чтение из стрима
type Option func(*streamRepository)

// WithBlock задаёт, сколько XREADGROUP ждёт новых сообщений
func WithBlock(d time.Duration) Option {
	return func(r *streamRepository) {
		if d > 0 {
			r.block = d
		}
	}
}

// WithBatchSize задаёт COUNT для XREADGROUP
func WithBatchSize(n int) Option {
	return func(r *streamRepository) {
		if n > 0 {
			r.batchSize = int64(n)
		}
	}
}

// WithClaimIdle задаёт, сколько сообщение должно провисеть в pending list без ack,
// прежде чем его заберёт XAUTOCLAIM. Это же интервал между проходами по pending.
func WithClaimIdle(d time.Duration) Option {
	return func(r *streamRepository) {
		if d > 0 {
			r.claimIdle = d
		}
	}
}

// NewStreamRepository создает новый экземпляр StreamRepository
func NewStreamRepository(client *redis.Client, logger *zap.Logger, opts ...Option) repository.StreamRepository {
	r := &streamRepository{
		client:    client,
		logger:    logger,
		block:     defaultBlock,
		batchSize: defaultBatchSize,
		claimIdle: defaultClaimIdle,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CreateConsumerGroup создаёт consumer group для стрима, начиная с новых сообщений.
// MKSTREAM создаёт стрим, если его ещё нет.
func (r *streamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	err := r.client.XGroupCreateMkStream(ctx, stream, group, "$").Err()
	if err != nil {
		if strings.HasPrefix(err.Error(), "BUSYGROUP") {
			r.logger.Debug("Consumer group already exists",
				zap.String("stream", stream),
				zap.String("group", group))
			return nil
		}
		r.logger.Error("Failed to create consumer group",
			zap.String("stream", stream),
			zap.String("group", group),
			zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	r.logger.Info("Consumer group created",
		zap.String("stream", stream),
		zap.String("group", group))
	return nil
}

// ConsumeStream читает сообщения из стрима через consumer group.
// Перед чтением новых сообщений и затем раз в claimIdle забирает себе через XAUTOCLAIM
// зависшие без ack сообщения группы, в том числе от прежних consumer'ов.
// Канал закрывается после отмены контекста.
func (r *streamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	msgChan := make(chan domain.StreamMessage, r.batchSize)

	go func() {
		defer close(msgChan)

		var lastClaim time.Time
		for {
			if ctx.Err() != nil {
				r.logger.Info("Stream consumer stopped",
					zap.String("stream", stream),
					zap.String("consumer", consumer))
				return
			}

			if time.Since(lastClaim) >= r.claimIdle {
				if !r.claimPending(ctx, msgChan, stream, group, consumer) {
					return
				}
				lastClaim = time.Now()
			}

			result, err := r.client.XReadGroup(ctx, &redis.XReadGroupArgs{
				Group:    group,
				Consumer: consumer,
				Streams:  []string{stream, ">"},
				Count:    r.batchSize,
				Block:    r.block,
			}).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) {
					continue
				}
				if ctx.Err() != nil {
					return
				}
				r.logger.Error("Failed to read from stream",
					zap.String("stream", stream),
					zap.Error(err))

				select {
				case <-time.After(time.Second):
				case <-ctx.Done():
					return
				}
				continue
			}

			for _, s := range result {
				if !r.deliver(ctx, msgChan, s.Messages) {
					return
				}
			}
		}
	}()

	return msgChan, nil
}

// claimPending проходит pending list группы курсором XAUTOCLAIM до конца.
// Возвращает false, если контекст отменён.
func (r *streamRepository) claimPending(ctx context.Context, out chan<- domain.StreamMessage, stream, group, consumer string) bool {
	start := "0-0"
	for {
		messages, next, err := r.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
			Stream:   stream,
			Group:    group,
			Consumer: consumer,
			MinIdle:  r.claimIdle,
			Start:    start,
			Count:    r.batchSize,
		}).Result()
		if err != nil {
			if ctx.Err() != nil {
				return false
			}
			r.logger.Error("Failed to claim pending messages",
				zap.String("stream", stream),
				zap.String("group", group),
				zap.Error(err))
			return true
		}

		if len(messages) > 0 {
			r.logger.Info("Claimed pending messages",
				zap.String("stream", stream),
				zap.String("consumer", consumer),
				zap.Int("count", len(messages)))
		}
		if !r.deliver(ctx, out, messages) {
			return false
		}

		if next == "" || next == "0-0" {
			return true
		}
		start = next
	}
}

// deliver отдаёт сообщения в канал. Сообщение без поля "data" уходит с пустым Data,
// чтобы consumer его подтвердил и оно не осталось в pending list.
func (r *streamRepository) deliver(ctx context.Context, out chan<- domain.StreamMessage, messages []redis.XMessage) bool {
	for _, msg := range messages {
		data, ok := msg.Values["data"].(string)
		if !ok {
			r.logger.Warn("Message does not contain 'data' field",
				zap.String("message_id", msg.ID))
		}

		select {
		case out <- domain.StreamMessage{ID: msg.ID, Data: data}:
		case <-ctx.Done():
			return false
		}
	}
	return true
}

// AckMessage подтверждает обработку сообщения
func (r *streamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	if err := r.client.XAck(ctx, stream, group, messageID).Err(); err != nil {
		r.logger.Error("Failed to acknowledge message",
			zap.String("stream", stream),
			zap.String("group", group),
			zap.String("message_id", messageID),
			zap.Error(err))
		return fmt.Errorf("failed to acknowledge message: %w", err)
	}

	r.logger.Debug("Message acknowledged", zap.String("message_id", messageID))
	return nil
}

// PublishToStream публикует JSON в поле "data"
func (r *streamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	id, err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			"data": string(jsonData),
		},
	}).Result()
	if err != nil {
		r.logger.Error("Failed to publish to stream",
			zap.String("stream", stream),
			zap.Error(err))
		return fmt.Errorf("failed to publish to stream: %w", err)
	}

	r.logger.Debug("Message published to stream",
		zap.String("stream", stream),
		zap.String("message_id", id))
	return nil
}
