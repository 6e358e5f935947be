package usecase

import (
	"context"

	"github.com/planning-docs-service/internal/domain"
	"github.com/planning-docs-service/internal/domain/repository"
	"go.uber.org/zap"
)

// georeferenceNotifier invalidates derived cache keys and publishes a change event.
// Both steps are best-effort: failures are logged and never returned.
type georeferenceNotifier struct {
	cacheRepo  repository.CacheRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

func (n *georeferenceNotifier) changed(ctx context.Context, documentID int64, operation string, points int) {
	if err := n.cacheRepo.Delete(ctx, domain.GeoreferenceCacheKeys...); err != nil {
		n.logger.Warn("Failed to invalidate georeference cache",
			zap.Int64("document_id", documentID),
			zap.Error(err))
	}

	if n.streamRepo == nil {
		return
	}

	event := domain.NewGeoreferenceChangedEvent(documentID, operation, points)
	if err := n.streamRepo.PublishToStream(ctx, domain.StreamGeoreferenceChanged, event); err != nil {
		n.logger.Warn("Failed to publish georeference event",
			zap.Int64("document_id", documentID),
			zap.String("operation", operation),
			zap.Error(err))
	}
}
