package georeference_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/planning-docs-service/internal/config"
	"github.com/planning-docs-service/internal/domain"
	"github.com/planning-docs-service/internal/domain/repository/mocks"
	"github.com/planning-docs-service/internal/usecase"
	"github.com/planning-docs-service/internal/worker/georeference"
)

const group = "georeference-cache-test"

type workerEnv struct {
	worker     *georeference.CacheWorker
	streamRepo *mocks.StreamRepository
	coordRepo  *mocks.CoordinateRepository
	cacheRepo  *mocks.CacheRepository
}

func newWorkerEnv(t *testing.T, messages <-chan domain.StreamMessage) *workerEnv {
	t.Helper()

	env := &workerEnv{
		streamRepo: &mocks.StreamRepository{},
		coordRepo:  &mocks.CoordinateRepository{},
		cacheRepo:  &mocks.CacheRepository{},
	}
	cacheCfg := config.CacheConfig{
		CoordinatesCacheTTL:   time.Minute,
		GeoreferencesCacheTTL: time.Minute,
		StatsCacheTTL:         time.Minute,
	}

	env.streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamGeoreferenceChanged, group).Return(nil)
	env.streamRepo.On("ConsumeStream", mock.Anything, domain.StreamGeoreferenceChanged, group, mock.Anything).Return(messages, nil)

	coordUC := usecase.NewCoordinateUseCase(env.coordRepo, env.cacheRepo, nil, cacheCfg, zap.NewNop())
	statsUC := usecase.NewStatsUseCase(env.coordRepo, env.cacheRepo, time.Minute, zap.NewNop())
	env.worker = georeference.NewCacheWorker(env.streamRepo, coordUC, statsUC, group, zap.NewNop())
	return env
}

func (e *workerEnv) expectRefresh() {
	e.coordRepo.On("GetExistingGeoreferences", mock.Anything).Return([][]domain.Coordinate{}, nil)
	e.coordRepo.On("GetAllDocumentsCoordinates", mock.Anything).Return([]domain.DocCoordinates{}, nil)
	e.coordRepo.On("GetGeoreferenceStats", mock.Anything).Return(&domain.GeoreferenceStats{TotalDocuments: 4}, nil)
	e.cacheRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, time.Minute).Return(nil)
	e.cacheRepo.On("SetStats", mock.Anything, mock.Anything, time.Minute).Return(nil)
}

func TestCacheWorker_Name(t *testing.T) {
	env := newWorkerEnv(t, make(chan domain.StreamMessage))
	assert.Equal(t, "georeference-cache", env.worker.Name())
}

func TestCacheWorker_ProcessesEvents(t *testing.T) {
	ch := make(chan domain.StreamMessage, 2)
	ch <- domain.StreamMessage{ID: "1-0", Data: `{"document_id":2,"operation":"set","points":3}`}
	ch <- domain.StreamMessage{ID: "2-0", Data: `not json`}
	close(ch)

	env := newWorkerEnv(t, ch)
	env.expectRefresh()
	env.streamRepo.On("AckMessage", mock.Anything, domain.StreamGeoreferenceChanged, group, mock.Anything).Return(nil)

	require.NoError(t, env.worker.Start(context.Background()))

	env.streamRepo.AssertCalled(t, "AckMessage", mock.Anything, domain.StreamGeoreferenceChanged, group, "1-0")
	env.streamRepo.AssertCalled(t, "AckMessage", mock.Anything, domain.StreamGeoreferenceChanged, group, "2-0")
	// malformed event does not trigger a refresh
	env.coordRepo.AssertNumberOfCalls(t, "GetExistingGeoreferences", 1)
	env.cacheRepo.AssertCalled(t, "Set", mock.Anything, domain.CacheKeyExistingGeoreferences, mock.Anything, time.Minute)
	env.cacheRepo.AssertCalled(t, "Set", mock.Anything, domain.CacheKeyAllCoordinates, mock.Anything, time.Minute)
	env.cacheRepo.AssertCalled(t, "SetStats", mock.Anything, &domain.GeoreferenceStats{TotalDocuments: 4}, time.Minute)
}

func TestCacheWorker_RefreshFailureLeavesMessagePending(t *testing.T) {
	ch := make(chan domain.StreamMessage, 1)
	ch <- domain.StreamMessage{ID: "3-0", Data: `{"document_id":4,"operation":"delete","points":0}`}
	close(ch)

	env := newWorkerEnv(t, ch)
	env.coordRepo.On("GetExistingGeoreferences", mock.Anything).Return(nil, errors.New("db down"))

	require.NoError(t, env.worker.Start(context.Background()))

	env.streamRepo.AssertNotCalled(t, "AckMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCacheWorker_RedeliveredMessageAckedAfterRecovery(t *testing.T) {
	event := domain.StreamMessage{ID: "5-0", Data: `{"document_id":2,"operation":"update","points":1}`}
	ch := make(chan domain.StreamMessage, 2)
	ch <- event
	ch <- event
	close(ch)

	env := newWorkerEnv(t, ch)
	env.coordRepo.On("GetExistingGeoreferences", mock.Anything).Return(nil, errors.New("db down")).Once()
	env.expectRefresh()
	env.streamRepo.On("AckMessage", mock.Anything, domain.StreamGeoreferenceChanged, group, "5-0").Return(nil)

	require.NoError(t, env.worker.Start(context.Background()))

	env.streamRepo.AssertNumberOfCalls(t, "AckMessage", 1)
	env.coordRepo.AssertNumberOfCalls(t, "GetExistingGeoreferences", 2)
}

func TestCacheWorker_MessageWithoutDataAcked(t *testing.T) {
	ch := make(chan domain.StreamMessage, 1)
	ch <- domain.StreamMessage{ID: "6-0"}
	close(ch)

	env := newWorkerEnv(t, ch)
	env.streamRepo.On("AckMessage", mock.Anything, domain.StreamGeoreferenceChanged, group, "6-0").Return(nil)

	require.NoError(t, env.worker.Start(context.Background()))

	env.streamRepo.AssertExpectations(t)
	env.coordRepo.AssertNotCalled(t, "GetExistingGeoreferences", mock.Anything)
}

func TestCacheWorker_Stop(t *testing.T) {
	env := newWorkerEnv(t, make(chan domain.StreamMessage))

	require.NoError(t, env.worker.Stop())
	assert.NoError(t, env.worker.Start(context.Background()))
}

func TestCacheWorker_ContextCancelled(t *testing.T) {
	env := newWorkerEnv(t, make(chan domain.StreamMessage))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- env.worker.Start(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestCacheWorker_ConsumerGroupFailure(t *testing.T) {
	streamRepo := &mocks.StreamRepository{}
	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamGeoreferenceChanged, group).Return(errors.New("redis down"))

	w := georeference.NewCacheWorker(streamRepo, nil, nil, group, zap.NewNop())

	assert.Error(t, w.Start(context.Background()))
}
