package usecase_test

import (
	"context"
	"encoding/json"
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
)

var testCacheCfg = config.CacheConfig{
	CoordinatesCacheTTL:   time.Minute,
	GeoreferencesCacheTTL: 2 * time.Minute,
	StatsCacheTTL:         time.Hour,
}

func ptrFloat64(f float64) *float64 { return &f }
func ptrInt(i int) *int             { return &i }

func newCoordinateUseCase() (*usecase.CoordinateUseCase, *mocks.CoordinateRepository, *mocks.CacheRepository, *mocks.StreamRepository) {
	coordRepo := &mocks.CoordinateRepository{}
	cacheRepo := &mocks.CacheRepository{}
	streamRepo := &mocks.StreamRepository{}
	uc := usecase.NewCoordinateUseCase(coordRepo, cacheRepo, streamRepo, testCacheCfg, zap.NewNop())
	return uc, coordRepo, cacheRepo, streamRepo
}

func eventFor(documentID int64, operation string, points int) interface{} {
	return mock.MatchedBy(func(e domain.GeoreferenceChangedEvent) bool {
		return e.DocumentID == documentID && e.Operation == operation && e.Points == points
	})
}

func TestCoordinateUseCase_GetExistingGeoreferences(t *testing.T) {
	ctx := context.Background()
	groups := [][]domain.Coordinate{
		{
			{ID: 1, DocumentID: 2, PointOrder: ptrInt(1), Latitude: ptrFloat64(67.85), Longitude: ptrFloat64(20.22)},
			{ID: 2, DocumentID: 2, PointOrder: ptrInt(2), Latitude: ptrFloat64(67.86), Longitude: ptrFloat64(20.23)},
		},
	}

	t.Run("served from cache without a store call", func(t *testing.T) {
		uc, coordRepo, cacheRepo, _ := newCoordinateUseCase()
		data, _ := json.Marshal(groups)
		cacheRepo.On("Get", ctx, domain.CacheKeyExistingGeoreferences).Return(data, nil)

		got, err := uc.GetExistingGeoreferences(ctx)

		require.NoError(t, err)
		assert.Equal(t, groups, got)
		coordRepo.AssertNotCalled(t, "GetExistingGeoreferences", mock.Anything)
	})

	t.Run("miss loads from store and caches", func(t *testing.T) {
		uc, coordRepo, cacheRepo, _ := newCoordinateUseCase()
		cacheRepo.On("Get", ctx, domain.CacheKeyExistingGeoreferences).Return(nil, nil)
		coordRepo.On("GetExistingGeoreferences", ctx).Return(groups, nil)
		cacheRepo.On("Set", ctx, domain.CacheKeyExistingGeoreferences, mock.Anything, 2*time.Minute).Return(nil)

		got, err := uc.GetExistingGeoreferences(ctx)

		require.NoError(t, err)
		assert.Equal(t, groups, got)
		coordRepo.AssertExpectations(t)
		cacheRepo.AssertExpectations(t)
	})

	t.Run("cache fault falls through to the store", func(t *testing.T) {
		uc, coordRepo, cacheRepo, _ := newCoordinateUseCase()
		cacheRepo.On("Get", ctx, domain.CacheKeyExistingGeoreferences).Return(nil, errors.New("redis down"))
		coordRepo.On("GetExistingGeoreferences", ctx).Return(groups, nil)
		cacheRepo.On("Set", ctx, domain.CacheKeyExistingGeoreferences, mock.Anything, mock.Anything).Return(errors.New("redis down"))

		got, err := uc.GetExistingGeoreferences(ctx)

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("store fault propagates", func(t *testing.T) {
		uc, coordRepo, cacheRepo, _ := newCoordinateUseCase()
		storeErr := errors.New("database is locked")
		cacheRepo.On("Get", ctx, domain.CacheKeyExistingGeoreferences).Return(nil, nil)
		coordRepo.On("GetExistingGeoreferences", ctx).Return(nil, storeErr)

		got, err := uc.GetExistingGeoreferences(ctx)

		assert.ErrorIs(t, err, storeErr)
		assert.Nil(t, got)
	})
}

func TestCoordinateUseCase_GetAllDocumentsCoordinates(t *testing.T) {
	ctx := context.Background()
	docs := []domain.DocCoordinates{
		{
			Document: domain.Document{
				ID:           1,
				Title:        "Compilation",
				Stakeholders: []domain.Stakeholder{{ID: 1, Name: "Kiruna kommun", Color: "#8A2BE2"}},
			},
			Coordinates: []domain.Coordinate{{ID: 1, DocumentID: 1, MunicipalityArea: 1}},
		},
	}

	uc, coordRepo, cacheRepo, _ := newCoordinateUseCase()
	cacheRepo.On("Get", ctx, domain.CacheKeyAllCoordinates).Return(nil, nil).Once()
	coordRepo.On("GetAllDocumentsCoordinates", ctx).Return(docs, nil).Once()
	cacheRepo.On("Set", ctx, domain.CacheKeyAllCoordinates, mock.Anything, time.Minute).Return(nil).Once()

	got, err := uc.GetAllDocumentsCoordinates(ctx)
	require.NoError(t, err)
	assert.Equal(t, docs, got)

	// second call hits the cache with the value written by the first
	cached := cacheRepo.Calls[1].Arguments.Get(2).([]byte)
	cacheRepo.On("Get", ctx, domain.CacheKeyAllCoordinates).Return(cached, nil).Once()

	got, err = uc.GetAllDocumentsCoordinates(ctx)
	require.NoError(t, err)
	assert.Equal(t, docs, got)
	coordRepo.AssertNumberOfCalls(t, "GetAllDocumentsCoordinates", 1)
}

func TestCoordinateUseCase_Writes(t *testing.T) {
	ctx := context.Background()
	points := []domain.LatLng{{Lat: 40.7128, Lng: -74.006}}

	t.Run("set invalidates cache and publishes", func(t *testing.T) {
		uc, coordRepo, cacheRepo, streamRepo := newCoordinateUseCase()
		coordRepo.On("SetDocumentCoordinates", ctx, int64(1), points).Return(nil)
		cacheRepo.On("Delete", ctx, domain.GeoreferenceCacheKeys).Return(nil)
		streamRepo.On("PublishToStream", ctx, domain.StreamGeoreferenceChanged, eventFor(1, domain.GeoreferenceSet, 1)).Return(nil)

		require.NoError(t, uc.SetDocumentCoordinates(ctx, 1, points))

		coordRepo.AssertExpectations(t)
		cacheRepo.AssertExpectations(t)
		streamRepo.AssertExpectations(t)
	})

	t.Run("update with empty list", func(t *testing.T) {
		uc, coordRepo, cacheRepo, streamRepo := newCoordinateUseCase()
		coordRepo.On("UpdateDocumentCoordinates", ctx, int64(2), []domain.LatLng{}).Return(nil)
		cacheRepo.On("Delete", ctx, domain.GeoreferenceCacheKeys).Return(nil)
		streamRepo.On("PublishToStream", ctx, domain.StreamGeoreferenceChanged, eventFor(2, domain.GeoreferenceUpdated, 0)).Return(nil)

		require.NoError(t, uc.UpdateDocumentCoordinates(ctx, 2, []domain.LatLng{}))
		streamRepo.AssertExpectations(t)
	})

	t.Run("cache and stream faults do not fail the write", func(t *testing.T) {
		uc, coordRepo, cacheRepo, streamRepo := newCoordinateUseCase()
		coordRepo.On("DeleteDocumentCoordinatesByID", ctx, int64(3)).Return(nil)
		cacheRepo.On("Delete", ctx, domain.GeoreferenceCacheKeys).Return(errors.New("redis down"))
		streamRepo.On("PublishToStream", ctx, domain.StreamGeoreferenceChanged, mock.Anything).Return(errors.New("redis down"))

		assert.NoError(t, uc.DeleteDocumentCoordinatesByID(ctx, 3))
	})

	t.Run("store fault skips invalidation", func(t *testing.T) {
		uc, coordRepo, cacheRepo, streamRepo := newCoordinateUseCase()
		storeErr := errors.New("constraint failed")
		coordRepo.On("SetDocumentCoordinates", ctx, int64(9), points).Return(storeErr)

		err := uc.SetDocumentCoordinates(ctx, 9, points)

		assert.ErrorIs(t, err, storeErr)
		cacheRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		streamRepo.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("nil stream repository", func(t *testing.T) {
		coordRepo := &mocks.CoordinateRepository{}
		cacheRepo := &mocks.CacheRepository{}
		uc := usecase.NewCoordinateUseCase(coordRepo, cacheRepo, nil, testCacheCfg, zap.NewNop())
		coordRepo.On("SetDocumentCoordinates", ctx, int64(1), points).Return(nil)
		cacheRepo.On("Delete", ctx, domain.GeoreferenceCacheKeys).Return(nil)

		assert.NoError(t, uc.SetDocumentCoordinates(ctx, 1, points))
	})
}

func TestCoordinateUseCase_RefreshGeoreferenceCache(t *testing.T) {
	ctx := context.Background()
	uc, coordRepo, cacheRepo, _ := newCoordinateUseCase()

	coordRepo.On("GetExistingGeoreferences", ctx).Return([][]domain.Coordinate{}, nil)
	coordRepo.On("GetAllDocumentsCoordinates", ctx).Return([]domain.DocCoordinates{}, nil)
	cacheRepo.On("Set", ctx, domain.CacheKeyExistingGeoreferences, []byte("[]"), 2*time.Minute).Return(nil)
	cacheRepo.On("Set", ctx, domain.CacheKeyAllCoordinates, []byte("[]"), time.Minute).Return(nil)

	require.NoError(t, uc.RefreshGeoreferenceCache(ctx))
	cacheRepo.AssertExpectations(t)

	t.Run("cache fault is returned", func(t *testing.T) {
		uc, coordRepo, cacheRepo, _ := newCoordinateUseCase()
		coordRepo.On("GetExistingGeoreferences", ctx).Return([][]domain.Coordinate{}, nil)
		cacheRepo.On("Set", ctx, domain.CacheKeyExistingGeoreferences, mock.Anything, mock.Anything).Return(errors.New("redis down"))

		assert.Error(t, uc.RefreshGeoreferenceCache(ctx))
	})
}
