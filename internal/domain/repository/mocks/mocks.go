// Package mocks holds testify mocks of the repository ports.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/planning-docs-service/internal/domain"
)

// CoordinateRepository is a mock of repository.CoordinateRepository
type CoordinateRepository struct {
	mock.Mock
}

func (m *CoordinateRepository) GetAllDocumentsCoordinates(ctx context.Context) ([]domain.DocCoordinates, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocCoordinates), args.Error(1)
}

func (m *CoordinateRepository) SetDocumentCoordinates(ctx context.Context, documentID int64, points []domain.LatLng) error {
	args := m.Called(ctx, documentID, points)
	return args.Error(0)
}

func (m *CoordinateRepository) UpdateDocumentCoordinates(ctx context.Context, documentID int64, points []domain.LatLng) error {
	args := m.Called(ctx, documentID, points)
	return args.Error(0)
}

func (m *CoordinateRepository) DeleteDocumentCoordinatesByID(ctx context.Context, documentID int64) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}

func (m *CoordinateRepository) GetExistingGeoreferences(ctx context.Context) ([][]domain.Coordinate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]domain.Coordinate), args.Error(1)
}

func (m *CoordinateRepository) GetCoordinatesByDocument(ctx context.Context, documentID int64) ([]domain.Coordinate, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Coordinate), args.Error(1)
}

func (m *CoordinateRepository) GetGeoreferenceStats(ctx context.Context) (*domain.GeoreferenceStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeoreferenceStats), args.Error(1)
}

// DocumentRepository is a mock of repository.DocumentRepository
type DocumentRepository struct {
	mock.Mock
}

func (m *DocumentRepository) Create(ctx context.Context, doc domain.NewDocument) (int64, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DocumentRepository) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *DocumentRepository) List(ctx context.Context) ([]domain.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *DocumentRepository) UpdateDescription(ctx context.Context, id int64, description string) error {
	args := m.Called(ctx, id, description)
	return args.Error(0)
}

// StakeholderRepository is a mock of repository.StakeholderRepository
type StakeholderRepository struct {
	mock.Mock
}

func (m *StakeholderRepository) GetAll(ctx context.Context) ([]domain.Stakeholder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Stakeholder), args.Error(1)
}

func (m *StakeholderRepository) Create(ctx context.Context, name, color string) (int64, error) {
	args := m.Called(ctx, name, color)
	return args.Get(0).(int64), args.Error(1)
}

// CatalogRepository is a mock of repository.CatalogRepository
type CatalogRepository struct {
	mock.Mock
}

func (m *CatalogRepository) GetScales(ctx context.Context) ([]domain.Scale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Scale), args.Error(1)
}

func (m *CatalogRepository) AddScale(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CatalogRepository) GetTypes(ctx context.Context) ([]domain.DocumentType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentType), args.Error(1)
}

func (m *CatalogRepository) AddType(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

// LinkRepository is a mock of repository.LinkRepository
type LinkRepository struct {
	mock.Mock
}

func (m *LinkRepository) Create(ctx context.Context, link domain.Link) (int64, error) {
	args := m.Called(ctx, link)
	return args.Get(0).(int64), args.Error(1)
}

func (m *LinkRepository) GetByDocument(ctx context.Context, documentID int64) ([]domain.Link, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Link), args.Error(1)
}

func (m *LinkRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// UserRepository is a mock of repository.UserRepository
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, user domain.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

// CacheRepository is a mock of repository.CacheRepository
type CacheRepository struct {
	mock.Mock
}

func (m *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *CacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *CacheRepository) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *CacheRepository) GetStats(ctx context.Context) (*domain.GeoreferenceStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeoreferenceStats), args.Error(1)
}

func (m *CacheRepository) SetStats(ctx context.Context, stats *domain.GeoreferenceStats, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

// SessionRepository is a mock of repository.SessionRepository
type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Create(ctx context.Context, user domain.User, ttl time.Duration) (*domain.Session, error) {
	args := m.Called(ctx, user, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *SessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *SessionRepository) Touch(ctx context.Context, id string, ttl time.Duration) error {
	args := m.Called(ctx, id, ttl)
	return args.Error(0)
}

func (m *SessionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// StreamRepository is a mock of repository.StreamRepository
type StreamRepository struct {
	mock.Mock
}

func (m *StreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *StreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *StreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *StreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}
