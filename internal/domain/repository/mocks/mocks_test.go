package mocks

import "github.com/planning-docs-service/internal/domain/repository"

var (
	_ repository.CoordinateRepository  = (*CoordinateRepository)(nil)
	_ repository.DocumentRepository    = (*DocumentRepository)(nil)
	_ repository.StakeholderRepository = (*StakeholderRepository)(nil)
	_ repository.CatalogRepository     = (*CatalogRepository)(nil)
	_ repository.LinkRepository        = (*LinkRepository)(nil)
	_ repository.UserRepository        = (*UserRepository)(nil)
	_ repository.CacheRepository       = (*CacheRepository)(nil)
	_ repository.SessionRepository     = (*SessionRepository)(nil)
	_ repository.StreamRepository      = (*StreamRepository)(nil)
)
