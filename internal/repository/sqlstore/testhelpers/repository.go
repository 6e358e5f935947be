package testhelpers

import (
	"github.com/planning-docs-service/internal/domain/repository"
	"github.com/planning-docs-service/internal/repository/sqlstore"
)

// NewCoordinateRepositoryForTest creates a coordinate repository over the test database
func (tdb *TestDB) NewCoordinateRepositoryForTest() repository.CoordinateRepository {
	return sqlstore.NewCoordinateRepository(tdb.Store)
}

// NewDocumentRepositoryForTest creates a document repository over the test database
func (tdb *TestDB) NewDocumentRepositoryForTest() repository.DocumentRepository {
	return sqlstore.NewDocumentRepository(tdb.Store)
}

func (tdb *TestDB) NewStakeholderRepositoryForTest() repository.StakeholderRepository {
	return sqlstore.NewStakeholderRepository(tdb.Store)
}

func (tdb *TestDB) NewCatalogRepositoryForTest() repository.CatalogRepository {
	return sqlstore.NewCatalogRepository(tdb.Store)
}

func (tdb *TestDB) NewLinkRepositoryForTest() repository.LinkRepository {
	return sqlstore.NewLinkRepository(tdb.Store)
}

func (tdb *TestDB) NewUserRepositoryForTest() repository.UserRepository {
	return sqlstore.NewUserRepository(tdb.Store)
}
