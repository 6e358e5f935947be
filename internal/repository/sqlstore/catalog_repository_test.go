package sqlstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/planning-docs-service/internal/domain"
	apperrors "github.com/planning-docs-service/internal/pkg/errors"
	"github.com/planning-docs-service/internal/repository/sqlstore/testhelpers"
)

// CatalogRepositorySuite covers stakeholders, scales, types, links and users
type CatalogRepositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	ctx    context.Context
}

func (s *CatalogRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.testDB = testhelpers.SetupTestDB(s.T())
}

func (s *CatalogRepositorySuite) TearDownTest() {
	s.testDB.Close()
}

func (s *CatalogRepositorySuite) load(fixtures ...string) {
	s.Require().NoError(testhelpers.LoadFixtures(s.testDB.DB.DB, fixtures...))
}

// ============================================================================
// Stakeholders
// ============================================================================

func (s *CatalogRepositorySuite) TestStakeholders_EmptyIsNotFound() {
	repo := s.testDB.NewStakeholderRepositoryForTest()

	_, err := repo.GetAll(s.ctx)
	s.ErrorIs(err, apperrors.ErrStakeholdersNotFound)
}

func (s *CatalogRepositorySuite) TestStakeholders_CreateAndList() {
	s.load(testhelpers.Documents)
	repo := s.testDB.NewStakeholderRepositoryForTest()

	id, err := repo.Create(s.ctx, "Residents association", "#123456")
	s.Require().NoError(err)

	all, err := repo.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 4)
	s.Equal(domain.Stakeholder{ID: id, Name: "Residents association", Color: "#123456"}, all[3])
}

func (s *CatalogRepositorySuite) TestStakeholders_DuplicateNameFails() {
	s.load(testhelpers.Documents)
	repo := s.testDB.NewStakeholderRepositoryForTest()

	_, err := repo.Create(s.ctx, "LKAB", "#000000")
	s.Error(err)
}

// ============================================================================
// Scales and types
// ============================================================================

func (s *CatalogRepositorySuite) TestScalesAndTypes_EmptyIsNotFound() {
	repo := s.testDB.NewCatalogRepositoryForTest()

	_, err := repo.GetScales(s.ctx)
	s.ErrorIs(err, apperrors.ErrScalesNotFound)

	_, err = repo.GetTypes(s.ctx)
	s.ErrorIs(err, apperrors.ErrTypesNotFound)
}

func (s *CatalogRepositorySuite) TestScalesAndTypes_AddAndList() {
	s.load(testhelpers.Catalogs)
	repo := s.testDB.NewCatalogRepositoryForTest()

	_, err := repo.AddScale(s.ctx, "1:1000")
	s.Require().NoError(err)
	scales, err := repo.GetScales(s.ctx)
	s.Require().NoError(err)
	s.Len(scales, 4)
	s.Equal("1:1000", scales[3].Name)

	_, err = repo.AddType(s.ctx, "Technical")
	s.Require().NoError(err)
	types, err := repo.GetTypes(s.ctx)
	s.Require().NoError(err)
	s.Len(types, 4)
	s.Equal("Informative", types[0].Name)
}

// ============================================================================
// Links
// ============================================================================

func (s *CatalogRepositorySuite) TestLinks_CreateAndGet() {
	s.load(testhelpers.Documents, testhelpers.Links)
	repo := s.testDB.NewLinkRepositoryForTest()

	id, err := repo.Create(s.ctx, domain.Link{Doc1: 2, Doc2: 3, LinkType: domain.LinkProjection})
	s.Require().NoError(err)
	s.NotZero(id)

	links, err := repo.GetByDocument(s.ctx, 2)
	s.Require().NoError(err)
	s.Len(links, 2)
	s.Equal(domain.LinkDirectConsequence, links[0].LinkType)
	s.Equal(domain.LinkProjection, links[1].LinkType)
}

func (s *CatalogRepositorySuite) TestLinks_DuplicateInEitherDirection() {
	s.load(testhelpers.Documents, testhelpers.Links)
	repo := s.testDB.NewLinkRepositoryForTest()

	_, err := repo.Create(s.ctx, domain.Link{Doc1: 1, Doc2: 2, LinkType: domain.LinkDirectConsequence})
	s.ErrorIs(err, apperrors.ErrLinkExists)

	_, err = repo.Create(s.ctx, domain.Link{Doc1: 2, Doc2: 1, LinkType: domain.LinkDirectConsequence})
	s.ErrorIs(err, apperrors.ErrLinkExists)

	_, err = repo.Create(s.ctx, domain.Link{Doc1: 2, Doc2: 1, LinkType: domain.LinkUpdate})
	s.NoError(err)
}

func (s *CatalogRepositorySuite) TestLinks_Delete() {
	s.load(testhelpers.Documents, testhelpers.Links)
	repo := s.testDB.NewLinkRepositoryForTest()

	links, err := repo.GetByDocument(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(links, 1)

	s.Require().NoError(repo.Delete(s.ctx, links[0].ID))
	s.ErrorIs(repo.Delete(s.ctx, links[0].ID), apperrors.ErrLinkNotFound)

	links, err = repo.GetByDocument(s.ctx, 1)
	s.Require().NoError(err)
	s.Empty(links)
}

// ============================================================================
// Users
// ============================================================================

func (s *CatalogRepositorySuite) TestUsers_GetByUsername() {
	s.load(testhelpers.Catalogs)
	repo := s.testDB.NewUserRepositoryForTest()

	user, err := repo.GetByUsername(s.ctx, "planner")
	s.Require().NoError(err)
	s.Require().NotNil(user)
	s.True(user.IsPlanner())
	s.Equal("hash", user.PasswordHash)

	missing, err := repo.GetByUsername(s.ctx, "nobody")
	s.NoError(err)
	s.Nil(missing)
}

func (s *CatalogRepositorySuite) TestUsers_Create() {
	repo := s.testDB.NewUserRepositoryForTest()

	id, err := repo.Create(s.ctx, domain.User{
		Username:     "ingrid",
		Name:         "Ingrid",
		Surname:      "Nilsson",
		Role:         domain.RoleResident,
		PasswordHash: "secret-hash",
	})
	s.Require().NoError(err)

	user, err := repo.GetByUsername(s.ctx, "ingrid")
	s.Require().NoError(err)
	s.Equal(id, user.ID)
	s.False(user.IsPlanner())
}

func TestCatalogRepositorySuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositorySuite))
}
