package sqlstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/planning-docs-service/internal/domain"
	"github.com/planning-docs-service/internal/domain/repository"
	apperrors "github.com/planning-docs-service/internal/pkg/errors"
	"github.com/planning-docs-service/internal/repository/sqlstore/testhelpers"
)

// CoordinateRepositorySuite tests the coordinate store against in-memory SQLite
type CoordinateRepositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.CoordinateRepository
	ctx    context.Context
}

// SetupTest gives every test a fresh database with fixtures
func (s *CoordinateRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.LoadFixtures(s.testDB.DB.DB, testhelpers.Documents, testhelpers.Coordinates)
	s.Require().NoError(err, "Failed to load fixtures")

	s.repo = s.testDB.NewCoordinateRepositoryForTest()
}

func (s *CoordinateRepositorySuite) TearDownTest() {
	s.testDB.Close()
}

func (s *CoordinateRepositorySuite) byID(docs []domain.DocCoordinates, id int64) *domain.DocCoordinates {
	for i := range docs {
		if docs[i].ID == id {
			return &docs[i]
		}
	}
	return nil
}

// ============================================================================
// Test GetAllDocumentsCoordinates
// ============================================================================

func (s *CoordinateRepositorySuite) TestGetAll_ReturnsOnlyGeoreferencedDocuments() {
	docs, err := s.repo.GetAllDocumentsCoordinates(s.ctx)
	s.Require().NoError(err)
	s.Len(docs, 3)
	s.Nil(s.byID(docs, testhelpers.DocAdjustedID), "document without coordinates must be absent")
}

func (s *CoordinateRepositorySuite) TestGetAll_FanOutIsDeduplicated() {
	docs, err := s.repo.GetAllDocumentsCoordinates(s.ctx)
	s.Require().NoError(err)

	doc := s.byID(docs, testhelpers.DocDetailPlanID)
	s.Require().NotNil(doc)
	s.Len(doc.Stakeholders, 2)
	s.Len(doc.Coordinates, 3)
	s.Equal("Detail plan for Bolagsomradet Gruvstadspark", doc.Title)
	s.Equal("1:8000", doc.Scale)
	s.Equal("2010-10-20", doc.IssuanceDate)
	s.Require().NotNil(doc.Pages)
	s.Equal(32, *doc.Pages)
}

func (s *CoordinateRepositorySuite) TestGetAll_CoordinatesOrderedByPointOrder() {
	docs, err := s.repo.GetAllDocumentsCoordinates(s.ctx)
	s.Require().NoError(err)

	doc := s.byID(docs, testhelpers.DocDetailPlanID)
	s.Require().NotNil(doc)
	for i, c := range doc.Coordinates {
		s.Require().NotNil(c.PointOrder)
		s.Equal(i+1, *c.PointOrder)
	}
	s.InDelta(67.8550, *doc.Coordinates[0].Latitude, 1e-9)
	s.InDelta(20.2290, *doc.Coordinates[2].Longitude, 1e-9)
}

func (s *CoordinateRepositorySuite) TestGetAll_MunicipalityMarker() {
	docs, err := s.repo.GetAllDocumentsCoordinates(s.ctx)
	s.Require().NoError(err)

	doc := s.byID(docs, testhelpers.DocCompilationID)
	s.Require().NotNil(doc)
	s.Require().Len(doc.Coordinates, 1)
	c := doc.Coordinates[0]
	s.True(c.IsMunicipalityArea())
	s.Nil(c.Latitude)
	s.Nil(c.Longitude)
	s.Nil(c.PointOrder)
}

func (s *CoordinateRepositorySuite) TestGetAll_EmptyStore() {
	s.testDB.Exec(s.T(), `DELETE FROM document_coordinates`)

	docs, err := s.repo.GetAllDocumentsCoordinates(s.ctx)
	s.Require().NoError(err)
	s.NotNil(docs)
	s.Empty(docs)
}

// ============================================================================
// Test SetDocumentCoordinates
// ============================================================================

func (s *CoordinateRepositorySuite) TestSet_SinglePointRoundTrip() {
	err := s.repo.SetDocumentCoordinates(s.ctx, testhelpers.DocAdjustedID, []domain.LatLng{{Lat: 40.71, Lng: -74.01}})
	s.Require().NoError(err)

	coords, err := s.repo.GetCoordinatesByDocument(s.ctx, testhelpers.DocAdjustedID)
	s.Require().NoError(err)
	s.Require().Len(coords, 1)
	s.Equal(1, *coords[0].PointOrder)
	s.Equal(40.71, *coords[0].Latitude)
	s.Equal(-74.01, *coords[0].Longitude)
	s.Equal(0, coords[0].MunicipalityArea)
}

func (s *CoordinateRepositorySuite) TestSet_PolygonKeepsInputOrder() {
	points := []domain.LatLng{
		{Lat: 34.05, Lng: -118.24},
		{Lat: 34.06, Lng: -118.25},
		{Lat: 34.07, Lng: -118.23},
		{Lat: 34.04, Lng: -118.22},
	}
	s.Require().NoError(s.repo.SetDocumentCoordinates(s.ctx, testhelpers.DocAdjustedID, points))

	coords, err := s.repo.GetCoordinatesByDocument(s.ctx, testhelpers.DocAdjustedID)
	s.Require().NoError(err)
	s.Require().Len(coords, len(points))
	for i, c := range coords {
		s.Equal(i+1, *c.PointOrder)
		s.Equal(points[i].Lat, *c.Latitude)
		s.Equal(points[i].Lng, *c.Longitude)
	}
}

func (s *CoordinateRepositorySuite) TestSet_EmptyListWritesMunicipalityMarker() {
	s.Require().NoError(s.repo.SetDocumentCoordinates(s.ctx, testhelpers.DocAdjustedID, nil))

	coords, err := s.repo.GetCoordinatesByDocument(s.ctx, testhelpers.DocAdjustedID)
	s.Require().NoError(err)
	s.Require().Len(coords, 1)
	s.True(coords[0].IsMunicipalityArea())
	s.Nil(coords[0].Latitude)
	s.Nil(coords[0].PointOrder)
}

func (s *CoordinateRepositorySuite) TestSet_UnknownDocumentFails() {
	err := s.repo.SetDocumentCoordinates(s.ctx, 999, []domain.LatLng{{Lat: 1, Lng: 1}})
	s.Error(err)
}

func (s *CoordinateRepositorySuite) TestSet_MunicipalityDocumentRefused() {
	err := s.repo.SetDocumentCoordinates(s.ctx, testhelpers.DocCompilationID, []domain.LatLng{{Lat: 1, Lng: 2}})
	s.Require().ErrorIs(err, apperrors.ErrGeoreferenceExists)

	coords, err := s.repo.GetCoordinatesByDocument(s.ctx, testhelpers.DocCompilationID)
	s.Require().NoError(err)
	s.Require().Len(coords, 1, "marker must not coexist with points")
	s.True(coords[0].IsMunicipalityArea())
}

func (s *CoordinateRepositorySuite) TestSet_TwiceKeepsFirstGeoreference() {
	s.Require().NoError(s.repo.SetDocumentCoordinates(s.ctx, testhelpers.DocAdjustedID, []domain.LatLng{{Lat: 3, Lng: 4}}))

	err := s.repo.SetDocumentCoordinates(s.ctx, testhelpers.DocAdjustedID, []domain.LatLng{{Lat: 5, Lng: 6}})
	s.Require().ErrorIs(err, apperrors.ErrGeoreferenceExists)

	err = s.repo.SetDocumentCoordinates(s.ctx, testhelpers.DocDevPlanID, []domain.LatLng{{Lat: 3, Lng: 4}})
	s.Require().ErrorIs(err, apperrors.ErrGeoreferenceExists)

	coords, err := s.repo.GetCoordinatesByDocument(s.ctx, testhelpers.DocAdjustedID)
	s.Require().NoError(err)
	s.Require().Len(coords, 1)
	s.Equal(3.0, *coords[0].Latitude)

	coords, err = s.repo.GetCoordinatesByDocument(s.ctx, testhelpers.DocDevPlanID)
	s.Require().NoError(err)
	s.Len(coords, 1, "point_order must stay unique per document")
}

// ============================================================================
// Test UpdateDocumentCoordinates
// ============================================================================

func (s *CoordinateRepositorySuite) TestUpdate_ReplacesPolygonWithPoint() {
	err := s.repo.UpdateDocumentCoordinates(s.ctx, testhelpers.DocDetailPlanID, []domain.LatLng{{Lat: 67.85, Lng: 20.22}})
	s.Require().NoError(err)

	coords, err := s.repo.GetCoordinatesByDocument(s.ctx, testhelpers.DocDetailPlanID)
	s.Require().NoError(err)
	s.Require().Len(coords, 1)
	s.Equal(1, *coords[0].PointOrder)
	s.Equal(67.85, *coords[0].Latitude)
}

func (s *CoordinateRepositorySuite) TestUpdate_PointToMunicipality() {
	s.Require().NoError(s.repo.UpdateDocumentCoordinates(s.ctx, testhelpers.DocDevPlanID, []domain.LatLng{}))

	coords, err := s.repo.GetCoordinatesByDocument(s.ctx, testhelpers.DocDevPlanID)
	s.Require().NoError(err)
	s.Require().Len(coords, 1)
	s.True(coords[0].IsMunicipalityArea())
}

func (s *CoordinateRepositorySuite) TestUpdate_FailureKeepsPreviousRows() {
	s.testDB.Exec(s.T(), testhelpers.RejectLatitudeAbove(90))

	err := s.repo.UpdateDocumentCoordinates(s.ctx, testhelpers.DocDetailPlanID, []domain.LatLng{
		{Lat: 10, Lng: 10},
		{Lat: 91, Lng: 10},
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "insert point 2")

	coords, err := s.repo.GetCoordinatesByDocument(s.ctx, testhelpers.DocDetailPlanID)
	s.Require().NoError(err)
	s.Len(coords, 3, "previous polygon must survive a failed update")
	s.InDelta(67.8550, *coords[0].Latitude, 1e-9)
}

func (s *CoordinateRepositorySuite) TestSet_FailureWritesNothing() {
	s.testDB.Exec(s.T(), testhelpers.RejectLatitudeAbove(90))

	err := s.repo.SetDocumentCoordinates(s.ctx, testhelpers.DocAdjustedID, []domain.LatLng{
		{Lat: 10, Lng: 10},
		{Lat: 95, Lng: 10},
	})
	s.Require().Error(err)

	coords, err := s.repo.GetCoordinatesByDocument(s.ctx, testhelpers.DocAdjustedID)
	s.Require().NoError(err)
	s.Empty(coords)
}

// ============================================================================
// Test DeleteDocumentCoordinatesByID
// ============================================================================

func (s *CoordinateRepositorySuite) TestDelete_RemovesAllRows() {
	s.Require().NoError(s.repo.DeleteDocumentCoordinatesByID(s.ctx, testhelpers.DocDetailPlanID))

	coords, err := s.repo.GetCoordinatesByDocument(s.ctx, testhelpers.DocDetailPlanID)
	s.Require().NoError(err)
	s.Empty(coords)
}

func (s *CoordinateRepositorySuite) TestDelete_Idempotent() {
	s.Require().NoError(s.repo.DeleteDocumentCoordinatesByID(s.ctx, testhelpers.DocDetailPlanID))
	s.Require().NoError(s.repo.DeleteDocumentCoordinatesByID(s.ctx, testhelpers.DocDetailPlanID))
	s.NoError(s.repo.DeleteDocumentCoordinatesByID(s.ctx, 999))
}

// ============================================================================
// Test GetExistingGeoreferences
// ============================================================================

func (s *CoordinateRepositorySuite) TestGetExistingGeoreferences_ExcludesMunicipality() {
	groups, err := s.repo.GetExistingGeoreferences(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(groups, 2)

	s.Len(groups[0], 3)
	s.Equal(int64(testhelpers.DocDetailPlanID), groups[0][0].DocumentID)
	for i, c := range groups[0] {
		s.Equal(i+1, *c.PointOrder)
	}

	s.Len(groups[1], 1)
	s.Equal(int64(testhelpers.DocDevPlanID), groups[1][0].DocumentID)

	for _, g := range groups {
		for _, c := range g {
			s.False(c.IsMunicipalityArea())
		}
	}
}

func (s *CoordinateRepositorySuite) TestGetExistingGeoreferences_Empty() {
	s.testDB.Exec(s.T(), `DELETE FROM document_coordinates WHERE municipality_area = 0`)

	groups, err := s.repo.GetExistingGeoreferences(s.ctx)
	s.Require().NoError(err)
	s.NotNil(groups)
	s.Empty(groups)
}

// ============================================================================
// Test GetGeoreferenceStats
// ============================================================================

func (s *CoordinateRepositorySuite) TestGetGeoreferenceStats() {
	stats, err := s.repo.GetGeoreferenceStats(s.ctx)
	s.Require().NoError(err)
	s.Equal(domain.GeoreferenceStats{
		TotalDocuments:   4,
		WithoutLocation:  1,
		MunicipalityArea: 1,
		Points:           1,
		Polygons:         1,
	}, *stats)
}

// TestCoordinateRepositorySuite runs the test suite
func TestCoordinateRepositorySuite(t *testing.T) {
	suite.Run(t, new(CoordinateRepositorySuite))
}
