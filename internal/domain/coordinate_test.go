package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyGeoreference(t *testing.T) {
	lat, lng := 67.85, 20.22
	one := 1
	two := 2

	tests := []struct {
		name     string
		coords   []Coordinate
		expected GeoreferenceKind
	}{
		{
			name:     "no rows",
			coords:   nil,
			expected: GeoreferenceNone,
		},
		{
			name:     "municipality marker",
			coords:   []Coordinate{{MunicipalityArea: 1}},
			expected: GeoreferenceMunicipality,
		},
		{
			name:     "single point",
			coords:   []Coordinate{{PointOrder: &one, Latitude: &lat, Longitude: &lng}},
			expected: GeoreferencePoint,
		},
		{
			name: "polygon",
			coords: []Coordinate{
				{PointOrder: &one, Latitude: &lat, Longitude: &lng},
				{PointOrder: &two, Latitude: &lat, Longitude: &lng},
			},
			expected: GeoreferencePolygon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyGeoreference(tt.coords))
		})
	}
}

func TestGeoreferenceStats_Add(t *testing.T) {
	var stats GeoreferenceStats
	stats.Add(GeoreferenceNone)
	stats.Add(GeoreferenceMunicipality)
	stats.Add(GeoreferencePoint)
	stats.Add(GeoreferencePolygon)
	stats.Add(GeoreferencePolygon)

	assert.Equal(t, GeoreferenceStats{
		TotalDocuments:   5,
		WithoutLocation:  1,
		MunicipalityArea: 1,
		Points:           1,
		Polygons:         2,
	}, stats)
}

func TestNewDocument_HasGeoreference(t *testing.T) {
	assert.False(t, NewDocument{Title: "Plan"}.HasGeoreference())
	assert.True(t, NewDocument{MunicipalityArea: true}.HasGeoreference())
	assert.True(t, NewDocument{Coordinates: []LatLng{{Lat: 67.85, Lng: 20.22}}}.HasGeoreference())
}
