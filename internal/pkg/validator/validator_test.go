package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planning-docs-service/internal/domain"
	apperrors "github.com/planning-docs-service/internal/pkg/errors"
	"github.com/planning-docs-service/internal/usecase/dto"
)

func TestValidate_CoordinatesRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CoordinatesRequest
		wantErr bool
		field   string
	}{
		{
			name: "valid point",
			req:  dto.CoordinatesRequest{IDDoc: 1, Coordinates: dto.PointList{{Lat: 40.7128, Lng: -74.006}}},
		},
		{
			name: "boundaries are inclusive",
			req:  dto.CoordinatesRequest{IDDoc: 1, Coordinates: dto.PointList{{Lat: -90, Lng: 180}, {Lat: 90, Lng: -180}}},
		},
		{
			name: "municipality",
			req:  dto.CoordinatesRequest{IDDoc: 1},
		},
		{
			name:    "missing id",
			req:     dto.CoordinatesRequest{Coordinates: dto.PointList{{Lat: 1, Lng: 1}}},
			wantErr: true,
			field:   "idDoc",
		},
		{
			name:    "latitude out of range",
			req:     dto.CoordinatesRequest{IDDoc: 1, Coordinates: dto.PointList{{Lat: 1, Lng: 1}, {Lat: 90.5, Lng: 1}}},
			wantErr: true,
			field:   "coordinates[1].lat",
		},
		{
			name:    "longitude out of range",
			req:     dto.CoordinatesRequest{IDDoc: 1, Coordinates: dto.PointList{{Lat: 1, Lng: -181}}},
			wantErr: true,
			field:   "coordinates[0].lng",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.req)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, 422, appErr.StatusCode)
			assert.Contains(t, appErr.Details, tt.field)
		})
	}
}

func TestValidate_LinkRequest(t *testing.T) {
	assert.NoError(t, Validate(&dto.LinkRequest{Doc1: 1, Doc2: 2, LinkType: domain.LinkCollateralConsequence}))

	err := Validate(&dto.LinkRequest{Doc1: 1, Doc2: 1, LinkType: "unknown"})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Contains(t, appErr.Details, "doc2")
	assert.Contains(t, appErr.Details, "linkType")
}

func TestValidate_SentinelUntouched(t *testing.T) {
	_ = Validate(&dto.LoginRequest{})
	assert.Nil(t, apperrors.ErrValidation.Details)
}
