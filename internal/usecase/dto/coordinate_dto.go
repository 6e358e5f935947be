package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/planning-docs-service/internal/domain"
)

// CoordinatesRequest - запрос на запись геопривязки документа
type CoordinatesRequest struct {
	IDDoc       int64     `json:"idDoc" validate:"required,gt=0"`
	Coordinates PointList `json:"coordinates" validate:"omitempty,dive"`
}

// PointList accepts a single {lat, lng} object or an array of them.
// null or a missing field decodes to an empty list (whole municipality).
type PointList []domain.LatLng

// PointListError - coordinates не соответствуют форме LatLng
type PointListError struct {
	Index  int // -1 when the value itself is malformed
	Reason string
}

func (e *PointListError) Error() string {
	if e.Index < 0 {
		return "coordinates: " + e.Reason
	}
	return fmt.Sprintf("coordinates[%d]: %s", e.Index, e.Reason)
}

// Field returns the request path of the offending value.
func (e *PointListError) Field() string {
	if e.Index < 0 {
		return "coordinates"
	}
	return fmt.Sprintf("coordinates[%d]", e.Index)
}

func (p *PointList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*p = PointList{}
		return nil
	case data[0] == '{':
		point, err := decodeLatLng(data)
		if err != nil {
			return &PointListError{Index: -1, Reason: err.Error()}
		}
		*p = PointList{point}
		return nil
	case data[0] == '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return &PointListError{Index: -1, Reason: "must be an array of {lat, lng} objects"}
		}
		points := make(PointList, 0, len(items))
		for i, item := range items {
			item = bytes.TrimSpace(item)
			if len(item) == 0 || item[0] != '{' {
				return &PointListError{Index: i, Reason: "must be a {lat, lng} object"}
			}
			point, err := decodeLatLng(item)
			if err != nil {
				return &PointListError{Index: i, Reason: err.Error()}
			}
			points = append(points, point)
		}
		*p = points
		return nil
	default:
		return &PointListError{Index: -1, Reason: "must be a {lat, lng} object or an array of them"}
	}
}

// AsLatLng returns the points as a plain slice; an absent field yields an empty one.
func (p PointList) AsLatLng() []domain.LatLng {
	if p == nil {
		return []domain.LatLng{}
	}
	return []domain.LatLng(p)
}

type rawLatLng struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

func decodeLatLng(data []byte) (domain.LatLng, error) {
	var raw rawLatLng
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.LatLng{}, fmt.Errorf("lat and lng must be numbers")
	}
	if raw.Lat == nil || raw.Lng == nil {
		return domain.LatLng{}, fmt.Errorf("lat and lng are required")
	}
	return domain.LatLng{Lat: *raw.Lat, Lng: *raw.Lng}, nil
}
