package domain

// Coordinate - one row of a document georeference.
// A municipality-area row has nil PointOrder, Latitude and Longitude.
type Coordinate struct {
	ID               int64    `json:"id" db:"id"`
	DocumentID       int64    `json:"document_id" db:"document_id"`
	PointOrder       *int     `json:"point_order" db:"point_order"`
	Latitude         *float64 `json:"latitude" db:"latitude"`
	Longitude        *float64 `json:"longitude" db:"longitude"`
	MunicipalityArea int      `json:"municipality_area" db:"municipality_area"`
}

// IsMunicipalityArea reports whether the row is the whole-municipality marker.
func (c Coordinate) IsMunicipalityArea() bool {
	return c.MunicipalityArea == 1
}

// LatLng - wire shape of a point
type LatLng struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// DocCoordinates - a document with its stakeholders and ordered coordinates
type DocCoordinates struct {
	Document
	Coordinates []Coordinate `json:"coordinates"`
}

// GeoreferenceKind - shape of a document georeference
type GeoreferenceKind string

const (
	GeoreferenceNone         GeoreferenceKind = "none"
	GeoreferenceMunicipality GeoreferenceKind = "municipality"
	GeoreferencePoint        GeoreferenceKind = "point"
	GeoreferencePolygon      GeoreferenceKind = "polygon"
)

// ClassifyGeoreference returns the kind of georeference a coordinate list represents.
func ClassifyGeoreference(coords []Coordinate) GeoreferenceKind {
	switch {
	case len(coords) == 0:
		return GeoreferenceNone
	case len(coords) == 1 && coords[0].IsMunicipalityArea():
		return GeoreferenceMunicipality
	case len(coords) == 1:
		return GeoreferencePoint
	default:
		return GeoreferencePolygon
	}
}

// GeoreferenceStats - counts of documents per georeference kind
type GeoreferenceStats struct {
	TotalDocuments   int `json:"total_documents"`
	WithoutLocation  int `json:"without_location"`
	MunicipalityArea int `json:"municipality_area"`
	Points           int `json:"points"`
	Polygons         int `json:"polygons"`
}

// Add counts one document of the given kind.
func (s *GeoreferenceStats) Add(kind GeoreferenceKind) {
	s.TotalDocuments++
	switch kind {
	case GeoreferenceMunicipality:
		s.MunicipalityArea++
	case GeoreferencePoint:
		s.Points++
	case GeoreferencePolygon:
		s.Polygons++
	default:
		s.WithoutLocation++
	}
}
