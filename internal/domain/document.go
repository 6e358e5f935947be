package domain

// Document - a planning record
type Document struct {
	ID           int64         `json:"id" db:"id"`
	Title        string        `json:"title" db:"title"`
	Scale        string        `json:"scale" db:"scale"`
	IssuanceDate string        `json:"issuanceDate" db:"issuance_date"`
	Type         string        `json:"type" db:"type"`
	Language     *string       `json:"language" db:"language"`
	Pages        *int          `json:"pages" db:"pages"`
	Description  *string       `json:"description" db:"description"`
	Stakeholders []Stakeholder `json:"stakeholders"`
}

// NewDocument - data needed to create a document with its associations.
// Coordinates empty and MunicipalityArea false means no georeference.
type NewDocument struct {
	Title            string
	Scale            string
	IssuanceDate     string
	Type             string
	Language         *string
	Pages            *int
	Description      *string
	StakeholderIDs   []int64
	Coordinates      []LatLng
	MunicipalityArea bool
}

// HasGeoreference reports whether creation should also write coordinate rows.
func (d NewDocument) HasGeoreference() bool {
	return d.MunicipalityArea || len(d.Coordinates) > 0
}

// Stakeholder - an organisation involved in a document
type Stakeholder struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Color string `json:"color" db:"color"`
}

// Scale - a document scale label such as "1:1000"
type Scale struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// DocumentType - a document category
type DocumentType struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
