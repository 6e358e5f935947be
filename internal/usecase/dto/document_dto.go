package dto

import "github.com/planning-docs-service/internal/domain"

// DocumentRequest - запрос на создание документа
type DocumentRequest struct {
	Title            string    `json:"title" validate:"required,max=255"`
	Scale            string    `json:"scale" validate:"required"`
	IssuanceDate     string    `json:"issuanceDate" validate:"required"`
	Type             string    `json:"type" validate:"required"`
	Language         *string   `json:"language" validate:"omitempty,min=1"`
	Pages            *int      `json:"pages" validate:"omitempty,gt=0"`
	Description      *string   `json:"description"`
	Stakeholders     []int64   `json:"stakeholders" validate:"required,min=1,dive,gt=0"`
	Coordinates      PointList `json:"coordinates" validate:"omitempty,dive"`
	MunicipalityArea bool      `json:"municipalityArea"`
}

// ToNewDocument converts the request into the store input.
func (r DocumentRequest) ToNewDocument() domain.NewDocument {
	return domain.NewDocument{
		Title:            r.Title,
		Scale:            r.Scale,
		IssuanceDate:     r.IssuanceDate,
		Type:             r.Type,
		Language:         r.Language,
		Pages:            r.Pages,
		Description:      r.Description,
		StakeholderIDs:   r.Stakeholders,
		Coordinates:      r.Coordinates.AsLatLng(),
		MunicipalityArea: r.MunicipalityArea,
	}
}

// DescriptionRequest - обновление описания документа
type DescriptionRequest struct {
	Description string `json:"description" validate:"required"`
}

// StakeholderRequest - создание стейкхолдера
type StakeholderRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Color string `json:"color" validate:"required,hexcolor"`
}

// NameRequest - создание масштаба или типа документа
type NameRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// LinkRequest - создание связи между документами
type LinkRequest struct {
	Doc1     int64  `json:"doc1" validate:"required,gt=0"`
	Doc2     int64  `json:"doc2" validate:"required,gt=0,nefield=Doc1"`
	LinkType string `json:"linkType" validate:"required,oneof='direct consequence' 'collateral consequence' projection update"`
}

func (r LinkRequest) ToLink() domain.Link {
	return domain.Link{Doc1: r.Doc1, Doc2: r.Doc2, LinkType: r.LinkType}
}

// LoginRequest - вход пользователя
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
