package domain

// Link types between documents
const (
	LinkDirectConsequence     = "direct consequence"
	LinkCollateralConsequence = "collateral consequence"
	LinkProjection            = "projection"
	LinkUpdate                = "update"
)

// LinkTypes lists the accepted link types
var LinkTypes = []string{
	LinkDirectConsequence,
	LinkCollateralConsequence,
	LinkProjection,
	LinkUpdate,
}

// Link - a typed connection between two documents
type Link struct {
	ID       int64  `json:"id" db:"id"`
	Doc1     int64  `json:"doc1" db:"doc1"`
	Doc2     int64  `json:"doc2" db:"doc2"`
	LinkType string `json:"linkType" db:"link_type"`
}
