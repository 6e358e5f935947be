package testhelpers

import (
	"database/sql"
	"fmt"
)

// Fixture ids
const (
	DocCompilationID = 1 // municipality area
	DocDetailPlanID  = 2 // polygon of 3 points, 2 stakeholders
	DocDevPlanID     = 3 // single point
	DocAdjustedID    = 4 // no georeference

	StakeholderMunicipalityID = 1
	StakeholderRegionID       = 2
	StakeholderArchitectsID   = 3
)

// Documents inserts the base document set with stakeholders
const Documents = `
INSERT INTO stakeholders (id, name, color) VALUES
    (1, 'Kiruna kommun', '#8A2BE2'),
    (2, 'LKAB', '#FF0000'),
    (3, 'Architecture firms', '#00A000');

INSERT INTO documents (id, title, scale, issuance_date, type, language, pages, description) VALUES
    (1, 'Compilation of responses "So what the people of Kiruna think?"', 'Text', '2007', 'Informative', 'Swedish', 1, 'Responses collected from residents.'),
    (2, 'Detail plan for Bolagsomradet Gruvstadspark', '1:8000', '2010-10-20', 'Prescriptive', 'Swedish', 32, 'First detailed plan for the relocation.'),
    (3, 'Development plan', '1:7500', '2014-03-17', 'Design', 'Swedish', 111, NULL),
    (4, 'Adjusted development plan', 'Blueprint/effects', '2015', 'Design', NULL, NULL, NULL);

INSERT INTO stakeholders_documents (id_stakeholder, id_document) VALUES
    (1, 1),
    (1, 2),
    (2, 2),
    (3, 3),
    (1, 4);
`

// Coordinates inserts the georeferences of the base documents
const Coordinates = `
INSERT INTO document_coordinates (document_id, point_order, latitude, longitude, municipality_area) VALUES
    (1, NULL, NULL, NULL, 1),
    (2, 3, 67.8530, 20.2290, 0),
    (2, 1, 67.8550, 20.2250, 0),
    (2, 2, 67.8560, 20.2300, 0),
    (3, 1, 67.8490, 20.2430, 0);
`

// Catalogs inserts scales, types and users
const Catalogs = `
INSERT INTO scales (name) VALUES ('Text'), ('Blueprint/effects'), ('1:8000');
INSERT INTO document_types (name) VALUES ('Informative'), ('Prescriptive'), ('Design');
INSERT INTO users (username, name, surname, role, password_hash) VALUES
    ('planner', 'Anna', 'Lind', 'urban_planner', 'hash'),
    ('resident', 'Erik', 'Berg', 'resident', 'hash');
`

// Links inserts one link between the compilation and the detail plan
const Links = `
INSERT INTO document_links (doc1, doc2, link_type) VALUES (1, 2, 'direct consequence');
`

// RejectLatitudeAbove installs a trigger that aborts coordinate inserts with latitude > limit
func RejectLatitudeAbove(limit float64) string {
	return fmt.Sprintf(`
CREATE TRIGGER reject_latitude BEFORE INSERT ON document_coordinates
WHEN NEW.latitude > %f
BEGIN
    SELECT RAISE(ABORT, 'latitude rejected');
END;`, limit)
}

// LoadFixtures executes fixture SQL in order
func LoadFixtures(db *sql.DB, fixtures ...string) error {
	for i, fixture := range fixtures {
		if _, err := db.Exec(fixture); err != nil {
			return fmt.Errorf("load fixture %d: %w", i, err)
		}
	}
	return nil
}
