package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AnonymousObserver is the observer label recorded when a site is
// submitted without an authenticated identity.
const AnonymousObserver = "Anonyme"

// SiteType is a reference row describing a category of monitoring site.
// Rows are maintained by administrators outside this module's write path.
type SiteType struct {
	IDTypeSite int             `json:"id_typesite"`
	Category   string          `json:"category"`
	Type       string          `json:"type"`
	Pictogram  *string         `json:"pictogram"`
	CustomForm json.RawMessage `json:"custom_form"`
	Created    time.Time       `json:"timestamp_create"`
	Updated    time.Time       `json:"timestamp_update"`
}

// Site is a monitoring site: a named point geometry attached to a program
// and a site type, carrying observer attribution.
type Site struct {
	ID        int
	UUIDSINP  uuid.UUID
	IDProgram int
	Name      string
	IDType    int
	Geom      Point
	Photo     *string

	// observer mixin
	IDRole *int
	ObsTxt string
	Email  string

	Created time.Time
	Updated time.Time
}

// AsDict serializes the site to a fixed mapping. Internal fields (the
// submitter's role identifier) are included only when includeInternal is
// set; the raw geometry column is never part of the mapping.
func (s *Site) AsDict(includeInternal bool) map[string]any {
	dict := map[string]any{
		"id_site":          s.ID,
		"uuid_sinp":        s.UUIDSINP.String(),
		"id_program":       s.IDProgram,
		"name":             s.Name,
		"id_type":          s.IDType,
		"photo":            s.Photo,
		"obs_txt":          s.ObsTxt,
		"email":            s.Email,
		"timestamp_create": s.Created,
		"timestamp_update": s.Updated,
	}
	if includeInternal {
		dict["id_role"] = s.IDRole
	}
	return dict
}

// AsFeature builds the GeoJSON feature exposed by the REST surface:
// stored point as geometry, all columns except the submitter's role
// identifier and the raw geometry as properties.
func (s *Site) AsFeature() Feature {
	return Feature{
		Type:       "Feature",
		Geometry:   s.Geom.GeoJSON(),
		Properties: s.AsDict(false),
	}
}
