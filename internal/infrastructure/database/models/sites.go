package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/citizengeo/sites/internal/domain"
)

// SiteType is the lookup table of monitoring site categories.
type SiteType struct {
	IDTypeSite int             `json:"id_typesite" gorm:"primaryKey;autoIncrement"`
	Category   string          `json:"category" gorm:"type:varchar(200)"`
	Type       string          `json:"type" gorm:"type:varchar(200)"`
	Pictogram  *string         `json:"pictogram,omitempty" gorm:"type:varchar(255)"`
	CustomForm json.RawMessage `json:"custom_form,omitempty" gorm:"type:jsonb"`
	TimestampMixin
}

func (SiteType) TableName() string { return Schema + ".t_typesite" }

// Site is the core entity: a point geometry in WGS84 attached to a
// program and a site type.
type Site struct {
	IDSite    int          `json:"id_site" gorm:"primaryKey;autoIncrement"`
	UUIDSINP  uuid.UUID    `json:"uuid_sinp" gorm:"type:uuid;not null;uniqueIndex"`
	IDProgram int          `json:"id_program" gorm:"not null;index"`
	Name      string       `json:"name" gorm:"type:varchar(250)"`
	IDType    int          `json:"id_type" gorm:"not null"`
	SiteType  SiteType     `json:"-" gorm:"foreignKey:IDType;references:IDTypeSite"`
	Geom      domain.Point `json:"-" gorm:"not null"`
	Photo     *string      `json:"photo,omitempty" gorm:"type:varchar(255)"`
	TimestampMixin
	ObserverMixin
}

func (Site) TableName() string { return Schema + ".t_sites" }

// Visit is one observation session on a site. Rows cascade away with
// their site; a deleted media row nullifies the reference.
type Visit struct {
	IDVisit int        `json:"id_visit" gorm:"primaryKey;autoIncrement"`
	IDSite  int        `json:"id_site" gorm:"index"`
	Site    Site       `json:"-" gorm:"foreignKey:IDSite;references:IDSite;constraint:OnDelete:CASCADE;"`
	Date    *time.Time `json:"date" gorm:"type:date"`
	// references the platform media table; the ON DELETE SET NULL
	// constraint is owned by the platform migration
	IDMedia *int `json:"id_media"`
	TimestampMixin
	ObserverMixin
}

func (Visit) TableName() string { return Schema + ".t_visit" }

// VisitAttribute is the legacy free-text key/value table describing a
// visit. Kept alongside CorAttributeVisit for data migrated from older
// deployments.
type VisitAttribute struct {
	IDAttribute int    `json:"id_attribute" gorm:"primaryKey;autoIncrement"`
	IDVisit     int    `json:"id_visit" gorm:"index"`
	Visit       Visit  `json:"-" gorm:"foreignKey:IDVisit;references:IDVisit;constraint:OnDelete:CASCADE;"`
	Key         string `json:"key" gorm:"type:varchar(200);not null"`
	Value       string `json:"value" gorm:"type:text"`
	TimestampMixin
}

func (VisitAttribute) TableName() string { return Schema + ".t_visit_attributes" }

// ObservationOnSite links an external observation row to a site.
type ObservationOnSite struct {
	IDSite        int  `json:"id_site" gorm:"primaryKey"`
	Site          Site `json:"-" gorm:"foreignKey:IDSite;references:IDSite;constraint:OnDelete:CASCADE;"`
	IDObservation int  `json:"id_observation" gorm:"primaryKey"`
}

func (ObservationOnSite) TableName() string { return Schema + ".cor_site_obs" }
