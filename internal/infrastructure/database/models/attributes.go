package models

import (
	"github.com/lib/pq"
)

// AttributeCategory groups the dynamic form fields of a site type.
type AttributeCategory struct {
	IDCategory   int      `json:"id_category" gorm:"primaryKey;autoIncrement"`
	IDType       int      `json:"id_type" gorm:"index"`
	SiteType     SiteType `json:"-" gorm:"foreignKey:IDType;references:IDTypeSite;constraint:OnDelete:CASCADE;"`
	Name         string   `json:"name" gorm:"type:varchar(200)"`
	Description  string   `json:"description" gorm:"type:text"`
	DisplayOrder int      `json:"display_order"`
	TimestampMixin
}

func (AttributeCategory) TableName() string { return Schema + ".bib_attribute_categories" }

// AttributeDefinition drives dynamic form rendering for visits: field
// label, allowed values, widget type and taxonomic scope.
type AttributeDefinition struct {
	IDAttribute    int               `json:"id_attribute" gorm:"primaryKey;autoIncrement"`
	IDCategory     int               `json:"id_category" gorm:"index"`
	Category       AttributeCategory `json:"-" gorm:"foreignKey:IDCategory;references:IDCategory;constraint:OnDelete:CASCADE;"`
	Name           string            `json:"name" gorm:"type:varchar(200)"`
	Label          string            `json:"label" gorm:"type:varchar(250)"`
	Values         pq.StringArray    `json:"values" gorm:"type:text[]"`
	Required       bool              `json:"required"`
	Description    string            `json:"description" gorm:"type:text"`
	InputType      string            `json:"input_type" gorm:"type:varchar(50)"`
	TaxonomicScope *int              `json:"taxonomic_scope,omitempty"`
	TimestampMixin
}

func (AttributeDefinition) TableName() string { return Schema + ".bib_attributes" }

// CorAttributeVisit is the current structured attribute table: one value
// per visit per attribute definition.
type CorAttributeVisit struct {
	ID          int                 `json:"id" gorm:"primaryKey;autoIncrement"`
	IDVisit     int                 `json:"id_visit" gorm:"index"`
	Visit       Visit               `json:"-" gorm:"foreignKey:IDVisit;references:IDVisit;constraint:OnDelete:CASCADE;"`
	IDAttribute int                 `json:"id_attribute"`
	Attribute   AttributeDefinition `json:"-" gorm:"foreignKey:IDAttribute;references:IDAttribute"`
	Value       string              `json:"value" gorm:"type:text"`
	TimestampMixin
}

func (CorAttributeVisit) TableName() string { return Schema + ".cor_attribute_visit" }
