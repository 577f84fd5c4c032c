package models

import "time"

// Schema is the dedicated Postgres namespace holding every table of this
// module. Created during migration if absent.
const Schema = "gnc_sites"

// TimestampMixin carries the creation/update timestamps shared by every
// table in the schema.
type TimestampMixin struct {
	TimestampCreate time.Time `json:"timestamp_create" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	TimestampUpdate time.Time `json:"timestamp_update" gorm:"type:timestamp with time zone;autoUpdateTime"`
}

// ObserverMixin captures who submitted a record: an optional internal
// role id, a free-text observer name, and an email.
type ObserverMixin struct {
	IDRole *int   `json:"id_role" gorm:"index"`
	ObsTxt string `json:"obs_txt" gorm:"type:varchar(150)"`
	Email  string `json:"email" gorm:"type:varchar(150)"`
}
