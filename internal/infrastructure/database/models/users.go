package models

// User maps the platform user table. The table is owned by the
// surrounding platform and is read-only here: it is looked up when
// resolving a bearer credential and deliberately excluded from this
// module's migration.
type User struct {
	IDUser   int    `json:"id_user" gorm:"primaryKey"`
	Username string `json:"username" gorm:"type:varchar(100)"`
	Email    string `json:"email" gorm:"type:varchar(150)"`
}

func (User) TableName() string { return "gnc_core.t_users" }
