package models

// Resume carries the primary flag. The at-most-one-primary-per-user
// invariant is backed by a partial unique index on (user_id) WHERE
// is_primary, created in database.AutoMigrate; writes that set the flag
// go through the clear-then-set transaction in ResumeService.
type Resume struct {
	BaseModel
	UserID    string `gorm:"not null;index"`
	Title     string `gorm:"not null"`
	FileURL   string `gorm:"not null"`
	IsPrimary bool   `gorm:"default:false"`

	User User `gorm:"foreignKey:UserID"`
}
