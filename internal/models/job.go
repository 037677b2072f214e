package models

import "time"

type JobCategory struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null"`
	Description string

	Jobs []JobListing `gorm:"foreignKey:CategoryID"`
}

type JobListing struct {
	BaseModel
	EmployerID     string `gorm:"not null;index"`
	Title          string `gorm:"not null"`
	Description    string `gorm:"not null"`
	Requirements   string
	Location       string `gorm:"not null"`
	CategoryID     *string `gorm:"index"`
	EmploymentType EmploymentType `gorm:"type:varchar(20);default:'full_time'"`
	SalaryMin      *float64
	SalaryMax      *float64
	IsActive       bool `gorm:"default:true;index"`
	Deadline       *time.Time

	// Relations
	Employer     User             `gorm:"foreignKey:EmployerID"`
	Category     *JobCategory     `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Applications []JobApplication `gorm:"foreignKey:JobID"`
}
