package models

type EmployerReview struct {
	BaseModel
	EmployerID string `gorm:"not null;uniqueIndex:idx_employer_reviewer,priority:1"`
	ReviewerID string `gorm:"not null;uniqueIndex:idx_employer_reviewer,priority:2"`
	Rating     int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment    string `gorm:"not null"`

	// Relations
	Employer User `gorm:"foreignKey:EmployerID"`
	Reviewer User `gorm:"foreignKey:ReviewerID"`
}
