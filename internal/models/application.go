package models

import "time"

// JobApplication links one listing and one applicant. The composite
// unique index is the authority for the one-application-per-job
// invariant; service-level pre-checks only produce the friendly error.
type JobApplication struct {
	ID          string            `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	JobID       string            `gorm:"not null;uniqueIndex:idx_job_applicant,priority:1"`
	ApplicantID string            `gorm:"not null;uniqueIndex:idx_job_applicant,priority:2"`
	ResumeURL   string            `gorm:"not null"`
	CoverLetter string
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'pending';index"`
	AppliedAt   time.Time         `gorm:"default:now();index:idx_applications_applied_at,sort:desc"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime"`

	// Relations
	Job       JobListing `gorm:"foreignKey:JobID"`
	Applicant User       `gorm:"foreignKey:ApplicantID"`
}
