package models

import "time"

type User struct {
	BaseModel
	Email             string     `gorm:"uniqueIndex;not null"`
	PasswordHash      string     `gorm:"not null"`
	Role              UserRole   `gorm:"type:varchar(20);not null"`
	Status            UserStatus `gorm:"type:varchar(20);default:'pending'"`
	FirstName         string     `gorm:"not null"`
	LastName          string     `gorm:"not null"`
	PhoneNumber       string
	CompanyName       string // employers only
	Bio               string
	IsVerified        bool `gorm:"default:false"`
	VerificationToken string

	// Relations
	JobListings   []JobListing     `gorm:"foreignKey:EmployerID"`
	Applications  []JobApplication `gorm:"foreignKey:ApplicantID"`
	Resumes       []Resume         `gorm:"foreignKey:UserID"`
	RefreshTokens []RefreshToken   `gorm:"foreignKey:UserID"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
