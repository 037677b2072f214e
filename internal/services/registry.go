package services

import (
	"github.com/Abdullah149081/career-connect-backend/internal/email"
	"github.com/Abdullah149081/career-connect-backend/internal/storage"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService         AuthService
	JobService          JobService
	CategoryService     CategoryService
	ApplicationService  ApplicationService
	ResumeService       ResumeService
	ReviewService       ReviewService
	DashboardService    DashboardService
	NotificationService NotificationService
	EmailService        email.Provider
	Storage             storage.Storage
}
