package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/Abdullah149081/career-connect-backend/internal/models"
	"github.com/Abdullah149081/career-connect-backend/internal/repositories"
	"github.com/Abdullah149081/career-connect-backend/internal/services/dto"
	"github.com/Abdullah149081/career-connect-backend/pkg/apperrors"
)

const (
	dashboardRecentLimit            = 5
	dashboardRecentApplicationLimit = 10
)

type DashboardService interface {
	GetEmployerDashboard(ctx context.Context, db *gorm.DB, employerID string) (*dto.EmployerDashboardResponse, error)
	GetJobSeekerDashboard(ctx context.Context, db *gorm.DB, userID string) (*dto.JobSeekerDashboardResponse, error)
}

type dashboardService struct {
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
	resumeRepo      repositories.ResumeRepository
	reviewRepo      repositories.ReviewRepository
	userRepo        repositories.UserRepository
}

func NewDashboardService(
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
	resumeRepo repositories.ResumeRepository,
	reviewRepo repositories.ReviewRepository,
	userRepo repositories.UserRepository,
) DashboardService {
	return &dashboardService{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		resumeRepo:      resumeRepo,
		reviewRepo:      reviewRepo,
		userRepo:        userRepo,
	}
}

func (s *dashboardService) GetEmployerDashboard(ctx context.Context, db *gorm.DB, employerID string) (*dto.EmployerDashboardResponse, error) {
	user, err := s.userRepo.FindByID(db, employerID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.UserRoleEmployer {
		return nil, apperrors.ErrEmployerRoleRequired
	}

	totalJobs, err := s.jobRepo.CountByEmployer(db, employerID)
	if err != nil {
		return nil, err
	}
	activeJobs, err := s.jobRepo.CountActiveByEmployer(db, employerID)
	if err != nil {
		return nil, err
	}
	totalApplications, err := s.applicationRepo.CountByJobOwner(db, employerID)
	if err != nil {
		return nil, err
	}
	pendingApplications, err := s.applicationRepo.CountByJobOwnerAndStatus(db, employerID, models.ApplicationStatusPending)
	if err != nil {
		return nil, err
	}
	ratingStats, err := s.reviewRepo.GetEmployerRatingStats(db, employerID)
	if err != nil {
		return nil, err
	}

	recentJobs, err := s.jobRepo.FindRecentByEmployer(db, employerID, dashboardRecentLimit)
	if err != nil {
		return nil, err
	}
	recentApplications, err := s.applicationRepo.FindRecentByJobOwner(db, employerID, dashboardRecentApplicationLimit)
	if err != nil {
		return nil, err
	}

	jobResponses := make([]*dto.JobResponse, 0, len(recentJobs))
	for i := range recentJobs {
		jobResponses = append(jobResponses, dto.ToJobResponse(&recentJobs[i]))
	}
	applicationResponses := make([]*dto.ApplicationResponse, 0, len(recentApplications))
	for i := range recentApplications {
		applicationResponses = append(applicationResponses, dto.ToApplicationResponse(&recentApplications[i]))
	}

	return &dto.EmployerDashboardResponse{
		TotalJobs:           totalJobs,
		ActiveJobs:          activeJobs,
		TotalApplications:   totalApplications,
		PendingApplications: pendingApplications,
		AverageRating:       ratingStats.AverageRating,
		ReviewCount:         ratingStats.ReviewCount,
		RecentJobs:          jobResponses,
		RecentApplications:  applicationResponses,
	}, nil
}

func (s *dashboardService) GetJobSeekerDashboard(ctx context.Context, db *gorm.DB, userID string) (*dto.JobSeekerDashboardResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.UserRoleJobSeeker {
		return nil, apperrors.ErrApplicantRoleRequired
	}

	totalApplications, err := s.applicationRepo.CountByApplicant(db, userID)
	if err != nil {
		return nil, err
	}
	pending, err := s.applicationRepo.CountByApplicantAndStatus(db, userID, models.ApplicationStatusPending)
	if err != nil {
		return nil, err
	}
	accepted, err := s.applicationRepo.CountByApplicantAndStatus(db, userID, models.ApplicationStatusAccepted)
	if err != nil {
		return nil, err
	}
	rejected, err := s.applicationRepo.CountByApplicantAndStatus(db, userID, models.ApplicationStatusRejected)
	if err != nil {
		return nil, err
	}
	resumeCount, err := s.resumeRepo.CountByUser(db, userID)
	if err != nil {
		return nil, err
	}

	recent, _, err := s.applicationRepo.FindByApplicant(db, userID, "", 1, dashboardRecentLimit)
	if err != nil {
		return nil, err
	}
	recentResponses := make([]*dto.ApplicationResponse, 0, len(recent))
	for i := range recent {
		recentResponses = append(recentResponses, dto.ToApplicationResponse(&recent[i]))
	}

	resumes, err := s.resumeRepo.FindByUser(db, userID)
	if err != nil {
		return nil, err
	}
	if len(resumes) > dashboardRecentLimit {
		resumes = resumes[:dashboardRecentLimit]
	}

	return &dto.JobSeekerDashboardResponse{
		TotalApplications:    totalApplications,
		PendingApplications:  pending,
		AcceptedApplications: accepted,
		RejectedApplications: rejected,
		ResumeCount:          resumeCount,
		RecentApplications:   recentResponses,
		RecentResumes:        dto.ToResumeListResponse(resumes),
	}, nil
}
