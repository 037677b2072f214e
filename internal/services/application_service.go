package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Abdullah149081/career-connect-backend/internal/email"
	"github.com/Abdullah149081/career-connect-backend/internal/logger"
	"github.com/Abdullah149081/career-connect-backend/internal/models"
	"github.com/Abdullah149081/career-connect-backend/internal/repositories"
	"github.com/Abdullah149081/career-connect-backend/internal/services/dto"
	"github.com/Abdullah149081/career-connect-backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(ctx context.Context, db *gorm.DB, applicantID string, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error)
	GetApplication(ctx context.Context, db *gorm.DB, userID, applicationID string) (*dto.ApplicationResponse, error)
	GetMyApplications(ctx context.Context, db *gorm.DB, applicantID string, status models.ApplicationStatus, page, pageSize int) (*dto.ApplicationListResponse, error)
	GetJobApplications(ctx context.Context, db *gorm.DB, employerID, jobID string, page, pageSize int) (*dto.ApplicationListResponse, error)
	GetEmployerApplications(ctx context.Context, db *gorm.DB, employerID string, status models.ApplicationStatus, page, pageSize int) (*dto.ApplicationListResponse, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, employerID, applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error)
}

type applicationService struct {
	applicationRepo  repositories.ApplicationRepository
	jobRepo          repositories.JobRepository
	userRepo         repositories.UserRepository
	resumeRepo       repositories.ResumeRepository
	notificationRepo repositories.NotificationRepository
	emailService     email.Provider
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	resumeRepo repositories.ResumeRepository,
	notificationRepo repositories.NotificationRepository,
	emailService email.Provider,
) ApplicationService {
	return &applicationService{
		applicationRepo:  applicationRepo,
		jobRepo:          jobRepo,
		userRepo:         userRepo,
		resumeRepo:       resumeRepo,
		notificationRepo: notificationRepo,
		emailService:     emailService,
	}
}

// Apply submits one application. The application row and both
// notification rows commit atomically; the confirmation emails are
// dispatched after the commit and a failed send never undoes the
// application.
func (s *applicationService) Apply(ctx context.Context, db *gorm.DB, applicantID string, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	applicant, err := s.userRepo.FindByID(db, applicantID)
	if err != nil {
		return nil, err
	}
	if applicant.Role != models.UserRoleJobSeeker {
		return nil, apperrors.ErrApplicantRoleRequired
	}

	job, err := s.jobRepo.FindByID(db, req.JobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	if !job.IsActive {
		return nil, apperrors.ErrJobInactive
	}

	resumeURL, err := s.resolveResumeURL(db, applicantID, req.ResumeID)
	if err != nil {
		return nil, err
	}

	// Friendly pre-check. The composite unique index still decides
	// under concurrency.
	exists, err := s.applicationRepo.ExistsForJobAndApplicant(db, req.JobID, applicantID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDuplicateApplication
	}

	application := &models.JobApplication{
		JobID:       req.JobID,
		ApplicantID: applicantID,
		ResumeURL:   resumeURL,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusPending,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.applicationRepo.Create(tx, application); err != nil {
			if errors.Is(err, repositories.ErrApplicationExists) {
				return apperrors.ErrDuplicateApplication
			}
			return err
		}
		return s.createApplicationNotifications(tx, application, job, applicant)
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "application submitted",
		"application_id", application.ID,
		"job_id", job.ID,
		"applicant_id", applicantID,
	)

	go s.sendApplicationEmails(application.ID, job, applicant)

	created, err := s.applicationRepo.FindByID(db, application.ID)
	if err != nil {
		return nil, err
	}
	return dto.ToApplicationResponse(created), nil
}

// resolveResumeURL picks the resume the application carries: an
// explicit resume owned by the applicant, or the primary one.
func (s *applicationService) resolveResumeURL(db *gorm.DB, applicantID, resumeID string) (string, error) {
	if resumeID != "" {
		resume, err := s.resumeRepo.FindByID(db, resumeID)
		if err != nil {
			if errors.Is(err, repositories.ErrResumeNotFound) {
				return "", apperrors.ErrNotFound(err)
			}
			return "", err
		}
		if resume.UserID != applicantID {
			return "", apperrors.NewForbiddenError("You can only apply with your own resume")
		}
		return resume.FileURL, nil
	}

	resume, err := s.resumeRepo.FindPrimaryByUser(db, applicantID)
	if err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return "", apperrors.NewBadRequestError("Upload a resume before applying for jobs")
		}
		return "", err
	}
	return resume.FileURL, nil
}

func (s *applicationService) createApplicationNotifications(tx *gorm.DB, application *models.JobApplication, job *models.JobListing, applicant *models.User) error {
	payload, err := json.Marshal(map[string]string{
		"job_id":         job.ID,
		"application_id": application.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	submitted := &models.Notification{
		UserID:  applicant.ID,
		Type:    models.NotificationTypeApplicationSubmitted,
		Title:   "Application submitted",
		Message: fmt.Sprintf("You applied for %s", job.Title),
		Data:    datatypes.JSON(payload),
	}
	if err := s.notificationRepo.Create(tx, submitted); err != nil {
		return err
	}

	received := &models.Notification{
		UserID:  job.EmployerID,
		Type:    models.NotificationTypeApplicationReceived,
		Title:   "New application",
		Message: fmt.Sprintf("%s %s applied for %s", applicant.FirstName, applicant.LastName, job.Title),
		Data:    datatypes.JSON(payload),
	}
	return s.notificationRepo.Create(tx, received)
}

// sendApplicationEmails runs detached from the request. Failures are
// logged and swallowed.
func (s *applicationService) sendApplicationEmails(applicationID string, job *models.JobListing, applicant *models.User) {
	log := logger.GetLogger().With("application_id", applicationID)

	err := s.emailService.SendWithTemplate(email.TemplateApplicationConfirmed, email.TemplateData{
		"FirstName":   applicant.FirstName,
		"JobTitle":    job.Title,
		"CompanyName": job.Employer.CompanyName,
	}, &email.Email{
		To:      []string{applicant.Email},
		Subject: fmt.Sprintf("Your application for %s", job.Title),
	})
	if err != nil {
		log.Warn("failed to send application confirmation email", "error", err)
	}

	if job.Employer.Email == "" {
		return
	}
	err = s.emailService.SendWithTemplate(email.TemplateApplicationReceived, email.TemplateData{
		"FirstName":     job.Employer.FirstName,
		"JobTitle":      job.Title,
		"ApplicantName": fmt.Sprintf("%s %s", applicant.FirstName, applicant.LastName),
	}, &email.Email{
		To:      []string{job.Employer.Email},
		Subject: fmt.Sprintf("New application for %s", job.Title),
	})
	if err != nil {
		log.Warn("failed to send application received email", "error", err)
	}
}

func (s *applicationService) GetApplication(ctx context.Context, db *gorm.DB, userID, applicationID string) (*dto.ApplicationResponse, error) {
	application, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	// Visible to the applicant and the listing owner only.
	if application.ApplicantID != userID && application.Job.EmployerID != userID {
		return nil, apperrors.NewForbiddenError("You do not have access to this application")
	}
	return dto.ToApplicationResponse(application), nil
}

func (s *applicationService) GetMyApplications(ctx context.Context, db *gorm.DB, applicantID string, status models.ApplicationStatus, page, pageSize int) (*dto.ApplicationListResponse, error) {
	if status != "" && !models.ValidApplicationStatus(status) {
		return nil, apperrors.ErrInvalidStatus("applications", "Unknown application status")
	}
	page, pageSize = normalizePagination(page, pageSize)

	applications, total, err := s.applicationRepo.FindByApplicant(db, applicantID, status, page, pageSize)
	if err != nil {
		return nil, err
	}
	return dto.ToApplicationListResponse(applications, total, page, pageSize, calculateTotalPages(total, pageSize)), nil
}

func (s *applicationService) GetJobApplications(ctx context.Context, db *gorm.DB, employerID, jobID string, page, pageSize int) (*dto.ApplicationListResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	if job.EmployerID != employerID {
		return nil, apperrors.ErrNotListingOwner
	}

	page, pageSize = normalizePagination(page, pageSize)

	applications, total, err := s.applicationRepo.FindByJob(db, jobID, page, pageSize)
	if err != nil {
		return nil, err
	}
	return dto.ToApplicationListResponse(applications, total, page, pageSize, calculateTotalPages(total, pageSize)), nil
}

func (s *applicationService) GetEmployerApplications(ctx context.Context, db *gorm.DB, employerID string, status models.ApplicationStatus, page, pageSize int) (*dto.ApplicationListResponse, error) {
	if status != "" && !models.ValidApplicationStatus(status) {
		return nil, apperrors.ErrInvalidStatus("applications", "Unknown application status")
	}
	page, pageSize = normalizePagination(page, pageSize)

	applications, total, err := s.applicationRepo.FindByJobOwner(db, employerID, status, page, pageSize)
	if err != nil {
		return nil, err
	}
	return dto.ToApplicationListResponse(applications, total, page, pageSize, calculateTotalPages(total, pageSize)), nil
}

// UpdateStatus moves an application to any of the known statuses.
// Only the listing owner may do it.
func (s *applicationService) UpdateStatus(ctx context.Context, db *gorm.DB, employerID, applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	if !models.ValidApplicationStatus(req.Status) {
		return nil, apperrors.ErrInvalidStatus("applications", "Unknown application status")
	}

	application, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	if application.Job.EmployerID != employerID {
		return nil, apperrors.ErrNotListingOwner
	}

	application.Status = req.Status
	if err := s.applicationRepo.Update(db, application); err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "application status updated",
		"application_id", applicationID,
		"status", req.Status,
	)
	return dto.ToApplicationResponse(application), nil
}
