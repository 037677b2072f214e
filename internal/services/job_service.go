package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Abdullah149081/career-connect-backend/internal/logger"
	"github.com/Abdullah149081/career-connect-backend/internal/models"
	"github.com/Abdullah149081/career-connect-backend/internal/repositories"
	"github.com/Abdullah149081/career-connect-backend/internal/services/dto"
	"github.com/Abdullah149081/career-connect-backend/pkg/apperrors"
)

type JobService interface {
	CreateJob(ctx context.Context, db *gorm.DB, employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	GetJob(ctx context.Context, db *gorm.DB, jobID string) (*dto.JobResponse, error)
	SearchJobs(ctx context.Context, db *gorm.DB, criteria dto.JobSearchCriteria) (*dto.JobListResponse, error)
	GetEmployerJobs(ctx context.Context, db *gorm.DB, employerID string, page, pageSize int) (*dto.JobListResponse, error)
	UpdateJob(ctx context.Context, db *gorm.DB, employerID, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	DeleteJob(ctx context.Context, db *gorm.DB, employerID, jobID string) error
}

type jobService struct {
	jobRepo      repositories.JobRepository
	userRepo     repositories.UserRepository
	categoryRepo repositories.CategoryRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	categoryRepo repositories.CategoryRepository,
) JobService {
	return &jobService{
		jobRepo:      jobRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *jobService) CreateJob(ctx context.Context, db *gorm.DB, employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	employer, err := s.userRepo.FindByID(db, employerID)
	if err != nil {
		return nil, err
	}
	if employer.Role != models.UserRoleEmployer {
		return nil, apperrors.ErrEmployerRoleRequired
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(db, *req.CategoryID); err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, err
		}
	}

	job := &models.JobListing{
		EmployerID:     employerID,
		Title:          req.Title,
		Description:    req.Description,
		Requirements:   req.Requirements,
		Location:       req.Location,
		CategoryID:     req.CategoryID,
		EmploymentType: req.EmploymentType,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		IsActive:       true,
		Deadline:       req.Deadline,
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "job listing created", "job_id", job.ID, "employer_id", employerID)

	created, err := s.jobRepo.FindByID(db, job.ID)
	if err != nil {
		return nil, err
	}
	return dto.ToJobResponse(created), nil
}

func (s *jobService) GetJob(ctx context.Context, db *gorm.DB, jobID string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	return dto.ToJobResponse(job), nil
}

func (s *jobService) SearchJobs(ctx context.Context, db *gorm.DB, criteria dto.JobSearchCriteria) (*dto.JobListResponse, error) {
	page, pageSize := normalizePagination(criteria.Page, criteria.PageSize)

	jobs, total, err := s.jobRepo.FindActive(db, repositories.JobSearchCriteria{
		Title:          criteria.Title,
		Location:       criteria.Location,
		CategoryID:     criteria.CategoryID,
		EmploymentType: criteria.EmploymentType,
		SalaryMin:      criteria.SalaryMin,
		SalaryMax:      criteria.SalaryMax,
		Search:         criteria.Search,
		OrderBy:        criteria.OrderBy,
		OrderDesc:      criteria.OrderDesc,
		Page:           page,
		PageSize:       pageSize,
	})
	if err != nil {
		return nil, err
	}

	return dto.ToJobListResponse(jobs, total, page, pageSize, calculateTotalPages(total, pageSize)), nil
}

func (s *jobService) GetEmployerJobs(ctx context.Context, db *gorm.DB, employerID string, page, pageSize int) (*dto.JobListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	jobs, total, err := s.jobRepo.FindByEmployer(db, employerID, page, pageSize)
	if err != nil {
		return nil, err
	}
	return dto.ToJobListResponse(jobs, total, page, pageSize, calculateTotalPages(total, pageSize)), nil
}

func (s *jobService) UpdateJob(ctx context.Context, db *gorm.DB, employerID, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
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

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(db, *req.CategoryID); err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, err
		}
		job.CategoryID = req.CategoryID
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.EmploymentType != nil {
		job.EmploymentType = *req.EmploymentType
	}
	if req.SalaryMin != nil {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = req.SalaryMax
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}
	if req.Deadline != nil {
		job.Deadline = req.Deadline
	}

	if err := s.jobRepo.Update(db, job); err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "job listing updated", "job_id", job.ID)

	updated, err := s.jobRepo.FindByID(db, job.ID)
	if err != nil {
		return nil, err
	}
	return dto.ToJobResponse(updated), nil
}

func (s *jobService) DeleteJob(ctx context.Context, db *gorm.DB, employerID, jobID string) error {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return err
	}
	if job.EmployerID != employerID {
		return apperrors.ErrNotListingOwner
	}

	if err := s.jobRepo.Delete(db, jobID); err != nil {
		return err
	}

	logger.CtxInfo(ctx, "job listing deleted", "job_id", jobID)
	return nil
}
