package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Abdullah149081/career-connect-backend/internal/config"
	"github.com/Abdullah149081/career-connect-backend/internal/logger"
	"github.com/Abdullah149081/career-connect-backend/internal/models"
	"github.com/Abdullah149081/career-connect-backend/internal/repositories"
	"github.com/Abdullah149081/career-connect-backend/internal/services/dto"
	"github.com/Abdullah149081/career-connect-backend/internal/storage"
	"github.com/Abdullah149081/career-connect-backend/pkg/apperrors"
)

type ResumeService interface {
	CreateResume(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateResumeRequest) (*dto.ResumeResponse, error)
	UploadResume(ctx context.Context, db *gorm.DB, userID, fileName, contentType string, size int64, reader io.Reader, title string, isPrimary bool) (*dto.ResumeResponse, error)
	GetResume(ctx context.Context, db *gorm.DB, userID, resumeID string) (*dto.ResumeResponse, error)
	ListResumes(ctx context.Context, db *gorm.DB, userID string) ([]*dto.ResumeResponse, error)
	UpdateResume(ctx context.Context, db *gorm.DB, userID, resumeID string, req *dto.UpdateResumeRequest) (*dto.ResumeResponse, error)
	SetPrimary(ctx context.Context, db *gorm.DB, userID, resumeID string) (*dto.ResumeResponse, error)
	DeleteResume(ctx context.Context, db *gorm.DB, userID, resumeID string) error
}

type resumeService struct {
	resumeRepo repositories.ResumeRepository
	userRepo   repositories.UserRepository
	storage    storage.Storage
}

func NewResumeService(
	resumeRepo repositories.ResumeRepository,
	userRepo repositories.UserRepository,
	store storage.Storage,
) ResumeService {
	return &resumeService{
		resumeRepo: resumeRepo,
		userRepo:   userRepo,
		storage:    store,
	}
}

// CreateResume registers a resume whose file already lives somewhere
// reachable. The first resume of a user always becomes primary.
func (s *resumeService) CreateResume(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateResumeRequest) (*dto.ResumeResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.UserRoleJobSeeker {
		return nil, apperrors.ErrApplicantRoleRequired
	}

	resume := &models.Resume{
		UserID:  userID,
		Title:   req.Title,
		FileURL: req.FileURL,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		count, err := s.resumeRepo.CountByUser(tx, userID)
		if err != nil {
			return err
		}

		makePrimary := req.IsPrimary || count == 0
		if makePrimary {
			// Clear-then-set keeps the partial unique index happy.
			if err := s.resumeRepo.ClearPrimary(tx, userID); err != nil {
				return err
			}
			resume.IsPrimary = true
		}
		return s.resumeRepo.Create(tx, resume)
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "resume created", "resume_id", resume.ID, "user_id", userID)
	return dto.ToResumeResponse(resume), nil
}

// UploadResume stores the file through the storage backend and then
// registers it like CreateResume.
func (s *resumeService) UploadResume(ctx context.Context, db *gorm.DB, userID, fileName, contentType string, size int64, reader io.Reader, title string, isPrimary bool) (*dto.ResumeResponse, error) {
	cfg := config.GetConfig()

	if cfg.Upload.MaxSize > 0 && size > cfg.Upload.MaxSize {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("File exceeds the maximum size of %d bytes", cfg.Upload.MaxSize))
	}
	if len(cfg.Upload.AllowedTypes) > 0 && !allowedContentType(cfg.Upload.AllowedTypes, contentType) {
		return nil, apperrors.NewBadRequestError("Unsupported file type: " + contentType)
	}

	path := fmt.Sprintf("resumes/%s/%s%s", userID, uuid.NewString(), filepath.Ext(fileName))
	if err := s.storage.Save(ctx, path, reader, contentType); err != nil {
		return nil, fmt.Errorf("failed to store resume file: %w", err)
	}

	fileURL, err := s.storage.GetURL(ctx, path)
	if err != nil {
		return nil, err
	}

	if title == "" {
		title = strings.TrimSuffix(fileName, filepath.Ext(fileName))
	}

	return s.CreateResume(ctx, db, userID, &dto.CreateResumeRequest{
		Title:     title,
		FileURL:   fileURL,
		IsPrimary: isPrimary,
	})
}

func allowedContentType(allowed []string, contentType string) bool {
	for _, t := range allowed {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}

func (s *resumeService) GetResume(ctx context.Context, db *gorm.DB, userID, resumeID string) (*dto.ResumeResponse, error) {
	resume, err := s.findOwnedResume(db, userID, resumeID)
	if err != nil {
		return nil, err
	}
	return dto.ToResumeResponse(resume), nil
}

func (s *resumeService) ListResumes(ctx context.Context, db *gorm.DB, userID string) ([]*dto.ResumeResponse, error) {
	resumes, err := s.resumeRepo.FindByUser(db, userID)
	if err != nil {
		return nil, err
	}
	return dto.ToResumeListResponse(resumes), nil
}

func (s *resumeService) UpdateResume(ctx context.Context, db *gorm.DB, userID, resumeID string, req *dto.UpdateResumeRequest) (*dto.ResumeResponse, error) {
	resume, err := s.findOwnedResume(db, userID, resumeID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		resume.Title = *req.Title
	}
	if req.FileURL != nil {
		resume.FileURL = *req.FileURL
	}

	promote := req.IsPrimary != nil && *req.IsPrimary && !resume.IsPrimary
	if req.IsPrimary != nil {
		resume.IsPrimary = *req.IsPrimary
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if promote {
			if err := s.resumeRepo.ClearPrimary(tx, userID); err != nil {
				return err
			}
		}
		return s.resumeRepo.Update(tx, resume)
	})
	if err != nil {
		return nil, err
	}
	return dto.ToResumeResponse(resume), nil
}

// SetPrimary makes the resume the user's primary one. The clear and
// the set run in a single transaction so there is never a moment with
// two primaries visible, and the partial unique index backs the rule
// under concurrency.
func (s *resumeService) SetPrimary(ctx context.Context, db *gorm.DB, userID, resumeID string) (*dto.ResumeResponse, error) {
	resume, err := s.findOwnedResume(db, userID, resumeID)
	if err != nil {
		return nil, err
	}

	if !resume.IsPrimary {
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := s.resumeRepo.ClearPrimary(tx, userID); err != nil {
				return err
			}
			return s.resumeRepo.SetPrimary(tx, resumeID)
		})
		if err != nil {
			return nil, err
		}
		resume.IsPrimary = true
	}

	logger.CtxInfo(ctx, "primary resume set", "resume_id", resumeID, "user_id", userID)
	return dto.ToResumeResponse(resume), nil
}

func (s *resumeService) DeleteResume(ctx context.Context, db *gorm.DB, userID, resumeID string) error {
	if _, err := s.findOwnedResume(db, userID, resumeID); err != nil {
		return err
	}
	return s.resumeRepo.Delete(db, resumeID)
}

func (s *resumeService) findOwnedResume(db *gorm.DB, userID, resumeID string) (*models.Resume, error) {
	resume, err := s.resumeRepo.FindByID(db, resumeID)
	if err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	if resume.UserID != userID {
		return nil, apperrors.NewForbiddenError("You do not have access to this resume")
	}
	return resume, nil
}
