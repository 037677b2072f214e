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

type ReviewService interface {
	CreateReview(ctx context.Context, db *gorm.DB, reviewerID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	GetReview(ctx context.Context, db *gorm.DB, reviewID string) (*dto.ReviewResponse, error)
	GetEmployerReviews(ctx context.Context, db *gorm.DB, employerID string, page, pageSize int) (*dto.ReviewListResponse, error)
	GetEmployerRatingStats(ctx context.Context, db *gorm.DB, employerID string) (*repositories.RatingStats, error)
	UpdateReview(ctx context.Context, db *gorm.DB, reviewerID, reviewID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	DeleteReview(ctx context.Context, db *gorm.DB, reviewerID, reviewID string) error
}

type reviewService struct {
	reviewRepo repositories.ReviewRepository
	userRepo   repositories.UserRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	userRepo repositories.UserRepository,
) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
	}
}

// CreateReview records one review of an employer by a job seeker. The
// rating range and both role checks run before anything is written;
// the composite unique index backs the one-review-per-pair rule.
func (s *reviewService) CreateReview(ctx context.Context, db *gorm.DB, reviewerID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ErrRatingOutOfRange
	}

	reviewer, err := s.userRepo.FindByID(db, reviewerID)
	if err != nil {
		return nil, err
	}
	if reviewer.Role != models.UserRoleJobSeeker {
		return nil, apperrors.ErrReviewerRoleRequired
	}

	employer, err := s.userRepo.FindByID(db, req.EmployerID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	if employer.Role != models.UserRoleEmployer {
		return nil, apperrors.ErrReviewTargetNotEmployer
	}

	exists, err := s.reviewRepo.ExistsForEmployerAndReviewer(db, req.EmployerID, reviewerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDuplicateReview
	}

	review := &models.EmployerReview{
		EmployerID: req.EmployerID,
		ReviewerID: reviewerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.reviewRepo.Create(db, review); err != nil {
		if errors.Is(err, repositories.ErrReviewExists) {
			return nil, apperrors.ErrDuplicateReview
		}
		return nil, err
	}

	logger.CtxInfo(ctx, "review created",
		"review_id", review.ID,
		"employer_id", req.EmployerID,
		"reviewer_id", reviewerID,
	)

	review.Reviewer = *reviewer
	return dto.ToReviewResponse(review), nil
}

func (s *reviewService) GetReview(ctx context.Context, db *gorm.DB, reviewID string) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(db, reviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	return dto.ToReviewResponse(review), nil
}

func (s *reviewService) GetEmployerReviews(ctx context.Context, db *gorm.DB, employerID string, page, pageSize int) (*dto.ReviewListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	reviews, total, err := s.reviewRepo.FindByEmployer(db, employerID, page, pageSize)
	if err != nil {
		return nil, err
	}

	stats, err := s.reviewRepo.GetEmployerRatingStats(db, employerID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, dto.ToReviewResponse(&reviews[i]))
	}

	return &dto.ReviewListResponse{
		Reviews:       out,
		AverageRating: stats.AverageRating,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
		TotalPages:    calculateTotalPages(total, pageSize),
	}, nil
}

func (s *reviewService) GetEmployerRatingStats(ctx context.Context, db *gorm.DB, employerID string) (*repositories.RatingStats, error) {
	return s.reviewRepo.GetEmployerRatingStats(db, employerID)
}

func (s *reviewService) UpdateReview(ctx context.Context, db *gorm.DB, reviewerID, reviewID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.findOwnedReview(db, reviewerID, reviewID)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, apperrors.ErrRatingOutOfRange
		}
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := s.reviewRepo.Update(db, review); err != nil {
		return nil, err
	}
	return dto.ToReviewResponse(review), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, db *gorm.DB, reviewerID, reviewID string) error {
	if _, err := s.findOwnedReview(db, reviewerID, reviewID); err != nil {
		return err
	}
	return s.reviewRepo.Delete(db, reviewID)
}

func (s *reviewService) findOwnedReview(db *gorm.DB, reviewerID, reviewID string) (*models.EmployerReview, error) {
	review, err := s.reviewRepo.FindByID(db, reviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	if review.ReviewerID != reviewerID {
		return nil, apperrors.NewForbiddenError("You can only modify your own reviews")
	}
	return review, nil
}
