package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Abdullah149081/career-connect-backend/internal/models"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrReviewExists   = errors.New("review already exists for this employer and reviewer")
)

// RatingStats is the aggregate a public employer profile shows.
type RatingStats struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.EmployerReview) error
	FindByID(db *gorm.DB, id string) (*models.EmployerReview, error)
	FindByEmployer(db *gorm.DB, employerID string, page, pageSize int) ([]models.EmployerReview, int64, error)
	ExistsForEmployerAndReviewer(db *gorm.DB, employerID, reviewerID string) (bool, error)
	Update(db *gorm.DB, review *models.EmployerReview) error
	Delete(db *gorm.DB, id string) error

	GetEmployerRatingStats(db *gorm.DB, employerID string) (*RatingStats, error)
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.EmployerReview) error {
	if err := db.Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrReviewExists
		}
		return err
	}
	return nil
}

func (r *ReviewRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.EmployerReview, error) {
	var review models.EmployerReview
	err := db.Preload("Employer").Preload("Reviewer").
		First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindByEmployer(db *gorm.DB, employerID string, page, pageSize int) ([]models.EmployerReview, int64, error) {
	query := db.Model(&models.EmployerReview{}).Where("employer_id = ?", employerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.EmployerReview
	err := query.Preload("Reviewer").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reviews).Error
	return reviews, total, err
}

func (r *ReviewRepositoryImpl) ExistsForEmployerAndReviewer(db *gorm.DB, employerID, reviewerID string) (bool, error) {
	var count int64
	err := db.Model(&models.EmployerReview{}).
		Where("employer_id = ? AND reviewer_id = ?", employerID, reviewerID).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepositoryImpl) Update(db *gorm.DB, review *models.EmployerReview) error {
	return db.Save(review).Error
}

func (r *ReviewRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.EmployerReview{}, "id = ?", id).Error
}

func (r *ReviewRepositoryImpl) GetEmployerRatingStats(db *gorm.DB, employerID string) (*RatingStats, error) {
	var stats RatingStats
	err := db.Model(&models.EmployerReview{}).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS review_count").
		Where("employer_id = ?", employerID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
