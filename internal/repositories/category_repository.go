package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Abdullah149081/career-connect-backend/internal/models"
)

var ErrCategoryNotFound = errors.New("job category not found")

// CategoryWithCount pairs a category with its active job count.
type CategoryWithCount struct {
	models.JobCategory
	JobCount int64 `json:"job_count"`
}

type CategoryRepository interface {
	FindAll(db *gorm.DB) ([]CategoryWithCount, error)
	FindByID(db *gorm.DB, id string) (*CategoryWithCount, error)
	Create(db *gorm.DB, category *models.JobCategory) error
	Delete(db *gorm.DB, id string) error
}

type CategoryRepositoryImpl struct{}

func NewCategoryRepository() CategoryRepository {
	return &CategoryRepositoryImpl{}
}

func (r *CategoryRepositoryImpl) FindAll(db *gorm.DB) ([]CategoryWithCount, error) {
	var categories []CategoryWithCount
	err := db.Model(&models.JobCategory{}).
		Select("job_categories.*, (?) AS job_count",
			db.Model(&models.JobListing{}).
				Select("count(*)").
				Where("job_listings.category_id = job_categories.id AND job_listings.is_active = true"),
		).
		Order("job_categories.name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) FindByID(db *gorm.DB, id string) (*CategoryWithCount, error) {
	var category CategoryWithCount
	err := db.Model(&models.JobCategory{}).
		Select("job_categories.*, (?) AS job_count",
			db.Model(&models.JobListing{}).
				Select("count(*)").
				Where("job_listings.category_id = job_categories.id AND job_listings.is_active = true"),
		).
		Where("job_categories.id = ?", id).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) Create(db *gorm.DB, category *models.JobCategory) error {
	return db.Create(category).Error
}

func (r *CategoryRepositoryImpl) Delete(db *gorm.DB, id string) error {
	// category_id on listings is nulled by the FK, not cascaded
	return db.Delete(&models.JobCategory{}, "id = ?", id).Error
}
