package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Abdullah149081/career-connect-backend/internal/models"
)

var ErrJobNotFound = errors.New("job listing not found")

// JobSearchCriteria mirrors the public listing filter surface:
// substring filters, category/type/salary bounds, free-text search and
// a whitelisted ordering.
type JobSearchCriteria struct {
	Title          string
	Location       string
	CategoryID     string
	EmploymentType string
	SalaryMin      *float64
	SalaryMax      *float64
	Search         string
	OrderBy        string // created_at | title | salary_min
	OrderDesc      bool
	Page           int
	PageSize       int
}

type JobRepository interface {
	Create(db *gorm.DB, job *models.JobListing) error
	FindByID(db *gorm.DB, id string) (*models.JobListing, error)
	FindActive(db *gorm.DB, criteria JobSearchCriteria) ([]models.JobListing, int64, error)
	FindByEmployer(db *gorm.DB, employerID string, page, pageSize int) ([]models.JobListing, int64, error)
	FindRecentByEmployer(db *gorm.DB, employerID string, limit int) ([]models.JobListing, error)
	Update(db *gorm.DB, job *models.JobListing) error
	Delete(db *gorm.DB, id string) error

	CountByEmployer(db *gorm.DB, employerID string) (int64, error)
	CountActiveByEmployer(db *gorm.DB, employerID string) (int64, error)
	CountApplications(db *gorm.DB, jobID string) (int64, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.JobListing) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.JobListing, error) {
	var job models.JobListing
	err := db.Preload("Employer").Preload("Category").
		First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindActive(db *gorm.DB, criteria JobSearchCriteria) ([]models.JobListing, int64, error) {
	query := db.Model(&models.JobListing{}).Where("is_active = true")

	if criteria.Title != "" {
		query = query.Where("title ILIKE ?", "%"+criteria.Title+"%")
	}
	if criteria.Location != "" {
		query = query.Where("location ILIKE ?", "%"+criteria.Location+"%")
	}
	if criteria.CategoryID != "" {
		query = query.Where("category_id = ?", criteria.CategoryID)
	}
	if criteria.EmploymentType != "" {
		query = query.Where("employment_type = ?", criteria.EmploymentType)
	}
	if criteria.SalaryMin != nil {
		query = query.Where("salary_min >= ?", *criteria.SalaryMin)
	}
	if criteria.SalaryMax != nil {
		query = query.Where("salary_max <= ?", *criteria.SalaryMax)
	}
	if criteria.Search != "" {
		pattern := "%" + criteria.Search + "%"
		query = query.Where(
			"title ILIKE ? OR description ILIKE ? OR requirements ILIKE ? OR location ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.JobListing
	err := query.Preload("Employer").Preload("Category").
		Order(buildJobOrder(criteria)).
		Offset((criteria.Page - 1) * criteria.PageSize).
		Limit(criteria.PageSize).
		Find(&jobs).Error
	return jobs, total, err
}

func buildJobOrder(criteria JobSearchCriteria) string {
	column := "created_at"
	switch strings.ToLower(criteria.OrderBy) {
	case "title":
		column = "title"
	case "salary_min":
		column = "salary_min"
	case "created_at", "":
		column = "created_at"
	}

	direction := "ASC"
	if criteria.OrderDesc || criteria.OrderBy == "" {
		direction = "DESC"
	}
	return fmt.Sprintf("%s %s", column, direction)
}

func (r *JobRepositoryImpl) FindByEmployer(db *gorm.DB, employerID string, page, pageSize int) ([]models.JobListing, int64, error) {
	query := db.Model(&models.JobListing{}).Where("employer_id = ?", employerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.JobListing
	err := query.Preload("Category").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepositoryImpl) FindRecentByEmployer(db *gorm.DB, employerID string, limit int) ([]models.JobListing, error) {
	var jobs []models.JobListing
	err := db.Preload("Category").
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Update(db *gorm.DB, job *models.JobListing) error {
	return db.Save(job).Error
}

func (r *JobRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.JobListing{}, "id = ?", id).Error
}

func (r *JobRepositoryImpl) CountByEmployer(db *gorm.DB, employerID string) (int64, error) {
	var count int64
	err := db.Model(&models.JobListing{}).
		Where("employer_id = ?", employerID).
		Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) CountActiveByEmployer(db *gorm.DB, employerID string) (int64, error) {
	var count int64
	err := db.Model(&models.JobListing{}).
		Where("employer_id = ? AND is_active = true", employerID).
		Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) CountApplications(db *gorm.DB, jobID string) (int64, error) {
	var count int64
	err := db.Model(&models.JobApplication{}).
		Where("job_id = ?", jobID).
		Count(&count).Error
	return count, err
}
