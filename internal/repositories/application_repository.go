package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Abdullah149081/career-connect-backend/internal/models"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationExists   = errors.New("application already exists for this job and applicant")
)

type ApplicationRepository interface {
	Create(db *gorm.DB, application *models.JobApplication) error
	FindByID(db *gorm.DB, id string) (*models.JobApplication, error)
	ExistsForJobAndApplicant(db *gorm.DB, jobID, applicantID string) (bool, error)
	FindByApplicant(db *gorm.DB, applicantID string, status models.ApplicationStatus, page, pageSize int) ([]models.JobApplication, int64, error)
	FindByJob(db *gorm.DB, jobID string, page, pageSize int) ([]models.JobApplication, int64, error)
	FindByJobOwner(db *gorm.DB, employerID string, status models.ApplicationStatus, page, pageSize int) ([]models.JobApplication, int64, error)
	FindRecentByJobOwner(db *gorm.DB, employerID string, limit int) ([]models.JobApplication, error)
	Update(db *gorm.DB, application *models.JobApplication) error

	CountByApplicant(db *gorm.DB, applicantID string) (int64, error)
	CountByApplicantAndStatus(db *gorm.DB, applicantID string, status models.ApplicationStatus) (int64, error)
	CountByJobOwner(db *gorm.DB, employerID string) (int64, error)
	CountByJobOwnerAndStatus(db *gorm.DB, employerID string, status models.ApplicationStatus) (int64, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.JobApplication) error {
	if err := db.Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrApplicationExists
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.JobApplication, error) {
	var application models.JobApplication
	err := db.Preload("Job").Preload("Job.Employer").Preload("Applicant").
		First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) ExistsForJobAndApplicant(db *gorm.DB, jobID, applicantID string) (bool, error) {
	var count int64
	err := db.Model(&models.JobApplication{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) FindByApplicant(db *gorm.DB, applicantID string, status models.ApplicationStatus, page, pageSize int) ([]models.JobApplication, int64, error) {
	query := db.Model(&models.JobApplication{}).Where("applicant_id = ?", applicantID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var applications []models.JobApplication
	err := query.Preload("Job").Preload("Job.Employer").
		Order("applied_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&applications).Error
	return applications, total, err
}

func (r *ApplicationRepositoryImpl) FindByJob(db *gorm.DB, jobID string, page, pageSize int) ([]models.JobApplication, int64, error) {
	query := db.Model(&models.JobApplication{}).Where("job_id = ?", jobID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var applications []models.JobApplication
	err := query.Preload("Applicant").
		Order("applied_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&applications).Error
	return applications, total, err
}

// FindByJobOwner lists applications across every listing owned by the
// employer, newest first.
func (r *ApplicationRepositoryImpl) FindByJobOwner(db *gorm.DB, employerID string, status models.ApplicationStatus, page, pageSize int) ([]models.JobApplication, int64, error) {
	query := db.Model(&models.JobApplication{}).
		Joins("JOIN job_listings ON job_listings.id = job_applications.job_id").
		Where("job_listings.employer_id = ?", employerID)
	if status != "" {
		query = query.Where("job_applications.status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var applications []models.JobApplication
	err := query.Preload("Job").Preload("Applicant").
		Order("job_applications.applied_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&applications).Error
	return applications, total, err
}

func (r *ApplicationRepositoryImpl) FindRecentByJobOwner(db *gorm.DB, employerID string, limit int) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := db.Model(&models.JobApplication{}).
		Joins("JOIN job_listings ON job_listings.id = job_applications.job_id").
		Where("job_listings.employer_id = ?", employerID).
		Preload("Job").Preload("Applicant").
		Order("job_applications.applied_at DESC").
		Limit(limit).
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) Update(db *gorm.DB, application *models.JobApplication) error {
	return db.Save(application).Error
}

func (r *ApplicationRepositoryImpl) CountByApplicant(db *gorm.DB, applicantID string) (int64, error) {
	var count int64
	err := db.Model(&models.JobApplication{}).
		Where("applicant_id = ?", applicantID).
		Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountByApplicantAndStatus(db *gorm.DB, applicantID string, status models.ApplicationStatus) (int64, error) {
	var count int64
	err := db.Model(&models.JobApplication{}).
		Where("applicant_id = ? AND status = ?", applicantID, status).
		Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountByJobOwner(db *gorm.DB, employerID string) (int64, error) {
	var count int64
	err := db.Model(&models.JobApplication{}).
		Joins("JOIN job_listings ON job_listings.id = job_applications.job_id").
		Where("job_listings.employer_id = ?", employerID).
		Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountByJobOwnerAndStatus(db *gorm.DB, employerID string, status models.ApplicationStatus) (int64, error) {
	var count int64
	err := db.Model(&models.JobApplication{}).
		Joins("JOIN job_listings ON job_listings.id = job_applications.job_id").
		Where("job_listings.employer_id = ? AND job_applications.status = ?", employerID, status).
		Count(&count).Error
	return count, err
}
