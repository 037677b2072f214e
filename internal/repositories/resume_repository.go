package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Abdullah149081/career-connect-backend/internal/models"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepository interface {
	Create(db *gorm.DB, resume *models.Resume) error
	FindByID(db *gorm.DB, id string) (*models.Resume, error)
	FindByUser(db *gorm.DB, userID string) ([]models.Resume, error)
	FindPrimaryByUser(db *gorm.DB, userID string) (*models.Resume, error)
	Update(db *gorm.DB, resume *models.Resume) error
	Delete(db *gorm.DB, id string) error

	// ClearPrimary and SetPrimary are meant to run inside one
	// transaction so the owner never holds two primary resumes.
	ClearPrimary(db *gorm.DB, userID string) error
	SetPrimary(db *gorm.DB, resumeID string) error

	CountByUser(db *gorm.DB, userID string) (int64, error)
}

type ResumeRepositoryImpl struct{}

func NewResumeRepository() ResumeRepository {
	return &ResumeRepositoryImpl{}
}

func (r *ResumeRepositoryImpl) Create(db *gorm.DB, resume *models.Resume) error {
	return db.Create(resume).Error
}

func (r *ResumeRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Resume, error) {
	var resume models.Resume
	err := db.First(&resume, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *ResumeRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.Resume, error) {
	var resumes []models.Resume
	err := db.Where("user_id = ?", userID).
		Order("is_primary DESC, created_at DESC").
		Find(&resumes).Error
	return resumes, err
}

func (r *ResumeRepositoryImpl) FindPrimaryByUser(db *gorm.DB, userID string) (*models.Resume, error) {
	var resume models.Resume
	err := db.First(&resume, "user_id = ? AND is_primary = true", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *ResumeRepositoryImpl) Update(db *gorm.DB, resume *models.Resume) error {
	return db.Save(resume).Error
}

func (r *ResumeRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Resume{}, "id = ?", id).Error
}

func (r *ResumeRepositoryImpl) ClearPrimary(db *gorm.DB, userID string) error {
	return db.Model(&models.Resume{}).
		Where("user_id = ? AND is_primary = true", userID).
		Update("is_primary", false).Error
}

func (r *ResumeRepositoryImpl) SetPrimary(db *gorm.DB, resumeID string) error {
	result := db.Model(&models.Resume{}).
		Where("id = ?", resumeID).
		Update("is_primary", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResumeNotFound
	}
	return nil
}

func (r *ResumeRepositoryImpl) CountByUser(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Resume{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
