package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Abdullah149081/career-connect-backend/internal/models"
	"github.com/Abdullah149081/career-connect-backend/internal/repositories"
	"github.com/Abdullah149081/career-connect-backend/internal/services/dto"
	"github.com/Abdullah149081/career-connect-backend/pkg/apperrors"
)

type CategoryService interface {
	ListCategories(ctx context.Context, db *gorm.DB) ([]*dto.CategoryResponse, error)
	GetCategory(ctx context.Context, db *gorm.DB, categoryID string) (*dto.CategoryResponse, error)
	CreateCategory(ctx context.Context, db *gorm.DB, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, db *gorm.DB, categoryID string) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) ListCategories(ctx context.Context, db *gorm.DB) ([]*dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(db)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		count := categories[i].JobCount
		out = append(out, dto.ToCategoryResponse(&categories[i].JobCategory, &count))
	}
	return out, nil
}

func (s *categoryService) GetCategory(ctx context.Context, db *gorm.DB, categoryID string) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(db, categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	count := category.JobCount
	return dto.ToCategoryResponse(&category.JobCategory, &count), nil
}

func (s *categoryService) CreateCategory(ctx context.Context, db *gorm.DB, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category := &models.JobCategory{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(db, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, err
	}
	return dto.ToCategoryResponse(category, nil), nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, db *gorm.DB, categoryID string) error {
	if _, err := s.categoryRepo.FindByID(db, categoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return err
	}
	return s.categoryRepo.Delete(db, categoryID)
}
