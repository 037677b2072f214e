package dto

import "github.com/Abdullah149081/career-connect-backend/internal/models"

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	JobCount    *int64 `json:"job_count,omitempty"`
}

func ToCategoryResponse(category *models.JobCategory, jobCount *int64) *CategoryResponse {
	return &CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		JobCount:    jobCount,
	}
}
