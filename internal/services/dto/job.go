package dto

import (
	"time"

	"github.com/Abdullah149081/career-connect-backend/internal/models"
)

// ======================
// Request DTOs
// ======================

type CreateJobRequest struct {
	Title          string                `json:"title" validate:"required,min=3,max=200"`
	Description    string                `json:"description" validate:"required,max=10000"`
	Requirements   string                `json:"requirements,omitempty" validate:"omitempty,max=10000"`
	Location       string                `json:"location" validate:"required,max=200"`
	CategoryID     *string               `json:"category_id,omitempty" validate:"omitempty,uuid"`
	EmploymentType models.EmploymentType `json:"employment_type" validate:"required,is-employment-type"`
	SalaryMin      *float64              `json:"salary_min,omitempty" validate:"omitempty,min=0"`
	SalaryMax      *float64              `json:"salary_max,omitempty" validate:"omitempty,min=0,gtefield=SalaryMin"`
	Deadline       *time.Time            `json:"deadline,omitempty"`
}

type UpdateJobRequest struct {
	Title          *string                `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description    *string                `json:"description,omitempty" validate:"omitempty,max=10000"`
	Requirements   *string                `json:"requirements,omitempty" validate:"omitempty,max=10000"`
	Location       *string                `json:"location,omitempty" validate:"omitempty,max=200"`
	CategoryID     *string                `json:"category_id,omitempty" validate:"omitempty,uuid"`
	EmploymentType *models.EmploymentType `json:"employment_type,omitempty" validate:"omitempty,is-employment-type"`
	SalaryMin      *float64               `json:"salary_min,omitempty" validate:"omitempty,min=0"`
	SalaryMax      *float64               `json:"salary_max,omitempty" validate:"omitempty,min=0"`
	IsActive       *bool                  `json:"is_active,omitempty"`
	Deadline       *time.Time             `json:"deadline,omitempty"`
}

// JobSearchCriteria binds the public listing query string.
type JobSearchCriteria struct {
	Title          string   `form:"title"`
	Location       string   `form:"location"`
	CategoryID     string   `form:"category_id" validate:"omitempty,uuid"`
	EmploymentType string   `form:"employment_type" validate:"omitempty,is-employment-type"`
	SalaryMin      *float64 `form:"salary_min" validate:"omitempty,min=0"`
	SalaryMax      *float64 `form:"salary_max" validate:"omitempty,min=0"`
	Search         string   `form:"search"`
	OrderBy        string   `form:"order_by" validate:"omitempty,oneof=created_at title salary_min"`
	OrderDesc      bool     `form:"order_desc"`
	Page           int      `form:"page" validate:"omitempty,min=1"`
	PageSize       int      `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// ======================
// Response DTOs
// ======================

type JobResponse struct {
	ID             string                `json:"id"`
	EmployerID     string                `json:"employer_id"`
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	Requirements   string                `json:"requirements,omitempty"`
	Location       string                `json:"location"`
	CategoryID     *string               `json:"category_id,omitempty"`
	EmploymentType models.EmploymentType `json:"employment_type"`
	SalaryMin      *float64              `json:"salary_min,omitempty"`
	SalaryMax      *float64              `json:"salary_max,omitempty"`
	IsActive       bool                  `json:"is_active"`
	Deadline       *time.Time            `json:"deadline,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`

	Employer *EmployerInfo     `json:"employer,omitempty"`
	Category *CategoryResponse `json:"category,omitempty"`
}

type JobListResponse struct {
	Jobs       []*JobResponse `json:"jobs"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// EmployerInfo is the public slice of an employer embedded in listings
// and applications.
type EmployerInfo struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
}

func ToEmployerInfo(user *models.User) *EmployerInfo {
	if user == nil || user.ID == "" {
		return nil
	}
	return &EmployerInfo{
		ID:          user.ID,
		CompanyName: user.CompanyName,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
	}
}

func ToJobResponse(job *models.JobListing) *JobResponse {
	resp := &JobResponse{
		ID:             job.ID,
		EmployerID:     job.EmployerID,
		Title:          job.Title,
		Description:    job.Description,
		Requirements:   job.Requirements,
		Location:       job.Location,
		CategoryID:     job.CategoryID,
		EmploymentType: job.EmploymentType,
		SalaryMin:      job.SalaryMin,
		SalaryMax:      job.SalaryMax,
		IsActive:       job.IsActive,
		Deadline:       job.Deadline,
		CreatedAt:      job.CreatedAt,
		UpdatedAt:      job.UpdatedAt,
	}
	resp.Employer = ToEmployerInfo(&job.Employer)
	if job.Category != nil && job.Category.ID != "" {
		resp.Category = ToCategoryResponse(job.Category, nil)
	}
	return resp
}

func ToJobListResponse(jobs []models.JobListing, total int64, page, pageSize, totalPages int) *JobListResponse {
	out := make([]*JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, ToJobResponse(&jobs[i]))
	}
	return &JobListResponse{
		Jobs:       out,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
