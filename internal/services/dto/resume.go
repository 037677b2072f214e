package dto

import (
	"time"

	"github.com/Abdullah149081/career-connect-backend/internal/models"
)

type CreateResumeRequest struct {
	Title     string `json:"title" validate:"required,min=2,max=200"`
	FileURL   string `json:"file_url" validate:"required,url"`
	IsPrimary bool   `json:"is_primary"`
}

type UpdateResumeRequest struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	FileURL   *string `json:"file_url,omitempty" validate:"omitempty,url"`
	IsPrimary *bool   `json:"is_primary,omitempty"`
}

type ResumeResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	FileURL   string    `json:"file_url"`
	IsPrimary bool      `json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToResumeResponse(resume *models.Resume) *ResumeResponse {
	return &ResumeResponse{
		ID:        resume.ID,
		UserID:    resume.UserID,
		Title:     resume.Title,
		FileURL:   resume.FileURL,
		IsPrimary: resume.IsPrimary,
		CreatedAt: resume.CreatedAt,
		UpdatedAt: resume.UpdatedAt,
	}
}

func ToResumeListResponse(resumes []models.Resume) []*ResumeResponse {
	out := make([]*ResumeResponse, 0, len(resumes))
	for i := range resumes {
		out = append(out, ToResumeResponse(&resumes[i]))
	}
	return out
}
