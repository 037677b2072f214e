package dto

import (
	"time"

	"github.com/Abdullah149081/career-connect-backend/internal/models"
)

// ======================
// Request DTOs
// ======================

type CreateApplicationRequest struct {
	JobID       string `json:"job_id" validate:"required,uuid"`
	ResumeID    string `json:"resume_id,omitempty" validate:"omitempty,uuid"`
	CoverLetter string `json:"cover_letter,omitempty" validate:"omitempty,max=5000"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,is-application-status"`
}

type ApplicationListQuery struct {
	Page     int `form:"page" validate:"omitempty,min=1"`
	PageSize int `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// ======================
// Response DTOs
// ======================

type ApplicationResponse struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"job_id"`
	ApplicantID string                   `json:"applicant_id"`
	ResumeURL   string                   `json:"resume_url"`
	CoverLetter string                   `json:"cover_letter,omitempty"`
	Status      models.ApplicationStatus `json:"status"`
	AppliedAt   time.Time                `json:"applied_at"`
	UpdatedAt   time.Time                `json:"updated_at"`

	Job       *JobResponse   `json:"job,omitempty"`
	Applicant *ApplicantInfo `json:"applicant,omitempty"`
}

type ApplicationListResponse struct {
	Applications []*ApplicationResponse `json:"applications"`
	Total        int64                  `json:"total"`
	Page         int                    `json:"page"`
	PageSize     int                    `json:"page_size"`
	TotalPages   int                    `json:"total_pages"`
}

type ApplicantInfo struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func ToApplicantInfo(user *models.User) *ApplicantInfo {
	if user == nil || user.ID == "" {
		return nil
	}
	return &ApplicantInfo{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

func ToApplicationResponse(application *models.JobApplication) *ApplicationResponse {
	resp := &ApplicationResponse{
		ID:          application.ID,
		JobID:       application.JobID,
		ApplicantID: application.ApplicantID,
		ResumeURL:   application.ResumeURL,
		CoverLetter: application.CoverLetter,
		Status:      application.Status,
		AppliedAt:   application.AppliedAt,
		UpdatedAt:   application.UpdatedAt,
	}
	if application.Job.ID != "" {
		resp.Job = ToJobResponse(&application.Job)
	}
	resp.Applicant = ToApplicantInfo(&application.Applicant)
	return resp
}

func ToApplicationListResponse(applications []models.JobApplication, total int64, page, pageSize, totalPages int) *ApplicationListResponse {
	out := make([]*ApplicationResponse, 0, len(applications))
	for i := range applications {
		out = append(out, ToApplicationResponse(&applications[i]))
	}
	return &ApplicationListResponse{
		Applications: out,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   totalPages,
	}
}
