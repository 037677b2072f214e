package dto

import (
	"time"

	"github.com/Abdullah149081/career-connect-backend/internal/models"
)

// ======================
// Request DTOs
// ======================

type CreateReviewRequest struct {
	EmployerID string `json:"employer_id" validate:"required,uuid"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"required,max=2000"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}

// ======================
// Response DTOs
// ======================

type ReviewResponse struct {
	ID         string    `json:"id"`
	EmployerID string    `json:"employer_id"`
	ReviewerID string    `json:"reviewer_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Reviewer *ApplicantInfo `json:"reviewer,omitempty"`
}

type ReviewListResponse struct {
	Reviews       []*ReviewResponse `json:"reviews"`
	AverageRating float64           `json:"average_rating"`
	Total         int64             `json:"total"`
	Page          int               `json:"page"`
	PageSize      int               `json:"page_size"`
	TotalPages    int               `json:"total_pages"`
}

func ToReviewResponse(review *models.EmployerReview) *ReviewResponse {
	resp := &ReviewResponse{
		ID:         review.ID,
		EmployerID: review.EmployerID,
		ReviewerID: review.ReviewerID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
	resp.Reviewer = ToApplicantInfo(&review.Reviewer)
	return resp
}
