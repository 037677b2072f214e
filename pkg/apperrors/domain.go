package apperrors

import "net/http"

// Predefined domain errors and factories for the job board. All of
// these are client outcomes: they are returned as 4xx, never retried
// and never logged as faults.

// --- factories ---

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- applications ---

var ErrDuplicateApplication = New(
	CodeDuplicateApplication,
	"applications",
	"You have already applied for this job",
	http.StatusBadRequest,
)

var ErrApplicantRoleRequired = New(
	CodeRoleViolation,
	"applications",
	"Only job seekers can apply for jobs",
	http.StatusBadRequest,
)

var ErrNotListingOwner = New(
	CodeForbidden,
	"applications",
	"You do not have permission to update this application",
	http.StatusForbidden,
)

var ErrJobInactive = New(
	CodeInvalidStatus,
	"applications",
	"This job listing is no longer accepting applications",
	http.StatusBadRequest,
)

// --- reviews ---

var ErrDuplicateReview = New(
	CodeDuplicateReview,
	"reviews",
	"You have already reviewed this employer",
	http.StatusBadRequest,
)

var ErrReviewerRoleRequired = New(
	CodeRoleViolation,
	"reviews",
	"Only job seekers can leave reviews",
	http.StatusBadRequest,
)

var ErrReviewTargetNotEmployer = New(
	CodeInvalidTarget,
	"reviews",
	"Reviews can only be given to employers",
	http.StatusBadRequest,
)

var ErrRatingOutOfRange = New(
	CodeOutOfRange,
	"reviews",
	"Rating must be between 1 and 5",
	http.StatusBadRequest,
)

// --- listings ---

var ErrEmployerRoleRequired = New(
	CodeRoleViolation,
	"jobs",
	"Only employers can manage job listings",
	http.StatusBadRequest,
)

// --- auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrUserNotVerified = New(
	CodeForbidden,
	"auth",
	"Email not verified. Please check your email for the verification link.",
	http.StatusForbidden,
)

var ErrUserSuspended = New(
	CodeForbidden,
	"auth",
	"Your account has been suspended",
	http.StatusForbidden,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

var ErrInvalidUserRole = New(
	CodeRoleViolation,
	"auth",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)
