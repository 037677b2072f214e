package apperrors

// ErrorCode identifies the class of an AppError in API responses.
type ErrorCode string

const (
	// System faults
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Business validation
	CodeNotFound             ErrorCode = "NOT_FOUND"
	CodeAlreadyExists        ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed     ErrorCode = "VALIDATION_FAILED"
	CodeRoleViolation        ErrorCode = "ROLE_VIOLATION"
	CodeDuplicateApplication ErrorCode = "DUPLICATE_APPLICATION"
	CodeDuplicateReview      ErrorCode = "DUPLICATE_REVIEW"
	CodeOutOfRange           ErrorCode = "OUT_OF_RANGE"
	CodeInvalidTarget        ErrorCode = "INVALID_TARGET"
	CodeInvalidStatus        ErrorCode = "INVALID_STATUS"

	// Authentication / authorization
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
)
