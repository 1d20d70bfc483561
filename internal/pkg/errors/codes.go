package errors

import "net/http"

var (
	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authorization token is required",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = New(
		"INVALID_TOKEN",
		"Invalid or expired token",
		http.StatusUnauthorized,
	)

	ErrPOINotFound = New(
		"NOT_FOUND",
		"POI not found",
		http.StatusNotFound,
	)

	ErrMediaNotFound = New(
		"NOT_FOUND",
		"Media not found",
		http.StatusNotFound,
	)

	ErrFileRequired = New(
		"FILE_REQUIRED",
		"File is required",
		http.StatusBadRequest,
	)

	ErrInvalidFileType = New(
		"INVALID_FILE_TYPE",
		"Only JSON files are allowed",
		http.StatusBadRequest,
	)

	ErrFileTooLarge = New(
		"FILE_TOO_LARGE",
		"File size exceeds 10MB limit",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// Validation builds a VALIDATION_ERROR carrying the concrete rule message.
func Validation(message string) *AppError {
	return New("VALIDATION_ERROR", message, http.StatusBadRequest)
}
