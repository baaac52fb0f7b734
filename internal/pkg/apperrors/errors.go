package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Admission workflow errors
var (
	ErrAlreadyApplied       = errors.New("application already submitted for this program")
	ErrMasterNotFound       = errors.New("master program not found")
	ErrApplicationClosed    = errors.New("application window is closed")
	ErrIneligibleSpeciality = errors.New("speciality not eligible for this program")
	ErrInvalidStatus        = errors.New("invalid application status")
	ErrApplicationNotFound  = errors.New("application not found")
)

// Student errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrInvalidSpeciality  = errors.New("unknown speciality")
	ErrInvalidFileType    = errors.New("only PDF files are allowed")
	ErrFileTooLarge       = errors.New("file exceeds the maximum allowed size")
	ErrTranscriptRequired = errors.New("transcript file is required")
)

// University / program errors
var (
	ErrUniversityNotFound = errors.New("university not found")
	ErrInvalidDateRange   = errors.New("application end date must be after the start date")
	ErrNoSpecialities     = errors.New("at least one eligible speciality is required")
)

// Feedback errors
var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// Is returns whether target matches err or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
