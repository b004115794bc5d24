package apperrors

import "errors"

// Taxonomy errors. Every service error wraps one of these so the central
// error middleware can map it to an HTTP status.
var (
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("permission denied")
	ErrNotFound        = errors.New("resource not found")
	ErrConflict        = errors.New("conflict")
	ErrInternal        = errors.New("internal server error")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrRollNumberExists   = errors.New("roll number already registered")
	ErrTeacherIDExists    = errors.New("teacher ID already registered")
)

// Resource errors
var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrAssignmentNotFound  = errors.New("assignment not found")
	ErrMaterialNotFound    = errors.New("material not found")
	ErrPlacementNotFound   = errors.New("placement not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrNoticeNotFound      = errors.New("notice not found")
	ErrAlreadyEnrolled     = errors.New("student already enrolled in course")
	ErrAlreadyApplied      = errors.New("application already exists for this placement")
	ErrPlacementInactive   = errors.New("placement is no longer accepting applications")
	ErrDeadlinePassed      = errors.New("placement deadline has passed")
)

// CustomError carries a user-facing message and the offending field
// on top of a taxonomy error.
type CustomError struct {
	Err     error
	Message string
	Field   string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithField attaches the name of the offending field.
func (e *CustomError) WithField(field string) *CustomError {
	e.Field = field
	return e
}

// NewValidationError creates a validation error with a message.
func NewValidationError(message string) *CustomError {
	return &CustomError{Err: ErrValidation, Message: message}
}

// NewNotFoundError creates a not-found error with a message.
func NewNotFoundError(message string) *CustomError {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message.
func NewConflictError(message string) *CustomError {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message.
func NewForbiddenError(message string) *CustomError {
	return &CustomError{Err: ErrForbidden, Message: message}
}

// FieldOf returns the offending field name if err carries one.
func FieldOf(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Field
	}
	return ""
}
