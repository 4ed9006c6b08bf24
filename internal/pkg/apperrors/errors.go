package apperrors

import "errors"

// Common errors
var (
	// Session errors. ErrUnauthenticated means the remote store rejected the
	// call for lack of a valid session; it is rendered as a login prompt, not
	// treated as a failure.
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrTokenExpired    = errors.New("token expired")

	// Authorization errors
	ErrForbidden = errors.New("permission denied")

	// Validation errors: the store rejected the shape of a create payload.
	ErrValidation = errors.New("validation failed")

	// Remote errors: transport or server failure talking to the entity store.
	ErrRemote = errors.New("entity store unavailable")

	// Resource errors
	ErrNotFound = errors.New("resource not found")
)

// AppError carries a taxonomy sentinel plus human-readable context
type AppError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes the taxonomy sentinel to errors.Is
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// NewAuthError creates an unauthenticated error with a message
func NewAuthError(message string) error {
	return &AppError{Err: ErrUnauthenticated, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &AppError{Err: ErrForbidden, Message: message}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &AppError{Err: ErrValidation, Message: message}
}

// NewRemoteError wraps a transport or server failure
func NewRemoteError(message string, cause error) error {
	return &AppError{Err: ErrRemote, Message: message, Details: map[string]interface{}{"cause": causeString(cause)}}
}

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &AppError{Err: ErrNotFound, Message: message}
}

func causeString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Is reports whether err matches target or any of errList
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
