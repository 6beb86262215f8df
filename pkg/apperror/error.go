package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents an application error with HTTP status and error code
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
	Details    map[string]any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the internal error
func (e *Error) Unwrap() error {
	return e.Internal
}

// WithInternal returns a copy of the error with an internal error attached
func (e *Error) WithInternal(err error) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    e.Message,
		Internal:   err,
		Details:    e.Details,
	}
}

// WithMessage returns a copy of the error with a custom message
func (e *Error) WithMessage(message string) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    message,
		Internal:   e.Internal,
		Details:    e.Details,
	}
}

// WithDetails returns a copy of the error with details attached
func (e *Error) WithDetails(details map[string]any) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    e.Message,
		Internal:   e.Internal,
		Details:    details,
	}
}

// New creates a new application error
func New(status int, code, message string) *Error {
	return &Error{
		HTTPStatus: status,
		Code:       code,
		Message:    message,
	}
}

var (
	// Upload errors
	ErrInvalidFileType = New(http.StatusUnsupportedMediaType, "invalid_file_type", "Please upload an image file")
	ErrFileTooLarge    = New(http.StatusRequestEntityTooLarge, "file_too_large", "That image is too large to upload")
	ErrDecodeFailed    = New(http.StatusUnprocessableEntity, "decode_failed", "We couldn't read that image. Try a different file")
	ErrStaleSelection  = New(http.StatusConflict, "stale_selection", "A newer image was selected")
	ErrMissingFile     = New(http.StatusBadRequest, "missing_file", "Choose an image to upload")

	// Generation errors
	ErrNoImage           = New(http.StatusConflict, "no_image", "Upload a leaf image first")
	ErrGenerationPending = New(http.StatusConflict, "generation_pending", "A generation is already in progress")
	ErrRateLimited       = New(http.StatusTooManyRequests, "rate_limited", "Too many requests. Please wait a moment and try again")
	ErrGenerationFailed  = New(http.StatusBadGateway, "generation_failed", "Image generation failed. Please try again")
	ErrGenerationTimeout = New(http.StatusGatewayTimeout, "generation_timeout", "Image generation took too long. Please try again")
	ErrInvalidMode       = New(http.StatusBadRequest, "invalid_mode", "Choose either the healthy or the diseased version")

	// Resource errors
	ErrSessionNotFound = New(http.StatusNotFound, "session_not_found", "This page has expired. Reload to start again")
	ErrNotFound        = New(http.StatusNotFound, "not_found", "Resource not found")

	// Validation errors
	ErrBadRequest = New(http.StatusBadRequest, "bad_request", "Invalid request")

	// ErrClientClosed uses nginx's 499 for a client that went away mid-request.
	ErrClientClosed = New(499, "client_closed_request", "Request cancelled")

	// Server errors
	ErrInternal = New(http.StatusInternalServerError, "internal_error", "An internal error occurred")
)

// From returns the app error carried by err. Anything else becomes ErrInternal.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternal.WithInternal(err)
}

// ToHTTPError converts an error to a status and JSON body
func ToHTTPError(err error) (int, map[string]any) {
	appErr := From(err)
	errBody := map[string]any{
		"code":    appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		errBody["details"] = appErr.Details
	}
	return appErr.HTTPStatus, map[string]any{
		"error": errBody,
	}
}

// NewBadRequest creates a bad request error with a custom message
func NewBadRequest(message string) *Error {
	return ErrBadRequest.WithMessage(message)
}
