package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes shared by the client-side taxonomy and the dev server.
const (
	CodeAuthError     = "AUTH_ERROR"
	CodeCreateError   = "CREATE_ERROR"
	CodeDeleteError   = "DELETE_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeFetchError    = "FETCH_ERROR"
	CodeValidation    = "VALIDATION_ERROR"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeInternalError = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewAuthError(message string) *AppError {
	return &AppError{Code: CodeAuthError, Message: message}
}

func NewCreateError(reason string) *AppError {
	return &AppError{Code: CodeCreateError, Message: reason}
}

func NewDeleteError(reason string) *AppError {
	return &AppError{Code: CodeDeleteError, Message: reason}
}

func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewFetchError(err error) *AppError {
	return &AppError{
		Code:    CodeFetchError,
		Message: "Failed to fetch blogs",
		Err:     err,
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternalError,
		Message: "Internal server error",
		Err:     err,
	}
}

// CodeOf returns the AppError code carried by err, or empty when err is not
// an AppError.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// RespondWithError creates a standardized error response
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	if appErr, ok := err.(*AppError); ok {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
