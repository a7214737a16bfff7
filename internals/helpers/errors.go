package helper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AppError carries a stable machine code alongside the human message so the
// presentation layer can map domain failures onto HTTP statuses.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// Error codes for the reward / signup / verification paths.
const (
	CodeDuplicateUsername = "DUPLICATE_USERNAME"
	CodePasswordMismatch  = "PASSWORD_MISMATCH"
	CodeValidation        = "VALIDATION_ERROR"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeDuplicateAward    = "DUPLICATE_AWARD"
	CodeNotFound          = "NOT_FOUND"
)

var (
	ErrDuplicateUsername = &AppError{Code: CodeDuplicateUsername, Message: "Username already taken"}
	ErrPasswordMismatch  = &AppError{Code: CodePasswordMismatch, Message: "Passwords do not match"}
	ErrInvalidTransition = &AppError{Code: CodeInvalidTransition, Message: "Submission is already verified"}
	ErrDuplicateAward    = &AppError{Code: CodeDuplicateAward, Message: "Submission already has an eco point award"}
)

func NewValidationError(field, message string) *AppError {
	return &AppError{Code: CodeValidation, Message: fmt.Sprintf("%s: %s", field, message)}
}

func NewNotFoundError(entity string) *AppError {
	return &AppError{Code: CodeNotFound, Message: entity + " not found"}
}

// JsonAppError writes an AppError with its natural HTTP status; anything
// else becomes a 500.
func JsonAppError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	status := fiber.StatusInternalServerError
	switch appErr.Code {
	case CodeDuplicateUsername, CodeDuplicateAward, CodeInvalidTransition:
		status = fiber.StatusConflict
	case CodePasswordMismatch, CodeValidation:
		status = fiber.StatusUnprocessableEntity
	case CodeNotFound:
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(ErrorResponse{
		Success:   false,
		Message:   appErr.Message,
		ErrorCode: appErr.Code,
	})
}

// IsUniqueViolation sniffs driver-wrapped unique constraint failures
// (compatible with both lib/pq and pgx).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") ||
		strings.Contains(low, "unique constraint") ||
		strings.Contains(low, "sqlstate 23505")
}
