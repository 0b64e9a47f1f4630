package apperrors

import "net/http"

// Factories for wrapping repository errors.

func ErrNotFound(err error) *AppError {
	e := NewNotFoundError("resource", "Resource not found")
	e.Err = err
	return e
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid login credentials.",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password must be at least 8 characters long",
	http.StatusBadRequest,
)

var ErrUserNotVerified = New(
	CodeForbidden,
	"auth",
	"Please verify your email address",
	http.StatusForbidden,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Projects & interests ---

var ErrOwnerOnly = New(
	CodeForbidden,
	"project",
	"Only the project owner can perform this operation",
	http.StatusForbidden,
)

var ErrEngineerOnly = New(
	CodeForbidden,
	"interest",
	"Only engineers can express interest in projects",
	http.StatusForbidden,
)

var ErrInterestAlreadyExpressed = New(
	CodeAlreadyExists,
	"interest",
	"You have already expressed interest in this project.",
	http.StatusConflict,
)

// --- Interviews ---

var ErrNotInterviewParticipant = New(
	CodeForbidden,
	"interview",
	"You can only update interviews you are participating in.",
	http.StatusForbidden,
)

var ErrInterviewClosed = New(
	CodeInvalidStatus,
	"interview",
	"Interview is already completed or cancelled",
	http.StatusConflict,
)
