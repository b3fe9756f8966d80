package errors

import (
	"errors"
	"fmt"
)

// ErrorCode mengidentifikasi jenis kesalahan aplikasi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Ingest errors
	ErrCodeMissingColumns  ErrorCode = "MISSING_COLUMNS"
	ErrCodeInvalidNumber   ErrorCode = "INVALID_NUMBER"
	ErrCodeInvalidPeriod   ErrorCode = "INVALID_PERIOD"
	ErrCodeInvalidPolicy   ErrorCode = "INVALID_POLICY"
	ErrCodeDuplicatePeriod ErrorCode = "DUPLICATE_PERIOD"
	ErrCodeEmptySheet      ErrorCode = "EMPTY_SHEET"
	ErrCodeInvalidFile     ErrorCode = "INVALID_FILE"

	// Database errors
	ErrCodeDBError      ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound   ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate  ErrorCode = "DB_DUPLICATE"
	ErrCodeInvalidTable ErrorCode = "INVALID_TABLE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError adalah error aplikasi dengan kode dan pesan untuk caller
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError membuat AppError baru
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError memeriksa apakah error merupakan AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError mengambil AppError dari error, nil jika bukan
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode memeriksa apakah error membawa kode tertentu
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUnauthorized      = errors.New("unauthorized")

	// Ingest errors
	ErrMissingColumns  = errors.New("required columns missing")
	ErrDuplicatePeriod = errors.New("period already ingested")
	ErrEmptySheet      = errors.New("sheet has no data rows")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
