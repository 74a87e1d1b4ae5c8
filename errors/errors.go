package errors

import (
	"errors"
	"fmt"
)

// ErrorCode defines an application error code
type ErrorCode string

const (
	// Booking errors
	ErrCodeInvalidDateRange  ErrorCode = "INVALID_DATE_RANGE"
	ErrCodePastDate          ErrorCode = "PAST_DATE"
	ErrCodeCapacityExceeded  ErrorCode = "CAPACITY_EXCEEDED"
	ErrCodeBookingOverlap    ErrorCode = "BOOKING_OVERLAP"
	ErrCodeZeroDuration      ErrorCode = "ZERO_DURATION"
	ErrCodeInvalidTransition ErrorCode = "INVALID_TRANSITION"

	// Review errors
	ErrCodeBookingNotCompleted ErrorCode = "BOOKING_NOT_COMPLETED"
	ErrCodeReviewerMismatch    ErrorCode = "REVIEWER_MISMATCH"
	ErrCodeDuplicateReview     ErrorCode = "DUPLICATE_REVIEW"

	// Listing errors
	ErrCodeListingHasBookings ErrorCode = "LISTING_HAS_BOOKINGS"
	ErrCodeInvalidCategory    ErrorCode = "INVALID_CATEGORY"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"
)

// AppError defines an application error
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

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, or nil
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode reports whether err is an AppError carrying the given code
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	// Listing errors
	ErrListingNotFound    = errors.New("listing not found")
	ErrListingHasBookings = errors.New("listing has active bookings")

	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingCancelled = errors.New("booking already cancelled")
	ErrBookingCompleted = errors.New("booking already completed")

	// Review errors
	ErrReviewNotFound = errors.New("review not found")

	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
