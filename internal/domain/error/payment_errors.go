// Package error defines domain-specific errors for the POS Payments application.
package error

import "errors"

// Payment domain errors.
var (
	// ErrMissingStartDate is returned when start_date is not provided.
	ErrMissingStartDate = errors.New("start_date is required")

	// ErrMissingEndDate is returned when end_date is not provided.
	ErrMissingEndDate = errors.New("end_date is required")

	// ErrInvalidDateRange is returned when end_date is before start_date.
	ErrInvalidDateRange = errors.New("end_date must be after start_date")

	// ErrInvalidDateFormat is returned when date format is invalid.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidOrderStatus is returned when an order payment status filter
	// is outside the unpaid/partial/paid/overpaid taxonomy.
	ErrInvalidOrderStatus = errors.New("status must be: unpaid, partial, paid, or overpaid")

	// ErrSourceFetchFailed is returned when a backend table could not be read.
	// The aggregation layer downgrades it to an empty collection; only
	// callers that require the source verbatim surface it.
	ErrSourceFetchFailed = errors.New("failed to fetch source collection")
)

// PaymentErrorCode defines error codes for payment errors.
// Format: PAY-XXYYYY where XX is category and YYYY is specific error.
type PaymentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingStartDate   PaymentErrorCode = "PAY-010001"
	ErrCodeMissingEndDate     PaymentErrorCode = "PAY-010002"
	ErrCodeInvalidDateRange   PaymentErrorCode = "PAY-010003"
	ErrCodeInvalidDateFormat  PaymentErrorCode = "PAY-010004"
	ErrCodeInvalidOrderStatus PaymentErrorCode = "PAY-010005"

	// Source errors (02XXXX)
	ErrCodeSourceFetchFailed PaymentErrorCode = "PAY-020001"

	// Request throttling errors (03XXXX)
	ErrCodeRateLimited PaymentErrorCode = "PAY-030001"

	// Internal errors (99XXXX)
	ErrCodePaymentInternalError PaymentErrorCode = "PAY-990001"
)

// PaymentError represents a payment error with code and message.
type PaymentError struct {
	Code    PaymentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PaymentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// NewPaymentError creates a new PaymentError with the given code and message.
func NewPaymentError(code PaymentErrorCode, message string, err error) *PaymentError {
	return &PaymentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
