// Package error defines domain-specific errors for the POS Payments application.
package error

import "errors"

// Export domain errors.
var (
	// ErrExportGenerationFailed is returned when the XLSX workbook could not be built.
	ErrExportGenerationFailed = errors.New("failed to generate export workbook")

	// ErrExportUploadFailed is returned when the generated report could not be stored.
	ErrExportUploadFailed = errors.New("failed to upload export file")

	// ErrExportEmpty is returned when an export is requested over zero records.
	ErrExportEmpty = errors.New("no records match the export criteria")
)

// ExportErrorCode defines error codes for export errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeExportEmpty ExportErrorCode = "EXP-010001"

	// Generation/storage errors (02XXXX)
	ErrCodeExportGenerationFailed ExportErrorCode = "EXP-020001"
	ErrCodeExportUploadFailed     ExportErrorCode = "EXP-020002"
)

// ExportError represents an export error with code and message.
type ExportError struct {
	Code    ExportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError with the given code and message.
func NewExportError(code ExportErrorCode, message string, err error) *ExportError {
	return &ExportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
