// Package error defines domain-specific errors for the Cash Book application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidPeriodKind is returned when period is not one of day, week, month or year.
	ErrInvalidPeriodKind = errors.New("period must be: day, week, month, or year")

	// ErrInvalidReferenceDate is returned when the reference date cannot be parsed.
	ErrInvalidReferenceDate = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidExportFormat is returned when the export format is not supported.
	ErrInvalidExportFormat = errors.New("format must be: csv, pdf, or xlsx")

	// ErrRenderFailed is returned when a report artifact cannot be produced.
	ErrRenderFailed = errors.New("failed to render report")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriodKind    ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReferenceDate ReportErrorCode = "RPT-010002"
	ErrCodeInvalidExportFormat  ReportErrorCode = "RPT-010003"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
	ErrCodeReportRenderFailed  ReportErrorCode = "RPT-990002"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the string form of the error code.
func (e *ReportError) ErrorCode() string {
	return string(e.Code)
}

// Kind classifies the error.
func (e *ReportError) Kind() Kind {
	return kindFromCode(string(e.Code))
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
