package error

import "errors"

// Payslip domain errors.
var (
	// ErrPayslipNotFound is returned when a payslip is not found in the system.
	ErrPayslipNotFound = errors.New("payslip not found")

	// ErrInvalidPayPeriod is returned when the period is not in YYYY-MM form.
	ErrInvalidPayPeriod = errors.New("invalid pay period")

	// ErrInvalidAllowance is returned when the allowance is negative or not a currency amount.
	ErrInvalidAllowance = errors.New("invalid allowance")

	// ErrInvalidDeduction is returned when the deduction is negative or not a currency amount.
	ErrInvalidDeduction = errors.New("invalid deduction")

	// ErrNetSalaryOutOfRange is returned when the computed net salary does not
	// fit a stored amount.
	ErrNetSalaryOutOfRange = errors.New("net salary out of range")

	// ErrAmbiguousPayrollLink is returned when the paired payroll transaction
	// of an unlinked payslip matches zero or several candidates.
	ErrAmbiguousPayrollLink = errors.New("paired payroll transaction is ambiguous")
)

// PayslipErrorCode defines error codes for payslip errors.
// Format: PAY-XXYYYY where XX is category and YYYY is specific error.
type PayslipErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPayPeriod     PayslipErrorCode = "PAY-010001"
	ErrCodeInvalidAllowance     PayslipErrorCode = "PAY-010002"
	ErrCodeInvalidDeduction     PayslipErrorCode = "PAY-010003"
	ErrCodeMissingPayslipFields PayslipErrorCode = "PAY-010004"
	ErrCodeNetSalaryOutOfRange  PayslipErrorCode = "PAY-010005"

	// Not found errors (02XXXX)
	ErrCodePayslipNotFound         PayslipErrorCode = "PAY-020001"
	ErrCodePayslipEmployeeNotFound PayslipErrorCode = "PAY-020002"

	// Link errors (03XXXX)
	ErrCodeAmbiguousPayrollLink PayslipErrorCode = "PAY-030001"

	// Internal errors (99XXXX)
	ErrCodePayslipRenderFailed PayslipErrorCode = "PAY-990001"
)

// PayslipError represents a payslip error with code and message.
type PayslipError struct {
	Code    PayslipErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PayslipError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PayslipError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the string form of the error code.
func (e *PayslipError) ErrorCode() string {
	return string(e.Code)
}

// Kind classifies the error.
func (e *PayslipError) Kind() Kind {
	return kindFromCode(string(e.Code))
}

// NewPayslipError creates a new PayslipError with the given code and message.
func NewPayslipError(code PayslipErrorCode, message string, err error) *PayslipError {
	return &PayslipError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
