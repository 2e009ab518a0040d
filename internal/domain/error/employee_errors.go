package error

import "errors"

// Employee domain errors.
var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrInvalidEmployeeName   = errors.New("invalid employee name")
	ErrInvalidPosition       = errors.New("invalid position")
	ErrInvalidSalaryType     = errors.New("invalid salary type")
	ErrInvalidBaseSalary     = errors.New("invalid base salary")
	ErrEmployeeHasPayslips   = errors.New("employee still has payslips")
	ErrInvalidDeletionPolicy = errors.New("invalid employee deletion policy")
)

// EmployeeErrorCode defines error codes for employee errors.
// Format: EMP-XXYYYY where XX is category and YYYY is specific error.
type EmployeeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEmployeeName EmployeeErrorCode = "EMP-010001"
	ErrCodeInvalidPosition     EmployeeErrorCode = "EMP-010002"
	ErrCodeInvalidSalaryType   EmployeeErrorCode = "EMP-010003"
	ErrCodeInvalidBaseSalary   EmployeeErrorCode = "EMP-010004"
	ErrCodeEmployeeHasPayslips EmployeeErrorCode = "EMP-010006"
	ErrCodeMissingEmployeeData EmployeeErrorCode = "EMP-010005"

	// Not found errors (02XXXX)
	ErrCodeEmployeeNotFound EmployeeErrorCode = "EMP-020001"
)

// EmployeeError represents an employee error with code and message.
type EmployeeError struct {
	Code    EmployeeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmployeeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmployeeError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the string form of the error code.
func (e *EmployeeError) ErrorCode() string {
	return string(e.Code)
}

// Kind classifies the error.
func (e *EmployeeError) Kind() Kind {
	return kindFromCode(string(e.Code))
}

// NewEmployeeError creates a new EmployeeError with the given code and message.
func NewEmployeeError(code EmployeeErrorCode, message string, err error) *EmployeeError {
	return &EmployeeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
