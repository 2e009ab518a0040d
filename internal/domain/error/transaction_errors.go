package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionDate is returned when the transaction date is invalid.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrInvalidTransactionAmount is returned when the transaction amount is invalid.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrInvalidCategory is returned when the category label is empty or too long.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidDescription is returned when the description is empty or too long.
	ErrInvalidDescription = errors.New("invalid description")

	// ErrTransactionLinkedToPayslip is returned when a payroll transaction is modified directly.
	ErrTransactionLinkedToPayslip = errors.New("transaction is linked to a payslip")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010004"
	ErrCodeInvalidCategory          TransactionErrorCode = "TXN-010005"
	ErrCodeInvalidDescription       TransactionErrorCode = "TXN-010006"
	ErrCodeTransactionLinked        TransactionErrorCode = "TXN-010011"

	// Not found errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"

	// Internal errors (99XXXX)
	ErrCodeTransactionStorage TransactionErrorCode = "TXN-990001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the string form of the error code.
func (e *TransactionError) ErrorCode() string {
	return string(e.Code)
}

// Kind classifies the error.
func (e *TransactionError) Kind() Kind {
	return kindFromCode(string(e.Code))
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
