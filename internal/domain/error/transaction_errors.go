// Package error defines domain-specific errors for the Money Manager application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotAuthorizedToModifyTransaction is returned when user is not authorized to modify a transaction.
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrMissingTransactionField is returned when a required field (amount or date) is absent.
	ErrMissingTransactionField = errors.New("missing required transaction field")

	// ErrInvalidTransactionAmount is returned when the transaction amount is not positive.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrSameAccountTransfer is returned when a transfer names the same account on
	// both sides and that account is not Bank.
	ErrSameAccountTransfer = errors.New("from and to accounts cannot be the same")

	// ErrMissingTransferDescription is returned when a Bank-to-Bank transfer has
	// no description.
	ErrMissingTransferDescription = errors.New("description is required for bank-to-bank transfers")

	// ErrInvalidTransactionDate is returned when a submitted date cannot be
	// parsed.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrEditWindowExpired is returned when a transaction is updated after its
	// edit window has closed.
	ErrEditWindowExpired = errors.New("edit window expired")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType       TransactionErrorCode = "TXN-010001"
	ErrCodeMissingTransactionField      TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount     TransactionErrorCode = "TXN-010003"
	ErrCodeSameAccountTransfer          TransactionErrorCode = "TXN-010004"
	ErrCodeMissingTransferDescription   TransactionErrorCode = "TXN-010005"
	ErrCodeInvalidTransactionDate       TransactionErrorCode = "TXN-010006"

	// Mutation policy errors (02XXXX)
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-020001"
	ErrCodeNotAuthorizedTransaction TransactionErrorCode = "TXN-020002"
	ErrCodeEditWindowExpired        TransactionErrorCode = "TXN-020003"
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

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
