// Package error defines domain-specific errors for the Money Manager application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrNotAuthorizedToModifyBudget is returned when user is not authorized to modify a budget.
	ErrNotAuthorizedToModifyBudget = errors.New("not authorized to modify budget")

	// ErrDuplicateBudget is returned when a budget already exists for the same
	// month, category and division.
	ErrDuplicateBudget = errors.New("budget already exists for this month, category and division")

	// ErrInvalidBudgetMonth is returned when the month key is not in YYYY-MM form.
	ErrInvalidBudgetMonth = errors.New("invalid budget month")

	// ErrInvalidBudgetAmount is returned when the budget amount is not positive.
	ErrInvalidBudgetAmount = errors.New("invalid budget amount")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetMonth  BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetAmount BudgetErrorCode = "BGT-010002"
	ErrCodeDuplicateBudget     BudgetErrorCode = "BGT-010003"

	// Mutation policy errors (02XXXX)
	ErrCodeBudgetNotFound      BudgetErrorCode = "BGT-020001"
	ErrCodeNotAuthorizedBudget BudgetErrorCode = "BGT-020002"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
