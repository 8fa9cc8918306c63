package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/application/usecase/transaction"
	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
	"github.com/money-manager/backend/internal/domain/valueobject"
)

// dateOnly is the calendar-day layout older clients submit.
const dateOnly = "2006-01-02"

// TransactionRequest represents the request body for creating or updating a
// transaction. The *Id fields are legacy aliases from an earlier client
// generation; when both spellings are present the canonical one wins.
type TransactionRequest struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Division    string          `json:"division"`
	Account     string          `json:"account"`
	FromAccount string          `json:"fromAccount"`
	ToAccount   string          `json:"toAccount"`

	AccountID     string `json:"accountId"`
	FromAccountID string `json:"fromAccountId"`
	ToAccountID   string `json:"toAccountId"`
}

// ToDraft maps the request to a transaction draft, resolving legacy aliases
// and parsing the date. A missing date maps to the zero time, which the draft
// validation rejects as a missing field; a present but unparsable date is an
// error of its own.
func (r *TransactionRequest) ToDraft() (valueobject.TransactionDraft, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return valueobject.TransactionDraft{}, err
	}
	return valueobject.TransactionDraft{
		Type:        entity.TransactionType(r.Type),
		Amount:      r.Amount,
		Date:        date,
		Description: r.Description,
		Category:    entity.Category(r.Category),
		Division:    entity.Division(r.Division),
		Account:     firstNonEmpty(r.Account, r.AccountID),
		FromAccount: firstNonEmpty(r.FromAccount, r.FromAccountID),
		ToAccount:   firstNonEmpty(r.ToAccount, r.ToAccountID),
	}, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse(dateOnly, value); err == nil {
		return parsed, nil
	}
	return time.Time{}, domainerror.NewTransactionError(
		domainerror.ErrCodeInvalidTransactionDate,
		"date must be RFC 3339 or YYYY-MM-DD",
		domainerror.ErrInvalidTransactionDate,
	)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	Division    string          `json:"division"`
	Account     string          `json:"account,omitempty"`
	FromAccount string          `json:"fromAccount,omitempty"`
	ToAccount   string          `json:"toAccount,omitempty"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

// NewTransactionResponse maps a use case output to its response shape.
func NewTransactionResponse(output *transaction.Output) TransactionResponse {
	return TransactionResponse{
		ID:          output.ID.String(),
		Type:        string(output.Type),
		Amount:      output.Amount,
		Date:        output.Date.Format(time.RFC3339),
		Description: output.Description,
		Category:    string(output.Category),
		Division:    string(output.Division),
		Account:     output.Account,
		FromAccount: output.FromAccount,
		ToAccount:   output.ToAccount,
		CreatedAt:   output.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   output.UpdatedAt.Format(time.RFC3339),
	}
}

// NewTransactionListResponse maps a list of outputs.
func NewTransactionListResponse(outputs []*transaction.Output) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(outputs))
	for _, output := range outputs {
		responses = append(responses, NewTransactionResponse(output))
	}
	return responses
}

// NewTransactionEntityResponse maps a transaction entity directly, used by
// the analytics detail lists.
func NewTransactionEntityResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID.String(),
		Type:        string(transaction.Type),
		Amount:      transaction.Amount,
		Date:        transaction.Date.Format(time.RFC3339),
		Description: transaction.Description,
		Category:    string(transaction.Category),
		Division:    string(transaction.Division),
		Account:     transaction.Account,
		FromAccount: transaction.FromAccount,
		ToAccount:   transaction.ToAccount,
		CreatedAt:   transaction.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   transaction.UpdatedAt.Format(time.RFC3339),
	}
}
