package dto

import (
	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/application/usecase/balance"
)

// AccountBalanceResponse is one account's derived balance.
type AccountBalanceResponse struct {
	Account string          `json:"account"`
	Balance decimal.Decimal `json:"balance"`
}

// BalancesResponse represents the derived balances of all accounts.
type BalancesResponse struct {
	Balances []AccountBalanceResponse `json:"balances"`
	Total    decimal.Decimal          `json:"total"`
}

// NewBalancesResponse maps the balance use case output to its response shape.
func NewBalancesResponse(output *balance.GetBalancesOutput) BalancesResponse {
	balances := make([]AccountBalanceResponse, 0, len(output.Balances))
	for _, accountBalance := range output.Balances {
		balances = append(balances, AccountBalanceResponse{
			Account: string(accountBalance.Account),
			Balance: accountBalance.Balance,
		})
	}
	return BalancesResponse{
		Balances: balances,
		Total:    output.Total,
	}
}
