package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/application/usecase/analytics"
)

// BucketResponse is one breakdown slot of a period window.
type BucketResponse struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// PeriodStatsResponse represents the analytics view of one time window.
type PeriodStatsResponse struct {
	Period       string                `json:"period"`
	Start        string                `json:"start"`
	End          string                `json:"end"`
	TotalIncome  decimal.Decimal       `json:"totalIncome"`
	TotalExpense decimal.Decimal       `json:"totalExpense"`
	Balance      decimal.Decimal       `json:"balance"`
	Breakdown    []BucketResponse      `json:"breakdown"`
	Income       []TransactionResponse `json:"income"`
	Expense      []TransactionResponse `json:"expense"`
}

// NewPeriodStatsResponse maps aggregated period stats to the response shape.
func NewPeriodStatsResponse(kind analytics.PeriodKind, stats *analytics.PeriodStats) PeriodStatsResponse {
	breakdown := make([]BucketResponse, 0, len(stats.Breakdown))
	for _, bucket := range stats.Breakdown {
		breakdown = append(breakdown, BucketResponse{Label: bucket.Label, Value: bucket.Value})
	}

	income := make([]TransactionResponse, 0, len(stats.IncomeList))
	for _, transaction := range stats.IncomeList {
		income = append(income, NewTransactionEntityResponse(transaction))
	}
	expense := make([]TransactionResponse, 0, len(stats.ExpenseList))
	for _, transaction := range stats.ExpenseList {
		expense = append(expense, NewTransactionEntityResponse(transaction))
	}

	return PeriodStatsResponse{
		Period:       string(kind),
		Start:        stats.Start.Format(time.RFC3339),
		End:          stats.End.Format(time.RFC3339),
		TotalIncome:  stats.TotalIncome,
		TotalExpense: stats.TotalExpense,
		Balance:      stats.Balance,
		Breakdown:    breakdown,
		Income:       income,
		Expense:      expense,
	}
}
