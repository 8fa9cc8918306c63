package analytics

import (
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/domain/entity"
)

// Bucket is one sub-interval of the aggregation window with its expense
// total. Income is intentionally left out of the breakdown; only the expense
// distribution is plotted.
type Bucket struct {
	Label string
	Value decimal.Decimal
}

// PeriodStats is the aggregate view of one time window.
type PeriodStats struct {
	Start        time.Time
	End          time.Time
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
	Breakdown    []Bucket
	IncomeList   []*entity.Transaction
	ExpenseList  []*entity.Transaction
}

// AggregatePeriod filters transactions to the window containing reference
// and sums income and expense independently. Transfers are balance-neutral
// movements and are excluded from every total, list and bucket. Both detail
// lists come back sorted by date descending.
func AggregatePeriod(transactions []*entity.Transaction, kind PeriodKind, reference time.Time, weekStart entity.WeekStartDay) *PeriodStats {
	start, end := PeriodBounds(kind, reference, weekStart)

	stats := &PeriodStats{
		Start:        start,
		End:          end,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Breakdown:    makeBuckets(kind, start),
	}

	for _, transaction := range transactions {
		if transaction.Date.Before(start) || transaction.Date.After(end) {
			continue
		}
		switch transaction.Type {
		case entity.TransactionTypeIncome:
			stats.TotalIncome = stats.TotalIncome.Add(transaction.Amount)
			stats.IncomeList = append(stats.IncomeList, transaction)
		case entity.TransactionTypeExpense:
			stats.TotalExpense = stats.TotalExpense.Add(transaction.Amount)
			stats.ExpenseList = append(stats.ExpenseList, transaction)
			index := bucketIndex(kind, start, transaction.Date)
			stats.Breakdown[index].Value = stats.Breakdown[index].Value.Add(transaction.Amount)
		}
	}

	stats.Balance = stats.TotalIncome.Sub(stats.TotalExpense)
	sortByDateDesc(stats.IncomeList)
	sortByDateDesc(stats.ExpenseList)
	return stats
}

// MonthlyCategorySpend sums the expense transactions of one calendar month
// matching a (category, division) pair. It backs the budget-vs-actual
// comparison, which shares the monthly window semantics of AggregatePeriod.
func MonthlyCategorySpend(transactions []*entity.Transaction, reference time.Time, category entity.Category, division entity.Division) decimal.Decimal {
	start, end := PeriodBounds(PeriodMonthly, reference, entity.WeekStartMonday)

	total := decimal.Zero
	for _, transaction := range transactions {
		if transaction.Type != entity.TransactionTypeExpense {
			continue
		}
		if transaction.Date.Before(start) || transaction.Date.After(end) {
			continue
		}
		if transaction.Category != category || transaction.Division != division {
			continue
		}
		total = total.Add(transaction.Amount)
	}
	return total
}

// makeBuckets builds the empty breakdown for the window: one bucket per day
// of the week, per day of the month, or per month of the year.
func makeBuckets(kind PeriodKind, start time.Time) []Bucket {
	switch kind {
	case PeriodWeekly:
		buckets := make([]Bucket, 7)
		for i := range buckets {
			weekday := start.AddDate(0, 0, i).Weekday()
			buckets[i] = Bucket{Label: weekday.String()[:3], Value: decimal.Zero}
		}
		return buckets
	case PeriodYearly:
		buckets := make([]Bucket, 12)
		for i := range buckets {
			buckets[i] = Bucket{Label: time.Month(i + 1).String()[:3], Value: decimal.Zero}
		}
		return buckets
	default: // PeriodMonthly
		days := start.AddDate(0, 1, 0).Add(-time.Nanosecond).Day()
		buckets := make([]Bucket, days)
		for i := range buckets {
			buckets[i] = Bucket{Label: strconv.Itoa(i + 1), Value: decimal.Zero}
		}
		return buckets
	}
}

// bucketIndex maps a date inside the window to its breakdown slot.
func bucketIndex(kind PeriodKind, start time.Time, date time.Time) int {
	switch kind {
	case PeriodWeekly:
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		return int(day.Sub(start).Hours() / 24)
	case PeriodYearly:
		return int(date.Month()) - 1
	default: // PeriodMonthly
		return date.Day() - 1
	}
}

func sortByDateDesc(transactions []*entity.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
}
