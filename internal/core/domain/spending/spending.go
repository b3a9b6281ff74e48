package spending

import (
	"billmind/internal/core/domain/user"
	"time"
)

type TransactionID int64

// Transaction is a single spending record used for monthly and category
// aggregation.
type Transaction struct {
	ID       TransactionID
	UserID   user.ID
	Amount   float64
	Category string
	Date     time.Time
}

// Insights aggregates a user's transactions for one calendar year.
type Insights struct {
	MonthlyTotals  [12]float64
	CategoryTotals map[string]float64
	Remark         string
}

const bigSpenderMonthlyTotal = 1000

// ComputeInsights sums the transactions of now's calendar year per month and
// per category. Transactions from other years are ignored.
func ComputeInsights(transactions []Transaction, now time.Time) Insights {
	insights := Insights{CategoryTotals: make(map[string]float64)}
	year := now.Year()

	for _, txn := range transactions {
		if txn.Date.Year() != year {
			continue
		}
		insights.MonthlyTotals[txn.Date.Month()-1] += txn.Amount
		insights.CategoryTotals[txn.Category] += txn.Amount
	}

	if insights.MonthlyTotals[now.Month()-1] > bigSpenderMonthlyTotal {
		insights.Remark = "Whoa, big spender this month!"
	} else {
		insights.Remark = "Nice, you're keeping things under control!"
	}
	return insights
}
