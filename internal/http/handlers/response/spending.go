package response

import (
	"time"

	"billmind/internal/core/domain/spending"
)

type Transaction struct {
	ID       int64     `json:"id"`
	UserID   string    `json:"user_id"`
	Amount   float64   `json:"amount"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
}

func (t *Transaction) FromDomainType(dt spending.Transaction) {
	t.ID = int64(dt.ID)
	t.UserID = dt.UserID.String()
	t.Amount = dt.Amount
	t.Category = dt.Category
	t.Date = dt.Date
}

type Insights struct {
	MonthlyTotals  []float64          `json:"monthly_totals"`
	CategoryTotals map[string]float64 `json:"category_totals"`
	Remark         string             `json:"remark"`
}

func (i *Insights) FromDomainType(di spending.Insights) {
	i.MonthlyTotals = di.MonthlyTotals[:]
	i.CategoryTotals = di.CategoryTotals
	i.Remark = di.Remark
}
