package models

import "time"

// Transaction is a merged dashboard row sourced from either collection.
type Transaction struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"` // "income" or "expense"
	Date        string    `json:"date"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Source      string    `json:"source,omitempty"`
	Vendor      string    `json:"vendor,omitempty"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CategoryBreakdown struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int64   `json:"count"`
}

type DashboardSummary struct {
	TotalBalance       float64             `json:"totalBalance"`
	TotalIncome        float64             `json:"totalIncome"`
	TotalExpenses      float64             `json:"totalExpenses"`
	ExpensesByCategory []CategoryBreakdown `json:"expensesByCategory"`
	RecentTransactions []Transaction       `json:"recentTransactions"`
}
