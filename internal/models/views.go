package models

// DashboardSummary is the per-member overview shown on the dashboard.
type DashboardSummary struct {
	TotalBalance       float64       `json:"totalBalance"`
	ActiveLoans        int64         `json:"activeLoans"`
	Investments        float64       `json:"investments"`
	RecentTransactions []Transaction `json:"recentTransactions"`
}

// LoansView lists a member's loans with derived totals.
type LoansView struct {
	CurrentLoans   []Loan  `json:"currentLoans"`
	TotalBorrowed  float64 `json:"totalBorrowed"`
	TotalRemaining float64 `json:"totalRemaining"`
}

// InvestmentsView lists a member's holdings with their total value.
type InvestmentsView struct {
	Portfolio  []Investment `json:"portfolio"`
	TotalValue float64      `json:"totalValue"`
}
