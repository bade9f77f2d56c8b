package models

// DashboardSummary represents the financial rollup shown on the admin home
type DashboardSummary struct {
	TotalIncome   Money        `json:"totalIncome"`
	IncomeChange  float64      `json:"incomeChange"`
	TotalExpense  Money        `json:"totalExpense"`
	ExpenseChange float64      `json:"expenseChange"`
	TotalSavings  Money        `json:"totalSavings"`
	SavingsChange float64      `json:"savingsChange"`
	MostSpending  CategorySpend `json:"mostSpending"`
}

// CategorySpend is an expense category with its summed amount
type CategorySpend struct {
	Name       string `json:"name"`
	TotalSpent Money  `json:"totalSpent"`
}

// MonthlyTotal is an aggregated amount for a (year, month) bucket
type MonthlyTotal struct {
	Year   int   `json:"year"`
	Month  int   `json:"month"`
	Amount Money `json:"amount"`
}

// ChartPoint is one month of the income/expense/savings chart
type ChartPoint struct {
	Year    int   `json:"year"`
	Month   int   `json:"month"`
	Income  Money `json:"income"`
	Expense Money `json:"expense"`
	Savings Money `json:"savings"`
}
