package service

import (
	"context"
	"math"
	"time"

	"github.com/SulimanFURC/BE-HMS/internal/models"
)

// pctChange is the month-over-month percentage delta. A zero previous value
// maps to 0 when nothing changed and 100 otherwise.
func pctChange(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return (current - previous) / previous * 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// trailingMonths returns the n periods ending at now's month, oldest first
func trailingMonths(now time.Time, n int) []models.MonthlyTotal {
	months := make([]models.MonthlyTotal, n)
	year, month := now.Year(), int(now.Month())
	for i := n - 1; i >= 0; i-- {
		months[i] = models.MonthlyTotal{Year: year, Month: month}
		month--
		if month == 0 {
			month = 12
			year--
		}
	}
	return months
}

// DashboardSummary builds the financial rollup: lifetime totals, month-over-
// month percentage changes and the top spending category. Income counts only
// fully settled entries, consistently across the summary.
func (s *Service) DashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	totalIncome, err := s.repo.TotalIncome(ctx)
	if err != nil {
		return nil, err
	}
	totalExpense, err := s.repo.TotalExpense(ctx)
	if err != nil {
		return nil, err
	}

	incomeByMonth, err := s.repo.RecentMonthlyIncome(ctx)
	if err != nil {
		return nil, err
	}
	expenseByMonth, err := s.repo.RecentMonthlyExpense(ctx)
	if err != nil {
		return nil, err
	}

	pick := func(totals []models.MonthlyTotal, i int) models.Money {
		if i < len(totals) {
			return totals[i].Amount
		}
		return 0
	}
	curIncome, prevIncome := pick(incomeByMonth, 0), pick(incomeByMonth, 1)
	curExpense, prevExpense := pick(expenseByMonth, 0), pick(expenseByMonth, 1)

	mostSpending, err := s.repo.MostSpending(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DashboardSummary{
		TotalIncome:   totalIncome,
		IncomeChange:  round2(pctChange(curIncome.Float(), prevIncome.Float())),
		TotalExpense:  totalExpense,
		ExpenseChange: round2(pctChange(curExpense.Float(), prevExpense.Float())),
		TotalSavings:  totalIncome - totalExpense,
		SavingsChange: round2(pctChange(curIncome.Float()-curExpense.Float(), prevIncome.Float()-prevExpense.Float())),
		MostSpending:  *mostSpending,
	}, nil
}

// DashboardChart builds income, expense and savings for the trailing six
// months including the current one, oldest first.
func (s *Service) DashboardChart(ctx context.Context) ([]models.ChartPoint, error) {
	income, err := s.repo.MonthlyIncome(ctx)
	if err != nil {
		return nil, err
	}
	expense, err := s.repo.MonthlyExpense(ctx)
	if err != nil {
		return nil, err
	}

	type period struct{ year, month int }
	incomeBy := make(map[period]models.Money, len(income))
	for _, t := range income {
		incomeBy[period{t.Year, t.Month}] = t.Amount
	}
	expenseBy := make(map[period]models.Money, len(expense))
	for _, t := range expense {
		expenseBy[period{t.Year, t.Month}] = t.Amount
	}

	months := trailingMonths(s.now(), 6)
	points := make([]models.ChartPoint, 0, len(months))
	for _, m := range months {
		in := incomeBy[period{m.Year, m.Month}]
		out := expenseBy[period{m.Year, m.Month}]
		points = append(points, models.ChartPoint{
			Year:    m.Year,
			Month:   m.Month,
			Income:  in,
			Expense: out,
			Savings: in - out,
		})
	}
	return points, nil
}
