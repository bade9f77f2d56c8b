package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SulimanFURC/BE-HMS/internal/models"
)

// TotalIncome sums paid amounts across fully settled rent entries
func (r *Repository) TotalIncome(ctx context.Context) (models.Money, error) {
	var total models.Money
	query := `SELECT COALESCE(SUM(paid_amount), 0) FROM hms.rent WHERE status = $1`
	if err := r.db.QueryRowContext(ctx, query, models.RentStatusPaid).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum income: %w", err)
	}
	return total, nil
}

// TotalExpense sums all expense amounts
func (r *Repository) TotalExpense(ctx context.Context) (models.Money, error) {
	var total models.Money
	if err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount), 0) FROM hms.expenses`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return total, nil
}

func (r *Repository) monthlyTotals(ctx context.Context, query string, args ...any) ([]models.MonthlyTotal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals: %w", err)
	}
	defer rows.Close()

	totals := []models.MonthlyTotal{}
	for rows.Next() {
		var t models.MonthlyTotal
		if err := rows.Scan(&t.Year, &t.Month, &t.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan monthly total: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read monthly totals: %w", err)
	}
	return totals, nil
}

// RecentMonthlyIncome returns settled income for the two most recent billing
// periods that have any, newest first.
func (r *Repository) RecentMonthlyIncome(ctx context.Context) ([]models.MonthlyTotal, error) {
	return r.monthlyTotals(ctx, `
		SELECT year, month, SUM(paid_amount)
		FROM hms.rent
		WHERE status = $1
		GROUP BY year, month
		ORDER BY year DESC, month DESC
		LIMIT 2`, models.RentStatusPaid)
}

// RecentMonthlyExpense returns expenses for the two most recent months that
// have any, newest first.
func (r *Repository) RecentMonthlyExpense(ctx context.Context) ([]models.MonthlyTotal, error) {
	return r.monthlyTotals(ctx, `
		SELECT EXTRACT(YEAR FROM expense_date)::int, EXTRACT(MONTH FROM expense_date)::int, SUM(amount)
		FROM hms.expenses
		GROUP BY 1, 2
		ORDER BY 1 DESC, 2 DESC
		LIMIT 2`)
}

// MonthlyIncome returns per-month rent collections across all statuses; the
// chart counts partial payments as income the way the summary does not.
func (r *Repository) MonthlyIncome(ctx context.Context) ([]models.MonthlyTotal, error) {
	return r.monthlyTotals(ctx, `
		SELECT year, month, SUM(paid_amount)
		FROM hms.rent
		WHERE status IN ($1, $2)
		GROUP BY year, month`, models.RentStatusPaid, models.RentStatusPartiallyPaid)
}

// MonthlyExpense returns per-month expense totals for all months
func (r *Repository) MonthlyExpense(ctx context.Context) ([]models.MonthlyTotal, error) {
	return r.monthlyTotals(ctx, `
		SELECT EXTRACT(YEAR FROM expense_date)::int, EXTRACT(MONTH FROM expense_date)::int, SUM(amount)
		FROM hms.expenses
		GROUP BY 1, 2`)
}

// MostSpending returns the expense category with the highest summed amount.
// Ties resolve to whichever row the database returns first.
func (r *Repository) MostSpending(ctx context.Context) (*models.CategorySpend, error) {
	c := &models.CategorySpend{}
	query := `
		SELECT name, SUM(amount) AS total_spent
		FROM hms.expenses
		GROUP BY name
		ORDER BY total_spent DESC
		LIMIT 1`
	err := r.db.QueryRowContext(ctx, query).Scan(&c.Name, &c.TotalSpent)
	if err == sql.ErrNoRows {
		return &models.CategorySpend{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read top spending category: %w", err)
	}
	return c, nil
}
