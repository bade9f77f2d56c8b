package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SulimanFURC/BE-HMS/internal/models"
)

const expenseColumns = `id, to_char(expense_date, 'YYYY-MM-DD'), name, amount,
	COALESCE(payment_mode, ''), COALESCE(description, ''), COALESCE(attachment_url, ''), created_at`

func scanExpense(row interface{ Scan(...any) error }) (*models.Expense, error) {
	e := &models.Expense{}
	err := row.Scan(&e.ID, &e.Date, &e.Name, &e.Amount,
		&e.PaymentMode, &e.Description, &e.AttachmentURL, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// CreateExpense inserts a new expense record
func (r *Repository) CreateExpense(ctx context.Context, e *models.Expense) error {
	query := `
		INSERT INTO hms.expenses (expense_date, name, amount, payment_mode, description, attachment_url, created_at)
		VALUES ($1::date, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		e.Date, e.Name, e.Amount, e.PaymentMode, e.Description, e.AttachmentURL).
		Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// FindExpenseByID retrieves an expense by id
func (r *Repository) FindExpenseByID(ctx context.Context, id int64) (*models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM hms.expenses WHERE id = $1`
	e, err := scanExpense(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}
	return e, nil
}

// ListExpenses returns a page of expenses, newest first
func (r *Repository) ListExpenses(ctx context.Context, limit, offset int) ([]models.Expense, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM hms.expenses`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := `SELECT ` + expenseColumns + ` FROM hms.expenses ORDER BY expense_date DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read expenses: %w", err)
	}
	return expenses, total, nil
}

// ExpensesByDateRange returns all expenses with expense_date inside the
// inclusive [start, end] window, oldest first.
func (r *Repository) ExpensesByDateRange(ctx context.Context, start, end string) ([]models.Expense, error) {
	query := `SELECT ` + expenseColumns + `
		FROM hms.expenses
		WHERE expense_date BETWEEN $1::date AND $2::date
		ORDER BY expense_date, id`
	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses by date range: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expenses: %w", err)
	}
	return expenses, nil
}

// UpdateExpense overwrites an expense record
func (r *Repository) UpdateExpense(ctx context.Context, e *models.Expense) error {
	query := `
		UPDATE hms.expenses
		SET expense_date = $1::date, name = $2, amount = $3, payment_mode = $4,
			description = $5, attachment_url = $6
		WHERE id = $7`
	res, err := r.db.ExecContext(ctx, query,
		e.Date, e.Name, e.Amount, e.PaymentMode, e.Description, e.AttachmentURL, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteExpense removes an expense record
func (r *Repository) DeleteExpense(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM hms.expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
