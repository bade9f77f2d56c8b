package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SulimanFURC/BE-HMS/internal/models"
)

func validateDate(value, field string) error {
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%w: %s must be formatted YYYY-MM-DD", ErrInvalidArgument, field)
	}
	return nil
}

// Expenses returns a page of expense records
func (s *Service) Expenses(ctx context.Context, limit, offset int) ([]models.Expense, int, error) {
	return s.repo.ListExpenses(ctx, limit, offset)
}

// Expense returns a single expense record
func (s *Service) Expense(ctx context.Context, id int64) (*models.Expense, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: expenseId is required", ErrInvalidArgument)
	}
	return s.repo.FindExpenseByID(ctx, id)
}

// CreateExpense records a new expense. A base64 attachment, when present, is
// uploaded before the row is written.
func (s *Service) CreateExpense(ctx context.Context, e *models.Expense) error {
	if e.Name == "" || e.Date == "" || e.Amount <= 0 {
		return fmt.Errorf("%w: name, date and amount are required", ErrInvalidArgument)
	}
	if err := validateDate(e.Date, "date"); err != nil {
		return err
	}

	var err error
	if e.AttachmentURL, err = s.uploadIfData(ctx, e.AttachmentURL, "expenses", "attachment"); err != nil {
		return err
	}

	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return err
	}

	s.log.Infof("Expense created: %s %.2f", e.Name, e.Amount.Float())
	return nil
}

// UpdateExpense applies a partial update to an expense record
func (s *Service) UpdateExpense(ctx context.Context, e *models.Expense) error {
	if e.ID <= 0 {
		return fmt.Errorf("%w: expenseId is required", ErrInvalidArgument)
	}

	existing, err := s.repo.FindExpenseByID(ctx, e.ID)
	if err != nil {
		return err
	}

	if e.Name == "" {
		e.Name = existing.Name
	}
	if e.Date == "" {
		e.Date = existing.Date
	} else if err := validateDate(e.Date, "date"); err != nil {
		return err
	}
	if e.Amount <= 0 {
		e.Amount = existing.Amount
	}
	if e.PaymentMode == "" {
		e.PaymentMode = existing.PaymentMode
	}
	if e.Description == "" {
		e.Description = existing.Description
	}
	if e.AttachmentURL == "" {
		e.AttachmentURL = existing.AttachmentURL
	} else if e.AttachmentURL, err = s.uploadIfData(ctx, e.AttachmentURL, "expenses", "attachment"); err != nil {
		return err
	}

	if err := s.repo.UpdateExpense(ctx, e); err != nil {
		return err
	}

	s.log.Infof("Expense %d updated", e.ID)
	return nil
}

// DeleteExpense removes an expense record
func (s *Service) DeleteExpense(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: expenseId is required", ErrInvalidArgument)
	}
	if err := s.repo.DeleteExpense(ctx, id); err != nil {
		return err
	}
	s.log.Infof("Expense %d deleted", id)
	return nil
}

// ExpensesByDateRange returns expenses inside the inclusive date window along
// with their summed amount.
func (s *Service) ExpensesByDateRange(ctx context.Context, start, end string) ([]models.Expense, models.Money, error) {
	if start == "" || end == "" {
		return nil, 0, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidArgument)
	}
	if err := validateDate(start, "startDate"); err != nil {
		return nil, 0, err
	}
	if err := validateDate(end, "endDate"); err != nil {
		return nil, 0, err
	}

	expenses, err := s.repo.ExpensesByDateRange(ctx, start, end)
	if err != nil {
		return nil, 0, err
	}

	var total models.Money
	for _, e := range expenses {
		total += e.Amount
	}
	return expenses, total, nil
}
