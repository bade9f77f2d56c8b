package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/SulimanFURC/BE-HMS/internal/ledger"
	"github.com/SulimanFURC/BE-HMS/internal/models"
	"github.com/SulimanFURC/BE-HMS/internal/repository"
	"github.com/sirupsen/logrus"
)

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidArgument)
	}
	if year < 2000 || year > 2200 {
		return fmt.Errorf("%w: year %d is out of range", ErrInvalidArgument, year)
	}
	return nil
}

// RecordPayment records a payment event for a student's billing period and
// returns the resulting ledger entry. Overpayment is accepted; dues clamp at
// zero rather than rejecting the payment.
func (s *Service) RecordPayment(ctx context.Context, studentID int64, month, year int, paid models.Money, rentType string) (*models.RentEntry, error) {
	if studentID <= 0 {
		return nil, fmt.Errorf("%w: studentId is required", ErrInvalidArgument)
	}
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}
	if paid <= 0 {
		return nil, fmt.Errorf("%w: paidAmount must be positive", ErrInvalidArgument)
	}

	entry, err := s.repo.CreateRentEntry(ctx, studentID, month, year, paid, rentType)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"studentId": studentID,
		"month":     month,
		"year":      year,
		"dues":      entry.Dues.Float(),
	}).Infof("Rent payment recorded: %s", entry.Status)
	return entry, nil
}

// AmendPayment recomputes and overwrites an existing payment event. Dues
// stored for later periods are not recomputed; they stay stale until their
// own next payment event re-reads the amended value.
func (s *Service) AmendPayment(ctx context.Context, entryID int64, month, year int, paid models.Money, rentType string) (*models.RentEntry, error) {
	if entryID <= 0 {
		return nil, fmt.Errorf("%w: rentId is required", ErrInvalidArgument)
	}
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}
	if paid <= 0 {
		return nil, fmt.Errorf("%w: paidAmount must be positive", ErrInvalidArgument)
	}

	entry, err := s.repo.AmendRentEntry(ctx, entryID, month, year, paid, rentType)
	if err != nil {
		return nil, err
	}

	s.log.Infof("Rent entry %d amended: dues %.2f (%s)", entryID, entry.Dues.Float(), entry.Status)
	return entry, nil
}

// RemovePayment deletes a payment event without cascading recomputation
func (s *Service) RemovePayment(ctx context.Context, entryID int64) error {
	if entryID <= 0 {
		return fmt.Errorf("%w: rentId is required", ErrInvalidArgument)
	}
	if err := s.repo.DeleteRentEntry(ctx, entryID); err != nil {
		return err
	}
	s.log.Infof("Rent entry %d deleted", entryID)
	return nil
}

// RentEntry returns a single payment event
func (s *Service) RentEntry(ctx context.Context, entryID int64) (*models.RentEntry, error) {
	if entryID <= 0 {
		return nil, fmt.Errorf("%w: rentId is required", ErrInvalidArgument)
	}
	return s.repo.FindRentEntryByID(ctx, entryID)
}

// ListRents returns a page of payment events with optional student-name
// search and status filter.
func (s *Service) ListRents(ctx context.Context, limit, offset int, search, status string) ([]models.RentEntry, int, error) {
	if status != "" && status != models.RentStatusPaid && status != models.RentStatusPartiallyPaid {
		return nil, 0, fmt.Errorf("%w: unknown rentStatus %q", ErrInvalidArgument, status)
	}
	return s.repo.ListRentEntries(ctx, limit, offset, search, status)
}

// LedgerHistory assembles the per-student ledger view: all entries in period
// order with dues recomputed by replaying the accrual walk. The recomputed
// figures can diverge from stored dues after non-cascading amendments.
func (s *Service) LedgerHistory(ctx context.Context, studentID int64) (*models.LedgerHistory, error) {
	if studentID <= 0 {
		return nil, fmt.Errorf("%w: studentId is required", ErrInvalidArgument)
	}

	summary, err := s.repo.StudentSummary(ctx, studentID)
	if err != nil {
		return nil, err
	}
	charges, err := s.repo.StudentCharges(ctx, studentID)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.RentEntriesByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	lines, totalDues := ledger.Replay(entries)
	var totalPayments models.Money
	for _, e := range entries {
		totalPayments += e.PaidAmount
	}

	return &models.LedgerHistory{
		Student:       *summary,
		BasicRent:     charges.BasicRent,
		SecurityFee:   charges.SecurityFee,
		TotalPayments: totalPayments,
		TotalDues:     totalDues,
		History:       lines,
	}, nil
}

// Invoice projects the current-period invoice for a student
func (s *Service) Invoice(ctx context.Context, studentID int64) (*models.Invoice, error) {
	if studentID <= 0 {
		return nil, fmt.Errorf("%w: studentId is required", ErrInvalidArgument)
	}

	summary, err := s.repo.StudentSummary(ctx, studentID)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.RentEntriesByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	inv, err := ledger.BuildInvoice(*summary, entries, s.now())
	if errors.Is(err, ledger.ErrNoCurrentEntry) {
		return nil, fmt.Errorf("%w: %v", repository.ErrNotFound, err)
	}
	if err != nil {
		return nil, err
	}
	return inv, nil
}
