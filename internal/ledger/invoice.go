package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/SulimanFURC/BE-HMS/internal/models"
)

// ErrNoCurrentEntry is returned when a student has no ledger entry for the
// invoice month; an invoice cannot be projected without a payment event.
var ErrNoCurrentEntry = errors.New("no rent entry for the current month")

// historyWindow caps the prior-period entries included on an invoice.
const historyWindow = 6

// InvoiceNumber builds the deterministic invoice identifier
// INV-{year}-{zero-padded month}-{last four digits of the student id}.
func InvoiceNumber(year, month int, studentID int64) string {
	return fmt.Sprintf("INV-%d-%02d-%04d", year, month, studentID%10000)
}

// BuildInvoice projects an invoice for the period containing now from the
// student's full entry list, ordered by (year, month, id) ascending. The
// caller supplies the clock so generation stays deterministic under test.
func BuildInvoice(student models.StudentSummary, entries []models.RentEntry, now time.Time) (*models.Invoice, error) {
	month, year := int(now.Month()), now.Year()
	prevMonth, prevYear := PreviousPeriod(month, year)

	var current *models.RentEntry
	var amountPaid, previousDues models.Money
	var history []models.RentEntry
	for i := range entries {
		e := &entries[i]
		switch {
		case e.Month == month && e.Year == year:
			current = e
			amountPaid += e.PaidAmount
		case e.Month == prevMonth && e.Year == prevYear:
			// Latest entry for the previous period wins.
			previousDues = e.Dues
		}
		if e.Year < year || (e.Year == year && e.Month < month) {
			history = append(history, *e)
		}
	}
	if current == nil {
		return nil, ErrNoCurrentEntry
	}

	// Newest first, capped.
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}
	if len(history) > historyWindow {
		history = history[:historyWindow]
	}

	totalPayable := current.BasicRent + previousDues
	return &models.Invoice{
		InvoiceNumber: InvoiceNumber(year, month, student.ID),
		Month:         month,
		Year:          year,
		Student:       student,
		BasicRent:     current.BasicRent,
		PreviousDues:  previousDues,
		TotalPayable:  totalPayable,
		AmountPaid:    amountPaid,
		BalanceDue:    totalPayable.Sub(amountPaid),
		Status:        current.Status,
		History:       history,
	}, nil
}
