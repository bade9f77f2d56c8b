// Package ledger implements the rent accrual rules: dues carried forward
// month to month per student, payment status, history replay and invoice
// projection. It is pure computation; persistence lives in the repository.
package ledger

import (
	"github.com/SulimanFURC/BE-HMS/internal/models"
)

// PreviousPeriod returns the billing period immediately before (month, year),
// rolling the year boundary so that January looks back at December.
func PreviousPeriod(month, year int) (int, int) {
	if month == 1 {
		return 12, year - 1
	}
	return month - 1, year
}

// Accrue computes the outstanding dues and payment status for a period given
// the rent snapshot, the dues carried in from the previous period, and the
// total paid so far for this period. Overpayment is accepted and dues are
// clamped at zero.
func Accrue(basicRent, previousDues, totalPaid models.Money) (models.Money, string) {
	payable := basicRent + previousDues
	dues := payable.Sub(totalPaid)
	if dues == 0 {
		return 0, models.RentStatusPaid
	}
	return dues, models.RentStatusPartiallyPaid
}

// Replay walks a student's entries ordered by (year, month, id) ascending and
// recomputes each entry's dues from the stored snapshots and payments,
// carrying the previous period's balance forward exactly as Accrue does on
// write. The second return value is the final outstanding balance.
//
// The recomputed view deliberately ignores the persisted dues column, so it
// can diverge from stored values after an amend or delete that did not
// cascade. That divergence is expected, not a defect.
func Replay(entries []models.RentEntry) ([]models.LedgerLine, models.Money) {
	lines := make([]models.LedgerLine, 0, len(entries))
	var carry, periodPaid, lastDue models.Money
	curMonth, curYear := 0, 0
	for _, e := range entries {
		if e.Month != curMonth || e.Year != curYear {
			carry = lastDue
			periodPaid = 0
			curMonth, curYear = e.Month, e.Year
		}
		periodPaid += e.PaidAmount
		due, _ := Accrue(e.BasicRent, carry, periodPaid)
		lines = append(lines, models.LedgerLine{RentEntry: e, CurrentMonthDue: due})
		lastDue = due
	}
	return lines, lastDue
}
