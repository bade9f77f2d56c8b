package models

// Rent payment statuses
const (
	RentStatusPaid          = "Paid"
	RentStatusPartiallyPaid = "Partially Paid"
)

// RentEntry represents one recorded payment event for a billing period.
// BasicRent is a snapshot of the student's rent at payment time; Dues is the
// outstanding balance after this payment, carried into the next period.
type RentEntry struct {
	ID         int64  `json:"id"`
	StudentID  int64  `json:"studentId"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
	BasicRent  Money  `json:"basicRentSnapshot"`
	PaidAmount Money  `json:"paidAmount"`
	Dues       Money  `json:"dues"`
	Status     string `json:"status"`
	RentType   string `json:"rentType"`
	CreatedAt  string `json:"createdAt"`

	// StudentName is populated on list queries joined with the registry.
	StudentName string `json:"studentName,omitempty"`
}

// LedgerLine is a RentEntry annotated with dues recomputed by replaying the
// accrual walk over the stored history. CurrentMonthDue can diverge from the
// persisted Dues after non-cascading amendments, which is expected.
type LedgerLine struct {
	RentEntry
	CurrentMonthDue Money `json:"currentMonthDue"`
}

// LedgerHistory is the full per-student ledger view
type LedgerHistory struct {
	Student       StudentSummary `json:"student"`
	BasicRent     Money          `json:"basicRent"`
	SecurityFee   Money          `json:"securityFee"`
	TotalPayments Money          `json:"totalPayments"`
	TotalDues     Money          `json:"totalDues"`
	History       []LedgerLine   `json:"rentalHistory"`
}
