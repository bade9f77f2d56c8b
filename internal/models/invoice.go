package models

// Invoice is a derived, point-in-time billing summary for a student. It is
// never persisted; every generation recomputes it from the ledger.
type Invoice struct {
	InvoiceNumber string         `json:"invoiceNumber"`
	Month         int            `json:"month"`
	Year          int            `json:"year"`
	Student       StudentSummary `json:"student"`
	BasicRent     Money          `json:"basicRent"`
	PreviousDues  Money          `json:"previousDues"`
	TotalPayable  Money          `json:"totalPayable"`
	AmountPaid    Money          `json:"amountPaid"`
	BalanceDue    Money          `json:"balanceDue"`
	Status        string         `json:"status"`
	History       []RentEntry    `json:"paymentHistory"`
}
