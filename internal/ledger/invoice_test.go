package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/SulimanFURC/BE-HMS/internal/models"
)

func TestInvoiceNumber(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     int
		studentID int64
		want      string
	}{
		{"short id is left padded", 2024, 3, 7, "INV-2024-03-0007"},
		{"long id keeps last four digits", 2024, 12, 123456, "INV-2024-12-3456"},
		{"four digit id", 2025, 1, 9876, "INV-2025-01-9876"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InvoiceNumber(tt.year, tt.month, tt.studentID); got != tt.want {
				t.Errorf("InvoiceNumber(%d, %d, %d) = %q, want %q", tt.year, tt.month, tt.studentID, got, tt.want)
			}
		})
	}
}

func TestBuildInvoice(t *testing.T) {
	student := models.StudentSummary{ID: 42, Name: "Ali Raza", RoomNumber: "B-12"}
	now := time.Date(2024, 4, 15, 10, 0, 0, 0, time.UTC)

	entries := []models.RentEntry{
		{ID: 1, StudentID: 42, Month: 3, Year: 2024, BasicRent: rupees(5000), PaidAmount: rupees(4000), Dues: rupees(1000), Status: models.RentStatusPartiallyPaid},
		{ID: 2, StudentID: 42, Month: 4, Year: 2024, BasicRent: rupees(5000), PaidAmount: rupees(3000), Dues: rupees(3000), Status: models.RentStatusPartiallyPaid},
	}

	inv, err := BuildInvoice(student, entries, now)
	if err != nil {
		t.Fatalf("BuildInvoice: %v", err)
	}

	if inv.InvoiceNumber != "INV-2024-04-0042" {
		t.Errorf("InvoiceNumber = %q, want INV-2024-04-0042", inv.InvoiceNumber)
	}
	if inv.TotalPayable != rupees(6000) {
		t.Errorf("TotalPayable = %v, want %v", inv.TotalPayable, rupees(6000))
	}
	if inv.BalanceDue != rupees(3000) {
		t.Errorf("BalanceDue = %v, want %v", inv.BalanceDue, rupees(3000))
	}
	if inv.PreviousDues != rupees(1000) {
		t.Errorf("PreviousDues = %v, want %v", inv.PreviousDues, rupees(1000))
	}
	if len(inv.History) != 1 || inv.History[0].ID != 1 {
		t.Errorf("History = %+v, want single march entry", inv.History)
	}
}

func TestBuildInvoice_NoCurrentEntry(t *testing.T) {
	now := time.Date(2024, 4, 15, 10, 0, 0, 0, time.UTC)
	entries := []models.RentEntry{
		{ID: 1, Month: 2, Year: 2024, BasicRent: rupees(5000), PaidAmount: rupees(5000), Status: models.RentStatusPaid},
	}

	_, err := BuildInvoice(models.StudentSummary{ID: 1}, entries, now)
	if !errors.Is(err, ErrNoCurrentEntry) {
		t.Fatalf("err = %v, want ErrNoCurrentEntry", err)
	}
}

func TestBuildInvoice_HistoryWindow(t *testing.T) {
	now := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	var entries []models.RentEntry
	for m := 1; m <= 9; m++ {
		entries = append(entries, models.RentEntry{
			ID: int64(m), Month: m, Year: 2024,
			BasicRent: rupees(5000), PaidAmount: rupees(5000), Status: models.RentStatusPaid,
		})
	}

	inv, err := BuildInvoice(models.StudentSummary{ID: 5}, entries, now)
	if err != nil {
		t.Fatalf("BuildInvoice: %v", err)
	}
	if len(inv.History) != 6 {
		t.Fatalf("history length = %d, want 6", len(inv.History))
	}
	// Newest first: August back through March.
	if inv.History[0].Month != 8 || inv.History[5].Month != 3 {
		t.Errorf("history order = %d..%d, want 8..3", inv.History[0].Month, inv.History[5].Month)
	}
}

// Aggregates multiple payment events within the invoice month.
func TestBuildInvoice_MultiplePaymentsSameMonth(t *testing.T) {
	now := time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC)
	entries := []models.RentEntry{
		{ID: 1, Month: 4, Year: 2024, BasicRent: rupees(5000), PaidAmount: rupees(2000), Dues: rupees(3000), Status: models.RentStatusPartiallyPaid},
		{ID: 2, Month: 4, Year: 2024, BasicRent: rupees(5000), PaidAmount: rupees(3000), Dues: 0, Status: models.RentStatusPaid},
	}

	inv, err := BuildInvoice(models.StudentSummary{ID: 9}, entries, now)
	if err != nil {
		t.Fatalf("BuildInvoice: %v", err)
	}
	if inv.AmountPaid != rupees(5000) {
		t.Errorf("AmountPaid = %v, want %v", inv.AmountPaid, rupees(5000))
	}
	if inv.BalanceDue != 0 {
		t.Errorf("BalanceDue = %v, want 0", inv.BalanceDue)
	}
	if inv.Status != models.RentStatusPaid {
		t.Errorf("Status = %q, want %q", inv.Status, models.RentStatusPaid)
	}
}
