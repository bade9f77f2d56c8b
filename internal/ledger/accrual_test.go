package ledger

import (
	"reflect"
	"testing"

	"github.com/SulimanFURC/BE-HMS/internal/models"
)

func rupees(v int64) models.Money {
	return models.Money(v * 100)
}

func TestPreviousPeriod(t *testing.T) {
	tests := []struct {
		name                 string
		month, year          int
		wantMonth, wantYear  int
	}{
		{"mid year", 6, 2024, 5, 2024},
		{"january rolls back a year", 1, 2024, 12, 2023},
		{"december", 12, 2024, 11, 2024},
		{"february", 2, 2024, 1, 2024},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, y := PreviousPeriod(tt.month, tt.year)
			if m != tt.wantMonth || y != tt.wantYear {
				t.Errorf("PreviousPeriod(%d, %d) = (%d, %d), want (%d, %d)",
					tt.month, tt.year, m, y, tt.wantMonth, tt.wantYear)
			}
		})
	}
}

func TestAccrue(t *testing.T) {
	tests := []struct {
		name         string
		basicRent    models.Money
		previousDues models.Money
		totalPaid    models.Money
		wantDues     models.Money
		wantStatus   string
	}{
		{
			name:       "partial payment leaves dues",
			basicRent:  rupees(5000),
			totalPaid:  rupees(2000),
			wantDues:   rupees(3000),
			wantStatus: models.RentStatusPartiallyPaid,
		},
		{
			name:       "exact payment settles",
			basicRent:  rupees(5000),
			totalPaid:  rupees(5000),
			wantDues:   0,
			wantStatus: models.RentStatusPaid,
		},
		{
			name:         "previous dues are added to payable",
			basicRent:    rupees(5000),
			previousDues: rupees(1000),
			totalPaid:    rupees(5000),
			wantDues:     rupees(1000),
			wantStatus:   models.RentStatusPartiallyPaid,
		},
		{
			name:       "overpayment clamps to zero",
			basicRent:  rupees(5000),
			totalPaid:  rupees(7000),
			wantDues:   0,
			wantStatus: models.RentStatusPaid,
		},
		{
			name:       "no payment at all",
			basicRent:  rupees(5000),
			totalPaid:  0,
			wantDues:   rupees(5000),
			wantStatus: models.RentStatusPartiallyPaid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dues, status := Accrue(tt.basicRent, tt.previousDues, tt.totalPaid)
			if dues != tt.wantDues || status != tt.wantStatus {
				t.Errorf("Accrue() = (%v, %q), want (%v, %q)", dues, status, tt.wantDues, tt.wantStatus)
			}
		})
	}
}

// Two payments against the same period must accumulate: 2000 then 3000
// against a 5000 rent ends the month fully paid.
func TestAccrue_PaymentSequence(t *testing.T) {
	basicRent := rupees(5000)

	dues, status := Accrue(basicRent, 0, rupees(2000))
	if dues != rupees(3000) || status != models.RentStatusPartiallyPaid {
		t.Fatalf("first payment: got (%v, %q), want (%v, %q)",
			dues, status, rupees(3000), models.RentStatusPartiallyPaid)
	}

	dues, status = Accrue(basicRent, 0, rupees(2000)+rupees(3000))
	if dues != 0 || status != models.RentStatusPaid {
		t.Fatalf("second payment: got (%v, %q), want (0, %q)", dues, status, models.RentStatusPaid)
	}
}

func TestReplay_CarriesDuesForward(t *testing.T) {
	entries := []models.RentEntry{
		{ID: 1, StudentID: 7, Month: 3, Year: 2024, BasicRent: rupees(5000), PaidAmount: rupees(2000)},
		{ID: 2, StudentID: 7, Month: 3, Year: 2024, BasicRent: rupees(5000), PaidAmount: rupees(1000)},
		{ID: 3, StudentID: 7, Month: 4, Year: 2024, BasicRent: rupees(5000), PaidAmount: rupees(7000)},
	}

	lines, total := Replay(entries)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	wantDues := []models.Money{rupees(3000), rupees(2000), 0}
	for i, want := range wantDues {
		if lines[i].CurrentMonthDue != want {
			t.Errorf("line %d: CurrentMonthDue = %v, want %v", i, lines[i].CurrentMonthDue, want)
		}
	}
	if total != 0 {
		t.Errorf("total dues = %v, want 0", total)
	}
}

func TestReplay_YearBoundary(t *testing.T) {
	entries := []models.RentEntry{
		{ID: 1, Month: 12, Year: 2023, BasicRent: rupees(5000), PaidAmount: rupees(4000)},
		{ID: 2, Month: 1, Year: 2024, BasicRent: rupees(5000), PaidAmount: rupees(5000)},
	}

	lines, total := Replay(entries)
	// December leaves 1000 outstanding, January pays 5000 of 6000.
	if lines[1].CurrentMonthDue != rupees(1000) {
		t.Errorf("january dues = %v, want %v", lines[1].CurrentMonthDue, rupees(1000))
	}
	if total != rupees(1000) {
		t.Errorf("total dues = %v, want %v", total, rupees(1000))
	}
}

// Replay ignores the persisted dues column, so a history whose stored values
// went stale after a non-cascading amendment still recomputes cleanly.
func TestReplay_IgnoresStoredDues(t *testing.T) {
	entries := []models.RentEntry{
		{ID: 1, Month: 1, Year: 2024, BasicRent: rupees(5000), PaidAmount: rupees(5000), Dues: rupees(9999)},
		{ID: 2, Month: 2, Year: 2024, BasicRent: rupees(5000), PaidAmount: rupees(3000), Dues: 0},
	}

	lines, total := Replay(entries)
	if lines[0].CurrentMonthDue != 0 {
		t.Errorf("january recomputed dues = %v, want 0", lines[0].CurrentMonthDue)
	}
	if lines[1].CurrentMonthDue != rupees(2000) || total != rupees(2000) {
		t.Errorf("february recomputed dues = %v (total %v), want %v", lines[1].CurrentMonthDue, total, rupees(2000))
	}
}

func TestReplay_Deterministic(t *testing.T) {
	entries := []models.RentEntry{
		{ID: 1, Month: 11, Year: 2023, BasicRent: rupees(4500), PaidAmount: rupees(4000)},
		{ID: 2, Month: 12, Year: 2023, BasicRent: rupees(4500), PaidAmount: rupees(2000)},
		{ID: 3, Month: 1, Year: 2024, BasicRent: rupees(4500), PaidAmount: rupees(8000)},
	}

	first, firstTotal := Replay(entries)
	second, secondTotal := Replay(entries)
	if !reflect.DeepEqual(first, second) || firstTotal != secondTotal {
		t.Error("Replay is not deterministic across identical inputs")
	}
}
