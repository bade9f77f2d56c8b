package handler

import (
	"strings"
	"testing"

	"github.com/SulimanFURC/BE-HMS/internal/models"
	"github.com/beevik/etree"
)

func TestRenderInvoiceXML(t *testing.T) {
	inv := &models.Invoice{
		InvoiceNumber: "INV-2024-04-0042",
		Month:         4,
		Year:          2024,
		Student:       models.StudentSummary{ID: 42, Name: "Ali Raza", RoomNumber: "B-12"},
		BasicRent:     500000,
		PreviousDues:  100000,
		TotalPayable:  600000,
		AmountPaid:    300000,
		BalanceDue:    300000,
		Status:        models.RentStatusPartiallyPaid,
		History: []models.RentEntry{
			{Month: 3, Year: 2024, PaidAmount: 400000, Dues: 100000, Status: models.RentStatusPartiallyPaid},
		},
	}

	out, err := renderInvoiceXML(inv)
	if err != nil {
		t.Fatalf("renderInvoiceXML: %v", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(out); err != nil {
		t.Fatalf("output is not valid XML: %v", err)
	}

	root := doc.SelectElement("Invoice")
	if root == nil {
		t.Fatal("missing Invoice root element")
	}
	if got := root.SelectAttrValue("number", ""); got != "INV-2024-04-0042" {
		t.Errorf("number attr = %q, want INV-2024-04-0042", got)
	}
	if got := root.FindElement("./Amounts/TotalPayable"); got == nil || got.Text() != "6000.00" {
		t.Errorf("TotalPayable element = %v, want 6000.00", got)
	}
	if payments := root.FindElements("./PaymentHistory/Payment"); len(payments) != 1 {
		t.Errorf("payment history entries = %d, want 1", len(payments))
	}
	if !strings.Contains(string(out), "Ali Raza") {
		t.Error("student name missing from document")
	}
}
