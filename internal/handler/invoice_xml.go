package handler

import (
	"fmt"

	"github.com/SulimanFURC/BE-HMS/internal/models"
	"github.com/beevik/etree"
)

// renderInvoiceXML serializes an invoice as a standalone XML document
func renderInvoiceXML(inv *models.Invoice) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Invoice")
	root.CreateAttr("number", inv.InvoiceNumber)
	root.CreateElement("Month").SetText(fmt.Sprintf("%02d", inv.Month))
	root.CreateElement("Year").SetText(fmt.Sprintf("%d", inv.Year))

	student := root.CreateElement("Student")
	student.CreateElement("ID").SetText(fmt.Sprintf("%d", inv.Student.ID))
	student.CreateElement("Name").SetText(inv.Student.Name)
	student.CreateElement("RoomNumber").SetText(inv.Student.RoomNumber)

	amounts := root.CreateElement("Amounts")
	amounts.CreateElement("BasicRent").SetText(inv.BasicRent.String())
	amounts.CreateElement("PreviousDues").SetText(inv.PreviousDues.String())
	amounts.CreateElement("TotalPayable").SetText(inv.TotalPayable.String())
	amounts.CreateElement("AmountPaid").SetText(inv.AmountPaid.String())
	amounts.CreateElement("BalanceDue").SetText(inv.BalanceDue.String())
	root.CreateElement("Status").SetText(inv.Status)

	history := root.CreateElement("PaymentHistory")
	for _, e := range inv.History {
		entry := history.CreateElement("Payment")
		entry.CreateAttr("month", fmt.Sprintf("%02d", e.Month))
		entry.CreateAttr("year", fmt.Sprintf("%d", e.Year))
		entry.CreateElement("Paid").SetText(e.PaidAmount.String())
		entry.CreateElement("Dues").SetText(e.Dues.String())
		entry.CreateElement("Status").SetText(e.Status)
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}
