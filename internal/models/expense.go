package models

// Expense represents a single hostel expense record
type Expense struct {
	ID            int64  `json:"id"`
	Date          string `json:"date"` // Format: YYYY-MM-DD
	Name          string `json:"name"`
	Amount        Money  `json:"amount"`
	PaymentMode   string `json:"paymentMode"`
	Description   string `json:"description"`
	AttachmentURL string `json:"attachmentUrl"`
	CreatedAt     string `json:"createdAt"`
}
