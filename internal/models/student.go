package models

// Student represents a hostel resident
type Student struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	CNIC               string `json:"cnic"`
	AdmissionDate      string `json:"admissionDate"` // Format: YYYY-MM-DD
	BasicRent          Money  `json:"basicRent"`
	SecurityFee        Money  `json:"securityFee"`
	ContactNo          string `json:"contactNo"`
	SecondaryContactNo string `json:"secondaryContactNo"`
	BloodGroup         string `json:"bloodGroup"`
	Address            string `json:"address"`
	Email              string `json:"email"`
	RoomNumber         string `json:"roomNumber"`
	Description        string `json:"description"`
	Picture            string `json:"picture"`
	CNICFront          string `json:"cnicFront"`
	CNICBack           string `json:"cnicBack"`
	CreatedAt          string `json:"createdAt"`
	UpdatedAt          string `json:"updatedAt"`
}

// StudentSummary is the reduced view the rent ledger reads
type StudentSummary struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	RoomNumber string `json:"roomNumber"`
}

// StudentCharges holds the billing figures owned by the student registry
type StudentCharges struct {
	BasicRent   Money `json:"basicRent"`
	SecurityFee Money `json:"securityFee"`
}
