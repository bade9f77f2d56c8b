package models

// Room represents a hostel room
type Room struct {
	ID          int64  `json:"id"`
	RoomNumber  string `json:"roomNumber"`
	Capacity    int    `json:"capacity"`
	Occupied    int    `json:"occupied"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}
