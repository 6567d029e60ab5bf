package model

import "time"

// Reservation is a claim request a visitor submitted for an item.
// ItemName is copied at submission time and is not kept in sync with the item.
type Reservation struct {
	ID          string    `json:"id"`
	ItemID      string    `json:"itemId"`
	ItemName    string    `json:"itemName"`
	FullName    string    `json:"fullName"`
	UserType    string    `json:"userType"`
	ContactInfo string    `json:"contactInfo"`
	Comment     string    `json:"comment"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
}

// ReservationStatusPending is the status every reservation is created with.
// Nothing transitions it further.
const ReservationStatusPending = "pending"
