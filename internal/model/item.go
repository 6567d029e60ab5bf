package model

import "time"

// Item is a lost-and-found listing, active until its owner claims it.
type Item struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	IconClass    string    `json:"iconClass"`
	Location     string    `json:"location"`
	Date         string    `json:"date"`
	Status       string    `json:"status"`
	Description  string    `json:"description,omitempty"`
	AdminDetails string    `json:"adminDetails,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Item statuses.
const (
	ItemStatusActive  = "active"
	ItemStatusClaimed = "claimed"
)

// DefaultIconClass is used when an item is published without an icon.
const DefaultIconClass = "fa-box"

// ValidItemStatus reports whether status is one an item can be in.
func ValidItemStatus(status string) bool {
	return status == ItemStatusActive || status == ItemStatusClaimed
}

// Public returns a copy of the item without admin-only fields.
func (i Item) Public() Item {
	i.AdminDetails = ""
	return i
}
