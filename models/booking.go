package models

import "time"

// BookingStatus is the lifecycle state of a pickup request.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// WasteType enumerates the accepted pickup categories.
type WasteType string

const (
	WastePlastic WasteType = "plastic"
	WasteMetal   WasteType = "metal"
	WasteGlass   WasteType = "glass"
	WastePaper   WasteType = "paper"
	WasteOrganic WasteType = "organic"
	WasteOthers  WasteType = "others"
	WasteMixed   WasteType = "mixed"
)

// ValidWasteType reports whether t is one of the accepted categories.
func ValidWasteType(t WasteType) bool {
	switch t {
	case WastePlastic, WasteMetal, WasteGlass, WastePaper, WasteOrganic, WasteOthers, WasteMixed:
		return true
	}
	return false
}

// Booking represents a waste-collection pickup request.
type Booking struct {
	ID        string        `json:"id"`                 // Unique booking identifier (UUID)
	UserID    string        `json:"userId"`             // Owning user
	WasteType WasteType     `json:"wasteType"`          // Pickup category
	Weight    string        `json:"weight"`             // Free text, e.g. "5kg"
	Date      string        `json:"date"`               // "YYYY-MM-DD" or spoken form ("tomorrow")
	Time      string        `json:"time"`               // Slot string, e.g. "10:00-12:00"
	Location  string        `json:"location,omitempty"` // Coordinate string or free text
	Address   string        `json:"address,omitempty"`
	Notes     string        `json:"notes,omitempty"`
	Type      string        `json:"type,omitempty"` // Origin discriminator: "voice", "call" or "sms"
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// BookingWithUser is a booking joined with denormalized owner fields for
// the admin console.
type BookingWithUser struct {
	Booking
	UserName    string `json:"userName"`
	UserPhone   string `json:"userPhone"`
	UserAddress string `json:"userAddress"`
}
