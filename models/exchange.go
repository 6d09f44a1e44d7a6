package models

import "time"

// ExchangeStatus is the lifecycle state of a bottle-exchange request.
// Approved and rejected are terminal.
type ExchangeStatus string

const (
	ExchangePending  ExchangeStatus = "pending"
	ExchangeApproved ExchangeStatus = "approved"
	ExchangeRejected ExchangeStatus = "rejected"
)

// BottleType enumerates the exchangeable bottle kinds.
type BottleType string

const (
	BottlePlastic BottleType = "plastic"
	BottleGlass   BottleType = "glass"
)

// ValidBottleType reports whether b is a known bottle kind.
func ValidBottleType(b BottleType) bool {
	return b == BottlePlastic || b == BottleGlass
}

// Exchange represents a bottle-for-credit request. Rate and TotalCredits
// are snapshotted at submission time; later rate changes do not touch them.
type Exchange struct {
	ID           string         `json:"id"`
	UserID       string         `json:"userId"`
	BottleType   BottleType     `json:"bottleType"`
	Quantity     int            `json:"quantity"`
	Rate         int            `json:"rate"`         // Credits per bottle at submission time
	TotalCredits int            `json:"totalCredits"` // Quantity * Rate
	Status       ExchangeStatus `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
	ProcessedAt  *time.Time     `json:"processedAt,omitempty"`
}

// ExchangeWithUser is an exchange joined with denormalized owner fields.
type ExchangeWithUser struct {
	Exchange
	UserName    string `json:"userName"`
	UserPhone   string `json:"userPhone"`
	UserAddress string `json:"userAddress"`
}

// RateTable maps bottle type to credits per bottle. Globally shared and
// mutable by admin.
type RateTable map[BottleType]int

// DefaultRateTable returns the built-in rates used until an admin sets
// their own.
func DefaultRateTable() RateTable {
	return RateTable{
		BottlePlastic: 2,
		BottleGlass:   5,
	}
}
