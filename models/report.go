package models

import "time"

// Report is a free-form service issue report, kept per user alongside the
// other collections.
type Report struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	UserEmail   string    `json:"userEmail,omitempty"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Status      string    `json:"status"` // Always "sent" once stored
	CreatedAt   time.Time `json:"createdAt"`
}
