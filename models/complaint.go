package models

import "time"

// ComplaintStatus is the lifecycle state of a complaint.
type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
)

// ComplaintCategory enumerates the reportable issue kinds.
type ComplaintCategory string

const (
	CategoryIllegalDumping   ComplaintCategory = "illegal_dumping"
	CategoryOverflowingBins  ComplaintCategory = "overflowing_bins"
	CategoryMissedCollection ComplaintCategory = "missed_collection"
	CategoryPoorService      ComplaintCategory = "poor_service"
	CategoryContamination    ComplaintCategory = "contamination"
	CategoryOther            ComplaintCategory = "other"
)

// ValidComplaintCategory reports whether c is a known category.
func ValidComplaintCategory(c ComplaintCategory) bool {
	switch c {
	case CategoryIllegalDumping, CategoryOverflowingBins, CategoryMissedCollection,
		CategoryPoorService, CategoryContamination, CategoryOther:
		return true
	}
	return false
}

// ComplaintResponse is a single admin reply on a complaint thread.
type ComplaintResponse struct {
	ID          string    `json:"id"`
	Message     string    `json:"message"`
	RespondedBy string    `json:"respondedBy"`
	RespondedAt time.Time `json:"respondedAt"`
}

// Complaint represents a citizen-filed service complaint.
type Complaint struct {
	ID          string              `json:"id"`
	UserID      string              `json:"userId"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    ComplaintCategory   `json:"category"`
	Location    string              `json:"location,omitempty"`
	ImageURL    string              `json:"imageUrl,omitempty"` // Embedded image data, if attached
	Status      ComplaintStatus     `json:"status"`
	Responses   []ComplaintResponse `json:"responses,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// ComplaintWithUser is a complaint joined with denormalized owner fields.
type ComplaintWithUser struct {
	Complaint
	UserName    string `json:"userName"`
	UserPhone   string `json:"userPhone"`
	UserAddress string `json:"userAddress"`
}
