package entities

import (
	"github.com/google/uuid"
	"time"
)

const (
	RequestStatusPending   = "Pending"
	RequestStatusApproved  = "Approved"
	RequestStatusFulfilled = "Fulfilled"
	RequestStatusRejected  = "Rejected"
	RequestStatusCancelled = "Cancelled"

	UrgencyLow      = "Low"
	UrgencyNormal   = "Normal"
	UrgencyHigh     = "High"
	UrgencyCritical = "Critical"
)

type ResupplyRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	EntryID     uuid.UUID `json:"entry_id"`
	RequesterID uuid.UUID `json:"requester_id"`

	QuantityRequested int        `json:"quantity_requested"`
	Urgency           string     `json:"urgency"` // Low, Normal, High, Critical
	Reason            string     `gorm:"type:text" json:"reason,omitempty"`
	PreferredDate     *time.Time `json:"preferred_date,omitempty"`
	Status            string     `json:"status"` // Pending, Approved, Fulfilled, Rejected, Cancelled

	ReviewerID  *uuid.UUID `json:"reviewer_id,omitempty"`
	ReviewNotes string     `gorm:"type:text" json:"review_notes,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	FulfilledAt *time.Time `json:"fulfilled_at,omitempty"`

	Entry     *InventoryEntry `gorm:"foreignKey:EntryID"`
	Requester *User           `gorm:"foreignKey:RequesterID"`
	Reviewer  *User           `gorm:"foreignKey:ReviewerID"`
	Timestamp
}
