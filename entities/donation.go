package entities

import (
	"github.com/google/uuid"
	"time"
)

const (
	OfferStatusOffered   = "Offered"
	OfferStatusAccepted  = "Accepted"
	OfferStatusDelivered = "Delivered"
	OfferStatusCancelled = "Cancelled"
)

// A declined offer is stored as Cancelled with ReviewerID set; a donor
// cancellation leaves ReviewerID empty.
type DonationOffer struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	EntryID     uuid.UUID `json:"entry_id"`
	CreatedByID uuid.UUID `json:"created_by_id"`

	DonorName       string     `json:"donor_name"`
	DonorContact    string     `json:"donor_contact"`
	QuantityOffered int        `json:"quantity_offered"`
	Condition       string     `json:"condition"` // New, Good, Fair, Poor
	AvailableDate   *time.Time `json:"available_date,omitempty"`
	DeliveryMethod  string     `json:"delivery_method,omitempty"`
	Notes           string     `gorm:"type:text" json:"notes,omitempty"`
	Status          string     `json:"status"` // Offered, Accepted, Delivered, Cancelled

	ReviewerID  *uuid.UUID `json:"reviewer_id,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`

	Entry     *InventoryEntry `gorm:"foreignKey:EntryID"`
	CreatedBy *User           `gorm:"foreignKey:CreatedByID"`
	Reviewer  *User           `gorm:"foreignKey:ReviewerID"`
	Timestamp
}
