package entities

import (
	"github.com/google/uuid"
	"time"
)

const (
	EntryStatusAvailable  = "Available"
	EntryStatusLowStock   = "LowStock"
	EntryStatusOutOfStock = "OutOfStock"
	EntryStatusReserved   = "Reserved"
	EntryStatusDamaged    = "Damaged"
	EntryStatusExpired    = "Expired"

	AvailabilityImmediate   = "Immediate"
	AvailabilityScheduled   = "Scheduled"
	AvailabilityOnRequest   = "OnRequest"
	AvailabilityLimitedTime = "LimitedTime"

	ConditionNew  = "New"
	ConditionGood = "Good"
	ConditionFair = "Fair"
	ConditionPoor = "Poor"

	VisibilityPublic       = "Public"
	VisibilityCoordinators = "Coordinators"
	VisibilityPrivate      = "Private"
)

type InventoryEntry struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ProviderID uuid.UUID  `json:"provider_id"`
	ItemTypeID uuid.UUID  `json:"item_type_id"`
	DistrictID uuid.UUID  `json:"district_id"`
	TehsilID   uuid.UUID  `json:"tehsil_id"`
	VillageID  *uuid.UUID `json:"village_id,omitempty"` // nil means the entire tehsil

	QuantityTotal     int    `json:"quantity_total"`
	QuantityAvailable int    `json:"quantity_available"`
	Condition         string `json:"condition"` // New, Good, Fair, Poor
	Status            string `json:"status"`    // Available, LowStock, OutOfStock, Reserved, Damaged, Expired

	AvailabilityMode string     `json:"availability_mode"` // Immediate, Scheduled, OnRequest, LimitedTime
	AvailableFrom    *time.Time `json:"available_from,omitempty"`
	AvailableUntil   *time.Time `json:"available_until,omitempty"`
	ResponseHours    *int       `json:"response_hours,omitempty"`

	BatchNumber     string     `json:"batch_number,omitempty"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
	StorageLocation string     `json:"storage_location,omitempty"`
	Notes           string     `gorm:"type:text" json:"notes,omitempty"`
	EvidenceURLs    []string   `gorm:"serializer:json" json:"evidence_urls,omitempty"`
	Visibility      string     `json:"visibility"` // Public, Coordinators, Private
	Verified        bool       `json:"verified"`

	Provider         *User              `gorm:"foreignKey:ProviderID"`
	ItemType         *ItemType          `gorm:"foreignKey:ItemTypeID"`
	District         *District          `gorm:"foreignKey:DistrictID"`
	Tehsil           *Tehsil            `gorm:"foreignKey:TehsilID"`
	Village          *Village           `gorm:"foreignKey:VillageID"`
	ResupplyRequests []*ResupplyRequest `gorm:"foreignKey:EntryID"`
	DonationOffers   []*DonationOffer   `gorm:"foreignKey:EntryID"`
	Timestamp
}
