package entities

import (
	"github.com/google/uuid"
)

const (
	CategoryFood            = "Food"
	CategoryShelter         = "Shelter"
	CategoryMedical         = "Medical"
	CategoryWaterSanitation = "WaterSanitation"
	CategoryTransport       = "Transport"
	CategoryCommunication   = "Communication"
	CategoryOther           = "Other"
)

type ItemType struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"` // Food, Shelter, Medical, WaterSanitation, Transport, Communication, Other
	Subcategory   string    `json:"subcategory,omitempty"`
	UnitMeasure   string    `json:"unit_measure"`
	Perishable    bool      `json:"perishable"`
	ShelfLifeDays *int      `json:"shelf_life_days,omitempty"`

	Timestamp
}
