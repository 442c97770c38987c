package entities

import (
	"github.com/google/uuid"
)

type District struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `json:"name"`
	Code string    `gorm:"uniqueIndex" json:"code"`

	Tehsils []*Tehsil `gorm:"foreignKey:DistrictID"`
	Timestamp
}

type Tehsil struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DistrictID uuid.UUID `json:"district_id"`
	Name       string    `json:"name"`
	Code       string    `gorm:"uniqueIndex" json:"code"`

	District *District  `gorm:"foreignKey:DistrictID"`
	Villages []*Village `gorm:"foreignKey:TehsilID"`
	Timestamp
}

type Village struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	TehsilID uuid.UUID `json:"tehsil_id"`
	Name     string    `json:"name"`
	Code     string    `gorm:"uniqueIndex" json:"code"`

	Tehsil *Tehsil `gorm:"foreignKey:TehsilID"`
	Timestamp
}
