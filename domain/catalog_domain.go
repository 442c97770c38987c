package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateItemType = "item type created successfully"
	MessageSuccessGetItemTypes   = "item types retrieved successfully"
	MessageSuccessCreateLocation = "location created successfully"
	MessageSuccessGetLocations   = "locations retrieved successfully"

	MessageFailedCreateItemType = "failed to create item type"
	MessageFailedGetItemTypes   = "failed to retrieve item types"
	MessageFailedCreateLocation = "failed to create location"
	MessageFailedGetLocations   = "failed to retrieve locations"

	ErrItemTypeNotFound      = errors.New("item type not found")
	ErrLocationNotFound      = errors.New("location not found")
	ErrLocationCodeTaken     = errors.New("location code already in use")
	ErrParentLocationMissing = errors.New("parent location not found")
)

type (
	CreateItemTypeRequest struct {
		Name          string `json:"name" validate:"required"`
		Category      string `json:"category" validate:"required,oneof=Food Shelter Medical WaterSanitation Transport Communication Other"`
		Subcategory   string `json:"subcategory" validate:"omitempty"`
		UnitMeasure   string `json:"unit_measure" validate:"required"`
		Perishable    bool   `json:"perishable"`
		ShelfLifeDays *int   `json:"shelf_life_days" validate:"omitempty,min=1"`
	}

	ItemTypeResponse struct {
		ID            string    `json:"id"`
		Name          string    `json:"name"`
		Category      string    `json:"category"`
		Subcategory   string    `json:"subcategory,omitempty"`
		UnitMeasure   string    `json:"unit_measure"`
		Perishable    bool      `json:"perishable"`
		ShelfLifeDays *int      `json:"shelf_life_days,omitempty"`
		CreatedAt     time.Time `json:"created_at"`
	}

	CreateLocationRequest struct {
		Tier       string `json:"tier" validate:"required,oneof=District Tehsil Village"`
		Name       string `json:"name" validate:"required"`
		Code       string `json:"code" validate:"required"`
		ParentCode string `json:"parent_code" validate:"omitempty"`
	}

	// Location is a resolved location chain: district always set, tehsil set
	// below district level, village only for village codes.
	Location struct {
		DistrictID   string `json:"district_id"`
		DistrictName string `json:"district_name"`
		TehsilID     string `json:"tehsil_id,omitempty"`
		TehsilName   string `json:"tehsil_name,omitempty"`
		VillageID    string `json:"village_id,omitempty"`
		VillageName  string `json:"village_name,omitempty"`
	}

	LocationResponse struct {
		ID        string    `json:"id"`
		Tier      string    `json:"tier"`
		Name      string    `json:"name"`
		Code      string    `json:"code"`
		ParentID  string    `json:"parent_id,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
