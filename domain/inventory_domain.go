package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateEntry    = "inventory entry created successfully"
	MessageSuccessGetEntries     = "inventory entries retrieved successfully"
	MessageSuccessUpdateEntry    = "inventory entry updated successfully"
	MessageSuccessDeleteEntry    = "inventory entry deleted successfully"
	MessageSuccessUploadEvidence = "evidence photo uploaded successfully"

	MessageFailedCreateEntry    = "failed to create inventory entry"
	MessageFailedGetEntries     = "failed to retrieve inventory entries"
	MessageFailedUpdateEntry    = "failed to update inventory entry"
	MessageFailedDeleteEntry    = "failed to delete inventory entry"
	MessageFailedUploadEvidence = "failed to upload evidence photo"

	ErrEntryNotFound           = errors.New("inventory entry not found")
	ErrInvalidQuantity         = errors.New("quantity_available must be between 0 and quantity_total")
	ErrMissingScheduleWindow   = errors.New("scheduled availability requires available_from and available_until")
	ErrInvalidScheduleWindow   = errors.New("available_from must not be after available_until")
	ErrMissingUntil            = errors.New("limited time availability requires available_until")
	ErrInvalidResponseHours    = errors.New("response_hours must be between 1 and 72")
	ErrInvalidStatusOverride   = errors.New("status can only be set to Reserved, Damaged, Expired or Auto")
	ErrInvalidDateFormat       = errors.New("invalid date format")
	ErrUnauthorizedEntryAccess = errors.New("unauthorized access to inventory entry")
	ErrEntryConflict           = errors.New("inventory entry was modified or deleted concurrently")
)

type (
	CreateInventoryEntryRequest struct {
		ItemTypeID        string `json:"item_type_id" validate:"required,uuid"`
		LocationCode      string `json:"location_code" validate:"required"`
		QuantityTotal     int    `json:"quantity_total" validate:"min=0"`
		QuantityAvailable *int   `json:"quantity_available" validate:"omitempty,min=0"`
		Condition         string `json:"condition" validate:"required,oneof=New Good Fair Poor"`
		Status            string `json:"status" validate:"omitempty,oneof=Reserved Damaged Expired"`

		AvailabilityMode string `json:"availability_mode" validate:"required,oneof=Immediate Scheduled OnRequest LimitedTime"`
		AvailableFrom    string `json:"available_from" validate:"omitempty"`
		AvailableUntil   string `json:"available_until" validate:"omitempty"`
		ResponseHours    *int   `json:"response_hours" validate:"omitempty"`

		BatchNumber     string `json:"batch_number" validate:"omitempty"`
		ExpiryDate      string `json:"expiry_date" validate:"omitempty"`
		StorageLocation string `json:"storage_location" validate:"omitempty"`
		Notes           string `json:"notes" validate:"omitempty"`
		Visibility      string `json:"visibility" validate:"omitempty,oneof=Public Coordinators Private"`
	}

	// Pointer fields distinguish "leave unchanged" from explicit zero values.
	// Status accepts the override values or "Auto" to return to derived status.
	UpdateInventoryEntryRequest struct {
		QuantityTotal     *int    `json:"quantity_total" validate:"omitempty,min=0"`
		QuantityAvailable *int    `json:"quantity_available" validate:"omitempty,min=0"`
		Condition         *string `json:"condition" validate:"omitempty,oneof=New Good Fair Poor"`
		Status            *string `json:"status" validate:"omitempty,oneof=Reserved Damaged Expired Auto"`

		AvailabilityMode *string `json:"availability_mode" validate:"omitempty,oneof=Immediate Scheduled OnRequest LimitedTime"`
		AvailableFrom    *string `json:"available_from" validate:"omitempty"`
		AvailableUntil   *string `json:"available_until" validate:"omitempty"`
		ResponseHours    *int    `json:"response_hours" validate:"omitempty"`

		BatchNumber     *string `json:"batch_number" validate:"omitempty"`
		ExpiryDate      *string `json:"expiry_date" validate:"omitempty"`
		StorageLocation *string `json:"storage_location" validate:"omitempty"`
		Notes           *string `json:"notes" validate:"omitempty"`
		Visibility      *string `json:"visibility" validate:"omitempty,oneof=Public Coordinators Private"`
		Verified        *bool   `json:"verified" validate:"omitempty"`
	}

	InventoryFilter struct {
		ProviderID   string `json:"provider_id" validate:"omitempty,uuid"`
		LocationCode string `json:"location_code" validate:"omitempty"`
		Category     string `json:"category" validate:"omitempty,oneof=Food Shelter Medical WaterSanitation Transport Communication Other"`
		Status       string `json:"status" validate:"omitempty,oneof=Available LowStock OutOfStock Reserved Damaged Expired"`
		LowStockOnly bool   `json:"low_stock_only"`
		Page         int    `json:"page"`
		Limit        int    `json:"limit"`
	}

	UploadEvidenceRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	InventoryEntryResponse struct {
		ID         string `json:"id"`
		ProviderID string `json:"provider_id"`

		ItemTypeID   string `json:"item_type_id"`
		ItemTypeName string `json:"item_type_name"`
		Category     string `json:"category"`
		UnitMeasure  string `json:"unit_measure"`

		DistrictName string `json:"district_name"`
		TehsilName   string `json:"tehsil_name"`
		VillageName  string `json:"village_name,omitempty"`

		QuantityTotal     int    `json:"quantity_total"`
		QuantityAvailable int    `json:"quantity_available"`
		Condition         string `json:"condition"`
		Status            string `json:"status"`

		AvailabilityMode string     `json:"availability_mode"`
		AvailableFrom    *time.Time `json:"available_from,omitempty"`
		AvailableUntil   *time.Time `json:"available_until,omitempty"`
		ResponseHours    *int       `json:"response_hours,omitempty"`
		OfferableNow     bool       `json:"offerable_now"`

		BatchNumber     string     `json:"batch_number,omitempty"`
		ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
		StorageLocation string     `json:"storage_location,omitempty"`
		Notes           string     `json:"notes,omitempty"`
		EvidenceURLs    []string   `json:"evidence_urls,omitempty"`
		Visibility      string     `json:"visibility"`
		Verified        bool       `json:"verified"`

		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
)
