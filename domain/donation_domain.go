package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateOffer  = "donation offer created successfully"
	MessageSuccessGetOffers    = "donation offers retrieved successfully"
	MessageSuccessAcceptOffer  = "donation offer accepted successfully"
	MessageSuccessDeclineOffer = "donation offer declined successfully"
	MessageSuccessDeliverOffer = "donation marked as delivered successfully"

	MessageFailedCreateOffer  = "failed to create donation offer"
	MessageFailedGetOffers    = "failed to retrieve donation offers"
	MessageFailedAcceptOffer  = "failed to accept donation offer"
	MessageFailedDeclineOffer = "failed to decline donation offer"
	MessageFailedDeliverOffer = "failed to mark donation as delivered"

	ErrOfferNotFound          = errors.New("donation offer not found")
	ErrInvalidOfferTransition = errors.New("donation offer does not allow this transition")
)

type (
	CreateDonationOfferPayload struct {
		DonorName       string `json:"donor_name" validate:"required"`
		DonorContact    string `json:"donor_contact" validate:"required"`
		QuantityOffered int    `json:"quantity_offered" validate:"required,min=1"`
		Condition       string `json:"condition" validate:"required,oneof=New Good Fair Poor"`
		AvailableDate   string `json:"available_date" validate:"omitempty"`
		DeliveryMethod  string `json:"delivery_method" validate:"omitempty"`
		Notes           string `json:"notes" validate:"omitempty"`
	}

	DonationOfferResponse struct {
		ID      string `json:"id"`
		EntryID string `json:"entry_id"`

		ItemTypeName string `json:"item_type_name,omitempty"`
		UnitMeasure  string `json:"unit_measure,omitempty"`

		DonorName       string     `json:"donor_name"`
		DonorContact    string     `json:"donor_contact"`
		QuantityOffered int        `json:"quantity_offered"`
		Condition       string     `json:"condition"`
		AvailableDate   *time.Time `json:"available_date,omitempty"`
		DeliveryMethod  string     `json:"delivery_method,omitempty"`
		Notes           string     `json:"notes,omitempty"`
		Status          string     `json:"status"`
		Declined        bool       `json:"declined"`

		ReviewerID  string     `json:"reviewer_id,omitempty"`
		ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
		DeliveredAt *time.Time `json:"delivered_at,omitempty"`

		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
)
