package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateRequest  = "resupply request created successfully"
	MessageSuccessGetRequests    = "resupply requests retrieved successfully"
	MessageSuccessReviewRequest  = "resupply request reviewed successfully"
	MessageSuccessFulfillRequest = "resupply request fulfilled successfully"
	MessageSuccessCancelRequest  = "resupply request cancelled successfully"

	MessageFailedCreateRequest  = "failed to create resupply request"
	MessageFailedGetRequests    = "failed to retrieve resupply requests"
	MessageFailedReviewRequest  = "failed to review resupply request"
	MessageFailedFulfillRequest = "failed to fulfill resupply request"
	MessageFailedCancelRequest  = "failed to cancel resupply request"

	ErrRequestNotFound           = errors.New("resupply request not found")
	ErrInvalidRequestTransition  = errors.New("resupply request does not allow this transition")
	ErrInvalidReviewDecision     = errors.New("review decision must be Approve or Reject")
	ErrUnauthorizedRequestAccess = errors.New("unauthorized access to resupply request")
)

type (
	CreateResupplyRequestPayload struct {
		QuantityRequested int    `json:"quantity_requested" validate:"required,min=1"`
		Urgency           string `json:"urgency" validate:"required,oneof=Low Normal High Critical"`
		Reason            string `json:"reason" validate:"omitempty"`
		PreferredDate     string `json:"preferred_date" validate:"omitempty"`
	}

	ReviewResupplyRequestPayload struct {
		Decision string `json:"decision" validate:"required,oneof=Approve Reject"`
		Notes    string `json:"notes" validate:"omitempty"`
	}

	ResupplyRequestResponse struct {
		ID          string `json:"id"`
		EntryID     string `json:"entry_id"`
		RequesterID string `json:"requester_id"`

		ItemTypeName string `json:"item_type_name,omitempty"`
		UnitMeasure  string `json:"unit_measure,omitempty"`

		QuantityRequested int        `json:"quantity_requested"`
		Urgency           string     `json:"urgency"`
		Reason            string     `json:"reason,omitempty"`
		PreferredDate     *time.Time `json:"preferred_date,omitempty"`
		Status            string     `json:"status"`

		ReviewerID  string     `json:"reviewer_id,omitempty"`
		ReviewNotes string     `json:"review_notes,omitempty"`
		ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
		FulfilledAt *time.Time `json:"fulfilled_at,omitempty"`

		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
)
