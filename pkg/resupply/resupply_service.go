package resupply

import (
	"ReliefLink/domain"
	"ReliefLink/entities"
	"ReliefLink/internal/utils/mailing"
	"ReliefLink/pkg/inventory"
	"ReliefLink/pkg/user"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Legal demand-side transitions. Fulfilled, Rejected and Cancelled are
// terminal; nothing moves a request out of them.
var allowedTransitions = map[string][]string{
	entities.RequestStatusPending:  {entities.RequestStatusApproved, entities.RequestStatusRejected, entities.RequestStatusCancelled},
	entities.RequestStatusApproved: {entities.RequestStatusFulfilled, entities.RequestStatusCancelled},
}

func canTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type (
	ResupplyService interface {
		CreateRequest(ctx context.Context, entryID string, req domain.CreateResupplyRequestPayload, requesterID string) (*domain.ResupplyRequestResponse, error)
		ReviewRequest(ctx context.Context, requestID string, req domain.ReviewResupplyRequestPayload, reviewerID string) (*domain.ResupplyRequestResponse, error)
		FulfillRequest(ctx context.Context, requestID string, reviewerID string) (*domain.ResupplyRequestResponse, error)
		CancelRequest(ctx context.Context, requestID string, requesterID string) (*domain.ResupplyRequestResponse, error)
		GetRequestsByEntry(ctx context.Context, entryID string, page, limit int) ([]*domain.ResupplyRequestResponse, int64, error)
	}

	resupplyService struct {
		resupplyRepository  ResupplyRepository
		inventoryRepository inventory.InventoryRepository
		userRepository      user.UserRepository
		mailer              mailing.Mailer
	}
)

func NewResupplyService(
	resupplyRepository ResupplyRepository,
	inventoryRepository inventory.InventoryRepository,
	userRepository user.UserRepository,
	mailer mailing.Mailer,
) ResupplyService {
	return &resupplyService{
		resupplyRepository:  resupplyRepository,
		inventoryRepository: inventoryRepository,
		userRepository:      userRepository,
		mailer:              mailer,
	}
}

func (s *resupplyService) CreateRequest(ctx context.Context, entryID string, req domain.CreateResupplyRequestPayload, requesterID string) (*domain.ResupplyRequestResponse, error) {
	if _, err := s.inventoryRepository.GetEntryByID(ctx, entryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}

	entryUUID, err := uuid.Parse(entryID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	requesterUUID, err := uuid.Parse(requesterID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	request := &entities.ResupplyRequest{
		ID:                uuid.New(),
		EntryID:           entryUUID,
		RequesterID:       requesterUUID,
		QuantityRequested: req.QuantityRequested,
		Urgency:           req.Urgency,
		Reason:            req.Reason,
		Status:            entities.RequestStatusPending,
	}

	if req.PreferredDate != "" {
		preferred, err := time.Parse("2006-01-02", req.PreferredDate)
		if err != nil {
			return nil, domain.ErrInvalidDateFormat
		}
		request.PreferredDate = &preferred
	}

	if err := s.resupplyRepository.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	created, err := s.resupplyRepository.GetRequestByID(ctx, request.ID.String())
	if err != nil {
		return nil, err
	}
	return toRequestResponse(created), nil
}

func (s *resupplyService) ReviewRequest(ctx context.Context, requestID string, req domain.ReviewResupplyRequestPayload, reviewerID string) (*domain.ResupplyRequestResponse, error) {
	request, err := s.resupplyRepository.GetRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}

	if request.RequesterID.String() == reviewerID {
		return nil, domain.ErrSelfReview
	}

	var target string
	switch req.Decision {
	case "Approve":
		target = entities.RequestStatusApproved
	case "Reject":
		target = entities.RequestStatusRejected
	default:
		return nil, domain.ErrInvalidReviewDecision
	}
	if !canTransition(request.Status, target) {
		return nil, domain.ErrInvalidRequestTransition
	}

	reviewerUUID, err := uuid.Parse(reviewerID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":       target,
		"reviewer_id":  reviewerUUID,
		"review_notes": req.Notes,
		"reviewed_at":  now,
	}
	if err := s.resupplyRepository.TransitionRequest(ctx, requestID, entities.RequestStatusPending, updates); err != nil {
		return nil, err
	}

	s.notifyRequester(ctx, request, target)

	reviewed, err := s.resupplyRepository.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return toRequestResponse(reviewed), nil
}

func (s *resupplyService) FulfillRequest(ctx context.Context, requestID string, reviewerID string) (*domain.ResupplyRequestResponse, error) {
	request, err := s.resupplyRepository.GetRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}

	if request.RequesterID.String() == reviewerID {
		return nil, domain.ErrSelfReview
	}
	if !canTransition(request.Status, entities.RequestStatusFulfilled) {
		return nil, domain.ErrInvalidRequestTransition
	}

	reviewerUUID, err := uuid.Parse(reviewerID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if _, err := s.resupplyRepository.FulfillRequest(ctx, requestID, reviewerUUID); err != nil {
		return nil, err
	}

	fulfilled, err := s.resupplyRepository.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return toRequestResponse(fulfilled), nil
}

func (s *resupplyService) CancelRequest(ctx context.Context, requestID string, requesterID string) (*domain.ResupplyRequestResponse, error) {
	request, err := s.resupplyRepository.GetRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}

	if request.RequesterID.String() != requesterID {
		return nil, domain.ErrUnauthorizedRequestAccess
	}

	// Re-cancelling is a no-op so at-least-once callers stay safe.
	if request.Status == entities.RequestStatusCancelled {
		return toRequestResponse(request), nil
	}
	if !canTransition(request.Status, entities.RequestStatusCancelled) {
		return nil, domain.ErrInvalidRequestTransition
	}

	updates := map[string]interface{}{
		"status": entities.RequestStatusCancelled,
	}
	if err := s.resupplyRepository.TransitionRequest(ctx, requestID, request.Status, updates); err != nil {
		return nil, err
	}

	cancelled, err := s.resupplyRepository.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return toRequestResponse(cancelled), nil
}

func (s *resupplyService) GetRequestsByEntry(ctx context.Context, entryID string, page, limit int) ([]*domain.ResupplyRequestResponse, int64, error) {
	requests, count, err := s.resupplyRepository.GetRequestsByEntry(ctx, entryID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.ResupplyRequestResponse, 0, len(requests))
	for _, request := range requests {
		result = append(result, toRequestResponse(request))
	}
	return result, count, nil
}

func (s *resupplyService) notifyRequester(ctx context.Context, request *entities.ResupplyRequest, status string) {
	requester, err := s.userRepository.GetUserByID(ctx, request.RequesterID.String())
	if err != nil {
		log.Printf("resupply notification skipped: %v", err)
		return
	}

	itemName := "the requested item"
	if request.Entry != nil && request.Entry.ItemType != nil {
		itemName = request.Entry.ItemType.Name
	}

	subject := fmt.Sprintf("Resupply request %s", status)
	body := fmt.Sprintf(
		"<p>Your resupply request for %d x %s has been %s.</p>",
		request.QuantityRequested, itemName, status,
	)
	if err := s.mailer.Send(requester.Email, subject, body); err != nil {
		log.Printf("resupply notification failed: %v", err)
	}
}

func toRequestResponse(request *entities.ResupplyRequest) *domain.ResupplyRequestResponse {
	resp := &domain.ResupplyRequestResponse{
		ID:                request.ID.String(),
		EntryID:           request.EntryID.String(),
		RequesterID:       request.RequesterID.String(),
		QuantityRequested: request.QuantityRequested,
		Urgency:           request.Urgency,
		Reason:            request.Reason,
		PreferredDate:     request.PreferredDate,
		Status:            request.Status,
		ReviewNotes:       request.ReviewNotes,
		ReviewedAt:        request.ReviewedAt,
		FulfilledAt:       request.FulfilledAt,
		CreatedAt:         request.CreatedAt,
		UpdatedAt:         request.UpdatedAt,
	}
	if request.ReviewerID != nil {
		resp.ReviewerID = request.ReviewerID.String()
	}
	if request.Entry != nil && request.Entry.ItemType != nil {
		resp.ItemTypeName = request.Entry.ItemType.Name
		resp.UnitMeasure = request.Entry.ItemType.UnitMeasure
	}
	return resp
}
