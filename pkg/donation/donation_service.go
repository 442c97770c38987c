package donation

import (
	"ReliefLink/domain"
	"ReliefLink/entities"
	"ReliefLink/internal/utils/mailing"
	"ReliefLink/pkg/inventory"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Legal supply-side transitions. Delivered and Cancelled are terminal.
var allowedTransitions = map[string][]string{
	entities.OfferStatusOffered:  {entities.OfferStatusAccepted, entities.OfferStatusCancelled},
	entities.OfferStatusAccepted: {entities.OfferStatusDelivered},
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
	DonationService interface {
		CreateOffer(ctx context.Context, entryID string, req domain.CreateDonationOfferPayload, createdByID string) (*domain.DonationOfferResponse, error)
		AcceptOffer(ctx context.Context, offerID string, reviewerID string) (*domain.DonationOfferResponse, error)
		DeclineOffer(ctx context.Context, offerID string, reviewerID string) (*domain.DonationOfferResponse, error)
		MarkDelivered(ctx context.Context, offerID string, reviewerID string) (*domain.DonationOfferResponse, error)
		GetOffersByEntry(ctx context.Context, entryID string, page, limit int) ([]*domain.DonationOfferResponse, int64, error)
	}

	donationService struct {
		donationRepository  DonationRepository
		inventoryRepository inventory.InventoryRepository
		mailer              mailing.Mailer
	}
)

func NewDonationService(
	donationRepository DonationRepository,
	inventoryRepository inventory.InventoryRepository,
	mailer mailing.Mailer,
) DonationService {
	return &donationService{
		donationRepository:  donationRepository,
		inventoryRepository: inventoryRepository,
		mailer:              mailer,
	}
}

func (s *donationService) CreateOffer(ctx context.Context, entryID string, req domain.CreateDonationOfferPayload, createdByID string) (*domain.DonationOfferResponse, error) {
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
	createdByUUID, err := uuid.Parse(createdByID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	offer := &entities.DonationOffer{
		ID:              uuid.New(),
		EntryID:         entryUUID,
		CreatedByID:     createdByUUID,
		DonorName:       req.DonorName,
		DonorContact:    req.DonorContact,
		QuantityOffered: req.QuantityOffered,
		Condition:       req.Condition,
		DeliveryMethod:  req.DeliveryMethod,
		Notes:           req.Notes,
		Status:          entities.OfferStatusOffered,
	}

	if req.AvailableDate != "" {
		available, err := time.Parse("2006-01-02", req.AvailableDate)
		if err != nil {
			return nil, domain.ErrInvalidDateFormat
		}
		offer.AvailableDate = &available
	}

	if err := s.donationRepository.CreateOffer(ctx, offer); err != nil {
		return nil, err
	}

	created, err := s.donationRepository.GetOfferByID(ctx, offer.ID.String())
	if err != nil {
		return nil, err
	}
	return toOfferResponse(created), nil
}

func (s *donationService) AcceptOffer(ctx context.Context, offerID string, reviewerID string) (*domain.DonationOfferResponse, error) {
	offer, err := s.getOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	if offer.CreatedByID.String() == reviewerID {
		return nil, domain.ErrSelfReview
	}
	if !canTransition(offer.Status, entities.OfferStatusAccepted) {
		return nil, domain.ErrInvalidOfferTransition
	}

	reviewerUUID, err := uuid.Parse(reviewerID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":      entities.OfferStatusAccepted,
		"reviewer_id": reviewerUUID,
		"reviewed_at": now,
	}
	if err := s.donationRepository.TransitionOffer(ctx, offerID, entities.OfferStatusOffered, updates); err != nil {
		return nil, err
	}

	s.notifyDonor(offer, "accepted")

	accepted, err := s.getOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	return toOfferResponse(accepted), nil
}

func (s *donationService) DeclineOffer(ctx context.Context, offerID string, reviewerID string) (*domain.DonationOfferResponse, error) {
	offer, err := s.getOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	if offer.CreatedByID.String() == reviewerID {
		return nil, domain.ErrSelfReview
	}

	// Re-declining a declined offer is a no-op so at-least-once callers
	// stay safe.
	if offer.Status == entities.OfferStatusCancelled {
		return toOfferResponse(offer), nil
	}
	if !canTransition(offer.Status, entities.OfferStatusCancelled) {
		return nil, domain.ErrInvalidOfferTransition
	}

	reviewerUUID, err := uuid.Parse(reviewerID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":      entities.OfferStatusCancelled,
		"reviewer_id": reviewerUUID,
		"reviewed_at": now,
	}
	if err := s.donationRepository.TransitionOffer(ctx, offerID, entities.OfferStatusOffered, updates); err != nil {
		return nil, err
	}

	s.notifyDonor(offer, "declined")

	declined, err := s.getOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	return toOfferResponse(declined), nil
}

func (s *donationService) MarkDelivered(ctx context.Context, offerID string, reviewerID string) (*domain.DonationOfferResponse, error) {
	offer, err := s.getOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	if offer.CreatedByID.String() == reviewerID {
		return nil, domain.ErrSelfReview
	}
	if !canTransition(offer.Status, entities.OfferStatusDelivered) {
		return nil, domain.ErrInvalidOfferTransition
	}

	reviewerUUID, err := uuid.Parse(reviewerID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if _, err := s.donationRepository.MarkDelivered(ctx, offerID, reviewerUUID); err != nil {
		return nil, err
	}

	delivered, err := s.getOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	return toOfferResponse(delivered), nil
}

func (s *donationService) GetOffersByEntry(ctx context.Context, entryID string, page, limit int) ([]*domain.DonationOfferResponse, int64, error) {
	offers, count, err := s.donationRepository.GetOffersByEntry(ctx, entryID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.DonationOfferResponse, 0, len(offers))
	for _, offer := range offers {
		result = append(result, toOfferResponse(offer))
	}
	return result, count, nil
}

func (s *donationService) getOffer(ctx context.Context, offerID string) (*entities.DonationOffer, error) {
	offer, err := s.donationRepository.GetOfferByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOfferNotFound
		}
		return nil, err
	}
	return offer, nil
}

func (s *donationService) notifyDonor(offer *entities.DonationOffer, decision string) {
	// Donor contact is free text; only mail it when it looks like an address.
	if !strings.Contains(offer.DonorContact, "@") {
		return
	}

	itemName := "the offered item"
	if offer.Entry != nil && offer.Entry.ItemType != nil {
		itemName = offer.Entry.ItemType.Name
	}

	subject := fmt.Sprintf("Donation offer %s", decision)
	body := fmt.Sprintf(
		"<p>Dear %s, your donation offer of %d x %s has been %s.</p>",
		offer.DonorName, offer.QuantityOffered, itemName, decision,
	)
	if err := s.mailer.Send(offer.DonorContact, subject, body); err != nil {
		log.Printf("donation notification failed: %v", err)
	}
}

func toOfferResponse(offer *entities.DonationOffer) *domain.DonationOfferResponse {
	resp := &domain.DonationOfferResponse{
		ID:              offer.ID.String(),
		EntryID:         offer.EntryID.String(),
		DonorName:       offer.DonorName,
		DonorContact:    offer.DonorContact,
		QuantityOffered: offer.QuantityOffered,
		Condition:       offer.Condition,
		AvailableDate:   offer.AvailableDate,
		DeliveryMethod:  offer.DeliveryMethod,
		Notes:           offer.Notes,
		Status:          offer.Status,
		Declined:        offer.Status == entities.OfferStatusCancelled && offer.ReviewerID != nil,
		ReviewedAt:      offer.ReviewedAt,
		DeliveredAt:     offer.DeliveredAt,
		CreatedAt:       offer.CreatedAt,
		UpdatedAt:       offer.UpdatedAt,
	}
	if offer.ReviewerID != nil {
		resp.ReviewerID = offer.ReviewerID.String()
	}
	if offer.Entry != nil && offer.Entry.ItemType != nil {
		resp.ItemTypeName = offer.Entry.ItemType.Name
		resp.UnitMeasure = offer.Entry.ItemType.UnitMeasure
	}
	return resp
}
