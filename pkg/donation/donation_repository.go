package donation

import (
	"ReliefLink/domain"
	"ReliefLink/entities"
	"ReliefLink/pkg/inventory"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	DonationRepository interface {
		CreateOffer(ctx context.Context, offer *entities.DonationOffer) error
		GetOfferByID(ctx context.Context, id string) (*entities.DonationOffer, error)
		GetOffersByEntry(ctx context.Context, entryID string, page, limit int) ([]*entities.DonationOffer, int64, error)
		// TransitionOffer applies updates only if the offer is still in
		// fromStatus.
		TransitionOffer(ctx context.Context, id string, fromStatus string, updates map[string]interface{}) error
		// MarkDelivered moves an accepted offer to Delivered and applies the
		// incoming stock to the entry in one transaction under the entry row
		// lock.
		MarkDelivered(ctx context.Context, id string, reviewerID uuid.UUID) (*entities.DonationOffer, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateOffer(ctx context.Context, offer *entities.DonationOffer) error {
	return r.db.WithContext(ctx).Create(offer).Error
}

func (r *donationRepository) GetOfferByID(ctx context.Context, id string) (*entities.DonationOffer, error) {
	var offer entities.DonationOffer
	if err := r.db.WithContext(ctx).
		Preload("Entry").
		Preload("Entry.ItemType").
		Where("id = ?", id).
		First(&offer).Error; err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *donationRepository) GetOffersByEntry(ctx context.Context, entryID string, page, limit int) ([]*entities.DonationOffer, int64, error) {
	var offers []*entities.DonationOffer
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.DonationOffer{}).
		Where("entry_id = ?", entryID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Entry").
		Preload("Entry.ItemType").
		Where("entry_id = ?", entryID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&offers).Error; err != nil {
		return nil, 0, err
	}

	return offers, count, nil
}

func (r *donationRepository) TransitionOffer(ctx context.Context, id string, fromStatus string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&entities.DonationOffer{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrInvalidOfferTransition
	}
	return nil
}

func (r *donationRepository) MarkDelivered(ctx context.Context, id string, reviewerID uuid.UUID) (*entities.DonationOffer, error) {
	var offer entities.DonationOffer
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&offer).Error; err != nil {
			return err
		}
		if offer.Status != entities.OfferStatusAccepted {
			return domain.ErrInvalidOfferTransition
		}

		var entry entities.InventoryEntry
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", offer.EntryID).
			First(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrEntryConflict
			}
			return err
		}

		// A delivered donation is real incoming stock; capacity grows to
		// absorb anything beyond the declared total.
		entry.QuantityAvailable += offer.QuantityOffered
		if entry.QuantityAvailable > entry.QuantityTotal {
			entry.QuantityTotal = entry.QuantityAvailable
		}
		entry.Status = inventory.DeriveStatus(&entry)
		if err := tx.Save(&entry).Error; err != nil {
			return err
		}

		now := time.Now()
		offer.Status = entities.OfferStatusDelivered
		offer.ReviewerID = &reviewerID
		offer.DeliveredAt = &now
		return tx.Save(&offer).Error
	})
	if err != nil {
		return nil, err
	}
	return &offer, nil
}
