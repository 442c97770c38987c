package resupply

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
	ResupplyRepository interface {
		CreateRequest(ctx context.Context, request *entities.ResupplyRequest) error
		GetRequestByID(ctx context.Context, id string) (*entities.ResupplyRequest, error)
		GetRequestsByEntry(ctx context.Context, entryID string, page, limit int) ([]*entities.ResupplyRequest, int64, error)
		// TransitionRequest applies updates only if the request is still in
		// fromStatus, so two concurrent reviewers cannot both win.
		TransitionRequest(ctx context.Context, id string, fromStatus string, updates map[string]interface{}) error
		// FulfillRequest moves an approved request to Fulfilled and applies
		// the pledged quantity to the entry in one transaction under the
		// entry row lock.
		FulfillRequest(ctx context.Context, id string, reviewerID uuid.UUID) (*entities.ResupplyRequest, error)
	}

	resupplyRepository struct {
		db *gorm.DB
	}
)

func NewResupplyRepository(db *gorm.DB) ResupplyRepository {
	return &resupplyRepository{db: db}
}

func (r *resupplyRepository) CreateRequest(ctx context.Context, request *entities.ResupplyRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *resupplyRepository) GetRequestByID(ctx context.Context, id string) (*entities.ResupplyRequest, error) {
	var request entities.ResupplyRequest
	if err := r.db.WithContext(ctx).
		Preload("Entry").
		Preload("Entry.ItemType").
		Preload("Requester").
		Where("id = ?", id).
		First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *resupplyRepository) GetRequestsByEntry(ctx context.Context, entryID string, page, limit int) ([]*entities.ResupplyRequest, int64, error) {
	var requests []*entities.ResupplyRequest
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.ResupplyRequest{}).
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
		Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, count, nil
}

func (r *resupplyRepository) TransitionRequest(ctx context.Context, id string, fromStatus string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&entities.ResupplyRequest{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrInvalidRequestTransition
	}
	return nil
}

func (r *resupplyRepository) FulfillRequest(ctx context.Context, id string, reviewerID uuid.UUID) (*entities.ResupplyRequest, error) {
	var request entities.ResupplyRequest
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&request).Error; err != nil {
			return err
		}
		if request.Status != entities.RequestStatusApproved {
			return domain.ErrInvalidRequestTransition
		}

		var entry entities.InventoryEntry
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", request.EntryID).
			First(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrEntryConflict
			}
			return err
		}

		// The pledged restock arrives as new stock: both capacity and
		// availability grow by the requested quantity.
		entry.QuantityTotal += request.QuantityRequested
		entry.QuantityAvailable += request.QuantityRequested
		entry.Status = inventory.DeriveStatus(&entry)
		if err := tx.Save(&entry).Error; err != nil {
			return err
		}

		now := time.Now()
		request.Status = entities.RequestStatusFulfilled
		request.ReviewerID = &reviewerID
		request.FulfilledAt = &now
		return tx.Save(&request).Error
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}
