package inventory

import (
	"ReliefLink/entities"
	"context"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	EntryFilter struct {
		ProviderID   string
		DistrictID   string
		TehsilID     string
		VillageID    string
		Category     string
		Status       string
		LowStockOnly bool
		Page         int
		Limit        int
	}

	InventoryRepository interface {
		CreateEntry(ctx context.Context, entry *entities.InventoryEntry) error
		GetEntryByID(ctx context.Context, id string) (*entities.InventoryEntry, error)
		// UpdateEntry applies mutate to the entry under a row lock so
		// concurrent writers to the same entry serialize. The write is
		// all-or-nothing: an error from mutate rolls everything back.
		UpdateEntry(ctx context.Context, id string, mutate func(*entities.InventoryEntry) error) (*entities.InventoryEntry, error)
		DeleteEntry(ctx context.Context, id string) error
		GetEntries(ctx context.Context, filter EntryFilter) ([]*entities.InventoryEntry, int64, error)
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) CreateEntry(ctx context.Context, entry *entities.InventoryEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *inventoryRepository) GetEntryByID(ctx context.Context, id string) (*entities.InventoryEntry, error) {
	var entry entities.InventoryEntry
	if err := r.db.WithContext(ctx).
		Preload("ItemType").
		Preload("District").
		Preload("Tehsil").
		Preload("Village").
		Where("id = ?", id).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *inventoryRepository) UpdateEntry(ctx context.Context, id string, mutate func(*entities.InventoryEntry) error) (*entities.InventoryEntry, error) {
	var entry entities.InventoryEntry
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&entry).Error; err != nil {
			return err
		}
		if err := mutate(&entry); err != nil {
			return err
		}
		return tx.Save(&entry).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *inventoryRepository) DeleteEntry(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry entities.InventoryEntry
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&entry).Error; err != nil {
			return err
		}
		// Dependent requests and offers do not outlive their entry.
		if err := tx.Where("entry_id = ?", entry.ID).Delete(&entities.ResupplyRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("entry_id = ?", entry.ID).Delete(&entities.DonationOffer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entry).Error
	})
}

func (r *inventoryRepository) GetEntries(ctx context.Context, filter EntryFilter) ([]*entities.InventoryEntry, int64, error) {
	var entries []*entities.InventoryEntry
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.InventoryEntry{})

	if filter.ProviderID != "" {
		query = query.Where("inventory_entries.provider_id = ?", filter.ProviderID)
	}
	if filter.VillageID != "" {
		query = query.Where("inventory_entries.village_id = ?", filter.VillageID)
	} else if filter.TehsilID != "" {
		query = query.Where("inventory_entries.tehsil_id = ?", filter.TehsilID)
	} else if filter.DistrictID != "" {
		query = query.Where("inventory_entries.district_id = ?", filter.DistrictID)
	}
	if filter.Category != "" {
		query = query.
			Joins("JOIN item_types ON item_types.id = inventory_entries.item_type_id").
			Where("item_types.category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("inventory_entries.status = ?", filter.Status)
	}
	if filter.LowStockOnly {
		query = query.Where("inventory_entries.quantity_available <= GREATEST(?, inventory_entries.quantity_total / 5)", lowStockFloor)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.
		Preload("ItemType").
		Preload("District").
		Preload("Tehsil").
		Preload("Village").
		Order("inventory_entries.created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, count, nil
}
