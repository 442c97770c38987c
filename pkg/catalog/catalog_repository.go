package catalog

import (
	"ReliefLink/entities"
	"context"
	"gorm.io/gorm"
)

type (
	CatalogRepository interface {
		CreateItemType(ctx context.Context, itemType *entities.ItemType) error
		GetItemTypeByID(ctx context.Context, id string) (*entities.ItemType, error)
		GetItemTypes(ctx context.Context, category string) ([]*entities.ItemType, error)

		CreateDistrict(ctx context.Context, district *entities.District) error
		CreateTehsil(ctx context.Context, tehsil *entities.Tehsil) error
		CreateVillage(ctx context.Context, village *entities.Village) error
		GetDistrictByCode(ctx context.Context, code string) (*entities.District, error)
		GetTehsilByCode(ctx context.Context, code string) (*entities.Tehsil, error)
		GetVillageByCode(ctx context.Context, code string) (*entities.Village, error)
		GetDistricts(ctx context.Context) ([]*entities.District, error)
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CreateItemType(ctx context.Context, itemType *entities.ItemType) error {
	return r.db.WithContext(ctx).Create(itemType).Error
}

func (r *catalogRepository) GetItemTypeByID(ctx context.Context, id string) (*entities.ItemType, error) {
	var itemType entities.ItemType
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&itemType).Error; err != nil {
		return nil, err
	}
	return &itemType, nil
}

func (r *catalogRepository) GetItemTypes(ctx context.Context, category string) ([]*entities.ItemType, error) {
	var itemTypes []*entities.ItemType
	query := r.db.WithContext(ctx)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Order("name asc").Find(&itemTypes).Error; err != nil {
		return nil, err
	}
	return itemTypes, nil
}

func (r *catalogRepository) CreateDistrict(ctx context.Context, district *entities.District) error {
	return r.db.WithContext(ctx).Create(district).Error
}

func (r *catalogRepository) CreateTehsil(ctx context.Context, tehsil *entities.Tehsil) error {
	return r.db.WithContext(ctx).Create(tehsil).Error
}

func (r *catalogRepository) CreateVillage(ctx context.Context, village *entities.Village) error {
	return r.db.WithContext(ctx).Create(village).Error
}

func (r *catalogRepository) GetDistrictByCode(ctx context.Context, code string) (*entities.District, error) {
	var district entities.District
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&district).Error; err != nil {
		return nil, err
	}
	return &district, nil
}

func (r *catalogRepository) GetTehsilByCode(ctx context.Context, code string) (*entities.Tehsil, error) {
	var tehsil entities.Tehsil
	if err := r.db.WithContext(ctx).Preload("District").Where("code = ?", code).First(&tehsil).Error; err != nil {
		return nil, err
	}
	return &tehsil, nil
}

func (r *catalogRepository) GetVillageByCode(ctx context.Context, code string) (*entities.Village, error) {
	var village entities.Village
	if err := r.db.WithContext(ctx).Preload("Tehsil").Preload("Tehsil.District").Where("code = ?", code).First(&village).Error; err != nil {
		return nil, err
	}
	return &village, nil
}

func (r *catalogRepository) GetDistricts(ctx context.Context) ([]*entities.District, error) {
	var districts []*entities.District
	if err := r.db.WithContext(ctx).Preload("Tehsils").Preload("Tehsils.Villages").Order("name asc").Find(&districts).Error; err != nil {
		return nil, err
	}
	return districts, nil
}
