package catalog

import (
	"ReliefLink/domain"
	"ReliefLink/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CatalogService interface {
		CreateItemType(ctx context.Context, req domain.CreateItemTypeRequest) (*domain.ItemTypeResponse, error)
		GetItemTypes(ctx context.Context, category string) ([]*domain.ItemTypeResponse, error)
		ResolveItemType(ctx context.Context, id string) (*entities.ItemType, error)

		CreateLocation(ctx context.Context, req domain.CreateLocationRequest) (*domain.LocationResponse, error)
		GetLocations(ctx context.Context) ([]*domain.LocationResponse, error)
		ResolveLocation(ctx context.Context, code string) (*domain.Location, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
	}
)

func NewCatalogService(catalogRepository CatalogRepository) CatalogService {
	return &catalogService{catalogRepository: catalogRepository}
}

func (s *catalogService) CreateItemType(ctx context.Context, req domain.CreateItemTypeRequest) (*domain.ItemTypeResponse, error) {
	itemType := &entities.ItemType{
		ID:            uuid.New(),
		Name:          req.Name,
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		UnitMeasure:   req.UnitMeasure,
		Perishable:    req.Perishable,
		ShelfLifeDays: req.ShelfLifeDays,
	}

	if err := s.catalogRepository.CreateItemType(ctx, itemType); err != nil {
		return nil, err
	}

	return toItemTypeResponse(itemType), nil
}

func (s *catalogService) GetItemTypes(ctx context.Context, category string) ([]*domain.ItemTypeResponse, error) {
	itemTypes, err := s.catalogRepository.GetItemTypes(ctx, category)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.ItemTypeResponse, 0, len(itemTypes))
	for _, itemType := range itemTypes {
		result = append(result, toItemTypeResponse(itemType))
	}
	return result, nil
}

func (s *catalogService) ResolveItemType(ctx context.Context, id string) (*entities.ItemType, error) {
	itemType, err := s.catalogRepository.GetItemTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemTypeNotFound
		}
		return nil, err
	}
	return itemType, nil
}

func (s *catalogService) CreateLocation(ctx context.Context, req domain.CreateLocationRequest) (*domain.LocationResponse, error) {
	taken, err := s.codeInUse(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrLocationCodeTaken
	}

	switch req.Tier {
	case "District":
		district := &entities.District{
			ID:   uuid.New(),
			Name: req.Name,
			Code: req.Code,
		}
		if err := s.catalogRepository.CreateDistrict(ctx, district); err != nil {
			return nil, err
		}
		return &domain.LocationResponse{
			ID:        district.ID.String(),
			Tier:      "District",
			Name:      district.Name,
			Code:      district.Code,
			CreatedAt: district.CreatedAt,
		}, nil
	case "Tehsil":
		district, err := s.catalogRepository.GetDistrictByCode(ctx, req.ParentCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrParentLocationMissing
			}
			return nil, err
		}
		tehsil := &entities.Tehsil{
			ID:         uuid.New(),
			DistrictID: district.ID,
			Name:       req.Name,
			Code:       req.Code,
		}
		if err := s.catalogRepository.CreateTehsil(ctx, tehsil); err != nil {
			return nil, err
		}
		return &domain.LocationResponse{
			ID:        tehsil.ID.String(),
			Tier:      "Tehsil",
			Name:      tehsil.Name,
			Code:      tehsil.Code,
			ParentID:  district.ID.String(),
			CreatedAt: tehsil.CreatedAt,
		}, nil
	case "Village":
		tehsil, err := s.catalogRepository.GetTehsilByCode(ctx, req.ParentCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrParentLocationMissing
			}
			return nil, err
		}
		village := &entities.Village{
			ID:       uuid.New(),
			TehsilID: tehsil.ID,
			Name:     req.Name,
			Code:     req.Code,
		}
		if err := s.catalogRepository.CreateVillage(ctx, village); err != nil {
			return nil, err
		}
		return &domain.LocationResponse{
			ID:        village.ID.String(),
			Tier:      "Village",
			Name:      village.Name,
			Code:      village.Code,
			ParentID:  tehsil.ID.String(),
			CreatedAt: village.CreatedAt,
		}, nil
	}
	return nil, domain.ErrLocationNotFound
}

// Codes are resolved without a tier qualifier, so they must be unique
// across all three tiers, not just within their own table.
func (s *catalogService) codeInUse(ctx context.Context, code string) (bool, error) {
	if _, err := s.catalogRepository.GetDistrictByCode(ctx, code); err == nil {
		return true, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if _, err := s.catalogRepository.GetTehsilByCode(ctx, code); err == nil {
		return true, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if _, err := s.catalogRepository.GetVillageByCode(ctx, code); err == nil {
		return true, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	return false, nil
}

func (s *catalogService) GetLocations(ctx context.Context) ([]*domain.LocationResponse, error) {
	districts, err := s.catalogRepository.GetDistricts(ctx)
	if err != nil {
		return nil, err
	}

	var result []*domain.LocationResponse
	for _, district := range districts {
		result = append(result, &domain.LocationResponse{
			ID:        district.ID.String(),
			Tier:      "District",
			Name:      district.Name,
			Code:      district.Code,
			CreatedAt: district.CreatedAt,
		})
		for _, tehsil := range district.Tehsils {
			result = append(result, &domain.LocationResponse{
				ID:        tehsil.ID.String(),
				Tier:      "Tehsil",
				Name:      tehsil.Name,
				Code:      tehsil.Code,
				ParentID:  district.ID.String(),
				CreatedAt: tehsil.CreatedAt,
			})
			for _, village := range tehsil.Villages {
				result = append(result, &domain.LocationResponse{
					ID:        village.ID.String(),
					Tier:      "Village",
					Name:      village.Name,
					Code:      village.Code,
					ParentID:  tehsil.ID.String(),
					CreatedAt: village.CreatedAt,
				})
			}
		}
	}
	return result, nil
}

// ResolveLocation resolves a tehsil or village code to its full location
// chain. Entries declared at tehsil level leave the village fields empty.
func (s *catalogService) ResolveLocation(ctx context.Context, code string) (*domain.Location, error) {
	village, err := s.catalogRepository.GetVillageByCode(ctx, code)
	if err == nil {
		loc := &domain.Location{
			VillageID:   village.ID.String(),
			VillageName: village.Name,
		}
		if village.Tehsil != nil {
			loc.TehsilID = village.Tehsil.ID.String()
			loc.TehsilName = village.Tehsil.Name
			if village.Tehsil.District != nil {
				loc.DistrictID = village.Tehsil.District.ID.String()
				loc.DistrictName = village.Tehsil.District.Name
			}
		}
		return loc, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tehsil, err := s.catalogRepository.GetTehsilByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, err
	}

	loc := &domain.Location{
		TehsilID:   tehsil.ID.String(),
		TehsilName: tehsil.Name,
	}
	if tehsil.District != nil {
		loc.DistrictID = tehsil.District.ID.String()
		loc.DistrictName = tehsil.District.Name
	}
	return loc, nil
}

func toItemTypeResponse(itemType *entities.ItemType) *domain.ItemTypeResponse {
	return &domain.ItemTypeResponse{
		ID:            itemType.ID.String(),
		Name:          itemType.Name,
		Category:      itemType.Category,
		Subcategory:   itemType.Subcategory,
		UnitMeasure:   itemType.UnitMeasure,
		Perishable:    itemType.Perishable,
		ShelfLifeDays: itemType.ShelfLifeDays,
		CreatedAt:     itemType.CreatedAt,
	}
}
