package inventory

import (
	"ReliefLink/domain"
	"ReliefLink/entities"
	"ReliefLink/internal/utils/storage"
	"ReliefLink/pkg/catalog"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	InventoryService interface {
		CreateEntry(ctx context.Context, req domain.CreateInventoryEntryRequest, providerID string) (*domain.InventoryEntryResponse, error)
		GetEntryByID(ctx context.Context, id string) (*domain.InventoryEntryResponse, error)
		GetEntries(ctx context.Context, filter domain.InventoryFilter) ([]*domain.InventoryEntryResponse, int64, error)
		UpdateEntry(ctx context.Context, id string, req domain.UpdateInventoryEntryRequest, actorID, role string) (*domain.InventoryEntryResponse, error)
		DeleteEntry(ctx context.Context, id string, actorID, role string) error
		UploadEvidence(ctx context.Context, id string, req domain.UploadEvidenceRequest, actorID, role string) (*domain.InventoryEntryResponse, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		catalogService      catalog.CatalogService
		s3                  storage.AwsS3
	}
)

func NewInventoryService(inventoryRepository InventoryRepository, catalogService catalog.CatalogService, s3 storage.AwsS3) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		catalogService:      catalogService,
		s3:                  s3,
	}
}

func (s *inventoryService) CreateEntry(ctx context.Context, req domain.CreateInventoryEntryRequest, providerID string) (*domain.InventoryEntryResponse, error) {
	if req.Status != "" && !IsOverrideStatus(req.Status) {
		return nil, domain.ErrInvalidStatusOverride
	}

	if _, err := s.catalogService.ResolveItemType(ctx, req.ItemTypeID); err != nil {
		return nil, err
	}

	location, err := s.catalogService.ResolveLocation(ctx, req.LocationCode)
	if err != nil {
		return nil, err
	}

	providerUUID, err := uuid.Parse(providerID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	itemTypeUUID, err := uuid.Parse(req.ItemTypeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	districtUUID, err := uuid.Parse(location.DistrictID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	tehsilUUID, err := uuid.Parse(location.TehsilID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	var villageUUID *uuid.UUID
	if location.VillageID != "" {
		parsed, err := uuid.Parse(location.VillageID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		villageUUID = &parsed
	}

	// An omitted quantity_available means the entry starts fully stocked.
	quantityAvailable := req.QuantityTotal
	if req.QuantityAvailable != nil {
		quantityAvailable = *req.QuantityAvailable
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = entities.VisibilityPublic
	}

	entry := &entities.InventoryEntry{
		ID:                uuid.New(),
		ProviderID:        providerUUID,
		ItemTypeID:        itemTypeUUID,
		DistrictID:        districtUUID,
		TehsilID:          tehsilUUID,
		VillageID:         villageUUID,
		QuantityTotal:     req.QuantityTotal,
		QuantityAvailable: quantityAvailable,
		Condition:         req.Condition,
		Status:            req.Status,
		AvailabilityMode:  req.AvailabilityMode,
		BatchNumber:       req.BatchNumber,
		StorageLocation:   req.StorageLocation,
		Notes:             req.Notes,
		Visibility:        visibility,
	}

	if req.AvailableFrom != "" {
		from, err := parseTime(req.AvailableFrom)
		if err != nil {
			return nil, domain.ErrInvalidDateFormat
		}
		entry.AvailableFrom = &from
	}
	if req.AvailableUntil != "" {
		until, err := parseTime(req.AvailableUntil)
		if err != nil {
			return nil, domain.ErrInvalidDateFormat
		}
		entry.AvailableUntil = &until
	}
	if req.ResponseHours != nil {
		entry.ResponseHours = req.ResponseHours
	}
	if req.ExpiryDate != "" {
		expiry, err := parseTime(req.ExpiryDate)
		if err != nil {
			return nil, domain.ErrInvalidDateFormat
		}
		entry.ExpiryDate = &expiry
	}

	if err := validateEntry(entry); err != nil {
		return nil, err
	}
	entry.Status = DeriveStatus(entry)

	if err := s.inventoryRepository.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}

	created, err := s.inventoryRepository.GetEntryByID(ctx, entry.ID.String())
	if err != nil {
		return nil, err
	}
	return toEntryResponse(created), nil
}

func (s *inventoryService) GetEntryByID(ctx context.Context, id string) (*domain.InventoryEntryResponse, error) {
	entry, err := s.inventoryRepository.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}
	return toEntryResponse(entry), nil
}

func (s *inventoryService) GetEntries(ctx context.Context, filter domain.InventoryFilter) ([]*domain.InventoryEntryResponse, int64, error) {
	repoFilter := EntryFilter{
		ProviderID:   filter.ProviderID,
		Category:     filter.Category,
		Status:       filter.Status,
		LowStockOnly: filter.LowStockOnly,
		Page:         filter.Page,
		Limit:        filter.Limit,
	}

	if filter.LocationCode != "" {
		location, err := s.catalogService.ResolveLocation(ctx, filter.LocationCode)
		if err != nil {
			return nil, 0, err
		}
		repoFilter.DistrictID = location.DistrictID
		repoFilter.TehsilID = location.TehsilID
		repoFilter.VillageID = location.VillageID
	}

	entries, count, err := s.inventoryRepository.GetEntries(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.InventoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, toEntryResponse(entry))
	}
	return result, count, nil
}

func (s *inventoryService) UpdateEntry(ctx context.Context, id string, req domain.UpdateInventoryEntryRequest, actorID, role string) (*domain.InventoryEntryResponse, error) {
	_, err := s.inventoryRepository.UpdateEntry(ctx, id, func(entry *entities.InventoryEntry) error {
		if entry.ProviderID.String() != actorID && role != domain.RoleAdmin {
			return domain.ErrUnauthorizedEntryAccess
		}
		if err := applyEntryUpdate(entry, req); err != nil {
			return err
		}
		if err := validateEntry(entry); err != nil {
			return err
		}
		entry.Status = DeriveStatus(entry)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}

	updated, err := s.inventoryRepository.GetEntryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEntryResponse(updated), nil
}

func (s *inventoryService) DeleteEntry(ctx context.Context, id string, actorID, role string) error {
	entry, err := s.inventoryRepository.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEntryNotFound
		}
		return err
	}
	if entry.ProviderID.String() != actorID && role != domain.RoleAdmin {
		return domain.ErrUnauthorizedEntryAccess
	}

	if err := s.inventoryRepository.DeleteEntry(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEntryNotFound
		}
		return err
	}
	return nil
}

func (s *inventoryService) UploadEvidence(ctx context.Context, id string, req domain.UploadEvidenceRequest, actorID, role string) (*domain.InventoryEntryResponse, error) {
	entry, err := s.inventoryRepository.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}
	if entry.ProviderID.String() != actorID && role != domain.RoleAdmin {
		return nil, domain.ErrUnauthorizedEntryAccess
	}

	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("entry-%s-%d", entry.ID.String(), time.Now().Unix()),
		req.Image,
		"evidence",
		storage.AllowImage...,
	)
	if err != nil {
		return nil, err
	}
	evidenceURL := s.s3.GetPublicLinkKey(objectKey)

	_, err = s.inventoryRepository.UpdateEntry(ctx, id, func(entry *entities.InventoryEntry) error {
		entry.EvidenceURLs = append(entry.EvidenceURLs, evidenceURL)
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.inventoryRepository.GetEntryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEntryResponse(updated), nil
}

func applyEntryUpdate(entry *entities.InventoryEntry, req domain.UpdateInventoryEntryRequest) error {
	if req.QuantityTotal != nil {
		entry.QuantityTotal = *req.QuantityTotal
	}
	if req.QuantityAvailable != nil {
		entry.QuantityAvailable = *req.QuantityAvailable
	}
	if req.Condition != nil {
		entry.Condition = *req.Condition
	}
	if req.Status != nil {
		switch {
		case *req.Status == "Auto":
			entry.Status = ""
		case IsOverrideStatus(*req.Status):
			entry.Status = *req.Status
		default:
			return domain.ErrInvalidStatusOverride
		}
	}
	if req.AvailabilityMode != nil {
		entry.AvailabilityMode = *req.AvailabilityMode
	}
	if req.AvailableFrom != nil {
		from, err := parseTime(*req.AvailableFrom)
		if err != nil {
			return domain.ErrInvalidDateFormat
		}
		entry.AvailableFrom = &from
	}
	if req.AvailableUntil != nil {
		until, err := parseTime(*req.AvailableUntil)
		if err != nil {
			return domain.ErrInvalidDateFormat
		}
		entry.AvailableUntil = &until
	}
	if req.ResponseHours != nil {
		entry.ResponseHours = req.ResponseHours
	}
	if req.BatchNumber != nil {
		entry.BatchNumber = *req.BatchNumber
	}
	if req.ExpiryDate != nil {
		expiry, err := parseTime(*req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidDateFormat
		}
		entry.ExpiryDate = &expiry
	}
	if req.StorageLocation != nil {
		entry.StorageLocation = *req.StorageLocation
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}
	if req.Visibility != nil {
		entry.Visibility = *req.Visibility
	}
	if req.Verified != nil {
		entry.Verified = *req.Verified
	}
	return nil
}

func validateEntry(entry *entities.InventoryEntry) error {
	if entry.QuantityTotal < 0 || entry.QuantityAvailable < 0 || entry.QuantityAvailable > entry.QuantityTotal {
		return domain.ErrInvalidQuantity
	}
	switch entry.AvailabilityMode {
	case entities.AvailabilityScheduled:
		if entry.AvailableFrom == nil || entry.AvailableUntil == nil {
			return domain.ErrMissingScheduleWindow
		}
		if entry.AvailableFrom.After(*entry.AvailableUntil) {
			return domain.ErrInvalidScheduleWindow
		}
	case entities.AvailabilityOnRequest:
		if entry.ResponseHours == nil || *entry.ResponseHours < 1 || *entry.ResponseHours > 72 {
			return domain.ErrInvalidResponseHours
		}
	case entities.AvailabilityLimitedTime:
		if entry.AvailableUntil == nil {
			return domain.ErrMissingUntil
		}
	}
	return nil
}

func parseTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func toEntryResponse(entry *entities.InventoryEntry) *domain.InventoryEntryResponse {
	resp := &domain.InventoryEntryResponse{
		ID:                entry.ID.String(),
		ProviderID:        entry.ProviderID.String(),
		ItemTypeID:        entry.ItemTypeID.String(),
		QuantityTotal:     entry.QuantityTotal,
		QuantityAvailable: entry.QuantityAvailable,
		Condition:         entry.Condition,
		Status:            entry.Status,
		AvailabilityMode:  entry.AvailabilityMode,
		AvailableFrom:     entry.AvailableFrom,
		AvailableUntil:    entry.AvailableUntil,
		ResponseHours:     entry.ResponseHours,
		OfferableNow:      IsOfferableNow(entry, time.Now()),
		BatchNumber:       entry.BatchNumber,
		ExpiryDate:        entry.ExpiryDate,
		StorageLocation:   entry.StorageLocation,
		Notes:             entry.Notes,
		EvidenceURLs:      entry.EvidenceURLs,
		Visibility:        entry.Visibility,
		Verified:          entry.Verified,
		CreatedAt:         entry.CreatedAt,
		UpdatedAt:         entry.UpdatedAt,
	}
	if entry.ItemType != nil {
		resp.ItemTypeName = entry.ItemType.Name
		resp.Category = entry.ItemType.Category
		resp.UnitMeasure = entry.ItemType.UnitMeasure
	}
	if entry.District != nil {
		resp.DistrictName = entry.District.Name
	}
	if entry.Tehsil != nil {
		resp.TehsilName = entry.Tehsil.Name
	}
	if entry.Village != nil {
		resp.VillageName = entry.Village.Name
	}
	return resp
}
