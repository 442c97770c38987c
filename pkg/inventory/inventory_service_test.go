package inventory

import (
	"ReliefLink/domain"
	"ReliefLink/entities"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeInventoryRepository struct {
	mu       sync.Mutex
	entries  map[string]*entities.InventoryEntry
	requests map[string][]*entities.ResupplyRequest
	offers   map[string][]*entities.DonationOffer
}

func newFakeInventoryRepository() *fakeInventoryRepository {
	return &fakeInventoryRepository{
		entries:  make(map[string]*entities.InventoryEntry),
		requests: make(map[string][]*entities.ResupplyRequest),
		offers:   make(map[string][]*entities.DonationOffer),
	}
}

func (r *fakeInventoryRepository) CreateEntry(_ context.Context, entry *entities.InventoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *entry
	r.entries[entry.ID.String()] = &stored
	return nil
}

func (r *fakeInventoryRepository) GetEntryByID(_ context.Context, id string) (*entities.InventoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *entry
	return &copied, nil
}

func (r *fakeInventoryRepository) UpdateEntry(_ context.Context, id string, mutate func(*entities.InventoryEntry) error) (*entities.InventoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *entry
	if err := mutate(&copied); err != nil {
		return nil, err
	}
	r.entries[id] = &copied
	result := copied
	return &result, nil
}

// DeleteEntry mirrors the SQL repository: dependent requests and offers go
// down with the entry in the same operation.
func (r *fakeInventoryRepository) DeleteEntry(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.requests, id)
	delete(r.offers, id)
	delete(r.entries, id)
	return nil
}

func (r *fakeInventoryRepository) GetEntries(_ context.Context, filter EntryFilter) ([]*entities.InventoryEntry, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entities.InventoryEntry
	for _, entry := range r.entries {
		if filter.ProviderID != "" && entry.ProviderID.String() != filter.ProviderID {
			continue
		}
		if filter.Status != "" && entry.Status != filter.Status {
			continue
		}
		if filter.LowStockOnly && entry.QuantityAvailable > LowStockThreshold(entry.QuantityTotal) {
			continue
		}
		copied := *entry
		result = append(result, &copied)
	}
	return result, int64(len(result)), nil
}

type fakeCatalogService struct {
	itemTypes map[string]*entities.ItemType
	locations map[string]*domain.Location
}

func newFakeCatalogService() *fakeCatalogService {
	return &fakeCatalogService{
		itemTypes: make(map[string]*entities.ItemType),
		locations: make(map[string]*domain.Location),
	}
}

func (c *fakeCatalogService) CreateItemType(_ context.Context, _ domain.CreateItemTypeRequest) (*domain.ItemTypeResponse, error) {
	return nil, errors.New("not implemented")
}

func (c *fakeCatalogService) GetItemTypes(_ context.Context, _ string) ([]*domain.ItemTypeResponse, error) {
	return nil, errors.New("not implemented")
}

func (c *fakeCatalogService) ResolveItemType(_ context.Context, id string) (*entities.ItemType, error) {
	itemType, ok := c.itemTypes[id]
	if !ok {
		return nil, domain.ErrItemTypeNotFound
	}
	return itemType, nil
}

func (c *fakeCatalogService) CreateLocation(_ context.Context, _ domain.CreateLocationRequest) (*domain.LocationResponse, error) {
	return nil, errors.New("not implemented")
}

func (c *fakeCatalogService) GetLocations(_ context.Context) ([]*domain.LocationResponse, error) {
	return nil, errors.New("not implemented")
}

func (c *fakeCatalogService) ResolveLocation(_ context.Context, code string) (*domain.Location, error) {
	location, ok := c.locations[code]
	if !ok {
		return nil, domain.ErrLocationNotFound
	}
	return location, nil
}

type fakeS3 struct {
	uploads int
}

func (s *fakeS3) UploadFile(name string, _ *multipart.FileHeader, dir string, _ ...string) (string, error) {
	s.uploads++
	return fmt.Sprintf("%s/%s.png", dir, name), nil
}

func (s *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.test.amazonaws.com/" + objectKey
}

func setupInventoryService(t *testing.T) (InventoryService, *fakeInventoryRepository, *fakeCatalogService, string, string) {
	t.Helper()

	repo := newFakeInventoryRepository()
	catalogSvc := newFakeCatalogService()

	itemTypeID := uuid.New().String()
	catalogSvc.itemTypes[itemTypeID] = &entities.ItemType{
		Name:        "Rice",
		Category:    entities.CategoryFood,
		UnitMeasure: "kg",
	}
	catalogSvc.locations["SKD-01"] = &domain.Location{
		DistrictID:   uuid.New().String(),
		DistrictName: "Sukkur",
		TehsilID:     uuid.New().String(),
		TehsilName:   "Rohri",
	}

	providerID := uuid.New().String()
	service := NewInventoryService(repo, catalogSvc, &fakeS3{})
	return service, repo, catalogSvc, itemTypeID, providerID
}

func TestCreateEntryDefaultsAvailableToTotal(t *testing.T) {
	service, _, _, itemTypeID, providerID := setupInventoryService(t)

	created, err := service.CreateEntry(context.Background(), domain.CreateInventoryEntryRequest{
		ItemTypeID:       itemTypeID,
		LocationCode:     "SKD-01",
		QuantityTotal:    100,
		Condition:        entities.ConditionGood,
		AvailabilityMode: entities.AvailabilityImmediate,
	}, providerID)
	if err != nil {
		t.Fatalf("CreateEntry() error = %v", err)
	}

	if created.QuantityAvailable != 100 {
		t.Errorf("QuantityAvailable = %d, want 100", created.QuantityAvailable)
	}
	if created.Status != entities.EntryStatusAvailable {
		t.Errorf("Status = %q, want %q", created.Status, entities.EntryStatusAvailable)
	}
	if created.Visibility != entities.VisibilityPublic {
		t.Errorf("Visibility = %q, want %q", created.Visibility, entities.VisibilityPublic)
	}
}

func TestCreateEntryExplicitZeroAvailable(t *testing.T) {
	service, _, _, itemTypeID, providerID := setupInventoryService(t)

	zero := 0
	created, err := service.CreateEntry(context.Background(), domain.CreateInventoryEntryRequest{
		ItemTypeID:        itemTypeID,
		LocationCode:      "SKD-01",
		QuantityTotal:     100,
		QuantityAvailable: &zero,
		Condition:         entities.ConditionGood,
		AvailabilityMode:  entities.AvailabilityImmediate,
	}, providerID)
	if err != nil {
		t.Fatalf("CreateEntry() error = %v", err)
	}

	if created.QuantityAvailable != 0 {
		t.Errorf("QuantityAvailable = %d, want 0", created.QuantityAvailable)
	}
	if created.Status != entities.EntryStatusOutOfStock {
		t.Errorf("Status = %q, want %q", created.Status, entities.EntryStatusOutOfStock)
	}
}

func TestCreateEntryValidation(t *testing.T) {
	service, _, _, itemTypeID, providerID := setupInventoryService(t)
	over := 150
	hours := 100

	tests := []struct {
		name    string
		req     domain.CreateInventoryEntryRequest
		wantErr error
	}{
		{
			"available above total",
			domain.CreateInventoryEntryRequest{
				ItemTypeID:        itemTypeID,
				LocationCode:      "SKD-01",
				QuantityTotal:     100,
				QuantityAvailable: &over,
				Condition:         entities.ConditionGood,
				AvailabilityMode:  entities.AvailabilityImmediate,
			},
			domain.ErrInvalidQuantity,
		},
		{
			"scheduled without window",
			domain.CreateInventoryEntryRequest{
				ItemTypeID:       itemTypeID,
				LocationCode:     "SKD-01",
				QuantityTotal:    100,
				Condition:        entities.ConditionGood,
				AvailabilityMode: entities.AvailabilityScheduled,
			},
			domain.ErrMissingScheduleWindow,
		},
		{
			"scheduled window inverted",
			domain.CreateInventoryEntryRequest{
				ItemTypeID:       itemTypeID,
				LocationCode:     "SKD-01",
				QuantityTotal:    100,
				Condition:        entities.ConditionGood,
				AvailabilityMode: entities.AvailabilityScheduled,
				AvailableFrom:    "2026-07-01",
				AvailableUntil:   "2026-06-01",
			},
			domain.ErrInvalidScheduleWindow,
		},
		{
			"on request without response hours",
			domain.CreateInventoryEntryRequest{
				ItemTypeID:       itemTypeID,
				LocationCode:     "SKD-01",
				QuantityTotal:    100,
				Condition:        entities.ConditionGood,
				AvailabilityMode: entities.AvailabilityOnRequest,
			},
			domain.ErrInvalidResponseHours,
		},
		{
			"on request hours out of range",
			domain.CreateInventoryEntryRequest{
				ItemTypeID:       itemTypeID,
				LocationCode:     "SKD-01",
				QuantityTotal:    100,
				Condition:        entities.ConditionGood,
				AvailabilityMode: entities.AvailabilityOnRequest,
				ResponseHours:    &hours,
			},
			domain.ErrInvalidResponseHours,
		},
		{
			"limited time without deadline",
			domain.CreateInventoryEntryRequest{
				ItemTypeID:       itemTypeID,
				LocationCode:     "SKD-01",
				QuantityTotal:    100,
				Condition:        entities.ConditionGood,
				AvailabilityMode: entities.AvailabilityLimitedTime,
			},
			domain.ErrMissingUntil,
		},
		{
			"unknown item type",
			domain.CreateInventoryEntryRequest{
				ItemTypeID:       uuid.New().String(),
				LocationCode:     "SKD-01",
				QuantityTotal:    100,
				Condition:        entities.ConditionGood,
				AvailabilityMode: entities.AvailabilityImmediate,
			},
			domain.ErrItemTypeNotFound,
		},
		{
			"unknown location code",
			domain.CreateInventoryEntryRequest{
				ItemTypeID:       itemTypeID,
				LocationCode:     "NOPE-99",
				QuantityTotal:    100,
				Condition:        entities.ConditionGood,
				AvailabilityMode: entities.AvailabilityImmediate,
			},
			domain.ErrLocationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateEntry(context.Background(), tt.req, providerID)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateEntry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateEntryStatusOverrideAndAuto(t *testing.T) {
	service, _, _, itemTypeID, providerID := setupInventoryService(t)

	created, err := service.CreateEntry(context.Background(), domain.CreateInventoryEntryRequest{
		ItemTypeID:       itemTypeID,
		LocationCode:     "SKD-01",
		QuantityTotal:    100,
		Condition:        entities.ConditionGood,
		AvailabilityMode: entities.AvailabilityImmediate,
	}, providerID)
	if err != nil {
		t.Fatalf("CreateEntry() error = %v", err)
	}

	reserved := entities.EntryStatusReserved
	updated, err := service.UpdateEntry(context.Background(), created.ID, domain.UpdateInventoryEntryRequest{
		Status: &reserved,
	}, providerID, domain.RoleProvider)
	if err != nil {
		t.Fatalf("UpdateEntry() error = %v", err)
	}
	if updated.Status != entities.EntryStatusReserved {
		t.Fatalf("Status = %q, want %q", updated.Status, entities.EntryStatusReserved)
	}

	// Quantity changes must not disturb an override.
	zero := 0
	updated, err = service.UpdateEntry(context.Background(), created.ID, domain.UpdateInventoryEntryRequest{
		QuantityAvailable: &zero,
	}, providerID, domain.RoleProvider)
	if err != nil {
		t.Fatalf("UpdateEntry() error = %v", err)
	}
	if updated.Status != entities.EntryStatusReserved {
		t.Fatalf("Status after quantity change = %q, want %q", updated.Status, entities.EntryStatusReserved)
	}

	// Auto clears the override and re-derives from quantities.
	auto := "Auto"
	updated, err = service.UpdateEntry(context.Background(), created.ID, domain.UpdateInventoryEntryRequest{
		Status: &auto,
	}, providerID, domain.RoleProvider)
	if err != nil {
		t.Fatalf("UpdateEntry() error = %v", err)
	}
	if updated.Status != entities.EntryStatusOutOfStock {
		t.Fatalf("Status after Auto = %q, want %q", updated.Status, entities.EntryStatusOutOfStock)
	}
}

func TestStatusOverrideMustBeOverrideValue(t *testing.T) {
	service, _, _, itemTypeID, providerID := setupInventoryService(t)

	// Derived statuses cannot be set by hand on create.
	if _, err := service.CreateEntry(context.Background(), domain.CreateInventoryEntryRequest{
		ItemTypeID:       itemTypeID,
		LocationCode:     "SKD-01",
		QuantityTotal:    100,
		Condition:        entities.ConditionGood,
		AvailabilityMode: entities.AvailabilityImmediate,
		Status:           entities.EntryStatusAvailable,
	}, providerID); !errors.Is(err, domain.ErrInvalidStatusOverride) {
		t.Errorf("CreateEntry() with derived status error = %v, want %v", err, domain.ErrInvalidStatusOverride)
	}

	created, err := service.CreateEntry(context.Background(), domain.CreateInventoryEntryRequest{
		ItemTypeID:       itemTypeID,
		LocationCode:     "SKD-01",
		QuantityTotal:    100,
		Condition:        entities.ConditionGood,
		AvailabilityMode: entities.AvailabilityImmediate,
	}, providerID)
	if err != nil {
		t.Fatalf("CreateEntry() error = %v", err)
	}

	available := entities.EntryStatusAvailable
	if _, err := service.UpdateEntry(context.Background(), created.ID, domain.UpdateInventoryEntryRequest{
		Status: &available,
	}, providerID, domain.RoleProvider); !errors.Is(err, domain.ErrInvalidStatusOverride) {
		t.Errorf("UpdateEntry() with derived status error = %v, want %v", err, domain.ErrInvalidStatusOverride)
	}
}

func TestUpdateEntryAuthorization(t *testing.T) {
	service, _, _, itemTypeID, providerID := setupInventoryService(t)

	created, err := service.CreateEntry(context.Background(), domain.CreateInventoryEntryRequest{
		ItemTypeID:       itemTypeID,
		LocationCode:     "SKD-01",
		QuantityTotal:    100,
		Condition:        entities.ConditionGood,
		AvailabilityMode: entities.AvailabilityImmediate,
	}, providerID)
	if err != nil {
		t.Fatalf("CreateEntry() error = %v", err)
	}

	notes := "updated"
	stranger := uuid.New().String()
	if _, err := service.UpdateEntry(context.Background(), created.ID, domain.UpdateInventoryEntryRequest{
		Notes: &notes,
	}, stranger, domain.RoleProvider); !errors.Is(err, domain.ErrUnauthorizedEntryAccess) {
		t.Errorf("UpdateEntry() by stranger error = %v, want %v", err, domain.ErrUnauthorizedEntryAccess)
	}

	// Admins may edit anyone's entry.
	if _, err := service.UpdateEntry(context.Background(), created.ID, domain.UpdateInventoryEntryRequest{
		Notes: &notes,
	}, stranger, domain.RoleAdmin); err != nil {
		t.Errorf("UpdateEntry() by admin error = %v", err)
	}

	if err := service.DeleteEntry(context.Background(), created.ID, stranger, domain.RoleProvider); !errors.Is(err, domain.ErrUnauthorizedEntryAccess) {
		t.Errorf("DeleteEntry() by stranger error = %v, want %v", err, domain.ErrUnauthorizedEntryAccess)
	}
}

func TestUpdateEntryInvalidQuantityRollsBack(t *testing.T) {
	service, repo, _, itemTypeID, providerID := setupInventoryService(t)

	created, err := service.CreateEntry(context.Background(), domain.CreateInventoryEntryRequest{
		ItemTypeID:       itemTypeID,
		LocationCode:     "SKD-01",
		QuantityTotal:    100,
		Condition:        entities.ConditionGood,
		AvailabilityMode: entities.AvailabilityImmediate,
	}, providerID)
	if err != nil {
		t.Fatalf("CreateEntry() error = %v", err)
	}

	over := 150
	if _, err := service.UpdateEntry(context.Background(), created.ID, domain.UpdateInventoryEntryRequest{
		QuantityAvailable: &over,
	}, providerID, domain.RoleProvider); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("UpdateEntry() error = %v, want %v", err, domain.ErrInvalidQuantity)
	}

	stored, err := repo.GetEntryByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetEntryByID() error = %v", err)
	}
	if stored.QuantityAvailable != 100 {
		t.Errorf("QuantityAvailable after rejected update = %d, want 100", stored.QuantityAvailable)
	}
}

func TestDeleteEntryRemovesEntry(t *testing.T) {
	service, _, _, itemTypeID, providerID := setupInventoryService(t)

	created, err := service.CreateEntry(context.Background(), domain.CreateInventoryEntryRequest{
		ItemTypeID:       itemTypeID,
		LocationCode:     "SKD-01",
		QuantityTotal:    100,
		Condition:        entities.ConditionGood,
		AvailabilityMode: entities.AvailabilityImmediate,
	}, providerID)
	if err != nil {
		t.Fatalf("CreateEntry() error = %v", err)
	}

	if err := service.DeleteEntry(context.Background(), created.ID, providerID, domain.RoleProvider); err != nil {
		t.Fatalf("DeleteEntry() error = %v", err)
	}

	if _, err := service.GetEntryByID(context.Background(), created.ID); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Errorf("GetEntryByID() after delete error = %v, want %v", err, domain.ErrEntryNotFound)
	}

	if err := service.DeleteEntry(context.Background(), created.ID, providerID, domain.RoleProvider); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Errorf("DeleteEntry() twice error = %v, want %v", err, domain.ErrEntryNotFound)
	}
}

func TestDeleteEntryCascadesToDependents(t *testing.T) {
	service, repo, _, itemTypeID, providerID := setupInventoryService(t)

	created, err := service.CreateEntry(context.Background(), domain.CreateInventoryEntryRequest{
		ItemTypeID:       itemTypeID,
		LocationCode:     "SKD-01",
		QuantityTotal:    100,
		Condition:        entities.ConditionGood,
		AvailabilityMode: entities.AvailabilityImmediate,
	}, providerID)
	if err != nil {
		t.Fatalf("CreateEntry() error = %v", err)
	}

	entryUUID := uuid.MustParse(created.ID)
	repo.mu.Lock()
	repo.requests[created.ID] = []*entities.ResupplyRequest{
		{ID: uuid.New(), EntryID: entryUUID, QuantityRequested: 10, Status: entities.RequestStatusPending},
		{ID: uuid.New(), EntryID: entryUUID, QuantityRequested: 5, Status: entities.RequestStatusApproved},
	}
	repo.offers[created.ID] = []*entities.DonationOffer{
		{ID: uuid.New(), EntryID: entryUUID, QuantityOffered: 20, Status: entities.OfferStatusOffered},
	}
	repo.mu.Unlock()

	if err := service.DeleteEntry(context.Background(), created.ID, providerID, domain.RoleProvider); err != nil {
		t.Fatalf("DeleteEntry() error = %v", err)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if requests, ok := repo.requests[created.ID]; ok {
		t.Errorf("resupply requests survived entry delete: %d left", len(requests))
	}
	if offers, ok := repo.offers[created.ID]; ok {
		t.Errorf("donation offers survived entry delete: %d left", len(offers))
	}
}

func TestUploadEvidenceAppendsURL(t *testing.T) {
	service, _, _, itemTypeID, providerID := setupInventoryService(t)

	created, err := service.CreateEntry(context.Background(), domain.CreateInventoryEntryRequest{
		ItemTypeID:       itemTypeID,
		LocationCode:     "SKD-01",
		QuantityTotal:    100,
		Condition:        entities.ConditionGood,
		AvailabilityMode: entities.AvailabilityImmediate,
	}, providerID)
	if err != nil {
		t.Fatalf("CreateEntry() error = %v", err)
	}

	updated, err := service.UploadEvidence(context.Background(), created.ID, domain.UploadEvidenceRequest{
		Image: &multipart.FileHeader{Filename: "warehouse.png"},
	}, providerID, domain.RoleProvider)
	if err != nil {
		t.Fatalf("UploadEvidence() error = %v", err)
	}

	if len(updated.EvidenceURLs) != 1 {
		t.Fatalf("EvidenceURLs length = %d, want 1", len(updated.EvidenceURLs))
	}
}
