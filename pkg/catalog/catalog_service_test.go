package catalog

import (
	"ReliefLink/domain"
	"ReliefLink/entities"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeCatalogRepository struct {
	mu        sync.Mutex
	itemTypes map[string]*entities.ItemType
	districts map[string]*entities.District
	tehsils   map[string]*entities.Tehsil
	villages  map[string]*entities.Village
}

func newFakeCatalogRepository() *fakeCatalogRepository {
	return &fakeCatalogRepository{
		itemTypes: make(map[string]*entities.ItemType),
		districts: make(map[string]*entities.District),
		tehsils:   make(map[string]*entities.Tehsil),
		villages:  make(map[string]*entities.Village),
	}
}

func (r *fakeCatalogRepository) CreateItemType(_ context.Context, itemType *entities.ItemType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.itemTypes[itemType.ID.String()] = itemType
	return nil
}

func (r *fakeCatalogRepository) GetItemTypeByID(_ context.Context, id string) (*entities.ItemType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	itemType, ok := r.itemTypes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return itemType, nil
}

func (r *fakeCatalogRepository) GetItemTypes(_ context.Context, category string) ([]*entities.ItemType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entities.ItemType
	for _, itemType := range r.itemTypes {
		if category == "" || itemType.Category == category {
			result = append(result, itemType)
		}
	}
	return result, nil
}

func (r *fakeCatalogRepository) CreateDistrict(_ context.Context, district *entities.District) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.districts[district.Code] = district
	return nil
}

func (r *fakeCatalogRepository) CreateTehsil(_ context.Context, tehsil *entities.Tehsil) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tehsils[tehsil.Code] = tehsil
	return nil
}

func (r *fakeCatalogRepository) CreateVillage(_ context.Context, village *entities.Village) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.villages[village.Code] = village
	return nil
}

func (r *fakeCatalogRepository) GetDistrictByCode(_ context.Context, code string) (*entities.District, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	district, ok := r.districts[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return district, nil
}

// GetTehsilByCode attaches the parent district like the SQL repository's
// preload does.
func (r *fakeCatalogRepository) GetTehsilByCode(_ context.Context, code string) (*entities.Tehsil, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tehsil, ok := r.tehsils[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	loaded := *tehsil
	for _, district := range r.districts {
		if district.ID == tehsil.DistrictID {
			loaded.District = district
		}
	}
	return &loaded, nil
}

func (r *fakeCatalogRepository) GetVillageByCode(_ context.Context, code string) (*entities.Village, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	village, ok := r.villages[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	loaded := *village
	for _, tehsil := range r.tehsils {
		if tehsil.ID == village.TehsilID {
			parent := *tehsil
			for _, district := range r.districts {
				if district.ID == tehsil.DistrictID {
					parent.District = district
				}
			}
			loaded.Tehsil = &parent
		}
	}
	return &loaded, nil
}

func (r *fakeCatalogRepository) GetDistricts(_ context.Context) ([]*entities.District, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entities.District
	for _, district := range r.districts {
		loaded := *district
		for _, tehsil := range r.tehsils {
			if tehsil.DistrictID == district.ID {
				child := *tehsil
				for _, village := range r.villages {
					if village.TehsilID == tehsil.ID {
						child.Villages = append(child.Villages, village)
					}
				}
				loaded.Tehsils = append(loaded.Tehsils, &child)
			}
		}
		result = append(result, &loaded)
	}
	return result, nil
}

func setupCatalogService(t *testing.T) (CatalogService, *fakeCatalogRepository) {
	t.Helper()
	repo := newFakeCatalogRepository()
	return NewCatalogService(repo), repo
}

func seedLocationChain(t *testing.T, service CatalogService) {
	t.Helper()
	for _, req := range []domain.CreateLocationRequest{
		{Tier: "District", Name: "Sukkur", Code: "SKD"},
		{Tier: "Tehsil", Name: "Rohri", Code: "SKD-RHR", ParentCode: "SKD"},
		{Tier: "Village", Name: "Bakhri", Code: "SKD-RHR-01", ParentCode: "SKD-RHR"},
	} {
		if _, err := service.CreateLocation(context.Background(), req); err != nil {
			t.Fatalf("CreateLocation(%s %s) error = %v", req.Tier, req.Code, err)
		}
	}
}

func TestCreateLocationHierarchy(t *testing.T) {
	service, repo := setupCatalogService(t)
	seedLocationChain(t, service)

	village, err := repo.GetVillageByCode(context.Background(), "SKD-RHR-01")
	if err != nil {
		t.Fatalf("GetVillageByCode() error = %v", err)
	}
	if village.Tehsil == nil || village.Tehsil.Code != "SKD-RHR" {
		t.Fatalf("village tehsil = %+v, want code SKD-RHR", village.Tehsil)
	}
	if village.Tehsil.District == nil || village.Tehsil.District.Code != "SKD" {
		t.Errorf("village district = %+v, want code SKD", village.Tehsil.District)
	}
}

func TestCreateLocationCodeTaken(t *testing.T) {
	service, _ := setupCatalogService(t)
	seedLocationChain(t, service)

	// The same code is rejected even on a different tier, since entry
	// location codes are looked up without one.
	cases := []domain.CreateLocationRequest{
		{Tier: "District", Name: "Sukkur Copy", Code: "SKD"},
		{Tier: "Tehsil", Name: "Shadow", Code: "SKD", ParentCode: "SKD"},
		{Tier: "Village", Name: "Shadow", Code: "SKD-RHR", ParentCode: "SKD-RHR"},
	}
	for _, req := range cases {
		if _, err := service.CreateLocation(context.Background(), req); !errors.Is(err, domain.ErrLocationCodeTaken) {
			t.Errorf("CreateLocation(%s %s) error = %v, want %v", req.Tier, req.Code, err, domain.ErrLocationCodeTaken)
		}
	}
}

func TestCreateLocationParentMissing(t *testing.T) {
	service, _ := setupCatalogService(t)

	if _, err := service.CreateLocation(context.Background(), domain.CreateLocationRequest{
		Tier: "Tehsil", Name: "Rohri", Code: "SKD-RHR", ParentCode: "SKD",
	}); !errors.Is(err, domain.ErrParentLocationMissing) {
		t.Errorf("CreateLocation() error = %v, want %v", err, domain.ErrParentLocationMissing)
	}
}

func TestResolveLocation(t *testing.T) {
	service, _ := setupCatalogService(t)
	seedLocationChain(t, service)

	village, err := service.ResolveLocation(context.Background(), "SKD-RHR-01")
	if err != nil {
		t.Fatalf("ResolveLocation(village) error = %v", err)
	}
	if village.VillageName != "Bakhri" || village.TehsilName != "Rohri" || village.DistrictName != "Sukkur" {
		t.Errorf("village chain = %+v, want Bakhri/Rohri/Sukkur", village)
	}

	tehsil, err := service.ResolveLocation(context.Background(), "SKD-RHR")
	if err != nil {
		t.Fatalf("ResolveLocation(tehsil) error = %v", err)
	}
	if tehsil.VillageID != "" {
		t.Errorf("VillageID = %q, want empty for tehsil-level code", tehsil.VillageID)
	}
	if tehsil.DistrictName != "Sukkur" {
		t.Errorf("DistrictName = %q, want Sukkur", tehsil.DistrictName)
	}

	if _, err := service.ResolveLocation(context.Background(), "nowhere"); !errors.Is(err, domain.ErrLocationNotFound) {
		t.Errorf("ResolveLocation(unknown) error = %v, want %v", err, domain.ErrLocationNotFound)
	}
}

func TestResolveItemType(t *testing.T) {
	service, _ := setupCatalogService(t)

	created, err := service.CreateItemType(context.Background(), domain.CreateItemTypeRequest{
		Name:        "Rice",
		Category:    entities.CategoryFood,
		UnitMeasure: "kg",
	})
	if err != nil {
		t.Fatalf("CreateItemType() error = %v", err)
	}

	resolved, err := service.ResolveItemType(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("ResolveItemType() error = %v", err)
	}
	if resolved.Name != "Rice" {
		t.Errorf("Name = %q, want Rice", resolved.Name)
	}

	if _, err := service.ResolveItemType(context.Background(), uuid.New().String()); !errors.Is(err, domain.ErrItemTypeNotFound) {
		t.Errorf("ResolveItemType(unknown) error = %v, want %v", err, domain.ErrItemTypeNotFound)
	}
}
