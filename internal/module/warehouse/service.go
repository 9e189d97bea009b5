package warehouse

import (
	"context"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/storalia/bodega/internal/domain"
	"github.com/storalia/bodega/internal/pkg"
)

// warehouseService implements domain.WarehouseService.
type warehouseService struct {
	repo domain.WarehouseRepository
}

// NewWarehouseService creates a new WarehouseService with the given repository.
func NewWarehouseService(repo domain.WarehouseRepository) domain.WarehouseService {
	return &warehouseService{repo: repo}
}

// CreateWarehouse validates input, derives the stored price, and persists a
// new active warehouse.
func (s *warehouseService) CreateWarehouse(ctx context.Context, w *domain.Warehouse) (*domain.Warehouse, error) {
	normalize(w)
	if err := validateWarehouse(w); err != nil {
		return nil, err
	}

	w.Price = pkg.ComputeWarehousePrice(w.AreaM2, w.PricePerM2)
	w.MarkActive()

	if err := s.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// GetWarehouse retrieves a warehouse by ID regardless of lifecycle state.
func (s *warehouseService) GetWarehouse(ctx context.Context, id uint) (*domain.Warehouse, error) {
	return s.repo.GetByID(ctx, id, true)
}

// ListWarehouses returns a paginated list of warehouses.
func (s *warehouseService) ListWarehouses(ctx context.Context, spec domain.QuerySpec, sel domain.ActiveSelector) (*domain.PagedResult[domain.Warehouse], error) {
	return s.repo.List(ctx, spec, sel)
}

// UpdateWarehouse loads the existing warehouse (active or not), applies
// changes, re-derives the price, and persists them. Lifecycle state is not
// touched here; that is Deactivate/Reactivate's job.
func (s *warehouseService) UpdateWarehouse(ctx context.Context, id uint, w *domain.Warehouse) (*domain.Warehouse, error) {
	normalize(w)
	if err := validateWarehouse(w); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id, true)
	if err != nil {
		return nil, err
	}

	existing.Name = w.Name
	existing.Location = w.Location
	existing.Complex = w.Complex
	existing.Status = w.Status
	existing.AreaM2 = w.AreaM2
	existing.PricePerM2 = w.PricePerM2
	existing.Price = pkg.ComputeWarehousePrice(w.AreaM2, w.PricePerM2)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeactivateWarehouse marks a warehouse inactive, stamping the resolved actor.
func (s *warehouseService) DeactivateWarehouse(ctx context.Context, id uint, actor domain.Identity) error {
	stamp := domain.AuditStamp{At: time.Now().UTC(), By: pkg.ResolveActor(actor)}
	return s.repo.Deactivate(ctx, id, stamp)
}

// ReactivateWarehouse marks a warehouse active again.
func (s *warehouseService) ReactivateWarehouse(ctx context.Context, id uint) error {
	return s.repo.Reactivate(ctx, id)
}

func normalize(w *domain.Warehouse) {
	w.Name = strings.TrimSpace(w.Name)
	w.Location = strings.TrimSpace(w.Location)
	w.Complex = strings.TrimSpace(w.Complex)
	w.Status = strings.TrimSpace(w.Status)
}

func validateWarehouse(w *domain.Warehouse) error {
	if w.Name == "" {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if utf8.RuneCountInString(w.Name) > 100 {
		return domain.NewAppError(domain.CodeValidation, "name must be at most 100 characters", nil)
	}
	if w.Location == "" {
		return domain.NewAppError(domain.CodeValidation, "location is required", nil)
	}
	if utf8.RuneCountInString(w.Location) > 150 {
		return domain.NewAppError(domain.CodeValidation, "location must be at most 150 characters", nil)
	}
	if w.Status != "" && !slices.Contains(domain.WarehouseStatuses, w.Status) {
		return domain.NewAppError(domain.CodeValidation, "status must be one of Available, Occupied, Reserved", nil)
	}
	if w.AreaM2.IsNegative() {
		return domain.NewAppError(domain.CodeValidation, "area must not be negative", nil)
	}
	if w.PricePerM2.IsNegative() {
		return domain.NewAppError(domain.CodeValidation, "price per m2 must not be negative", nil)
	}
	return nil
}
