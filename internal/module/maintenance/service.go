package maintenance

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/storalia/bodega/internal/domain"
	"github.com/storalia/bodega/internal/pkg"
)

// maintenanceService implements domain.MaintenanceService. Records must point
// at an existing active warehouse.
type maintenanceService struct {
	repo       domain.MaintenanceRepository
	warehouses domain.WarehouseRepository
}

// NewMaintenanceService creates a new MaintenanceService with the given repositories.
func NewMaintenanceService(repo domain.MaintenanceRepository, warehouses domain.WarehouseRepository) domain.MaintenanceService {
	return &maintenanceService{repo: repo, warehouses: warehouses}
}

// CreateRecord validates input, checks the referenced warehouse, and persists
// a new active maintenance record.
func (s *maintenanceService) CreateRecord(ctx context.Context, m *domain.MaintenanceRecord) (*domain.MaintenanceRecord, error) {
	normalize(m)
	if err := validateRecord(m); err != nil {
		return nil, err
	}
	if err := s.checkWarehouse(ctx, m.WarehouseID); err != nil {
		return nil, err
	}

	m.MarkActive()

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// GetRecord retrieves a maintenance record by ID regardless of lifecycle state.
func (s *maintenanceService) GetRecord(ctx context.Context, id uint) (*domain.MaintenanceRecord, error) {
	return s.repo.GetByID(ctx, id, true)
}

// ListRecords returns a paginated list of maintenance records.
func (s *maintenanceService) ListRecords(ctx context.Context, spec domain.QuerySpec, sel domain.ActiveSelector) (*domain.PagedResult[domain.MaintenanceRecord], error) {
	return s.repo.List(ctx, spec, sel)
}

// UpdateRecord loads the existing record (active or not), applies changes,
// and persists them.
func (s *maintenanceService) UpdateRecord(ctx context.Context, id uint, m *domain.MaintenanceRecord) (*domain.MaintenanceRecord, error) {
	normalize(m)
	if err := validateRecord(m); err != nil {
		return nil, err
	}
	if err := s.checkWarehouse(ctx, m.WarehouseID); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id, true)
	if err != nil {
		return nil, err
	}

	existing.WarehouseID = m.WarehouseID
	existing.Date = m.Date
	existing.Type = m.Type
	existing.Cost = m.Cost
	existing.Company = m.Company
	existing.AdminComments = m.AdminComments

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeactivateRecord marks a maintenance record inactive, stamping the resolved actor.
func (s *maintenanceService) DeactivateRecord(ctx context.Context, id uint, actor domain.Identity) error {
	stamp := domain.AuditStamp{At: time.Now().UTC(), By: pkg.ResolveActor(actor)}
	return s.repo.Deactivate(ctx, id, stamp)
}

// ReactivateRecord marks a maintenance record active again.
func (s *maintenanceService) ReactivateRecord(ctx context.Context, id uint) error {
	return s.repo.Reactivate(ctx, id)
}

func (s *maintenanceService) checkWarehouse(ctx context.Context, warehouseID uint) error {
	if _, err := s.warehouses.GetByID(ctx, warehouseID, false); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewAppError(domain.CodeValidation, "warehouse not found or inactive", err)
		}
		return err
	}
	return nil
}

func normalize(m *domain.MaintenanceRecord) {
	m.Type = strings.TrimSpace(m.Type)
	m.Company = strings.TrimSpace(m.Company)
	m.AdminComments = strings.TrimSpace(m.AdminComments)
	m.Date = m.Date.Truncate(24 * time.Hour)
}

func validateRecord(m *domain.MaintenanceRecord) error {
	if m.WarehouseID == 0 {
		return domain.NewAppError(domain.CodeValidation, "warehouse_id is required", nil)
	}
	if m.Date.IsZero() {
		return domain.NewAppError(domain.CodeValidation, "date is required", nil)
	}
	if m.Type == "" {
		return domain.NewAppError(domain.CodeValidation, "type is required", nil)
	}
	if utf8.RuneCountInString(m.Type) > 50 {
		return domain.NewAppError(domain.CodeValidation, "type must be at most 50 characters", nil)
	}
	if m.Company == "" {
		return domain.NewAppError(domain.CodeValidation, "company is required", nil)
	}
	if utf8.RuneCountInString(m.Company) > 100 {
		return domain.NewAppError(domain.CodeValidation, "company must be at most 100 characters", nil)
	}
	if m.Cost.IsNegative() {
		return domain.NewAppError(domain.CodeValidation, "cost must not be negative", nil)
	}
	return nil
}
