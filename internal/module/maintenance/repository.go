package maintenance

import (
	"context"

	"gorm.io/gorm"

	"github.com/storalia/bodega/internal/domain"
	"github.com/storalia/bodega/internal/pkg"
)

// maintenanceRepository implements domain.MaintenanceRepository using GORM.
type maintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new MaintenanceRepository backed by the given GORM database.
func NewMaintenanceRepository(db *gorm.DB) domain.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

// Create inserts a new maintenance record into the database.
func (r *maintenanceRepository) Create(ctx context.Context, m *domain.MaintenanceRecord) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves a maintenance record by its primary key. With
// ignoreActiveFilter false the lookup is restricted to active rows.
func (r *maintenanceRepository) GetByID(ctx context.Context, id uint, ignoreActiveFilter bool) (*domain.MaintenanceRecord, error) {
	tx := r.db.WithContext(ctx)
	if !ignoreActiveFilter {
		tx = tx.Scopes(pkg.ActiveScope(domain.ActiveOnly))
	}

	var m domain.MaintenanceRecord
	if err := tx.First(&m, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &m, nil
}

// List returns a paginated, sorted, and filtered list of maintenance records
// for the given active selector.
func (r *maintenanceRepository) List(ctx context.Context, spec domain.QuerySpec, sel domain.ActiveSelector) (*domain.PagedResult[domain.MaintenanceRecord], error) {
	result, err := pkg.ListQuery[domain.MaintenanceRecord](ctx, r.db, domain.MaintenanceListConfig, spec, sel)
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return result, nil
}

// Update saves changes to an existing maintenance record.
func (r *maintenanceRepository) Update(ctx context.Context, m *domain.MaintenanceRecord) error {
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Deactivate marks a maintenance record inactive, writing the audit stamp.
func (r *maintenanceRepository) Deactivate(ctx context.Context, id uint, stamp domain.AuditStamp) error {
	return pkg.Deactivate[domain.MaintenanceRecord](ctx, r.db, id, stamp)
}

// Reactivate marks a maintenance record active again, clearing the audit stamp.
func (r *maintenanceRepository) Reactivate(ctx context.Context, id uint) error {
	return pkg.Reactivate[domain.MaintenanceRecord](ctx, r.db, id)
}
