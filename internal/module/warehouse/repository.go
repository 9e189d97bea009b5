package warehouse

import (
	"context"

	"gorm.io/gorm"

	"github.com/storalia/bodega/internal/domain"
	"github.com/storalia/bodega/internal/pkg"
)

// warehouseRepository implements domain.WarehouseRepository using GORM.
type warehouseRepository struct {
	db *gorm.DB
}

// NewWarehouseRepository creates a new WarehouseRepository backed by the given GORM database.
func NewWarehouseRepository(db *gorm.DB) domain.WarehouseRepository {
	return &warehouseRepository{db: db}
}

// Create inserts a new warehouse into the database.
func (r *warehouseRepository) Create(ctx context.Context, w *domain.Warehouse) error {
	if err := r.db.WithContext(ctx).Create(w).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves a warehouse by its primary key. With ignoreActiveFilter
// false the lookup is restricted to active rows.
func (r *warehouseRepository) GetByID(ctx context.Context, id uint, ignoreActiveFilter bool) (*domain.Warehouse, error) {
	tx := r.db.WithContext(ctx)
	if !ignoreActiveFilter {
		tx = tx.Scopes(pkg.ActiveScope(domain.ActiveOnly))
	}

	var w domain.Warehouse
	if err := tx.First(&w, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &w, nil
}

// List returns a paginated, sorted, and filtered list of warehouses for the
// given active selector.
func (r *warehouseRepository) List(ctx context.Context, spec domain.QuerySpec, sel domain.ActiveSelector) (*domain.PagedResult[domain.Warehouse], error) {
	result, err := pkg.ListQuery[domain.Warehouse](ctx, r.db, domain.WarehouseListConfig, spec, sel)
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return result, nil
}

// Update saves changes to an existing warehouse.
func (r *warehouseRepository) Update(ctx context.Context, w *domain.Warehouse) error {
	if err := r.db.WithContext(ctx).Save(w).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Deactivate marks a warehouse inactive, writing the audit stamp.
func (r *warehouseRepository) Deactivate(ctx context.Context, id uint, stamp domain.AuditStamp) error {
	return pkg.Deactivate[domain.Warehouse](ctx, r.db, id, stamp)
}

// Reactivate marks a warehouse active again, clearing the audit stamp.
func (r *warehouseRepository) Reactivate(ctx context.Context, id uint) error {
	return pkg.Reactivate[domain.Warehouse](ctx, r.db, id)
}
