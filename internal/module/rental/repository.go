package rental

import (
	"context"

	"gorm.io/gorm"

	"github.com/storalia/bodega/internal/domain"
	"github.com/storalia/bodega/internal/pkg"
)

// rentalRepository implements domain.RentalRepository using GORM.
type rentalRepository struct {
	db *gorm.DB
}

// NewRentalRepository creates a new RentalRepository backed by the given GORM database.
func NewRentalRepository(db *gorm.DB) domain.RentalRepository {
	return &rentalRepository{db: db}
}

// Create inserts a new rental into the database.
func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	if err := r.db.WithContext(ctx).Create(rt).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves a rental by its primary key. With ignoreActiveFilter
// false the lookup is restricted to active rows.
func (r *rentalRepository) GetByID(ctx context.Context, id uint, ignoreActiveFilter bool) (*domain.Rental, error) {
	tx := r.db.WithContext(ctx)
	if !ignoreActiveFilter {
		tx = tx.Scopes(pkg.ActiveScope(domain.ActiveOnly))
	}

	var rt domain.Rental
	if err := tx.First(&rt, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &rt, nil
}

// List returns a paginated, sorted, and filtered list of rentals for the
// given active selector.
func (r *rentalRepository) List(ctx context.Context, spec domain.QuerySpec, sel domain.ActiveSelector) (*domain.PagedResult[domain.Rental], error) {
	result, err := pkg.ListQuery[domain.Rental](ctx, r.db, domain.RentalListConfig, spec, sel)
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return result, nil
}

// Update saves changes to an existing rental.
func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	if err := r.db.WithContext(ctx).Save(rt).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Deactivate marks a rental inactive, writing the audit stamp.
func (r *rentalRepository) Deactivate(ctx context.Context, id uint, stamp domain.AuditStamp) error {
	return pkg.Deactivate[domain.Rental](ctx, r.db, id, stamp)
}

// Reactivate marks a rental active again, clearing the audit stamp.
func (r *rentalRepository) Reactivate(ctx context.Context, id uint) error {
	return pkg.Reactivate[domain.Rental](ctx, r.db, id)
}
