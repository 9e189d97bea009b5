package client

import (
	"context"

	"gorm.io/gorm"

	"github.com/storalia/bodega/internal/domain"
	"github.com/storalia/bodega/internal/pkg"
)

// clientRepository implements domain.ClientRepository using GORM.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new ClientRepository backed by the given GORM database.
func NewClientRepository(db *gorm.DB) domain.ClientRepository {
	return &clientRepository{db: db}
}

// Create inserts a new client into the database.
func (r *clientRepository) Create(ctx context.Context, cl *domain.Client) error {
	if err := r.db.WithContext(ctx).Create(cl).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves a client by its primary key. With ignoreActiveFilter
// false the lookup is restricted to active rows.
func (r *clientRepository) GetByID(ctx context.Context, id uint, ignoreActiveFilter bool) (*domain.Client, error) {
	tx := r.db.WithContext(ctx)
	if !ignoreActiveFilter {
		tx = tx.Scopes(pkg.ActiveScope(domain.ActiveOnly))
	}

	var cl domain.Client
	if err := tx.First(&cl, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &cl, nil
}

// List returns a paginated, sorted, and filtered list of clients for the
// given active selector.
func (r *clientRepository) List(ctx context.Context, spec domain.QuerySpec, sel domain.ActiveSelector) (*domain.PagedResult[domain.Client], error) {
	result, err := pkg.ListQuery[domain.Client](ctx, r.db, domain.ClientListConfig, spec, sel)
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return result, nil
}

// Update saves changes to an existing client.
func (r *clientRepository) Update(ctx context.Context, cl *domain.Client) error {
	if err := r.db.WithContext(ctx).Save(cl).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Deactivate marks a client inactive, writing the audit stamp.
func (r *clientRepository) Deactivate(ctx context.Context, id uint, stamp domain.AuditStamp) error {
	return pkg.Deactivate[domain.Client](ctx, r.db, id, stamp)
}

// Reactivate marks a client active again, clearing the audit stamp.
func (r *clientRepository) Reactivate(ctx context.Context, id uint) error {
	return pkg.Reactivate[domain.Client](ctx, r.db, id)
}
