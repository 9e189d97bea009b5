package user

import (
	"context"

	"gorm.io/gorm"

	"github.com/storalia/bodega/internal/domain"
	"github.com/storalia/bodega/internal/pkg"
)

// userRepository implements domain.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository backed by the given GORM database.
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database.
func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves a user by its primary key. With ignoreActiveFilter false
// the lookup is restricted to active rows.
func (r *userRepository) GetByID(ctx context.Context, id uint, ignoreActiveFilter bool) (*domain.User, error) {
	tx := r.db.WithContext(ctx)
	if !ignoreActiveFilter {
		tx = tx.Scopes(pkg.ActiveScope(domain.ActiveOnly))
	}

	var u domain.User
	if err := tx.First(&u, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &u, nil
}

// GetByEmail retrieves an active user by email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Scopes(pkg.ActiveScope(domain.ActiveOnly)).
		Where("email = ?", email).
		First(&u).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &u, nil
}

// List returns a paginated, sorted, and filtered list of users for the given
// active selector.
func (r *userRepository) List(ctx context.Context, spec domain.QuerySpec, sel domain.ActiveSelector) (*domain.PagedResult[domain.User], error) {
	result, err := pkg.ListQuery[domain.User](ctx, r.db, domain.UserListConfig, spec, sel)
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return result, nil
}

// Update saves changes to an existing user.
func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Deactivate marks a user inactive, writing the audit stamp.
func (r *userRepository) Deactivate(ctx context.Context, id uint, stamp domain.AuditStamp) error {
	return pkg.Deactivate[domain.User](ctx, r.db, id, stamp)
}

// Reactivate marks a user active again, clearing the audit stamp.
func (r *userRepository) Reactivate(ctx context.Context, id uint) error {
	return pkg.Reactivate[domain.User](ctx, r.db, id)
}
