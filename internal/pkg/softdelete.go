package pkg

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/storalia/bodega/internal/domain"
)

// Deactivate marks the row with the given id inactive and writes its audit
// stamp in a single conditional UPDATE scoped to currently-active rows.
//
// The WHERE is_active guard is both the lookup restriction and the
// concurrency discipline: of two concurrent deactivations of the same id,
// exactly one matches the row; the other (like any call on a missing or
// already-inactive id) gets ErrAlreadyInactive. Deactivation is deliberately
// not idempotent so stale double-submits surface as errors.
func Deactivate[T any](ctx context.Context, db *gorm.DB, id uint, stamp domain.AuditStamp) error {
	res := db.WithContext(ctx).Model(new(T)).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]any{
			"is_active":      false,
			"deactivated_at": stamp.At,
			"deactivated_by": stamp.By,
		})
	if res.Error != nil {
		return MapDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrAlreadyInactive
	}
	return nil
}

// Reactivate marks the row active again and clears the audit stamp. The
// lookup ignores the active flag so inactive rows are found; a missing id is
// ErrNotFound. Reactivating an already-active row re-clears the (already
// null) stamp and succeeds. Read and write share one transaction so a
// persistence failure leaves the stamp untouched.
func Reactivate[T any](ctx context.Context, db *gorm.DB, id uint) error {
	return WithTx(ctx, db, func(tx *gorm.DB) error {
		var entity T
		if err := tx.First(&entity, id).Error; err != nil {
			return MapDBError(err)
		}
		res := tx.Model(new(T)).
			Where("id = ?", id).
			Updates(map[string]any{
				"is_active":      true,
				"deactivated_at": nil,
				"deactivated_by": nil,
			})
		if res.Error != nil {
			return MapDBError(res.Error)
		}
		return nil
	})
}

// MapDBError converts GORM errors to domain errors. Unrecognized persistence
// failures keep their cause wrapped and are never retried here.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, "already exists", err)
	}
	return domain.NewAppError(domain.CodePersistence, "database error", err)
}

// isDuplicateKeyError detects unique constraint violations by examining the
// error message. This is needed because not all GORM dialectors translate
// driver-level errors to gorm.ErrDuplicatedKey (e.g. the pure-Go SQLite driver).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
