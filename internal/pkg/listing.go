package pkg

import (
	"context"
	"regexp"
	"slices"
	"strings"

	"gorm.io/gorm"

	"github.com/storalia/bodega/internal/domain"
)

// validFieldName matches only alphanumeric characters and underscores.
var validFieldName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ListQuery runs a listing request against the given database: it normalizes
// the spec, applies the active selector, search and filters, counts the
// matches, clamps the page against the computed total, and returns the sorted
// slice.
//
// Structurally valid input never fails: out-of-range pages, unknown sort keys
// and disallowed page sizes are normalized, not rejected. A page beyond the
// last one returns the last valid page's items rather than an empty slice.
func ListQuery[T any](ctx context.Context, db *gorm.DB, cfg domain.ListConfig, spec domain.QuerySpec, sel domain.ActiveSelector) (*domain.PagedResult[T], error) {
	spec = spec.Normalized()

	base := db.WithContext(ctx).Model(new(T)).Scopes(
		ActiveScope(sel),
		SearchScope(spec.Search, cfg.SearchColumns),
		FilterScope(spec.Filters, cfg),
	)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, err
	}

	page := domain.ClampPage(spec.Page, domain.TotalPages(total, spec.PageSize))

	var items []T
	if err := base.Scopes(
		SortScope(spec, cfg),
		PaginateScope(page, spec.PageSize),
	).Find(&items).Error; err != nil {
		return nil, err
	}

	return domain.NewPagedResult(items, total, page, spec.PageSize), nil
}

// ActiveScope returns a GORM scope restricting rows per the selector.
func ActiveScope(sel domain.ActiveSelector) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch sel {
		case domain.ActiveOnly:
			return db.Where("is_active = ?", true)
		case domain.InactiveOnly:
			return db.Where("is_active = ?", false)
		default:
			return db
		}
	}
}

// SearchScope returns a GORM scope applying the free-text term as a
// case-insensitive substring match OR-ed across the given columns.
// Empty or whitespace-only terms are treated as absent.
func SearchScope(term string, columns []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" {
			return db
		}

		pattern := "%" + strings.ToLower(term) + "%"
		conds := make([]string, 0, len(columns))
		args := make([]any, 0, len(columns))
		for _, col := range columns {
			if !validFieldName.MatchString(col) {
				continue
			}
			// LOWER on both sides keeps the match case-insensitive on
			// dialects where LIKE is case-sensitive (postgres).
			conds = append(conds, "LOWER("+col+") LIKE ?")
			args = append(args, pattern)
		}
		if len(conds) == 0 {
			return db
		}
		return db.Where(strings.Join(conds, " OR "), args...)
	}
}

// FilterScope returns a GORM scope applying each filter entry AND-ed
// together: exact match for columns with enum/status semantics, substring
// match for free-text columns. Keys outside either whitelist are silently
// ignored, as are empty values.
func FilterScope(filters map[string]string, cfg domain.ListConfig) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for key, value := range filters {
			value = strings.TrimSpace(value)
			if value == "" || !validFieldName.MatchString(key) {
				continue
			}
			switch {
			case slices.Contains(cfg.ExactFilterColumns, key):
				db = db.Where(key+" = ?", value)
			case slices.Contains(cfg.LikeFilterColumns, key):
				db = db.Where("LOWER("+key+") LIKE ?", "%"+strings.ToLower(value)+"%")
			}
		}
		return db
	}
}

// SortScope returns a GORM scope applying ORDER BY from the spec's sort key,
// resolved against the whitelist (unknown keys fall back to the default), with
// the configured tie-break column appended so paging across requests stays
// deterministic when the primary sort column has duplicates.
func SortScope(spec domain.QuerySpec, cfg domain.ListConfig) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		col := cfg.SortColumn(spec.SortKey)
		if col == "" || !validFieldName.MatchString(col) {
			return db
		}

		dir := " ASC"
		if spec.SortDesc {
			dir = " DESC"
		}
		db = db.Order(col + dir)

		tie := cfg.TieBreakColumn
		if tie != "" && tie != col && validFieldName.MatchString(tie) {
			db = db.Order(tie + " ASC")
		}
		return db
	}
}

// PaginateScope returns a GORM scope applying LIMIT and OFFSET.
func PaginateScope(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}
