// Package gormadapter executes PaginationParams against a gorm query.
// Predicates are applied as parameter-bound conditions, never through the
// textual renderers, so values are safe by construction; field names are
// still interpolated and must pass ValidateFieldName.
package gormadapter

import (
	"strings"

	"gorm.io/gorm"

	paginator "github.com/rosberry/go-paginator"
)

// Scope converts the whole request into a gorm scope: predicates, order,
// and either offset/limit or the cursor probe window.
func Scope(p paginator.PaginationParams) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = applyPredicates(db, p)
		if p.Cursor != nil {
			db = db.Where(p.Cursor.Field+" "+p.CursorOperator()+" ?", p.Cursor.Value.Value())
		}
		db = applyOrder(db, p)

		if probeNeeded(p) {
			return db.Limit(p.Limit() + 1)
		}
		return db.Limit(p.Limit()).Offset(p.Offset())
	}
}

// probeNeeded reports whether has_next must come from fetching one extra
// row instead of from the total count.
func probeNeeded(p paginator.PaginationParams) bool {
	return p.Cursor != nil || p.DisableTotalCount
}

// applyPredicates adds the filter and search conditions. The cursor
// condition is applied by Scope only, so a total count covers the whole
// filtered set rather than the rows past the cursor.
func applyPredicates(db *gorm.DB, p paginator.PaginationParams) *gorm.DB {
	for _, f := range p.Filters {
		db = applyFilter(db, f)
	}
	if p.Search != nil && len(p.Search.Fields) > 0 {
		db = applySearch(db, *p.Search)
	}
	return db
}

func applyFilter(db *gorm.DB, f paginator.Filter) *gorm.DB {
	switch f.Operator {
	case paginator.OpEq:
		return db.Where(f.Field+" = ?", f.Value.Value())
	case paginator.OpNe:
		return db.Where(f.Field+" != ?", f.Value.Value())
	case paginator.OpGt:
		return db.Where(f.Field+" > ?", f.Value.Value())
	case paginator.OpLt:
		return db.Where(f.Field+" < ?", f.Value.Value())
	case paginator.OpGte:
		return db.Where(f.Field+" >= ?", f.Value.Value())
	case paginator.OpLte:
		return db.Where(f.Field+" <= ?", f.Value.Value())
	case paginator.OpLike:
		return db.Where(f.Field+" LIKE ?", f.Value.Value())
	case paginator.OpILike:
		return db.Where(f.Field+" ILIKE ?", f.Value.Value())
	case paginator.OpIn:
		return db.Where(f.Field+" IN ?", f.Value.Value())
	case paginator.OpNotIn:
		return db.Where(f.Field+" NOT IN ?", f.Value.Value())
	case paginator.OpIsNull:
		return db.Where(f.Field + " IS NULL")
	case paginator.OpIsNotNull:
		return db.Where(f.Field + " IS NOT NULL")
	case paginator.OpBetween:
		if bounds, ok := f.Value.Value().([]any); ok && len(bounds) == 2 {
			return db.Where(f.Field+" BETWEEN ? AND ?", bounds[0], bounds[1])
		}
		return db.Where(f.Field+" = ?", f.Value.Value())
	case paginator.OpContains:
		return db.Where(f.Field+" @> ?", f.Value.Value())
	default:
		return db.Where(f.Field+" = ?", f.Value.Value())
	}
}

func applySearch(db *gorm.DB, s paginator.SearchParams) *gorm.DB {
	operator := "ILIKE"
	if s.CaseSensitive {
		operator = "LIKE"
	}

	pattern := s.Query
	if !s.ExactMatch {
		pattern = "%" + s.Query + "%"
	}

	conditions := make([]string, 0, len(s.Fields))
	args := make([]any, 0, len(s.Fields))
	for _, field := range s.Fields {
		conditions = append(conditions, field+" "+operator+" ?")
		args = append(args, pattern)
	}

	return db.Where("("+strings.Join(conditions, " OR ")+")", args...)
}

func applyOrder(db *gorm.DB, p paginator.PaginationParams) *gorm.DB {
	if p.SortBy == "" {
		return db
	}
	direction := "ASC"
	if p.SortDirection == paginator.SortDesc {
		direction = "DESC"
	}
	return db.Order(p.SortBy + " " + direction)
}
