package gormadapter

import (
	"fmt"

	"gorm.io/gorm"

	paginator "github.com/rosberry/go-paginator"
)

// Paginate runs the paginated query described by p against db and wraps
// the page into the response envelope.
//
// The count query is skipped when DisableTotalCount is set; has_next then
// comes from fetching Limit()+1 rows and truncating the probe row. In
// cursor mode the next/prev tokens are derived from the boundary rows of
// the returned page.
func Paginate[T any](db *gorm.DB, p paginator.PaginationParams) (*paginator.PaginatorResponse[T], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := validateFields(p); err != nil {
		return nil, err
	}

	var total *int
	if !p.DisableTotalCount {
		var count int64
		countDB := applyPredicates(db.Session(&gorm.Session{}).Model(new(T)), p)
		if err := countDB.Count(&count).Error; err != nil {
			return nil, fmt.Errorf("count query failed: %w", err)
		}
		n := int(count)
		total = &n
	}

	var rows []T
	dataDB := db.Session(&gorm.Session{}).Model(new(T)).Scopes(Scope(p))
	if err := dataDB.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("paginated query failed: %w", err)
	}

	var hasNext bool
	if probeNeeded(p) {
		if len(rows) > p.Limit() {
			hasNext = true
			rows = rows[:p.Limit()]
		}
	}

	var meta paginator.PaginatorResponseMeta
	switch {
	case p.Cursor != nil:
		next, prev := cursorTokens(rows, p)
		meta = paginator.NewMetaWithCursors(p.Page, p.PerPage, total, hasNext, next, prev)
	case total != nil:
		meta = paginator.NewMeta(p.Page, p.PerPage, *total)
	default:
		meta = paginator.NewMetaWithoutTotal(p.Page, p.PerPage, hasNext)
	}

	return paginator.NewResponse(rows, meta), nil
}

// validateFields rejects any user-controlled field name before it is
// interpolated into a condition.
func validateFields(p paginator.PaginationParams) error {
	for _, f := range p.Filters {
		if err := paginator.ValidateFieldName(f.Field); err != nil {
			return err
		}
	}
	if p.Search != nil {
		for _, field := range p.Search.Fields {
			if err := paginator.ValidateFieldName(field); err != nil {
				return err
			}
		}
	}
	if p.SortBy != "" {
		if err := paginator.ValidateFieldName(p.SortBy); err != nil {
			return err
		}
	}
	if p.Cursor != nil {
		if err := paginator.ValidateFieldName(p.Cursor.Field); err != nil {
			return err
		}
	}
	return nil
}

// cursorTokens derives the next and prev tokens from the last and first
// rows of the page. Rows whose cursor field cannot be resolved yield no
// token rather than an error.
func cursorTokens[T any](rows []T, p paginator.PaginationParams) (next, prev string) {
	if len(rows) == 0 || p.Cursor == nil {
		return "", ""
	}
	field := p.Cursor.Field

	if value, ok := rowCursorValue(rows[len(rows)-1], field); ok {
		if token, err := paginator.NewCursor(field, value, paginator.CursorAfter).Encode(); err == nil {
			next = token
		}
	}
	if value, ok := rowCursorValue(rows[0], field); ok {
		if token, err := paginator.NewCursor(field, value, paginator.CursorBefore).Encode(); err == nil {
			prev = token
		}
	}
	return next, prev
}
