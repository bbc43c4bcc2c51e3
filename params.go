package paginator

import (
	"fmt"
	"strings"
)

// SortDirection orders the result set. The zero value means "unset";
// consumers treat unset as ascending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection maps "asc"/"desc" (any case) to a SortDirection.
// ok is false for anything else.
func ParseSortDirection(s string) (SortDirection, bool) {
	switch strings.ToLower(s) {
	case "asc":
		return SortAsc, true
	case "desc":
		return SortDesc, true
	default:
		return "", false
	}
}

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MinPerPage     = 1
	MaxPerPage     = 100
)

// PaginationParams is the aggregate request of a list endpoint: page
// addressing, sort, filters, search and an optional cursor. Constructors,
// the builder and the request extractor all clamp Page and PerPage; code
// that mutates the fields directly should call Validate before use.
type PaginationParams struct {
	Page              int            `json:"page"`
	PerPage           int            `json:"per_page"`
	SortBy            string         `json:"sort_by,omitempty"`
	SortDirection     SortDirection  `json:"sort_direction,omitempty"`
	Filters           []Filter       `json:"filters,omitempty"`
	Search            *SearchParams  `json:"search,omitempty"`
	DisableTotalCount bool           `json:"disable_total_count,omitempty"`
	Cursor            *Cursor        `json:"cursor,omitempty"`
}

// NewPaginationParams clamps page to >= 1 and perPage to [1, 100].
func NewPaginationParams(page, perPage int) PaginationParams {
	return PaginationParams{
		Page:    clampPage(page),
		PerPage: clampPerPage(perPage),
	}
}

// DefaultParams returns page 1 with the default page size.
func DefaultParams() PaginationParams {
	return PaginationParams{Page: DefaultPage, PerPage: DefaultPerPage}
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func clampPerPage(perPage int) int {
	if perPage < MinPerPage {
		return MinPerPage
	}
	if perPage > MaxPerPage {
		return MaxPerPage
	}
	return perPage
}

// Validate checks the clamping invariant for params that were mutated
// directly instead of built through a clamping path.
func (p PaginationParams) Validate() error {
	if p.Page < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PerPage < MinPerPage || p.PerPage > MaxPerPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPerPage, p.PerPage)
	}
	return nil
}

// Offset is the number of rows to skip in offset mode.
func (p PaginationParams) Offset() int { return (p.Page - 1) * p.PerPage }

// Limit is the page size.
func (p PaginationParams) Limit() int { return p.PerPage }

// CursorOperator resolves the comparison operator for the attached
// cursor, or "" when no cursor is set.
func (p PaginationParams) CursorOperator() string {
	if p.Cursor == nil {
		return ""
	}
	return p.Cursor.CompareOperator(p.SortDirection)
}

// SQLWhere joins every filter fragment and the search fragment with
// " AND ", filters first in insertion order. ok is false when there is
// nothing to render, so callers can tell "no predicate" from an empty
// string.
func (p PaginationParams) SQLWhere() (string, bool) { return p.WhereClause(DialectSQL) }

func (p PaginationParams) SurrealQLWhere() (string, bool) { return p.WhereClause(DialectSurrealQL) }

func (p PaginationParams) WhereClause(d Dialect) (string, bool) {
	conditions := make([]string, 0, len(p.Filters)+1)

	for _, f := range p.Filters {
		conditions = append(conditions, f.Where(d))
	}

	if p.Search != nil {
		conditions = append(conditions, p.Search.Where(d))
	}

	if len(conditions) == 0 {
		return "", false
	}
	return strings.Join(conditions, " AND "), true
}
