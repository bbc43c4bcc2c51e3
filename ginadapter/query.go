// Package ginadapter binds PaginationParams from gin requests and writes
// paginated responses with the conventional pagination headers.
package ginadapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	paginator "github.com/rosberry/go-paginator"
)

// ErrInvalidQuery marks a query string that could not be bound at all,
// as opposed to individual values that merely fall back to defaults.
var ErrInvalidQuery = errors.New("invalid pagination query")

type queryParams struct {
	Page          int      `form:"page,default=1"`
	PerPage       int      `form:"per_page,default=20"`
	SortBy        string   `form:"sort_by"`
	SortDirection string   `form:"sort_direction"`
	Filter        []string `form:"filter"`
	Search        string   `form:"search"`
	SearchFields  string   `form:"search_fields"`
	Cursor        string   `form:"cursor"`
}

// FromContext extracts PaginationParams from the request query string.
//
// Recognized keys: page, per_page, sort_by, sort_direction (asc|desc,
// any case), filter (repeatable, "field:operator:value"), search plus
// search_fields (comma-separated; search is dropped without fields) and
// cursor (an encoded token; a malformed one is an error, not a default).
// disable_total_count is intentionally not query-controlled.
func FromContext(c *gin.Context) (paginator.PaginationParams, error) {
	var q queryParams
	if err := c.ShouldBindQuery(&q); err != nil {
		return paginator.PaginationParams{}, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}

	builder := paginator.NewBuilder().Page(q.Page).PerPage(q.PerPage)
	if q.Cursor != "" {
		builder.CursorToken(q.Cursor)
	}
	params, err := builder.Build()
	if err != nil {
		return paginator.PaginationParams{}, err
	}

	params.SortBy = q.SortBy
	if direction, ok := paginator.ParseSortDirection(q.SortDirection); ok {
		params.SortDirection = direction
	}

	for _, raw := range q.Filter {
		if filter, ok := ParseFilter(raw); ok {
			params.Filters = append(params.Filters, filter)
		}
	}

	if q.Search != "" {
		fields := splitFields(q.SearchFields)
		if len(fields) > 0 {
			search := paginator.NewSearchParams(q.Search, fields...)
			params.Search = &search
		}
	}

	return params, nil
}

func splitFields(raw string) []string {
	if raw == "" {
		return nil
	}
	segments := strings.Split(raw, ",")
	fields := make([]string, 0, len(segments))
	for _, segment := range segments {
		if trimmed := strings.TrimSpace(segment); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}
	return fields
}
