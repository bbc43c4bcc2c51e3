package paginator

// PaginatorResponseMeta is the pagination metadata attached to a page of
// results. Absent optional fields are omitted from JSON, never emitted
// as null.
type PaginatorResponseMeta struct {
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	Total      *int   `json:"total,omitempty"`
	TotalPages *int   `json:"total_pages,omitempty"`
	HasNext    bool   `json:"has_next"`
	HasPrev    bool   `json:"has_prev"`
	NextCursor string `json:"next_cursor,omitempty"`
	PrevCursor string `json:"prev_cursor,omitempty"`
}

// NewMeta builds metadata for total-counted offset pagination.
// total_pages is ceil(total/perPage); a total of 0 yields 0 pages and
// has_next false.
func NewMeta(page, perPage, total int) PaginatorResponseMeta {
	page = clampPage(page)
	perPage = clampPerPage(perPage)
	totalPages := ceilDiv(total, perPage)
	return PaginatorResponseMeta{
		Page:       page,
		PerPage:    perPage,
		Total:      &total,
		TotalPages: &totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// NewMetaWithoutTotal builds metadata when the count query was skipped.
// hasNext is supplied by the caller, typically from a fetch of
// perPage+1 rows.
func NewMetaWithoutTotal(page, perPage int, hasNext bool) PaginatorResponseMeta {
	return PaginatorResponseMeta{
		Page:    clampPage(page),
		PerPage: clampPerPage(perPage),
		HasNext: hasNext,
		HasPrev: clampPage(page) > 1,
	}
}

// NewMetaWithCursors builds metadata for cursor pagination. has_prev is
// true when either the page counter says so or a prev cursor exists;
// cursor pagination cannot learn "page > 1" from the counter alone.
func NewMetaWithCursors(page, perPage int, total *int, hasNext bool, nextCursor, prevCursor string) PaginatorResponseMeta {
	page = clampPage(page)
	perPage = clampPerPage(perPage)

	var totalPages *int
	if total != nil {
		tp := ceilDiv(*total, perPage)
		totalPages = &tp
	}

	return PaginatorResponseMeta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    hasNext,
		HasPrev:    page > 1 || prevCursor != "",
		NextCursor: nextCursor,
		PrevCursor: prevCursor,
	}
}

func ceilDiv(total, perPage int) int {
	if total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// PaginatorResponse is the data + meta envelope returned to clients.
type PaginatorResponse[T any] struct {
	Data []T                   `json:"data"`
	Meta PaginatorResponseMeta `json:"meta"`
}

func NewResponse[T any](data []T, meta PaginatorResponseMeta) *PaginatorResponse[T] {
	if data == nil {
		data = []T{}
	}
	return &PaginatorResponse[T]{Data: data, Meta: meta}
}
