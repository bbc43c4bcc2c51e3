package ginadapter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	paginator "github.com/rosberry/go-paginator"
)

// JSON writes the paginated envelope as the response body and mirrors
// the metadata into X-Total-Count, X-Total-Pages, X-Current-Page and
// X-Per-Page. The total headers are omitted when the count is unknown.
func JSON[T any](c *gin.Context, code int, resp *paginator.PaginatorResponse[T]) {
	writeMetaHeaders(c, resp.Meta)
	c.JSON(code, resp)
}

func writeMetaHeaders(c *gin.Context, meta paginator.PaginatorResponseMeta) {
	if meta.Total != nil {
		c.Header("X-Total-Count", strconv.Itoa(*meta.Total))
	}
	if meta.TotalPages != nil {
		c.Header("X-Total-Pages", strconv.Itoa(*meta.TotalPages))
	}
	c.Header("X-Current-Page", strconv.Itoa(meta.Page))
	c.Header("X-Per-Page", strconv.Itoa(meta.PerPage))
}

// LinkHeader builds an RFC 8288 Link header value with first, prev, next
// and last relations. prev/next follow has_prev/has_next and last is
// present only when the page count is known.
func LinkHeader(baseURL string, params paginator.PaginationParams, meta paginator.PaginatorResponseMeta) string {
	links := make([]string, 0, 4)

	links = append(links, fmt.Sprintf(`<%s?page=1&per_page=%d>; rel="first"`, baseURL, params.PerPage))

	if meta.HasPrev {
		links = append(links, fmt.Sprintf(`<%s?page=%d&per_page=%d>; rel="prev"`, baseURL, params.Page-1, params.PerPage))
	}

	if meta.HasNext {
		links = append(links, fmt.Sprintf(`<%s?page=%d&per_page=%d>; rel="next"`, baseURL, params.Page+1, params.PerPage))
	}

	if meta.TotalPages != nil {
		links = append(links, fmt.Sprintf(`<%s?page=%d&per_page=%d>; rel="last"`, baseURL, *meta.TotalPages, params.PerPage))
	}

	return strings.Join(links, ", ")
}
