package paginator

import "errors"

var (
	ErrInvalidPage     = errors.New("invalid page: must be greater than or equal to 1")
	ErrInvalidPerPage  = errors.New("invalid per_page: must be between 1 and 100")
	ErrInvalidCursor   = errors.New("invalid cursor")
	ErrSerialization   = errors.New("serialization error")
	ErrUnsafeFieldName = errors.New("unsafe field name")
)
