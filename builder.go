package paginator

// Builder assembles a PaginationParams fluently. Sub-structures can be
// built separately with FilterBuilder, SearchBuilder and CursorBuilder
// and merged in; there is no parent threading between builders.
type Builder struct {
	params PaginationParams
	err    error
}

func NewBuilder() *Builder {
	return &Builder{params: DefaultParams()}
}

func (b *Builder) Page(page int) *Builder {
	b.params.Page = clampPage(page)
	return b
}

func (b *Builder) PerPage(perPage int) *Builder {
	b.params.PerPage = clampPerPage(perPage)
	return b
}

func (b *Builder) SortBy(field string) *Builder {
	b.params.SortBy = field
	return b
}

func (b *Builder) SortAsc(field string) *Builder {
	b.params.SortBy = field
	b.params.SortDirection = SortAsc
	return b
}

func (b *Builder) SortDesc(field string) *Builder {
	b.params.SortBy = field
	b.params.SortDirection = SortDesc
	return b
}

func (b *Builder) Filter(filters ...Filter) *Builder {
	b.params.Filters = append(b.params.Filters, filters...)
	return b
}

func (b *Builder) Search(search SearchParams) *Builder {
	b.params.Search = &search
	return b
}

func (b *Builder) Cursor(cursor Cursor) *Builder {
	b.params.Cursor = &cursor
	return b
}

// CursorToken attaches a cursor from its encoded form. A decode failure
// is carried and surfaced by Build.
func (b *Builder) CursorToken(encoded string) *Builder {
	cursor, err := DecodeCursor(encoded)
	if err != nil {
		b.err = err
		return b
	}
	b.params.Cursor = &cursor
	return b
}

func (b *Builder) DisableTotalCount() *Builder {
	b.params.DisableTotalCount = true
	return b
}

func (b *Builder) Build() (PaginationParams, error) {
	if b.err != nil {
		return PaginationParams{}, b.err
	}
	params := b.params
	params.Page = clampPage(params.Page)
	params.PerPage = clampPerPage(params.PerPage)
	return params, nil
}

// FilterBuilder collects filters one predicate at a time.
type FilterBuilder struct {
	filters []Filter
}

func NewFilterBuilder() *FilterBuilder {
	return &FilterBuilder{}
}

func (fb *FilterBuilder) push(field string, op FilterOperator, value FilterValue) *FilterBuilder {
	fb.filters = append(fb.filters, NewFilter(field, op, value))
	return fb
}

func (fb *FilterBuilder) Eq(field string, value FilterValue) *FilterBuilder {
	return fb.push(field, OpEq, value)
}

func (fb *FilterBuilder) Ne(field string, value FilterValue) *FilterBuilder {
	return fb.push(field, OpNe, value)
}

func (fb *FilterBuilder) Gt(field string, value FilterValue) *FilterBuilder {
	return fb.push(field, OpGt, value)
}

func (fb *FilterBuilder) Lt(field string, value FilterValue) *FilterBuilder {
	return fb.push(field, OpLt, value)
}

func (fb *FilterBuilder) Gte(field string, value FilterValue) *FilterBuilder {
	return fb.push(field, OpGte, value)
}

func (fb *FilterBuilder) Lte(field string, value FilterValue) *FilterBuilder {
	return fb.push(field, OpLte, value)
}

func (fb *FilterBuilder) Like(field, pattern string) *FilterBuilder {
	return fb.push(field, OpLike, StringValue(pattern))
}

func (fb *FilterBuilder) ILike(field, pattern string) *FilterBuilder {
	return fb.push(field, OpILike, StringValue(pattern))
}

func (fb *FilterBuilder) In(field string, values ...FilterValue) *FilterBuilder {
	return fb.push(field, OpIn, ArrayValue(values...))
}

func (fb *FilterBuilder) NotIn(field string, values ...FilterValue) *FilterBuilder {
	return fb.push(field, OpNotIn, ArrayValue(values...))
}

func (fb *FilterBuilder) Between(field string, lo, hi FilterValue) *FilterBuilder {
	return fb.push(field, OpBetween, ArrayValue(lo, hi))
}

func (fb *FilterBuilder) IsNull(field string) *FilterBuilder {
	return fb.push(field, OpIsNull, NullValue())
}

func (fb *FilterBuilder) IsNotNull(field string) *FilterBuilder {
	return fb.push(field, OpIsNotNull, NullValue())
}

func (fb *FilterBuilder) Contains(field string, value FilterValue) *FilterBuilder {
	return fb.push(field, OpContains, value)
}

func (fb *FilterBuilder) Build() []Filter {
	return fb.filters
}

// Params wraps the collected filters in otherwise-default params.
func (fb *FilterBuilder) Params() PaginationParams {
	params := DefaultParams()
	params.Filters = fb.filters
	return params
}

// SearchBuilder assembles a SearchParams.
type SearchBuilder struct {
	query         string
	fields        []string
	exact         bool
	caseSensitive bool
}

func NewSearchBuilder() *SearchBuilder {
	return &SearchBuilder{}
}

func (sb *SearchBuilder) Query(query string) *SearchBuilder {
	sb.query = query
	return sb
}

func (sb *SearchBuilder) Fields(fields ...string) *SearchBuilder {
	sb.fields = fields
	return sb
}

func (sb *SearchBuilder) Exact(exact bool) *SearchBuilder {
	sb.exact = exact
	return sb
}

func (sb *SearchBuilder) CaseSensitive(sensitive bool) *SearchBuilder {
	sb.caseSensitive = sensitive
	return sb
}

// Build returns nil when no query was set.
func (sb *SearchBuilder) Build() *SearchParams {
	if sb.query == "" {
		return nil
	}
	search := NewSearchParams(sb.query, sb.fields...).
		WithExactMatch(sb.exact).
		WithCaseSensitive(sb.caseSensitive)
	return &search
}

func (sb *SearchBuilder) Params() PaginationParams {
	params := DefaultParams()
	params.Search = sb.Build()
	return params
}

// CursorBuilder assembles a Cursor, either from parts or from an
// encoded token.
type CursorBuilder struct {
	cursor *Cursor
	err    error
}

func NewCursorBuilder() *CursorBuilder {
	return &CursorBuilder{}
}

func (cb *CursorBuilder) After(field string, value CursorValue) *CursorBuilder {
	c := NewCursor(field, value, CursorAfter)
	cb.cursor = &c
	return cb
}

func (cb *CursorBuilder) Before(field string, value CursorValue) *CursorBuilder {
	c := NewCursor(field, value, CursorBefore)
	cb.cursor = &c
	return cb
}

func (cb *CursorBuilder) FromToken(encoded string) *CursorBuilder {
	cursor, err := DecodeCursor(encoded)
	if err != nil {
		cb.err = err
		return cb
	}
	cb.cursor = &cursor
	return cb
}

func (cb *CursorBuilder) Build() (*Cursor, error) {
	if cb.err != nil {
		return nil, cb.err
	}
	return cb.cursor, nil
}

func (cb *CursorBuilder) Params() (PaginationParams, error) {
	cursor, err := cb.Build()
	if err != nil {
		return PaginationParams{}, err
	}
	params := DefaultParams()
	params.Cursor = cursor
	return params, nil
}
