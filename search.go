package paginator

import "strings"

// SearchParams describes a free-text search across one or more fields.
// An empty Fields slice renders a vacuous "()" group; callers that branch
// on search presence must treat it as absent instead of rendering it.
type SearchParams struct {
	Query         string   `json:"query"`
	Fields        []string `json:"fields"`
	CaseSensitive bool     `json:"case_sensitive"`
	ExactMatch    bool     `json:"exact_match"`
}

func NewSearchParams(query string, fields ...string) SearchParams {
	return SearchParams{Query: query, Fields: fields}
}

func (s SearchParams) WithCaseSensitive(sensitive bool) SearchParams {
	s.CaseSensitive = sensitive
	return s
}

func (s SearchParams) WithExactMatch(exact bool) SearchParams {
	s.ExactMatch = exact
	return s
}

// SQLWhere builds an OR-joined, parenthesized group of per-field
// predicates. Case-insensitive matching emits ILIKE; like the Filter
// renderer this assumes a PostgreSQL-family engine.
func (s SearchParams) SQLWhere() string { return s.Where(DialectSQL) }

func (s SearchParams) SurrealQLWhere() string { return s.Where(DialectSurrealQL) }

func (s SearchParams) Where(d Dialect) string {
	pattern := s.pattern()

	operator := "ILIKE"
	if s.CaseSensitive {
		operator = "LIKE"
	}
	if d == DialectSurrealQL {
		operator = "~"
	}

	conditions := make([]string, 0, len(s.Fields))
	for _, field := range s.Fields {
		conditions = append(conditions, field+" "+operator+" "+pattern)
	}

	return "(" + strings.Join(conditions, " OR ") + ")"
}

// pattern quotes the query, escaping internal quotes, and wraps it in
// wildcards unless an exact match is requested.
func (s SearchParams) pattern() string {
	escaped := strings.ReplaceAll(s.Query, "'", "''")
	if s.ExactMatch {
		return "'" + escaped + "'"
	}
	return "'%" + escaped + "%'"
}
