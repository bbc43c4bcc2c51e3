// Package paginator models the request and response contract of a "list"
// API endpoint: page/per_page addressing, sorting, field filters, free-text
// search and opaque cursors, plus the metadata of the resulting page.
//
// The core is pure and stateless; values are safe to build once per request
// and read from concurrent executor paths. Predicates can be rendered as
// generic SQL or SurrealQL fragments, or walked by an adapter that binds
// parameters itself (see the gormadapter package). The textual renderers
// interpolate field names verbatim; pass user-supplied field names through
// ValidateFieldName first.
package paginator
