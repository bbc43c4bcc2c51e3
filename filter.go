package paginator

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Dialect selects the query language targeted by the textual renderers.
type Dialect int

const (
	DialectSQL Dialect = iota
	DialectSurrealQL
)

// FilterOperator is the closed set of predicate operators.
type FilterOperator string

const (
	OpEq        FilterOperator = "eq"
	OpNe        FilterOperator = "ne"
	OpGt        FilterOperator = "gt"
	OpLt        FilterOperator = "lt"
	OpGte       FilterOperator = "gte"
	OpLte       FilterOperator = "lte"
	OpLike      FilterOperator = "like"
	OpILike     FilterOperator = "ilike"
	OpIn        FilterOperator = "in"
	OpNotIn     FilterOperator = "not_in"
	OpIsNull    FilterOperator = "is_null"
	OpIsNotNull FilterOperator = "is_not_null"
	OpBetween   FilterOperator = "between"
	OpContains  FilterOperator = "contains"
)

var filterOperators = map[FilterOperator]struct{}{
	OpEq: {}, OpNe: {}, OpGt: {}, OpLt: {}, OpGte: {}, OpLte: {},
	OpLike: {}, OpILike: {}, OpIn: {}, OpNotIn: {},
	OpIsNull: {}, OpIsNotNull: {}, OpBetween: {}, OpContains: {},
}

// ParseFilterOperator maps the wire tag of an operator ("eq", "not_in", ...)
// to its FilterOperator. ok is false for unknown tags.
func ParseFilterOperator(s string) (op FilterOperator, ok bool) {
	op = FilterOperator(strings.ToLower(s))
	_, ok = filterOperators[op]
	return op, ok
}

type valueKind uint8

const (
	kindNull valueKind = iota
	kindString
	kindInt
	kindFloat
	kindBool
	kindArray
)

// FilterValue is a tagged union of the literal types a Filter can carry:
// String, Int, Float, Bool, Array (for In/NotIn/Between) and Null.
// There is no implicit coercion between variants; "5" stays a string.
type FilterValue struct {
	kind valueKind
	str  string
	i    int64
	f    float64
	b    bool
	arr  []FilterValue
}

func StringValue(s string) FilterValue { return FilterValue{kind: kindString, str: s} }
func IntValue(i int64) FilterValue     { return FilterValue{kind: kindInt, i: i} }
func FloatValue(f float64) FilterValue { return FilterValue{kind: kindFloat, f: f} }
func BoolValue(b bool) FilterValue     { return FilterValue{kind: kindBool, b: b} }
func NullValue() FilterValue           { return FilterValue{kind: kindNull} }

// UUIDValue stores the UUID as its string form; it is carried and
// rendered identically to a String value.
func UUIDValue(id uuid.UUID) FilterValue { return StringValue(id.String()) }

func ArrayValue(items ...FilterValue) FilterValue {
	return FilterValue{kind: kindArray, arr: items}
}

// IsNull reports whether the value is the Null variant.
func (v FilterValue) IsNull() bool { return v.kind == kindNull }

// Value returns the underlying Go value: string, int64, float64, bool,
// []any for arrays or nil for Null. Used by adapters that bind parameters
// instead of rendering literals.
func (v FilterValue) Value() any {
	switch v.kind {
	case kindString:
		return v.str
	case kindInt:
		return v.i
	case kindFloat:
		return v.f
	case kindBool:
		return v.b
	case kindArray:
		out := make([]any, 0, len(v.arr))
		for _, item := range v.arr {
			out = append(out, item.Value())
		}
		return out
	default:
		return nil
	}
}

// Equal compares variant and payload structurally.
func (v FilterValue) Equal(other FilterValue) bool {
	if v.kind != other.kind {
		return false
	}
	if v.kind == kindArray {
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	}
	return v.str == other.str && v.i == other.i && v.f == other.f && v.b == other.b
}

// between returns the two bounds when the value is an Array of exactly
// two elements.
func (v FilterValue) between() (lo, hi FilterValue, ok bool) {
	if v.kind != kindArray || len(v.arr) != 2 {
		return FilterValue{}, FilterValue{}, false
	}
	return v.arr[0], v.arr[1], true
}

// SQLString renders the value as a SQL literal. Strings are single-quoted
// with internal quotes doubled; this is the only escaping applied, so field
// names must never come from untrusted input (see ValidateFieldName).
func (v FilterValue) SQLString() string {
	switch v.kind {
	case kindString:
		return sqlQuote(v.str)
	case kindInt:
		return strconv.FormatInt(v.i, 10)
	case kindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case kindBool:
		if v.b {
			return "TRUE"
		}
		return "FALSE"
	case kindArray:
		items := make([]string, 0, len(v.arr))
		for _, item := range v.arr {
			items = append(items, item.SQLString())
		}
		return "(" + strings.Join(items, ", ") + ")"
	default:
		return "NULL"
	}
}

func sqlQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// MarshalJSON emits the untagged shape: a bare scalar, array or null.
// Floats always carry a decimal point so that decoding restores the
// Float variant and the encode/decode round trip is exact.
func (v FilterValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindString:
		return json.Marshal(v.str)
	case kindInt:
		return strconv.AppendInt(nil, v.i, 10), nil
	case kindFloat:
		return []byte(jsonFloat(v.f)), nil
	case kindBool:
		return strconv.AppendBool(nil, v.b), nil
	case kindArray:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			raw, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(raw)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	default:
		return []byte("null"), nil
	}
}

func (v *FilterValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	parsed, err := filterValueFromJSON(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func filterValueFromJSON(raw any) (FilterValue, error) {
	switch t := raw.(type) {
	case nil:
		return NullValue(), nil
	case string:
		return StringValue(t), nil
	case bool:
		return BoolValue(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil && !strings.ContainsAny(t.String(), ".eE") {
			return IntValue(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return FilterValue{}, err
		}
		return FloatValue(f), nil
	case []any:
		items := make([]FilterValue, 0, len(t))
		for _, el := range t {
			item, err := filterValueFromJSON(el)
			if err != nil {
				return FilterValue{}, err
			}
			items = append(items, item)
		}
		return ArrayValue(items...), nil
	default:
		return FilterValue{}, &json.UnsupportedValueError{Str: "object is not a valid filter value"}
	}
}

func jsonFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Filter is a single field/operator/value predicate. Construction never
// fails; validation of the field name is a separate step.
type Filter struct {
	Field    string         `json:"field"`
	Operator FilterOperator `json:"operator"`
	Value    FilterValue    `json:"value"`
}

func NewFilter(field string, op FilterOperator, value FilterValue) Filter {
	return Filter{Field: field, Operator: op, Value: value}
}

// SQLWhere renders the predicate as a generic SQL fragment. ILike emits a
// literal ILIKE keyword; the renderer is PostgreSQL-oriented and does not
// dialect-switch, consumers of other engines must rewrite it themselves.
func (f Filter) SQLWhere() string { return f.Where(DialectSQL) }

// SurrealQLWhere renders the predicate as a SurrealQL fragment.
func (f Filter) SurrealQLWhere() string { return f.Where(DialectSurrealQL) }

// Where renders the predicate for the given dialect.
func (f Filter) Where(d Dialect) string {
	switch f.Operator {
	case OpEq:
		return f.Field + " = " + f.Value.SQLString()
	case OpNe:
		return f.Field + " != " + f.Value.SQLString()
	case OpGt:
		return f.Field + " > " + f.Value.SQLString()
	case OpLt:
		return f.Field + " < " + f.Value.SQLString()
	case OpGte:
		return f.Field + " >= " + f.Value.SQLString()
	case OpLte:
		return f.Field + " <= " + f.Value.SQLString()
	case OpLike:
		if d == DialectSurrealQL {
			return f.Field + " ~ " + f.Value.SQLString()
		}
		return f.Field + " LIKE " + f.Value.SQLString()
	case OpILike:
		if d == DialectSurrealQL {
			return f.Field + " ~ " + f.Value.SQLString()
		}
		return f.Field + " ILIKE " + f.Value.SQLString()
	case OpIn:
		if d == DialectSurrealQL {
			return f.Field + " INSIDE " + f.Value.SQLString()
		}
		return f.Field + " IN " + f.Value.SQLString()
	case OpNotIn:
		if d == DialectSurrealQL {
			return f.Field + " NOT INSIDE " + f.Value.SQLString()
		}
		return f.Field + " NOT IN " + f.Value.SQLString()
	case OpIsNull:
		return f.Field + " IS NULL"
	case OpIsNotNull:
		return f.Field + " IS NOT NULL"
	case OpBetween:
		lo, hi, ok := f.Value.between()
		if !ok {
			// documented degenerate case: fall back to an equality fragment
			return f.Field + " = " + f.Value.SQLString()
		}
		if d == DialectSurrealQL {
			// SurrealQL has no BETWEEN
			return f.Field + " >= " + lo.SQLString() + " AND " + f.Field + " <= " + hi.SQLString()
		}
		return f.Field + " BETWEEN " + lo.SQLString() + " AND " + hi.SQLString()
	case OpContains:
		if d == DialectSurrealQL {
			return f.Field + " CONTAINS " + f.Value.SQLString()
		}
		return f.Field + " @> " + f.Value.SQLString()
	default:
		return f.Field + " = " + f.Value.SQLString()
	}
}
