package paginator

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// CursorDirection tells the executor which side of the cursor boundary
// to fetch.
type CursorDirection string

const (
	CursorAfter  CursorDirection = "after"
	CursorBefore CursorDirection = "before"
)

type cursorKind uint8

const (
	cursorString cursorKind = iota
	cursorInt
	cursorFloat
)

// CursorValue is the boundary value a cursor points at: String, Int or
// Float. UUIDs are carried as their string form.
type CursorValue struct {
	kind cursorKind
	str  string
	i    int64
	f    float64
}

func CursorStringValue(s string) CursorValue { return CursorValue{kind: cursorString, str: s} }
func CursorIntValue(i int64) CursorValue     { return CursorValue{kind: cursorInt, i: i} }
func CursorFloatValue(f float64) CursorValue { return CursorValue{kind: cursorFloat, f: f} }

func CursorUUIDValue(id uuid.UUID) CursorValue { return CursorStringValue(id.String()) }

// Value returns the underlying string, int64 or float64 for parameter
// binding.
func (v CursorValue) Value() any {
	switch v.kind {
	case cursorInt:
		return v.i
	case cursorFloat:
		return v.f
	default:
		return v.str
	}
}

func (v CursorValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case cursorInt:
		return strconv.AppendInt(nil, v.i, 10), nil
	case cursorFloat:
		return []byte(jsonFloat(v.f)), nil
	default:
		return json.Marshal(v.str)
	}
}

func (v *CursorValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case string:
		*v = CursorStringValue(t)
	case json.Number:
		if i, err := t.Int64(); err == nil && !strings.ContainsAny(t.String(), ".eE") {
			*v = CursorIntValue(i)
			return nil
		}
		f, err := t.Float64()
		if err != nil {
			return err
		}
		*v = CursorFloatValue(f)
	default:
		return fmt.Errorf("cursor value must be a string or number, got %T", raw)
	}
	return nil
}

// Cursor is an opaque bookmark into an ordered result set: the boundary
// field, its value in the last seen row, and which side of it to fetch.
type Cursor struct {
	Field     string          `json:"field"`
	Value     CursorValue     `json:"value"`
	Direction CursorDirection `json:"direction"`
}

func NewCursor(field string, value CursorValue, direction CursorDirection) Cursor {
	return Cursor{Field: field, Value: value, Direction: direction}
}

// Encode serializes the cursor to JSON and wraps it in standard, padded
// base64. DecodeCursor is its exact inverse.
func (c Cursor) Encode() (string, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeCursor decodes a cursor token produced by Encode. A malformed or
// tampered token fails with an error wrapping ErrInvalidCursor.
func DecodeCursor(encoded string) (Cursor, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: bad base64: %v", ErrInvalidCursor, err)
	}
	if !utf8.Valid(raw) {
		return Cursor{}, fmt.Errorf("%w: payload is not valid UTF-8", ErrInvalidCursor)
	}

	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return Cursor{}, fmt.Errorf("%w: bad JSON: %v", ErrInvalidCursor, err)
	}

	switch c.Direction {
	case CursorAfter, CursorBefore:
	default:
		return Cursor{}, fmt.Errorf("%w: unknown direction %q", ErrInvalidCursor, string(c.Direction))
	}

	return c, nil
}

// CompareOperator resolves the comparison operator an executor must use
// for this cursor under the given sort direction. An unset sort counts
// as ascending. Reversing this table silently reverses pagination
// direction, so every adapter goes through it.
//
//	after  + asc  -> >
//	after  + desc -> <
//	before + asc  -> <
//	before + desc -> >
func (c Cursor) CompareOperator(sort SortDirection) string {
	desc := sort == SortDesc
	if c.Direction == CursorBefore {
		if desc {
			return ">"
		}
		return "<"
	}
	if desc {
		return "<"
	}
	return ">"
}
