package gormadapter

import (
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm/schema"

	paginator "github.com/rosberry/go-paginator"
)

// rowCursorValue resolves the cursor field of a row by its database
// column name and converts it into a CursorValue.
func rowCursorValue(row any, column string) (paginator.CursorValue, bool) {
	raw, ok := fieldValueByColumn(reflect.ValueOf(row), column)
	if !ok {
		return paginator.CursorValue{}, false
	}
	return cursorValueOf(raw)
}

// fieldValueByColumn walks the struct, embedded structs included, looking
// for the field whose gorm column name matches.
func fieldValueByColumn(rv reflect.Value, column string) (any, bool) {
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}

	typ := rv.Type()
	for i := 0; i < typ.NumField(); i++ {
		structField := typ.Field(i)
		if structField.Anonymous && structField.Type.Kind() == reflect.Struct {
			if value, ok := fieldValueByColumn(rv.Field(i), column); ok {
				return value, true
			}
			continue
		}
		if !structField.IsExported() {
			continue
		}
		if columnName(structField) == column {
			field := rv.Field(i)
			if !field.CanInterface() {
				return nil, false
			}
			return field.Interface(), true
		}
	}
	return nil, false
}

func columnName(structField reflect.StructField) string {
	if tag := structField.Tag.Get("gorm"); tag != "" {
		for _, part := range strings.Split(tag, ";") {
			if name, ok := strings.CutPrefix(part, "column:"); ok {
				return name
			}
		}
	}
	return (&schema.NamingStrategy{}).ColumnName("", structField.Name)
}

// cursorValueOf converts a row field into a CursorValue. Times are
// carried as RFC3339Nano strings and UUIDs as their string form; other
// non-scalar types cannot act as cursor boundaries.
func cursorValueOf(raw any) (paginator.CursorValue, bool) {
	switch t := raw.(type) {
	case time.Time:
		return paginator.CursorStringValue(t.Format(time.RFC3339Nano)), true
	case *time.Time:
		if t == nil {
			return paginator.CursorValue{}, false
		}
		return paginator.CursorStringValue(t.Format(time.RFC3339Nano)), true
	case uuid.UUID:
		return paginator.CursorUUIDValue(t), true
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.String:
		return paginator.CursorStringValue(rv.String()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return paginator.CursorIntValue(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return paginator.CursorIntValue(int64(rv.Uint())), true
	case reflect.Float32, reflect.Float64:
		return paginator.CursorFloatValue(rv.Float()), true
	default:
		return paginator.CursorValue{}, false
	}
}
