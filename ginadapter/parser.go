package ginadapter

import (
	"strconv"
	"strings"

	paginator "github.com/rosberry/go-paginator"
)

// ParseFilter parses a "field:operator:value" query segment into a
// Filter. The operator must be one of the wire tags ("eq", "not_in", ...).
// Values are typed opportunistically: integer first, then float, then
// bool, falling back to string. in/not_in/between values are comma-split.
// ok is false for anything that does not fit the grammar.
func ParseFilter(s string) (paginator.Filter, bool) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) < 3 {
		return paginator.Filter{}, false
	}

	field := parts[0]
	op, ok := paginator.ParseFilterOperator(parts[1])
	if !ok {
		return paginator.Filter{}, false
	}
	rawValue := parts[2]

	var value paginator.FilterValue
	switch op {
	case paginator.OpIsNull, paginator.OpIsNotNull:
		value = paginator.NullValue()
	case paginator.OpIn, paginator.OpNotIn:
		value = listValue(rawValue, true)
	case paginator.OpBetween:
		value = listValue(rawValue, false)
	default:
		value = scalarValue(rawValue, true)
	}

	return paginator.NewFilter(field, op, value), true
}

func listValue(raw string, allowBool bool) paginator.FilterValue {
	segments := strings.Split(raw, ",")
	items := make([]paginator.FilterValue, 0, len(segments))
	for _, segment := range segments {
		items = append(items, scalarValue(strings.TrimSpace(segment), allowBool))
	}
	return paginator.ArrayValue(items...)
}

func scalarValue(raw string, allowBool bool) paginator.FilterValue {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return paginator.IntValue(i)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return paginator.FloatValue(f)
	}
	if allowBool && (raw == "true" || raw == "false") {
		return paginator.BoolValue(raw == "true")
	}
	return paginator.StringValue(raw)
}
