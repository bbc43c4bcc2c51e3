package paginator

import "fmt"

// ValidateFieldName rejects any field name that is not limited to
// [A-Za-z0-9_.]. The textual renderers interpolate field names verbatim,
// so anything user-supplied must pass through here first.
func ValidateFieldName(field string) error {
	if field == "" {
		return fmt.Errorf("%w: field name is empty", ErrUnsafeFieldName)
	}
	for _, r := range field {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '.':
		default:
			return fmt.Errorf("%w: %q contains unsafe character %q", ErrUnsafeFieldName, field, r)
		}
	}
	return nil
}
