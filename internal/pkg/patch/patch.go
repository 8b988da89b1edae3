// Package patch merges optional update fields over stored values.
package patch

// Coalesce yields *field when the caller supplied it, else current.
func Coalesce[T any](field *T, current T) T {
	if field != nil {
		return *field
	}
	return current
}

// Changed reports whether a supplied field differs from the stored value.
func Changed[T comparable](field *T, current T) bool {
	return field != nil && *field != current
}
