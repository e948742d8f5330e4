// Package duplicates reports repeated values in a slice using a single
// forward scan over a seen-set.
package duplicates

// HasDuplicate reports whether any value occurs more than once in values.
// It returns as soon as the first repeat is found.
func HasDuplicate[T comparable](values []T) bool {
	_, found := FirstDuplicate(values)
	return found
}

// FirstDuplicate returns the index of the first element whose value was
// already seen earlier in values. The index is -1 when every value is distinct.
func FirstDuplicate[T comparable](values []T) (int, bool) {
	seen := make(map[T]struct{}, len(values))

	for i, v := range values {
		if _, exists := seen[v]; exists {
			return i, true
		}
		seen[v] = struct{}{}
	}

	return -1, false
}

// HasDuplicateFunc is HasDuplicate for element types that are not comparable
// themselves. Two elements are equal when key returns the same value for both.
func HasDuplicateFunc[T any, K comparable](values []T, key func(T) K) bool {
	seen := make(map[K]struct{}, len(values))

	for _, v := range values {
		k := key(v)
		if _, exists := seen[k]; exists {
			return true
		}
		seen[k] = struct{}{}
	}

	return false
}

// Count returns how many elements repeat a value seen earlier in values.
// Unlike HasDuplicate it always scans the whole slice.
func Count[T comparable](values []T) int {
	seen := make(map[T]struct{}, len(values))
	repeats := 0

	for _, v := range values {
		if _, exists := seen[v]; exists {
			repeats++
			continue
		}
		seen[v] = struct{}{}
	}

	return repeats
}
