// Package helper provides copy utilities used by test packages.
package helper

// CopyOf returns a shallow copy of xs.
func CopyOf[T any](xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)

	return out
}
