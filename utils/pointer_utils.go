package utils

// Ptr returns a pointer to v, handy for optional request fields
func Ptr[T any](v T) *T {
	return &v
}
