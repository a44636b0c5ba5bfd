package utils

// Ptr returns a pointer to v. Provider request structs use pointer fields for
// optional parameters so that an explicit zero (temperature 0) is still sent.
//
// Example:
//
//	temperature := utils.Ptr(0.7)
func Ptr[T any](v T) *T {
	return &v
}
