package utils

func Map[T any, U any](src []T, mapper func(T) U) []U {
	dst := make([]U, 0, len(src))
	for _, item := range src {
		dst = append(dst, mapper(item))
	}
	return dst
}

// Find returns a pointer into src, not a copy.
func Find[T any](src []T, predicate func(T) bool) *T {
	for i := range src {
		if predicate(src[i]) {
			return &src[i]
		}
	}
	return nil
}

func Count[T any](src []T, predicate func(T) bool) int {
	n := 0
	for _, item := range src {
		if predicate(item) {
			n++
		}
	}
	return n
}
