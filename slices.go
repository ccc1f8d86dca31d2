package nfa

// grow extends s with zero values until it holds size elements.
func grow[T any](s []T, size int) []T {
	if len(s) >= size {
		return s
	}
	return append(s, make([]T, size-len(s))...)
}
