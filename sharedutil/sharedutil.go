package sharedutil

func FilterSlice[T any](ss []T, test func(T) bool) []T {
	if ss == nil {
		return nil
	}
	result := make([]T, 0)
	for _, s := range ss {
		if test(s) {
			result = append(result, s)
		}
	}
	return result
}

func MapSlice[T any, U any](ts []T, f func(T) U) []U {
	if ts == nil {
		return nil
	}
	result := make([]U, len(ts))
	for i, t := range ts {
		result[i] = f(t)
	}
	return result
}

// FilterMapSlice maps each element with f and keeps the results for which f returns true.
func FilterMapSlice[T any, U any](ts []T, f func(T) (U, bool)) []U {
	if ts == nil {
		return nil
	}
	result := make([]U, 0)
	for _, t := range ts {
		if u, ok := f(t); ok {
			result = append(result, u)
		}
	}
	return result
}

// FirstN returns at most the first n elements of ts, sharing its backing array.
func FirstN[T any](ts []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(ts) <= n {
		return ts
	}
	return ts[:n]
}

func SliceContains[T comparable](ts []T, t T) bool {
	for _, x := range ts {
		if x == t {
			return true
		}
	}
	return false
}
