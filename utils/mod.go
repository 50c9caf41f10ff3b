package utils

// FindIndex returns the position of item in slice, or -1 when it is absent.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Mod is a modulo that stays in [0, n) for negative a, as needed for
// wrapping around the track. n must be positive.
func Mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
