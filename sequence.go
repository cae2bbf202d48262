package krinkle

// boundarySequences derives the two modular integer sequences defining
// the prototile's lower and upper boundary.
//
// The lower sequence is (j*m) mod k for j = 0..k-1 followed by the
// sentinel k. The upper sequence starts with the sentinel k, continues
// with (j*m) mod k for j = 1..k-1, and ends with the sentinel 0.
//
// Both sequences truncate as soon as a nonzero j yields 0 mod k. That
// happens exactly when gcd(m, k) > 1 and signals a short-period
// degenerate configuration: short is returned true and the caller is
// expected to flag (not reject) the resulting polygon.
func boundarySequences(m, k int) (lower, upper []int, short bool) {
	lower = make([]int, 0, k+1)
	lower = append(lower, 0)
	for j := 1; j < k; j++ {
		v := (j * m) % k
		if v == 0 {
			short = true
			break
		}
		lower = append(lower, v)
	}
	lower = append(lower, k)

	upper = make([]int, 0, k+1)
	upper = append(upper, k)
	for j := 1; j < k; j++ {
		v := (j * m) % k
		if v == 0 {
			short = true
			break
		}
		upper = append(upper, v)
	}
	upper = append(upper, 0)

	return lower, upper, short
}
