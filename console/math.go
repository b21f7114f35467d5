package console

import "golang.org/x/exp/constraints"

func clamp[N constraints.Integer](n, lo, hi N) N {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
