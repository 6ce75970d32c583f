package util

import (
	"golang.org/x/exp/constraints"
)

// Max returns the larger of the two values.
func Max[T constraints.Ordered](a, b T) T {
	if a >= b {
		return a
	}
	return b
}

// Min returns the smaller of the two values.
func Min[T constraints.Ordered](a, b T) T {
	if a <= b {
		return a
	}
	return b
}

// Constrain clamps val to the closed interval [lo, hi].
func Constrain[T constraints.Ordered](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
