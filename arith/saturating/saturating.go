// Package saturating clamps out-of-range int64 results to the nearest bound.
package saturating

import (
	"math"

	"github.com/sgostarter/libcalc/arith"
)

func Add(a, b int64) int64 {
	c, err := arith.CheckedAdd(a, b)
	if err == nil {
		return c
	}

	if b > 0 {
		return math.MaxInt64
	}

	return math.MinInt64
}

func Subtract(a, b int64) int64 {
	c, err := arith.CheckedSubtract(a, b)
	if err == nil {
		return c
	}

	if b > 0 {
		return math.MinInt64
	}

	return math.MaxInt64
}

func Multiply(a, b int64) int64 {
	c, err := arith.CheckedMultiply(a, b)
	if err == nil {
		return c
	}

	if (a < 0) != (b < 0) {
		return math.MinInt64
	}

	return math.MaxInt64
}
