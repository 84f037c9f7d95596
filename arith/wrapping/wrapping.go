// Package wrapping performs two's-complement int64 arithmetic that wraps modulo 2^64.
package wrapping

func Add(a, b int64) int64 {
	return a + b
}

func Subtract(a, b int64) int64 {
	return a - b
}

func Multiply(a, b int64) int64 {
	return a * b
}
