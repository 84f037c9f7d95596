package arith

import "math"

const (
	// MaxFactorialOperand is the largest n whose factorial fits in int64.
	MaxFactorialOperand = 20

	reasonFactorialOfNegative = "factorial of negative"
	reasonNegativeExponent    = "negative exponent"
)

func CheckedAdd(a, b int64) (int64, error) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, ErrOverflow
	}

	return c, nil
}

func CheckedSubtract(a, b int64) (int64, error) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return 0, ErrUnderflow
	}

	return c, nil
}

func CheckedMultiply(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}

	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, ErrOverflow
	}

	c := a * b
	if c/b != a {
		return 0, ErrOverflow
	}

	return c, nil
}

// CheckedDivide truncates toward zero.
func CheckedDivide(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}

	if a == math.MinInt64 && b == -1 {
		return 0, ErrOverflow
	}

	return a / b, nil
}

// CheckedModulo uses Go's remainder: the result takes the sign of a.
// MinInt64 % -1 is refused like the matching division.
func CheckedModulo(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}

	if a == math.MinInt64 && b == -1 {
		return 0, ErrOverflow
	}

	return a % b, nil
}

func CheckedNegate(a int64) (int64, error) {
	if a == math.MinInt64 {
		return 0, ErrOverflow
	}

	return -a, nil
}

func CheckedPower(base, exp int64) (int64, error) {
	if exp < 0 {
		return 0, NewInvalidError(reasonNegativeExponent)
	}

	if exp == 0 {
		return 1, nil
	}

	var err error

	acc := int64(1)

	for exp > 1 {
		if exp&1 == 1 {
			acc, err = CheckedMultiply(acc, base)
			if err != nil {
				return 0, ErrOverflow
			}
		}

		exp >>= 1

		base, err = CheckedMultiply(base, base)
		if err != nil {
			return 0, ErrOverflow
		}
	}

	acc, err = CheckedMultiply(acc, base)
	if err != nil {
		return 0, ErrOverflow
	}

	return acc, nil
}

func CheckedFactorial(n int64) (int64, error) {
	if n < 0 {
		return 0, NewInvalidError(reasonFactorialOfNegative)
	}

	if n > MaxFactorialOperand {
		return 0, ErrOverflow
	}

	var err error

	acc := int64(1)

	for i := int64(2); i <= n; i++ {
		acc, err = CheckedMultiply(acc, i)
		if err != nil {
			return 0, err
		}
	}

	return acc, nil
}
