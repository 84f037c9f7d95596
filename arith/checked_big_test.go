package arith

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

var boundaryOperands = []int64{
	math.MinInt64, math.MinInt64 + 1, math.MinInt64 / 2, -1 << 32, -3, -2, -1,
	0, 1, 2, 3, 1 << 31, 1 << 32, math.MaxInt64 / 2, math.MaxInt64 - 1, math.MaxInt64,
}

var (
	bigMinInt64 = big.NewInt(math.MinInt64)
	bigMaxInt64 = big.NewInt(math.MaxInt64)
)

func fitsInt64(z *big.Int) bool {
	return z.Cmp(bigMinInt64) >= 0 && z.Cmp(bigMaxInt64) <= 0
}

func operandPairs() (pairs [][2]int64) {
	for _, a := range boundaryOperands {
		for _, b := range boundaryOperands {
			pairs = append(pairs, [2]int64{a, b})
		}
	}

	// nolint: gosec
	r := rand.New(rand.NewSource(20261017))

	for idx := 0; idx < 20000; idx++ {
		a, b := int64(r.Uint64()), int64(r.Uint64())

		switch idx % 4 {
		case 1:
			b >>= r.Intn(64)
		case 2:
			a >>= r.Intn(64)
			b >>= r.Intn(64)
		case 3:
			a = boundaryOperands[r.Intn(len(boundaryOperands))]
		}

		pairs = append(pairs, [2]int64{a, b})
	}

	return
}

func checkAgainstBig(t *testing.T, name string, a, b int64, got int64, err error, want *big.Int, wantErr error) {
	if fitsInt64(want) {
		assert.Nil(t, err, "%s(%d, %d)", name, a, b)
		assert.EqualValues(t, want.Int64(), got, "%s(%d, %d)", name, a, b)

		return
	}

	assert.ErrorIs(t, err, wantErr, "%s(%d, %d)", name, a, b)
}

func TestCheckedMatchesBig(t *testing.T) {
	for _, pair := range operandPairs() {
		a, b := pair[0], pair[1]
		x, y := big.NewInt(a), big.NewInt(b)

		v, err := CheckedAdd(a, b)
		checkAgainstBig(t, "add", a, b, v, err, new(big.Int).Add(x, y), ErrOverflow)

		v, err = CheckedSubtract(a, b)
		checkAgainstBig(t, "subtract", a, b, v, err, new(big.Int).Sub(x, y), ErrUnderflow)

		v, err = CheckedMultiply(a, b)
		checkAgainstBig(t, "multiply", a, b, v, err, new(big.Int).Mul(x, y), ErrOverflow)

		if b == 0 {
			_, err = CheckedDivide(a, b)
			assert.ErrorIs(t, err, ErrDivisionByZero)

			_, err = CheckedModulo(a, b)
			assert.ErrorIs(t, err, ErrDivisionByZero)

			continue
		}

		v, err = CheckedDivide(a, b)
		checkAgainstBig(t, "divide", a, b, v, err, new(big.Int).Quo(x, y), ErrOverflow)

		v, err = CheckedModulo(a, b)
		if a == math.MinInt64 && b == -1 {
			assert.ErrorIs(t, err, ErrOverflow)
		} else {
			checkAgainstBig(t, "modulo", a, b, v, err, new(big.Int).Rem(x, y), ErrOverflow)
		}
	}
}

func TestCheckedPowerMatchesBig(t *testing.T) {
	bases := append([]int64{-10, -7, 5, 7, 10}, boundaryOperands...)

	for _, base := range bases {
		for exp := int64(0); exp <= 70; exp++ {
			want := new(big.Int).Exp(big.NewInt(base), big.NewInt(exp), nil)

			v, err := CheckedPower(base, exp)
			checkAgainstBig(t, "power", base, exp, v, err, want, ErrOverflow)
		}
	}
}
