package wrapping

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapping(t *testing.T) {
	assert.EqualValues(t, int64(math.MinInt64), Add(math.MaxInt64, 1))
	assert.EqualValues(t, int64(math.MaxInt64), Subtract(math.MinInt64, 1))
	assert.EqualValues(t, -2, Multiply(math.MaxInt64, 2))
	assert.EqualValues(t, int64(math.MinInt64), Multiply(math.MinInt64, -1))
	assert.EqualValues(t, 25, Subtract(30, 5))
}
