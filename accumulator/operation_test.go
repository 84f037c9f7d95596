package accumulator

import (
	"errors"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libcalc/arith"
	"github.com/stretchr/testify/assert"
)

func TestParseOpType(t *testing.T) {
	for s, want := range map[string]OpType{
		"add":       OpTypeAdd,
		" Add ":     OpTypeAdd,
		"+":         OpTypeAdd,
		"sub":       OpTypeSubtract,
		"-":         OpTypeSubtract,
		"mul":       OpTypeMultiply,
		"×":         OpTypeMultiply,
		"/":         OpTypeDivide,
		"mod":       OpTypeModulo,
		"neg":       OpTypeNegate,
		"^":         OpTypePower,
		"factorial": OpTypeFactorial,
		"!":         OpTypeFactorial,
	} {
		got, err := ParseOpType(s)
		assert.Nil(t, err, s)
		assert.EqualValues(t, want, got, s)
	}

	assert.EqualValues(t, len(opTypeNames), len(opTypeByName))

	for opType, name := range opTypeNames {
		got, err := ParseOpType(name)
		assert.Nil(t, err, name)
		assert.EqualValues(t, opType, got, name)
		assert.EqualValues(t, name, got.String())
	}

	_, err := ParseOpType("sqrt")
	assert.ErrorIs(t, err, arith.ErrInvalid)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}

func TestOperationString(t *testing.T) {
	assert.EqualValues(t, "add 10", Operation{Type: OpTypeAdd, Operand: 10}.String())
	assert.EqualValues(t, "negate", Operation{Type: OpTypeNegate, Operand: 10}.String())
	assert.EqualValues(t, "unknown", OpType(99).String())
	assert.True(t, OpTypeFactorial.Unary())
	assert.False(t, OpTypePower.Unary())
}

func TestCalculate(t *testing.T) {
	v, err := Calculate(5, OpTypeAdd, 3)
	assert.Nil(t, err)
	assert.EqualValues(t, 8, v)

	v, err = Calculate(10, OpTypeSubtract, 4)
	assert.Nil(t, err)
	assert.EqualValues(t, 6, v)

	v, err = Calculate(6, OpTypeMultiply, 7)
	assert.Nil(t, err)
	assert.EqualValues(t, 42, v)

	v, err = Calculate(15, OpTypeDivide, 3)
	assert.Nil(t, err)
	assert.EqualValues(t, 5, v)

	_, err = Calculate(10, OpTypeDivide, 0)
	assert.ErrorIs(t, err, arith.ErrDivisionByZero)

	v, err = Calculate(4, OpTypeFactorial, 0)
	assert.Nil(t, err)
	assert.EqualValues(t, 24, v)

	_, err = Calculate(1, OpType(99), 1)
	assert.ErrorIs(t, err, arith.ErrInvalid)
}

func TestPerform(t *testing.T) {
	acc := NewAccumulator(nil)

	_, _ = acc.Add(8)

	v, err := acc.Perform(Operation{Type: OpTypeAdd, Operand: 2})
	assert.Nil(t, err)
	assert.EqualValues(t, 10, v)

	v, err = acc.Perform(Operation{Type: OpTypeMultiply, Operand: 3})
	assert.Nil(t, err)
	assert.EqualValues(t, 30, v)

	v, err = acc.Perform(Operation{Type: OpTypeDivide, Operand: 6})
	assert.Nil(t, err)
	assert.EqualValues(t, 5, v)

	v, err = acc.Perform(Operation{Type: OpType(-1)})
	assert.ErrorIs(t, err, arith.ErrInvalid)
	assert.EqualValues(t, 5, v)
	assert.EqualValues(t, 4, acc.HistoryLen())
}
