package accumulator

import (
	"strings"

	"github.com/sgostarter/libcalc/arith"
)

type OpType int

const (
	OpTypeAdd OpType = iota
	OpTypeSubtract
	OpTypeMultiply
	OpTypeDivide
	OpTypeModulo
	OpTypeNegate
	OpTypePower
	OpTypeFactorial
)

var opTypeNames = map[OpType]string{
	OpTypeAdd:       "add",
	OpTypeSubtract:  "subtract",
	OpTypeMultiply:  "multiply",
	OpTypeDivide:    "divide",
	OpTypeModulo:    "modulo",
	OpTypeNegate:    "negate",
	OpTypePower:     "power",
	OpTypeFactorial: "factorial",
}

var opTypeByName = func() map[string]OpType {
	m := make(map[string]OpType, len(opTypeNames))
	for t, name := range opTypeNames {
		m[name] = t
	}

	return m
}()

var opTypeAliases = map[string]OpType{
	"+":   OpTypeAdd,
	"sub": OpTypeSubtract,
	"-":   OpTypeSubtract,
	"mul": OpTypeMultiply,
	"*":   OpTypeMultiply,
	"x":   OpTypeMultiply,
	"×":   OpTypeMultiply,
	"div": OpTypeDivide,
	"/":   OpTypeDivide,
	"÷":   OpTypeDivide,
	"mod": OpTypeModulo,
	"%":   OpTypeModulo,
	"neg": OpTypeNegate,
	"pow": OpTypePower,
	"^":   OpTypePower,
	"!":   OpTypeFactorial,
	"fac": OpTypeFactorial,
}

func (t OpType) String() string {
	if name, ok := opTypeNames[t]; ok {
		return name
	}

	return "unknown"
}

// Unary reports whether the operation ignores Operation.Operand.
func (t OpType) Unary() bool {
	return t == OpTypeNegate || t == OpTypeFactorial
}

// ParseOpType accepts the canonical names, short aliases and the operator symbols.
func ParseOpType(s string) (OpType, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if t, ok := opTypeByName[s]; ok {
		return t, nil
	}

	if t, ok := opTypeAliases[s]; ok {
		return t, nil
	}

	return 0, arith.NewInvalidError("unknown operation " + s)
}

// Operation is an operation as data. Operand is the exponent for power and unused
// for negate and factorial.
type Operation struct {
	Type    OpType
	Operand int64
}

func (op Operation) String() string {
	if op.Type.Unary() {
		return op.Type.String()
	}

	return op.Type.String() + " " + formatInt(op.Operand)
}

// Calculate evaluates a single operation without any accumulator state.
func Calculate(a int64, t OpType, b int64) (int64, error) {
	v, _, err := apply(a, Operation{
		Type:    t,
		Operand: b,
	})

	return v, err
}

func apply(current int64, op Operation) (v int64, desc string, err error) {
	switch op.Type {
	case OpTypeAdd:
		v, err = arith.CheckedAdd(current, op.Operand)
		desc = formatBinary(current, "+", op.Operand)
	case OpTypeSubtract:
		v, err = arith.CheckedSubtract(current, op.Operand)
		desc = formatBinary(current, "-", op.Operand)
	case OpTypeMultiply:
		v, err = arith.CheckedMultiply(current, op.Operand)
		desc = formatBinary(current, "×", op.Operand)
	case OpTypeDivide:
		v, err = arith.CheckedDivide(current, op.Operand)
		desc = formatBinary(current, "÷", op.Operand)
	case OpTypeModulo:
		v, err = arith.CheckedModulo(current, op.Operand)
		desc = formatBinary(current, "%", op.Operand)
	case OpTypeNegate:
		v, err = arith.CheckedNegate(current)
		desc = "neg(" + formatInt(current) + ")"
	case OpTypePower:
		v, err = arith.CheckedPower(current, op.Operand)
		desc = "pow(" + formatInt(current) + ", " + formatInt(op.Operand) + ")"
	case OpTypeFactorial:
		v, err = arith.CheckedFactorial(current)
		desc = formatInt(current) + "!"
	default:
		err = arith.NewInvalidError("unknown operation")
	}

	return
}
