package script

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libcalc/accumulator"
	"github.com/spf13/cast"
)

type StepResult struct {
	Step  Step
	Value int64
	Err   error
}

type Report struct {
	Results []StepResult
	Final   int64
	History string
}

func (r *Report) Failed() int {
	n := 0

	for _, result := range r.Results {
		if result.Err != nil {
			n++
		}
	}

	return n
}

// ToOperation resolves the step's op name and coerces its operand.
func (s Step) ToOperation() (op accumulator.Operation, err error) {
	op.Type, err = accumulator.ParseOpType(s.Op)
	if err != nil {
		return
	}

	if op.Type.Unary() {
		if s.Operand != nil {
			err = fmt.Errorf("%w: %s takes no operand", commerr.ErrInvalidArgument, op.Type)
		}

		return
	}

	if s.Operand == nil {
		err = fmt.Errorf("%w: %s needs an operand", commerr.ErrInvalidArgument, op.Type)

		return
	}

	op.Operand, err = toOperand(s.Operand)

	return
}

// toOperand converts a yaml or command line operand to int64 and refuses any value
// that would change on the way: wrapped unsigned values, fractions and non-decimal strings.
func toOperand(v interface{}) (n int64, err error) {
	switch x := v.(type) {
	case string:
		n, err = strconv.ParseInt(strings.TrimSpace(x), 10, 64)
	case uint:
		n, err = fromUint64(uint64(x))
	case uint64:
		n, err = fromUint64(x)
	case float32:
		n, err = fromFloat64(float64(x))
	case float64:
		n, err = fromFloat64(x)
	case bool:
		err = errors.New("not an integer")
	default:
		n, err = cast.ToInt64E(v)
	}

	if err != nil {
		err = fmt.Errorf("%w: operand %v: %s", commerr.ErrInvalidArgument, v, err.Error())
	}

	return
}

func fromUint64(u uint64) (int64, error) {
	if u > math.MaxInt64 {
		return 0, errors.New("out of int64 range")
	}

	return int64(u), nil
}

func fromFloat64(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, errors.New("not an integer")
	}

	if f < -(1<<63) || f >= 1<<63 {
		return 0, errors.New("out of int64 range")
	}

	return int64(f), nil
}

// ParseSteps turns command line words such as "add 10 neg mul 3" into steps.
func ParseSteps(args []string) (steps []Step, err error) {
	for idx := 0; idx < len(args); idx++ {
		t, e := accumulator.ParseOpType(args[idx])
		if e != nil {
			err = e

			return
		}

		step := Step{Op: t.String()}

		if !t.Unary() {
			if idx+1 >= len(args) {
				err = fmt.Errorf("%w: %s needs an operand", commerr.ErrInvalidArgument, t)

				return
			}

			idx++
			step.Operand = args[idx]
		}

		steps = append(steps, step)
	}

	return
}

func Run(cfg *Config, logger l.Wrapper) (*Report, error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if cfg == nil {
		return nil, commerr.ErrInvalidArgument
	}

	acc := accumulator.NewAccumulator(logger, accumulator.HistoryCapacityOption(cfg.HistoryCapacity))

	logger = logger.WithFields(l.StringField(l.ClsKey, "scriptRunner"))

	report := &Report{
		Results: make([]StepResult, 0, len(cfg.Steps)),
	}

	for idx, step := range cfg.Steps {
		result := StepResult{Step: step}

		op, err := step.ToOperation()
		if err == nil {
			result.Value, err = acc.Perform(op)
		} else {
			result.Value = acc.Current()
		}

		result.Err = err
		report.Results = append(report.Results, result)

		if err != nil {
			logger.WithFields(l.ErrorField(err), l.IntField("step", idx+1)).Error("step failed")

			if cfg.StopOnError {
				break
			}
		}
	}

	report.Final = acc.Current()
	report.History = acc.HistoryString()

	return report, nil
}
