package accumulator

import (
	"time"

	"github.com/gammazero/deque"
	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/l"
)

func NewAccumulator(logger l.Wrapper, options ...Option) Accumulator {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	opts := optionNew(options...)

	return &accumulatorImpl{
		logger:   logger.WithFields(l.StringField(l.ClsKey, "accumulatorImpl")),
		capacity: opts.historyCapacity,
	}
}

// accumulatorImpl is not safe for concurrent use; callers serialize access.
type accumulatorImpl struct {
	logger l.Wrapper

	current  int64
	capacity int
	history  deque.Deque[HistoryEntry]
}

func (impl *accumulatorImpl) Current() int64 {
	return impl.current
}

func (impl *accumulatorImpl) Capacity() int {
	return impl.capacity
}

func (impl *accumulatorImpl) History() []HistoryEntry {
	entries := make([]HistoryEntry, impl.history.Len())
	for idx := range entries {
		entries[idx] = impl.history.At(idx)
	}

	return entries
}

func (impl *accumulatorImpl) HistoryLen() int {
	return impl.history.Len()
}

func (impl *accumulatorImpl) LastEntry() (e HistoryEntry, ok bool) {
	if impl.history.Len() == 0 {
		return
	}

	return impl.history.Back(), true
}

func (impl *accumulatorImpl) HistoryString() string {
	return RenderHistory(impl.History())
}

func (impl *accumulatorImpl) Add(v int64) (int64, error) {
	return impl.Perform(Operation{Type: OpTypeAdd, Operand: v})
}

func (impl *accumulatorImpl) Subtract(v int64) (int64, error) {
	return impl.Perform(Operation{Type: OpTypeSubtract, Operand: v})
}

func (impl *accumulatorImpl) Multiply(v int64) (int64, error) {
	return impl.Perform(Operation{Type: OpTypeMultiply, Operand: v})
}

func (impl *accumulatorImpl) Divide(v int64) (int64, error) {
	return impl.Perform(Operation{Type: OpTypeDivide, Operand: v})
}

func (impl *accumulatorImpl) Modulo(v int64) (int64, error) {
	return impl.Perform(Operation{Type: OpTypeModulo, Operand: v})
}

func (impl *accumulatorImpl) Negate() (int64, error) {
	return impl.Perform(Operation{Type: OpTypeNegate})
}

func (impl *accumulatorImpl) Power(exp int64) (int64, error) {
	return impl.Perform(Operation{Type: OpTypePower, Operand: exp})
}

func (impl *accumulatorImpl) Factorial() (int64, error) {
	return impl.Perform(Operation{Type: OpTypeFactorial})
}

func (impl *accumulatorImpl) Perform(op Operation) (int64, error) {
	v, desc, err := apply(impl.current, op)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("op", op.String())).Debug("operation rejected")

		return impl.current, err
	}

	impl.pushHistory(desc, v)
	impl.current = v

	return v, nil
}

func (impl *accumulatorImpl) Clear() {
	impl.current = 0
	impl.history.Clear()
}

func (impl *accumulatorImpl) ClearHistory() {
	impl.history.Clear()
}

func (impl *accumulatorImpl) pushHistory(desc string, result int64) {
	for impl.history.Len() >= impl.capacity {
		evicted := impl.history.PopFront()

		impl.logger.WithFields(l.UInt64Field("id", evicted.ID), l.StringField("op", evicted.Op)).Debug("history entry evicted")
	}

	impl.history.PushBack(HistoryEntry{
		ID:     snowflake.ID(),
		Op:     desc,
		Result: result,
		At:     time.Now(),
	})
}
