package accumulator

import "time"

const DefaultHistoryCapacity = 100

type HistoryEntry struct {
	ID     uint64    `json:"id" yaml:"id"`
	Op     string    `json:"op" yaml:"op"`
	Result int64     `json:"result" yaml:"result"`
	At     time.Time `json:"at,omitempty" yaml:"at,omitempty"`
}

type Accumulator interface {
	Current() int64
	Capacity() int

	History() []HistoryEntry
	HistoryLen() int
	LastEntry() (HistoryEntry, bool)
	HistoryString() string

	Add(v int64) (int64, error)
	Subtract(v int64) (int64, error)
	Multiply(v int64) (int64, error)
	Divide(v int64) (int64, error)
	Modulo(v int64) (int64, error)
	Negate() (int64, error)
	Power(exp int64) (int64, error)
	Factorial() (int64, error)

	// Perform applies op to the current value. On error the state is left untouched
	// and the unchanged current value is returned with the error.
	Perform(op Operation) (int64, error)

	Clear()
	ClearHistory()
}
