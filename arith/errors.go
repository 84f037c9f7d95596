package arith

import (
	"errors"

	"github.com/sgostarter/i/commerr"
)

type Kind int

const (
	KindNone Kind = iota
	KindOverflow
	KindUnderflow
	KindDivisionByZero
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindOverflow:
		return "overflow"
	case KindUnderflow:
		return "underflow"
	case KindDivisionByZero:
		return "divisionByZero"
	case KindInvalid:
		return "invalid"
	default:
		return "none"
	}
}

// Error is the single error type produced by the checked helpers and the accumulator.
// Its fields are unexported so the shared sentinels below cannot be altered by callers.
type Error struct {
	kind   Kind
	reason string
}

func (e *Error) Kind() Kind {
	return e.kind
}

// Reason is only set for KindInvalid.
func (e *Error) Reason() string {
	return e.reason
}

func (e *Error) Error() string {
	switch e.kind {
	case KindOverflow:
		return "arithmetic overflow"
	case KindUnderflow:
		return "arithmetic underflow"
	case KindDivisionByZero:
		return "division by zero"
	case KindInvalid:
		return "invalid op: " + e.reason
	default:
		return "unknown arithmetic error"
	}
}

// Is matches by kind. A target without reason matches every reason of that kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return t.kind == e.kind && (t.reason == "" || t.reason == e.reason)
	}

	switch e.kind {
	case KindOverflow, KindUnderflow:
		return target == commerr.ErrOutOfRange
	case KindInvalid:
		return target == commerr.ErrInvalidArgument
	}

	return false
}

var (
	ErrOverflow       = &Error{kind: KindOverflow}
	ErrUnderflow      = &Error{kind: KindUnderflow}
	ErrDivisionByZero = &Error{kind: KindDivisionByZero}
	ErrInvalid        = &Error{kind: KindInvalid}
)

func NewInvalidError(reason string) error {
	return &Error{
		kind:   KindInvalid,
		reason: reason,
	}
}

// KindOf returns KindNone for nil and for errors outside the taxonomy.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}

	return KindNone
}

// ReasonOf returns the reason carried by an invalid-operation error.
func ReasonOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.reason
	}

	return ""
}

// Describe renders err for display, one message per kind.
func Describe(err error) string {
	switch KindOf(err) {
	case KindOverflow:
		return "result too large"
	case KindUnderflow:
		return "result too small"
	case KindDivisionByZero:
		return "cannot divide by zero"
	case KindInvalid:
		return "invalid operation: " + ReasonOf(err)
	}

	if err == nil {
		return ""
	}

	return err.Error()
}
