package algebra

import (
	"errors"
	"fmt"
)

var (
	ErrNotAScalar   = errors.New("not a scalar")
	ErrNotASequence = errors.New("not a sequence")
	ErrNotAMapping  = errors.New("not a mapping")
	ErrNotANumber   = errors.New("not a number")
	ErrNotABoolean  = errors.New("not a boolean")
	ErrNotAList     = errors.New("not a list")
	ErrNotAMap      = errors.New("not a map")

	// ErrContract is the panic value (wrapped) for caller or engine bugs,
	// such as converting a stream of documents.
	ErrContract = errors.New("tree algebra contract violation")
)

// Error is a recoverable algebra failure. Err is one of the sentinel errors
// above. When HasPartial is set, Partial holds a best effort node the caller
// may continue with.
type Error[T any] struct {
	Err        error
	Msg        string
	Partial    T
	HasPartial bool
}

func (e *Error[T]) Error() string {
	if e.Msg == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Msg
}

func (e *Error[T]) Unwrap() error {
	return e.Err
}

// Fail returns an *Error[T] wrapping err.
func Fail[T any](err error, format string, args ...any) error {
	return &Error[T]{Err: err, Msg: fmt.Sprintf(format, args...)}
}

// FailPartial is like Fail but records a partial result.
func FailPartial[T any](partial T, err error, format string, args ...any) error {
	return &Error[T]{
		Err:        err,
		Msg:        fmt.Sprintf(format, args...),
		Partial:    partial,
		HasPartial: true,
	}
}

// Partial extracts the partial result carried by err, if any.
func Partial[T any](err error) (T, bool) {
	var e *Error[T]
	if errors.As(err, &e) && e.HasPartial {
		return e.Partial, true
	}
	var zero T
	return zero, false
}

func contractf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrContract, fmt.Sprintf(format, args...))
}
