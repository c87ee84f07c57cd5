package interp

import (
	"errors"
	"fmt"

	"github.com/raymyers/fastmath/pkg/dispatch"
)

var (
	// ErrOverflow is returned when checked integer arithmetic leaves the
	// range of its type.
	ErrOverflow      = errors.New("arithmetic overflow")
	ErrDivideByZero  = errors.New("division by zero")
	ErrShiftOverflow = errors.New("shift amount out of range")
	ErrType          = errors.New("type error")
	ErrUndefined     = errors.New("undefined name")
	ErrImmutable     = errors.New("assignment to immutable variable")
	ErrArity         = errors.New("wrong number of arguments")
	ErrStackOverflow = errors.New("call depth exceeded")
)

// Trap is a run-time fault raised inside a dispatched fast operation, such
// as an integer division by zero.
type Trap struct {
	Method dispatch.Method
	Cause  any
}

func (t *Trap) Error() string {
	return fmt.Sprintf("trap in %s: %v", t.Method, t.Cause)
}

func (t *Trap) Unwrap() error {
	if err, ok := t.Cause.(error); ok {
		return err
	}
	return nil
}

// returnValue carries a return statement's value up to the enclosing call.
type returnValue struct {
	value Value
}

func (r *returnValue) Error() string { return "return outside function" }
