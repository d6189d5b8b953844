// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"fmt"

	"github.com/pkg/errors"
)

// ContractError reports a broken representation contract between a functor
// and the network that feeds it, like a select input of the wrong size. It
// denotes a defect in the construction of the network, not a runtime
// condition: the run that raised it must be abandoned.
//
type ContractError struct {
	At  Ptr
	err error
}

func (e *ContractError) Error() string {
	return "net " + e.At.String() + ": " + e.err.Error()
}

// Cause returns the underlying error. It carries a stack trace.
func (e *ContractError) Cause() error { return e.err }

// Unwrap returns the underlying error.
func (e *ContractError) Unwrap() error { return e.err }

// Violation panics with a *ContractError for port p. Step and Run recover
// such panics and return them as errors.
//
func Violation(p Ptr, format string, args ...interface{}) {
	panic(&ContractError{At: p, err: errors.Errorf(format, args...)})
}

// FunctorPanic wraps any other panic raised while running an event. Step
// re-panics with it, along with the stack of the original panic.
//
type FunctorPanic struct {
	Value interface{} // value passed to panic
	Stack []byte      // stack at the time of the panic
}

func (p *FunctorPanic) Error() string {
	return fmt.Sprintf("%v\n\noriginal stack:\n%s", p.Value, p.Stack)
}
