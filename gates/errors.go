// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gates

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Construction errors. Errors returned by the Builder wrap one of these; use
// errors.Cause to test for them.
//
var (
	ErrUnknownKind    = errors.New("invalid functor type")
	ErrTooManyInputs  = errors.New("too many inputs")
	ErrUnresolved     = errors.New("unresolved input reference")
	ErrDelayStrength  = errors.New("delay not supported with non default drive strengths")
	ErrDuplicateLabel = errors.New("label already defined")
	ErrWidth          = errors.New("invalid width")
	ErrStrength       = errors.New("invalid drive strength")
)

// BuildError lists all construction errors found while building a network.
//
type BuildError struct {
	Errs []error
}

func (e *BuildError) Error() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(e.Errs)))
	if len(e.Errs) == 1 {
		b.WriteString(" construction error")
	} else {
		b.WriteString(" construction errors")
	}
	for _, err := range e.Errs {
		b.WriteString("\n\t")
		b.WriteString(err.Error())
	}
	return b.String()
}
