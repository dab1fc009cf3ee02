// Package diag provides the diagnostics channel for structural IR errors.
//
// Structural verification failures are defects in the IR or in a construct's
// implementation: they are reported through a Reporter and are not a
// recoverable outcome of a transformation.
package diag

import (
	"fmt"
	"sync"

	"go.uber.org/multierr"

	"github.com/nickng/loopir/ir"
)

// Diagnostic is one structural error, retaining the offending operation.
type Diagnostic struct {
	Op  *ir.Operation // Offending operation.
	Msg string
}

func (d Diagnostic) Error() string {
	if d.Op == nil {
		return d.Msg
	}
	return fmt.Sprintf("%q: %s", d.Op.Kind(), d.Msg)
}

// Reporter is the channel a verifier reports structural errors to.
type Reporter interface {
	Errorf(op *ir.Operation, format string, args ...interface{})
}

// List is a Reporter that collects diagnostics.
type List struct {
	sync.Mutex
	diags []Diagnostic
}

// Errorf records a new diagnostic against op.
func (l *List) Errorf(op *ir.Operation, format string, args ...interface{}) {
	l.Lock()
	defer l.Unlock()
	l.diags = append(l.diags, Diagnostic{Op: op, Msg: fmt.Sprintf(format, args...)})
}

// Diagnostics returns the collected diagnostics.
func (l *List) Diagnostics() []Diagnostic {
	l.Lock()
	defer l.Unlock()
	return append([]Diagnostic(nil), l.diags...)
}

// Err combines all collected diagnostics into a single error, nil if none.
func (l *List) Err() error {
	l.Lock()
	defer l.Unlock()
	var err error
	for _, d := range l.diags {
		err = multierr.Append(err, d)
	}
	return err
}
