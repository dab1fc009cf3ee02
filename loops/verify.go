package loops

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/nickng/loopir/diag"
	"github.com/nickng/loopir/ir"
)

// Verify checks the structural loop-carried value invariants of l:
// the init, placeholder and yield sequences have equal length, their types
// agree pairwise at each index, and the yields are owned by a terminator
// inside the loop body. A construct that carries no values at all is
// trivially valid; a construct with any non-empty leg must have all three
// consistent (a partially implemented accessor triple is a verification
// error, not a silent default).
//
// Findings are reported to r (if non-nil) and combined into the returned
// error. Verify mutates nothing and is idempotent.
func Verify(l LoopLike, r diag.Reporter) error {
	cv, ok := l.(CarriesValues)
	if !ok {
		return nil
	}
	inits, args, yields := cv.Inits(), cv.IterArgs(), cv.YieldedValues()
	if len(inits) == 0 && len(args) == 0 && len(yields) == 0 {
		return nil
	}
	var err error
	report := func(format string, a ...interface{}) {
		if r != nil {
			r.Errorf(l.Op(), format, a...)
		}
		err = multierr.Append(err, diag.Diagnostic{Op: l.Op(), Msg: fmt.Sprintf(format, a...)})
	}
	if len(inits) != len(args) || len(args) != len(yields) {
		report("loop-carried value count mismatch: %d inits, %d iteration placeholders, %d yields",
			len(inits), len(args), len(yields))
		return err
	}
	for i := range inits {
		if expect, got := args[i].Type(), inits[i].Type(); expect != got {
			report("loop-carried value %d: init type %s does not match placeholder type %s",
				i, got, expect)
		}
		if expect, got := args[i].Type(), yields[i].Type(); expect != got {
			report("loop-carried value %d: yield type %s does not match placeholder type %s",
				i, got, expect)
		}
	}
	if y := cv.YieldOp(); y == nil {
		report("loop carries %d values but has no body terminator", len(yields))
	} else if !l.Op().IsProperAncestor(y) {
		report("yield terminator is not inside the loop body")
	}
	return err
}

// VerifyAll verifies every registered loop construct nested in r.
// Verification failure blocks further passes from running on malformed IR.
func VerifyAll(region *ir.Region, r diag.Reporter) error {
	var err error
	ir.Walk(region, func(op *ir.Operation) {
		if l, ok := FromOp(op); ok {
			err = multierr.Append(err, Verify(l, r))
		}
	})
	return err
}
