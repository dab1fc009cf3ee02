// Package parloop implements a parallel-style loop with an explicit capture
// list: the body references outside values only through block arguments
// bound 1:1 to the loop's capture operands.
//
// Because the capture list is explicit, the construct overrides the default
// definition-scope classifier with an O(1) capture-set membership check, and
// overrides invariant motion to rewire captures when an operation crosses
// the loop boundary. The loop carries no values between iterations, so
// yield-set extension on it fails through the contract default.
package parloop

import (
	"github.com/pkg/errors"

	"github.com/nickng/loopir/ir"
	"github.com/nickng/loopir/loops"
)

// Operation kinds owned by this package.
const (
	Kind     = "par.loop"
	DoneKind = "par.done"
)

// ErrNotParLoop is the error returned when wrapping a foreign operation.
var ErrNotParLoop = errors.New("parloop: operation is not a " + Kind)

func init() {
	loops.RegisterKind(Kind, func(op *ir.Operation) (loops.LoopLike, error) {
		return Wrap(op)
	})
}

// Loop is the capability surface of a par.loop operation.
//
// Operands are the captures; entry block argument i binds capture operand i
// inside the body. The body terminator is a par.done. The loop produces no
// results and carries no values.
type Loop struct {
	op       *ir.Operation
	captures map[ir.Value]int // Capture operand index by captured value.
}

// Wrap returns the capability surface of op.
func Wrap(op *ir.Operation) (*Loop, error) {
	if op.Kind() != Kind {
		return nil, ErrNotParLoop
	}
	l := &Loop{op: op, captures: make(map[ir.Value]int)}
	for i, v := range op.Operands() {
		l.captures[v] = i
	}
	return l, nil
}

// New builds a detached par.loop capturing the given values, with an entry
// block binding each capture to a block argument and a par.done terminator.
func New(captures ...ir.Value) *Loop {
	op := ir.NewOperation(Kind)
	entry := op.AddRegion().AddBlock()
	l := &Loop{op: op, captures: make(map[ir.Value]int)}
	for i, v := range captures {
		op.AddOperand(v)
		entry.AddArg(v.Type())
		l.captures[v] = i
	}
	entry.Append(ir.NewOperation(DoneKind))
	return l
}

func (l *Loop) Op() *ir.Operation { return l.op }

func (l *Loop) LoopRegions() []*ir.Region {
	return []*ir.Region{l.op.Region(0)}
}

// Body returns the loop body block.
func (l *Loop) Body() *ir.Block { return l.op.Region(0).Entry() }

// CaptureArg returns the body placeholder bound to captured value v.
func (l *Loop) CaptureArg(v ir.Value) (*ir.BlockArg, bool) {
	i, ok := l.captures[v]
	if !ok {
		return nil, false
	}
	return l.Body().Arg(i), true
}

// IsDefinedOutsideOfLoop implements loops.OutsideClassifier with an O(1)
// membership check against the capture set. Values that are neither
// captured nor defined in the body fall back to the structural answer.
func (l *Loop) IsDefinedOutsideOfLoop(v ir.Value) bool {
	if _, ok := l.captures[v]; ok {
		return true
	}
	blk := v.Parent()
	if blk == nil {
		return true
	}
	return !l.op.Region(0).IsAncestor(blk.Region())
}

// MoveOutOfLoop implements loops.CaptureMover: relocate op before the loop
// and rewrite captures on both sides of the boundary. Operands that were
// capture placeholders are retargeted to the captured values, and body uses
// of op's results are rerouted through fresh captures.
func (l *Loop) MoveOutOfLoop(op *ir.Operation) {
	body := l.Body()
	for i, operand := range op.Operands() {
		if arg, ok := operand.(*ir.BlockArg); ok && arg.Parent() == body {
			op.SetOperand(i, l.op.Operand(arg.Index()))
		}
	}
	op.MoveBefore(l.op)
	for _, res := range op.Results() {
		var arg *ir.BlockArg
		for _, u := range res.Uses() {
			if !l.op.IsProperAncestor(u.Owner) {
				continue
			}
			if arg == nil {
				arg = l.addCapture(res)
			}
			u.Owner.SetOperand(u.Index, arg)
		}
	}
}

// addCapture appends v to the capture list and returns its new placeholder.
func (l *Loop) addCapture(v ir.Value) *ir.BlockArg {
	l.op.AddOperand(v)
	l.captures[v] = l.op.NumOperands() - 1
	return l.Body().AddArg(v.Type())
}
