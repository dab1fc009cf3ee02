// Package forloop implements the counting-loop construct
//
//	for i = lb; i < ub; i += step { ... }
//
// with loop-carried values. The construct overrides the full optional
// surface of the loops contract: it reports canonical bounds, proves
// single-iteration promotion from folded bounds, and participates in yield
// extension.
package forloop

import (
	"github.com/pkg/errors"

	"github.com/nickng/loopir/ir"
	"github.com/nickng/loopir/loops"
	"github.com/nickng/loopir/rewrite"
)

// Operation kinds owned by this package.
const (
	Kind      = "for.loop"
	YieldKind = "for.yield"
)

// ErrNotForLoop is the error returned when wrapping a foreign operation.
var ErrNotForLoop = errors.New("forloop: operation is not a " + Kind)

func init() {
	loops.RegisterKind(Kind, func(op *ir.Operation) (loops.LoopLike, error) {
		return Wrap(op)
	})
}

// Loop is the capability surface of a for.loop operation.
//
// Operand layout: lb, ub, step, inits... — entry block arguments: induction
// variable then one iteration placeholder per init. The body terminator is a
// for.yield with one operand per carried value. Results mirror the inits.
type Loop struct {
	op *ir.Operation
}

// Wrap returns the capability surface of op.
func Wrap(op *ir.Operation) (*Loop, error) {
	if op.Kind() != Kind {
		return nil, ErrNotForLoop
	}
	return &Loop{op: op}, nil
}

// newOp builds a detached for.loop with an empty body region.
func newOp(lb, ub, step ir.Value, inits []ir.Value) *ir.Operation {
	op := ir.NewOperation(Kind)
	op.AddOperand(lb)
	op.AddOperand(ub)
	op.AddOperand(step)
	for _, v := range inits {
		op.AddOperand(v)
	}
	for _, v := range inits {
		op.AddResult(v.Type())
	}
	op.AddRegion()
	return op
}

// New builds a detached for.loop with an entry block holding the induction
// placeholder and one iteration placeholder per init, terminated by a
// for.yield forwarding the placeholders. Callers insert body operations
// before the terminator and retarget the yield operands as needed.
func New(lb, ub, step ir.Value, inits ...ir.Value) *Loop {
	op := newOp(lb, ub, step, inits)
	entry := op.Region(0).AddBlock()
	entry.AddArg(lb.Type())
	yield := ir.NewOperation(YieldKind)
	for _, v := range inits {
		yield.AddOperand(entry.AddArg(v.Type()))
	}
	entry.Append(yield)
	return &Loop{op: op}
}

func (l *Loop) Op() *ir.Operation { return l.op }

func (l *Loop) LoopRegions() []*ir.Region {
	return []*ir.Region{l.op.Region(0)}
}

// Body returns the loop body block.
func (l *Loop) Body() *ir.Block { return l.op.Region(0).Entry() }

// InductionArg returns the induction variable placeholder.
func (l *Loop) InductionArg() *ir.BlockArg { return l.Body().Arg(0) }

func (l *Loop) Inits() []ir.Value { return l.op.Operands()[3:] }

func (l *Loop) IterArgs() []*ir.BlockArg {
	body := l.Body()
	if body == nil {
		return nil
	}
	return body.Args()[1:]
}

func (l *Loop) YieldOp() *ir.Operation {
	body := l.Body()
	if body == nil {
		return nil
	}
	t := body.Terminator()
	if t == nil || t.Kind() != YieldKind {
		return nil
	}
	return t
}

func (l *Loop) YieldedValues() []ir.Value {
	y := l.YieldOp()
	if y == nil {
		return nil
	}
	return y.Operands()
}

func (l *Loop) CloneWithInits(rw *rewrite.Rewriter, inits []ir.Value) (loops.CarriesValues, error) {
	op := newOp(l.op.Operand(0), l.op.Operand(1), l.op.Operand(2), inits)
	rw.InsertBefore(op, l.op)
	return &Loop{op: op}, nil
}

// SingleInductionVar implements loops.Bounded.
func (l *Loop) SingleInductionVar() (ir.Value, bool) {
	return l.InductionArg(), true
}

// LowerBound implements loops.Bounded, folding a constant bound.
func (l *Loop) LowerBound() (ir.FoldResult, bool) {
	return ir.Fold(l.op.Operand(0)), true
}

// UpperBound implements loops.Bounded, folding a constant bound.
func (l *Loop) UpperBound() (ir.FoldResult, bool) {
	return ir.Fold(l.op.Operand(1)), true
}

// Step implements loops.Bounded, folding a constant step.
func (l *Loop) Step() (ir.FoldResult, bool) {
	return ir.Fold(l.op.Operand(2)), true
}

// PromoteIfSingleIteration implements loops.Promoter: when the folded
// bounds prove exactly one iteration, the induction placeholder becomes the
// lower bound and the body is inlined in place of the loop.
func (l *Loop) PromoteIfSingleIteration(rw *rewrite.Rewriter) error {
	n, ok := loops.ConstantTripCount(l)
	if !ok || n != 1 {
		return loops.ErrNotPromotable
	}
	rw.ReplaceAllUsesWith(l.InductionArg(), l.op.Operand(0))
	return loops.Inline(rw, l)
}
