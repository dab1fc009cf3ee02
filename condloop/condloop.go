// Package condloop implements an iterate-until-condition loop construct.
//
// The loop repeats its body while the condition operand of its cond.next
// terminator holds. It carries values but has no canonical induction
// variable or bounds, so bound introspection correctly reports "unknown"
// and single-iteration promotion fails through the contract defaults.
package condloop

import (
	"github.com/pkg/errors"

	"github.com/nickng/loopir/ir"
	"github.com/nickng/loopir/loops"
	"github.com/nickng/loopir/rewrite"
)

// Operation kinds owned by this package.
const (
	Kind     = "cond.loop"
	NextKind = "cond.next"
)

// ErrNotCondLoop is the error returned when wrapping a foreign operation.
var ErrNotCondLoop = errors.New("condloop: operation is not a " + Kind)

func init() {
	loops.RegisterKind(Kind, func(op *ir.Operation) (loops.LoopLike, error) {
		return Wrap(op)
	})
}

// Loop is the capability surface of a cond.loop operation.
//
// Operands are the inits; entry block arguments are the iteration
// placeholders, one per init. The body terminator is a cond.next whose
// operand 0 is the continue condition and whose remaining operands are the
// yields. Results mirror the inits.
type Loop struct {
	op *ir.Operation
}

// Wrap returns the capability surface of op.
func Wrap(op *ir.Operation) (*Loop, error) {
	if op.Kind() != Kind {
		return nil, ErrNotCondLoop
	}
	return &Loop{op: op}, nil
}

func newOp(inits []ir.Value) *ir.Operation {
	op := ir.NewOperation(Kind)
	for _, v := range inits {
		op.AddOperand(v)
	}
	for _, v := range inits {
		op.AddResult(v.Type())
	}
	op.AddRegion()
	return op
}

// New builds a detached cond.loop with an entry block holding one
// iteration placeholder per init. The body has no terminator yet: callers
// append one with NewNext once the continue condition is computed.
func New(inits ...ir.Value) *Loop {
	op := newOp(inits)
	entry := op.Region(0).AddBlock()
	for _, v := range inits {
		entry.AddArg(v.Type())
	}
	return &Loop{op: op}
}

// NewNext returns a detached cond.next terminator: continue on cond,
// passing yields to the next iteration.
func NewNext(cond ir.Value, yields ...ir.Value) *ir.Operation {
	op := ir.NewOperation(NextKind)
	op.AddOperand(cond)
	for _, v := range yields {
		op.AddOperand(v)
	}
	return op
}

func (l *Loop) Op() *ir.Operation { return l.op }

func (l *Loop) LoopRegions() []*ir.Region {
	return []*ir.Region{l.op.Region(0)}
}

// Body returns the loop body block.
func (l *Loop) Body() *ir.Block { return l.op.Region(0).Entry() }

func (l *Loop) Inits() []ir.Value { return l.op.Operands() }

func (l *Loop) IterArgs() []*ir.BlockArg {
	body := l.Body()
	if body == nil {
		return nil
	}
	return body.Args()
}

func (l *Loop) YieldOp() *ir.Operation {
	body := l.Body()
	if body == nil {
		return nil
	}
	t := body.Terminator()
	if t == nil || t.Kind() != NextKind {
		return nil
	}
	return t
}

func (l *Loop) YieldedValues() []ir.Value {
	y := l.YieldOp()
	if y == nil {
		return nil
	}
	return y.Operands()[1:]
}

func (l *Loop) CloneWithInits(rw *rewrite.Rewriter, inits []ir.Value) (loops.CarriesValues, error) {
	op := newOp(inits)
	rw.InsertBefore(op, l.op)
	return &Loop{op: op}, nil
}
