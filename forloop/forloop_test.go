package forloop

import (
	"testing"

	"github.com/nickng/loopir/ir"
)

func TestNew(t *testing.T) {
	blk := ir.NewOperation("func").AddRegion().AddBlock()
	lb := ir.NewConst(0, ir.I32)
	ub := ir.NewConst(10, ir.I32)
	step := ir.NewConst(1, ir.I32)
	init := ir.NewConst(0, ir.I64)
	for _, op := range []*ir.Operation{lb, ub, step, init} {
		blk.Append(op)
	}
	l := New(lb.Result(0), ub.Result(0), step.Result(0), init.Result(0))
	blk.Append(l.Op())

	if expect, got := 4, l.Op().NumOperands(); expect != got {
		t.Errorf("loop should have %d operands, got %d", expect, got)
	}
	if expect, got := 1, l.Op().NumResults(); expect != got {
		t.Errorf("loop should have %d result, got %d", expect, got)
	}
	if expect, got := 2, l.Body().NumArgs(); expect != got {
		t.Errorf("body should have %d placeholders, got %d", expect, got)
	}
	if expect, got := ir.I32, l.InductionArg().Type(); expect != got {
		t.Errorf("induction variable should be %s, got %s", expect, got)
	}
	if expect, got := ir.I64, l.IterArgs()[0].Type(); expect != got {
		t.Errorf("iteration placeholder should be %s, got %s", expect, got)
	}
	if y := l.YieldOp(); y == nil || y.Operand(0) != l.IterArgs()[0] {
		t.Errorf("builder should terminate the body with a forwarding yield")
	}
}

func TestWrapKind(t *testing.T) {
	if _, err := Wrap(ir.NewOperation("const")); err != ErrNotForLoop {
		t.Errorf("wrapping a foreign op should fail with ErrNotForLoop, got %v", err)
	}
}
