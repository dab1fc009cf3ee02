package loops_test

import (
	"testing"

	"go.uber.org/zap"

	"github.com/nickng/loopir/diag"
	"github.com/nickng/loopir/forloop"
	"github.com/nickng/loopir/ir"
	"github.com/nickng/loopir/loops"
)

func TestHoist(t *testing.T) {
	blk := newFuncBlock()
	lb := ir.NewConst(0, ir.I32)
	ub := ir.NewConst(10, ir.I32)
	step := ir.NewConst(1, ir.I32)
	c := ir.NewConst(3, ir.I32)
	for _, op := range []*ir.Operation{lb, ub, step, c} {
		blk.Append(op)
	}
	l := forloop.New(lb.Result(0), ub.Result(0), step.Result(0))
	blk.Append(l.Op())

	// inv1 is invariant immediately; inv2 only after inv1 is hoisted;
	// varying depends on the induction variable and must stay.
	inv1 := newAdd(c.Result(0), c.Result(0))
	l.Body().InsertBefore(inv1, l.YieldOp())
	inv2 := newAdd(inv1.Result(0), c.Result(0))
	l.Body().InsertBefore(inv2, l.YieldOp())
	varying := newAdd(inv2.Result(0), l.InductionArg())
	l.Body().InsertBefore(varying, l.YieldOp())

	h := loops.NewHoister()
	h.SetLogger(&diag.Logger{SugaredLogger: zap.NewNop().Sugar()})
	if expect, got := 2, h.Hoist(l); expect != got {
		t.Errorf("should hoist %d ops, got %d", expect, got)
	}
	if expect, got := "const,const,const,const,add,add,for.loop", blockKinds(blk); expect != got {
		t.Errorf("hoisted ops should precede the loop, want %s got %s", expect, got)
	}
	if inv1.Block() != blk || inv2.Block() != blk {
		t.Errorf("invariant ops should be in the enclosing block")
	}
	if varying.Block() != l.Body() {
		t.Errorf("induction-dependent op should stay in the body")
	}
	if expect, got := 0, h.Hoist(l); expect != got {
		t.Errorf("second run should hoist nothing, got %d", got)
	}
}

func TestHoistMoveFilter(t *testing.T) {
	blk := newFuncBlock()
	lb := ir.NewConst(0, ir.I32)
	ub := ir.NewConst(10, ir.I32)
	step := ir.NewConst(1, ir.I32)
	c := ir.NewConst(3, ir.I32)
	for _, op := range []*ir.Operation{lb, ub, step, c} {
		blk.Append(op)
	}
	l := forloop.New(lb.Result(0), ub.Result(0), step.Result(0))
	blk.Append(l.Op())
	inv := newAdd(c.Result(0), c.Result(0))
	l.Body().InsertBefore(inv, l.YieldOp())

	h := loops.NewHoister()
	h.SetMoveFilter(func(*ir.Operation) bool { return false })
	if expect, got := 0, h.Hoist(l); expect != got {
		t.Errorf("filter should block hoisting, got %d moves", got)
	}
	if inv.Block() != l.Body() {
		t.Errorf("filtered op should stay in the body")
	}
}
