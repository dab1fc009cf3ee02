package loops_test

import (
	"testing"

	"github.com/nickng/loopir/forloop"
	"github.com/nickng/loopir/ir"
	"github.com/nickng/loopir/loops"
)

func TestFromOp(t *testing.T) {
	blk := newFuncBlock()
	lb := ir.NewConst(0, ir.I32)
	ub := ir.NewConst(10, ir.I32)
	step := ir.NewConst(1, ir.I32)
	for _, op := range []*ir.Operation{lb, ub, step} {
		blk.Append(op)
	}
	l := forloop.New(lb.Result(0), ub.Result(0), step.Result(0))
	blk.Append(l.Op())

	got, ok := loops.FromOp(l.Op())
	if !ok {
		t.Fatalf("for.loop should expose a capability surface")
	}
	if got.Op() != l.Op() {
		t.Errorf("capability surface should wrap the same operation")
	}
	if _, ok := loops.FromOp(lb); ok {
		t.Errorf("const should not be loop-shaped")
	}
	if !loops.IsLoopOp(l.Op()) {
		t.Errorf("for.loop should be loop-shaped")
	}
}

func TestFindLoops(t *testing.T) {
	blk := newFuncBlock()
	lb := ir.NewConst(0, ir.I32)
	ub := ir.NewConst(10, ir.I32)
	step := ir.NewConst(1, ir.I32)
	for _, op := range []*ir.Operation{lb, ub, step} {
		blk.Append(op)
	}
	outer := forloop.New(lb.Result(0), ub.Result(0), step.Result(0))
	blk.Append(outer.Op())
	inner := forloop.New(lb.Result(0), ub.Result(0), step.Result(0))
	outer.Body().InsertBefore(inner.Op(), outer.YieldOp())

	found := loops.FindLoops(blk.Region())
	if expect, got := 2, len(found); expect != got {
		t.Fatalf("should find %d loops, got %d", expect, got)
	}
	if found[0].Op() != outer.Op() || found[1].Op() != inner.Op() {
		t.Errorf("loops should be found in pre-order")
	}
}
