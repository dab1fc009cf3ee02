package loops_test

import (
	"testing"

	"github.com/nickng/loopir/condloop"
	"github.com/nickng/loopir/forloop"
	"github.com/nickng/loopir/ir"
	"github.com/nickng/loopir/loops"
	"github.com/nickng/loopir/rewrite"
)

func TestPromoteSingleIteration(t *testing.T) {
	rw := rewrite.New()
	blk := newFuncBlock()
	lb := ir.NewConst(0, ir.I32)
	ub := ir.NewConst(1, ir.I32)
	step := ir.NewConst(1, ir.I32)
	init := ir.NewConst(100, ir.I32)
	for _, op := range []*ir.Operation{lb, ub, step, init} {
		blk.Append(op)
	}
	l := forloop.New(lb.Result(0), ub.Result(0), step.Result(0), init.Result(0))
	blk.Append(l.Op())

	// body: acc' = acc + i, yielded.
	body := newAdd(l.IterArgs()[0], l.InductionArg())
	l.Body().InsertBefore(body, l.YieldOp())
	l.YieldOp().SetOperand(0, body.Result(0))

	// Consumer of the loop result.
	sink := newAdd(l.Op().Result(0), l.Op().Result(0))
	blk.Append(sink)

	if err := loops.PromoteIfSingleIteration(rw, l); err != nil {
		t.Fatalf("single-iteration loop should promote, got %v", err)
	}
	if expect, got := "const,const,const,const,add,add", blockKinds(blk); expect != got {
		t.Errorf("loop should be replaced by its body, want %s got %s", expect, got)
	}
	if body.Block() != blk {
		t.Errorf("body op should be inlined into the enclosing block")
	}
	if body.Operand(0) != init.Result(0) {
		t.Errorf("iteration placeholder use should become the init")
	}
	if body.Operand(1) != lb.Result(0) {
		t.Errorf("induction variable use should become the lower bound")
	}
	if sink.Operand(0) != body.Result(0) {
		t.Errorf("loop result use should become the yielded value")
	}
}

func TestPromoteUnknownTripCount(t *testing.T) {
	rw := rewrite.New()
	blk := newFuncBlock()
	lb := ir.NewConst(0, ir.I32)
	ub := ir.NewConst(10, ir.I32)
	step := ir.NewConst(1, ir.I32)
	init := ir.NewConst(0, ir.I32)
	for _, op := range []*ir.Operation{lb, ub, step, init} {
		blk.Append(op)
	}
	l := forloop.New(lb.Result(0), ub.Result(0), step.Result(0), init.Result(0))
	blk.Append(l.Op())
	before := blockKinds(blk)
	bodyOps := l.Body().NumOps()

	if err := loops.PromoteIfSingleIteration(rw, l); err != loops.ErrNotPromotable {
		t.Errorf("multi-iteration loop should not promote, got %v", err)
	}
	if got := blockKinds(blk); got != before {
		t.Errorf("failed promotion must not mutate the IR, want %s got %s", before, got)
	}
	if expect, got := bodyOps, l.Body().NumOps(); expect != got {
		t.Errorf("failed promotion must keep the body, want %d ops got %d", expect, got)
	}
}

func TestPromoteDefaultsToFailure(t *testing.T) {
	rw := rewrite.New()
	blk := newFuncBlock()
	init := ir.NewConst(0, ir.I32)
	blk.Append(init)
	l := condloop.New(init.Result(0))
	blk.Append(l.Op())

	// Condition-driven loops have no bound metadata: the contract default
	// must report failure without mutation.
	if err := loops.PromoteIfSingleIteration(rw, l); err != loops.ErrNotPromotable {
		t.Errorf("condloop should fail promotion, got %v", err)
	}
	if expect, got := "const,cond.loop", blockKinds(blk); expect != got {
		t.Errorf("failed promotion must not mutate the IR, want %s got %s", expect, got)
	}
}
