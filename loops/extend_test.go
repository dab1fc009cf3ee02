package loops_test

import (
	"testing"

	"github.com/nickng/loopir/forloop"
	"github.com/nickng/loopir/ir"
	"github.com/nickng/loopir/loops"
	"github.com/nickng/loopir/parloop"
	"github.com/nickng/loopir/rewrite"
)

func TestReplaceWithAdditionalYields(t *testing.T) {
	rw := rewrite.New()
	blk := newFuncBlock()
	lb := ir.NewConst(0, ir.I32)
	ub := ir.NewConst(10, ir.I32)
	step := ir.NewConst(1, ir.I32)
	init := ir.NewConst(0, ir.I32)
	v := ir.NewConst(42, ir.I32) // externally computed, to be threaded through
	for _, op := range []*ir.Operation{lb, ub, step, init, v} {
		blk.Append(op)
	}
	l := forloop.New(lb.Result(0), ub.Result(0), step.Result(0), init.Result(0))
	blk.Append(l.Op())

	// body: acc' = acc + v, yielded. v is re-read from outside every
	// iteration until the extension threads it through the loop.
	body := newAdd(l.IterArgs()[0], v.Result(0))
	l.Body().InsertBefore(body, l.YieldOp())
	l.YieldOp().SetOperand(0, body.Result(0))

	sink := newAdd(l.Op().Result(0), l.Op().Result(0))
	blk.Append(sink)

	oldOp := l.Op()
	nl, err := loops.ReplaceWithAdditionalYields(rw, l, []ir.Value{v.Result(0)}, true,
		func(rw *rewrite.Rewriter, newArgs []*ir.BlockArg) []ir.Value {
			return []ir.Value{newArgs[0]}
		})
	if err != nil {
		t.Fatalf("yield extension failed: %v", err)
	}
	repl := nl.(loops.CarriesValues)
	if expect, got := 2, len(repl.Inits()); expect != got {
		t.Errorf("replacement should carry %d values, got %d", expect, got)
	}
	if expect, got := 2, len(repl.IterArgs()); expect != got {
		t.Errorf("replacement should have %d placeholders, got %d", expect, got)
	}
	if expect, got := 2, len(repl.YieldedValues()); expect != got {
		t.Errorf("replacement should yield %d values, got %d", expect, got)
	}
	if repl.Inits()[1] != v.Result(0) {
		t.Errorf("new init should be appended after the existing ones")
	}
	newArg := repl.IterArgs()[1]
	if body.Operand(1) != newArg {
		t.Errorf("in-body use of the init should become the new placeholder")
	}
	if repl.YieldedValues()[1] != newArg {
		t.Errorf("forwarded yield should be the new placeholder")
	}
	// Original carried value is untouched.
	if repl.Inits()[0] != init.Result(0) {
		t.Errorf("existing init should be preserved")
	}
	if repl.YieldedValues()[0] != body.Result(0) {
		t.Errorf("existing yield should be preserved")
	}
	if body.Block() != repl.LoopRegions()[0].Entry() {
		t.Errorf("body ownership should transfer to the replacement")
	}
	// Old construct destroyed, results forwarded.
	if oldOp.Block() != nil {
		t.Errorf("old construct should be erased")
	}
	if sink.Operand(0) != repl.Op().Result(0) {
		t.Errorf("old loop result uses should forward to the replacement")
	}
	if expect, got := "const,const,const,const,const,for.loop,add", blockKinds(blk); expect != got {
		t.Errorf("block should hold the replacement in place, want %s got %s", expect, got)
	}
}

func TestReplaceWithAdditionalIterOperands(t *testing.T) {
	rw := rewrite.New()
	blk := newFuncBlock()
	lb := ir.NewConst(0, ir.I32)
	ub := ir.NewConst(10, ir.I32)
	step := ir.NewConst(1, ir.I32)
	acc := ir.NewConst(5, ir.I32)
	for _, op := range []*ir.Operation{lb, ub, step, acc} {
		blk.Append(op)
	}
	l := forloop.New(lb.Result(0), ub.Result(0), step.Result(0))
	blk.Append(l.Op())

	nl, err := loops.ReplaceWithAdditionalIterOperands(rw, l, []ir.Value{acc.Result(0)}, false)
	if err != nil {
		t.Fatalf("iter-operand extension failed: %v", err)
	}
	repl := nl.(loops.CarriesValues)
	if expect, got := 1, len(repl.Inits()); expect != got {
		t.Errorf("replacement should carry %d value, got %d", expect, got)
	}
	if repl.YieldedValues()[0] != repl.IterArgs()[0] {
		t.Errorf("pass-through accumulator should forward its placeholder")
	}
}

func TestReplaceWithAdditionalYieldsUnsupported(t *testing.T) {
	rw := rewrite.New()
	blk := newFuncBlock()
	x := ir.NewConst(1, ir.I32)
	blk.Append(x)
	l := parloop.New(x.Result(0))
	blk.Append(l.Op())
	before := blockKinds(blk)

	if _, err := loops.ReplaceWithAdditionalYields(rw, l, []ir.Value{x.Result(0)}, true, loops.ForwardYields); err != loops.ErrNoIterArgs {
		t.Errorf("construct without loop-carried values should fail, got %v", err)
	}
	if got := blockKinds(blk); got != before {
		t.Errorf("failed extension must not mutate the IR, want %s got %s", before, got)
	}
}
