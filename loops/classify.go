package loops

import "github.com/nickng/loopir/ir"

// IsDefinedOutsideOfLoop reports whether v is defined outside the body of l:
// the value's home region is not nested inside any region owned by the loop.
//
// Constructs implementing OutsideClassifier answer themselves.
func IsDefinedOutsideOfLoop(l LoopLike, v ir.Value) bool {
	if oc, ok := l.(OutsideClassifier); ok {
		return oc.IsDefinedOutsideOfLoop(v)
	}
	blk := v.Parent()
	if blk == nil {
		return true
	}
	for _, r := range l.LoopRegions() {
		if r.IsAncestor(blk.Region()) {
			return false
		}
	}
	return true
}

// BlockIsInLoop reports whether b executes repeatedly: either it is nested
// inside a loop-shaped construct, or it participates in a cycle of its
// region's control-flow graph. The second condition catches IRs that
// represent loops only through unstructured cyclic branching.
func BlockIsInLoop(b *ir.Block) bool {
	for op := b.Parent(); op != nil; op = op.ParentOp() {
		if IsLoopOp(op) {
			return true
		}
	}
	// No structured loop wrapper: look for a branch cycle through b.
	return ir.Reaches(b, b)
}
