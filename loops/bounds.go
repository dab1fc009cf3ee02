package loops

import "github.com/nickng/loopir/ir"

// SingleInductionVar returns the loop's canonical induction variable.
// Unknown unless the construct implements Bounded.
func SingleInductionVar(l LoopLike) (ir.Value, bool) {
	if b, ok := l.(Bounded); ok {
		return b.SingleInductionVar()
	}
	return nil, false
}

// LowerBound returns the loop's canonical lower bound.
// Unknown unless the construct implements Bounded.
func LowerBound(l LoopLike) (ir.FoldResult, bool) {
	if b, ok := l.(Bounded); ok {
		return b.LowerBound()
	}
	return ir.FoldResult{}, false
}

// Step returns the loop's canonical step.
// Unknown unless the construct implements Bounded.
func Step(l LoopLike) (ir.FoldResult, bool) {
	if b, ok := l.(Bounded); ok {
		return b.Step()
	}
	return ir.FoldResult{}, false
}

// UpperBound returns the loop's canonical (exclusive) upper bound.
// Unknown unless the construct implements Bounded.
func UpperBound(l LoopLike) (ir.FoldResult, bool) {
	if b, ok := l.(Bounded); ok {
		return b.UpperBound()
	}
	return ir.FoldResult{}, false
}

// ConstantTripCount computes the iteration count of l when lower bound,
// step and upper bound all fold to integer constants and the step is
// positive.
func ConstantTripCount(l LoopLike) (int64, bool) {
	lb, ok := LowerBound(l)
	if !ok {
		return 0, false
	}
	ub, ok := UpperBound(l)
	if !ok {
		return 0, false
	}
	step, ok := Step(l)
	if !ok {
		return 0, false
	}
	lo, ok := lb.ConstInt()
	if !ok {
		return 0, false
	}
	hi, ok := ub.ConstInt()
	if !ok {
		return 0, false
	}
	st, ok := step.ConstInt()
	if !ok || st <= 0 {
		return 0, false
	}
	if lo >= hi {
		return 0, true
	}
	return (hi - lo + st - 1) / st, true
}
