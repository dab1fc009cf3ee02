package loops

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/nickng/loopir/ir"
	"github.com/nickng/loopir/rewrite"
)

// LoopLike is the mandatory surface every loop-shaped operation implements.
type LoopLike interface {
	// Op returns the underlying operation.
	Op() *ir.Operation

	// LoopRegions returns the regions forming the loop body, in order.
	LoopRegions() []*ir.Region
}

// CarriesValues is the surface of constructs with loop-carried values.
//
// A loop-carried value is the triple (init, placeholder, yield): the init
// operand is consumed before the first iteration, the iteration-entry
// placeholder is the block argument rebound each iteration, and the yield is
// the body terminator operand passed to the next iteration. The three
// sequences must have equal length with pairwise matching types; Verify
// enforces this.
type CarriesValues interface {
	LoopLike

	// Inits returns the initializer operands, one per carried value.
	Inits() []ir.Value

	// IterArgs returns the iteration-entry placeholders, one per carried
	// value.
	IterArgs() []*ir.BlockArg

	// YieldedValues returns the values the body terminator passes to the
	// next iteration, one per carried value.
	YieldedValues() []ir.Value

	// YieldOp returns the body terminator owning the yielded values.
	YieldOp() *ir.Operation

	// CloneWithInits builds a new construct of the same kind with the given
	// full initializer list, inserted before this one. The clone's regions
	// are created empty: the caller transfers body ownership.
	CloneWithInits(rw *rewrite.Rewriter, inits []ir.Value) (CarriesValues, error)
}

// OutsideClassifier overrides the default definition-scope classifier.
// Constructs using explicit capture lists answer in O(1) from the capture
// set instead of walking region ancestry.
type OutsideClassifier interface {
	IsDefinedOutsideOfLoop(v ir.Value) bool
}

// CaptureMover overrides the default invariant-motion relocation.
// Constructs with capture-list semantics must also rewrite captures to
// reference the relocated operation.
type CaptureMover interface {
	MoveOutOfLoop(op *ir.Operation)
}

// Promoter is implemented by constructs that can prove, from their own
// bound metadata, that the loop runs exactly one iteration.
type Promoter interface {
	PromoteIfSingleIteration(rw *rewrite.Rewriter) error
}

// Bounded is implemented by constructs with a canonical single induction
// variable and canonical bounds. Constructs with several induction
// variables or data-driven iteration must not implement it: reporting
// "unknown" is the correct answer there.
type Bounded interface {
	SingleInductionVar() (ir.Value, bool)
	LowerBound() (ir.FoldResult, bool)
	Step() (ir.FoldResult, bool)
	UpperBound() (ir.FoldResult, bool)
}

// WrapFunc wraps an operation of a registered kind as its construct.
type WrapFunc func(*ir.Operation) (LoopLike, error)

var (
	regMu sync.Mutex
	kinds = make(map[string]WrapFunc)
)

// RegisterKind registers an operation kind as loop-shaped.
// Construct packages call this from init.
func RegisterKind(kind string, wrap WrapFunc) {
	regMu.Lock()
	defer regMu.Unlock()
	if _, exists := kinds[kind]; exists {
		panic(errors.Errorf("loops: kind %q registered twice", kind))
	}
	kinds[kind] = wrap
}

// FromOp obtains the capability surface of op, if its kind is a registered
// loop construct.
func FromOp(op *ir.Operation) (LoopLike, bool) {
	regMu.Lock()
	wrap, ok := kinds[op.Kind()]
	regMu.Unlock()
	if !ok {
		return nil, false
	}
	l, err := wrap(op)
	if err != nil {
		return nil, false
	}
	return l, true
}

// IsLoopOp reports whether op is a registered loop construct.
func IsLoopOp(op *ir.Operation) bool {
	_, ok := FromOp(op)
	return ok
}

// FindLoops returns all loop constructs nested in r, in pre-order.
func FindLoops(r *ir.Region) []LoopLike {
	var found []LoopLike
	ir.Walk(r, func(op *ir.Operation) {
		if l, ok := FromOp(op); ok {
			found = append(found, l)
		}
	})
	return found
}
