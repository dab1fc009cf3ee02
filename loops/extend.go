package loops

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/nickng/loopir/ir"
	"github.com/nickng/loopir/rewrite"
)

// ErrNoIterArgs is returned when a construct does not support loop-carried
// values at all. The IR is unchanged on this path.
var ErrNoIterArgs = errors.New("loops: construct does not support loop-carried values")

// YieldFunc produces the additional terminator operands for newly added
// loop-carried values, given their freshly created entry placeholders.
// It must return exactly one value per placeholder; anything else is a
// caller contract violation, not a recoverable failure.
type YieldFunc func(rw *rewrite.Rewriter, newArgs []*ir.BlockArg) []ir.Value

// ForwardYields is the YieldFunc that forwards the new placeholders
// unchanged, producing plain pass-through accumulators.
func ForwardYields(rw *rewrite.Rewriter, newArgs []*ir.BlockArg) []ir.Value {
	vals := make([]ir.Value, len(newArgs))
	for i, a := range newArgs {
		vals[i] = a
	}
	return vals
}

// YieldExtender overrides the default yield-set extension algorithm.
type YieldExtender interface {
	ReplaceWithAdditionalYields(rw *rewrite.Rewriter, newInits []ir.Value,
		replaceUsesInLoop bool, fn YieldFunc) (LoopLike, error)
}

// ReplaceWithAdditionalYields rebuilds l as a construct of the same kind
// with newInits appended to its loop-carried values. The old construct's
// body is transferred wholesale to the replacement and the old construct is
// erased; its results forward to the replacement's leading results.
//
// With replaceUsesInLoop set, every use of newInits[i] lexically inside the
// moved body is rewritten to the corresponding new placeholder, threading an
// externally computed value through the loop instead of re-reading it every
// iteration.
//
// Constructs without loop-carried value support fail with ErrNoIterArgs and
// no mutation.
func ReplaceWithAdditionalYields(rw *rewrite.Rewriter, l LoopLike, newInits []ir.Value,
	replaceUsesInLoop bool, fn YieldFunc) (LoopLike, error) {
	if e, ok := l.(YieldExtender); ok {
		return e.ReplaceWithAdditionalYields(rw, newInits, replaceUsesInLoop, fn)
	}
	if cv, ok := l.(CarriesValues); ok {
		return ExtendYields(rw, cv, newInits, replaceUsesInLoop, fn)
	}
	return nil, ErrNoIterArgs
}

// ReplaceWithAdditionalIterOperands is ReplaceWithAdditionalYields with the
// yield callback fixed to forward the new placeholders unchanged.
func ReplaceWithAdditionalIterOperands(rw *rewrite.Rewriter, l LoopLike, newInits []ir.Value,
	replaceUsesInLoop bool) (LoopLike, error) {
	return ReplaceWithAdditionalYields(rw, l, newInits, replaceUsesInLoop, ForwardYields)
}

// ExtendYields is the default yield-set extension algorithm, operating
// through the CarriesValues primitives:
//
//  1. build a construct of the same kind with inits = old inits ++ newInits,
//  2. transfer the body regions wholesale, leaving the old construct
//     bodyless,
//  3. append one entry placeholder per added init,
//  4. obtain the additional yields from fn and append them to the
//     terminator,
//  5. optionally rewrite in-body uses of each added init to its placeholder,
//
// then forward the old results and erase the old construct.
func ExtendYields(rw *rewrite.Rewriter, l CarriesValues, newInits []ir.Value,
	replaceUsesInLoop bool, fn YieldFunc) (CarriesValues, error) {
	old := l.Op()
	inits := append(l.Inits(), newInits...)
	repl, err := l.CloneWithInits(rw, inits)
	if err != nil {
		return nil, err
	}
	newOp := repl.Op()
	for i := 0; i < old.NumRegions(); i++ {
		newOp.Region(i).TakeBody(old.Region(i))
	}
	entry := repl.LoopRegions()[0].Entry()
	newArgs := make([]*ir.BlockArg, len(newInits))
	for i, v := range newInits {
		newArgs[i] = entry.AddArg(v.Type())
	}
	extra := fn(rw, newArgs)
	if len(extra) != len(newInits) {
		// Caller contract violation: the callback must produce one yield
		// per added init. See YieldFunc.
		panic(fmt.Sprintf("loops: yield callback returned %d values, want %d",
			len(extra), len(newInits)))
	}
	yield := repl.YieldOp()
	for _, v := range extra {
		yield.AddOperand(v)
	}
	if replaceUsesInLoop {
		for i, v := range newInits {
			arg := newArgs[i]
			rw.ReplaceAllUsesWithIf(v, arg, func(u ir.Use) bool {
				return newOp.IsProperAncestor(u.Owner)
			})
		}
	}
	for i, r := range old.Results() {
		rw.ReplaceAllUsesWith(r, newOp.Result(i))
	}
	if err := rw.EraseOp(old); err != nil {
		return nil, err
	}
	return repl, nil
}
