package loops

import (
	"github.com/pkg/errors"

	"github.com/nickng/loopir/rewrite"
)

// ErrNotPromotable is returned when a loop cannot be proven to run exactly
// one iteration. The IR is unchanged on this path.
var ErrNotPromotable = errors.New("loops: cannot prove the loop runs exactly one iteration")

// PromoteIfSingleIteration collapses l into its body when the construct can
// prove the loop executes exactly once. Proof requires construct-specific
// bound reasoning, so the default for constructs that do not implement
// Promoter is ErrNotPromotable with no mutation.
func PromoteIfSingleIteration(rw *rewrite.Rewriter, l LoopLike) error {
	if p, ok := l.(Promoter); ok {
		return p.PromoteIfSingleIteration(rw)
	}
	return ErrNotPromotable
}

// Inline splices the single-block body of l into the enclosing block in
// place of the loop: every use of an iteration placeholder is rewritten to
// the corresponding init, the terminator's yields become the loop's results,
// and the construct is erased.
//
// Inline performs no proof. It is the shared promotion routine Promoter
// implementations call once single iteration is established.
func Inline(rw *rewrite.Rewriter, l CarriesValues) error {
	body := l.LoopRegions()[0].Entry()
	if body == nil {
		return errors.Errorf("inline %q: loop has no body block", l.Op().Kind())
	}
	inits := l.Inits()
	for i, arg := range l.IterArgs() {
		rw.ReplaceAllUsesWith(arg, inits[i])
	}
	yields := l.YieldedValues()
	if yield := l.YieldOp(); yield != nil {
		if err := rw.EraseOp(yield); err != nil {
			return err
		}
	}
	op := l.Op()
	rw.InlineBlockBefore(body, op)
	for i, r := range op.Results() {
		rw.ReplaceAllUsesWith(r, yields[i])
	}
	return rw.EraseOp(op)
}
