package loops

import "github.com/nickng/loopir/ir"

// MoveOutOfLoop relocates op to immediately precede the loop in its parent
// block. Repeated calls in discovery order keep the hoisted operations in
// that same relative order.
//
// The caller must have proven op loop-invariant: every operand satisfies
// IsDefinedOutsideOfLoop and op has no iteration-dependent side effects.
// Calling this on a non-invariant operation is not a signalled error.
//
// Constructs implementing CaptureMover relocate themselves, typically to
// also rewrite their capture list.
func MoveOutOfLoop(l LoopLike, op *ir.Operation) {
	if m, ok := l.(CaptureMover); ok {
		m.MoveOutOfLoop(op)
		return
	}
	op.MoveBefore(l.Op())
}
