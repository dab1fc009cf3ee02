package loops

import (
	"go.uber.org/zap"

	"github.com/nickng/loopir/diag"
	"github.com/nickng/loopir/ir"
)

// Hoister drives invariant code motion over loop bodies.
//
// An operation in the body entry block is hoisted when every operand is
// defined outside the loop. Hoisting one operation can make its users
// invariant, so the driver runs to a fixed point. Operations in non-entry
// blocks execute conditionally and are never hoisted.
type Hoister struct {
	logger  *diag.Logger
	canMove func(*ir.Operation) bool
}

// NewHoister returns a new Hoister.
func NewHoister() *Hoister {
	return &Hoister{
		logger:  &diag.Logger{SugaredLogger: zap.NewNop().Sugar()},
		canMove: defaultCanMove,
	}
}

// SetLogger implements diag.LogSetter.
func (h *Hoister) SetLogger(l *diag.Logger) {
	h.logger = l.WithModule("hoist")
}

// SetMoveFilter overrides the movability test for operation kinds with
// side effects the default cannot see.
func (h *Hoister) SetMoveFilter(f func(*ir.Operation) bool) {
	h.canMove = f
}

// defaultCanMove admits plain value-producing operations. Terminators,
// region-owning operations and result-less (effect-only) operations stay.
func defaultCanMove(op *ir.Operation) bool {
	return op.NumResults() > 0 && op.NumRegions() == 0 && len(op.Successors()) == 0
}

// Hoist moves every provably invariant operation of l's body out of the
// loop and returns the number of operations moved. Hoisted operations keep
// their relative order.
func (h *Hoister) Hoist(l LoopLike) int {
	moved := 0
	for {
		n := h.hoistOnce(l)
		moved += n
		if n == 0 {
			return moved
		}
	}
}

func (h *Hoister) hoistOnce(l LoopLike) int {
	n := 0
	for _, r := range l.LoopRegions() {
		entry := r.Entry()
		if entry == nil {
			continue
		}
		term := entry.Terminator()
		for _, op := range entry.Ops() {
			if op == term || !h.canMove(op) {
				continue
			}
			if !h.invariant(l, op) {
				continue
			}
			h.logger.Debugf("%s hoist %q out of %q", h.logger.Module(), op.Kind(), l.Op().Kind())
			MoveOutOfLoop(l, op)
			n++
		}
	}
	return n
}

func (h *Hoister) invariant(l LoopLike, op *ir.Operation) bool {
	for _, v := range op.Operands() {
		if !IsDefinedOutsideOfLoop(l, v) {
			return false
		}
	}
	return true
}
