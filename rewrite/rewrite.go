// Package rewrite provides the IR mutation service used by transformations.
//
// A Rewriter performs single operations over the IR graph: relocation,
// use replacement, block inlining and erasure. Each call is a finite,
// synchronous graph mutation with no partial effect on the error path.
// Callers are responsible for serialising rewrites within one IR sub-tree;
// the Rewriter holds no locks.
package rewrite

import (
	"io"
	"io/ioutil"
	"log"

	"github.com/pkg/errors"

	"github.com/nickng/loopir/ir"
)

// OpInUseError is the error returned when erasing an operation whose results
// still have uses.
type OpInUseError struct {
	Op *ir.Operation
}

func (e OpInUseError) Error() string {
	return errors.Errorf("cannot erase %q: results still in use", e.Op.Kind()).Error()
}

// Rewriter mutates IR in place.
type Rewriter struct {
	logger *log.Logger
}

// New returns a new Rewriter.
func New() *Rewriter {
	return &Rewriter{
		logger: log.New(ioutil.Discard, "rewrite: ", 0),
	}
}

// SetLog sets debug output stream to w.
func (rw *Rewriter) SetLog(w io.Writer) {
	if w != nil {
		rw.logger.SetOutput(w)
	}
}

// Append adds op to the end of block b.
func (rw *Rewriter) Append(b *ir.Block, op *ir.Operation) {
	rw.logger.Printf("Append: %q to ^bb%d", op.Kind(), b.ID())
	b.Append(op)
}

// InsertBefore inserts op immediately before target.
func (rw *Rewriter) InsertBefore(op, target *ir.Operation) {
	rw.logger.Printf("InsertBefore: %q before %q", op.Kind(), target.Kind())
	target.Block().InsertBefore(op, target)
}

// MoveBefore relocates op to immediately precede target in target's block.
func (rw *Rewriter) MoveBefore(op, target *ir.Operation) {
	rw.logger.Printf("MoveBefore: %q before %q", op.Kind(), target.Kind())
	op.MoveBefore(target)
}

// ReplaceAllUsesWith rewrites every use of old to use new instead.
func (rw *Rewriter) ReplaceAllUsesWith(old, new ir.Value) {
	for _, u := range old.Uses() {
		u.Owner.SetOperand(u.Index, new)
	}
	rw.logger.Printf("ReplaceAllUsesWith: %s ↦ %s\t%s", old.Name(), new.Name(), old.Type())
}

// ReplaceAllUsesWithIf rewrites every use of old satisfying pred to use new.
func (rw *Rewriter) ReplaceAllUsesWithIf(old, new ir.Value, pred func(ir.Use) bool) {
	n := 0
	for _, u := range old.Uses() {
		if pred(u) {
			u.Owner.SetOperand(u.Index, new)
			n++
		}
	}
	rw.logger.Printf("ReplaceAllUsesWithIf: %s ↦ %s (%d uses)", old.Name(), new.Name(), n)
}

// InlineBlockBefore splices all operations of b into target's block,
// immediately before target, preserving their order. Uses of b's block
// arguments must already be rewritten by the caller; b is left empty.
func (rw *Rewriter) InlineBlockBefore(b *ir.Block, target *ir.Operation) {
	rw.logger.Printf("InlineBlockBefore: ^bb%d before %q", b.ID(), target.Kind())
	for _, op := range b.Ops() {
		op.MoveBefore(target)
	}
}

// EraseOp unlinks op from its block and drops its operand uses.
// It is an error to erase an operation whose results are still used.
func (rw *Rewriter) EraseOp(op *ir.Operation) error {
	for _, r := range op.Results() {
		if r.HasUses() {
			return OpInUseError{Op: op}
		}
	}
	op.ClearOperands()
	if b := op.Block(); b != nil {
		b.Remove(op)
	}
	rw.logger.Printf("EraseOp: %q", op.Kind())
	return nil
}

// ReplaceOp rewrites all uses of op's results to the given replacement
// values and erases op. The replacement count must match the result count.
func (rw *Rewriter) ReplaceOp(op *ir.Operation, with ...ir.Value) error {
	if len(with) != op.NumResults() {
		return errors.Errorf("replace %q: have %d replacement values, want %d",
			op.Kind(), len(with), op.NumResults())
	}
	for i, r := range op.Results() {
		rw.ReplaceAllUsesWith(r, with[i])
	}
	return rw.EraseOp(op)
}
