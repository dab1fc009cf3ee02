package loops_test

import (
	"strings"

	"github.com/nickng/loopir/ir"
)

// newFuncBlock returns the entry block of a fresh single-region func op.
func newFuncBlock() *ir.Block {
	fn := ir.NewOperation("func")
	return fn.AddRegion().AddBlock()
}

func newAdd(x, y ir.Value) *ir.Operation {
	op := ir.NewOperation("add")
	op.AddOperand(x)
	op.AddOperand(y)
	op.AddResult(x.Type())
	return op
}

// blockKinds renders the op kinds of b for order checks.
func blockKinds(b *ir.Block) string {
	kinds := make([]string, 0, b.NumOps())
	for _, op := range b.Ops() {
		kinds = append(kinds, op.Kind())
	}
	return strings.Join(kinds, ",")
}
