package ir

// Generic operation kinds understood by this package.
const (
	KindConst      = "const"   // Integer constant, attribute "value".
	KindBranch     = "br"      // Unconditional branch, 1 successor.
	KindCondBranch = "cond_br" // Conditional branch, 2 successors.
	KindReturn     = "ret"     // Region-exiting terminator.
)

// NewConst returns a detached constant operation with a single result of
// type t holding val.
func NewConst(val int64, t Type) *Operation {
	op := NewOperation(KindConst)
	op.SetAttr("value", IntAttr(val))
	op.AddResult(t)
	return op
}

// NewBranch returns a detached unconditional branch to dest.
func NewBranch(dest *Block) *Operation {
	op := NewOperation(KindBranch)
	op.AddSuccessor(dest)
	return op
}

// NewCondBranch returns a detached conditional branch on cond.
func NewCondBranch(cond Value, then, els *Block) *Operation {
	op := NewOperation(KindCondBranch)
	op.AddOperand(cond)
	op.AddSuccessor(then)
	op.AddSuccessor(els)
	return op
}

// NewReturn returns a detached return terminator yielding vals.
func NewReturn(vals ...Value) *Operation {
	op := NewOperation(KindReturn)
	for _, v := range vals {
		op.AddOperand(v)
	}
	return op
}

// ConstIntValue extracts the integer constant behind v, if its defining
// operation is a const.
func ConstIntValue(v Value) (int64, bool) {
	op := v.DefiningOp()
	if op == nil || op.Kind() != KindConst {
		return 0, false
	}
	a, ok := op.Attr("value")
	if !ok {
		return 0, false
	}
	i, ok := a.(IntAttr)
	return int64(i), ok
}

// Fold returns v as a compile-time attribute when its defining operation is
// a constant, and as a plain value otherwise.
func Fold(v Value) FoldResult {
	if c, ok := ConstIntValue(v); ok {
		return FoldAttr(IntAttr(c))
	}
	return FoldValue(v)
}
