package ir

import "go/token"

// Operation is a node of the IR.
//
// An operation is identified by its Kind string; the meaning of operands,
// results, attributes and regions is defined by the construct package that
// owns the kind (see the forloop, condloop and parloop packages).
type Operation struct {
	kind string
	pos  token.Pos

	operands []Value
	results  []*Result
	regions  []*Region
	succs    []*Block
	attrs    map[string]Attr

	block *Block // Owning block, nil while detached.
}

// NewOperation returns a new detached operation of the given kind.
func NewOperation(kind string) *Operation {
	return &Operation{kind: kind, pos: token.NoPos}
}

// Kind returns the operation kind.
func (op *Operation) Kind() string { return op.kind }

// Pos returns the source position of the operation.
// Synthetic operations have NoPos.
func (op *Operation) Pos() token.Pos { return op.pos }

// SetPos sets the source position of the operation.
func (op *Operation) SetPos(pos token.Pos) { op.pos = pos }

// NumOperands returns the number of operands.
func (op *Operation) NumOperands() int { return len(op.operands) }

// Operand returns the i-th operand.
func (op *Operation) Operand(i int) Value { return op.operands[i] }

// Operands returns a snapshot of the operand list.
func (op *Operation) Operands() []Value {
	return append([]Value(nil), op.operands...)
}

// AddOperand appends v to the operand list and records the use.
func (op *Operation) AddOperand(v Value) {
	op.operands = append(op.operands, v)
	v.state().addUse(Use{Owner: op, Index: len(op.operands) - 1})
}

// SetOperand replaces the i-th operand with v, keeping use-lists exact.
func (op *Operation) SetOperand(i int, v Value) {
	old := op.operands[i]
	old.state().removeUse(Use{Owner: op, Index: i})
	op.operands[i] = v
	v.state().addUse(Use{Owner: op, Index: i})
}

// ClearOperands drops all operands and their recorded uses.
func (op *Operation) ClearOperands() {
	for i, v := range op.operands {
		v.state().removeUse(Use{Owner: op, Index: i})
	}
	op.operands = nil
}

// AddResult appends a new result of type t.
func (op *Operation) AddResult(t Type) *Result {
	r := &Result{
		valueState: valueState{id: ids.add(op), typ: t},
		owner:      op,
		index:      len(op.results),
	}
	op.results = append(op.results, r)
	return r
}

// NumResults returns the number of results.
func (op *Operation) NumResults() int { return len(op.results) }

// Result returns the i-th result.
func (op *Operation) Result(i int) *Result { return op.results[i] }

// Results returns a snapshot of the result list.
func (op *Operation) Results() []*Result {
	return append([]*Result(nil), op.results...)
}

// AddRegion appends a new empty region owned by op.
func (op *Operation) AddRegion() *Region {
	r := &Region{owner: op}
	op.regions = append(op.regions, r)
	return r
}

// NumRegions returns the number of owned regions.
func (op *Operation) NumRegions() int { return len(op.regions) }

// Region returns the i-th owned region.
func (op *Operation) Region(i int) *Region { return op.regions[i] }

// Regions returns a snapshot of the owned regions.
func (op *Operation) Regions() []*Region {
	return append([]*Region(nil), op.regions...)
}

// AddSuccessor appends a successor block. Only meaningful on terminators.
func (op *Operation) AddSuccessor(b *Block) {
	op.succs = append(op.succs, b)
}

// Successors returns the successor blocks of a terminator.
func (op *Operation) Successors() []*Block {
	return append([]*Block(nil), op.succs...)
}

// SetAttr sets attribute name to a.
func (op *Operation) SetAttr(name string, a Attr) {
	if op.attrs == nil {
		op.attrs = make(map[string]Attr)
	}
	op.attrs[name] = a
}

// Attr returns the attribute registered under name.
func (op *Operation) Attr(name string) (Attr, bool) {
	a, ok := op.attrs[name]
	return a, ok
}

// Block returns the block owning op, nil while detached.
func (op *Operation) Block() *Block { return op.block }

// ParentOp returns the operation owning the region op lives in.
func (op *Operation) ParentOp() *Operation {
	if op.block == nil || op.block.region == nil {
		return nil
	}
	return op.block.region.owner
}

// IsAncestor reports whether other is op itself or nested within a region
// owned (possibly indirectly) by op.
func (op *Operation) IsAncestor(other *Operation) bool {
	for o := other; o != nil; o = o.ParentOp() {
		if o == op {
			return true
		}
	}
	return false
}

// IsProperAncestor is IsAncestor excluding op itself.
func (op *Operation) IsProperAncestor(other *Operation) bool {
	return op != other && op.IsAncestor(other)
}

// MoveBefore unlinks op from its current block (if any) and re-inserts it
// immediately before target. Operands, results and regions are untouched.
func (op *Operation) MoveBefore(target *Operation) {
	if op.block != nil {
		op.block.Remove(op)
	}
	target.block.InsertBefore(op, target)
}
