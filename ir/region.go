package ir

// Region is an ordered list of blocks owned by exactly one Operation.
type Region struct {
	owner  *Operation
	blocks []*Block
}

// Owner returns the operation owning the region.
func (r *Region) Owner() *Operation { return r.owner }

// Empty reports whether the region has no blocks.
func (r *Region) Empty() bool { return len(r.blocks) == 0 }

// NumBlocks returns the number of blocks.
func (r *Region) NumBlocks() int { return len(r.blocks) }

// Block returns the i-th block.
func (r *Region) Block(i int) *Block { return r.blocks[i] }

// Blocks returns a snapshot of the block list.
func (r *Region) Blocks() []*Block {
	return append([]*Block(nil), r.blocks...)
}

// Entry returns the first block, nil if the region is empty.
func (r *Region) Entry() *Block {
	if len(r.blocks) == 0 {
		return nil
	}
	return r.blocks[0]
}

// AddBlock appends a new empty block to the region.
func (r *Region) AddBlock() *Block {
	b := &Block{region: r}
	b.id = ids.add(b)
	r.blocks = append(r.blocks, b)
	return b
}

// TakeBody transfers ownership of all blocks of from into r, preserving
// their order and internal structure. from is left empty and its owner must
// not rely on it afterwards.
func (r *Region) TakeBody(from *Region) {
	for _, b := range from.blocks {
		b.region = r
	}
	r.blocks = append(r.blocks, from.blocks...)
	from.blocks = nil
}

// IsAncestor reports whether other is r itself or nested within r.
func (r *Region) IsAncestor(other *Region) bool {
	for o := other; o != nil; {
		if o == r {
			return true
		}
		owner := o.owner
		if owner == nil || owner.block == nil {
			return false
		}
		o = owner.block.region
	}
	return false
}

// Block is an ordered list of operations with block arguments.
// The last operation of a non-empty block is its terminator.
type Block struct {
	id     int
	region *Region
	args   []*BlockArg
	ops    []*Operation
}

// ID returns the block's pool-unique ID.
func (b *Block) ID() int { return b.id }

// Region returns the region owning the block.
func (b *Block) Region() *Region { return b.region }

// Parent returns the operation owning the block's region.
func (b *Block) Parent() *Operation {
	if b.region == nil {
		return nil
	}
	return b.region.owner
}

// AddArg appends a new block argument of type t.
func (b *Block) AddArg(t Type) *BlockArg {
	a := &BlockArg{
		valueState: valueState{typ: t},
		owner:      b,
		index:      len(b.args),
	}
	a.id = ids.add(a)
	b.args = append(b.args, a)
	return a
}

// NumArgs returns the number of block arguments.
func (b *Block) NumArgs() int { return len(b.args) }

// Arg returns the i-th block argument.
func (b *Block) Arg(i int) *BlockArg { return b.args[i] }

// Args returns a snapshot of the block arguments.
func (b *Block) Args() []*BlockArg {
	return append([]*BlockArg(nil), b.args...)
}

// NumOps returns the number of operations in the block.
func (b *Block) NumOps() int { return len(b.ops) }

// Op returns the i-th operation.
func (b *Block) Op(i int) *Operation { return b.ops[i] }

// Ops returns a snapshot of the operation list.
func (b *Block) Ops() []*Operation {
	return append([]*Operation(nil), b.ops...)
}

// Terminator returns the last operation of the block, nil if empty.
func (b *Block) Terminator() *Operation {
	if len(b.ops) == 0 {
		return nil
	}
	return b.ops[len(b.ops)-1]
}

// Append adds op to the end of the block, unlinking it from any previous
// block first.
func (b *Block) Append(op *Operation) {
	if op.block != nil {
		op.block.Remove(op)
	}
	op.block = b
	b.ops = append(b.ops, op)
}

// InsertBefore inserts op immediately before the existing operation before.
func (b *Block) InsertBefore(op, before *Operation) {
	if op.block != nil {
		op.block.Remove(op)
	}
	for i := range b.ops {
		if b.ops[i] == before {
			b.ops = append(b.ops, nil)
			copy(b.ops[i+1:], b.ops[i:])
			b.ops[i] = op
			op.block = b
			return
		}
	}
	// before is not in b: append, same as Append.
	op.block = b
	b.ops = append(b.ops, op)
}

// Remove unlinks op from the block. Uses of op's operands and results are
// untouched; use rewrite.EraseOp to destroy an operation.
func (b *Block) Remove(op *Operation) {
	for i := range b.ops {
		if b.ops[i] == op {
			b.ops = append(b.ops[:i], b.ops[i+1:]...)
			op.block = nil
			return
		}
	}
}
