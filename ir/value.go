package ir

import "fmt"

// A Use is one operand slot of an Operation referencing a Value.
type Use struct {
	Owner *Operation // Operation using the value.
	Index int        // Operand index in Owner.
}

// A Value is an SSA value of the IR: either an operation Result or a BlockArg.
//
// Value cannot be implemented outside this package; the unexported state
// method ensures the use-list bookkeeping stays internal.
type Value interface {
	Name() string            // Printed name of the value (e.g. %4).
	Type() Type              // Type of the value.
	Parent() *Block          // Block the value is defined in.
	DefiningOp() *Operation  // Defining operation, nil for block arguments.
	Uses() []Use             // Snapshot of current uses.
	HasUses() bool           // Reports whether the value has any use.

	state() *valueState
}

// valueState is the part of a Value shared by all implementations.
type valueState struct {
	id   int
	typ  Type
	uses []Use
}

func (s *valueState) Name() string { return fmt.Sprintf("%%%d", s.id) }

func (s *valueState) Type() Type { return s.typ }

func (s *valueState) Uses() []Use { return append([]Use(nil), s.uses...) }

func (s *valueState) HasUses() bool { return len(s.uses) > 0 }

func (s *valueState) state() *valueState { return s }

func (s *valueState) addUse(u Use) { s.uses = append(s.uses, u) }

func (s *valueState) removeUse(u Use) {
	for i := range s.uses {
		if s.uses[i] == u {
			s.uses = append(s.uses[:i], s.uses[i+1:]...)
			return
		}
	}
}

// Result is a value produced by an Operation.
type Result struct {
	valueState
	owner *Operation
	index int
}

// Index is the result position in the defining operation.
func (r *Result) Index() int { return r.index }

func (r *Result) DefiningOp() *Operation { return r.owner }

func (r *Result) Parent() *Block { return r.owner.block }

// BlockArg is a block argument.
//
// In a loop body entry block, block arguments are the iteration-entry
// placeholders: the per-iteration binding sites of loop-carried values.
type BlockArg struct {
	valueState
	owner *Block
	index int
}

// Index is the argument position in the owning block.
func (a *BlockArg) Index() int { return a.index }

func (a *BlockArg) DefiningOp() *Operation { return nil }

func (a *BlockArg) Parent() *Block { return a.owner }
