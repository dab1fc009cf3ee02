package ir

import "golang.org/x/tools/container/intsets"

// TraverseEdges takes a Region and applies visit to each discovered CFG edge
// starting from the entry block. The entry is visited with a nil from block.
func TraverseEdges(r *Region, visit func(from, to *Block)) {
	entry := r.Entry()
	if entry == nil {
		return
	}
	type edge struct {
		From, To *Block
	}
	var visited intsets.Sparse
	queue := []edge{{To: entry}}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		if !visited.Has(e.To.ID()) {
			visited.Insert(e.To.ID())
			visit(e.From, e.To)
			if term := e.To.Terminator(); term != nil {
				for _, succ := range term.Successors() {
					queue = append(queue, edge{From: e.To, To: succ})
				}
			}
		}
	}
}

// Reaches reports whether dest is reachable from b by following terminator
// successors, using at least one edge. The search is bounded by b's region:
// branches never cross region boundaries.
func Reaches(b, dest *Block) bool {
	var visited intsets.Sparse
	stack := []*Block{b}
	for len(stack) > 0 {
		blk := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		term := blk.Terminator()
		if term == nil {
			continue
		}
		for _, succ := range term.Successors() {
			if succ == dest {
				return true
			}
			if visited.Insert(succ.ID()) {
				stack = append(stack, succ)
			}
		}
	}
	return false
}

// Walk applies f to every operation nested in r, in depth-first pre-order.
func Walk(r *Region, f func(*Operation)) {
	for _, b := range r.blocks {
		for _, op := range b.ops {
			f(op)
			for _, nested := range op.regions {
				Walk(nested, f)
			}
		}
	}
}
