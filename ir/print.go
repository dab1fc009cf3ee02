package ir

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// attrNames is a slice of attribute names. Used only for sorted printing.
type attrNames []string

func (a attrNames) Len() int           { return len(a) }
func (a attrNames) Less(i, j int) bool { return a[i] < a[j] }
func (a attrNames) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }

// WriteTo writes op and its nested regions to w in a human readable
// instruction format.
func WriteTo(w io.Writer, op *Operation) (int64, error) {
	p := printer{w: w}
	p.op(op, 0)
	return p.n, p.err
}

type printer struct {
	w   io.Writer
	n   int64
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	n, err := fmt.Fprintf(p.w, format, args...)
	p.n += int64(n)
	p.err = err
}

func (p *printer) op(op *Operation, depth int) {
	indent := strings.Repeat("  ", depth)
	p.printf("%s", indent)
	if len(op.results) > 0 {
		names := make([]string, len(op.results))
		for i, r := range op.results {
			names[i] = r.Name()
		}
		p.printf("%s = ", strings.Join(names, ", "))
	}
	p.printf("%q", op.kind)
	operands := make([]string, len(op.operands))
	for i, v := range op.operands {
		operands[i] = v.Name()
	}
	p.printf("(%s)", strings.Join(operands, ", "))
	if len(op.succs) > 0 {
		labels := make([]string, len(op.succs))
		for i, b := range op.succs {
			labels[i] = fmt.Sprintf("^bb%d", b.ID())
		}
		p.printf("[%s]", strings.Join(labels, ", "))
	}
	if len(op.attrs) > 0 {
		names := make(attrNames, 0, len(op.attrs))
		for name := range op.attrs {
			names = append(names, name)
		}
		sort.Sort(names)
		pairs := make([]string, len(names))
		for i, name := range names {
			pairs[i] = fmt.Sprintf("%s = %s", name, op.attrs[name])
		}
		p.printf(" {%s}", strings.Join(pairs, ", "))
	}
	if len(op.regions) > 0 {
		p.printf(" (")
		for _, r := range op.regions {
			p.region(r, depth+1)
		}
		p.printf("\n%s)", indent)
	}
	p.printf("\n")
}

func (p *printer) region(r *Region, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, b := range r.blocks {
		args := make([]string, len(b.args))
		for i, a := range b.args {
			args[i] = fmt.Sprintf("%s: %s", a.Name(), a.Type())
		}
		p.printf("\n%s^bb%d(%s):\n", indent, b.ID(), strings.Join(args, ", "))
		for _, op := range b.ops {
			p.op(op, depth+1)
		}
	}
}
