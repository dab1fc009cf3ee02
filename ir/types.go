package ir

import "strconv"

// Type is a nominal IR type. Two types agree iff they compare equal.
type Type string

// Builtin scalar types.
const (
	I1  Type = "i1"
	I32 Type = "i32"
	I64 Type = "i64"
	F32 Type = "f32"
	F64 Type = "f64"
)

// Attr is a compile-time attribute attached to an Operation.
type Attr interface {
	String() string
}

// IntAttr is an integer attribute.
type IntAttr int64

func (a IntAttr) String() string { return strconv.FormatInt(int64(a), 10) }

// StringAttr is a string attribute.
type StringAttr string

func (a StringAttr) String() string { return string(a) }

// FoldResult is either an SSA Value or a compile-time attribute.
//
// It is the result type of queries that may or may not fold to a constant,
// e.g. loop bound introspection.
type FoldResult struct {
	val  Value
	attr Attr
}

// FoldValue wraps a Value that did not fold.
func FoldValue(v Value) FoldResult { return FoldResult{val: v} }

// FoldAttr wraps a folded compile-time attribute.
func FoldAttr(a Attr) FoldResult { return FoldResult{attr: a} }

// Value returns the unfolded Value, if any.
func (f FoldResult) Value() (Value, bool) { return f.val, f.val != nil }

// Attr returns the folded attribute, if any.
func (f FoldResult) Attr() (Attr, bool) { return f.attr, f.attr != nil }

// ConstInt returns the folded integer constant, if any.
func (f FoldResult) ConstInt() (int64, bool) {
	if a, ok := f.attr.(IntAttr); ok {
		return int64(a), true
	}
	return 0, false
}
