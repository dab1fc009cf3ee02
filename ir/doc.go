// Package ir defines a small region-based intermediate representation.
//
// The IR is built from operations, regions and blocks: an Operation owns an
// ordered list of Regions, a Region owns an ordered list of Blocks, and a
// Block owns an ordered list of Operations plus its block arguments. Values
// are either operation results or block arguments, and every operand slot
// keeps the use-lists of its Value exact, so rewrites can locate and replace
// uses precisely.
//
// Control flow inside a region is unstructured: the last operation of a block
// is its terminator and may carry successor blocks. Control flow across
// operations is structured through region nesting.
package ir
