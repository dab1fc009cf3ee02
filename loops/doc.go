// Package loops defines the capability surface of loop-shaped operations.
//
// A loop-shaped operation is any operation owning one or more body regions
// that are executed repeatedly. Generic transformations (invariant code
// motion drivers, unrollers, vectorisers) operate through the LoopLike
// interface and the free functions of this package without knowing the
// concrete construct, while construct packages (forloop, condloop, parloop)
// implement the mandatory surface and override the optional capabilities
// they can answer precisely.
//
// The default algorithms work purely through the mandatory primitives:
// a construct that implements only LoopLike gets a correct classifier and
// mover for free, reports "unknown" bounds, and fails promotion and yield
// extension without mutating the IR.
package loops
