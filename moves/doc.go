// Package moves defines the five families of layer turns on an n×n×n
// cube and their conversion to tile permutations.
//
// What:
//
//   - BasicMove: a face's outer layer turns (U, D, L, R, F, B).
//   - WideMove: layers 1..depth turn together (Uw(2), Rw(3), …);
//     depth must satisfy 1 ≤ depth < n (depth n would be a whole-cube
//     rotation, which package rotations owns).
//   - SliceMove: exactly one 1-indexed layer turns (Us(2), …); layer n
//     aliases layer 1 of the opposite face.
//   - RangeMove: a contiguous layer range [lo, hi] turns (Ur(2, 4), …).
//   - MiddleMove: the fixed central-layer turns M (turns like L),
//     E (like D) and S (like F).
//
// Each family carries three directional variants: the bare name is a
// clockwise quarter turn as seen from the reference face, the 2-form a
// half turn, the 3-form a counter-clockwise quarter (cubing's prime).
// The variants are derived, not independently specified: a 2-form's
// permutation equals the quarter composed with itself and a 3-form's
// equals the quarter's inverse, because all three share one
// angle-parameterised conversion.
//
// Conversion:
//
//	Every conversion is assembled from the two tile builders: the
//	turned face's own grid rotation (layer 1; inverted on the opposite
//	face at layer n) composed with the adjacency-driven ring rotation
//	of each affected layer. Interior layers, middle moves on n ≥ 3
//	included, rotate no face grid. The result is promoted to a
//	verified bijection.
//
// Middle layer on even n:
//
//	For odd n the affected layer is the unique centre. For even n
//	there is no centre; this package turns the 1-indexed layer n/2+1,
//	the nearer-to-opposite of the two central layers, keeping the
//	layer arithmetic uniform across parities.
//
// Errors:
//
//	Conversions fail fast and never clamp: tiles.ErrDimension for
//	n < 1, ErrDepth for a wide depth outside [1, n), tiles.ErrLayer
//	for a slice layer outside [1, n], tiles.ErrRange for a range
//	violating 1 ≤ lo ≤ hi ≤ n.
package moves
