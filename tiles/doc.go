// Package tiles implements tile addressing, the restriction framework,
// and the partial/total permutation algebra over the 6·n² tile
// positions of an n×n×n cube.
//
// What:
//
//   - TilePos / Index / Pos: total bijection between (face, row, col)
//     and a linear index in [0, 6n²).
//   - Restriction, Slice, SliceRange: declarative tile subsets selected
//     by face plus 1-indexed layer or contiguous layer range. Layer 1 is
//     the face's own outer shell; layer n aliases layer 1 of the
//     geometrically opposite face.
//   - PartialTilePerm: sparse, composable permutation builders, with
//     the two geometric primitives every move conversion is assembled
//     from: RotateFaceOnly and RotateRing.
//   - TilePerm: a verified total bijection, with composition, inverse,
//     identity, equality and slice-restricted agreement.
//   - Operation: the uniform "convert to TilePerm" capability shared by
//     permutations, whole-cube rotations and every move family, plus
//     the left-to-right Compose fold over operations.
//
// Why:
//
//	Every cube operation, however it is described geometrically, acts
//	on state as a bijection of tile positions. Keeping that bijection
//	explicit makes operations composable, invertible, and, through
//	AgreeOn, cross-checkable against independently derived
//	conversions.
//
// Composition convention:
//
//	Composition is left-to-right, matching cubing notation: p.Compose(q)
//	applies p first, then q. A position outside a partial operand's
//	domain passes through that operand unchanged.
//
// Complexity:
//
//	All operations are deterministic pure functions, O(n²) time and
//	memory; composition never mutates an operand.
//
// Errors:
//
//   - ErrDimension: cube dimension below 1.
//   - ErrDimensionMismatch: operands built for different dimensions.
//   - ErrNotBijective: a promoted partial permutation does not extend
//     to a bijection.
//   - ErrLayer: 1-indexed layer outside [1, n].
//   - ErrRange: layer range violating 1 ≤ lo ≤ hi ≤ n.
package tiles
