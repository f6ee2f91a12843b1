// Package nxncube represents the state and legal operations of an N×N×N
// twisty puzzle through explicit tile permutations.
//
// 🚀 What is nxncube?
//
//	A pure-Go library that converts every geometric cube operation,
//	whole-cube reorientation and every family of face/layer turns alike,
//	into a verified permutation of the puzzle's 6·N² individual tiles:
//	  • Tile addressing: (face, row, col) ↔ linear index bijection
//	  • Face adjacency: which face borders which edge, and how the two
//	    local coordinate frames align
//	  • Restrictions: declarative tile subsets by face + 1-indexed layer
//	  • Permutation algebra: sparse builders, total bijections,
//	    composition, inverse, slice-restricted equality
//	  • Rotations: the 24-element octahedral group as permutations of
//	    the four main space diagonals
//	  • Moves: basic, wide, slice, range and middle turns in all
//	    directional variants
//
// ✨ Why choose nxncube?
//
//   - Arbitrary dimension: all conversions derive cross-face tile
//     movement from the adjacency geometry, for any N ≥ 1
//   - Purely functional: every operation returns a new value; the only
//     process-wide state is the adjacency table, computed once and
//     read-only thereafter, safe for unsynchronized concurrent reads
//   - Cross-validated: move conversions are required to agree with the
//     independently derived rotation conversions on every shared slice
//
// Everything is organised under six subpackages:
//
//	geometry/   faces, cardinal sides, angles, diagonals, adjacency
//	tiles/      addressing, restrictions, partial/total permutations
//	rotations/  the octahedral group and its tile conversion
//	moves/      the five move families and their tile conversions
//	schemes/    face→colour mappings (Western, Japanese, custom)
//	state/      coloured cube state and permutation application
//
// Composition is uniformly left-to-right, matching cubing notation:
// rotation * move1 * move2 applies the rotation first.
//
//	go get github.com/nxncube/nxncube
package nxncube
