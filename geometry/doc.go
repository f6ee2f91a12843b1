// Package geometry defines the static geometric model of the cube:
// faces, cardinal sides, quarter-turn angles, the four main space
// diagonals, and the face-adjacency table that drives all cross-face
// tile movement.
//
// What:
//
//   - Face: the six N×N tile grids forming the puzzle surface.
//   - Side: one of 4 cardinal edge directions local to a face, with a
//     rotate operator advancing a side by 90°/180°/270°.
//   - Angle: quarter-turn arithmetic (Zero, CW, Half, CCW) plus the
//     grid index rotation used by every conversion.
//   - Diag: the four main space diagonals (UFR, UFL, UBR, UBL) that
//     serve as the basis for the whole-cube rotation representation.
//   - Adjacent / AdjacentFace: for each (face, side), the bordering
//     face and the alignment of the two local coordinate frames along
//     the shared edge, optionally offset inward by a depth.
//
// Why:
//
//   - A face turn moves tiles across four neighbouring faces; which
//     tile lands where is determined entirely by this adjacency model.
//   - Whole-cube rotations permute the diagonals; the per-face corner
//     diagonal cycle recovers grid orientation after a rotation.
//
// Derivation:
//
//	The whole table is derived once, at package init, from a fixed
//	reference embedding of the six faces in 3-D space (the net below,
//	row index growing downward, column index growing rightward):
//
//	     U
//	    LFR
//	     D
//	     B
//
//	The table is read-only thereafter and safe for unsynchronized
//	concurrent reads. Symmetry of the adjacency relation is validated
//	during init; a violation is an unreachable programming error.
//
// Errors:
//
//	None. All inputs are small closed enumerations; out-of-range rows,
//	columns or depths passed to PosAtDepth are precondition violations
//	on the caller's side, not recoverable conditions.
package geometry
