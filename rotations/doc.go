// Package rotations implements the 24-element octahedral group, the
// whole-cube reorientations, and its conversion to tile permutations.
//
// What:
//
//   - Rotation: one rotational symmetry of the cube, represented as a
//     permutation of the four main space diagonals. That representation
//     is faithful: the 24 rotations correspond exactly to the 24
//     permutations of the diagonals.
//   - Generators X, Y, Z (quarter turns about the Right, Up and Front
//     face axes), their squares and inverses, and the identity ID;
//     All derives the remaining elements by closure rather than by a
//     transcribed table.
//   - FacePerm: how a rotation relabels the six faces as whole units.
//   - Perm: the full tile permutation, per-face relabeling combined
//     with the grid rotation each face undergoes in transit, recovered
//     by matching corner-diagonal cycles.
//
// Why:
//
//	Rotation conversion is the geometric ground truth of the module:
//	layer-turn conversions are required to agree with it on every
//	slice both affect, which is how the independently derived
//	adjacency model is cross-validated.
//
// Composition convention:
//
//	Compose is left-to-right, matching cubing notation: a.Compose(b)
//	applies a first. This is the reverse of mathematical function
//	composition.
//
// Errors:
//
//	Only tiles.ErrDimension, when converting for a dimension below 1.
//	Rotation values themselves form a closed, always-valid set.
package rotations
