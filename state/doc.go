// Package state models a coloured n×n×n cube and the application of
// tile permutations to it.
//
// A Cube is an immutable colouring of the 6n² tiles. Applying a
// permutation produces a new cube whose tile at a destination shows
// the colour its source held, exactly the physical movement of
// stickers under a turn. Solvedness comes in three strengths: uniform
// faces matching a given scheme, uniform faces matching the scheme in
// any of the 24 orientations, and uniform faces regardless of scheme.
//
// Errors:
//
//	Construction rejects dimensions below 1 with ErrDimension;
//	combining a cube with a permutation or second cube of another
//	dimension reports ErrDimensionMismatch.
package state
