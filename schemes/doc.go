// Package schemes defines colourings of the six faces and the two
// standard assignments used on real cubes.
//
// A Scheme fixes which colour a solved cube shows on each face in the
// conventional holding orientation. Western is the near-universal
// modern scheme (white Up, green Front); Japanese differs by swapping
// blue and yellow. Schemes compose with whole-cube rotations: Rotated
// answers what a solved cube painted in a scheme shows after being
// physically reoriented, which is what solvedness checks up to
// rotation are built from.
//
// Errors:
//
//	FaceOf reports ErrColourNotInScheme for a colour the scheme does
//	not use; a well-formed scheme uses each of the six colours once.
package schemes
