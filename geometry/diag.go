package geometry

// Diag identifies one of the four main space diagonals of the cube.
// Each diagonal is named by its endpoint in the upper half: U/D for
// up/down, F/B for front/back, R/L for right/left.
type Diag int

const (
	// UFR runs from the up-front-right corner to down-back-left.
	UFR Diag = iota
	// UFL runs from the up-front-left corner to down-back-right.
	UFL
	// UBR runs from the up-back-right corner to down-front-left.
	UBR
	// UBL runs from the up-back-left corner to down-front-right.
	UBL
)

// NumDiags is the number of main space diagonals.
const NumDiags = 4

// Diags lists the four main diagonals in declaration order.
var Diags = [NumDiags]Diag{UFR, UFL, UBR, UBL}

// CornerDiags returns the diagonals met at the four corners of f, in
// clockwise order as seen from outside the face, starting at the local
// (0,0) corner: (0,0), (0,n-1), (n-1,n-1), (n-1,0).
//
// Every face touches all four diagonals exactly once, so the cycle is
// a full enumeration; its cyclic order is unique to the face, which is
// what lets rotation conversion recover both the destination face and
// the grid orientation from a diagonal permutation alone.
func CornerDiags(f Face) [NumDiags]Diag {
	return cornerDiags[f]
}

// String returns the corner name of the diagonal's upper endpoint.
func (d Diag) String() string {
	switch d {
	case UFR:
		return "UFR"
	case UFL:
		return "UFL"
	case UBR:
		return "UBR"
	case UBL:
		return "UBL"
	default:
		return "?"
	}
}
