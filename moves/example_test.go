package moves_test

import (
	"fmt"

	"github.com/nxncube/nxncube/geometry"
	"github.com/nxncube/nxncube/moves"
	"github.com/nxncube/nxncube/tiles"
)

// ExampleBasicMove_Perm converts U on a 3-cube and follows one ring
// tile: the top strip of Front slides onto Left.
func ExampleBasicMove_Perm() {
	p, err := moves.U.Perm(3)
	if err != nil {
		fmt.Println("convert error:", err)
		return
	}

	src := tiles.TilePos{Face: geometry.Front, Row: 0, Col: 0}
	fmt.Println(moves.U, "sends", src, "to", p.At(src))

	// Output:
	// U sends F[0,0] to L[0,0]
}

// ExampleWideMove_Perm validates parameters at conversion time: a
// depth covering all layers is a whole-cube rotation, not a move.
func ExampleWideMove_Perm() {
	if _, err := moves.Uw(3).Perm(3); err != nil {
		fmt.Println(err)
	}

	// Output:
	// moves: wide depth out of range: depth 3 on a 3-cube
}

// ExampleBasicMove_String renders moves in standard cubing notation.
func ExampleBasicMove_String() {
	fmt.Println(moves.U, moves.F2, moves.R3)
	fmt.Println(moves.Uw(3), moves.Rw3(2), moves.Us(2), moves.Dr(2, 4))
	fmt.Println(moves.M, moves.E2, moves.S3)

	// Output:
	// U F2 R'
	// Uw(3) Rw'(2) Us(2) Dr(2,4)
	// M E2 S'
}
