package tiles_test

import (
	"fmt"

	"github.com/nxncube/nxncube/geometry"
	"github.com/nxncube/nxncube/tiles"
)

// ExampleSlice_Positions enumerates an interior layer of a 3-cube.
// Scenario:
//
//   - Layer 2 of the Up face is the middle shell: a bare ring of 4·3
//     tiles crossing the four side faces, touching neither Up nor Down.
func ExampleSlice_Positions() {
	ps, err := tiles.Slice{Face: geometry.Up, Layer: 2}.Positions(3)
	if err != nil {
		fmt.Println("enumerate error:", err)
		return
	}

	fmt.Println("tiles:", len(ps))
	fmt.Println("first:", ps[0])

	// Output:
	// tiles: 12
	// first: B[1,2]
}

// ExamplePartialTilePerm_Perm builds the face part of a U turn and
// promotes it to a verified total permutation: the Up face's corner
// (0,0) travels to (0,2) while every other face is untouched.
func ExamplePartialTilePerm_Perm() {
	partial, err := tiles.RotateFaceOnly(3, geometry.Up, geometry.CW)
	if err != nil {
		fmt.Println("build error:", err)
		return
	}
	p, err := partial.Perm()
	if err != nil {
		fmt.Println("promote error:", err)
		return
	}

	fmt.Println(p.At(tiles.TilePos{Face: geometry.Up, Row: 0, Col: 0}))
	fmt.Println(p.At(tiles.TilePos{Face: geometry.Front, Row: 0, Col: 0}))

	// Output:
	// U[0,2]
	// F[0,0]
}
