package moves

import (
	"github.com/nxncube/nxncube/geometry"
	"github.com/nxncube/nxncube/tiles"
)

// BasicMove turns the outer layer of one face. The zero value is a
// no-op turn of the Up face; use the package constants for the
// eighteen standard face moves.
type BasicMove struct {
	Face  geometry.Face
	Angle geometry.Angle
}

// The eighteen face moves of standard cubing notation. U2 is a half
// turn, U3 the counter-clockwise quarter written U' in notation.
var (
	U  = BasicMove{geometry.Up, geometry.CW}
	U2 = BasicMove{geometry.Up, geometry.Half}
	U3 = BasicMove{geometry.Up, geometry.CCW}
	D  = BasicMove{geometry.Down, geometry.CW}
	D2 = BasicMove{geometry.Down, geometry.Half}
	D3 = BasicMove{geometry.Down, geometry.CCW}
	L  = BasicMove{geometry.Left, geometry.CW}
	L2 = BasicMove{geometry.Left, geometry.Half}
	L3 = BasicMove{geometry.Left, geometry.CCW}
	R  = BasicMove{geometry.Right, geometry.CW}
	R2 = BasicMove{geometry.Right, geometry.Half}
	R3 = BasicMove{geometry.Right, geometry.CCW}
	F  = BasicMove{geometry.Front, geometry.CW}
	F2 = BasicMove{geometry.Front, geometry.Half}
	F3 = BasicMove{geometry.Front, geometry.CCW}
	B  = BasicMove{geometry.Back, geometry.CW}
	B2 = BasicMove{geometry.Back, geometry.Half}
	B3 = BasicMove{geometry.Back, geometry.CCW}
)

// Basics lists the eighteen face moves in face order, quarter, half,
// counter-quarter within each face.
var Basics = [...]BasicMove{
	U, U2, U3, D, D2, D3, L, L2, L3,
	R, R2, R3, F, F2, F3, B, B2, B3,
}

// Inverse returns the move undoing m.
func (m BasicMove) Inverse() BasicMove {
	return BasicMove{m.Face, m.Angle.Inverse()}
}

// Perm converts m to a tile permutation on the n×n×n cube.
// It fails with tiles.ErrDimension when n < 1.
func (m BasicMove) Perm(n int) (*tiles.TilePerm, error) {
	if n < 1 {
		return nil, tiles.ErrDimension
	}
	return turnLayers(n, m.Face, m.Angle, 1, 1)
}

// String renders m in cubing notation, e.g. "U", "F2", "R'".
func (m BasicMove) String() string {
	return m.Face.String() + suffix(m.Angle)
}
