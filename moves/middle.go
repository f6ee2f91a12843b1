package moves

import (
	"github.com/nxncube/nxncube/geometry"
	"github.com/nxncube/nxncube/tiles"
)

// MiddleMove turns the central layer of the cube about one axis,
// following the slice notation of 3×3×3 cubing: M turns with the Left
// face, E with the Down face, S with the Front face.
//
// On an odd cube the central layer is unique. On an even cube there
// is none, so the 1-indexed layer n/2+1 of the reference face turns;
// on a 2-cube that is the far face's outer layer.
type MiddleMove struct {
	Face  geometry.Face
	Angle geometry.Angle
}

// The nine middle-layer moves. M follows Left, E follows Down,
// S follows Front; the 2- and 3-forms are the half and
// counter-clockwise variants.
var (
	M  = MiddleMove{geometry.Left, geometry.CW}
	M2 = MiddleMove{geometry.Left, geometry.Half}
	M3 = MiddleMove{geometry.Left, geometry.CCW}
	E  = MiddleMove{geometry.Down, geometry.CW}
	E2 = MiddleMove{geometry.Down, geometry.Half}
	E3 = MiddleMove{geometry.Down, geometry.CCW}
	S  = MiddleMove{geometry.Front, geometry.CW}
	S2 = MiddleMove{geometry.Front, geometry.Half}
	S3 = MiddleMove{geometry.Front, geometry.CCW}
)

// Middles lists the nine middle-layer moves, quarter, half,
// counter-quarter within each axis.
var Middles = [...]MiddleMove{M, M2, M3, E, E2, E3, S, S2, S3}

// Inverse returns the move undoing m.
func (m MiddleMove) Inverse() MiddleMove {
	return MiddleMove{m.Face, m.Angle.Inverse()}
}

// Layer reports the 1-indexed layer m turns on an n-cube.
func (m MiddleMove) Layer(n int) int { return n/2 + 1 }

// Perm converts m to a tile permutation on the n×n×n cube.
// It fails with tiles.ErrDimension when n < 1.
func (m MiddleMove) Perm(n int) (*tiles.TilePerm, error) {
	if n < 1 {
		return nil, tiles.ErrDimension
	}
	layer := m.Layer(n)
	return turnLayers(n, m.Face, m.Angle, layer, layer)
}

// String renders m in cubing notation, e.g. "M", "E2", "S'".
func (m MiddleMove) String() string {
	var name string
	switch m.Face {
	case geometry.Down:
		name = "E"
	case geometry.Front:
		name = "S"
	default:
		name = "M"
	}
	return name + suffix(m.Angle)
}
