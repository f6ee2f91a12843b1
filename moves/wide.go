package moves

import (
	"fmt"

	"github.com/nxncube/nxncube/geometry"
	"github.com/nxncube/nxncube/tiles"
)

// WideMove turns the outermost Depth layers of one face together.
// Depth is validated at conversion time: it must satisfy
// 1 <= Depth < n, as turning all n layers is a whole-cube rotation
// rather than a move.
type WideMove struct {
	Face  geometry.Face
	Angle geometry.Angle
	Depth int
}

// Uw returns the clockwise wide turn of the Up face down to depth.
func Uw(depth int) WideMove { return WideMove{geometry.Up, geometry.CW, depth} }

// Uw2 returns the half wide turn of the Up face down to depth.
func Uw2(depth int) WideMove { return WideMove{geometry.Up, geometry.Half, depth} }

// Uw3 returns the counter-clockwise wide turn of the Up face down to depth.
func Uw3(depth int) WideMove { return WideMove{geometry.Up, geometry.CCW, depth} }

// Dw returns the clockwise wide turn of the Down face up to depth.
func Dw(depth int) WideMove { return WideMove{geometry.Down, geometry.CW, depth} }

// Dw2 returns the half wide turn of the Down face up to depth.
func Dw2(depth int) WideMove { return WideMove{geometry.Down, geometry.Half, depth} }

// Dw3 returns the counter-clockwise wide turn of the Down face up to depth.
func Dw3(depth int) WideMove { return WideMove{geometry.Down, geometry.CCW, depth} }

// Lw returns the clockwise wide turn of the Left face in to depth.
func Lw(depth int) WideMove { return WideMove{geometry.Left, geometry.CW, depth} }

// Lw2 returns the half wide turn of the Left face in to depth.
func Lw2(depth int) WideMove { return WideMove{geometry.Left, geometry.Half, depth} }

// Lw3 returns the counter-clockwise wide turn of the Left face in to depth.
func Lw3(depth int) WideMove { return WideMove{geometry.Left, geometry.CCW, depth} }

// Rw returns the clockwise wide turn of the Right face in to depth.
func Rw(depth int) WideMove { return WideMove{geometry.Right, geometry.CW, depth} }

// Rw2 returns the half wide turn of the Right face in to depth.
func Rw2(depth int) WideMove { return WideMove{geometry.Right, geometry.Half, depth} }

// Rw3 returns the counter-clockwise wide turn of the Right face in to depth.
func Rw3(depth int) WideMove { return WideMove{geometry.Right, geometry.CCW, depth} }

// Fw returns the clockwise wide turn of the Front face in to depth.
func Fw(depth int) WideMove { return WideMove{geometry.Front, geometry.CW, depth} }

// Fw2 returns the half wide turn of the Front face in to depth.
func Fw2(depth int) WideMove { return WideMove{geometry.Front, geometry.Half, depth} }

// Fw3 returns the counter-clockwise wide turn of the Front face in to depth.
func Fw3(depth int) WideMove { return WideMove{geometry.Front, geometry.CCW, depth} }

// Bw returns the clockwise wide turn of the Back face in to depth.
func Bw(depth int) WideMove { return WideMove{geometry.Back, geometry.CW, depth} }

// Bw2 returns the half wide turn of the Back face in to depth.
func Bw2(depth int) WideMove { return WideMove{geometry.Back, geometry.Half, depth} }

// Bw3 returns the counter-clockwise wide turn of the Back face in to depth.
func Bw3(depth int) WideMove { return WideMove{geometry.Back, geometry.CCW, depth} }

// Inverse returns the move undoing m.
func (m WideMove) Inverse() WideMove {
	return WideMove{m.Face, m.Angle.Inverse(), m.Depth}
}

// Perm converts m to a tile permutation on the n×n×n cube.
// It fails with tiles.ErrDimension when n < 1 and with ErrDepth when
// the depth lies outside [1, n).
func (m WideMove) Perm(n int) (*tiles.TilePerm, error) {
	if n < 1 {
		return nil, tiles.ErrDimension
	}
	if m.Depth < 1 || m.Depth >= n {
		return nil, fmt.Errorf("%w: depth %d on a %d-cube", ErrDepth, m.Depth, n)
	}
	return turnLayers(n, m.Face, m.Angle, 1, m.Depth)
}

// String renders m in cubing notation, e.g. "Uw(3)", "Rw'(2)".
func (m WideMove) String() string {
	return fmt.Sprintf("%sw%s(%d)", m.Face, suffix(m.Angle), m.Depth)
}
