package moves

import (
	"fmt"

	"github.com/nxncube/nxncube/geometry"
	"github.com/nxncube/nxncube/tiles"
)

// SliceMove turns exactly one 1-indexed layer counted from its
// reference face. Layer 1 is the face's own outer layer; layer n is
// the outer layer of the opposite face, turned by the inverse angle
// from that face's viewpoint.
type SliceMove struct {
	Face  geometry.Face
	Angle geometry.Angle
	Layer int
}

// Us returns the clockwise turn of the Up face's layer.
func Us(layer int) SliceMove { return SliceMove{geometry.Up, geometry.CW, layer} }

// Us2 returns the half turn of the Up face's layer.
func Us2(layer int) SliceMove { return SliceMove{geometry.Up, geometry.Half, layer} }

// Us3 returns the counter-clockwise turn of the Up face's layer.
func Us3(layer int) SliceMove { return SliceMove{geometry.Up, geometry.CCW, layer} }

// Ds returns the clockwise turn of the Down face's layer.
func Ds(layer int) SliceMove { return SliceMove{geometry.Down, geometry.CW, layer} }

// Ds2 returns the half turn of the Down face's layer.
func Ds2(layer int) SliceMove { return SliceMove{geometry.Down, geometry.Half, layer} }

// Ds3 returns the counter-clockwise turn of the Down face's layer.
func Ds3(layer int) SliceMove { return SliceMove{geometry.Down, geometry.CCW, layer} }

// Ls returns the clockwise turn of the Left face's layer.
func Ls(layer int) SliceMove { return SliceMove{geometry.Left, geometry.CW, layer} }

// Ls2 returns the half turn of the Left face's layer.
func Ls2(layer int) SliceMove { return SliceMove{geometry.Left, geometry.Half, layer} }

// Ls3 returns the counter-clockwise turn of the Left face's layer.
func Ls3(layer int) SliceMove { return SliceMove{geometry.Left, geometry.CCW, layer} }

// Rs returns the clockwise turn of the Right face's layer.
func Rs(layer int) SliceMove { return SliceMove{geometry.Right, geometry.CW, layer} }

// Rs2 returns the half turn of the Right face's layer.
func Rs2(layer int) SliceMove { return SliceMove{geometry.Right, geometry.Half, layer} }

// Rs3 returns the counter-clockwise turn of the Right face's layer.
func Rs3(layer int) SliceMove { return SliceMove{geometry.Right, geometry.CCW, layer} }

// Fs returns the clockwise turn of the Front face's layer.
func Fs(layer int) SliceMove { return SliceMove{geometry.Front, geometry.CW, layer} }

// Fs2 returns the half turn of the Front face's layer.
func Fs2(layer int) SliceMove { return SliceMove{geometry.Front, geometry.Half, layer} }

// Fs3 returns the counter-clockwise turn of the Front face's layer.
func Fs3(layer int) SliceMove { return SliceMove{geometry.Front, geometry.CCW, layer} }

// Bs returns the clockwise turn of the Back face's layer.
func Bs(layer int) SliceMove { return SliceMove{geometry.Back, geometry.CW, layer} }

// Bs2 returns the half turn of the Back face's layer.
func Bs2(layer int) SliceMove { return SliceMove{geometry.Back, geometry.Half, layer} }

// Bs3 returns the counter-clockwise turn of the Back face's layer.
func Bs3(layer int) SliceMove { return SliceMove{geometry.Back, geometry.CCW, layer} }

// Inverse returns the move undoing m.
func (m SliceMove) Inverse() SliceMove {
	return SliceMove{m.Face, m.Angle.Inverse(), m.Layer}
}

// Perm converts m to a tile permutation on the n×n×n cube.
// It fails with tiles.ErrDimension when n < 1 and with tiles.ErrLayer
// when the layer lies outside [1, n].
func (m SliceMove) Perm(n int) (*tiles.TilePerm, error) {
	if n < 1 {
		return nil, tiles.ErrDimension
	}
	if m.Layer < 1 || m.Layer > n {
		return nil, fmt.Errorf("%w: layer %d on a %d-cube", tiles.ErrLayer, m.Layer, n)
	}
	return turnLayers(n, m.Face, m.Angle, m.Layer, m.Layer)
}

// String renders m in cubing notation, e.g. "Us(2)", "Fs'(3)".
func (m SliceMove) String() string {
	return fmt.Sprintf("%ss%s(%d)", m.Face, suffix(m.Angle), m.Layer)
}
