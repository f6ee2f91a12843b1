package moves

import (
	"fmt"

	"github.com/nxncube/nxncube/geometry"
	"github.com/nxncube/nxncube/tiles"
)

// RangeMove turns the contiguous 1-indexed layers [Lo, Hi] counted
// from its reference face. It subsumes the other block families:
// [1, 1] is the basic move, [1, d] the wide move of depth d and
// [l, l] the slice move of layer l.
type RangeMove struct {
	Face  geometry.Face
	Angle geometry.Angle
	Lo    int
	Hi    int
}

// Ur returns the clockwise turn of the Up face's layers [lo, hi].
func Ur(lo, hi int) RangeMove { return RangeMove{geometry.Up, geometry.CW, lo, hi} }

// Ur2 returns the half turn of the Up face's layers [lo, hi].
func Ur2(lo, hi int) RangeMove { return RangeMove{geometry.Up, geometry.Half, lo, hi} }

// Ur3 returns the counter-clockwise turn of the Up face's layers [lo, hi].
func Ur3(lo, hi int) RangeMove { return RangeMove{geometry.Up, geometry.CCW, lo, hi} }

// Dr returns the clockwise turn of the Down face's layers [lo, hi].
func Dr(lo, hi int) RangeMove { return RangeMove{geometry.Down, geometry.CW, lo, hi} }

// Dr2 returns the half turn of the Down face's layers [lo, hi].
func Dr2(lo, hi int) RangeMove { return RangeMove{geometry.Down, geometry.Half, lo, hi} }

// Dr3 returns the counter-clockwise turn of the Down face's layers [lo, hi].
func Dr3(lo, hi int) RangeMove { return RangeMove{geometry.Down, geometry.CCW, lo, hi} }

// Lr returns the clockwise turn of the Left face's layers [lo, hi].
func Lr(lo, hi int) RangeMove { return RangeMove{geometry.Left, geometry.CW, lo, hi} }

// Lr2 returns the half turn of the Left face's layers [lo, hi].
func Lr2(lo, hi int) RangeMove { return RangeMove{geometry.Left, geometry.Half, lo, hi} }

// Lr3 returns the counter-clockwise turn of the Left face's layers [lo, hi].
func Lr3(lo, hi int) RangeMove { return RangeMove{geometry.Left, geometry.CCW, lo, hi} }

// Rr returns the clockwise turn of the Right face's layers [lo, hi].
func Rr(lo, hi int) RangeMove { return RangeMove{geometry.Right, geometry.CW, lo, hi} }

// Rr2 returns the half turn of the Right face's layers [lo, hi].
func Rr2(lo, hi int) RangeMove { return RangeMove{geometry.Right, geometry.Half, lo, hi} }

// Rr3 returns the counter-clockwise turn of the Right face's layers [lo, hi].
func Rr3(lo, hi int) RangeMove { return RangeMove{geometry.Right, geometry.CCW, lo, hi} }

// Fr returns the clockwise turn of the Front face's layers [lo, hi].
func Fr(lo, hi int) RangeMove { return RangeMove{geometry.Front, geometry.CW, lo, hi} }

// Fr2 returns the half turn of the Front face's layers [lo, hi].
func Fr2(lo, hi int) RangeMove { return RangeMove{geometry.Front, geometry.Half, lo, hi} }

// Fr3 returns the counter-clockwise turn of the Front face's layers [lo, hi].
func Fr3(lo, hi int) RangeMove { return RangeMove{geometry.Front, geometry.CCW, lo, hi} }

// Br returns the clockwise turn of the Back face's layers [lo, hi].
func Br(lo, hi int) RangeMove { return RangeMove{geometry.Back, geometry.CW, lo, hi} }

// Br2 returns the half turn of the Back face's layers [lo, hi].
func Br2(lo, hi int) RangeMove { return RangeMove{geometry.Back, geometry.Half, lo, hi} }

// Br3 returns the counter-clockwise turn of the Back face's layers [lo, hi].
func Br3(lo, hi int) RangeMove { return RangeMove{geometry.Back, geometry.CCW, lo, hi} }

// Inverse returns the move undoing m.
func (m RangeMove) Inverse() RangeMove {
	return RangeMove{m.Face, m.Angle.Inverse(), m.Lo, m.Hi}
}

// Perm converts m to a tile permutation on the n×n×n cube.
// It fails with tiles.ErrDimension when n < 1 and with tiles.ErrRange
// unless 1 <= Lo <= Hi <= n.
func (m RangeMove) Perm(n int) (*tiles.TilePerm, error) {
	if n < 1 {
		return nil, tiles.ErrDimension
	}
	if m.Lo < 1 || m.Lo > m.Hi || m.Hi > n {
		return nil, fmt.Errorf("%w: layers [%d, %d] on a %d-cube", tiles.ErrRange, m.Lo, m.Hi, n)
	}
	return turnLayers(n, m.Face, m.Angle, m.Lo, m.Hi)
}

// String renders m in cubing notation, e.g. "Ur(2,4)", "Rr'(1,3)".
func (m RangeMove) String() string {
	return fmt.Sprintf("%sr%s(%d,%d)", m.Face, suffix(m.Angle), m.Lo, m.Hi)
}
