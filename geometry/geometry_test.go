package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxncube/nxncube/geometry"
)

// TestFace_OppositeInvolution verifies that Opposite pairs faces and
// is its own inverse.
func TestFace_OppositeInvolution(t *testing.T) {
	for _, f := range geometry.Faces {
		opp := f.Opposite()
		assert.NotEqual(t, f, opp, "a face is never its own opposite")
		assert.Equal(t, f, opp.Opposite(), "Opposite must be an involution")
	}
}

// TestSide_RotatedCycle verifies the clockwise side cycle and that a
// full turn returns to the start.
func TestSide_RotatedCycle(t *testing.T) {
	assert.Equal(t, geometry.East, geometry.North.Rotated(geometry.CW))
	assert.Equal(t, geometry.South, geometry.East.Rotated(geometry.CW))
	assert.Equal(t, geometry.West, geometry.South.Rotated(geometry.CW))
	assert.Equal(t, geometry.North, geometry.West.Rotated(geometry.CW))

	for _, s := range geometry.Sides {
		assert.Equal(t, s, s.Rotated(geometry.Zero), "Zero must be the identity")
		assert.Equal(t, s, s.Rotated(geometry.Half).Rotated(geometry.Half), "two half turns cancel")
		assert.Equal(t, s, s.Rotated(geometry.CW).Rotated(geometry.CCW), "CW then CCW cancels")
	}
}

// TestAngle_Arithmetic exercises Plus, Minus and Inverse as modular
// quarter-turn arithmetic.
func TestAngle_Arithmetic(t *testing.T) {
	angles := []geometry.Angle{geometry.Zero, geometry.CW, geometry.Half, geometry.CCW}
	for _, a := range angles {
		assert.Equal(t, a, a.Plus(geometry.Zero), "Zero is neutral on the right")
		assert.Equal(t, a, geometry.Zero.Plus(a), "Zero is neutral on the left")
		assert.Equal(t, geometry.Zero, a.Plus(a.Inverse()), "a + a⁻¹ = 0")
		for _, b := range angles {
			assert.Equal(t, a, a.Plus(b).Minus(b), "Minus undoes Plus")
		}
	}
	assert.Equal(t, geometry.Half, geometry.CW.Plus(geometry.CW))
	assert.Equal(t, geometry.CW, geometry.CCW.Inverse())
}

// TestAngle_RotateIndices checks the quarter-turn grid rotation on a
// 3×3 grid and that four quarter turns restore every position.
func TestAngle_RotateIndices(t *testing.T) {
	const n = 3

	// Top-left corner goes to top-right under a clockwise quarter.
	r, c := geometry.CW.RotateIndices(n, 0, 0)
	assert.Equal(t, 0, r)
	assert.Equal(t, 2, c)

	// The centre is fixed by every angle.
	for _, a := range []geometry.Angle{geometry.Zero, geometry.CW, geometry.Half, geometry.CCW} {
		r, c = a.RotateIndices(n, 1, 1)
		assert.Equal(t, 1, r)
		assert.Equal(t, 1, c)
	}

	// Four clockwise quarters are the identity on every position.
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			r, c = row, col
			for i := 0; i < 4; i++ {
				r, c = geometry.CW.RotateIndices(n, r, c)
			}
			assert.Equal(t, row, r)
			assert.Equal(t, col, c)

			// Half must match two quarters, CCW three.
			r2, c2 := geometry.CW.RotateIndices(n, row, col)
			r2, c2 = geometry.CW.RotateIndices(n, r2, c2)
			rh, ch := geometry.Half.RotateIndices(n, row, col)
			assert.Equal(t, rh, r2)
			assert.Equal(t, ch, c2)
		}
	}
}

// TestAdjacent_Symmetry verifies the defining invariant of the table:
// if side s of f borders (g, t), then side t of g borders (f, s).
func TestAdjacent_Symmetry(t *testing.T) {
	for _, f := range geometry.Faces {
		for _, s := range geometry.Sides {
			a := geometry.Adjacent(f, s)
			back := geometry.Adjacent(a.Face, a.Side)
			assert.Equal(t, f, back.Face, "adjacency must round-trip to the source face")
			assert.Equal(t, s, back.Side, "adjacency must round-trip to the source side")
		}
	}
}

// TestAdjacent_RotationalConsistency verifies that walking a face's
// four sides visits four distinct neighbours, never the face itself or
// its opposite.
func TestAdjacent_RotationalConsistency(t *testing.T) {
	for _, f := range geometry.Faces {
		seen := make(map[geometry.Face]bool, geometry.NumSides)
		side := geometry.North
		for i := 0; i < geometry.NumSides; i++ {
			g := geometry.Adjacent(f, side).Face
			assert.NotEqual(t, f, g, "a face does not border itself")
			assert.NotEqual(t, f.Opposite(), g, "a face does not border its opposite")
			seen[g] = true
			side = side.Rotated(geometry.CW)
		}
		assert.Len(t, seen, geometry.NumSides, "the four neighbours of %v must be distinct", f)
	}
}

// TestAdjacent_KnownNeighbours pins a handful of neighbours from the
// reference net so a regression in the frames table cannot pass
// unnoticed even if it stays self-consistent.
func TestAdjacent_KnownNeighbours(t *testing.T) {
	assert.Equal(t, geometry.AdjacentFace{Face: geometry.Front, Side: geometry.North},
		geometry.Adjacent(geometry.Up, geometry.South))
	assert.Equal(t, geometry.AdjacentFace{Face: geometry.Back, Side: geometry.South},
		geometry.Adjacent(geometry.Up, geometry.North))
	assert.Equal(t, geometry.AdjacentFace{Face: geometry.Right, Side: geometry.North},
		geometry.Adjacent(geometry.Up, geometry.East))
	assert.Equal(t, geometry.AdjacentFace{Face: geometry.Front, Side: geometry.West},
		geometry.Adjacent(geometry.Left, geometry.East))
	assert.Equal(t, geometry.AdjacentFace{Face: geometry.Down, Side: geometry.North},
		geometry.Adjacent(geometry.Front, geometry.South))
}

// TestAdjacentFace_PosAtDepth checks that depth 0 positions lie on the
// named side of the neighbour and that growing depth moves inward.
func TestAdjacentFace_PosAtDepth(t *testing.T) {
	const n = 4
	for _, f := range geometry.Faces {
		for _, s := range geometry.Sides {
			a := geometry.Adjacent(f, s)
			for i := 0; i < n; i++ {
				row, col := a.PosAtDepth(n, i, 0)
				switch a.Side {
				case geometry.North:
					assert.Equal(t, 0, row)
				case geometry.East:
					assert.Equal(t, n-1, col)
				case geometry.South:
					assert.Equal(t, n-1, row)
				case geometry.West:
					assert.Equal(t, 0, col)
				}
				require.GreaterOrEqual(t, row, 0)
				require.Less(t, row, n)
				require.GreaterOrEqual(t, col, 0)
				require.Less(t, col, n)
			}

			// Distinct depths at a fixed index give distinct cells.
			r0, c0 := a.PosAtDepth(n, 1, 0)
			r1, c1 := a.PosAtDepth(n, 1, 1)
			assert.False(t, r0 == r1 && c0 == c1, "depth must offset the position inward")
		}
	}
}

// TestCornerDiags_Enumeration verifies each face meets all four main
// diagonals exactly once and pins the derived cycle for Up and Front.
func TestCornerDiags_Enumeration(t *testing.T) {
	for _, f := range geometry.Faces {
		seen := make(map[geometry.Diag]bool, geometry.NumDiags)
		for _, d := range geometry.CornerDiags(f) {
			seen[d] = true
		}
		assert.Len(t, seen, geometry.NumDiags, "face %v must meet all four diagonals", f)
	}

	assert.Equal(t, [4]geometry.Diag{geometry.UBL, geometry.UBR, geometry.UFR, geometry.UFL},
		geometry.CornerDiags(geometry.Up))
	assert.Equal(t, [4]geometry.Diag{geometry.UFL, geometry.UFR, geometry.UBL, geometry.UBR},
		geometry.CornerDiags(geometry.Front))
}
