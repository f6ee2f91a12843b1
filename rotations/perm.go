package rotations

import (
	"github.com/nxncube/nxncube/geometry"
	"github.com/nxncube/nxncube/tiles"
)

// carry computes where a rotation sends one face and how the face's
// grid is turned in transit.
//
// Every face meets all four main diagonals exactly once, in a cyclic
// corner order unique to that face. Mapping the source face's corner
// cycle through the diagonal permutation therefore singles out one
// destination face, and the offset at which the two cycles line up is
// the number of clockwise quarter turns the grid undergoes.
func (r Rotation) carry(f geometry.Face) (geometry.Face, geometry.Angle) {
	src := geometry.CornerDiags(f)
	var mapped [geometry.NumDiags]geometry.Diag
	for i, d := range src {
		mapped[i] = r[d]
	}

	for _, g := range geometry.Faces {
		dst := geometry.CornerDiags(g)
		for k := 0; k < geometry.NumDiags; k++ {
			match := true
			for i := 0; i < geometry.NumDiags; i++ {
				if mapped[i] != dst[(i+k)%geometry.NumDiags] {
					match = false
					break
				}
			}
			if match {
				return g, geometry.Angle(k)
			}
		}
	}

	// Rotations preserve the clockwise corner order of some face, so a
	// missing match means the diagonal value is not a rotation at all.
	panic("rotations: diagonal permutation does not correspond to a rotation")
}

// FacePerm returns how r relabels the six faces as whole units:
// element f of the array is the destination of face f.
func (r Rotation) FacePerm() [geometry.NumFaces]geometry.Face {
	var out [geometry.NumFaces]geometry.Face
	for _, f := range geometry.Faces {
		out[f], _ = r.carry(f)
	}

	return out
}

// Perm implements tiles.Operation: the total tile permutation of the
// whole-cube rotation. Each face's tiles are sent, grid-rotated, to
// the destination face's grid; the union over the six faces is a
// bijection by construction and re-verified during assembly. It
// returns tiles.ErrDimension if n < 1.
func (r Rotation) Perm(n int) (*tiles.TilePerm, error) {
	var dstFace [geometry.NumFaces]geometry.Face
	var dstTurn [geometry.NumFaces]geometry.Angle
	for _, f := range geometry.Faces {
		dstFace[f], dstTurn[f] = r.carry(f)
	}

	return tiles.FromFunc(n, func(p tiles.TilePos) tiles.TilePos {
		row, col := dstTurn[p.Face].RotateIndices(n, p.Row, p.Col)

		return tiles.TilePos{Face: dstFace[p.Face], Row: row, Col: col}
	})
}
