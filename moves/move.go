package moves

import (
	"github.com/nxncube/nxncube/geometry"
	"github.com/nxncube/nxncube/tiles"
)

// turnLayers converts a turn of the contiguous 1-indexed layers
// [lo, hi] of face f by angle a into a total tile permutation.
//
// Per layer the partial permutation is the composition of the face
// part and the ring part. Layer 1 rotates f's own grid by a; layer n
// rotates the opposite face's grid by the inverse angle, since from
// that face's viewpoint the same physical turn runs the other way.
// Interior layers move no face tiles. Every layer additionally cycles
// its ring across the four adjacent faces. For n == 1 layer 1 and
// layer n coincide and the layer-1 part applies.
//
// Callers validate lo and hi; turnLayers assumes 1 <= lo <= hi <= n.
func turnLayers(n int, f geometry.Face, a geometry.Angle, lo, hi int) (*tiles.TilePerm, error) {
	combined := tiles.NewPartial(n)

	for layer := lo; layer <= hi; layer++ {
		var (
			facePart *tiles.PartialTilePerm
			err      error
		)
		switch {
		case layer == 1:
			facePart, err = tiles.RotateFaceOnly(n, f, a)
		case layer == n:
			facePart, err = tiles.RotateFaceOnly(n, f.Opposite(), a.Inverse())
		default:
			facePart = tiles.NewPartial(n)
		}
		if err != nil {
			return nil, err
		}

		ring, err := tiles.RotateRing(n, tiles.Slice{Face: f, Layer: layer}, a)
		if err != nil {
			return nil, err
		}

		combined = combined.Compose(facePart).Compose(ring)
	}

	return combined.Perm()
}

// suffix renders an angle in cubing notation: the bare name is a
// clockwise quarter, "2" a half turn, "'" a counter-clockwise quarter.
func suffix(a geometry.Angle) string {
	switch a {
	case geometry.CW:
		return ""
	case geometry.Half:
		return "2"
	case geometry.CCW:
		return "'"
	default:
		return "0"
	}
}
