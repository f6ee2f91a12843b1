package tiles

import "github.com/nxncube/nxncube/geometry"

// Restriction selects a subset of the tile positions of an n×n×n cube.
// Implementations must yield each position at most once and only
// positions valid for the given dimension.
type Restriction interface {
	// Positions returns the selected tile positions for dimension n.
	Positions(n int) ([]TilePos, error)
}

// Slice selects the tiles of one layer: the shell at a fixed depth
// from a reference face.
//
// Layer is 1-indexed: layer 1 is the reference face's own outer shell
// (the face's n² tiles plus the 4n ring tiles bordering it), layer n
// aliases layer 1 of the geometrically opposite face, and every layer
// in between is a ring of 4n tiles crossing the four adjacent faces.
type Slice struct {
	// Face is the reference face depth is measured from.
	Face geometry.Face
	// Layer is the 1-indexed depth, 1 = the face's own shell.
	Layer int
}

// Positions returns the tiles of the slice. It returns ErrDimension if
// n < 1 and ErrLayer if Layer lies outside [1, n].
func (s Slice) Positions(n int) ([]TilePos, error) {
	if n < 1 {
		return nil, ErrDimension
	}
	if s.Layer < 1 || s.Layer > n {
		return nil, ErrLayer
	}

	switch {
	case s.Layer == 1:
		return endSlice(n, s.Face), nil
	case s.Layer == n:
		// Opposite-face aliasing: layer n seen from Face is layer 1
		// seen from the opposite face.
		return endSlice(n, s.Face.Opposite()), nil
	default:
		return ringPositions(n, s.Face, s.Layer-1), nil
	}
}

// endSlice lists an outer shell: the n² tiles of f followed by the 4n
// ring tiles at depth 0 around it.
func endSlice(n int, f geometry.Face) []TilePos {
	out := make([]TilePos, 0, n*n+4*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			out = append(out, TilePos{Face: f, Row: row, Col: col})
		}
	}

	return append(out, ringPositions(n, f, 0)...)
}

// ringPositions lists the 4n tiles of the ring at the given 0-indexed
// depth from f, walking the four sides in rotational order.
func ringPositions(n int, f geometry.Face, depth int) []TilePos {
	out := make([]TilePos, 0, 4*n)
	for _, side := range geometry.Sides {
		adj := geometry.Adjacent(f, side)
		for i := 0; i < n; i++ {
			row, col := adj.PosAtDepth(n, i, depth)
			out = append(out, TilePos{Face: adj.Face, Row: row, Col: col})
		}
	}

	return out
}

// SliceRange selects the union of the contiguous layers [Lo, Hi]
// (1-indexed, both inclusive) measured from a reference face.
type SliceRange struct {
	// Face is the reference face depth is measured from.
	Face geometry.Face
	// Lo is the first layer of the range, 1-indexed.
	Lo int
	// Hi is the last layer of the range, inclusive.
	Hi int
}

// Positions returns the tiles of every layer in the range. It returns
// ErrDimension if n < 1 and ErrRange unless 1 ≤ Lo ≤ Hi ≤ n.
//
// Adjacent layers never share tiles, so the concatenation is
// duplicate-free.
func (r SliceRange) Positions(n int) ([]TilePos, error) {
	if n < 1 {
		return nil, ErrDimension
	}
	if r.Lo < 1 || r.Lo > r.Hi || r.Hi > n {
		return nil, ErrRange
	}

	var out []TilePos
	for layer := r.Lo; layer <= r.Hi; layer++ {
		ps, err := Slice{Face: r.Face, Layer: layer}.Positions(n)
		if err != nil {
			return nil, err
		}
		out = append(out, ps...)
	}

	return out, nil
}
