package tiles

import (
	"fmt"

	"github.com/nxncube/nxncube/geometry"
)

// TilePos addresses one tile: a face and a 0-indexed (row, col) within
// that face's n×n grid. It is a small value type; the valid domain for
// dimension n is face ∈ Faces, row ∈ [0, n), col ∈ [0, n).
type TilePos struct {
	// Face is the face the tile lies on.
	Face geometry.Face
	// Row is the 0-indexed row within the face grid.
	Row int
	// Col is the 0-indexed column within the face grid.
	Col int
}

// String renders the position as F[row,col].
func (p TilePos) String() string {
	return fmt.Sprintf("%v[%d,%d]", p.Face, p.Row, p.Col)
}

// Count returns the total number of tiles on an n×n×n cube, 6n².
func Count(n int) int {
	return geometry.NumFaces * n * n
}

// Index converts a tile position to its linear index in [0, 6n²).
// Faces occupy consecutive blocks of n² indices in declaration order,
// row-major within each face. Positions outside the valid domain are a
// precondition violation; Index does not detect them.
func Index(n int, p TilePos) int {
	return (int(p.Face)*n+p.Row)*n + p.Col
}

// Pos converts a linear index in [0, 6n²) back to a tile position.
// Index and Pos are mutually inverse over the valid domain.
func Pos(n, i int) TilePos {
	return TilePos{
		Face: geometry.Face(i / (n * n)),
		Row:  (i / n) % n,
		Col:  i % n,
	}
}

// valid reports whether p lies in the tile domain for dimension n.
func valid(n int, p TilePos) bool {
	return p.Face >= 0 && int(p.Face) < geometry.NumFaces &&
		p.Row >= 0 && p.Row < n && p.Col >= 0 && p.Col < n
}
