package state

import (
	"errors"
	"strings"

	"github.com/nxncube/nxncube/geometry"
	"github.com/nxncube/nxncube/rotations"
	"github.com/nxncube/nxncube/schemes"
	"github.com/nxncube/nxncube/tiles"
)

// Sentinel errors for cube state operations, matched with errors.Is.
var (
	// ErrDimension indicates a cube dimension below 1.
	ErrDimension = errors.New("state: dimension must be at least 1")

	// ErrDimensionMismatch indicates a cube combined with a
	// permutation or cube of another dimension.
	ErrDimensionMismatch = errors.New("state: dimension mismatch")
)

// Cube is a colouring of the 6n² tiles of an n×n×n cube. Values are
// immutable once constructed: Apply returns a new cube and never
// mutates the receiver, so a Cube may be shared freely across
// goroutines.
type Cube struct {
	n       int
	colours []schemes.Colour
}

// Solved returns the solved cube of dimension n in the given scheme:
// every tile of each face shows the scheme's colour for that face. It
// returns ErrDimension if n < 1.
func Solved(n int, s schemes.Scheme) (*Cube, error) {
	if n < 1 {
		return nil, ErrDimension
	}

	colours := make([]schemes.Colour, tiles.Count(n))
	for i := range colours {
		colours[i] = s.Colour(tiles.Pos(n, i).Face)
	}

	return &Cube{n: n, colours: colours}, nil
}

// N returns the cube's dimension.
func (c *Cube) N() int { return c.n }

// At returns the colour of the tile at a position. pos must lie in the
// valid domain for the cube's dimension.
func (c *Cube) At(pos tiles.TilePos) schemes.Colour {
	return c.colours[tiles.Index(c.n, pos)]
}

// Apply returns the cube after the permutation moves every tile's
// colour from its source to its destination. It returns
// ErrDimensionMismatch when the permutation acts on another dimension.
func (c *Cube) Apply(p *tiles.TilePerm) (*Cube, error) {
	if p.N() != c.n {
		return nil, ErrDimensionMismatch
	}

	colours := make([]schemes.Colour, len(c.colours))
	for src, col := range c.colours {
		colours[p.AtIndex(src)] = col
	}

	return &Cube{n: c.n, colours: colours}, nil
}

// ApplyOps converts each operation for the cube's dimension, composes
// them left-to-right and applies the result.
func (c *Cube) ApplyOps(ops ...tiles.Operation) (*Cube, error) {
	p, err := tiles.Compose(c.n, ops...)
	if err != nil {
		return nil, err
	}

	return c.Apply(p)
}

// Equal reports whether two cubes have the same dimension and the same
// colour on every tile.
func (c *Cube) Equal(other *Cube) bool {
	if c.n != other.n {
		return false
	}
	for i, col := range c.colours {
		if other.colours[i] != col {
			return false
		}
	}

	return true
}

// IsSolvedIn reports whether every face uniformly shows exactly the
// colour the scheme assigns it.
func (c *Cube) IsSolvedIn(s schemes.Scheme) bool {
	for i, col := range c.colours {
		if col != s.Colour(tiles.Pos(c.n, i).Face) {
			return false
		}
	}

	return true
}

// IsSolvedUpToRotationIn reports whether the cube is solved in the
// scheme as seen from any of the 24 orientations of the whole cube.
func (c *Cube) IsSolvedUpToRotationIn(s schemes.Scheme) bool {
	for _, r := range rotations.All() {
		if c.IsSolvedIn(s.Rotated(r)) {
			return true
		}
	}

	return false
}

// IsSolved reports whether every face is uniform and no colour repeats
// across faces, regardless of any particular scheme.
func (c *Cube) IsSolved() bool {
	var derived schemes.Scheme
	seen := make(map[schemes.Colour]bool, geometry.NumFaces)
	for _, f := range geometry.Faces {
		col := c.At(tiles.TilePos{Face: f})
		if seen[col] {
			return false
		}
		seen[col] = true
		switch f {
		case geometry.Up:
			derived.Up = col
		case geometry.Down:
			derived.Down = col
		case geometry.Left:
			derived.Left = col
		case geometry.Right:
			derived.Right = col
		case geometry.Front:
			derived.Front = col
		default:
			derived.Back = col
		}
	}

	return c.IsSolvedIn(derived)
}

// String renders the cube as an unfolded net: Up on top, then the
// Left-Front-Right-Back band, then Down.
func (c *Cube) String() string {
	var b strings.Builder
	pad := strings.Repeat(" ", c.n)

	writeRow := func(f geometry.Face, row int) {
		for col := 0; col < c.n; col++ {
			b.WriteString(c.At(tiles.TilePos{Face: f, Row: row, Col: col}).String())
		}
	}

	for row := 0; row < c.n; row++ {
		b.WriteString(pad)
		writeRow(geometry.Up, row)
		b.WriteByte('\n')
	}
	for row := 0; row < c.n; row++ {
		for _, f := range []geometry.Face{geometry.Left, geometry.Front, geometry.Right, geometry.Back} {
			writeRow(f, row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < c.n; row++ {
		b.WriteString(pad)
		writeRow(geometry.Down, row)
		b.WriteByte('\n')
	}

	return b.String()
}
