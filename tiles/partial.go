package tiles

import (
	"sort"

	"github.com/nxncube/nxncube/geometry"
)

// PartialTilePerm is a sparse permutation defined only on a subset of
// tile positions; everywhere else it is implicitly the identity. It is
// the ephemeral builder block move conversions are assembled from:
// partials are composed and then promoted to a verified TilePerm.
//
// Builders in this package always produce a mapping that is bijective
// on its own domain; Perm re-checks that obligation on promotion.
type PartialTilePerm struct {
	n int
	m map[TilePos]TilePos
}

// NewPartial returns an empty partial permutation (the identity) for
// dimension n.
func NewPartial(n int) *PartialTilePerm {
	return &PartialTilePerm{n: n, m: make(map[TilePos]TilePos)}
}

// N returns the cube dimension the partial was built for.
func (p *PartialTilePerm) N() int { return p.n }

// Len returns the number of explicitly mapped positions.
func (p *PartialTilePerm) Len() int { return len(p.m) }

// Domain returns the explicitly mapped source positions in linear
// index order.
func (p *PartialTilePerm) Domain() []TilePos {
	out := make([]TilePos, 0, len(p.m))
	for k := range p.m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return Index(p.n, out[i]) < Index(p.n, out[j]) })

	return out
}

// Compose returns the partial applying p first, then q, left-to-right.
// A position outside an operand's domain passes through that operand
// unchanged; the result's domain is the union of both domains. Neither
// operand is mutated. Both operands must share one dimension; a
// mismatch is a programming error and panics.
func (p *PartialTilePerm) Compose(q *PartialTilePerm) *PartialTilePerm {
	if p.n != q.n {
		panic("tiles: composing partial permutations of different dimensions")
	}

	out := make(map[TilePos]TilePos, len(p.m)+len(q.m))
	for src, mid := range p.m {
		if dst, ok := q.m[mid]; ok {
			out[src] = dst
		} else {
			out[src] = mid
		}
	}
	for src, dst := range q.m {
		if _, ok := out[src]; !ok {
			out[src] = dst
		}
	}

	return &PartialTilePerm{n: p.n, m: out}
}

// Inverse returns the partial mapping every destination back to its
// source.
func (p *PartialTilePerm) Inverse() *PartialTilePerm {
	out := make(map[TilePos]TilePos, len(p.m))
	for src, dst := range p.m {
		out[dst] = src
	}

	return &PartialTilePerm{n: p.n, m: out}
}

// Perm promotes the partial to a total permutation by extending it
// with the identity outside its domain. The extension is verified to
// be a bijection over all 6n² positions; ErrNotBijective reports a
// partial that maps into its own fixed region or out of range.
func (p *PartialTilePerm) Perm() (*TilePerm, error) {
	if p.n < 1 {
		return nil, ErrDimension
	}

	total := Count(p.n)
	dest := make([]int, total)
	for i := range dest {
		dest[i] = i
	}
	for src, dst := range p.m {
		if !valid(p.n, src) || !valid(p.n, dst) {
			return nil, ErrNotBijective
		}
		dest[Index(p.n, src)] = Index(p.n, dst)
	}

	seen := make([]bool, total)
	for _, d := range dest {
		if seen[d] {
			return nil, ErrNotBijective
		}
		seen[d] = true
	}

	return &TilePerm{n: p.n, dest: dest}, nil
}

// RotateFaceOnly builds the partial permutation cycling one face's own
// n×n grid by the given angle, touching no other face. It returns
// ErrDimension if n < 1.
func RotateFaceOnly(n int, f geometry.Face, a geometry.Angle) (*PartialTilePerm, error) {
	if n < 1 {
		return nil, ErrDimension
	}

	out := &PartialTilePerm{n: n, m: make(map[TilePos]TilePos, n*n)}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			newRow, newCol := a.RotateIndices(n, row, col)
			out.m[TilePos{Face: f, Row: row, Col: col}] = TilePos{Face: f, Row: newRow, Col: newCol}
		}
	}

	return out, nil
}

// RotateRing builds the partial permutation cycling the 4n ring tiles
// of a slice among the reference face's four neighbours: each tile at
// ring index i on one side moves to ring index i on the side rotated
// by the given angle. The shared index parameterisation of the
// adjacency model makes this the exact cross-face movement of a layer
// turn. It returns ErrDimension if n < 1 and ErrLayer if the slice's
// layer lies outside [1, n].
func RotateRing(n int, s Slice, a geometry.Angle) (*PartialTilePerm, error) {
	if n < 1 {
		return nil, ErrDimension
	}
	if s.Layer < 1 || s.Layer > n {
		return nil, ErrLayer
	}

	depth := s.Layer - 1
	out := &PartialTilePerm{n: n, m: make(map[TilePos]TilePos, 4*n)}
	for _, side := range geometry.Sides {
		src := geometry.Adjacent(s.Face, side)
		dst := geometry.Adjacent(s.Face, side.Rotated(a))
		for i := 0; i < n; i++ {
			srcRow, srcCol := src.PosAtDepth(n, i, depth)
			dstRow, dstCol := dst.PosAtDepth(n, i, depth)
			out.m[TilePos{Face: src.Face, Row: srcRow, Col: srcCol}] =
				TilePos{Face: dst.Face, Row: dstRow, Col: dstCol}
		}
	}

	return out, nil
}
