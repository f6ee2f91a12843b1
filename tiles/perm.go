package tiles

// TilePerm is a total bijection over the 6n² tile positions of an
// n×n×n cube. Values are immutable once constructed: every operation
// returns a new permutation and never mutates an operand, so a TilePerm
// may be shared freely across goroutines.
//
// dest is indexed by source linear index and holds destination linear
// indices; construction verifies bijectivity, so dest is a permutation
// of [0, 6n²) by invariant.
type TilePerm struct {
	n    int
	dest []int
}

// Identity returns the identity permutation for dimension n, or
// ErrDimension if n < 1.
func Identity(n int) (*TilePerm, error) {
	if n < 1 {
		return nil, ErrDimension
	}

	dest := make([]int, Count(n))
	for i := range dest {
		dest[i] = i
	}

	return &TilePerm{n: n, dest: dest}, nil
}

// FromFunc builds a permutation from an explicit position mapping,
// verifying that f is a bijection over the full tile domain. It
// returns ErrDimension if n < 1 and ErrNotBijective if f maps out of
// range or collides.
func FromFunc(n int, f func(TilePos) TilePos) (*TilePerm, error) {
	if n < 1 {
		return nil, ErrDimension
	}

	total := Count(n)
	dest := make([]int, total)
	seen := make([]bool, total)
	for i := 0; i < total; i++ {
		dst := f(Pos(n, i))
		if !valid(n, dst) {
			return nil, ErrNotBijective
		}
		di := Index(n, dst)
		if seen[di] {
			return nil, ErrNotBijective
		}
		seen[di] = true
		dest[i] = di
	}

	return &TilePerm{n: n, dest: dest}, nil
}

// N returns the cube dimension the permutation acts on.
func (p *TilePerm) N() int { return p.n }

// At returns the destination of a tile position. pos must lie in the
// valid domain for the permutation's dimension.
func (p *TilePerm) At(pos TilePos) TilePos {
	return Pos(p.n, p.dest[Index(p.n, pos)])
}

// AtIndex returns the destination linear index of a source linear
// index in [0, 6n²).
func (p *TilePerm) AtIndex(i int) int {
	return p.dest[i]
}

// Compose returns the permutation applying p first, then q,
// left-to-right as in cubing notation. It returns ErrDimensionMismatch
// when the operands act on different dimensions.
func (p *TilePerm) Compose(q *TilePerm) (*TilePerm, error) {
	if p.n != q.n {
		return nil, ErrDimensionMismatch
	}

	dest := make([]int, len(p.dest))
	for i, mid := range p.dest {
		dest[i] = q.dest[mid]
	}

	return &TilePerm{n: p.n, dest: dest}, nil
}

// Inverse returns the positional inverse of p: the permutation q with
// q(j) = i exactly when p(i) = j. p.Compose(p.Inverse()) and
// p.Inverse().Compose(p) both equal the identity.
func (p *TilePerm) Inverse() *TilePerm {
	dest := make([]int, len(p.dest))
	for i, d := range p.dest {
		dest[d] = i
	}

	return &TilePerm{n: p.n, dest: dest}
}

// Equal reports whether p and q are the same permutation over the same
// dimension.
func (p *TilePerm) Equal(q *TilePerm) bool {
	if p.n != q.n {
		return false
	}
	for i, d := range p.dest {
		if q.dest[i] != d {
			return false
		}
	}

	return true
}

// AgreeOn reports whether p and q send every tile of the restriction
// to the same destination, the cross-validation predicate between
// independently derived permutations. It returns ErrDimensionMismatch
// when the operands act on different dimensions, and any error from
// enumerating the restriction.
func (p *TilePerm) AgreeOn(q *TilePerm, r Restriction) (bool, error) {
	if p.n != q.n {
		return false, ErrDimensionMismatch
	}

	positions, err := r.Positions(p.n)
	if err != nil {
		return false, err
	}
	for _, pos := range positions {
		if p.At(pos) != q.At(pos) {
			return false, nil
		}
	}

	return true, nil
}

// Perm implements Operation: a TilePerm converts to itself. It returns
// ErrDimensionMismatch if n differs from the permutation's dimension.
func (p *TilePerm) Perm(n int) (*TilePerm, error) {
	if n != p.n {
		return nil, ErrDimensionMismatch
	}

	return p, nil
}
