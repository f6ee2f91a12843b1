package tiles

import "errors"

// Sentinel errors for tile permutation operations. All are matched
// with errors.Is; none is ever wrapped inside this package.
var (
	// ErrDimension indicates a cube dimension below 1.
	ErrDimension = errors.New("tiles: dimension must be at least 1")

	// ErrDimensionMismatch indicates operands built for different cube
	// dimensions were combined.
	ErrDimensionMismatch = errors.New("tiles: dimension mismatch")

	// ErrNotBijective indicates a partial permutation whose identity
	// extension is not a bijection over the full tile set.
	ErrNotBijective = errors.New("tiles: permutation is not a bijection")

	// ErrLayer indicates a 1-indexed layer outside [1, n].
	ErrLayer = errors.New("tiles: layer out of range")

	// ErrRange indicates a layer range violating 1 ≤ lo ≤ hi ≤ n.
	ErrRange = errors.New("tiles: invalid layer range")
)
