package moves

import "errors"

// ErrDepth is returned when a wide move's depth lies outside [1, n).
// Layer-addressing errors are shared with package tiles: an invalid
// slice layer reports tiles.ErrLayer, an invalid range tiles.ErrRange.
var ErrDepth = errors.New("moves: wide depth out of range")
