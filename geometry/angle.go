package geometry

// Angle is a rotation amount in quarter turns, counted clockwise as
// seen from outside the face being turned. Arithmetic is modulo a full
// turn, so CCW equals three clockwise quarters.
type Angle int

const (
	// Zero is the identity rotation.
	Zero Angle = iota
	// CW is a clockwise quarter turn (90°).
	CW
	// Half is a half turn (180°).
	Half
	// CCW is a counter-clockwise quarter turn (270° clockwise).
	CCW
)

// numAngles is the order of the quarter-turn cycle.
const numAngles = 4

// Plus returns the angle a followed by b.
func (a Angle) Plus(b Angle) Angle {
	return (a + b) % numAngles
}

// Minus returns the angle that, followed by b, yields a.
func (a Angle) Minus(b Angle) Angle {
	return (a - b + numAngles) % numAngles
}

// Inverse returns the angle undoing a.
func (a Angle) Inverse() Angle {
	return (numAngles - a) % numAngles
}

// RotateIndices rotates the grid position (row, col) of an n×n face by
// a, clockwise as seen from outside the face. Row and col must lie in
// [0, n); callers own that precondition.
func (a Angle) RotateIndices(n, row, col int) (newRow, newCol int) {
	switch a {
	case Zero:
		return row, col
	case CW:
		return col, n - 1 - row
	case Half:
		return n - 1 - row, n - 1 - col
	case CCW:
		return n - 1 - col, row
	default:
		panic("geometry: invalid Angle")
	}
}

// String returns a short description of the angle.
func (a Angle) String() string {
	switch a {
	case Zero:
		return "0"
	case CW:
		return "90"
	case Half:
		return "180"
	case CCW:
		return "270"
	default:
		return "?"
	}
}
