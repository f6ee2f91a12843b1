package geometry

// Side is one of the four cardinal edge directions local to a face:
// North is the edge along row 0, East along the last column, South
// along the last row, West along column 0.
type Side int

const (
	// North is the edge along row 0.
	North Side = iota
	// East is the edge along column n-1.
	East
	// South is the edge along row n-1.
	South
	// West is the edge along column 0.
	West
)

// NumSides is the number of cardinal sides of a face.
const NumSides = 4

// Sides lists the four sides in clockwise rotational order, the order
// in which a clockwise quarter turn carries one side onto the next.
var Sides = [NumSides]Side{North, East, South, West}

// Rotated advances the side by a, clockwise as seen from outside the
// face: North.Rotated(CW) == East.
func (s Side) Rotated(a Angle) Side {
	return Side((int(s) + int(a)) % NumSides)
}

// String returns the compass name of the side.
func (s Side) String() string {
	switch s {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "?"
	}
}
