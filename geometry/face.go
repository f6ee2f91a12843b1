package geometry

// Face identifies one of the six N×N tile grids forming the puzzle
// surface. The zero value is Up.
type Face int

const (
	// Up is the top face of the reference orientation.
	Up Face = iota
	// Down is the bottom face, opposite Up.
	Down
	// Left is the face to the left of Front.
	Left
	// Right is the face to the right of Front.
	Right
	// Front is the face toward the viewer in the reference orientation.
	Front
	// Back is the face away from the viewer, opposite Front.
	Back
)

// NumFaces is the number of faces on the puzzle surface.
const NumFaces = 6

// Faces lists all six faces in declaration order, for iteration.
var Faces = [NumFaces]Face{Up, Down, Left, Right, Front, Back}

// Opposite returns the face geometrically opposite f.
func (f Face) Opposite() Face {
	switch f {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	case Front:
		return Back
	case Back:
		return Front
	default:
		panic("geometry: invalid Face")
	}
}

// String returns the standard one-letter cubing name of the face.
func (f Face) String() string {
	switch f {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	case Front:
		return "F"
	case Back:
		return "B"
	default:
		return "?"
	}
}
