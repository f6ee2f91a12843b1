package schemes

import (
	"errors"
	"fmt"

	"github.com/nxncube/nxncube/geometry"
	"github.com/nxncube/nxncube/rotations"
)

// ErrColourNotInScheme is returned by FaceOf for a colour the scheme
// assigns to no face.
var ErrColourNotInScheme = errors.New("schemes: colour not in scheme")

// Scheme assigns one colour to each face of a solved cube. It is a
// plain value; the two standard assignments are Western and Japanese.
type Scheme struct {
	Up, Down, Left, Right, Front, Back Colour
}

// Western is the standard modern scheme: white Up, green Front,
// yellow opposite white.
var Western = Scheme{
	Up:    White,
	Down:  Yellow,
	Left:  Orange,
	Right: Red,
	Front: Green,
	Back:  Blue,
}

// Japanese is the traditional Japanese scheme: like Western but with
// blue opposite white and yellow on the Back face.
var Japanese = Scheme{
	Up:    White,
	Down:  Blue,
	Left:  Orange,
	Right: Red,
	Front: Green,
	Back:  Yellow,
}

// Colour returns the colour the scheme assigns to a face.
func (s Scheme) Colour(f geometry.Face) Colour {
	switch f {
	case geometry.Up:
		return s.Up
	case geometry.Down:
		return s.Down
	case geometry.Left:
		return s.Left
	case geometry.Right:
		return s.Right
	case geometry.Front:
		return s.Front
	default:
		return s.Back
	}
}

// FaceOf returns the face the scheme assigns a colour to, or
// ErrColourNotInScheme if no face carries it.
func (s Scheme) FaceOf(c Colour) (geometry.Face, error) {
	for _, f := range geometry.Faces {
		if s.Colour(f) == c {
			return f, nil
		}
	}

	return 0, fmt.Errorf("%w: %v", ErrColourNotInScheme, c)
}

// Rotated returns the scheme a solved cube painted in s shows after
// the whole cube is turned by r: each face takes the colour of the
// face that r carries onto it.
func (s Scheme) Rotated(r rotations.Rotation) Scheme {
	from := r.Inverse().FacePerm()

	return Scheme{
		Up:    s.Colour(from[geometry.Up]),
		Down:  s.Colour(from[geometry.Down]),
		Left:  s.Colour(from[geometry.Left]),
		Right: s.Colour(from[geometry.Right]),
		Front: s.Colour(from[geometry.Front]),
		Back:  s.Colour(from[geometry.Back]),
	}
}

// String renders the scheme as its six face colours in U D L R F B
// order, e.g. "U:W D:Y L:O R:R F:G B:B".
func (s Scheme) String() string {
	return fmt.Sprintf("U:%v D:%v L:%v R:%v F:%v B:%v",
		s.Up, s.Down, s.Left, s.Right, s.Front, s.Back)
}
