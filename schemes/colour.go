package schemes

// Colour is one of the six sticker colours of a standard cube.
type Colour int

// The six standard sticker colours.
const (
	White Colour = iota
	Yellow
	Red
	Orange
	Blue
	Green
)

// NumColours is the number of sticker colours.
const NumColours = 6

// Colours lists all colours in declaration order.
var Colours = [NumColours]Colour{White, Yellow, Red, Orange, Blue, Green}

// String returns the colour's one-letter abbreviation.
func (c Colour) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Blue:
		return "B"
	case Green:
		return "G"
	default:
		return "?"
	}
}
