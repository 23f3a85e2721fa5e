package rubixcube

// Colour represents a facelet colour.
type Colour byte

const (
	Blue   Colour = 0 // Front face when solved
	Green  Colour = 1 // Right face when solved
	White  Colour = 2 // Back face when solved
	Yellow Colour = 3 // Left face when solved
	Orange Colour = 4 // Top face when solved
	Red    Colour = 5 // Bottom face when solved
)

// numColours is the size of the colour set.
const numColours = 6

// Colours returns every colour in enumeration order.
func Colours() []Colour {
	return []Colour{Blue, Green, White, Yellow, Orange, Red}
}

// Next returns the following colour in enumeration order, wrapping from
// Red back to Blue.
func (c Colour) Next() Colour {
	if c >= Red {
		return Blue
	}
	return c + 1
}

func (c Colour) String() string {
	switch c {
	case Blue:
		return "B"
	case Green:
		return "G"
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Orange:
		return "O"
	case Red:
		return "R"
	default:
		return "?"
	}
}

// Name returns the lower-case colour name.
func (c Colour) Name() string {
	switch c {
	case Blue:
		return "blue"
	case Green:
		return "green"
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Orange:
		return "orange"
	case Red:
		return "red"
	default:
		return "unknown"
	}
}
