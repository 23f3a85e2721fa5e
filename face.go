package rubixcube

import (
	"fmt"
	"strings"
)

// Face represents one side of the cube.
type Face int

const (
	Front  Face = 0
	Right  Face = 1
	Back   Face = 2
	Left   Face = 3
	Top    Face = 4
	Bottom Face = 5
)

// numFaces is the number of faces on a cube.
const numFaces = 6

// Faces returns every face in enumeration order.
func Faces() []Face {
	return []Face{Front, Right, Back, Left, Top, Bottom}
}

func (f Face) valid() bool {
	return f >= Front && f <= Bottom
}

// Opposite returns the face directly across the cube.
func (f Face) Opposite() Face {
	switch f {
	case Front:
		return Back
	case Back:
		return Front
	case Right:
		return Left
	case Left:
		return Right
	case Top:
		return Bottom
	case Bottom:
		return Top
	default:
		panic(fmt.Sprintf("rubixcube: opposite of invalid face %d", int(f)))
	}
}

// Adjacent returns the four faces bordering f, in enumeration order.
func (f Face) Adjacent() []Face {
	opposite := f.Opposite()
	adjacent := make([]Face, 0, 4)
	for _, face := range Faces() {
		if face != f && face != opposite {
			adjacent = append(adjacent, face)
		}
	}
	return adjacent
}

func (f Face) String() string {
	switch f {
	case Front:
		return "Front"
	case Right:
		return "Right"
	case Back:
		return "Back"
	case Left:
		return "Left"
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	default:
		return "?"
	}
}

// ParseFace parses a face name or its initial. Matching is case-insensitive;
// "d" (down) is accepted for Bottom since "b" is taken by Back.
// Returns ErrInvalidFace for anything else.
func ParseFace(s string) (Face, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "front", "f":
		return Front, nil
	case "right", "r":
		return Right, nil
	case "back", "b":
		return Back, nil
	case "left", "l":
		return Left, nil
	case "top", "t", "u":
		return Top, nil
	case "bottom", "d":
		return Bottom, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFace, s)
	}
}
