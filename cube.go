package rubixcube

import (
	"fmt"
	"strings"
)

// Cube is a 3x3x3 cube state: one Grid per Face.
// A Cube is a value. Nothing mutates it after construction, and every
// transformation returns a new Cube that owns its own grids.
type Cube struct {
	faces [numFaces]Grid
}

// New builds a cube from one grid per face. It returns ErrFaceCount unless
// faces holds exactly the 6 faces, and ErrGridShape if any grid is not
// 3 rows of 3 columns. The face count is checked first. Grids are copied.
func New(faces map[Face][][]Colour) (Cube, error) {
	if len(faces) != numFaces {
		return Cube{}, fmt.Errorf("%w: got %d", ErrFaceCount, len(faces))
	}
	for face := range faces {
		if !face.valid() {
			return Cube{}, fmt.Errorf("%w: unknown face %d", ErrFaceCount, int(face))
		}
	}

	for _, face := range Faces() {
		rows := faces[face]
		if len(rows) != GridSize {
			return Cube{}, fmt.Errorf("%w: %s has %d rows", ErrGridShape, face, len(rows))
		}
		for i, row := range rows {
			if len(row) != GridSize {
				return Cube{}, fmt.Errorf("%w: %s row %d has %d columns", ErrGridShape, face, i, len(row))
			}
		}
	}

	var c Cube
	for _, face := range Faces() {
		c.faces[face] = gridFromRows(faces[face])
	}
	return c, nil
}

// MustNew is like New but panics on error. Use it where a malformed
// mapping can only be a programming error.
func MustNew(faces map[Face][][]Colour) Cube {
	c, err := New(faces)
	if err != nil {
		panic(err)
	}
	return c
}

// fromGrids builds a cube from grids already known to be well formed.
func fromGrids(grids [numFaces]Grid) Cube {
	faces := make(map[Face][][]Colour, numFaces)
	for _, face := range Faces() {
		faces[face] = grids[face].Rows()
	}
	return MustNew(faces)
}

// Face returns a copy of the grid on face f.
func (c Cube) Face(f Face) Grid {
	return c.faces[f]
}

// Rotate returns a new cube with face f turned 90 degrees (see Grid.Rotate).
// Only f changes. The edge strips of the adjacent faces are left in place.
func (c Cube) Rotate(f Face) Cube {
	rotated := c.faces
	rotated[f] = rotated[f].Rotate()
	return fromGrids(rotated)
}

// Equal reports whether both cubes have identical grids on every face.
func (c Cube) Equal(other Cube) bool {
	return c.faces == other.faces
}

// ColourCounts returns how many of the 54 cells carry each colour.
func (c Cube) ColourCounts() map[Colour]int {
	counts := make(map[Colour]int, numColours)
	for _, face := range Faces() {
		for _, colour := range c.faces[face].Cells() {
			counts[colour]++
		}
	}
	return counts
}

// IsSolved returns true if every face is uniformly its solved colour.
func (c Cube) IsSolved() bool {
	for _, face := range Faces() {
		if c.faces[face] != UniformGrid(SolvedColour(face)) {
			return false
		}
	}
	return true
}

// String returns the cube unfolded as a net:
//
//	      Top
//	Left Front Right Back
//	      Bottom
func (c Cube) String() string {
	var sb strings.Builder

	writeRow := func(face Face, row int) {
		for col := 0; col < GridSize; col++ {
			sb.WriteString(c.faces[face][row][col].String())
			sb.WriteByte(' ')
		}
	}

	for row := 0; row < GridSize; row++ {
		sb.WriteString("      ")
		writeRow(Top, row)
		sb.WriteByte('\n')
	}
	for row := 0; row < GridSize; row++ {
		for _, face := range []Face{Left, Front, Right, Back} {
			writeRow(face, row)
		}
		sb.WriteByte('\n')
	}
	for row := 0; row < GridSize; row++ {
		sb.WriteString("      ")
		writeRow(Bottom, row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
