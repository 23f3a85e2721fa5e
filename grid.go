package rubixcube

import "strings"

// GridSize is the number of rows and columns on every face.
const GridSize = 3

// Grid is the 3x3 arrangement of colours on one face, indexed [row][column]
// with row 0 at the top. Grid is an array, so assigning or returning it
// copies every cell.
type Grid [GridSize][GridSize]Colour

// UniformGrid returns a grid filled with a single colour.
func UniformGrid(c Colour) Grid {
	var g Grid
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			g[row][col] = c
		}
	}
	return g
}

// gridFromRows copies a 3x3 slice matrix into a Grid. The caller must have
// checked the shape.
func gridFromRows(rows [][]Colour) Grid {
	var g Grid
	for row := range g {
		copy(g[row][:], rows[row])
	}
	return g
}

// Rows returns the grid as a freshly allocated slice matrix.
func (g Grid) Rows() [][]Colour {
	rows := make([][]Colour, GridSize)
	for row := range rows {
		rows[row] = append([]Colour(nil), g[row][:]...)
	}
	return rows
}

// Cells returns the 9 colours row by row.
func (g Grid) Cells() []Colour {
	cells := make([]Colour, 0, GridSize*GridSize)
	for row := range g {
		cells = append(cells, g[row][:]...)
	}
	return cells
}

// Rotate returns the grid turned 90 degrees: row 0 of the result is
// column 0 of g read bottom to top.
//
//	a b c      g d a
//	d e f  ->  h e b
//	g h i      i f c
func (g Grid) Rotate() Grid {
	return gridFromRows(RotateCells(g.Rows()))
}

func (g Grid) String() string {
	var sb strings.Builder
	for row := range g {
		for col := range g[row] {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(g[row][col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
