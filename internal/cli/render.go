package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LaurenceJKing/RubixCube"
)

// Facelet styles, one per colour.
var colourStyles = map[rubixcube.Colour]lipgloss.Style{
	rubixcube.Blue:   faceletStyle("21", "15"),
	rubixcube.Green:  faceletStyle("34", "0"),
	rubixcube.White:  faceletStyle("255", "0"),
	rubixcube.Yellow: faceletStyle("226", "0"),
	rubixcube.Orange: faceletStyle("208", "0"),
	rubixcube.Red:    faceletStyle("160", "15"),
}

var countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

func faceletStyle(bg, fg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg))
}

// faceletWidth is the rendered width of one cell, " X ".
const faceletWidth = 3

// renderFace draws one grid as three styled rows.
func renderFace(g rubixcube.Grid) string {
	rows := make([]string, 0, rubixcube.GridSize)
	for _, row := range g.Rows() {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteString(colourStyles[c].Render(" " + c.String() + " "))
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "\n")
}

// renderNet draws the cube unfolded, matching the layout of Cube.String.
func renderNet(c rubixcube.Cube) string {
	spacer := strings.TrimSuffix(
		strings.Repeat(strings.Repeat(" ", faceletWidth*rubixcube.GridSize)+"\n", rubixcube.GridSize), "\n")

	top := lipgloss.JoinHorizontal(lipgloss.Top, spacer, renderFace(c.Face(rubixcube.Top)))
	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		renderFace(c.Face(rubixcube.Left)),
		renderFace(c.Face(rubixcube.Front)),
		renderFace(c.Face(rubixcube.Right)),
		renderFace(c.Face(rubixcube.Back)),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, spacer, renderFace(c.Face(rubixcube.Bottom)))

	return lipgloss.JoinVertical(lipgloss.Left, top, middle, bottom)
}

// formatCounts lists the number of cells per colour in enumeration order.
func formatCounts(c rubixcube.Cube) string {
	counts := c.ColourCounts()
	parts := make([]string, 0, len(counts))
	for _, colour := range rubixcube.Colours() {
		parts = append(parts, fmt.Sprintf("%s=%d", colour.Name(), counts[colour]))
	}
	return strings.Join(parts, " ")
}

// printCube writes the cube net to w, styled unless --plain is set.
func printCube(w io.Writer, c rubixcube.Cube) {
	if plain {
		fmt.Fprint(w, c.String())
		return
	}
	fmt.Fprintln(w, renderNet(c))
}

// printCounts writes the per-colour cell counts to w.
func printCounts(w io.Writer, c rubixcube.Cube) {
	if plain {
		fmt.Fprintln(w, formatCounts(c))
		return
	}
	fmt.Fprintln(w, countStyle.Render(formatCounts(c)))
}
