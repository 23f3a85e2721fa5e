package rubixcube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformGrid(t *testing.T) {
	g := UniformGrid(Orange)
	require.Len(t, g.Cells(), 9)
	for _, c := range g.Cells() {
		assert.Equal(t, Orange, c)
	}
}

func TestGridCellsRowMajor(t *testing.T) {
	g := gridFromRows(letters())
	want := []Colour{Blue, Green, White, Yellow, Orange, Red, Green, White, Yellow}
	assert.Equal(t, want, g.Cells())
}

func TestGridRotate(t *testing.T) {
	g := gridFromRows(letters())

	got := g.Rotate()

	// Row 0 of the result is column 0 of the source read bottom to top.
	assert.Equal(t, []Colour{g[2][0], g[1][0], g[0][0]}, got[0][:])
	assert.Equal(t, []Colour{g[2][1], g[1][1], g[0][1]}, got[1][:])
	assert.Equal(t, []Colour{g[2][2], g[1][2], g[0][2]}, got[2][:])
	assert.Equal(t, g[1][1], got[1][1], "centre never moves")
}

func TestGridRotateCycle(t *testing.T) {
	g := gridFromRows(letters())

	seen := []Grid{g}
	cur := g
	for i := 0; i < 3; i++ {
		cur = cur.Rotate()
		for _, prev := range seen {
			assert.NotEqual(t, prev, cur, "rotation %d repeated an earlier state", i+1)
		}
		seen = append(seen, cur)
	}
	assert.Equal(t, g, cur.Rotate())
}

func TestGridString(t *testing.T) {
	g := gridFromRows(letters())
	assert.Equal(t, "B G W\nY O R\nG W Y\n", g.String())
}
