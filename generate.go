package rubixcube

import (
	"fmt"
	"math/rand/v2"
)

// cellsPerColour is how many of the 54 cells each colour fills on a
// balanced cube.
const cellsPerColour = GridSize * GridSize

// SolvedColour returns the colour face f carries when the cube is solved.
func SolvedColour(f Face) Colour {
	switch f {
	case Front:
		return Blue
	case Right:
		return Green
	case Back:
		return White
	case Left:
		return Yellow
	case Top:
		return Orange
	case Bottom:
		return Red
	default:
		panic(fmt.Sprintf("rubixcube: solved colour of invalid face %d", int(f)))
	}
}

// Solved returns the reference cube with each face a single colour.
func Solved() Cube {
	var grids [numFaces]Grid
	for _, face := range Faces() {
		grids[face] = UniformGrid(SolvedColour(face))
	}
	return fromGrids(grids)
}

// Strategy selects how Scrambled distributes colours.
type Strategy int

const (
	// StrategyAdvance draws a random colour per cell and, when that colour
	// already has 9 cells, walks forward through the enumeration until it
	// finds one that does not. Colours drawn early fill up first, so the
	// result is not uniform over balanced cubes.
	StrategyAdvance Strategy = iota

	// StrategyShuffle permutes a fixed multiset of 9 cells per colour,
	// which is uniform over balanced cubes.
	StrategyShuffle
)

func (s Strategy) String() string {
	switch s {
	case StrategyAdvance:
		return "advance"
	case StrategyShuffle:
		return "shuffle"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a strategy name as returned by Strategy.String.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "advance":
		return StrategyAdvance, nil
	case "shuffle":
		return StrategyShuffle, nil
	default:
		return 0, fmt.Errorf("rubixcube: unknown scramble strategy %q", s)
	}
}

// Scrambled returns a randomly coloured cube with exactly 9 cells of each
// colour. Each call uses its own random source unless WithRand is given.
func Scrambled(opts ...Option) Cube {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	var cells []Colour
	switch cfg.strategy {
	case StrategyShuffle:
		cells = shuffledCells(rng)
	default:
		cells = advancedCells(rng)
	}

	// Faces in enumeration order, then rows, then columns.
	var grids [numFaces]Grid
	i := 0
	for _, face := range Faces() {
		for row := 0; row < GridSize; row++ {
			for col := 0; col < GridSize; col++ {
				grids[face][row][col] = cells[i]
				i++
			}
		}
	}
	return fromGrids(grids)
}

// advancedCells draws each cell's colour uniformly, advancing to the next
// colour while the drawn one is already full.
func advancedCells(rng *rand.Rand) []Colour {
	var totals [numColours]int
	cells := make([]Colour, numFaces*cellsPerColour)
	for i := range cells {
		colour := Colour(rng.IntN(numColours))
		for totals[colour] >= cellsPerColour {
			colour = colour.Next()
		}
		totals[colour]++
		cells[i] = colour
	}
	return cells
}

// shuffledCells permutes 9 cells of each colour.
func shuffledCells(rng *rand.Rand) []Colour {
	cells := make([]Colour, 0, numFaces*cellsPerColour)
	for _, colour := range Colours() {
		for n := 0; n < cellsPerColour; n++ {
			cells = append(cells, colour)
		}
	}
	rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
	return cells
}
