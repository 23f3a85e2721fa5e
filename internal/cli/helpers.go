package cli

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/LaurenceJKing/RubixCube"
)

// scrambleFlags holds the flags shared by commands that build a scramble.
type scrambleFlags struct {
	seed     uint64
	strategy string
}

func (f *scrambleFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Seed for a reproducible scramble (default: random)")
	cmd.Flags().StringVar(&f.strategy, "strategy", rubixcube.StrategyAdvance.String(), "Scramble strategy: advance or shuffle")
}

// scramble builds a cube from the flags. A seed of 0 leaves the source
// unseeded.
func (f *scrambleFlags) scramble() (rubixcube.Cube, error) {
	strategy, err := rubixcube.ParseStrategy(f.strategy)
	if err != nil {
		return rubixcube.Cube{}, err
	}

	opts := []rubixcube.Option{rubixcube.WithStrategy(strategy)}
	if f.seed != 0 {
		opts = append(opts, rubixcube.WithRand(rand.New(rand.NewPCG(f.seed, f.seed))))
	}

	logger.Debug("scrambling", "strategy", strategy, "seed", f.seed)
	return rubixcube.Scrambled(opts...), nil
}

// parseFaces converts command arguments to faces.
func parseFaces(args []string) ([]rubixcube.Face, error) {
	faces := make([]rubixcube.Face, 0, len(args))
	for _, arg := range args {
		face, err := rubixcube.ParseFace(arg)
		if err != nil {
			return nil, err
		}
		faces = append(faces, face)
	}
	return faces, nil
}
