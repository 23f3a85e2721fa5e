package cli

import (
	"github.com/spf13/cobra"

	"github.com/LaurenceJKing/RubixCube"
)

var (
	rotateOpts     scrambleFlags
	rotateScramble bool
)

var rotateCmd = &cobra.Command{
	Use:   "rotate FACE...",
	Short: "Rotate faces in order and print the result",
	Long: `Start from the solved cube (or a scramble with --scramble) and turn each
named face 90 degrees, in order. Faces are front, right, back, left, top
and bottom, or their initials f, r, b, l, t/u and d.

Only the named face's own grid turns; adjacent faces are left unchanged.`,
	Example: `  rubixcube rotate front
  rubixcube rotate --scramble --seed 42 f f t`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRotate,
}

func init() {
	rotateOpts.register(rotateCmd)
	rotateCmd.Flags().BoolVar(&rotateScramble, "scramble", false, "Start from a scrambled cube instead of the solved one")
	rootCmd.AddCommand(rotateCmd)
}

func runRotate(cmd *cobra.Command, args []string) error {
	faces, err := parseFaces(args)
	if err != nil {
		return err
	}

	c := rubixcube.Solved()
	if rotateScramble {
		c, err = rotateOpts.scramble()
		if err != nil {
			return err
		}
	}

	for _, face := range faces {
		c = c.Rotate(face)
		logger.Debug("rotated", "face", face)
	}

	printCube(cmd.OutOrStdout(), c)
	return nil
}
