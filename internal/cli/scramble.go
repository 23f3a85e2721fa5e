package cli

import (
	"github.com/spf13/cobra"
)

var scrambleOpts scrambleFlags

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print a colour-balanced random cube",
	Long: `Print a randomly coloured cube with exactly 9 cells of each colour,
followed by the per-colour counts.

Strategies:
  advance - draw a colour per cell, moving to the next colour when full (default)
  shuffle - uniformly permute 9 cells of each colour`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

func init() {
	scrambleOpts.register(scrambleCmd)
	rootCmd.AddCommand(scrambleCmd)
}

func runScramble(cmd *cobra.Command, args []string) error {
	c, err := scrambleOpts.scramble()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printCube(out, c)
	printCounts(out, c)
	return nil
}
