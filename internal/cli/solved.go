package cli

import (
	"github.com/spf13/cobra"

	"github.com/LaurenceJKing/RubixCube"
)

var solvedCmd = &cobra.Command{
	Use:   "solved",
	Short: "Print the solved cube",
	Long:  `Print the reference solved cube: Front blue, Right green, Back white, Left yellow, Top orange, Bottom red.`,
	Args:  cobra.NoArgs,
	RunE:  runSolved,
}

func init() {
	rootCmd.AddCommand(solvedCmd)
}

func runSolved(cmd *cobra.Command, args []string) error {
	printCube(cmd.OutOrStdout(), rubixcube.Solved())
	return nil
}
