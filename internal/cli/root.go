// Package cli implements the command-line interface for rubixcube.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	verbose bool
	plain   bool

	logger = newLogger(os.Stderr)
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "rubixcube",
	Short: "Inspect 3x3 cube states",
	Long: `rubixcube prints 3x3 cube states as an unfolded net.

Start from the solved cube or a colour-balanced scramble and rotate
individual faces. Rotation turns a single face in place; the edges of
the neighbouring faces stay where they are.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(cmd.ErrOrStderr())
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Print colour letters without terminal styling")
}
