package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LaurenceJKing/RubixCube"
)

// run executes the root command with args and returns stdout and stderr.
// Flags are reset first since the command tree is shared.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	resetFlags(rootCmd)
	rotateScramble = false

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestSolvedPlain(t *testing.T) {
	out, _, err := run(t, "solved", "--plain")
	require.NoError(t, err)
	assert.Equal(t, rubixcube.Solved().String(), out)
}

func TestSolvedStyled(t *testing.T) {
	out, _, err := run(t, "solved")
	require.NoError(t, err)

	for _, colour := range rubixcube.Colours() {
		assert.Equal(t, 9, strings.Count(out, " "+colour.String()+" "), colour.Name())
	}
}

func TestScrambleSeeded(t *testing.T) {
	first, _, err := run(t, "scramble", "--plain", "--seed", "42")
	require.NoError(t, err)
	second, _, err := run(t, "scramble", "--plain", "--seed", "42")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "blue=9 green=9 white=9 yellow=9 orange=9 red=9")
}

func TestScrambleShuffleStrategy(t *testing.T) {
	out, _, err := run(t, "scramble", "--plain", "--strategy", "shuffle")
	require.NoError(t, err)
	assert.Contains(t, out, "blue=9 green=9 white=9 yellow=9 orange=9 red=9")
}

func TestScrambleUnknownStrategy(t *testing.T) {
	_, _, err := run(t, "scramble", "--strategy", "sorted")
	assert.Error(t, err)
}

func TestRotateSolvedIsUnchanged(t *testing.T) {
	out, _, err := run(t, "rotate", "--plain", "front", "t", "d")
	require.NoError(t, err)
	assert.Equal(t, rubixcube.Solved().String(), out)
}

func TestRotateScrambled(t *testing.T) {
	out, _, err := run(t, "rotate", "--plain", "--scramble", "--seed", "9", "front")
	require.NoError(t, err)

	want := rubixcube.Scrambled(
		rubixcube.WithRand(seeded(9)),
	).Rotate(rubixcube.Front)
	assert.Equal(t, want.String(), out)
}

func TestRotateInvalidFace(t *testing.T) {
	_, _, err := run(t, "rotate", "sideways")
	assert.ErrorIs(t, err, rubixcube.ErrInvalidFace)
}

func TestRotateRequiresFace(t *testing.T) {
	_, _, err := run(t, "rotate")
	assert.Error(t, err)
}

func TestVerboseLogsRotations(t *testing.T) {
	_, stderr, err := run(t, "rotate", "--plain", "-v", "left")
	require.NoError(t, err)
	assert.Contains(t, stderr, "rotated")
	assert.Contains(t, stderr, "Left")
}
