package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI logger writing to w at info level.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "rubixcube",
		Level:  log.InfoLevel,
	})
}
