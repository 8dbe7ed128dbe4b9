package convert

import (
	"path/filepath"
	"strings"

	"github.com/dshills/procon/internal/format"
)

// StdinName is the input name that means standard input.
const StdinName = "-"

// DefaultFilename derives the output file name from the input name. Only the
// last extension is replaced, and the file lands in the working directory.
// Standard input becomes "stdin.<ext>".
func DefaultFilename(input string, target format.Format) string {
	if input == "" || input == StdinName {
		return "stdin." + target.Extension()
	}
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}
	return stem + "." + target.Extension()
}

// OutputFilename returns opts.Output when set and the default name otherwise.
func OutputFilename(opts Options) string {
	if opts.Output != "" {
		return opts.Output
	}
	return DefaultFilename(opts.Input, opts.Target)
}
