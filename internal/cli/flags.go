package cli

import (
	"github.com/spf13/pflag"

	"github.com/dshills/procon/internal/format"
	"github.com/dshills/procon/internal/properties"
)

// Shared conversion flags
var (
	flagFrom      format.Format
	flagDelimiter properties.Delimiter
	flagOutput    string
	flagDryRun    bool
	flagDiff      bool
	flagSort      bool
	flagIndent    int
	flagLogLevel  string
	flagNoColor   bool
)

var (
	_ pflag.Value = (*format.Format)(nil)
	_ pflag.Value = (*properties.Delimiter)(nil)
)

func addConvertFlags(fs *pflag.FlagSet) {
	fs.Var(&flagFrom, "from", "Source format (properties, json, yaml); detected when omitted")
	fs.VarP(&flagDelimiter, "delimiter", "d", "Properties delimiter (equals, colon, whitespace)")
	fs.StringVarP(&flagOutput, "output", "o", "", "Output file path (default: input name with the target extension)")
	fs.BoolVarP(&flagDryRun, "dry-run", "n", false, "Print the result to stdout instead of writing a file")
	fs.BoolVar(&flagDiff, "diff", false, "Show what would change in the output file; exit 1 if it differs")
	fs.BoolVar(&flagSort, "sort", false, "Sort keys alphabetically")
	fs.IntVar(&flagIndent, "indent", 0, "Indentation width for JSON and YAML")
}

// buildOverrides collects the config keys the user set on the command line.
func buildOverrides(fs *pflag.FlagSet) map[string]string {
	m := make(map[string]string)
	if fs.Changed("delimiter") {
		m["delimiter"] = flagDelimiter.String()
	}
	if fs.Changed("sort") {
		m["sort"] = fs.Lookup("sort").Value.String()
	}
	if fs.Changed("indent") {
		m["indent"] = fs.Lookup("indent").Value.String()
	}
	if flagLogLevel != "" {
		m["logLevel"] = flagLogLevel
	}
	if flagNoColor {
		m["color"] = "never"
	}
	return m
}
