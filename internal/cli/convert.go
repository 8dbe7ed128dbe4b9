package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/procon/internal/config"
	"github.com/dshills/procon/internal/convert"
	"github.com/dshills/procon/internal/format"
)

var (
	propertiesCmd = newConvertCmd(format.Properties, nil)
	jsonCmd       = newConvertCmd(format.JSON, nil)
	yamlCmd       = newConvertCmd(format.YAML, []string{"yml"})
	tomlCmd       = newConvertCmd(format.TOML, nil)
)

func newConvertCmd(target format.Format, aliases []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     string(target) + " [file|-]",
		Aliases: aliases,
		Short:   fmt.Sprintf("Convert a file to %s", target),
		Long: fmt.Sprintf("Convert a file, or stdin when the file is - or omitted, to %s. "+
			"The source format comes from --from, the file extension, or the content.", target),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runConvert(cmd, target, args)
			return nil
		},
	}
	addConvertFlags(cmd.Flags())
	return cmd
}

func runConvert(cmd *cobra.Command, target format.Format, args []string) {
	stderr := cmd.ErrOrStderr()

	cfg, err := config.Load(buildOverrides(cmd.Flags()))
	if err != nil {
		printError(stderr, err)
		exitCode = ExitUsageError
		return
	}
	setupOutput(stderr, cfg)

	input := convert.StdinName
	if len(args) == 1 {
		input = args[0]
	}

	if err := validateConvert(cmd, input); err != nil {
		printError(stderr, err)
		exitCode = ExitUsageError
		return
	}

	opts := convert.Options{
		Input:     input,
		Source:    flagFrom,
		Target:    target,
		Delimiter: cfg.DelimiterValue(),
		Output:    flagOutput,
		DryRun:    flagDryRun,
		Diff:      flagDiff,
		Sort:      cfg.Sort,
		Indent:    cfg.Indent,
	}

	res, err := convert.Run(opts, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		printError(stderr, err)
		exitCode = exitCodeFor(err)
		return
	}

	switch {
	case res.Written:
		fmt.Fprintf(stderr, "Converted %s to %s\n", input, res.OutputPath)
	case opts.Diff && res.Changed:
		exitCode = ExitDiff
	}
}

func validateConvert(cmd *cobra.Command, input string) error {
	if flagFrom != "" && !flagFrom.Readable() {
		return fmt.Errorf("%s input is not supported", flagFrom)
	}
	if flagDryRun && flagDiff {
		return errors.New("--dry-run and --diff cannot be combined")
	}
	if input == convert.StdinName && isTerminal(cmd.InOrStdin()) {
		return errors.New("nothing piped into stdin; pass a file or pipe input")
	}
	return nil
}

// exitCodeFor maps a conversion error to an exit code.
func exitCodeFor(err error) int {
	switch format.KindOf(err) {
	case format.KindIO:
		return ExitIOError
	case format.KindParse, format.KindUnsupportedType, format.KindSerialization:
		return ExitDataError
	default:
		return ExitUsageError
	}
}
