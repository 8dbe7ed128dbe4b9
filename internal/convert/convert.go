package convert

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dshills/procon/internal/format"
	"github.com/dshills/procon/internal/output"
	"github.com/dshills/procon/internal/properties"
	"github.com/dshills/procon/internal/reader"
	"github.com/dshills/procon/internal/tree"
)

// Options describe one conversion.
type Options struct {
	Input     string        // file path, or "-" for stdin
	Source    format.Format // "" selects by extension, then by content
	Target    format.Format
	Delimiter properties.Delimiter
	Output    string // "" derives the name from Input
	DryRun    bool
	Diff      bool
	Sort      bool
	Indent    int
}

// Result reports what a conversion did.
type Result struct {
	Source     format.Format // "" when no reader matched the input
	Content    string
	OutputPath string
	Written    bool
	Changed    bool
}

// Run performs the conversion described by opts. stdin is only read when the
// input is "-"; stdout receives the document on a dry run and the diff in
// diff mode.
func Run(opts Options, stdin io.Reader, stdout io.Writer) (Result, error) {
	var res Result
	if opts.DryRun && opts.Diff {
		return res, errors.New("--dry-run and --diff cannot be combined")
	}

	content, err := readInput(opts.Input, stdin)
	if err != nil {
		return res, err
	}

	forest, source, err := parse(content, opts)
	if err != nil {
		return res, fmt.Errorf("reading %s: %w", inputName(opts.Input), err)
	}
	res.Source = source
	if forest.IsEmpty() {
		slog.Warn("input produced no keys", "input", inputName(opts.Input))
	}

	if opts.Sort {
		forest.Sort()
	}

	res.Content, err = output.Render(forest, opts.Target, output.Options{Indent: opts.Indent})
	if err != nil {
		return res, fmt.Errorf("rendering %s: %w", opts.Target, err)
	}

	res.OutputPath = OutputFilename(opts)
	switch {
	case opts.DryRun:
		res.OutputPath = ""
		if _, err := io.WriteString(stdout, res.Content); err != nil {
			return res, format.IOError(fmt.Errorf("writing to stdout: %w", err))
		}
	case opts.Diff:
		current, err := readExisting(res.OutputPath)
		if err != nil {
			return res, err
		}
		res.Changed, err = output.WriteDiff(stdout, res.OutputPath, current, res.Content)
		if err != nil {
			return res, err
		}
	default:
		if sameFile(opts.Input, res.OutputPath) {
			slog.Warn("output overwrites the input file", "path", res.OutputPath)
		}
		if err := os.WriteFile(res.OutputPath, []byte(res.Content), 0o644); err != nil {
			return res, format.IOError(fmt.Errorf("writing %s: %w", res.OutputPath, err))
		}
		res.Written = true
		slog.Info("converted", "input", inputName(opts.Input), "output", res.OutputPath, "from", res.Source, "to", opts.Target)
	}
	return res, nil
}

// parse picks the reader: explicit source, then extension, then detection.
func parse(content string, opts Options) (*tree.Forest, format.Format, error) {
	source := opts.Source
	if source == "" {
		if f, ok := format.FromExtension(opts.Input); ok && f.Readable() {
			source = f
			slog.Debug("source format from extension", "format", f)
		}
	}
	if source == "" {
		forest, detected := reader.Detect(content, opts.Delimiter)
		return forest, detected, nil
	}
	forest, err := reader.ParseInput(content, source, opts.Delimiter)
	return forest, source, err
}

func readInput(input string, stdin io.Reader) (string, error) {
	if input == "" || input == StdinName {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", format.IOError(fmt.Errorf("reading stdin: %w", err))
		}
		return string(data), nil
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return "", format.IOError(fmt.Errorf("reading input: %w", err))
	}
	return string(data), nil
}

// readExisting returns the contents of path, or "" when it does not exist.
func readExisting(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", format.IOError(fmt.Errorf("reading %s: %w", path, err))
	}
	return string(data), nil
}

func inputName(input string) string {
	if input == "" || input == StdinName {
		return "stdin"
	}
	return input
}

func sameFile(a, b string) bool {
	if a == "" || a == StdinName {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
