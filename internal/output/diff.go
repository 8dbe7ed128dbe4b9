package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dshills/procon/internal/format"
)

var (
	diffHeader = color.New(color.Bold)
	diffDelete = color.New(color.FgRed)
	diffInsert = color.New(color.FgGreen)
)

// WriteDiff writes a line diff between the current contents of path and the
// freshly rendered document. It reports whether the two differ; nothing is
// written when they do not.
func WriteDiff(w io.Writer, path, current, rendered string) (bool, error) {
	if current == rendered {
		return false, nil
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(current, rendered)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	diffHeader.Fprintf(&sb, "--- %s\n", path)
	diffHeader.Fprintf(&sb, "+++ %s (converted)\n", path)
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				diffDelete.Fprintln(&sb, "-"+line)
			case diffmatchpatch.DiffInsert:
				diffInsert.Fprintln(&sb, "+"+line)
			default:
				fmt.Fprintln(&sb, " "+line)
			}
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return true, format.IOError(fmt.Errorf("writing diff: %w", err))
	}
	return true, nil
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
