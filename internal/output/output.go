package output

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dshills/procon/internal/format"
	"github.com/dshills/procon/internal/tree"
)

// DefaultIndent is the indentation width used when Options.Indent is unset.
const DefaultIndent = 2

// Options tune the rendering of nested formats.
type Options struct {
	// Indent is the number of spaces per nesting level for JSON and YAML.
	Indent int
}

func (o Options) indent() int {
	if o.Indent <= 0 {
		return DefaultIndent
	}
	return o.Indent
}

// Writer writes a forest in a specific format.
type Writer interface {
	Write(w io.Writer, f *tree.Forest) error
}

// GetWriter returns a writer for the target format.
func GetWriter(target format.Format, opts Options) (Writer, error) {
	switch target {
	case format.Properties:
		return &PropertiesWriter{}, nil
	case format.JSON:
		return &JSONWriter{Indent: opts.indent()}, nil
	case format.YAML:
		return &YAMLWriter{Indent: opts.indent()}, nil
	case format.TOML:
		return &TOMLWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", target)
	}
}

// Render returns f serialized as target.
func Render(f *tree.Forest, target format.Format, opts Options) (string, error) {
	w, err := GetWriter(target, opts)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := w.Write(&buf, f); err != nil {
		return "", err
	}
	return buf.String(), nil
}
