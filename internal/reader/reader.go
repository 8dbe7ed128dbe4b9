package reader

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dshills/procon/internal/format"
	"github.com/dshills/procon/internal/properties"
	"github.com/dshills/procon/internal/tree"
)

// Reader parses one source format.
type Reader interface {
	Read(content string) (*tree.Forest, error)
	Format() format.Format
}

// New returns the reader for f. d only matters for properties input.
func New(f format.Format, d properties.Delimiter) (Reader, error) {
	switch f {
	case format.Properties:
		return &PropertiesReader{Delimiter: d}, nil
	case format.JSON:
		return &JSONReader{}, nil
	case format.YAML:
		return &YAMLReader{}, nil
	case format.TOML:
		return nil, format.UnsupportedTypeError(f, errors.New("reading toml is not supported"))
	default:
		return nil, fmt.Errorf("unsupported input format: %q", f)
	}
}

// ParseInput parses content as source. An empty source means the format is
// unknown and is detected from the content.
func ParseInput(content string, source format.Format, d properties.Delimiter) (*tree.Forest, error) {
	if source == "" {
		forest, _ := Detect(content, d)
		return forest, nil
	}
	r, err := New(source, d)
	if err != nil {
		return nil, err
	}
	return r.Read(content)
}

// Detect tries every readable format in turn and returns the first forest
// that parses along with its format. When nothing parses the forest is empty
// and the format is "".
func Detect(content string, d properties.Delimiter) (*tree.Forest, format.Format) {
	candidates := []Reader{
		&JSONReader{},
		&YAMLReader{},
		&PropertiesReader{Delimiter: d},
	}
	for _, r := range candidates {
		forest, err := r.Read(content)
		if err != nil {
			slog.Debug("reader did not match", "format", r.Format(), "error", err)
			continue
		}
		slog.Debug("detected input format", "format", r.Format())
		return forest, r.Format()
	}
	slog.Info("no suitable reader found")
	return tree.NewForest(), ""
}
