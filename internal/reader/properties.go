package reader

import (
	"log/slog"
	"strings"

	"github.com/dshills/procon/internal/format"
	"github.com/dshills/procon/internal/properties"
	"github.com/dshills/procon/internal/tree"
)

// PropertiesReader reads .properties text. Malformed lines never fail a read.
type PropertiesReader struct {
	Delimiter properties.Delimiter
}

func (r *PropertiesReader) Format() format.Format { return format.Properties }

func (r *PropertiesReader) Read(content string) (*tree.Forest, error) {
	tok := properties.NewTokenizer(r.Delimiter)
	if err := tok.Tokenize(strings.NewReader(content)); err != nil {
		return nil, format.ParseError(format.Properties, err)
	}

	forest := tree.NewForest()
	for _, l := range tok.Lines() {
		forest.Merge(tree.FromDottedKey(l.Key, l.Value))
	}

	st := tok.Stats()
	slog.Info("read properties",
		"lines", st.Lines,
		"entries", st.Entries,
		"keys", tok.Len(),
		"comments", len(st.Comments),
		"blank", len(st.BlankLines),
	)
	return forest, nil
}
