package output

import (
	"io"
	"log/slog"
	"math"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/dshills/procon/internal/format"
	"github.com/dshills/procon/internal/tree"
)

// TOMLWriter writes the forest as a TOML document. Interior nodes become
// tables. The encoder sorts keys and writes plain keys before tables. A
// top-level list has no place in a table and is left out.
type TOMLWriter struct{}

func (t *TOMLWriter) Write(w io.Writer, f *tree.Forest) error {
	list := f.ListRoot()
	if list != nil {
		slog.Warn("TOML documents are tables; top-level list omitted", "items", len(list.Value.Items()))
	}

	doc := make(map[string]any, f.Len())
	for _, r := range f.Roots() {
		if r == list {
			continue
		}
		doc[r.Name] = tomlValue(r)
	}

	enc := toml.NewEncoder(w)
	enc.Indent = ""
	if err := enc.Encode(doc); err != nil {
		return format.SerializationError(format.TOML, err)
	}
	return nil
}

func tomlValue(n *tree.Node) any {
	if !n.IsLeaf() {
		table := make(map[string]any, len(n.Children))
		for _, c := range n.Children {
			table[c.Name] = tomlValue(c)
		}
		return table
	}

	v := n.Value
	switch v.Kind() {
	case tree.KindBoolean:
		return v.Bool()
	case tree.KindNumeric:
		return tomlNumber(v.Text())
	case tree.KindArray:
		items := v.Items()
		if items == nil {
			items = []string{}
		}
		return items
	default:
		return v.Text()
	}
}

// tomlNumber picks the narrowest TOML type that holds text.
func tomlNumber(text string) any {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	return text
}
