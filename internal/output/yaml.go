package output

import (
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/dshills/procon/internal/format"
	"github.com/dshills/procon/internal/tree"
)

// YAMLWriter writes the forest as a block style YAML document. Numbers keep
// their original text; strings are quoted only where YAML would otherwise
// read them as another type.
type YAMLWriter struct {
	Indent int
}

func (y *YAMLWriter) Write(w io.Writer, f *tree.Forest) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(y.Indent)
	if err := enc.Encode(forestNode(f)); err != nil {
		return format.SerializationError(format.YAML, err)
	}
	if err := enc.Close(); err != nil {
		return format.SerializationError(format.YAML, fmt.Errorf("closing encoder: %w", err))
	}
	return nil
}

func forestNode(f *tree.Forest) *yaml.Node {
	if list := f.ListRoot(); list != nil {
		if f.Len() > 1 {
			slog.Warn("top-level list replaces the other roots", "dropped", f.Len()-1)
		}
		return valueNode(list)
	}
	return mappingNode(f.Roots())
}

func mappingNode(nodes []*tree.Node) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, n := range nodes {
		m.Content = append(m.Content, stringNode(n.Name), valueNode(n))
	}
	return m
}

func valueNode(n *tree.Node) *yaml.Node {
	if !n.IsLeaf() {
		return mappingNode(n.Children)
	}

	v := n.Value
	switch v.Kind() {
	case tree.KindBoolean:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: v.String()}
	case tree.KindNumeric:
		// untagged, so the original text is emitted plain
		return &yaml.Node{Kind: yaml.ScalarNode, Value: v.Text()}
	case tree.KindArray:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.Items() {
			seq.Content = append(seq.Content, stringNode(item))
		}
		if len(seq.Content) == 0 {
			seq.Style = yaml.FlowStyle
		}
		return seq
	default:
		return stringNode(v.Text())
	}
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
