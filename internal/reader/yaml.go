package reader

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/procon/internal/format"
	"github.com/dshills/procon/internal/tree"
)

// YAMLReader reads the first document of a YAML stream. Aliases are
// resolved, merge keys are inlined, and nulls and custom-tagged nodes are
// left out.
type YAMLReader struct{}

func (r *YAMLReader) Format() format.Format { return format.YAML }

func (r *YAMLReader) Read(content string) (*tree.Forest, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return nil, format.ParseError(format.YAML, err)
	}
	if len(doc.Content) == 0 {
		return nil, format.ParseError(format.YAML, errors.New("empty document"))
	}

	forest := tree.NewForest()
	root := resolve(doc.Content[0])
	switch root.Kind {
	case yaml.MappingNode:
		for _, n := range mappingNodes(root, 0) {
			forest.Merge(n)
		}
	case yaml.SequenceNode:
		forest.SetList(sequenceItems(root, "")...)
	default:
		return nil, format.ParseError(format.YAML, fmt.Errorf("top-level value must be a mapping or sequence, got %s", root.ShortTag()))
	}
	return forest, nil
}

// mappingNodes converts the pairs of a mapping into nodes at level.
func mappingNodes(m *yaml.Node, level int) []*tree.Node {
	var nodes []*tree.Node
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, value := m.Content[i], resolve(m.Content[i+1])

		if key.ShortTag() == "!!merge" {
			nodes = append(nodes, mergeKeyNodes(value, level)...)
			continue
		}
		if key.Kind != yaml.ScalarNode {
			slog.Debug("unsupported mapping key", "line", key.Line, "tag", key.ShortTag())
			continue
		}
		if n := yamlNode(key.Value, value, level); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// mergeKeyNodes expands "<<: *anchor" and "<<: [*a, *b]".
func mergeKeyNodes(value *yaml.Node, level int) []*tree.Node {
	switch value.Kind {
	case yaml.MappingNode:
		return mappingNodes(value, level)
	case yaml.SequenceNode:
		var nodes []*tree.Node
		for _, c := range value.Content {
			if c = resolve(c); c.Kind == yaml.MappingNode {
				nodes = append(nodes, mappingNodes(c, level)...)
			}
		}
		return nodes
	}
	return nil
}

// yamlNode converts one mapping value. It returns nil for values that have
// no place in the tree.
func yamlNode(key string, v *yaml.Node, level int) *tree.Node {
	if skipped(v) {
		return nil
	}
	switch v.Kind {
	case yaml.MappingNode:
		node := tree.NewNode(key, level)
		for _, c := range mappingNodes(v, level+1) {
			node.AddChild(c)
		}
		return node
	case yaml.SequenceNode:
		return tree.NewLeaf(key, level, tree.Array(sequenceItems(v, key)...))
	case yaml.ScalarNode:
		return tree.NewLeaf(key, level, tree.Parse(v.Value))
	}
	return nil
}

// sequenceItems returns the scalar elements of a sequence as text.
func sequenceItems(seq *yaml.Node, key string) []string {
	items := []string{}
	for _, c := range seq.Content {
		c = resolve(c)
		if skipped(c) {
			continue
		}
		if c.Kind != yaml.ScalarNode {
			slog.Debug("unsupported nested container in sequence", "key", key, "line", c.Line)
			continue
		}
		items = append(items, c.Value)
	}
	return items
}

// skipped reports whether n is null or carries an application specific tag.
func skipped(n *yaml.Node) bool {
	tag := n.ShortTag()
	if tag == "!!null" {
		return true
	}
	if strings.HasPrefix(tag, "!") && !strings.HasPrefix(tag, "!!") && tag != "!" {
		slog.Debug("skipping tagged node", "tag", tag, "line", n.Line)
		return true
	}
	return false
}

// resolve follows aliases to their anchored node.
func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
