package tree

import (
	"log/slog"
	"slices"
	"strings"
)

// Node is one segment of a hierarchical key path.
type Node struct {
	Name     string
	Level    int
	Value    Value
	Children []*Node
}

// NewNode returns an interior node without children.
func NewNode(name string, level int) *Node {
	return &Node{Name: name, Level: level}
}

// NewLeaf returns a terminal node holding v.
func NewLeaf(name string, level int, v Value) *Node {
	return &Node{Name: name, Level: level, Value: v}
}

// FromDottedKey builds the chain of nodes for a flattened key such as
// "a.b.c". Every node but the last is interior; the last one holds Parse(raw).
func FromDottedKey(key, raw string) *Node {
	parts := strings.Split(key, ".")
	root := NewNode(parts[0], 0)
	last := root
	for i, name := range parts[1:] {
		child := NewNode(name, i+1)
		last.Children = append(last.Children, child)
		last = child
	}
	last.Value = Parse(raw)
	slog.Debug("created node", "key", key, "kind", last.Value.Kind())
	return root
}

// IsLeaf reports whether n carries a scalar value.
func (n *Node) IsLeaf() bool {
	return !n.Value.IsNone()
}

// SameKey reports whether n and o identify the same sibling slot. Only name
// and level take part; value and children do not.
func (n *Node) SameKey(o *Node) bool {
	return n.Name == o.Name && n.Level == o.Level
}

// Child returns the direct child called name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// AddChild attaches child below n. When n already has a child with the same
// key the two subtrees are merged instead, so sibling names stay unique.
func (n *Node) AddChild(child *Node) {
	child.setLevel(n.Level + 1)
	for _, existing := range n.Children {
		if existing.SameKey(child) {
			existing.merge(child)
			return
		}
	}
	n.Children = append(n.Children, child)
}

// merge folds src into n. Both nodes share the same key. The incoming side
// wins on conflicts, consistent with last-wins duplicate keys.
func (n *Node) merge(src *Node) {
	if src.IsLeaf() {
		if len(n.Children) > 0 {
			slog.Warn("scalar replaces nested keys", "key", n.Name, "level", n.Level, "dropped", len(n.Children))
		}
		n.Value = src.Value
		n.Children = nil
		return
	}
	if n.IsLeaf() {
		slog.Warn("nested keys replace scalar", "key", n.Name, "level", n.Level, "dropped", n.Value.String())
		n.Value = None()
	}
	for _, c := range src.Children {
		n.AddChild(c)
	}
}

func (n *Node) setLevel(level int) {
	if n.Level == level {
		return
	}
	n.Level = level
	for _, c := range n.Children {
		c.setLevel(level + 1)
	}
}

// Sort orders every subtree below n by name, children first.
func (n *Node) Sort() {
	for _, c := range n.Children {
		c.Sort()
	}
	sortNodes(n.Children)
}

func sortNodes(nodes []*Node) {
	slices.SortStableFunc(nodes, func(a, b *Node) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// Walk visits n and its descendants in pre-order. path holds the names from
// the root down to and including the visited node; it must not be retained.
func (n *Node) Walk(fn func(path []string, node *Node)) {
	n.walk(make([]string, 0, 8), fn)
}

func (n *Node) walk(path []string, fn func([]string, *Node)) {
	path = append(path, n.Name)
	fn(path, n)
	for _, c := range n.Children {
		c.walk(path, fn)
	}
}
