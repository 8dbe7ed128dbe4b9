package tree

// Forest is the ordered collection of root nodes produced by one read.
type Forest struct {
	roots []*Node
	list  *Node
}

// NewForest returns an empty forest.
func NewForest() *Forest {
	return &Forest{}
}

// Roots returns the root nodes in order.
func (f *Forest) Roots() []*Node { return f.roots }

// Len returns the number of roots.
func (f *Forest) Len() int { return len(f.roots) }

// IsEmpty reports whether the forest has no roots.
func (f *Forest) IsEmpty() bool { return len(f.roots) == 0 }

// Root returns the root called name, or nil.
func (f *Forest) Root(name string) *Node {
	for _, r := range f.roots {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// Merge inserts n as a root. If a root with the same name exists the two
// trees are merged, reusing every ancestor whose name and level match;
// otherwise n is appended as a new root.
func (f *Forest) Merge(n *Node) {
	n.setLevel(0)
	for _, existing := range f.roots {
		if existing.SameKey(n) {
			existing.merge(n)
			return
		}
	}
	f.roots = append(f.roots, n)
}

// Sort orders every tree and then the roots themselves by name.
func (f *Forest) Sort() {
	for _, r := range f.roots {
		r.Sort()
	}
	sortNodes(f.roots)
}

// Walk visits every node of every tree in pre-order.
func (f *Forest) Walk(fn func(path []string, node *Node)) {
	for _, r := range f.roots {
		r.Walk(fn)
	}
}

// Lookup returns the node at the given dotted path segments, or nil.
func (f *Forest) Lookup(path ...string) *Node {
	if len(path) == 0 {
		return nil
	}
	n := f.Root(path[0])
	for _, name := range path[1:] {
		if n == nil {
			return nil
		}
		n = n.Child(name)
	}
	return n
}

// SetList records a top-level list. The items are held by a nameless root;
// a mapping key that happens to be empty is never mistaken for it.
func (f *Forest) SetList(items ...string) {
	f.Merge(NewLeaf("", 0, Array(items...)))
	f.list = f.Root("")
}

// ListRoot returns the root added by SetList, or nil when the forest is a
// plain mapping.
func (f *Forest) ListRoot() *Node {
	if f.list == nil || f.list.Value.Kind() != KindArray {
		return nil
	}
	return f.list
}
