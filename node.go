package zpl

import "strings"

// A Filter constrains the value of one path segment during a Get call.
type Filter struct {
	value string
	any   bool
}

// Is returns a Filter matching nodes whose value equals v exactly.
func Is(v string) Filter { return Filter{value: v} }

// Any returns a wildcard Filter matching any value.
func Any() Filter { return Filter{any: true} }

// A Node is a single property in a ZPL hierarchy. Unlike a Tree, a node
// hierarchy preserves repeated sibling names and the document order of
// every property, and it supports value-filtered path queries.
//
// Nodes are created once, during tree construction, and are read-only
// afterwards; queries are safe to run concurrently.
type Node struct {
	name     string
	value    string
	level    int
	parent   *Node
	children []*Node
}

// NewRoot returns an empty root node. A root is named "root", sits at
// level 0 and contributes no line when the tree is rendered.
func NewRoot() *Node {
	return &Node{name: "root"}
}

// newChild creates a node under parent and appends it to parent's
// children.
func newChild(parent *Node, name, value string) *Node {
	n := &Node{
		name:   name,
		value:  value,
		level:  parent.level + 1,
		parent: parent,
	}
	parent.children = append(parent.children, n)
	return n
}

// Name returns the node's property name.
func (n *Node) Name() string { return n.name }

// Value returns the node's value. Name-only properties have the empty
// string.
func (n *Node) Value() string { return n.value }

// Level returns the node's depth; the root is at level 0.
func (n *Node) Level() int { return n.level }

// Parent returns the node's parent, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's direct children in document order. The
// slice is shared with the node and must not be modified.
func (n *Node) Children() []*Node { return n.children }

// Get resolves a path of ":"-separated names relative to n, optionally
// filtering by value along the way.
//
// Filters align to the deepest end of the path: a single filter applies
// to the last segment only, and a shorter filter list is left-padded with
// wildcards. Supplying more filters than path segments is a QueryError.
//
// Matching is depth-first in document order with backtracking: a child
// that matches at one level but has no matching descendants does not
// block its later siblings. Get returns the first full match, or nil if
// no combination of children satisfies the path.
//
//	cfg.Get("thing")                              // first "thing" node
//	cfg.Get("thing", zpl.Is("flu"))               // the "thing" valued "flu"
//	cfg.Get("thing:bar", zpl.Is("flu"), zpl.Any())// its "bar" child
func (n *Node) Get(path string, query ...Filter) (*Node, error) {
	if path == "" {
		return n, nil
	}
	return n.GetPath(strings.Split(path, defaultSeparator), query...)
}

// GetPath is Get with the path supplied as explicit segments, for names
// that themselves contain the separator.
func (n *Node) GetPath(path []string, query ...Filter) (*Node, error) {
	if len(query) > len(path) {
		return nil, &QueryError{PathLen: len(path), QueryLen: len(query)}
	}
	if len(path) == 0 {
		return n, nil
	}
	full := make([]Filter, len(path))
	for i := range full[:len(path)-len(query)] {
		full[i] = Any()
	}
	copy(full[len(path)-len(query):], query)
	return n.match(path, full), nil
}

// match implements the recursive backtracking lookup. It never mutates
// the tree.
func (n *Node) match(path []string, query []Filter) *Node {
	seg, f := path[0], query[0]
	for _, child := range n.children {
		if child.name != seg {
			continue
		}
		if !f.any && f.value != child.value {
			continue
		}
		if len(path) == 1 {
			return child
		}
		if m := child.match(path[1:], query[1:]); m != nil {
			return m
		}
	}
	return nil
}

// Child looks up a direct child by key. The key is either a bare name,
// matching the first child with that name, or "name=value", matching the
// first child with that name and exact value. Unlike Get, a miss is an
// error: Child fails with a KeyError carrying the attempted key.
//
// Because Child returns the node itself, lookups chain:
//
//	auth, err := cfg.Child("authorized_users")
//	...
//	simple, err := auth.Child("authorization")
func (n *Node) Child(key string) (*Node, error) {
	name, value, filtered := strings.Cut(key, "=")
	for _, child := range n.children {
		if child.name != name {
			continue
		}
		if filtered && child.value != value {
			continue
		}
		return child, nil
	}
	return nil, &KeyError{Key: key}
}

// String renders the subtree rooted at n as canonical ZPL without a
// trailing newline. The root node itself contributes no line; every
// other node contributes one line of 4*(level-1) spaces, its name, and
// " = value" when the value is non-empty.
func (n *Node) String() string {
	var b strings.Builder
	n.render(&b)
	return strings.TrimPrefix(b.String(), "\n")
}

// Text renders the subtree rooted at n as canonical ZPL text terminated
// by a single newline. An empty root renders as the empty string.
func (n *Node) Text() string {
	s := n.String()
	if s == "" {
		return ""
	}
	return s + "\n"
}

func (n *Node) render(b *strings.Builder) {
	if n.level != 0 {
		b.WriteString("\n")
		for i := 0; i < n.level-1; i++ {
			b.WriteString(indentUnit)
		}
		b.WriteString(n.name)
		if n.value != "" {
			b.WriteString(" = ")
			b.WriteString(n.value)
		}
	}
	for _, child := range n.children {
		child.render(b)
	}
}
