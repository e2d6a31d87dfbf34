package zpl

import (
	"github.com/elliotchance/orderedmap/v2"
)

// A Value is one position in a Tree: either a scalar string or a nested
// subtree. The zero Value is the empty scalar.
type Value struct {
	str  string
	tree *Tree
}

// String returns a scalar Value.
func String(s string) Value { return Value{str: s} }

// Subtree returns a Value wrapping a nested Tree.
func Subtree(t *Tree) Value { return Value{tree: t} }

// IsTree reports whether v holds a subtree.
func (v Value) IsTree() bool { return v.tree != nil }

// Scalar returns the scalar string held by v. ok is false if v holds a
// subtree.
func (v Value) Scalar() (s string, ok bool) {
	if v.tree != nil {
		return "", false
	}
	return v.str, true
}

// Tree returns the subtree held by v, or nil if v is a scalar.
func (v Value) Tree() *Tree { return v.tree }

// A Tree is an insertion-ordered mapping from property names to values,
// where each value is either a scalar or a nested Tree. It is the nested
// mapping form of a ZPL document.
//
// A Tree does not support repeated names at one level: assigning a scalar
// over an existing scalar replaces it, while an existing subtree is never
// replaced by a scalar. A scalar is promoted to a subtree when children
// arrive under it, which is how a name-only line followed by indented
// children is folded.
type Tree struct {
	m *orderedmap.OrderedMap[string, Value]
}

// NewTree returns an empty Tree.
func NewTree() *Tree {
	return &Tree{m: orderedmap.NewOrderedMap[string, Value]()}
}

// Len returns the number of entries in the tree.
func (t *Tree) Len() int { return t.m.Len() }

// Keys returns the tree's names in insertion order.
func (t *Tree) Keys() []string { return t.m.Keys() }

// Get returns the value stored under name.
func (t *Tree) Get(name string) (Value, bool) { return t.m.Get(name) }

// Set stores a scalar or subtree under name. A scalar never displaces an
// existing subtree; any other assignment is last-write-wins.
func (t *Tree) Set(name string, v Value) {
	if !v.IsTree() {
		if old, ok := t.m.Get(name); ok && old.IsTree() {
			return
		}
	}
	t.m.Set(name, v)
}

// subtree returns the nested Tree under name, creating it on demand and
// promoting an existing scalar if necessary.
func (t *Tree) subtree(name string) *Tree {
	if v, ok := t.m.Get(name); ok && v.IsTree() {
		return v.tree
	}
	sub := NewTree()
	t.m.Set(name, Subtree(sub))
	return sub
}

// add folds one parsed pair into the tree, creating intermediate subtrees
// along the path.
func (t *Tree) add(path []string, value string) {
	ctx := t
	for _, name := range path[:len(path)-1] {
		ctx = ctx.subtree(name)
	}
	ctx.Set(path[len(path)-1], String(value))
}

// Equal reports whether two trees hold the same entries in the same
// order.
func (t *Tree) Equal(other *Tree) bool {
	if t.Len() != other.Len() {
		return false
	}
	oe := other.m.Front()
	for e := t.m.Front(); e != nil; e = e.Next() {
		if oe.Key != e.Key {
			return false
		}
		a, b := e.Value, oe.Value
		switch {
		case a.IsTree() != b.IsTree():
			return false
		case a.IsTree():
			if !a.tree.Equal(b.tree) {
				return false
			}
		default:
			if a.str != b.str {
				return false
			}
		}
		oe = oe.Next()
	}
	return true
}

// Map converts the tree to nested map[string]any values, with scalars as
// strings. Insertion order is lost; the form is meant for interop and
// assertions, not for serialization.
func (t *Tree) Map() map[string]any {
	out := make(map[string]any, t.Len())
	for e := t.m.Front(); e != nil; e = e.Next() {
		if e.Value.IsTree() {
			out[e.Key] = e.Value.tree.Map()
		} else {
			out[e.Key] = e.Value.str
		}
	}
	return out
}
