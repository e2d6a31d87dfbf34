package zpl

import (
	"io"
	"slices"
	"strings"
)

// Decoder reads a ZPL document from an input stream and materializes one
// of its in-memory forms. The reader is consumed once per call; decoding
// a document into several forms requires separate readers.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the document into a nested Tree. Intermediate name-only
// properties become subtrees; scalar collisions are last-write-wins, and
// a subtree is never displaced by a scalar (see Tree).
func (d *Decoder) Decode() (*Tree, error) {
	sc, err := NewScanner(d.r, append(slices.Clone(d.opts), EmitEmpty(true))...)
	if err != nil {
		return nil, err
	}
	tree := NewTree()
	for sc.Scan() {
		p := sc.Pair()
		tree.add(p.Path, p.Value)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return tree, nil
}

// DecodeFlat reads the document into a flat map with one entry per
// property, keyed by the path segments joined with the configured
// separator. Repeated keys are last-write-wins. Name-only properties
// contribute keys only with the EmitEmpty option.
func (d *Decoder) DecodeFlat() (map[string]string, error) {
	o, err := newOptions(d.opts)
	if err != nil {
		return nil, err
	}
	sc, err := NewScanner(d.r, d.opts...)
	if err != nil {
		return nil, err
	}
	flat := make(map[string]string)
	for sc.Scan() {
		p := sc.Pair()
		flat[strings.Join(p.Path, o.separator)] = p.Value
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return flat, nil
}

// DecodeConfig reads the document into a hierarchy of Nodes and returns
// the root. Every property becomes a node, name-only ones with an empty
// value, and document order is preserved throughout.
func (d *Decoder) DecodeConfig() (*Node, error) {
	sc, err := NewScanner(d.r, append(slices.Clone(d.opts), EmitEmpty(true))...)
	if err != nil {
		return nil, err
	}
	root := NewRoot()
	// The frontier holds the most recently created node per depth, the
	// root at index 0. Paths deepen by at most one segment per pair, so
	// truncating to the pair's depth always lands on a live parent.
	frontier := []*Node{root}
	for sc.Scan() {
		p := sc.Pair()
		depth := len(p.Path)
		if depth < len(frontier) {
			frontier = frontier[:depth]
		}
		child := newChild(frontier[depth-1], p.Path[depth-1], p.Value)
		frontier = append(frontier, child)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return root, nil
}
