package zpl

import "bytes"

// Parse reads the ZPL-encoded data into a nested Tree.
func Parse(data []byte, opts ...Option) (*Tree, error) {
	return NewDecoder(bytes.NewReader(data), opts...).Decode()
}

// ParseFlat reads the ZPL-encoded data into a flat map keyed by joined
// paths.
func ParseFlat(data []byte, opts ...Option) (map[string]string, error) {
	return NewDecoder(bytes.NewReader(data), opts...).DecodeFlat()
}

// ParseConfig reads the ZPL-encoded data into a hierarchy of Nodes and
// returns the root.
func ParseConfig(data []byte, opts ...Option) (*Node, error) {
	return NewDecoder(bytes.NewReader(data), opts...).DecodeConfig()
}

// Marshal returns the canonical ZPL encoding of t.
func Marshal(t *Tree, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, opts...)
	if err := e.Encode(t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
