package zpl

import (
	"bytes"
	"io"
	"strings"
)

const indentUnit = "    "

// Encoder writes canonical ZPL text to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the ZPL encoding of t to the stream: one property per
// line, 4-space indent per depth, "name = value" for scalars and a bare
// name for subtrees and empty values. Values containing '#' are wrapped
// in double quotes so they survive a round trip. The output ends with
// exactly one newline; an empty tree encodes to nothing.
func (e *Encoder) Encode(t *Tree) error {
	if _, err := newOptions(e.opts); err != nil {
		return err
	}
	var buf bytes.Buffer
	appendTree(&buf, t, 0)
	_, err := e.w.Write(buf.Bytes())
	return err
}

func appendTree(buf *bytes.Buffer, t *Tree, depth int) {
	for e := t.m.Front(); e != nil; e = e.Next() {
		for i := 0; i < depth; i++ {
			buf.WriteString(indentUnit)
		}
		buf.WriteString(e.Key)
		if e.Value.IsTree() {
			buf.WriteByte('\n')
			appendTree(buf, e.Value.Tree(), depth+1)
			continue
		}
		if s, _ := e.Value.Scalar(); s != "" {
			buf.WriteString(" = ")
			buf.WriteString(quoteValue(s))
		}
		buf.WriteByte('\n')
	}
}

// quoteValue re-quotes values whose unquoted form would be cut short by
// the comment rule.
func quoteValue(s string) string {
	if strings.Contains(s, "#") {
		return `"` + s + `"`
	}
	return s
}
