package zpl

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// Pair is a single property produced by a Scanner: the hierarchical path
// of names addressing it from the document root, and its untyped value.
type Pair struct {
	Path  []string
	Value string
}

// Scanner reads a ZPL document and produces one Pair per property, in
// document order. It carries no state beyond the property's place in the
// hierarchy, so arbitrarily long documents can be processed without
// buffering.
//
// The sequence is forward-only and single-pass. Scanning stops at the
// first structural error: an indent that is not a multiple of 4, or a
// line that cannot be decoded under the requested encoding.
type Scanner struct {
	s         *bufio.Scanner
	dec       *encoding.Decoder
	encName   string
	isUTF8    bool
	emitEmpty bool

	path      []string
	prevLevel int
	lineno    int

	pair Pair
	err  error
	done bool
}

// NewScanner returns a Scanner reading from r. It fails if an option is
// invalid or the requested encoding is not recognized.
func NewScanner(r io.Reader, opts ...Option) (*Scanner, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	enc, err := ianaindex.IANA.Encoding(o.encoding)
	if err != nil {
		return nil, &DecodeError{Line: -1, Encoding: o.encoding, Err: err}
	}
	if enc == nil {
		return nil, &DecodeError{Line: -1, Encoding: o.encoding, Err: errors.New("unsupported encoding")}
	}
	s := bufio.NewScanner(r)
	s.Split(scanTerminatedLines)
	name := strings.ToLower(o.encoding)
	return &Scanner{
		s:         s,
		dec:       enc.NewDecoder(),
		encName:   o.encoding,
		isUTF8:    enc == unicode.UTF8 || name == "utf-8" || name == "utf8",
		emitEmpty: o.emitEmpty,
		lineno:    -1,
	}, nil
}

// Scan advances to the next property. It returns false when the input is
// exhausted or a fatal error occurs; Err reports the error, if any.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	for s.s.Scan() {
		s.lineno++
		line, err := s.decode(s.s.Bytes())
		if err != nil {
			s.err = err
			s.done = true
			return false
		}
		emitted, err := s.advance(line)
		if err != nil {
			s.err = err
			s.done = true
			return false
		}
		if emitted {
			return true
		}
	}
	s.done = true
	s.err = s.s.Err()
	return false
}

// Pair returns the property produced by the last successful call to Scan.
// Its Path slice is owned by the caller and remains valid across
// subsequent calls.
func (s *Scanner) Pair() Pair { return s.pair }

// Err returns the first fatal error encountered by the Scanner.
func (s *Scanner) Err() error { return s.err }

func (s *Scanner) decode(raw []byte) (string, error) {
	if s.isUTF8 {
		if !utf8.Valid(raw) {
			return "", &DecodeError{Line: s.lineno, Encoding: s.encName, Err: errors.New("invalid byte sequence")}
		}
		return string(raw), nil
	}
	out, err := s.dec.Bytes(raw)
	if err != nil {
		return "", &DecodeError{Line: s.lineno, Encoding: s.encName, Err: err}
	}
	return string(out), nil
}

// advance runs one line through the indentation state machine. It returns
// true when the line produced a Pair.
func (s *Scanner) advance(line string) (bool, error) {
	body := strings.TrimLeft(line, " ")
	if strings.TrimSpace(body) == "" {
		return false, nil
	}
	spaces := len(line) - len(body)
	if spaces%4 != 0 {
		return false, &IndentError{Line: s.lineno, Text: line}
	}
	level := spaces / 4
	if strings.HasPrefix(body, "#") {
		// Comment lines leave the hierarchy untouched.
		return false, nil
	}

	// An outdent, or a sibling at the same level, discards the deeper
	// path segments before the line's own pattern is considered.
	if level <= s.prevLevel && level < len(s.path) {
		s.path = s.path[:level]
	}

	name, rest, ok := matchName(body)
	if !ok {
		// The body does not start with a property name. The grammar is
		// lax here: the line is skipped without touching parser state.
		return false, nil
	}
	after := strings.TrimLeft(rest, " \t")
	switch {
	case strings.HasPrefix(after, "="):
		value := parseValue(strings.TrimLeft(after[1:], " \t"))
		return s.push(level, name, value, true), nil
	case after == "":
		return s.push(level, name, "", s.emitEmpty), nil
	default:
		// Trailing junk after a bare name, skipped like any other
		// line that matches neither property pattern.
		return false, nil
	}
}

func (s *Scanner) push(level int, name, value string, produce bool) bool {
	s.path = append(s.path, name)
	s.prevLevel = level
	if !produce {
		return false
	}
	s.pair = Pair{Path: slices.Clone(s.path), Value: value}
	return true
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		strings.IndexByte("$-_@.&+/", c) >= 0
}

// matchName splits body into its longest leading run of name characters
// and the remainder.
func matchName(body string) (name, rest string, ok bool) {
	i := 0
	for i < len(body) && isNameChar(body[i]) {
		i++
	}
	if i == 0 {
		return "", "", false
	}
	return body[:i], body[i:], true
}

// parseValue extracts a property value from the text following '='. A
// value may be wrapped in double quotes, which keep an embedded '#'
// literal; an unquoted value ends at the first '#', which starts a
// discarded comment. A leading quote with no closing quote is not
// stripped: the value is taken literally, quote included.
func parseValue(text string) string {
	if strings.HasPrefix(text, `"`) {
		if j := strings.IndexByte(text[1:], '"'); j >= 0 {
			tail := strings.TrimLeft(text[2+j:], " \t")
			if tail == "" || strings.HasPrefix(tail, "#") {
				return text[1 : 1+j]
			}
		}
	}
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	return strings.TrimRight(text, " \t")
}

// scanTerminatedLines is a bufio.SplitFunc recognizing "\n", "\r" and
// "\r\n" as line terminators.
func scanTerminatedLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// A trailing '\r' at the buffer edge: request more input to
		// tell a bare carriage return from a "\r\n" sequence.
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
