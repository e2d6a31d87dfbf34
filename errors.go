package zpl

import "fmt"

// An IndentError reports a line whose leading-space count is not a
// multiple of 4. Indentation is the sole hierarchy signal in ZPL, so the
// parse cannot continue past one of these.
type IndentError struct {
	Line int    // 0-based line number
	Text string // raw line content, terminators stripped
}

func (e *IndentError) Error() string {
	return fmt.Sprintf("zpl: illegal indent on line %d, must be a multiple of 4: %q", e.Line, e.Text)
}

// A DecodeError reports a line whose bytes could not be decoded under the
// requested encoding, or an encoding name that is not recognized.
type DecodeError struct {
	Line     int // 0-based line number, -1 if not tied to a line
	Encoding string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Line < 0 {
		return fmt.Sprintf("zpl: encoding %q: %v", e.Encoding, e.Err)
	}
	return fmt.Sprintf("zpl: cannot decode line %d as %q: %v", e.Line, e.Encoding, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// A QueryError reports a Get call with more query filters than path
// segments. It is local to the call and leaves the tree untouched.
type QueryError struct {
	PathLen  int
	QueryLen int
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("zpl: too many query filters for path: %d filters, %d segments", e.QueryLen, e.PathLen)
}

// A KeyError reports a Child lookup that matched no immediate child. It
// carries the attempted key.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("zpl: no child matching key %q", e.Key)
}
