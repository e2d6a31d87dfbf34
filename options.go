package zpl

import "fmt"

const (
	defaultEncoding  = "utf-8"
	defaultSeparator = ":"
)

type options struct {
	encoding  string
	separator string
	emitEmpty bool
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		encoding:  defaultEncoding,
		separator: defaultSeparator,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Option configures parsing or serialization behavior.
type Option func(*options) error

// Encoding returns an Option that sets the text encoding used to decode
// input lines, given by IANA name (e.g. "utf-8", "latin1"). The default
// is UTF-8.
func Encoding(name string) Option {
	return func(o *options) error {
		if name == "" {
			return fmt.Errorf("zpl: encoding name cannot be empty")
		}
		o.encoding = name
		return nil
	}
}

// Separator returns an Option that sets the string used to join path
// segments into flat keys. The default is ":".
func Separator(sep string) Option {
	return func(o *options) error {
		if sep == "" {
			return fmt.Errorf("zpl: separator cannot be empty")
		}
		o.separator = sep
		return nil
	}
}

// EmitEmpty returns an Option that makes a Scanner emit a pair with an
// empty value for every name-only property. By default name-only
// properties contribute to the hierarchy but produce no pair of their own.
func EmitEmpty(emit bool) Option {
	return func(o *options) error {
		o.emitEmpty = emit
		return nil
	}
}
