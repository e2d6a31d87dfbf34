/*
Package zpl parses and serializes ZPL, the ZeroMQ Property Language.

ZPL is an ASCII text format that uses whitespace - line endings and
indentation - for framing and hierarchy. A ZPL document is a series of
properties encoded as name/value pairs, one per line, where the name may be
structured and the value is an untyped string:

	context
	    iothreads = 1
	    verbose = 1      # Ask for a trace

	main
	    type = zmq_queue
	    frontend
	        option
	            hwm = 1000
	            subscribe = "#2"
	        bind = tcp://eth0:5555

Format rules, per https://rfc.zeromq.org/spec/4/:

  - Whitespace is significant only before property names and inside values.
  - Text starting with '#' is discarded as a comment.
  - Values are untyped strings which the application may interpret in any
    way it wishes.
  - An entire value can be enclosed in double quotes, which do not form part
    of the value. There is no escaping mechanism inside quoted values, and a
    value that starts with a quote but does not end in a matching quote is
    treated as unquoted.
  - Hierarchy is signaled by indentation: a child is indented exactly 4
    spaces more than its parent.

The package offers three views of a document, from lowest-level to richest.

1. Streaming

Scanner yields one (path, value) pair per property in document order,
without materializing the document. It follows the bufio.Scanner idiom:

	sc, err := zpl.NewScanner(r)
	if err != nil {
		// handle error
	}
	for sc.Scan() {
		p := sc.Pair()
		fmt.Println(strings.Join(p.Path, ":"), "=", p.Value)
	}
	if err := sc.Err(); err != nil {
		// handle error
	}

2. Trees

Parse builds an insertion-ordered tree of scalars and subtrees, and ParseFlat
builds a flat map keyed by separator-joined paths. Marshal performs the
inverse transform, emitting canonical ZPL text:

	tree, err := zpl.Parse(data)
	if err != nil {
		// handle error
	}
	out, err := zpl.Marshal(tree)

3. Queryable configuration

ParseConfig builds a hierarchy of Nodes that preserves repeated sibling
names and supports value-filtered path queries:

	cfg, err := zpl.ParseConfig(data)
	if err != nil {
		// handle error
	}
	// The "bar" child of the "thing" node whose value is "flu".
	n, err := cfg.Get("thing:bar", zpl.Is("flu"), zpl.Any())

Input text is decoded using a caller-specified encoding (default UTF-8),
selected by IANA name via the Encoding option.
*/
package zpl
