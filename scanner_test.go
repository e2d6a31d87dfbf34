package zpl_test

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	zpl "github.com/zplconfig/go-zpl"
	"github.com/stretchr/testify/require"
)

func collectPairs(t *testing.T, r io.Reader, opts ...zpl.Option) []zpl.Pair {
	t.Helper()
	sc, err := zpl.NewScanner(r, opts...)
	require.NoError(t, err)
	var pairs []zpl.Pair
	for sc.Scan() {
		pairs = append(pairs, sc.Pair())
	}
	require.NoError(t, sc.Err())
	return pairs
}

func TestScanner_Pairs(t *testing.T) {
	input := `context
    iothreads = 1
    verbose = 1      #   Ask for a trace

main
    type = zmq_queue
    frontend
        option
            hwm = 1000
            swap = 25000000
            subscribe = "#2"
        bind = tcp://eth0:5555
    backend
        bind = tcp://eth0:5556
`
	expected := []zpl.Pair{
		{Path: []string{"context", "iothreads"}, Value: "1"},
		{Path: []string{"context", "verbose"}, Value: "1"},
		{Path: []string{"main", "type"}, Value: "zmq_queue"},
		{Path: []string{"main", "frontend", "option", "hwm"}, Value: "1000"},
		{Path: []string{"main", "frontend", "option", "swap"}, Value: "25000000"},
		{Path: []string{"main", "frontend", "option", "subscribe"}, Value: "#2"},
		{Path: []string{"main", "frontend", "bind"}, Value: "tcp://eth0:5555"},
		{Path: []string{"main", "backend", "bind"}, Value: "tcp://eth0:5556"},
	}

	require.Equal(t, expected, collectPairs(t, strings.NewReader(input)))
}

func TestScanner_EmitEmpty(t *testing.T) {
	input := "thing = foo\n    bar = baz\nthing\n    bar = bar\n"

	t.Run("default skips name-only properties", func(t *testing.T) {
		expected := []zpl.Pair{
			{Path: []string{"thing"}, Value: "foo"},
			{Path: []string{"thing", "bar"}, Value: "baz"},
			{Path: []string{"thing", "bar"}, Value: "bar"},
		}
		require.Equal(t, expected, collectPairs(t, strings.NewReader(input)))
	})

	t.Run("EmitEmpty yields them with empty values", func(t *testing.T) {
		expected := []zpl.Pair{
			{Path: []string{"thing"}, Value: "foo"},
			{Path: []string{"thing", "bar"}, Value: "baz"},
			{Path: []string{"thing"}, Value: ""},
			{Path: []string{"thing", "bar"}, Value: "bar"},
		}
		require.Equal(t, expected, collectPairs(t, strings.NewReader(input), zpl.EmitEmpty(true)))
	})
}

func TestScanner_Values(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		value string
	}{
		{"plain", "prop = value", "value"},
		{"no spaces around equals", "prop=value", "value"},
		{"value with internal spaces", "prop = front door", "front door"},
		{"quoted", `prop = "quoted value"`, "quoted value"},
		{"quoted hash", `prop = "#2"`, "#2"},
		{"quoted with trailing comment", `prop = "a # b" # discarded`, "a # b"},
		{"unquoted with trailing comment", "prop = 1      #   Ask for a trace", "1"},
		{"comment without separating space", "prop = value#comment", "value"},
		{"unterminated quote kept literally", `prop = "unterminated`, `"unterminated`},
		{"empty value", "prop =", ""},
		{"comment only value", "prop = # nothing", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs := collectPairs(t, strings.NewReader(tt.line+"\n"))
			require.Len(t, pairs, 1)
			require.Equal(t, []string{"prop"}, pairs[0].Path)
			require.Equal(t, tt.value, pairs[0].Value)
		})
	}
}

func TestScanner_SkipsMalformedLines(t *testing.T) {
	// Lines matching neither property pattern are skipped without
	// touching the hierarchy state.
	input := "a = 1\n!!! not a property\n= orphan value\nb = 2\n"
	expected := []zpl.Pair{
		{Path: []string{"a"}, Value: "1"},
		{Path: []string{"b"}, Value: "2"},
	}
	require.Equal(t, expected, collectPairs(t, strings.NewReader(input)))
}

func TestScanner_IndentValidation(t *testing.T) {
	t.Run("multiples of four accepted", func(t *testing.T) {
		input := "a\n    b\n        c\n            d = 1\n"
		pairs := collectPairs(t, strings.NewReader(input))
		require.Equal(t, []zpl.Pair{{Path: []string{"a", "b", "c", "d"}, Value: "1"}}, pairs)
	})

	for _, spaces := range []int{2, 6} {
		t.Run(fmt.Sprintf("%d spaces rejected", spaces), func(t *testing.T) {
			bad := strings.Repeat(" ", spaces) + "b = 1"
			sc, err := zpl.NewScanner(strings.NewReader("a\n" + bad + "\n"))
			require.NoError(t, err)
			for sc.Scan() {
			}
			var indentErr *zpl.IndentError
			require.ErrorAs(t, sc.Err(), &indentErr)
			require.Equal(t, 1, indentErr.Line)
			require.Equal(t, bad, indentErr.Text)
		})
	}

	t.Run("comment lines are validated too", func(t *testing.T) {
		sc, err := zpl.NewScanner(strings.NewReader("  # misaligned comment\n"))
		require.NoError(t, err)
		require.False(t, sc.Scan())
		var indentErr *zpl.IndentError
		require.ErrorAs(t, sc.Err(), &indentErr)
		require.Equal(t, 0, indentErr.Line)
	})

	t.Run("blank lines are exempt", func(t *testing.T) {
		pairs := collectPairs(t, strings.NewReader("a = 1\n  \nb = 2\n"))
		require.Len(t, pairs, 2)
	})
}

func TestScanner_LineTerminators(t *testing.T) {
	input := "a = 1\r\nb = 2\rc = 3\n"
	expected := []zpl.Pair{
		{Path: []string{"a"}, Value: "1"},
		{Path: []string{"b"}, Value: "2"},
		{Path: []string{"c"}, Value: "3"},
	}
	require.Equal(t, expected, collectPairs(t, strings.NewReader(input)))
}

func TestScanner_Encoding(t *testing.T) {
	t.Run("latin1", func(t *testing.T) {
		raw := []byte("drink = caf\xe9\n")
		pairs := collectPairs(t, bytes.NewReader(raw), zpl.Encoding("latin1"))
		require.Equal(t, []zpl.Pair{{Path: []string{"drink"}, Value: "café"}}, pairs)
	})

	t.Run("invalid utf-8 is fatal", func(t *testing.T) {
		sc, err := zpl.NewScanner(bytes.NewReader([]byte("drink = caf\xe9\n")))
		require.NoError(t, err)
		require.False(t, sc.Scan())
		var decErr *zpl.DecodeError
		require.ErrorAs(t, sc.Err(), &decErr)
		require.Equal(t, 0, decErr.Line)
		require.Equal(t, "utf-8", decErr.Encoding)
	})

	t.Run("unknown encoding name", func(t *testing.T) {
		_, err := zpl.NewScanner(strings.NewReader(""), zpl.Encoding("no-such-charset"))
		var decErr *zpl.DecodeError
		require.ErrorAs(t, err, &decErr)
	})
}
