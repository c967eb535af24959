package main

// functions for reading configuration files

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/andybalholm/aoc2020/parse"
	"github.com/spf13/pflag"
)

// configLine parses a line of the form "key value" or "key = value".
// A value may be a Go-style quoted string, which may be followed by a
// comment.
var configLine = parse.Seq(
	parse.TakeWhile1("key", func(c rune) bool {
		return c == '-' || c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
	}),
	parse.Right(
		parse.Seq3(parse.Whitespace, parse.Opt(parse.MatchLiteral("=")), parse.Whitespace),
		parse.Either(parse.Left(quotedString, trailingComment), parse.Map(parse.Recognize(parse.ZeroOrMore(parse.AnyChar)), strings.TrimSpace)),
	),
)

// configReader leaves a '#' alone once a quote has been seen, since it may
// be part of a quoted value.
var trailingComment = parse.Opt(parse.Right(parse.Whitespace,
	parse.Recognize(parse.Seq(parse.MatchLiteral("#"), parse.ZeroOrMore(parse.AnyChar)))))

var quotedString = parse.MapErr(
	parse.Recognize(parse.Between(
		parse.MatchLiteral(`"`),
		parse.ZeroOrMore(parse.Either(
			parse.Recognize(parse.Seq(parse.MatchLiteral(`\`), parse.AnyChar)),
			parse.Recognize(parse.AnyChar.Pred(func(c rune) bool { return c != '"' && c != '\\' })),
		)),
		parse.MatchLiteral(`"`),
	)),
	strconv.Unquote,
)

// readConfigFile reads the specified configuration file.
// For each line of the form "key value" or "key = value", it sets the flag
// named key to value, unless that flag was given on the command line.
func readConfigFile(flags *pflag.FlagSet, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	defer f.Close()

	cr := newConfigReader(f)
	for {
		line, err := cr.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}

		kv, err := configLine.ParseAll(line)
		if err != nil {
			return fmt.Errorf("%s, line %d: %w", filename, cr.LineNo, err)
		}
		key, value := kv.First, kv.Second

		if flags.Lookup(key) == nil {
			return fmt.Errorf("%s, line %d: unknown setting %q", filename, cr.LineNo, key)
		}
		if flags.Changed(key) {
			continue
		}
		if err := flags.Set(key, value); err != nil {
			return fmt.Errorf("%s, line %d: could not set %s to %q: %w", filename, cr.LineNo, key, value, err)
		}
	}
}

// configReader is a wrapper for reading a configuration file a line at a time,
// discarding comments and excess whitespace.
type configReader struct {
	r      *bufio.Reader
	LineNo int
}

func newConfigReader(r io.Reader) *configReader {
	return &configReader{r: bufio.NewReader(r)}
}

func (cr *configReader) ReadLine() (line string, err error) {
	for {
		b, isPrefix, err := cr.r.ReadLine()
		if err != nil {
			return "", err
		}

		cr.LineNo++

		if isPrefix {
			c := make([]byte, len(b), len(b)*2)
			copy(c, b)
			for isPrefix && err == nil {
				b, isPrefix, err = cr.r.ReadLine()
				c = append(c, b...)
			}
			b = c
		}

		if sharp := bytes.IndexByte(b, '#'); sharp != -1 && !bytes.Contains(b[:sharp], []byte(`"`)) {
			b = b[:sharp]
		}
		b = bytes.TrimSpace(b)

		if len(b) > 0 {
			return string(b), nil
		}
	}
}
