// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argbag

import (
	"strings"
	"unicode/utf8"

	"tailscale.com/types/logger"
)

const (
	endOfOptions  = "--"
	commandMarker = "@"
)

// Grammar selects how subcommands are spelled on the command line.
type Grammar uint8

const (
	// GrammarNested treats operands as operands. Tree builders turn each
	// operand into a nested subcommand name (e.g. "git remote add").
	GrammarNested Grammar = iota

	// GrammarMarker recognizes a single "@name" subcommand declaration in the
	// first position after the program name (e.g. "tool @sync --dry-run").
	GrammarMarker
)

func (g Grammar) String() string {
	if g == GrammarMarker {
		return "marker"
	}
	return "nested"
}

// ParseGrammar parses "nested" or "marker". The empty string is GrammarNested.
func ParseGrammar(s string) (Grammar, bool) {
	switch strings.ToLower(s) {
	case "", "nested":
		return GrammarNested, true
	case "marker":
		return GrammarMarker, true
	}
	return GrammarNested, false
}

// Options controls tokenization.
type Options struct {
	Grammar Grammar

	// Logf, if non-nil, receives a line for every emitted token.
	Logf logger.Logf
}

// Parse tokenizes arguments in the shape os.Args has: the first element is
// the program name. It is equivalent to ParseOptions with zero Options.
func Parse(args []string) (*Bag, error) {
	return ParseOptions(args, Options{})
}

// ParseOptions tokenizes args into a Bag.
//
// The program name is taken from args[0] unconditionally (empty if args is
// empty). Blank elements are skipped. Everything after a literal "--" is kept
// verbatim in the ignored tail, except empty strings, which are dropped. No
// Bag is returned on error.
func ParseOptions(args []string, opts Options) (*Bag, error) {
	logf := opts.Logf
	if logf == nil {
		logf = logger.Discard
	}

	b := &Bag{grammar: opts.Grammar}
	if len(args) == 0 {
		return b, nil
	}
	b.ProgramName = args[0]

	var (
		operands int
		seen     int // non-blank elements before the current one
		ignoring bool
	)
	for _, arg := range args[1:] {
		if ignoring {
			if arg != "" {
				b.ignored = append(b.ignored, arg)
			}
			continue
		}
		if strings.TrimSpace(arg) == "" {
			continue
		}
		first := seen == 0
		seen++

		if arg == endOfOptions {
			logf("argbag: end of options")
			ignoring = true
			continue
		}

		if opts.Grammar == GrammarMarker && strings.HasPrefix(arg, commandMarker) && len(arg) > len(commandMarker) {
			if b.hasCommand {
				return nil, &ParseError{Kind: ErrTooManyCommands, Arg: arg}
			}
			if first {
				b.command = strings.TrimPrefix(arg, commandMarker)
				b.hasCommand = true
				logf("argbag: command %q", b.command)
				continue
			}
		}

		tok, err := lex(arg, operands)
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindOperand {
			operands++
		}
		logf("argbag: %v %q", tok.Kind, tok.String())
		b.tokens = append(b.tokens, tok)
	}
	return b, nil
}

// lex classifies a single non-blank argument that is neither "--" nor a
// command declaration.
func lex(arg string, position int) (Token, error) {
	var (
		body    string
		isShort bool
	)
	switch {
	case strings.HasPrefix(arg, "--"):
		body = arg[2:]
	case strings.HasPrefix(arg, "-"):
		body = arg[1:]
		isShort = true
	default:
		return Token{Kind: KindOperand, Value: arg, Position: position}, nil
	}

	validName := func(name string) bool {
		n := utf8.RuneCountInString(name)
		if isShort {
			return n == 1
		}
		return n >= 2
	}

	if name, value, ok := strings.Cut(body, "="); ok {
		if !validName(name) {
			return Token{}, &ParseError{Kind: ErrMalformedOption, Arg: arg}
		}
		return Token{Kind: KindOption, Name: name, Value: value}, nil
	}
	if !validName(body) {
		return Token{}, &ParseError{Kind: ErrMalformedFlag, Arg: arg}
	}
	return Token{Kind: KindFlag, Name: body}, nil
}
