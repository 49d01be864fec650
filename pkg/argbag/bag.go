// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argbag

// Bag holds the tokens of one command line and hands them out at most once.
//
// Every Take method scans the tokens in their original order and acts on the
// first match. A taken token leaves a tombstone behind, so operand positions
// recorded at parse time stay valid for the life of the Bag.
//
// A Bag is not safe for concurrent use.
type Bag struct {
	// ProgramName is the first element of the parsed arguments.
	ProgramName string

	tokens     []Token
	ignored    []string
	command    string
	hasCommand bool
	grammar    Grammar
}

// TakeFlag removes the first flag called name and reports whether it existed.
//
// Only bare switches match; "--name=value" is an option and is left alone.
func (b *Bag) TakeFlag(name string) bool {
	for i, t := range b.tokens {
		if t.Kind == KindFlag && t.Name == name {
			b.tokens[i] = Token{}
			return true
		}
	}
	return false
}

// TakeOption removes the first option called name and returns its value.
//
// Both "--name=value" and "--name value" are accepted. The second form lexes
// as a flag followed by an operand, so which reading wins depends on the call
// order: if TakeFlag(name) ran first the flag is already gone and the operand
// stays available on its own. A matching flag that is not immediately
// followed by an operand is treated as a flag: nothing is removed and ok is
// false.
func (b *Bag) TakeOption(name string) (value string, ok bool) {
	for i, t := range b.tokens {
		if t.Name != name {
			continue
		}
		switch t.Kind {
		case KindOption:
			b.tokens[i] = Token{}
			return t.Value, true
		case KindFlag:
			if i+1 >= len(b.tokens) || b.tokens[i+1].Kind != KindOperand {
				return "", false
			}
			v := b.tokens[i+1].Value
			b.tokens[i] = Token{}
			b.tokens[i+1] = Token{}
			return v, true
		}
	}
	return "", false
}

// TakeOperand removes the operand that was lexed at position pos. Taking an
// operand never renumbers the others.
func (b *Bag) TakeOperand(pos int) (string, bool) {
	for i, t := range b.tokens {
		if t.Kind == KindOperand && t.Position == pos {
			b.tokens[i] = Token{}
			return t.Value, true
		}
	}
	return "", false
}

// TakeNextOperand removes the first operand still in the bag.
func (b *Bag) TakeNextOperand() (string, bool) {
	for i, t := range b.tokens {
		if t.Kind == KindOperand {
			b.tokens[i] = Token{}
			return t.Value, true
		}
	}
	return "", false
}

// TakeRemaining removes every token still in the bag and returns them in
// command line form, in their original order. Arguments after "--" are not
// included; see TakeIgnored.
func (b *Bag) TakeRemaining() []string {
	var out []string
	for _, t := range b.TakeTokens() {
		out = append(out, t.String())
	}
	return out
}

// TakeTokens removes every token still in the bag and returns them in their
// original order.
func (b *Bag) TakeTokens() []Token {
	var out []Token
	for i, t := range b.tokens {
		if t.IsEmpty() {
			continue
		}
		out = append(out, t)
		b.tokens[i] = Token{}
	}
	return out
}

// TakeIgnored returns the arguments that followed the end-of-options marker.
// Subsequent calls return nil.
func (b *Bag) TakeIgnored() []string {
	out := b.ignored
	b.ignored = nil
	return out
}

// IsEmpty reports whether every flag, option and operand has been taken.
// The ignored tail is not counted.
func (b *Bag) IsEmpty() bool {
	return b.Len() == 0
}

// Len returns the number of tokens that have not been taken.
func (b *Bag) Len() int {
	n := 0
	for _, t := range b.tokens {
		if !t.IsEmpty() {
			n++
		}
	}
	return n
}

// Tokens returns a copy of the tokens that have not been taken.
func (b *Bag) Tokens() []Token {
	var out []Token
	for _, t := range b.tokens {
		if !t.IsEmpty() {
			out = append(out, t)
		}
	}
	return out
}

// Ignored returns a copy of the end-of-options tail without draining it.
func (b *Bag) Ignored() []string {
	return append([]string(nil), b.ignored...)
}

// Command returns the subcommand declared with "@name", if any.
func (b *Bag) Command() (string, bool) {
	return b.command, b.hasCommand
}

// Grammar returns the grammar the bag was parsed with.
func (b *Bag) Grammar() Grammar {
	return b.grammar
}
