// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argbag

import (
	"fmt"
	"unicode/utf8"
)

// Kind identifies which variant a Token holds.
type Kind uint8

const (
	// KindEmpty marks a slot whose token has already been taken.
	KindEmpty Kind = iota
	// KindFlag is a switch without a value, e.g. --verbose or -v.
	KindFlag
	// KindOption is a switch carrying a value, e.g. --level=debug or -l=debug.
	KindOption
	// KindOperand is a positional value.
	KindOperand
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindFlag:
		return "flag"
	case KindOption:
		return "option"
	case KindOperand:
		return "operand"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Token is a single lexed command line element.
//
// Name is set for flags and options, Value for options and operands.
// Position is the zero-based operand index and is only meaningful for
// operands.
type Token struct {
	Kind     Kind
	Name     string
	Value    string
	Position int
}

// IsEmpty reports whether the token is a tombstone.
func (t Token) IsEmpty() bool {
	return t.Kind == KindEmpty
}

// String renders the token back into command line form. One-character names
// use a single dash so that the result lexes to the same token again.
func (t Token) String() string {
	switch t.Kind {
	case KindFlag:
		return dashes(t.Name) + t.Name
	case KindOption:
		return dashes(t.Name) + t.Name + "=" + t.Value
	case KindOperand:
		return t.Value
	}
	return ""
}

func dashes(name string) string {
	if utf8.RuneCountInString(name) == 1 {
		return "-"
	}
	return "--"
}
