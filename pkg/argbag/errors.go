// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argbag

import (
	"errors"
	"fmt"
)

// Sentinel errors for lexical failures. A *ParseError unwraps to one of them.
var (
	// ErrMalformedFlag is returned for a switch whose name has the wrong
	// length, e.g. "--s", "-long" or "-".
	ErrMalformedFlag = errors.New("malformed flag")

	// ErrMalformedOption is returned for a name=value switch whose name has
	// the wrong length, e.g. "--=value" or "-long=value".
	ErrMalformedOption = errors.New("malformed option")

	// ErrTooManyCommands is returned when a second @command is declared.
	ErrTooManyCommands = errors.New("too many commands")
)

// ParseError describes the raw argument that stopped tokenization.
type ParseError struct {
	// Kind is one of ErrMalformedFlag, ErrMalformedOption or ErrTooManyCommands.
	Kind error
	// Arg is the offending argument exactly as it was supplied.
	Arg string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrMalformedFlag:
		return fmt.Sprintf("'%s' is not a valid flag", e.Arg)
	case ErrMalformedOption:
		return fmt.Sprintf("'%s' is not a valid option", e.Arg)
	case ErrTooManyCommands:
		return fmt.Sprintf("'%s' declares a second command", e.Arg)
	}
	return fmt.Sprintf("invalid argument '%s'", e.Arg)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
