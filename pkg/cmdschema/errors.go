// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdschema

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArguments matches every error returned by Validate.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrHelp matches a *HelpRequest returned by Parse.
	ErrHelp = errors.New("help requested")
)

// ArgumentKind names the category of a command line argument.
type ArgumentKind uint8

const (
	KindCommand ArgumentKind = iota // a subcommand name
	KindFlag                        // a bare switch
	KindProp                        // a name=value option
)

func (k ArgumentKind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindFlag:
		return "flag"
	case KindProp:
		return "option"
	}
	return fmt.Sprintf("ArgumentKind(%d)", uint8(k))
}

// UnrecognizedArgumentError reports a flag, option or subcommand the
// definition does not know.
type UnrecognizedArgumentError struct {
	Name string
	Kind ArgumentKind
}

func (e *UnrecognizedArgumentError) Error() string {
	return fmt.Sprintf("%s is not a valid %s", e.Name, e.Kind)
}

func (e *UnrecognizedArgumentError) Is(target error) bool {
	return target == ErrInvalidArguments
}

// MissingRequiredOptionError reports a required prop that was not given.
// Name is the canonical name.
type MissingRequiredOptionError struct {
	Name string
}

func (e *MissingRequiredOptionError) Error() string {
	return fmt.Sprintf("missing required option '%s'", e.Name)
}

func (e *MissingRequiredOptionError) Is(target error) bool {
	return target == ErrInvalidArguments
}

// HelpRequest is returned by Parse when a help flag is present at any level.
// It is checked before validation, so a command line with a missing required
// option can still ask for help.
type HelpRequest struct {
	// Path is the canonical path from the root to Command.
	Path []string
	// Command is the deepest definition reached by the path the user typed.
	Command *Command
}

func (h *HelpRequest) Error() string {
	return "help requested for " + strings.Join(h.Path, " ")
}

func (h *HelpRequest) Is(target error) bool {
	return target == ErrHelp
}
