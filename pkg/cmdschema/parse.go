// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdschema

import (
	"github.com/yeetrun/bindargs/pkg/argbag"
	"github.com/yeetrun/bindargs/pkg/argtree"
)

// Invocation is a command line that matched a Command definition.
type Invocation struct {
	// Program is the first element of the parsed arguments.
	Program string
	// Args is the tree with every name rewritten to its canonical form.
	Args *argtree.Node
	// Raw is the tree as typed, aliases included.
	Raw *argtree.Node
	// Trailing holds the arguments that followed "--".
	Trailing []string

	def *Command
}

// Leaf returns the deepest node of the canonical tree.
func (inv *Invocation) Leaf() *argtree.Node { return inv.Args.Leaf() }

// Path returns the canonical names from the program down to the leaf.
func (inv *Invocation) Path() []string { return inv.Args.Path() }

// Command returns the definition of the leaf subcommand.
func (inv *Invocation) Command() *Command {
	cmd, _ := inv.def.Find(inv.Path())
	return cmd
}

// Parse is ParseOptions with the default grammar.
func (c *Command) Parse(args []string) (*Invocation, error) {
	return c.ParseOptions(args, argbag.Options{})
}

// ParseOptions tokenizes args, checks for a help request, validates the tree
// against c and resolves aliases.
//
// A help flag at any level yields a *HelpRequest error before validation
// runs. Tokenizer errors are *argbag.ParseError and validation errors match
// ErrInvalidArguments.
func (c *Command) ParseOptions(args []string, opts argbag.Options) (*Invocation, error) {
	raw, trailing, err := argtree.Parse(args, opts)
	if err != nil {
		return nil, err
	}
	if path, ok := argtree.HelpPath(raw); ok {
		cmd, resolved := c.Find(path)
		return nil, &HelpRequest{Path: resolved, Command: cmd}
	}
	if err := Validate(c, raw); err != nil {
		return nil, err
	}
	canon := raw.Clone()
	ResolveAliases(c, canon)
	return &Invocation{
		Program:  raw.Name,
		Args:     canon,
		Raw:      raw,
		Trailing: trailing,
		def:      c,
	}, nil
}
