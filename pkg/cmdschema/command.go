// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmdschema describes which flags, options and subcommands a program
// accepts, checks parsed command lines against that description and rewrites
// aliases to canonical names.
//
// Definitions are built once, usually at init time, and are read-only
// afterwards:
//
//	app := cmdschema.NewCommand("git", "the stupid content tracker").
//		AddFlag(cmdschema.NewFlag("verbose", "be loud").Alias("v")).
//		AddCommand(cmdschema.NewCommand("remote", "manage remotes").
//			AddProp(cmdschema.NewProp("level", "detail level").Alias("l").Required()))
//
//	inv, err := app.Parse(os.Args)
package cmdschema

import "slices"

// Flag defines a switch that takes no value.
type Flag struct {
	names []string
	help  string
}

// NewFlag returns a flag definition with a canonical name.
func NewFlag(name, help string) *Flag {
	return &Flag{names: []string{name}, help: help}
}

// Alias adds an alternative name for f.
func (f *Flag) Alias(name string) *Flag {
	f.names = append(f.names, name)
	return f
}

// Name returns the canonical name of f.
func (f *Flag) Name() string { return f.names[0] }

// Names returns the canonical name followed by every alias.
func (f *Flag) Names() []string { return slices.Clone(f.names) }

// Help returns the one-line description of f.
func (f *Flag) Help() string { return f.help }

func (f *Flag) matches(name string) bool { return slices.Contains(f.names, name) }

// Prop defines an option that carries a value.
type Prop struct {
	names    []string
	help     string
	required bool
}

// NewProp returns an optional prop definition with a canonical name.
func NewProp(name, help string) *Prop {
	return &Prop{names: []string{name}, help: help}
}

// Alias adds an alternative name for p.
func (p *Prop) Alias(name string) *Prop {
	p.names = append(p.names, name)
	return p
}

// Required marks p as mandatory at its command level.
func (p *Prop) Required() *Prop {
	p.required = true
	return p
}

// Name returns the canonical name of p.
func (p *Prop) Name() string { return p.names[0] }

// Names returns the canonical name followed by every alias.
func (p *Prop) Names() []string { return slices.Clone(p.names) }

// Help returns the one-line description of p.
func (p *Prop) Help() string { return p.help }

// IsRequired reports whether p must be given.
func (p *Prop) IsRequired() bool { return p.required }

func (p *Prop) matches(name string) bool { return slices.Contains(p.names, name) }

// Command defines a program or one of its subcommands.
//
// Aliases of the root command are accepted but never consulted, since the
// root is matched by position rather than by name.
type Command struct {
	names    []string
	help     string
	flags    []*Flag
	props    []*Prop
	commands []*Command
}

// NewCommand returns a command definition with no parameters.
func NewCommand(name, help string) *Command {
	return &Command{names: []string{name}, help: help}
}

// Alias adds an alternative name for c.
func (c *Command) Alias(name string) *Command {
	c.names = append(c.names, name)
	return c
}

// AddFlag appends a flag definition to c.
func (c *Command) AddFlag(f *Flag) *Command {
	c.flags = append(c.flags, f)
	return c
}

// AddProp appends a prop definition to c.
func (c *Command) AddProp(p *Prop) *Command {
	c.props = append(c.props, p)
	return c
}

// AddCommand appends a subcommand definition to c.
func (c *Command) AddCommand(sub *Command) *Command {
	c.commands = append(c.commands, sub)
	return c
}

// Name returns the canonical name of c.
func (c *Command) Name() string { return c.names[0] }

// Names returns the canonical name followed by every alias.
func (c *Command) Names() []string { return slices.Clone(c.names) }

// Help returns the description of c.
func (c *Command) Help() string { return c.help }

// Flags returns the flag definitions of c in the order they were added.
func (c *Command) Flags() []*Flag { return slices.Clone(c.flags) }

// Props returns the prop definitions of c in the order they were added.
func (c *Command) Props() []*Prop { return slices.Clone(c.props) }

// Commands returns the subcommand definitions of c in the order they were
// added.
func (c *Command) Commands() []*Command { return slices.Clone(c.commands) }

func (c *Command) matches(name string) bool { return slices.Contains(c.names, name) }

// LookupFlag returns the first flag of c known by name, canonical or alias.
func (c *Command) LookupFlag(name string) *Flag {
	for _, f := range c.flags {
		if f.matches(name) {
			return f
		}
	}
	return nil
}

// LookupProp returns the first prop of c known by name, canonical or alias.
func (c *Command) LookupProp(name string) *Prop {
	for _, p := range c.props {
		if p.matches(name) {
			return p
		}
	}
	return nil
}

// LookupCommand returns the first subcommand of c known by name, canonical
// or alias.
func (c *Command) LookupCommand(name string) *Command {
	for _, sub := range c.commands {
		if sub.matches(name) {
			return sub
		}
	}
	return nil
}

// Find walks path below c and returns the deepest definition reached along
// with its canonical path. path[0] stands for c itself and is not looked up.
// Walking stops at the first name c does not know.
func (c *Command) Find(path []string) (*Command, []string) {
	cur := c
	resolved := []string{c.Name()}
	if len(path) == 0 {
		return cur, resolved
	}
	for _, name := range path[1:] {
		next := cur.LookupCommand(name)
		if next == nil {
			break
		}
		cur = next
		resolved = append(resolved, cur.Name())
	}
	return cur, resolved
}
