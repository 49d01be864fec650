// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdschema

import (
	"fmt"

	"github.com/yeetrun/bindargs/pkg/argtree"
	"tailscale.com/util/set"
)

// Validate checks node, and every node below it, against def.
//
// At each level the checks run in this order: unknown flags, unknown props,
// missing required props, then an unknown subcommand. Flags and props are
// visited in lexical order and required props in definition order, so the
// error for a given command line is stable. The first failure is returned
// and deeper levels are not examined.
//
// The name of node itself is not compared with def.
func Validate(def *Command, node *argtree.Node) error {
	for def, node := def, node; node != nil; node = node.Sub {
		for _, name := range node.SortedFlags() {
			if def.LookupFlag(name) == nil {
				return &UnrecognizedArgumentError{Name: name, Kind: KindFlag}
			}
		}

		var seen set.Set[*Prop]
		for _, name := range node.SortedProps() {
			p := def.LookupProp(name)
			if p == nil {
				return &UnrecognizedArgumentError{Name: name, Kind: KindProp}
			}
			if seen == nil {
				seen = make(set.Set[*Prop])
			}
			seen.Add(p)
		}
		for _, p := range def.props {
			if p.required && !seen.Contains(p) {
				return &MissingRequiredOptionError{Name: p.Name()}
			}
		}

		if node.Sub == nil {
			return nil
		}
		sub := def.LookupCommand(node.Sub.Name)
		if sub == nil {
			return &UnrecognizedArgumentError{Name: node.Sub.Name, Kind: KindCommand}
		}
		def = sub
	}
	return nil
}

// ResolveAliases rewrites every flag, prop and subcommand name in node to the
// canonical name from def, in place.
//
// When a prop was given under more than one of its names, the value given
// under the earliest name in the definition wins, so the canonical spelling
// beats any alias.
//
// node must have passed Validate against def; ResolveAliases panics on a name
// def does not know.
func ResolveAliases(def *Command, node *argtree.Node) {
	for def, node := def, node; node != nil; node = node.Sub {
		if len(node.Flags) > 0 {
			flags := make(set.Set[string], len(node.Flags))
			for name := range node.Flags {
				f := def.LookupFlag(name)
				if f == nil {
					panic(fmt.Sprintf("cmdschema: ResolveAliases on unvalidated tree: unknown flag %q", name))
				}
				flags.Add(f.Name())
			}
			node.Flags = flags
		}

		if len(node.Props) > 0 {
			for name := range node.Props {
				if def.LookupProp(name) == nil {
					panic(fmt.Sprintf("cmdschema: ResolveAliases on unvalidated tree: unknown option %q", name))
				}
			}
			props := make(map[string]string, len(node.Props))
			for _, p := range def.props {
				for _, name := range p.names {
					if v, ok := node.Props[name]; ok {
						props[p.Name()] = v
						break
					}
				}
			}
			node.Props = props
		}

		if node.Sub == nil {
			return
		}
		sub := def.LookupCommand(node.Sub.Name)
		if sub == nil {
			panic(fmt.Sprintf("cmdschema: ResolveAliases on unvalidated tree: unknown command %q", node.Sub.Name))
		}
		node.Sub.Name = sub.Name()
		def = sub
	}
}
