// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argtree groups a token stream into one node per subcommand level.
//
// Given "git --verbose remote --level=3 add origin", the tree is
//
//	git {flags: verbose}
//	└── remote {props: level=3}
//	    └── add
//	        └── origin
//
// Each node owns at most one child, so the tree is a chain. Schema-aware
// checks live in package cmdschema; argtree only builds and walks.
package argtree

import (
	"maps"
	"slices"

	"tailscale.com/util/mak"
	"tailscale.com/util/set"
)

//go:generate go run tailscale.com/cmd/cloner -type=Node --copyright=false

// Node is one level of a parsed command line.
type Node struct {
	// Name is the program name at the root and the subcommand name below it.
	Name string
	// Flags holds the names of the switches given at this level.
	Flags set.Set[string]
	// Props maps option names to their values. A repeated option keeps the
	// last value.
	Props map[string]string
	// Args holds operands that did not open a subcommand (marker grammar).
	Args []string
	// Sub is the next level, if any.
	Sub *Node
}

// AddFlag records a flag on n.
func (n *Node) AddFlag(name string) {
	mak.Set(&n.Flags, name, struct{}{})
}

// SetProp records an option on n.
func (n *Node) SetProp(name, value string) {
	mak.Set(&n.Props, name, value)
}

// HasFlag reports whether n carries the named flag.
func (n *Node) HasFlag(name string) bool {
	return n.Flags.Contains(name)
}

// Prop returns the value of the named option at n.
func (n *Node) Prop(name string) (string, bool) {
	v, ok := n.Props[name]
	return v, ok
}

// SortedFlags returns the flag names of n in lexical order.
func (n *Node) SortedFlags() []string {
	return slices.Sorted(maps.Keys(n.Flags))
}

// SortedProps returns the option names of n in lexical order.
func (n *Node) SortedProps() []string {
	return slices.Sorted(maps.Keys(n.Props))
}

// Depth returns the number of nodes in the chain starting at n.
func (n *Node) Depth() int {
	d := 0
	for cur := n; cur != nil; cur = cur.Sub {
		d++
	}
	return d
}

// Path returns the node names from n down to the deepest subcommand.
func (n *Node) Path() []string {
	var path []string
	for cur := n; cur != nil; cur = cur.Sub {
		path = append(path, cur.Name)
	}
	return path
}

// Leaf returns the deepest node in the chain starting at n.
func (n *Node) Leaf() *Node {
	cur := n
	for cur != nil && cur.Sub != nil {
		cur = cur.Sub
	}
	return cur
}
