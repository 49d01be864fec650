// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

import (
	"github.com/yeetrun/bindargs/pkg/argbag"
)

// Build drains the tokens of bag into a tree rooted at the program name.
//
// Flags and options attach to the current level. With argbag.GrammarNested
// every operand opens a new level named after it; with argbag.GrammarMarker
// the "@name" declaration is the only level below the root and operands are
// collected in Args. The bag's ignored tail is left in place.
func Build(bag *argbag.Bag) *Node {
	root := &Node{Name: bag.ProgramName}
	cur := root
	if name, ok := bag.Command(); ok {
		cur.Sub = &Node{Name: name}
		cur = cur.Sub
	}
	nested := bag.Grammar() == argbag.GrammarNested

	for _, tok := range bag.TakeTokens() {
		switch tok.Kind {
		case argbag.KindFlag:
			cur.AddFlag(tok.Name)
		case argbag.KindOption:
			cur.SetProp(tok.Name, tok.Value)
		case argbag.KindOperand:
			if nested {
				cur.Sub = &Node{Name: tok.Value}
				cur = cur.Sub
				continue
			}
			cur.Args = append(cur.Args, tok.Value)
		}
	}
	return root
}

// Parse tokenizes args and builds the tree. It also returns the arguments
// that followed "--".
func Parse(args []string, opts argbag.Options) (*Node, []string, error) {
	bag, err := argbag.ParseOptions(args, opts)
	if err != nil {
		return nil, nil, err
	}
	root := Build(bag)
	return root, bag.TakeIgnored(), nil
}
