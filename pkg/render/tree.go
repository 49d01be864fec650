// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/yeetrun/bindargs/pkg/argbag"
	"github.com/yeetrun/bindargs/pkg/argtree"
	"github.com/yeetrun/bindargs/pkg/env"
	"github.com/yeetrun/bindargs/pkg/tui"
)

type nodeDoc struct {
	Name  string            `json:"name" yaml:"name"`
	Flags []string          `json:"flags,omitempty" yaml:"flags,omitempty"`
	Props map[string]string `json:"props,omitempty" yaml:"props,omitempty"`
	Args  []string          `json:"args,omitempty" yaml:"args,omitempty"`
	Sub   *nodeDoc          `json:"sub,omitempty" yaml:"sub,omitempty"`
}

type treeDoc struct {
	Tree     *nodeDoc `json:"tree" yaml:"tree"`
	Trailing []string `json:"trailing,omitempty" yaml:"trailing,omitempty"`
}

func newNodeDoc(n *argtree.Node) *nodeDoc {
	if n == nil {
		return nil
	}
	d := &nodeDoc{
		Name: n.Name,
		Args: n.Args,
		Sub:  newNodeDoc(n.Sub),
	}
	if len(n.Flags) > 0 {
		d.Flags = n.SortedFlags()
	}
	if len(n.Props) > 0 {
		d.Props = n.Props
	}
	return d
}

// Tree prints the chain of nodes starting at root, followed by the arguments
// that came after "--". The env format does not include the trailing
// arguments.
func (p Printer) Tree(w io.Writer, root *argtree.Node, trailing []string) error {
	if ok, err := p.encode(w, treeDoc{Tree: newNodeDoc(root), Trailing: trailing}); ok {
		return err
	}
	switch p.format() {
	case FormatEnv:
		return env.Marshal(w, root)
	case FormatText:
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, p.format())
	}

	depth := 0
	for n := root; n != nil; n = n.Sub {
		var sb strings.Builder
		if depth > 0 {
			sb.WriteString(strings.Repeat("    ", depth-1))
			sb.WriteString("└── ")
		}
		sb.WriteString(p.Color.Wrap(tui.StyleName, n.Name))
		for _, name := range n.SortedFlags() {
			sb.WriteByte(' ')
			sb.WriteString(p.Color.Wrap(tui.StyleFlag, argbag.Token{Kind: argbag.KindFlag, Name: name}.String()))
		}
		for _, name := range n.SortedProps() {
			sb.WriteByte(' ')
			tok := argbag.Token{Kind: argbag.KindOption, Name: name, Value: n.Props[name]}
			sb.WriteString(p.Color.Wrap(tui.StyleProp, tok.String()))
		}
		for _, a := range n.Args {
			sb.WriteByte(' ')
			sb.WriteString(p.Color.Wrap(tui.StyleOperand, a))
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
		depth++
	}
	if len(trailing) > 0 {
		if _, err := fmt.Fprintf(w, "%s %s\n", p.Color.Wrap(tui.StyleDim, "--"), strings.Join(trailing, " ")); err != nil {
			return err
		}
	}
	return nil
}
