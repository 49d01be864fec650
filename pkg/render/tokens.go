// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/yeetrun/bindargs/pkg/argbag"
	"github.com/yeetrun/bindargs/pkg/tui"
)

type tokenDoc struct {
	Kind     string  `json:"kind" yaml:"kind"`
	Name     string  `json:"name,omitempty" yaml:"name,omitempty"`
	Value    *string `json:"value,omitempty" yaml:"value,omitempty"`
	Position *int    `json:"position,omitempty" yaml:"position,omitempty"`
}

type tokensDoc struct {
	Program string     `json:"program" yaml:"program"`
	Command string     `json:"command,omitempty" yaml:"command,omitempty"`
	Tokens  []tokenDoc `json:"tokens" yaml:"tokens"`
	Ignored []string   `json:"ignored,omitempty" yaml:"ignored,omitempty"`
}

func newTokensDoc(bag *argbag.Bag) tokensDoc {
	doc := tokensDoc{Program: bag.ProgramName, Tokens: []tokenDoc{}, Ignored: bag.Ignored()}
	doc.Command, _ = bag.Command()
	for _, t := range bag.Tokens() {
		d := tokenDoc{Kind: t.Kind.String(), Name: t.Name}
		switch t.Kind {
		case argbag.KindOption:
			d.Value = &t.Value
		case argbag.KindOperand:
			d.Value = &t.Value
			d.Position = &t.Position
		}
		doc.Tokens = append(doc.Tokens, d)
	}
	return doc
}

// kindStyles gives every KIND cell a single-attribute style so the escape
// bytes tabwriter counts are the same on each row.
var kindStyles = map[argbag.Kind][]color.Attribute{
	argbag.KindFlag:    tui.StyleFlag,
	argbag.KindOption:  tui.StyleProp,
	argbag.KindOperand: tui.StyleOperand,
}

// Tokens prints the live tokens of bag without consuming them. The env
// format is not supported.
func (p Printer) Tokens(w io.Writer, bag *argbag.Bag) error {
	doc := newTokensDoc(bag)
	if ok, err := p.encode(w, doc); ok {
		return err
	}
	if p.format() != FormatText {
		return fmt.Errorf("%w for tokens: %s", ErrUnsupportedFormat, p.format())
	}

	fmt.Fprintf(w, "program: %s\n", p.Color.Wrap(tui.StyleName, doc.Program))
	if doc.Command != "" {
		fmt.Fprintf(w, "command: %s\n", p.Color.Wrap(tui.StyleName, doc.Command))
	}
	if len(doc.Tokens) > 0 {
		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
		fmt.Fprintf(tw, "%s\tNAME\tVALUE\tPOS\n", p.Color.Wrap(tui.StyleDim, "KIND"))
		for _, t := range bag.Tokens() {
			var value, pos string
			switch t.Kind {
			case argbag.KindOption:
				value = t.Value
			case argbag.KindOperand:
				value = t.Value
				pos = strconv.Itoa(t.Position)
			}
			kind := p.Color.Wrap(kindStyles[t.Kind], t.Kind.String())
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", kind, t.Name, value, pos)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	if len(doc.Ignored) > 0 {
		fmt.Fprintf(w, "ignored: %s\n", p.Color.Wrap(tui.StyleDim, strings.Join(doc.Ignored, " ")))
	}
	return nil
}
