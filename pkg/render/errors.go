// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/yeetrun/bindargs/pkg/argbag"
	"github.com/yeetrun/bindargs/pkg/cmdschema"
	"github.com/yeetrun/bindargs/pkg/schemafile"
	"github.com/yeetrun/bindargs/pkg/tui"
)

// Category groups errors by the stage that produced them.
type Category string

const (
	CategorySyntax  Category = "syntax"  // the tokenizer rejected an argument
	CategoryInvalid Category = "invalid" // the tree does not match the schema
	CategoryOther   Category = "error"
)

// Categorize reports which stage err came from.
func Categorize(err error) Category {
	var pe *argbag.ParseError
	switch {
	case errors.As(err, &pe):
		return CategorySyntax
	case errors.Is(err, cmdschema.ErrInvalidArguments):
		return CategoryInvalid
	}
	return CategoryOther
}

type errorDoc struct {
	Category Category `json:"category" yaml:"category"`
	Error    string   `json:"error" yaml:"error"`
}

var categoryLabels = map[Category]struct {
	label string
	style []color.Attribute
}{
	CategorySyntax:  {"syntax error", tui.StyleError},
	CategoryInvalid: {"invalid arguments", tui.StyleWarn},
	CategoryOther:   {"error", tui.StyleError},
}

// Error prints err on one line, prefixed with its category. JSON and YAML
// printers emit an object with the same two fields.
func (p Printer) Error(w io.Writer, err error) error {
	if err == nil {
		return nil
	}
	cat := Categorize(err)
	if ok, encErr := p.encode(w, errorDoc{Category: cat, Error: err.Error()}); ok {
		return encErr
	}
	l := categoryLabels[cat]
	_, werr := fmt.Fprintf(w, "%s: %v\n", p.Color.Wrap(l.style, l.label), err)
	return werr
}

type helpDoc struct {
	Path    []string              `json:"path" yaml:"path"`
	Usage   string                `json:"usage" yaml:"usage"`
	Command schemafile.CommandDoc `json:"command" yaml:"command"`
}

// Help prints the help text for the command a help flag was attached to.
// JSON and YAML printers emit the command definition instead of prose.
func (p Printer) Help(w io.Writer, h *cmdschema.HelpRequest) error {
	doc := helpDoc{
		Path:    h.Path,
		Usage:   h.Usage(),
		Command: schemafile.FromCommand(h.Command).Command,
	}
	if ok, err := p.encode(w, doc); ok {
		return err
	}
	if p.format() != FormatText {
		return fmt.Errorf("%w for help: %s", ErrUnsupportedFormat, p.format())
	}
	return h.WriteHelp(w)
}
