// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render prints token streams, args trees, help requests and errors
// for people (text) and for other programs (json, yaml, env).
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yeetrun/bindargs/pkg/tui"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text" // aligned tables, optionally colored
	FormatJSON Format = "json" // indented JSON documents
	FormatYAML Format = "yaml" // YAML documents
	FormatEnv  Format = "env"  // KEY=value lines, trees only
)

// Formats lists every accepted Format in help order.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatEnv}

// ErrUnsupportedFormat is returned when a value has no rendering in the
// requested format.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ParseFormat parses a format name. The empty string is FormatText.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of text, json, yaml, env)", s)
}

// Printer renders values in one format. The zero Printer writes uncolored
// text.
type Printer struct {
	Format Format
	Color  tui.Colorizer
}

func (p Printer) format() Format {
	if p.Format == "" {
		return FormatText
	}
	return p.Format
}

// encode writes v as JSON or YAML. It reports false for other formats.
func (p Printer) encode(w io.Writer, v any) (bool, error) {
	switch p.format() {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	}
	return false, nil
}
