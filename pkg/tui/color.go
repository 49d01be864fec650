// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"

	"github.com/fatih/color"
)

// Highlight styles used by the renderers.
var (
	StyleName    = []color.Attribute{color.Bold}
	StyleFlag    = []color.Attribute{color.FgCyan}
	StyleProp    = []color.Attribute{color.FgYellow}
	StyleOperand = []color.Attribute{color.FgGreen}
	StyleDim     = []color.Attribute{color.FgHiBlack}
	StyleError   = []color.Attribute{color.FgRed, color.Bold}
	StyleWarn    = []color.Attribute{color.FgYellow, color.Bold}
)

type Colorizer struct {
	Enabled bool
}

// NewColorizer returns a Colorizer that is enabled only if enabled is true,
// NO_COLOR is unset and TERM names a capable terminal.
func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// Wrap returns text in the given style, or unchanged when c is disabled.
func (c Colorizer) Wrap(style []color.Attribute, text string) string {
	if !c.Enabled || len(style) == 0 || text == "" {
		return text
	}
	s := color.New(style...)
	s.EnableColor()
	return s.Sprint(text)
}
