// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/bindargs/pkg/argbag"
	"github.com/yeetrun/bindargs/pkg/cli"
	"github.com/yeetrun/bindargs/pkg/render"
	"github.com/yeetrun/bindargs/pkg/tui"
	"tailscale.com/types/logger"
)

const configFileName = ".bindargs.toml"

// projectConfig holds the defaults read from .bindargs.toml. Command-line
// flags take precedence over every field.
type projectConfig struct {
	Schema  string `toml:"schema,omitempty"`
	Format  string `toml:"format,omitempty"`
	Grammar string `toml:"grammar,omitempty"`
	Color   *bool  `toml:"color,omitempty"`
}

type configLocation struct {
	Path   string
	Dir    string
	Config *projectConfig
}

// loadConfig reads the config file at explicit, or the nearest
// .bindargs.toml at or above startDir when explicit is empty. A missing
// file is only an error when it was named explicitly.
func loadConfig(explicit, startDir string) (*configLocation, error) {
	path := explicit
	if path == "" {
		found, err := findConfigPath(startDir)
		if err != nil {
			if os.IsNotExist(err) {
				return &configLocation{Dir: startDir, Config: &projectConfig{}}, nil
			}
			return nil, err
		}
		path = found
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	var cfg projectConfig
	md, err := toml.DecodeFile(abs, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", abs, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("failed to parse %s: unknown keys: %s", abs, strings.Join(keys, ", "))
	}
	return &configLocation{Path: abs, Dir: filepath.Dir(abs), Config: &cfg}, nil
}

func findConfigPath(startDir string) (string, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// settings is the effective configuration of one run.
type settings struct {
	schemaPath string
	printer    render.Printer
	parse      argbag.Options
}

func resolveSettings(flags cli.GlobalFlags, loc *configLocation, tty bool) (settings, error) {
	cfg := loc.Config
	var s settings

	switch {
	case flags.Schema != "":
		s.schemaPath = flags.Schema
	case cfg.Schema != "":
		s.schemaPath = cfg.Schema
		if !filepath.IsAbs(s.schemaPath) {
			s.schemaPath = filepath.Join(loc.Dir, s.schemaPath)
		}
	}

	format, err := render.ParseFormat(firstNonEmpty(flags.Format, cfg.Format))
	if err != nil {
		return settings{}, err
	}
	s.printer.Format = format

	grammarName := firstNonEmpty(flags.Grammar, cfg.Grammar)
	if grammarName != "" {
		g, ok := argbag.ParseGrammar(grammarName)
		if !ok {
			return settings{}, fmt.Errorf("unknown grammar %q (want nested or marker)", grammarName)
		}
		s.parse.Grammar = g
	}

	colorOn := !flags.NoColor && (cfg.Color == nil || *cfg.Color)
	s.printer.Color = tui.NewColorizer(colorOn && tty)

	if flags.Verbose {
		s.parse.Logf = logger.WithPrefix(log.Printf, "bindargs: ")
	}
	return s, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
